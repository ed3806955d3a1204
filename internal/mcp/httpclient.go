package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/UdayRajVadeghar/aevio-agent/internal/journal"
	"github.com/UdayRajVadeghar/aevio-agent/internal/storage"
)

// HTTPClient implements PlanStore and JournalStore by calling the Aevio
// REST API. Used for remote MCP mode where the binary runs locally (stdio)
// but data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time checks: HTTPClient satisfies both store interfaces.
var (
	_ PlanStore    = (*HTTPClient)(nil)
	_ JournalStore = (*HTTPClient)(nil)
)

// NewHTTPClient creates an HTTPClient targeting the given base URL. The
// API key is sent as X-API-Key on every request.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("httpclient: encode body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, storage.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, respBody)
	}

	return respBody, nil
}

func userPath(userID, suffix string) string {
	return "/api/v1/users/" + url.PathEscape(userID) + suffix
}

func (c *HTTPClient) SavePlan(ctx context.Context, userID string, raw json.RawMessage) (*storage.PlanRecord, error) {
	body, err := c.do(ctx, http.MethodPost, userPath(userID, "/plans"), nil, raw)
	if err != nil {
		return nil, err
	}

	var rec storage.PlanRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("httpclient: decode plan record: %w", err)
	}
	return &rec, nil
}

func (c *HTTPClient) LatestPlan(ctx context.Context, userID string) (*storage.PlanRecord, error) {
	body, err := c.do(ctx, http.MethodGet, userPath(userID, "/plans/latest"), nil, nil)
	if err != nil {
		return nil, err
	}

	var rec storage.PlanRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("httpclient: decode plan record: %w", err)
	}
	return &rec, nil
}

func (c *HTTPClient) GetUserProfile(ctx context.Context, userID string) (json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, userPath(userID, "/profile"), nil, nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (c *HTTPClient) Save(ctx context.Context, userID, fact string) (*journal.Entry, error) {
	body, err := c.do(ctx, http.MethodPost, userPath(userID, "/journal"), nil, map[string]string{"fact": fact})
	if err != nil {
		return nil, err
	}

	var entry journal.Entry
	if err := json.Unmarshal(body, &entry); err != nil {
		return nil, fmt.Errorf("httpclient: decode journal entry: %w", err)
	}
	return &entry, nil
}

func (c *HTTPClient) Recent(ctx context.Context, userID string, limit int) ([]journal.Entry, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	body, err := c.do(ctx, http.MethodGet, userPath(userID, "/journal"), params, nil)
	if err != nil {
		return nil, err
	}

	var entries []journal.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("httpclient: decode journal entries: %w", err)
	}
	return entries, nil
}
