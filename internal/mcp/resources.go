package mcp

import (
	"context"
	"encoding/json"

	"github.com/UdayRajVadeghar/aevio-agent/internal/plan"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) planSchema(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     plan.SchemaInfo(),
		},
	}, nil
}

func (h *handlers) examplePlan(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(plan.ExamplePlan(), "", "  ")
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
