package plan

// PlanStats aggregates the structural counts of a validated plan.
type PlanStats struct {
	Phases    int `json:"phases"`
	Weeks     int `json:"weeks"`
	Days      int `json:"days"`
	Exercises int `json:"exercises"`
}

// Stats walks a validated tree and counts phases, weeks, days (rest days
// included) and exercises. The exercise count covers main blocks only;
// warmup and cooldown blocks are excluded.
func Stats(p *Plan) PlanStats {
	var s PlanStats
	if p == nil {
		return s
	}
	s.Phases = len(p.Phases)
	for _, phase := range p.Phases {
		s.Weeks += len(phase.Weeks)
		for _, week := range phase.Weeks {
			s.Days += len(week.Days)
			for _, day := range week.Days {
				for _, block := range day.Blocks {
					s.Exercises += len(block.Exercises)
				}
			}
		}
	}
	return s
}
