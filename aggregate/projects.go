package aggregate

import (
	"terrasense-service/models"
)

// ProjectRollup is the single-row reforestation aggregation. An empty
// project set rolls up to the zero-valued struct, which renders as all-zero
// fields; callers treat that the same as "no rows".
type ProjectRollup struct {
	TotalProjects            int64   `json:"totalProjects"`
	TotalTreesPlanted        int64   `json:"totalTreesPlanted"`
	TotalArea                float64 `json:"totalArea"`
	AvgSurvivalRate          float64 `json:"avgSurvivalRate"`
	TotalCarbonSequestration float64 `json:"totalCarbonSequestration"`
	ActiveProjects           int64   `json:"activeProjects"`
}

// RollupProjects computes totals, the mean survival rate and the
// active-project sub-count in one pass over the set. The sub-count is a
// per-record conditional contribution, not a second scan.
func RollupProjects(projects []models.ReforestationProject) ProjectRollup {
	r := ProjectRollup{TotalProjects: int64(len(projects))}
	if len(projects) == 0 {
		return r
	}
	var survival float64
	for _, p := range projects {
		r.TotalTreesPlanted += p.TreesPlanted
		r.TotalArea += p.Area
		r.TotalCarbonSequestration += p.CarbonSequestration
		survival += p.SurvivalRate
		if p.Status == models.ProjectActive {
			r.ActiveProjects++
		}
	}
	r.AvgSurvivalRate = survival / float64(len(projects))
	return r
}
