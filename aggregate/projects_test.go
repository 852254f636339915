package aggregate

import (
	"testing"

	"terrasense-service/models"
)

func TestRollupProjects(t *testing.T) {
	projects := make([]models.ReforestationProject, 0, 10)
	for i := 0; i < 10; i++ {
		status := models.ProjectPlanning
		if i < 4 {
			status = models.ProjectActive
		}
		projects = append(projects, models.ReforestationProject{
			Status:              status,
			TreesPlanted:        1000,
			Area:                50.0,
			SurvivalRate:        80.0,
			CarbonSequestration: 12.5,
		})
	}

	e := ProjectRollup{
		TotalProjects:            10,
		TotalTreesPlanted:        10000,
		TotalArea:                500.0,
		AvgSurvivalRate:          80.0,
		TotalCarbonSequestration: 125.0,
		ActiveProjects:           4,
	}

	if r := RollupProjects(projects); r != e {
		t.Errorf("got %+v, want %+v", r, e)
	}
}

func TestRollupProjectsEmpty(t *testing.T) {
	if r := RollupProjects(nil); r != (ProjectRollup{}) {
		t.Errorf("empty set: got %+v, want zero rollup", r)
	}
}
