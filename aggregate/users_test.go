package aggregate

import (
	"testing"

	"terrasense-service/models"
)

func TestRoleBreakdown(t *testing.T) {
	users := []models.User{
		{Role: "farmer", Contributions: models.Contributions{DataReports: 12, ProjectsJoined: 2}},
		{Role: "researcher", Contributions: models.Contributions{DataReports: 45, ProjectsJoined: 5}},
		{Role: "farmer", Contributions: models.Contributions{DataReports: 8, ProjectsJoined: 1}},
		{Role: "volunteer", Contributions: models.Contributions{DataReports: 3, ProjectsJoined: 4}},
	}

	e := []RoleStat{
		{Role: "farmer", Count: 2, TotalReports: 20, TotalProjects: 3},
		{Role: "researcher", Count: 1, TotalReports: 45, TotalProjects: 5},
		{Role: "volunteer", Count: 1, TotalReports: 3, TotalProjects: 4},
	}

	r := RoleBreakdown(users)
	if len(r) != len(e) {
		t.Fatalf("got %d groups, want %d", len(r), len(e))
	}
	for i, g := range r {
		if g != e[i] {
			t.Errorf("group %d is %+v, want %+v", i, g, e[i])
		}
	}

	if r := RoleBreakdown(nil); len(r) != 0 {
		t.Errorf("empty set: got %d groups, want 0", len(r))
	}
}
