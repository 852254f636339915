package aggregate

import (
	"terrasense-service/models"
)

// RoleStat is one group of the per-role user statistics.
type RoleStat struct {
	Role          string `json:"role"`
	Count         int64  `json:"count"`
	TotalReports  int64  `json:"totalReports"`
	TotalProjects int64  `json:"totalProjects"`
}

// RoleBreakdown groups users by role with per-group count and contribution
// totals. Groups keep first-seen order.
func RoleBreakdown(users []models.User) []RoleStat {
	type acc struct {
		cnt      int64
		reports  int64
		projects int64
	}
	groups := make(map[string]*acc)
	order := make([]string, 0)

	for _, u := range users {
		g, ok := groups[u.Role]
		if !ok {
			g = &acc{}
			groups[u.Role] = g
			order = append(order, u.Role)
		}
		g.cnt++
		g.reports += u.Contributions.DataReports
		g.projects += u.Contributions.ProjectsJoined
	}

	r := make([]RoleStat, 0, len(order))
	for _, role := range order {
		g := groups[role]
		r = append(r, RoleStat{
			Role:          role,
			Count:         g.cnt,
			TotalReports:  g.reports,
			TotalProjects: g.projects,
		})
	}
	return r
}
