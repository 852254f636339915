package aggregate

import (
	"terrasense-service/models"
)

// SeverityStat is one group of the active-alert severity breakdown.
type SeverityStat struct {
	Severity  string  `json:"severity"`
	Count     int64   `json:"count"`
	TotalArea float64 `json:"totalArea"`
}

// SeverityBreakdown groups alerts by severity with per-group count and total
// affected area. The caller is expected to pass an already filtered set
// (the endpoint feeds it active alerts only). Groups keep first-seen order.
func SeverityBreakdown(alerts []models.Alert) []SeverityStat {
	type acc struct {
		cnt  int64
		area float64
	}
	groups := make(map[string]*acc)
	order := make([]string, 0)

	for _, a := range alerts {
		g, ok := groups[a.Severity]
		if !ok {
			g = &acc{}
			groups[a.Severity] = g
			order = append(order, a.Severity)
		}
		g.cnt++
		g.area += a.AffectedArea
	}

	r := make([]SeverityStat, 0, len(order))
	for _, severity := range order {
		g := groups[severity]
		r = append(r, SeverityStat{
			Severity:  severity,
			Count:     g.cnt,
			TotalArea: g.area,
		})
	}
	return r
}
