// Package aggregate computes derived statistics over record slices fetched
// from the store. Every function recomputes from scratch over the set it is
// given; no running statistics are kept anywhere.
package aggregate

import (
	"terrasense-service/models"
)

// DegradationStat is one group of the degradation breakdown.
type DegradationStat struct {
	DegradationLevel string  `json:"degradationLevel"`
	Count            int64   `json:"count"`
	AvgSoilHealth    float64 `json:"avgSoilHealth"`
	AvgVegetation    float64 `json:"avgVegetation"`
}

// DegradationBreakdown groups land observations by degradation level and
// computes per-group count, mean soil moisture and mean vegetation coverage.
// Only levels present in the data appear; groups keep first-seen order.
func DegradationBreakdown(obs []models.LandObservation) []DegradationStat {
	type acc struct {
		cnt      int64
		moisture float64
		coverage float64
	}
	groups := make(map[string]*acc)
	order := make([]string, 0)

	for _, o := range obs {
		g, ok := groups[o.DegradationLevel]
		if !ok {
			g = &acc{}
			groups[o.DegradationLevel] = g
			order = append(order, o.DegradationLevel)
		}
		g.cnt++
		g.moisture += o.SoilHealth.Moisture
		g.coverage += o.Vegetation.Coverage
	}

	r := make([]DegradationStat, 0, len(order))
	for _, level := range order {
		g := groups[level]
		r = append(r, DegradationStat{
			DegradationLevel: level,
			Count:            g.cnt,
			AvgSoilHealth:    g.moisture / float64(g.cnt),
			AvgVegetation:    g.coverage / float64(g.cnt),
		})
	}
	return r
}

// LandHealth is the single-row land roll-up used by the dashboard. An empty
// set yields the zero-valued summary.
func LandHealth(obs []models.LandObservation) models.LandHealthSummary {
	s := models.LandHealthSummary{TotalRecords: int64(len(obs))}
	if len(obs) == 0 {
		return s
	}
	var moisture, coverage float64
	for _, o := range obs {
		moisture += o.SoilHealth.Moisture
		coverage += o.Vegetation.Coverage
	}
	s.AvgSoilHealth = moisture / float64(len(obs))
	s.AvgVegetation = coverage / float64(len(obs))
	return s
}
