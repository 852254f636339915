package aggregate

import (
	"sort"
	"time"

	"terrasense-service/models"
)

// MonthBucket is one (calendar year, calendar month) group of the
// time-series analysis.
type MonthBucket struct {
	Year           int     `json:"year"`
	Month          int     `json:"month"`
	AvgSoilHealth  float64 `json:"avgSoilHealth"`
	AvgVegetation  float64 `json:"avgVegetation"`
	AvgErosionRisk float64 `json:"avgErosionRisk"`
}

// SeriesCutoff computes the lookback cutoff as a calendar month subtraction
// from now, not a fixed 30-day multiple.
func SeriesCutoff(now time.Time, months int) time.Time {
	return now.AddDate(0, -months, 0)
}

// MonthlySeries buckets observations at or after the cutoff by the calendar
// year and month of their observation timestamp and computes per-bucket
// means. Buckets come out in ascending (year, month) order; months without
// records produce no bucket.
func MonthlySeries(obs []models.LandObservation, cutoff time.Time) []MonthBucket {
	type acc struct {
		cnt      int64
		moisture float64
		coverage float64
		erosion  float64
	}
	type key struct {
		year  int
		month int
	}
	groups := make(map[key]*acc)

	for _, o := range obs {
		if o.Timestamp.Before(cutoff) {
			continue
		}
		k := key{year: o.Timestamp.Year(), month: int(o.Timestamp.Month())}
		g, ok := groups[k]
		if !ok {
			g = &acc{}
			groups[k] = g
		}
		g.cnt++
		g.moisture += o.SoilHealth.Moisture
		g.coverage += o.Vegetation.Coverage
		g.erosion += o.ErosionRisk
	}

	r := make([]MonthBucket, 0, len(groups))
	for k, g := range groups {
		r = append(r, MonthBucket{
			Year:           k.year,
			Month:          k.month,
			AvgSoilHealth:  g.moisture / float64(g.cnt),
			AvgVegetation:  g.coverage / float64(g.cnt),
			AvgErosionRisk: g.erosion / float64(g.cnt),
		})
	}
	sort.Slice(r, func(i, j int) bool {
		if r[i].Year != r[j].Year {
			return r[i].Year < r[j].Year
		}
		return r[i].Month < r[j].Month
	})
	return r
}
