// Package mapaggr clusters alert coordinates into S2 cells so the dashboard
// map stays readable when a region has many alerts in view.
package mapaggr

import (
	"sort"

	"terrasense-service/models"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const (
	expectedCells = 16
	minLevel      = 2
	maxLevel      = 18

	// Cells holding at most this many alerts emit their original points
	// instead of a cluster marker.
	minPointsToCluster = 10
)

type unit struct {
	cnt    int64
	latSum float64
	lonSum float64
	orig   []models.MapPoint
}

// Aggregator buckets points into S2 cells at a level derived from the
// viewport size.
type Aggregator struct {
	level int
	cells map[s2.CellID]*unit
}

// CellBaseLevel finds the S2 cell level at which roughly expectedCells cells
// cover the viewport.
func CellBaseLevel(vp models.ViewPort) int {
	minLL := s2.LatLngFromDegrees(vp.LatMin, vp.LonMin)
	maxLL := s2.LatLngFromDegrees(vp.LatMax, vp.LonMax)

	rect := s2.Rect{
		Lat: r1.Interval{
			Lo: minLL.Lat.Radians(),
			Hi: maxLL.Lat.Radians()},
		Lng: s1.Interval{
			Lo: minLL.Lng.Radians(),
			Hi: maxLL.Lng.Radians()},
	}
	vpArea := rect.Area()

	centerLat := (vp.LatMin + vp.LatMax) / 2
	centerLon := (vp.LonMin + vp.LonMax) / 2
	center := s2.CellIDFromLatLng(s2.LatLngFromDegrees(centerLat, centerLon))

	for lv := maxLevel; lv >= minLevel; lv-- {
		cc := s2.CellFromCellID(center.Parent(lv))
		if vpArea/cc.ApproxArea() < expectedCells {
			return lv
		}
	}
	return minLevel
}

func NewAggregator(vp models.ViewPort) *Aggregator {
	return &Aggregator{
		level: CellBaseLevel(vp),
		cells: make(map[s2.CellID]*unit),
	}
}

// AddPoint buckets one alert position into its covering cell.
func (a *Aggregator) AddPoint(lat, lon float64) {
	cell := s2.CellIDFromLatLng(s2.LatLngFromDegrees(lat, lon)).Parent(a.level)
	u, ok := a.cells[cell]
	if !ok {
		u = &unit{}
		a.cells[cell] = u
	}
	u.cnt++
	u.latSum += lat
	u.lonSum += lon
	if u.cnt <= minPointsToCluster {
		u.orig = append(u.orig, models.MapPoint{Latitude: lat, Longitude: lon, Count: 1})
	}
}

// ToArray renders the buckets as map markers. Sparse cells keep their
// original points; dense cells collapse into one centroid marker carrying
// the count. Output is sorted for stable rendering.
func (a *Aggregator) ToArray() []models.MapPoint {
	r := make([]models.MapPoint, 0, len(a.cells))
	for _, u := range a.cells {
		if u.cnt <= minPointsToCluster {
			r = append(r, u.orig...)
			continue
		}
		r = append(r, models.MapPoint{
			Latitude:  u.latSum / float64(u.cnt),
			Longitude: u.lonSum / float64(u.cnt),
			Count:     u.cnt,
		})
	}
	sort.Slice(r, func(i, j int) bool {
		if r[i].Count != r[j].Count {
			return r[i].Count > r[j].Count
		}
		if r[i].Latitude != r[j].Latitude {
			return r[i].Latitude < r[j].Latitude
		}
		return r[i].Longitude < r[j].Longitude
	})
	return r
}
