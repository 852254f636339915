package mapaggr

import (
	"testing"

	"terrasense-service/models"
)

func TestCellBaseLevel(t *testing.T) {
	testCases := []struct {
		name string
		vp   models.ViewPort

		minExpected int
		maxExpected int
	}{
		{
			name:        "Whole world",
			vp:          models.ViewPort{LatMin: -85.0, LonMin: -180.0, LatMax: 85.0, LonMax: 180.0},
			minExpected: minLevel,
			maxExpected: 4,
		}, {
			name:        "Country sized",
			vp:          models.ViewPort{LatMin: -4.7, LonMin: 33.9, LatMax: 5.5, LonMax: 41.9},
			minExpected: 4,
			maxExpected: 9,
		}, {
			name:        "City sized",
			vp:          models.ViewPort{LatMin: -1.35, LonMin: 36.65, LatMax: -1.2, LonMax: 36.95},
			minExpected: 9,
			maxExpected: 14,
		},
	}

	for _, testCase := range testCases {
		lv := CellBaseLevel(testCase.vp)
		if lv < testCase.minExpected || lv > testCase.maxExpected {
			t.Errorf("%s: level %d outside [%d, %d]", testCase.name, lv, testCase.minExpected, testCase.maxExpected)
		}
	}
}

func TestAggregatorSparseCellsKeepPoints(t *testing.T) {
	a := NewAggregator(models.ViewPort{LatMin: -4.7, LonMin: 33.9, LatMax: 5.5, LonMax: 41.9})

	a.AddPoint(-0.3031, 36.08)
	a.AddPoint(-0.3041, 36.081)
	a.AddPoint(4.6, 39.2)

	r := a.ToArray()
	if len(r) != 3 {
		t.Fatalf("got %d markers, want the 3 original points", len(r))
	}
	for _, p := range r {
		if p.Count != 1 {
			t.Errorf("sparse marker carries count %d, want 1", p.Count)
		}
	}
}

func TestAggregatorDenseCellCollapses(t *testing.T) {
	a := NewAggregator(models.ViewPort{LatMin: -4.7, LonMin: 33.9, LatMax: 5.5, LonMax: 41.9})

	// Eleven alerts at almost the same position land in one cell and cross
	// the clustering threshold.
	for i := 0; i < 11; i++ {
		a.AddPoint(-0.30+float64(i)*0.0001, 36.08)
	}
	// One alert far away stays single.
	a.AddPoint(4.6, 39.2)

	r := a.ToArray()
	if len(r) != 2 {
		t.Fatalf("got %d markers, want 2", len(r))
	}
	// Sorted by count descending, so the cluster comes first.
	if r[0].Count != 11 {
		t.Errorf("cluster count is %d, want 11", r[0].Count)
	}
	if r[0].Latitude < -0.31 || r[0].Latitude > -0.29 {
		t.Errorf("cluster centroid latitude %f is off", r[0].Latitude)
	}
	if r[1].Count != 1 {
		t.Errorf("single marker carries count %d, want 1", r[1].Count)
	}
}
