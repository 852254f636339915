package aggregate

import (
	"testing"

	"terrasense-service/models"
)

func obs(level string, moisture, coverage float64) models.LandObservation {
	return models.LandObservation{
		DegradationLevel: level,
		SoilHealth:       models.SoilHealth{Moisture: moisture},
		Vegetation:       models.Vegetation{Coverage: coverage},
	}
}

func TestDegradationBreakdown(t *testing.T) {
	testCases := []struct {
		name string
		obs  []models.LandObservation
		e    []DegradationStat
	}{
		{
			name: "Empty set",
			obs:  []models.LandObservation{},
			e:    []DegradationStat{},
		}, {
			name: "Single level",
			obs: []models.LandObservation{
				obs(models.DegradationLow, 40.0, 80.0),
				obs(models.DegradationLow, 60.0, 60.0),
			},
			e: []DegradationStat{
				{DegradationLevel: "Low", Count: 2, AvgSoilHealth: 50.0, AvgVegetation: 70.0},
			},
		}, {
			name: "Groups keep first-seen order",
			obs: []models.LandObservation{
				obs(models.DegradationHigh, 20.0, 30.0),
				obs(models.DegradationLow, 50.0, 75.0),
				obs(models.DegradationHigh, 30.0, 40.0),
				obs(models.DegradationCritical, 10.0, 15.0),
			},
			e: []DegradationStat{
				{DegradationLevel: "High", Count: 2, AvgSoilHealth: 25.0, AvgVegetation: 35.0},
				{DegradationLevel: "Low", Count: 1, AvgSoilHealth: 50.0, AvgVegetation: 75.0},
				{DegradationLevel: "Critical", Count: 1, AvgSoilHealth: 10.0, AvgVegetation: 15.0},
			},
		},
	}

	for _, testCase := range testCases {
		r := DegradationBreakdown(testCase.obs)
		if len(r) != len(testCase.e) {
			t.Errorf("%s: got %d groups, want %d", testCase.name, len(r), len(testCase.e))
			continue
		}
		for i, g := range r {
			if g != testCase.e[i] {
				t.Errorf("%s: group %d is %+v, want %+v", testCase.name, i, g, testCase.e[i])
			}
		}
	}
}

func TestLandHealth(t *testing.T) {
	testCases := []struct {
		name string
		obs  []models.LandObservation
		e    models.LandHealthSummary
	}{
		{
			name: "Empty set yields zero summary",
			obs:  nil,
			e:    models.LandHealthSummary{},
		}, {
			name: "Means over all records",
			obs: []models.LandObservation{
				obs(models.DegradationLow, 40.0, 80.0),
				obs(models.DegradationHigh, 20.0, 40.0),
				obs(models.DegradationMedium, 30.0, 60.0),
			},
			e: models.LandHealthSummary{AvgSoilHealth: 30.0, AvgVegetation: 60.0, TotalRecords: 3},
		},
	}

	for _, testCase := range testCases {
		if r := LandHealth(testCase.obs); r != testCase.e {
			t.Errorf("%s: got %+v, want %+v", testCase.name, r, testCase.e)
		}
	}
}
