package aggregate

import (
	"testing"

	"terrasense-service/models"
)

func TestSeverityBreakdown(t *testing.T) {
	testCases := []struct {
		name   string
		alerts []models.Alert
		e      []SeverityStat
	}{
		{
			name:   "Empty set",
			alerts: nil,
			e:      []SeverityStat{},
		}, {
			name: "Counts and total area per severity",
			alerts: []models.Alert{
				{Severity: "High", AffectedArea: 150.0},
				{Severity: "Critical", AffectedArea: 500.0},
				{Severity: "High", AffectedArea: 50.0},
				{Severity: "Medium", AffectedArea: 25.0},
			},
			e: []SeverityStat{
				{Severity: "High", Count: 2, TotalArea: 200.0},
				{Severity: "Critical", Count: 1, TotalArea: 500.0},
				{Severity: "Medium", Count: 1, TotalArea: 25.0},
			},
		},
	}

	for _, testCase := range testCases {
		r := SeverityBreakdown(testCase.alerts)
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
