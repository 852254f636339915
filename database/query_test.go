package database

import (
	"reflect"
	"testing"
	"time"
)

func TestLandFiltersWhere(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		filters LandFilters

		clause string
		args   []any
	}{
		{
			name:    "No filters renders an open query",
			filters: LandFilters{},
			clause:  "",
			args:    nil,
		}, {
			name:    "Region only",
			filters: LandFilters{Region: "Nakuru"},
			clause:  " WHERE region = ?",
			args:    []any{"Nakuru"},
		}, {
			name:    "Region and degradation level",
			filters: LandFilters{Region: "Nakuru", DegradationLevel: "High"},
			clause:  " WHERE region = ? AND degradation_level = ?",
			args:    []any{"Nakuru", "High"},
		}, {
			name:    "Start date only",
			filters: LandFilters{StartDate: &start},
			clause:  " WHERE observed_at >= ?",
			args:    []any{start},
		}, {
			name:    "End date only",
			filters: LandFilters{EndDate: &end},
			clause:  " WHERE observed_at <= ?",
			args:    []any{end},
		}, {
			name:    "Full date interval",
			filters: LandFilters{StartDate: &start, EndDate: &end},
			clause:  " WHERE observed_at >= ? AND observed_at <= ?",
			args:    []any{start, end},
		}, {
			name:    "Everything at once",
			filters: LandFilters{Region: "Kericho", DegradationLevel: "Low", StartDate: &start, EndDate: &end},
			clause:  " WHERE region = ? AND degradation_level = ? AND observed_at >= ? AND observed_at <= ?",
			args:    []any{"Kericho", "Low", start, end},
		},
	}

	for _, testCase := range testCases {
		clause, args := testCase.filters.Where()
		if clause != testCase.clause {
			t.Errorf("%s: clause %q, want %q", testCase.name, clause, testCase.clause)
		}
		if !reflect.DeepEqual(args, testCase.args) {
			t.Errorf("%s: args %v, want %v", testCase.name, args, testCase.args)
		}
	}
}

func TestProjectFiltersWhere(t *testing.T) {
	testCases := []struct {
		name    string
		filters ProjectFilters

		clause string
		args   []any
	}{
		{
			name:    "No filters",
			filters: ProjectFilters{},
			clause:  "",
			args:    nil,
		}, {
			name:    "Status only",
			filters: ProjectFilters{Status: "Active"},
			clause:  " WHERE status = ?",
			args:    []any{"Active"},
		}, {
			name:    "Status and region",
			filters: ProjectFilters{Status: "Planning", Region: "Machakos"},
			clause:  " WHERE status = ? AND region = ?",
			args:    []any{"Planning", "Machakos"},
		},
	}

	for _, testCase := range testCases {
		clause, args := testCase.filters.Where()
		if clause != testCase.clause {
			t.Errorf("%s: clause %q, want %q", testCase.name, clause, testCase.clause)
		}
		if !reflect.DeepEqual(args, testCase.args) {
			t.Errorf("%s: args %v, want %v", testCase.name, args, testCase.args)
		}
	}
}

func TestAlertFiltersWhere(t *testing.T) {
	clause, args := AlertFilters{Status: "Active", Severity: "High", AlertType: "deforestation", Region: "Narok"}.Where()
	if e := " WHERE status = ? AND severity = ? AND alert_type = ? AND region = ?"; clause != e {
		t.Errorf("clause %q, want %q", clause, e)
	}
	if e := []any{"Active", "High", "deforestation", "Narok"}; !reflect.DeepEqual(args, e) {
		t.Errorf("args %v, want %v", args, e)
	}
}

func TestUserFiltersWhere(t *testing.T) {
	clause, args := UserFilters{Role: "farmer"}.Where()
	if e := " WHERE role = ?"; clause != e {
		t.Errorf("clause %q, want %q", clause, e)
	}
	if e := []any{"farmer"}; !reflect.DeepEqual(args, e) {
		t.Errorf("args %v, want %v", args, e)
	}
}
