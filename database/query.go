package database

import (
	"strings"
	"time"
)

// The listing endpoints accept optional equality filters plus a date interval
// on the observation timestamp. Each filter struct maps to a WHERE clause via
// a pure function; absent fields add no constraint, and values that match no
// enum member simply match zero records.

// LandFilters are the optional filters of the land data listing.
type LandFilters struct {
	Region           string
	DegradationLevel string
	StartDate        *time.Time
	EndDate          *time.Time
}

// ProjectFilters are the optional filters of the project listing.
type ProjectFilters struct {
	Status string
	Region string
}

// AlertFilters are the optional filters of the alert listing.
type AlertFilters struct {
	Status    string
	Severity  string
	AlertType string
	Region    string
}

// UserFilters are the optional filters of the user listing.
type UserFilters struct {
	Role   string
	Region string
}

// clauseBuilder accumulates conditions and their args and renders them as a
// WHERE clause. An empty builder renders to an empty string (open query).
type clauseBuilder struct {
	conds []string
	args  []any
}

func (b *clauseBuilder) eq(column, value string) {
	if value == "" {
		return
	}
	b.conds = append(b.conds, column+" = ?")
	b.args = append(b.args, value)
}

// dateRange adds a closed, one-sided or absent interval on a timestamp
// column. Both bounds are inclusive.
func (b *clauseBuilder) dateRange(column string, start, end *time.Time) {
	if start != nil {
		b.conds = append(b.conds, column+" >= ?")
		b.args = append(b.args, *start)
	}
	if end != nil {
		b.conds = append(b.conds, column+" <= ?")
		b.args = append(b.args, *end)
	}
}

func (b *clauseBuilder) where() (string, []any) {
	if len(b.conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(b.conds, " AND "), b.args
}

// Where renders the land filters as a WHERE clause and its args.
func (f LandFilters) Where() (string, []any) {
	b := &clauseBuilder{}
	b.eq("region", f.Region)
	b.eq("degradation_level", f.DegradationLevel)
	b.dateRange("observed_at", f.StartDate, f.EndDate)
	return b.where()
}

func (f ProjectFilters) Where() (string, []any) {
	b := &clauseBuilder{}
	b.eq("status", f.Status)
	b.eq("region", f.Region)
	return b.where()
}

func (f AlertFilters) Where() (string, []any) {
	b := &clauseBuilder{}
	b.eq("status", f.Status)
	b.eq("severity", f.Severity)
	b.eq("alert_type", f.AlertType)
	b.eq("region", f.Region)
	return b.where()
}

func (f UserFilters) Where() (string, []any) {
	b := &clauseBuilder{}
	b.eq("role", f.Role)
	b.eq("region", f.Region)
	return b.where()
}
