package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"terrasense-service/aggregate"
	"terrasense-service/models"

	"github.com/apex/log"
)

// AlertService owns reads and writes of the alerts table.
type AlertService struct {
	db *sql.DB
}

func NewAlertService(db *sql.DB) *AlertService {
	return &AlertService{db: db}
}

const alertColumns = `id, region, alert_type, severity, description, latitude,
	longitude, status, affected_area, reported_by, created_at, updated_at`

func scanAlert(rows *sql.Rows) (*models.Alert, error) {
	var a models.Alert
	var alertType, severity, description, reportedBy sql.NullString

	err := rows.Scan(
		&a.ID,
		&a.Region,
		&alertType,
		&severity,
		&description,
		&a.Coordinates.Latitude,
		&a.Coordinates.Longitude,
		&a.Status,
		&a.AffectedArea,
		&reportedBy,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan alert: %w", err)
	}
	a.AlertType = alertType.String
	a.Severity = severity.String
	a.Description = description.String
	a.ReportedBy = reportedBy.String
	return &a, nil
}

func (s *AlertService) queryAlerts(ctx context.Context, where string, args []any, limit int) ([]models.Alert, error) {
	q := "SELECT " + alertColumns + " FROM alerts" + where + " ORDER BY created_at DESC"
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	r := make([]models.Alert, 0)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		r = append(r, *a)
	}
	return r, rows.Err()
}

// ListAlerts returns alerts matching the filters, newest first.
func (s *AlertService) ListAlerts(ctx context.Context, f AlertFilters, limit int) ([]models.Alert, error) {
	where, args := f.Where()
	return s.queryAlerts(ctx, where, args, limit)
}

// GetAlert looks one alert up by id.
func (s *AlertService) GetAlert(ctx context.Context, id int64) (*models.Alert, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+alertColumns+" FROM alerts WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query alert %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	return scanAlert(rows)
}

// CreateAlert inserts one alert. New alerts start in the Active status
// unless the report says otherwise.
func (s *AlertService) CreateAlert(ctx context.Context, a *models.Alert) error {
	if a.Status == "" {
		a.Status = models.AlertActive
	}
	result, err := s.db.ExecContext(ctx, `INSERT
		INTO alerts (region, alert_type, severity, description, latitude,
			longitude, status, affected_area, reported_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Region, a.AlertType, a.Severity, a.Description,
		a.Coordinates.Latitude, a.Coordinates.Longitude, a.Status,
		a.AffectedArea, a.ReportedBy)
	if err != nil {
		return fmt.Errorf("failed to insert alert: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted alert id: %w", err)
	}
	a.ID = id
	log.Infof("Inserted %s alert %d for region %s", a.Severity, id, a.Region)
	return nil
}

// UpdateAlertStatus moves an alert through its lifecycle and returns the
// updated record. Missing ids yield ErrNotFound.
func (s *AlertService) UpdateAlertStatus(ctx context.Context, id int64, status string) (*models.Alert, error) {
	_, err := s.db.ExecContext(ctx,
		"UPDATE alerts SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update alert %d status: %w", id, err)
	}

	a, err := s.GetAlert(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	log.Infof("Alert %d moved to status %s", id, status)
	return a, nil
}

// ActiveSeverityStats groups the active alerts by severity.
func (s *AlertService) ActiveSeverityStats(ctx context.Context) ([]aggregate.SeverityStat, error) {
	f := AlertFilters{Status: models.AlertActive}
	where, args := f.Where()
	alerts, err := s.queryAlerts(ctx, where, args, 0)
	if err != nil {
		return nil, err
	}
	return aggregate.SeverityBreakdown(alerts), nil
}

// CountActive is the alert section of the dashboard snapshot.
func (s *AlertService) CountActive(ctx context.Context) (int64, error) {
	var cnt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM alerts WHERE status = ?", models.AlertActive).Scan(&cnt)
	if err != nil {
		return 0, fmt.Errorf("failed to count active alerts: %w", err)
	}
	return cnt, nil
}
