package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"terrasense-service/aggregate"
	"terrasense-service/models"

	"github.com/apex/log"
)

// LandService owns reads and writes of the land_data table. Observations are
// write-once; there is no update path.
type LandService struct {
	db *sql.DB
}

func NewLandService(db *sql.DB) *LandService {
	return &LandService{db: db}
}

const landColumns = `id, region, latitude, longitude, soil_ph, soil_moisture,
	organic_matter, nitrogen, phosphorus, potassium, veg_coverage, veg_ndvi,
	veg_type, degradation_level, erosion_risk, observed_at, ai_future_risk,
	ai_confidence, ai_actions, created_at, updated_at`

func scanLandObservation(rows *sql.Rows) (*models.LandObservation, error) {
	var o models.LandObservation
	var vegType, degradation sql.NullString
	var actions []byte

	err := rows.Scan(
		&o.ID,
		&o.Region,
		&o.Coordinates.Latitude,
		&o.Coordinates.Longitude,
		&o.SoilHealth.PH,
		&o.SoilHealth.Moisture,
		&o.SoilHealth.OrganicMatter,
		&o.SoilHealth.Nutrients.Nitrogen,
		&o.SoilHealth.Nutrients.Phosphorus,
		&o.SoilHealth.Nutrients.Potassium,
		&o.Vegetation.Coverage,
		&o.Vegetation.NDVI,
		&vegType,
		&degradation,
		&o.ErosionRisk,
		&o.Timestamp,
		&o.AIPrediction.FutureRisk,
		&o.AIPrediction.Confidence,
		&actions,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan land observation: %w", err)
	}
	o.Vegetation.Type = vegType.String
	o.DegradationLevel = degradation.String
	if len(actions) > 0 {
		if err := json.Unmarshal(actions, &o.AIPrediction.RecommendedActions); err != nil {
			return nil, fmt.Errorf("bad ai_actions payload for observation %d: %w", o.ID, err)
		}
	}
	return &o, nil
}

func (s *LandService) queryObservations(ctx context.Context, where string, args []any, limit int) ([]models.LandObservation, error) {
	q := "SELECT " + landColumns + " FROM land_data" + where + " ORDER BY observed_at DESC"
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query land_data: %w", err)
	}
	defer rows.Close()

	r := make([]models.LandObservation, 0)
	for rows.Next() {
		o, err := scanLandObservation(rows)
		if err != nil {
			return nil, err
		}
		r = append(r, *o)
	}
	return r, rows.Err()
}

// ListObservations returns observations matching the filters, newest first.
func (s *LandService) ListObservations(ctx context.Context, f LandFilters, limit int) ([]models.LandObservation, error) {
	where, args := f.Where()
	return s.queryObservations(ctx, where, args, limit)
}

// GetObservation looks one observation up by id.
func (s *LandService) GetObservation(ctx context.Context, id int64) (*models.LandObservation, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+landColumns+" FROM land_data WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query observation %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	return scanLandObservation(rows)
}

// CreateObservation inserts one observation and fills in the store-assigned
// id. A zero observation timestamp defaults to now.
func (s *LandService) CreateObservation(ctx context.Context, o *models.LandObservation) error {
	if o.Timestamp.IsZero() {
		o.Timestamp = time.Now().UTC()
	}
	actions, err := json.Marshal(o.AIPrediction.RecommendedActions)
	if err != nil {
		return fmt.Errorf("failed to encode recommended actions: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `INSERT
		INTO land_data (region, latitude, longitude, soil_ph, soil_moisture,
			organic_matter, nitrogen, phosphorus, potassium, veg_coverage,
			veg_ndvi, veg_type, degradation_level, erosion_risk, observed_at,
			ai_future_risk, ai_confidence, ai_actions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.Region, o.Coordinates.Latitude, o.Coordinates.Longitude,
		o.SoilHealth.PH, o.SoilHealth.Moisture, o.SoilHealth.OrganicMatter,
		o.SoilHealth.Nutrients.Nitrogen, o.SoilHealth.Nutrients.Phosphorus,
		o.SoilHealth.Nutrients.Potassium, o.Vegetation.Coverage,
		o.Vegetation.NDVI, o.Vegetation.Type, o.DegradationLevel,
		o.ErosionRisk, o.Timestamp, o.AIPrediction.FutureRisk,
		o.AIPrediction.Confidence, actions)
	if err != nil {
		return fmt.Errorf("failed to insert land observation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted observation id: %w", err)
	}
	o.ID = id
	log.Infof("Inserted land observation %d for region %s", id, o.Region)
	return nil
}

// DegradationStats computes the degradation breakdown over the full current
// observation set.
func (s *LandService) DegradationStats(ctx context.Context) ([]aggregate.DegradationStat, error) {
	obs, err := s.queryObservations(ctx, "", nil, 0)
	if err != nil {
		return nil, err
	}
	return aggregate.DegradationBreakdown(obs), nil
}

// HealthSummary is the land section of the dashboard snapshot.
func (s *LandService) HealthSummary(ctx context.Context) (models.LandHealthSummary, error) {
	obs, err := s.queryObservations(ctx, "", nil, 0)
	if err != nil {
		return models.LandHealthSummary{}, err
	}
	return aggregate.LandHealth(obs), nil
}

// MonthlySeries computes the month-bucketed time series for one region over
// a whole-month lookback window.
func (s *LandService) MonthlySeries(ctx context.Context, region string, months int) ([]aggregate.MonthBucket, error) {
	cutoff := aggregate.SeriesCutoff(time.Now().UTC(), months)
	f := LandFilters{Region: region, StartDate: &cutoff}
	where, args := f.Where()
	obs, err := s.queryObservations(ctx, where, args, 0)
	if err != nil {
		return nil, err
	}
	return aggregate.MonthlySeries(obs, cutoff), nil
}
