package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"terrasense-service/aggregate"
	"terrasense-service/models"

	"github.com/apex/log"
)

// ProjectService owns reads and writes of the reforestation_projects table.
type ProjectService struct {
	db *sql.DB
}

func NewProjectService(db *sql.DB) *ProjectService {
	return &ProjectService{db: db}
}

const projectColumns = `id, project_name, region, area_hectares, trees_planted,
	target_trees, species, survival_rate, carbon_sequestration, start_date,
	status, volunteers, created_at, updated_at`

func scanProject(rows *sql.Rows) (*models.ReforestationProject, error) {
	var p models.ReforestationProject
	var name, region sql.NullString
	var startDate sql.NullTime
	var species []byte

	err := rows.Scan(
		&p.ID,
		&name,
		&region,
		&p.Area,
		&p.TreesPlanted,
		&p.TargetTrees,
		&species,
		&p.SurvivalRate,
		&p.CarbonSequestration,
		&startDate,
		&p.Status,
		&p.Volunteers,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	p.ProjectName = name.String
	p.Region = region.String
	if startDate.Valid {
		p.StartDate = startDate.Time
	}
	if len(species) > 0 {
		if err := json.Unmarshal(species, &p.Species); err != nil {
			return nil, fmt.Errorf("bad species payload for project %d: %w", p.ID, err)
		}
	}
	return &p, nil
}

func (s *ProjectService) queryProjects(ctx context.Context, where string, args []any) ([]models.ReforestationProject, error) {
	q := "SELECT " + projectColumns + " FROM reforestation_projects" + where + " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reforestation_projects: %w", err)
	}
	defer rows.Close()

	r := make([]models.ReforestationProject, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		r = append(r, *p)
	}
	return r, rows.Err()
}

// ListProjects returns projects matching the filters, newest first.
func (s *ProjectService) ListProjects(ctx context.Context, f ProjectFilters) ([]models.ReforestationProject, error) {
	where, args := f.Where()
	return s.queryProjects(ctx, where, args)
}

// GetProject looks one project up by id.
func (s *ProjectService) GetProject(ctx context.Context, id int64) (*models.ReforestationProject, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+projectColumns+" FROM reforestation_projects WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query project %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	return scanProject(rows)
}

// CreateProject inserts one project and fills in the store-assigned id.
func (s *ProjectService) CreateProject(ctx context.Context, p *models.ReforestationProject) error {
	if p.Status == "" {
		p.Status = models.ProjectPlanning
	}
	species, err := json.Marshal(p.Species)
	if err != nil {
		return fmt.Errorf("failed to encode species list: %w", err)
	}

	var startDate any
	if !p.StartDate.IsZero() {
		startDate = p.StartDate
	}

	result, err := s.db.ExecContext(ctx, `INSERT
		INTO reforestation_projects (project_name, region, area_hectares,
			trees_planted, target_trees, species, survival_rate,
			carbon_sequestration, start_date, status, volunteers)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ProjectName, p.Region, p.Area, p.TreesPlanted, p.TargetTrees,
		species, p.SurvivalRate, p.CarbonSequestration, startDate,
		p.Status, p.Volunteers)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted project id: %w", err)
	}
	p.ID = id
	log.Infof("Inserted reforestation project %d (%s)", id, p.ProjectName)
	return nil
}

// UpdateProject applies a partial update and returns the updated record.
// Nil fields of the update are left untouched; missing ids yield ErrNotFound.
func (s *ProjectService) UpdateProject(ctx context.Context, id int64, upd *models.ProjectUpdate) (*models.ReforestationProject, error) {
	sets := make([]string, 0)
	args := make([]any, 0)

	if upd.ProjectName != nil {
		sets = append(sets, "project_name = ?")
		args = append(args, *upd.ProjectName)
	}
	if upd.Region != nil {
		sets = append(sets, "region = ?")
		args = append(args, *upd.Region)
	}
	if upd.Area != nil {
		sets = append(sets, "area_hectares = ?")
		args = append(args, *upd.Area)
	}
	if upd.TreesPlanted != nil {
		sets = append(sets, "trees_planted = ?")
		args = append(args, *upd.TreesPlanted)
	}
	if upd.TargetTrees != nil {
		sets = append(sets, "target_trees = ?")
		args = append(args, *upd.TargetTrees)
	}
	if upd.Species != nil {
		species, err := json.Marshal(upd.Species)
		if err != nil {
			return nil, fmt.Errorf("failed to encode species list: %w", err)
		}
		sets = append(sets, "species = ?")
		args = append(args, species)
	}
	if upd.SurvivalRate != nil {
		sets = append(sets, "survival_rate = ?")
		args = append(args, *upd.SurvivalRate)
	}
	if upd.CarbonSequestration != nil {
		sets = append(sets, "carbon_sequestration = ?")
		args = append(args, *upd.CarbonSequestration)
	}
	if upd.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *upd.Status)
	}
	if upd.Volunteers != nil {
		sets = append(sets, "volunteers = ?")
		args = append(args, *upd.Volunteers)
	}

	if len(sets) > 0 {
		args = append(args, id)
		_, err := s.db.ExecContext(ctx,
			"UPDATE reforestation_projects SET "+strings.Join(sets, ", ")+" WHERE id = ?",
			args...)
		if err != nil {
			return nil, fmt.Errorf("failed to update project %d: %w", id, err)
		}
		log.Infof("Updated project %d (%d fields)", id, len(sets))
	}

	return s.GetProject(ctx, id)
}

// OverallStats computes the single-row roll-up over the full project set.
func (s *ProjectService) OverallStats(ctx context.Context) (aggregate.ProjectRollup, error) {
	projects, err := s.queryProjects(ctx, "", nil)
	if err != nil {
		return aggregate.ProjectRollup{}, err
	}
	return aggregate.RollupProjects(projects), nil
}

// Summary is the reforestation section of the dashboard snapshot.
func (s *ProjectService) Summary(ctx context.Context) (models.ReforestationSummary, error) {
	rollup, err := s.OverallStats(ctx)
	if err != nil {
		return models.ReforestationSummary{}, err
	}
	return models.ReforestationSummary{
		TotalTrees:     rollup.TotalTreesPlanted,
		ActiveProjects: rollup.ActiveProjects,
	}, nil
}
