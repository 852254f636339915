package database

import (
	"context"

	"terrasense-service/models"

	"golang.org/x/sync/errgroup"
)

// The dashboard snapshot composes four independent aggregations. Each source
// is a narrow interface so tests can substitute instrumented fakes.

type landSummarizer interface {
	HealthSummary(ctx context.Context) (models.LandHealthSummary, error)
}

type alertCounter interface {
	CountActive(ctx context.Context) (int64, error)
}

type projectSummarizer interface {
	Summary(ctx context.Context) (models.ReforestationSummary, error)
}

type userCounter interface {
	CountVerified(ctx context.Context) (int64, error)
}

// DashboardService assembles the consolidated dashboard snapshot.
type DashboardService struct {
	land     landSummarizer
	alerts   alertCounter
	projects projectSummarizer
	users    userCounter
}

func NewDashboardService(land *LandService, alerts *AlertService, projects *ProjectService, users *UserService) *DashboardService {
	return &DashboardService{
		land:     land,
		alerts:   alerts,
		projects: projects,
		users:    users,
	}
}

// Snapshot runs the four section aggregations concurrently and merges their
// results. The sections are independent, so total latency is bounded by the
// slowest one. A failure in any section fails the whole snapshot with that
// error; partial results are never returned.
func (s *DashboardService) Snapshot(ctx context.Context) (*models.DashboardData, error) {
	data := &models.DashboardData{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		land, err := s.land.HealthSummary(ctx)
		if err != nil {
			return err
		}
		data.LandHealth = land
		return nil
	})
	g.Go(func() error {
		cnt, err := s.alerts.CountActive(ctx)
		if err != nil {
			return err
		}
		data.ActiveAlerts = cnt
		return nil
	})
	g.Go(func() error {
		projects, err := s.projects.Summary(ctx)
		if err != nil {
			return err
		}
		data.Reforestation = projects
		return nil
	})
	g.Go(func() error {
		cnt, err := s.users.CountVerified(ctx)
		if err != nil {
			return err
		}
		data.ActiveUsers = cnt
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}
