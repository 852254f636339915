package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"terrasense-service/models"

	"github.com/apex/log"
)

func sampleLandData(now time.Time) []models.LandObservation {
	return []models.LandObservation{
		{
			Region:      "Northern Region",
			Coordinates: models.Coordinates{Latitude: 1.2921, Longitude: 36.8219},
			SoilHealth: models.SoilHealth{
				PH: 6.5, Moisture: 45, OrganicMatter: 3.2,
				Nutrients: models.Nutrients{Nitrogen: 0.15, Phosphorus: 0.08, Potassium: 0.12},
			},
			Vegetation:       models.Vegetation{Coverage: 65, NDVI: 0.6, Type: "Grassland"},
			DegradationLevel: models.DegradationMedium,
			ErosionRisk:      55,
			Timestamp:        now,
			AIPrediction: models.AIPrediction{
				FutureRisk: 68, Confidence: 87,
				RecommendedActions: []string{"Implement terracing", "Plant cover crops", "Add organic matter"},
			},
		},
		{
			Region:      "Eastern Region",
			Coordinates: models.Coordinates{Latitude: -1.2864, Longitude: 38.8172},
			SoilHealth: models.SoilHealth{
				PH: 5.8, Moisture: 35, OrganicMatter: 2.5,
				Nutrients: models.Nutrients{Nitrogen: 0.1, Phosphorus: 0.05, Potassium: 0.08},
			},
			Vegetation:       models.Vegetation{Coverage: 40, NDVI: 0.4, Type: "Sparse vegetation"},
			DegradationLevel: models.DegradationHigh,
			ErosionRisk:      75,
			Timestamp:        now,
			AIPrediction: models.AIPrediction{
				FutureRisk: 85, Confidence: 92,
				RecommendedActions: []string{"Urgent reforestation", "Erosion control structures", "Soil conservation"},
			},
		},
		{
			Region:      "Western Region",
			Coordinates: models.Coordinates{Latitude: -0.4172, Longitude: 34.285},
			SoilHealth: models.SoilHealth{
				PH: 7.2, Moisture: 60, OrganicMatter: 4.5,
				Nutrients: models.Nutrients{Nitrogen: 0.2, Phosphorus: 0.12, Potassium: 0.18},
			},
			Vegetation:       models.Vegetation{Coverage: 85, NDVI: 0.8, Type: "Forest"},
			DegradationLevel: models.DegradationLow,
			ErosionRisk:      25,
			Timestamp:        now,
			AIPrediction: models.AIPrediction{
				FutureRisk: 30, Confidence: 78,
				RecommendedActions: []string{"Maintain current practices", "Monitor regularly"},
			},
		},
		{
			Region:      "Southern Region",
			Coordinates: models.Coordinates{Latitude: -4.0435, Longitude: 39.6682},
			SoilHealth: models.SoilHealth{
				PH: 6.8, Moisture: 50, OrganicMatter: 3.8,
				Nutrients: models.Nutrients{Nitrogen: 0.18, Phosphorus: 0.1, Potassium: 0.15},
			},
			Vegetation:       models.Vegetation{Coverage: 70, NDVI: 0.65, Type: "Mixed vegetation"},
			DegradationLevel: models.DegradationMedium,
			ErosionRisk:      45,
			Timestamp:        now,
			AIPrediction: models.AIPrediction{
				FutureRisk: 52, Confidence: 85,
				RecommendedActions: []string{"Contour plowing", "Agroforestry integration"},
			},
		},
	}
}

func sampleProjects() []models.ReforestationProject {
	return []models.ReforestationProject{
		{
			ProjectName: "Green Valley Initiative", Region: "Northern Region",
			Area: 250, TreesPlanted: 12000, TargetTrees: 15000,
			Species:      []string{"Acacia", "Eucalyptus", "Indigenous trees"},
			SurvivalRate: 85, CarbonSequestration: 3600,
			StartDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Status:    models.ProjectActive, Volunteers: 156,
		},
		{
			ProjectName: "Coastal Restoration", Region: "Eastern Region",
			Area: 180, TreesPlanted: 8500, TargetTrees: 10000,
			Species:      []string{"Mangroves", "Coconut palms"},
			SurvivalRate: 92, CarbonSequestration: 2550,
			StartDate: time.Date(2023, 9, 20, 0, 0, 0, 0, time.UTC),
			Status:    models.ProjectActive, Volunteers: 89,
		},
		{
			ProjectName: "Highland Forest Recovery", Region: "Western Region",
			Area: 400, TreesPlanted: 20000, TargetTrees: 20000,
			Species:      []string{"Cedar", "Podocarpus", "Bamboo"},
			SurvivalRate: 88, CarbonSequestration: 6000,
			StartDate: time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC),
			Status:    models.ProjectCompleted, Volunteers: 423,
		},
	}
}

func sampleAlerts() []models.Alert {
	return []models.Alert{
		{
			Region: "Eastern Region", AlertType: "Erosion", Severity: "High",
			Description: "Severe soil erosion detected in agricultural area",
			Coordinates: models.Coordinates{Latitude: -1.2864, Longitude: 38.8172},
			Status:      models.AlertActive, AffectedArea: 45,
			ReportedBy:  "Satellite Monitoring System",
		},
		{
			Region: "Northern Region", AlertType: "Drought", Severity: "Medium",
			Description: "Low soil moisture levels detected",
			Coordinates: models.Coordinates{Latitude: 1.2921, Longitude: 36.8219},
			Status:      models.AlertAcknowledged, AffectedArea: 120,
			ReportedBy:  "Local Farmer",
		},
		{
			Region: "Southern Region", AlertType: "Deforestation", Severity: "Critical",
			Description: "Rapid vegetation loss in protected area",
			Coordinates: models.Coordinates{Latitude: -4.0435, Longitude: 39.6682},
			Status:      models.AlertActive, AffectedArea: 78,
			ReportedBy:  "Field Survey Team",
		},
	}
}

func sampleUsers() []models.User {
	return []models.User{
		{
			Name: "John Kamau", Email: "john.kamau@example.com", Role: "Farmer",
			Region: "Northern Region", Phone: "+254712345678",
			Contributions: models.Contributions{DataReports: 15, ProjectsJoined: 3},
			Verified:      true,
		},
		{
			Name: "Dr. Sarah Wanjiru", Email: "sarah.wanjiru@research.org", Role: "Researcher",
			Region: "Western Region", Phone: "+254723456789",
			Contributions: models.Contributions{DataReports: 42, ProjectsJoined: 8},
			Verified:      true,
		},
		{
			Name: "Peter Omondi", Email: "peter.omondi@gov.ke", Role: "Policymaker",
			Region: "Eastern Region", Phone: "+254734567890",
			Contributions: models.Contributions{DataReports: 8, ProjectsJoined: 12},
			Verified:      true,
		},
		{
			Name: "Grace Mwangi", Email: "grace.mwangi@ngo.org", Role: "NGO",
			Region: "Southern Region", Phone: "+254745678901",
			Contributions: models.Contributions{DataReports: 28, ProjectsJoined: 15},
			Verified:      true,
		},
	}
}

// Seed wipes the four tables and inserts the sample fixture set. Meant for
// development and demo databases only.
func Seed(ctx context.Context, db *sql.DB) error {
	log.Info("Seeding database with sample data...")

	for _, table := range []string{"land_data", "reforestation_projects", "alerts", "users"} {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	land := NewLandService(db)
	for _, o := range sampleLandData(time.Now().UTC()) {
		o := o
		if err := land.CreateObservation(ctx, &o); err != nil {
			return err
		}
	}

	projects := NewProjectService(db)
	for _, p := range sampleProjects() {
		p := p
		if err := projects.CreateProject(ctx, &p); err != nil {
			return err
		}
	}

	alerts := NewAlertService(db)
	for _, a := range sampleAlerts() {
		a := a
		if err := alerts.CreateAlert(ctx, &a); err != nil {
			return err
		}
	}

	users := NewUserService(db)
	for _, u := range sampleUsers() {
		u := u
		if err := users.CreateUser(ctx, &u); err != nil {
			return err
		}
	}

	log.Info("Database seeding completed")
	return nil
}
