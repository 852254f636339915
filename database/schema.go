package database

import (
	"database/sql"
	"fmt"

	"github.com/apex/log"
)

// InitSchema creates the necessary database tables if they don't exist
func InitSchema(db *sql.DB) error {
	log.Info("Initializing terrasense database schema...")

	landDataTableSQL := `
	CREATE TABLE IF NOT EXISTS land_data(
		id BIGINT NOT NULL AUTO_INCREMENT,
		region VARCHAR(255) NOT NULL,
		latitude DOUBLE NOT NULL DEFAULT 0,
		longitude DOUBLE NOT NULL DEFAULT 0,
		soil_ph DOUBLE NOT NULL DEFAULT 0,
		soil_moisture DOUBLE NOT NULL DEFAULT 0,
		organic_matter DOUBLE NOT NULL DEFAULT 0,
		nitrogen DOUBLE NOT NULL DEFAULT 0,
		phosphorus DOUBLE NOT NULL DEFAULT 0,
		potassium DOUBLE NOT NULL DEFAULT 0,
		veg_coverage DOUBLE NOT NULL DEFAULT 0,
		veg_ndvi DOUBLE NOT NULL DEFAULT 0,
		veg_type VARCHAR(255),
		degradation_level ENUM('Low', 'Medium', 'High', 'Critical'),
		erosion_risk DOUBLE NOT NULL DEFAULT 0,
		observed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		ai_future_risk DOUBLE NOT NULL DEFAULT 0,
		ai_confidence DOUBLE NOT NULL DEFAULT 0,
		ai_actions JSON,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		INDEX region_index (region),
		INDEX observed_at_index (observed_at)
	)`

	if _, err := db.Exec(landDataTableSQL); err != nil {
		return fmt.Errorf("failed to create land_data table: %w", err)
	}
	log.Info("Land_data table created/verified")

	projectsTableSQL := `
	CREATE TABLE IF NOT EXISTS reforestation_projects(
		id BIGINT NOT NULL AUTO_INCREMENT,
		project_name VARCHAR(255),
		region VARCHAR(255),
		area_hectares DOUBLE NOT NULL DEFAULT 0,
		trees_planted BIGINT NOT NULL DEFAULT 0,
		target_trees BIGINT NOT NULL DEFAULT 0,
		species JSON,
		survival_rate DOUBLE NOT NULL DEFAULT 0,
		carbon_sequestration DOUBLE NOT NULL DEFAULT 0,
		start_date TIMESTAMP NULL,
		status ENUM('Planning', 'Active', 'Completed') NOT NULL DEFAULT 'Planning',
		volunteers BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		INDEX region_index (region),
		INDEX status_index (status)
	)`

	if _, err := db.Exec(projectsTableSQL); err != nil {
		return fmt.Errorf("failed to create reforestation_projects table: %w", err)
	}
	log.Info("Reforestation_projects table created/verified")

	alertsTableSQL := `
	CREATE TABLE IF NOT EXISTS alerts(
		id BIGINT NOT NULL AUTO_INCREMENT,
		region VARCHAR(255),
		alert_type ENUM('Erosion', 'Drought', 'Deforestation', 'Soil Degradation'),
		severity ENUM('Low', 'Medium', 'High', 'Critical'),
		description TEXT,
		latitude DOUBLE NOT NULL DEFAULT 0,
		longitude DOUBLE NOT NULL DEFAULT 0,
		status ENUM('Active', 'Acknowledged', 'Resolved') NOT NULL DEFAULT 'Active',
		affected_area DOUBLE NOT NULL DEFAULT 0,
		reported_by VARCHAR(255),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		INDEX region_index (region),
		INDEX status_index (status)
	)`

	if _, err := db.Exec(alertsTableSQL); err != nil {
		return fmt.Errorf("failed to create alerts table: %w", err)
	}
	log.Info("Alerts table created/verified")

	usersTableSQL := `
	CREATE TABLE IF NOT EXISTS users(
		id BIGINT NOT NULL AUTO_INCREMENT,
		name VARCHAR(255),
		email VARCHAR(255) NOT NULL,
		role ENUM('Farmer', 'Researcher', 'Policymaker', 'NGO', 'Admin'),
		region VARCHAR(255),
		phone VARCHAR(64),
		data_reports BIGINT NOT NULL DEFAULT 0,
		projects_joined BIGINT NOT NULL DEFAULT 0,
		verified BOOL NOT NULL DEFAULT false,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE INDEX email_index (email),
		INDEX role_index (role)
	)`

	if _, err := db.Exec(usersTableSQL); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	log.Info("Users table created/verified")

	return nil
}
