package models

import "time"

// Coordinates is a latitude/longitude pair as reported by the field devices
// and the report form.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Nutrients holds the measured macro-nutrient levels of a soil sample.
type Nutrients struct {
	Nitrogen   float64 `json:"nitrogen"`
	Phosphorus float64 `json:"phosphorus"`
	Potassium  float64 `json:"potassium"`
}

type SoilHealth struct {
	PH            float64   `json:"pH"`
	Moisture      float64   `json:"moisture"`
	OrganicMatter float64   `json:"organicMatter"`
	Nutrients     Nutrients `json:"nutrients"`
}

type Vegetation struct {
	Coverage float64 `json:"coverage"`
	NDVI     float64 `json:"ndvi"`
	Type     string  `json:"type"`
}

// AIPrediction is the model output attached to a land observation at
// ingestion time.
type AIPrediction struct {
	FutureRisk         float64  `json:"futureRisk"`
	Confidence         float64  `json:"confidence"`
	RecommendedActions []string `json:"recommendedActions"`
}

// LandObservation is a single soil/vegetation measurement for a region.
// Observations are immutable once created.
type LandObservation struct {
	ID               int64        `json:"id"`
	Region           string       `json:"region"`
	Coordinates      Coordinates  `json:"coordinates"`
	SoilHealth       SoilHealth   `json:"soilHealth"`
	Vegetation       Vegetation   `json:"vegetation"`
	DegradationLevel string       `json:"degradationLevel"`
	ErosionRisk      float64      `json:"erosionRisk"`
	Timestamp        time.Time    `json:"timestamp"`
	AIPrediction     AIPrediction `json:"aiPrediction"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// Degradation levels for land observations.
const (
	DegradationLow      = "Low"
	DegradationMedium   = "Medium"
	DegradationHigh     = "High"
	DegradationCritical = "Critical"
)

// ReforestationProject tracks a planting effort in a region. Status and the
// planted/volunteer counts are mutated by partial updates.
type ReforestationProject struct {
	ID                  int64     `json:"id"`
	ProjectName         string    `json:"projectName"`
	Region              string    `json:"region"`
	Area                float64   `json:"area"` // hectares
	TreesPlanted        int64     `json:"treesPlanted"`
	TargetTrees         int64     `json:"targetTrees"`
	Species             []string  `json:"species"`
	SurvivalRate        float64   `json:"survivalRate"`
	CarbonSequestration float64   `json:"carbonSequestration"`
	StartDate           time.Time `json:"startDate"`
	Status              string    `json:"status"`
	Volunteers          int64     `json:"volunteers"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Project statuses.
const (
	ProjectPlanning  = "Planning"
	ProjectActive    = "Active"
	ProjectCompleted = "Completed"
)

// ProjectUpdate carries the fields a PUT on a project may change. Nil fields
// are left untouched.
type ProjectUpdate struct {
	ProjectName         *string  `json:"projectName"`
	Region              *string  `json:"region"`
	Area                *float64 `json:"area"`
	TreesPlanted        *int64   `json:"treesPlanted"`
	TargetTrees         *int64   `json:"targetTrees"`
	Species             []string `json:"species"`
	SurvivalRate        *float64 `json:"survivalRate"`
	CarbonSequestration *float64 `json:"carbonSequestration"`
	Status              *string  `json:"status"`
	Volunteers          *int64   `json:"volunteers"`
}

// Alert is a reported environmental hazard. Status transitions
// (Active -> Acknowledged -> Resolved) are the only mutation.
type Alert struct {
	ID           int64       `json:"id"`
	Region       string      `json:"region"`
	AlertType    string      `json:"alertType"`
	Severity     string      `json:"severity"`
	Description  string      `json:"description"`
	Coordinates  Coordinates `json:"coordinates"`
	Status       string      `json:"status"`
	AffectedArea float64     `json:"affectedArea"`
	ReportedBy   string      `json:"reportedBy"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Alert lifecycle statuses.
const (
	AlertActive       = "Active"
	AlertAcknowledged = "Acknowledged"
	AlertResolved     = "Resolved"
)

// Alert severities.
const (
	SeverityLow      = "Low"
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"
	SeverityCritical = "Critical"
)

// Alert types.
const (
	AlertErosion         = "Erosion"
	AlertDrought         = "Drought"
	AlertDeforestation   = "Deforestation"
	AlertSoilDegradation = "Soil Degradation"
)

// User roles.
const (
	RoleFarmer      = "Farmer"
	RoleResearcher  = "Researcher"
	RolePolicymaker = "Policymaker"
	RoleNGO         = "NGO"
	RoleAdmin       = "Admin"
)

// Contributions are per-user counters incremented by external events.
type Contributions struct {
	DataReports    int64 `json:"dataReports"`
	ProjectsJoined int64 `json:"projectsJoined"`
}

type User struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Role          string        `json:"role"`
	Region        string        `json:"region"`
	Phone         string        `json:"phone"`
	Contributions Contributions `json:"contributions"`
	Verified      bool          `json:"verified"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// ContributionsUpdate is the body of the contribution-counter PATCH. Values
// are increments, not absolute counts.
type ContributionsUpdate struct {
	DataReports    *int64 `json:"dataReports"`
	ProjectsJoined *int64 `json:"projectsJoined"`
}

// AlertStatusUpdate is the body of the alert status PATCH.
type AlertStatusUpdate struct {
	Status string `json:"status"`
}

// PredictRequest is the input of the mock prediction endpoint.
type PredictRequest struct {
	Region      string         `json:"region"`
	SoilData    map[string]any `json:"soilData"`
	ClimateData map[string]any `json:"climateData"`
}

// Prediction is the mock model output.
type Prediction struct {
	Region             string         `json:"region"`
	DegradationRisk    float64        `json:"degradationRisk"`
	Confidence         float64        `json:"confidence"`
	Timeframe          string         `json:"timeframe"`
	RecommendedActions []string       `json:"recommendedActions"`
	ImpactMetrics      PredictImpacts `json:"impactMetrics"`
}

type PredictImpacts struct {
	PotentialSoilLoss    float64 `json:"potentialSoilLoss"`
	VegetationDecline    float64 `json:"vegetationDecline"`
	WaterRetentionChange float64 `json:"waterRetentionChange"`
}

// ViewPort is a south-west / north-east bounding box for map queries.
type ViewPort struct {
	LatMin float64 `json:"latmin"`
	LonMin float64 `json:"lonmin"`
	LatMax float64 `json:"latmax"`
	LonMax float64 `json:"lonmax"`
}

// MapPoint is one rendered map marker: either a single alert or a cluster
// of nearby alerts with its count.
type MapPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Count     int64   `json:"count"`
}

// BroadcastMessage is pushed to websocket subscribers when an alert is
// created or its status changes.
type BroadcastMessage struct {
	Type  string `json:"type"`
	Alert *Alert `json:"alert"`
}
