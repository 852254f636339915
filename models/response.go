package models

// Response is the uniform envelope every endpoint returns: a success flag
// plus either a payload or an error message.
type Response struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Stats   any    `json:"stats,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// DashboardData is the composite snapshot assembled by the dashboard call,
// keyed by domain area.
type DashboardData struct {
	LandHealth    LandHealthSummary    `json:"landHealth"`
	ActiveAlerts  int64                `json:"activeAlerts"`
	Reforestation ReforestationSummary `json:"reforestation"`
	ActiveUsers   int64                `json:"activeUsers"`
}

// LandHealthSummary is the land-data roll-up shown on the dashboard.
type LandHealthSummary struct {
	AvgSoilHealth float64 `json:"avgSoilHealth"`
	AvgVegetation float64 `json:"avgVegetation"`
	TotalRecords  int64   `json:"totalRecords"`
}

// ReforestationSummary is the project roll-up shown on the dashboard.
type ReforestationSummary struct {
	TotalTrees     int64 `json:"totalTrees"`
	ActiveProjects int64 `json:"activeProjects"`
}
