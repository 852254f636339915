package handlers

import (
	"math/rand"
	"net/http"
	"strconv"

	"terrasense-service/config"
	"terrasense-service/database"
	"terrasense-service/models"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

const defaultLookbackMonths = 6

// AnalyticsHandler handles the dashboard, prediction and time-series
// endpoints.
type AnalyticsHandler struct {
	dashboardService *database.DashboardService
	landService      *database.LandService
	cfg              *config.Config
}

func NewAnalyticsHandler(dashboardService *database.DashboardService, landService *database.LandService, cfg *config.Config) *AnalyticsHandler {
	return &AnalyticsHandler{
		dashboardService: dashboardService,
		landService:      landService,
		cfg:              cfg,
	}
}

// Dashboard returns the consolidated snapshot across all four record kinds.
// The four section aggregations run concurrently; any section failure fails
// the whole call.
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	data, err := h.dashboardService.Snapshot(c.Request.Context())
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}
	respondData(c, http.StatusOK, data)
}

// Predict is a mock prediction endpoint; in production this would call the
// ML model service.
func (h *AnalyticsHandler) Predict(c *gin.Context) {
	req := &models.PredictRequest{}
	if err := c.BindJSON(req); err != nil {
		log.Errorf("Failed to get the argument in /analytics/predict call: %v", err)
		badRequest(c, "Could not read JSON input")
		return
	}

	prediction := models.Prediction{
		Region:          req.Region,
		DegradationRisk: rand.Float64() * 100,
		Confidence:      85 + rand.Float64()*10,
		Timeframe:       "6 months",
		RecommendedActions: []string{
			"Increase soil organic matter through composting",
			"Implement contour farming techniques",
			"Plant cover crops during off-season",
			"Establish erosion control structures",
		},
		ImpactMetrics: models.PredictImpacts{
			PotentialSoilLoss:    rand.Float64() * 50,
			VegetationDecline:    rand.Float64() * 30,
			WaterRetentionChange: rand.Float64() * 40,
		},
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "prediction": prediction})
}

// TimeSeries returns the month-bucketed soil and vegetation means for one
// region over a whole-month lookback window.
func (h *AnalyticsHandler) TimeSeries(c *gin.Context) {
	region := c.Param("region")

	months := defaultLookbackMonths
	if v := c.Query("months"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m <= 0 {
			badRequest(c, "months must be a positive integer")
			return
		}
		months = m
	}

	data, err := h.landService.MonthlySeries(c.Request.Context(), region, months)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}
	respondData(c, http.StatusOK, data)
}
