package handlers

import (
	"fmt"
	"net/http"

	"terrasense-service/config"
	"terrasense-service/database"
	"terrasense-service/models"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

const (
	landListLimit   = 100
	landRegionLimit = 50
)

// LandHandler handles the land data endpoints.
type LandHandler struct {
	landService *database.LandService
	cfg         *config.Config
}

func NewLandHandler(landService *database.LandService, cfg *config.Config) *LandHandler {
	return &LandHandler{landService: landService, cfg: cfg}
}

// ListLandData returns observations matching the optional region, level and
// date-range filters, newest first.
func (h *LandHandler) ListLandData(c *gin.Context) {
	f := database.LandFilters{
		Region:           c.Query("region"),
		DegradationLevel: c.Query("degradationLevel"),
	}
	if v := c.Query("startDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			badRequest(c, fmt.Sprintf("Parsing startDate: %v", err))
			return
		}
		f.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			badRequest(c, fmt.Sprintf("Parsing endDate: %v", err))
			return
		}
		f.EndDate = &t
	}

	data, err := h.landService.ListObservations(c.Request.Context(), f, landListLimit)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}
	respondList(c, data, len(data))
}

// ListByRegion returns the most recent observations of one region.
func (h *LandHandler) ListByRegion(c *gin.Context) {
	f := database.LandFilters{Region: c.Param("region")}
	data, err := h.landService.ListObservations(c.Request.Context(), f, landRegionLimit)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}
	respondList(c, data, len(data))
}

// CreateLandData ingests one observation.
func (h *LandHandler) CreateLandData(c *gin.Context) {
	o := &models.LandObservation{}
	if err := c.BindJSON(o); err != nil {
		log.Errorf("Failed to get the argument in /landdata call: %v", err)
		badRequest(c, "Could not read JSON input")
		return
	}
	if o.Region == "" {
		badRequest(c, "region is required")
		return
	}
	switch o.DegradationLevel {
	case "", models.DegradationLow, models.DegradationMedium, models.DegradationHigh, models.DegradationCritical:
	default:
		badRequest(c, "Invalid degradation level")
		return
	}

	if err := h.landService.CreateObservation(c.Request.Context(), o); err != nil {
		internalError(c, h.cfg, err)
		return
	}

	saved, err := h.landService.GetObservation(c.Request.Context(), o.ID)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}
	respondData(c, http.StatusCreated, saved)
}

// DegradationStats returns the per-level degradation breakdown.
func (h *LandHandler) DegradationStats(c *gin.Context) {
	stats, err := h.landService.DegradationStats(c.Request.Context())
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}
	respondStats(c, stats)
}
