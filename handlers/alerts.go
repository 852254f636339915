package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"terrasense-service/config"
	"terrasense-service/database"
	"terrasense-service/mapaggr"
	"terrasense-service/models"
	"terrasense-service/rabbitmq"
	"terrasense-service/services"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	geojson "github.com/paulmach/go.geojson"
)

const alertListLimit = 50

// AlertHandler handles the alert endpoints and pushes lifecycle events to
// the websocket hub and the optional notification queue.
type AlertHandler struct {
	alertService *database.AlertService
	hub          *services.AlertHub
	publisher    *rabbitmq.Publisher // nil when no queue is configured
	cfg          *config.Config
}

func NewAlertHandler(alertService *database.AlertService, hub *services.AlertHub, publisher *rabbitmq.Publisher, cfg *config.Config) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
		hub:          hub,
		publisher:    publisher,
		cfg:          cfg,
	}
}

// ListAlerts returns alerts matching the optional filters, newest first.
func (h *AlertHandler) ListAlerts(c *gin.Context) {
	f := database.AlertFilters{
		Status:    c.Query("status"),
		Severity:  c.Query("severity"),
		AlertType: c.Query("alertType"),
		Region:    c.Query("region"),
	}

	data, err := h.alertService.ListAlerts(c.Request.Context(), f, alertListLimit)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}
	respondList(c, data, len(data))
}

// CreateAlert records a new alert report and notifies subscribers.
func (h *AlertHandler) CreateAlert(c *gin.Context) {
	a := &models.Alert{}
	if err := c.BindJSON(a); err != nil {
		log.Errorf("Failed to get the argument in /alerts call: %v", err)
		badRequest(c, "Could not read JSON input")
		return
	}
	switch a.Severity {
	case "", models.SeverityLow, models.SeverityMedium, models.SeverityHigh, models.SeverityCritical:
	default:
		badRequest(c, "Invalid alert severity")
		return
	}
	switch a.AlertType {
	case "", models.AlertErosion, models.AlertDrought, models.AlertDeforestation, models.AlertSoilDegradation:
	default:
		badRequest(c, "Invalid alert type")
		return
	}
	switch a.Status {
	case "", models.AlertActive, models.AlertAcknowledged, models.AlertResolved:
	default:
		badRequest(c, "Invalid alert status")
		return
	}

	if err := h.alertService.CreateAlert(c.Request.Context(), a); err != nil {
		internalError(c, h.cfg, err)
		return
	}

	saved, err := h.alertService.GetAlert(c.Request.Context(), a.ID)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}

	h.notify("alert_created", saved)
	respondData(c, http.StatusCreated, saved)
}

// UpdateAlertStatus moves an alert through its lifecycle.
func (h *AlertHandler) UpdateAlertStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid alert id")
		return
	}

	upd := &models.AlertStatusUpdate{}
	if err := c.BindJSON(upd); err != nil {
		log.Errorf("Failed to get the argument in /alerts/%d/status call: %v", id, err)
		badRequest(c, "Could not read JSON input")
		return
	}
	switch upd.Status {
	case models.AlertActive, models.AlertAcknowledged, models.AlertResolved:
	default:
		badRequest(c, "Invalid alert status")
		return
	}

	alert, err := h.alertService.UpdateAlertStatus(c.Request.Context(), id, upd.Status)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			notFound(c, "Alert not found")
			return
		}
		internalError(c, h.cfg, err)
		return
	}

	h.notify("alert_status_changed", alert)
	respondData(c, http.StatusOK, alert)
}

// ActiveSeverityStats returns the active alerts grouped by severity.
func (h *AlertHandler) ActiveSeverityStats(c *gin.Context) {
	stats, err := h.alertService.ActiveSeverityStats(c.Request.Context())
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}
	respondData(c, http.StatusOK, stats)
}

// MapAlerts returns the active alerts in a viewport, clustered for display.
// Without viewport parameters the whole world is clustered.
func (h *AlertHandler) MapAlerts(c *gin.Context) {
	vp := models.ViewPort{LatMin: -90, LonMin: -180, LatMax: 90, LonMax: 180}
	if c.Query("sw_lat") != "" || c.Query("ne_lat") != "" {
		var err error
		if vp.LatMin, err = strconv.ParseFloat(c.Query("sw_lat"), 64); err != nil {
			badRequest(c, fmt.Sprintf("Parsing sw_lat: %v", err))
			return
		}
		if vp.LonMin, err = strconv.ParseFloat(c.Query("sw_lon"), 64); err != nil {
			badRequest(c, fmt.Sprintf("Parsing sw_lon: %v", err))
			return
		}
		if vp.LatMax, err = strconv.ParseFloat(c.Query("ne_lat"), 64); err != nil {
			badRequest(c, fmt.Sprintf("Parsing ne_lat: %v", err))
			return
		}
		if vp.LonMax, err = strconv.ParseFloat(c.Query("ne_lon"), 64); err != nil {
			badRequest(c, fmt.Sprintf("Parsing ne_lon: %v", err))
			return
		}
	}

	alerts, err := h.alertService.ListAlerts(c.Request.Context(),
		database.AlertFilters{Status: models.AlertActive}, 0)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}

	aggr := mapaggr.NewAggregator(vp)
	for _, a := range alerts {
		lat, lon := a.Coordinates.Latitude, a.Coordinates.Longitude
		if lat < vp.LatMin || lat > vp.LatMax || lon < vp.LonMin || lon > vp.LonMax {
			continue
		}
		aggr.AddPoint(lat, lon)
	}

	points := aggr.ToArray()
	respondList(c, points, len(points))
}

// GeoJSONAlerts renders the active alerts as a GeoJSON feature collection
// for the map layer.
func (h *AlertHandler) GeoJSONAlerts(c *gin.Context) {
	alerts, err := h.alertService.ListAlerts(c.Request.Context(),
		database.AlertFilters{Status: models.AlertActive}, 0)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}

	fc := geojson.NewFeatureCollection()
	for _, a := range alerts {
		f := geojson.NewPointFeature([]float64{a.Coordinates.Longitude, a.Coordinates.Latitude})
		f.SetProperty("id", a.ID)
		f.SetProperty("region", a.Region)
		f.SetProperty("alertType", a.AlertType)
		f.SetProperty("severity", a.Severity)
		f.SetProperty("description", a.Description)
		f.SetProperty("affectedArea", a.AffectedArea)
		fc.AddFeature(f)
	}

	c.JSON(http.StatusOK, fc)
}

// notify pushes an alert event to websocket subscribers and, when a queue is
// configured, to the notification exchange. Queue failures are logged, not
// surfaced; the alert itself is already stored.
func (h *AlertHandler) notify(event string, alert *models.Alert) {
	if h.hub != nil {
		h.hub.Broadcast(models.BroadcastMessage{Type: event, Alert: alert})
	}
	if h.publisher != nil {
		if err := h.publisher.Publish(models.BroadcastMessage{Type: event, Alert: alert}); err != nil {
			log.Errorf("Failed to publish %s event for alert %d: %v", event, alert.ID, err)
		}
	}
}
