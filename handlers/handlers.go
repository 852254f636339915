// Package handlers wires the HTTP surface to the database services. Every
// endpoint answers with the uniform success/error envelope.
package handlers

import (
	"net/http"
	"time"

	"terrasense-service/config"
	"terrasense-service/models"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, models.Response{Success: true, Data: data})
}

func respondList(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, models.Response{Success: true, Count: &count, Data: data})
}

func respondStats(c *gin.Context, stats any) {
	c.JSON(http.StatusOK, models.Response{Success: true, Stats: stats})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, models.Response{Success: false, Error: msg})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, models.Response{Success: false, Error: msg})
}

// internalError hides error detail from clients outside development
// environments.
func internalError(c *gin.Context, cfg *config.Config, err error) {
	log.Errorf("Internal error in %s: %v", c.FullPath(), err)
	msg := "Internal server error"
	if cfg.IsDevelopment() {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, models.Response{Success: false, Error: msg})
}

// parseDate accepts RFC3339 timestamps or plain dates for the range filters.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// HealthCheck returns a simple health status
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "OK",
		Message:   "TerraSense API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// NotFoundRoute is the fallback for unknown paths.
func NotFoundRoute(c *gin.Context) {
	notFound(c, "Route not found")
}
