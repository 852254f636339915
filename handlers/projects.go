package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"terrasense-service/config"
	"terrasense-service/database"
	"terrasense-service/models"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// ProjectHandler handles the reforestation project endpoints.
type ProjectHandler struct {
	projectService *database.ProjectService
	cfg            *config.Config
}

func NewProjectHandler(projectService *database.ProjectService, cfg *config.Config) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, cfg: cfg}
}

// ListProjects returns projects matching the optional status and region
// filters, newest first.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	f := database.ProjectFilters{
		Status: c.Query("status"),
		Region: c.Query("region"),
	}

	data, err := h.projectService.ListProjects(c.Request.Context(), f)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}
	respondList(c, data, len(data))
}

// CreateProject registers a new project.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	p := &models.ReforestationProject{}
	if err := c.BindJSON(p); err != nil {
		log.Errorf("Failed to get the argument in /reforestation call: %v", err)
		badRequest(c, "Could not read JSON input")
		return
	}

	if err := h.projectService.CreateProject(c.Request.Context(), p); err != nil {
		internalError(c, h.cfg, err)
		return
	}

	saved, err := h.projectService.GetProject(c.Request.Context(), p.ID)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}
	respondData(c, http.StatusCreated, saved)
}

// UpdateProject applies a partial update to one project.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid project id")
		return
	}

	upd := &models.ProjectUpdate{}
	if err := c.BindJSON(upd); err != nil {
		log.Errorf("Failed to get the argument in /reforestation/%d call: %v", id, err)
		badRequest(c, "Could not read JSON input")
		return
	}
	if upd.Status != nil {
		switch *upd.Status {
		case models.ProjectPlanning, models.ProjectActive, models.ProjectCompleted:
		default:
			badRequest(c, "Invalid project status")
			return
		}
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), id, upd)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			notFound(c, "Project not found")
			return
		}
		internalError(c, h.cfg, err)
		return
	}
	respondData(c, http.StatusOK, project)
}

// OverallStats returns the single-row reforestation roll-up.
func (h *ProjectHandler) OverallStats(c *gin.Context) {
	stats, err := h.projectService.OverallStats(c.Request.Context())
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}
	respondStats(c, stats)
}
