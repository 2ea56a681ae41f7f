package handler

import (
	"errors"
	"net/http"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/artkov/lancer/lancer-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ProjectTypeHandler handles project-type HTTP requests
type ProjectTypeHandler struct {
	projectService *service.ProjectService
}

// NewProjectTypeHandler creates a new ProjectTypeHandler
func NewProjectTypeHandler(projectService *service.ProjectService) *ProjectTypeHandler {
	return &ProjectTypeHandler{projectService: projectService}
}

// CreateProjectTypeRequest represents the create project-type request body
type CreateProjectTypeRequest struct {
	Name string `json:"name"`
}

// GetProjectTypes handles GET /api/project-types
func (h *ProjectTypeHandler) GetProjectTypes(c echo.Context) error {
	types, err := h.projectService.GetProjectTypes()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch project types")
		return NewInternalError(c, "Failed to fetch project types")
	}
	if types == nil {
		types = []*domain.ProjectType{}
	}
	return c.JSON(http.StatusOK, types)
}

// CreateProjectType handles POST /api/project-types
func (h *ProjectTypeHandler) CreateProjectType(c echo.Context) error {
	var req CreateProjectTypeRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body")
	}
	if req.Name == "" {
		return NewValidationError(c, "Name is required")
	}

	projectType, err := h.projectService.CreateProjectType(req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) || errors.Is(err, domain.ErrNameTooLong) {
			return NewValidationError(c, err.Error())
		}
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create project type")
		return NewInternalError(c, "Failed to create project type")
	}

	return c.JSON(http.StatusCreated, projectType)
}
