package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/artkov/lancer/lancer-backend/internal/service"
	"github.com/artkov/lancer/lancer-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ProjectRequest represents the create/update project request body
type ProjectRequest struct {
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Cost      string  `json:"cost"`
	StartDate string  `json:"startDate"`
	Deadline  string  `json:"deadline"`
	Notes     *string `json:"notes,omitempty"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID             int32   `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Cost           string  `json:"cost"`
	StartDate      string  `json:"startDate"`
	Deadline       string  `json:"deadline"`
	Notes          *string `json:"notes,omitempty"`
	Completed      bool    `json:"completed"`
	CompletionDate *string `json:"completionDate"`
	CreatedAt      string  `json:"createdAt"`
}

func (h *ProjectHandler) parseInput(req *ProjectRequest) (service.ProjectInput, error) {
	var input service.ProjectInput

	if req.Name == "" || req.Type == "" || req.Cost == "" || req.Deadline == "" {
		return input, errors.New("missing required fields: name, type, cost, deadline")
	}

	cost, err := decimal.NewFromString(req.Cost)
	if err != nil {
		return input, errors.New("cost must be a valid decimal number")
	}

	deadline, err := time.Parse(util.DateFormat, req.Deadline)
	if err != nil {
		return input, errors.New("deadline must be in YYYY-MM-DD format")
	}

	var startDate time.Time
	if req.StartDate != "" {
		startDate, err = time.Parse(util.DateFormat, req.StartDate)
		if err != nil {
			return input, errors.New("startDate must be in YYYY-MM-DD format")
		}
	}

	return service.ProjectInput{
		Name:      req.Name,
		Type:      req.Type,
		Cost:      cost,
		StartDate: startDate,
		Deadline:  deadline,
		Notes:     req.Notes,
	}, nil
}

// GetProjects handles GET /api/projects
func (h *ProjectHandler) GetProjects(c echo.Context) error {
	projects, err := h.projectService.GetProjects()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch projects")
		return NewInternalError(c, "Failed to fetch projects")
	}

	response := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		response[i] = toProjectResponse(project)
	}
	return c.JSON(http.StatusOK, response)
}

// CreateProject handles POST /api/projects
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body")
	}

	input, err := h.parseInput(&req)
	if err != nil {
		return NewValidationError(c, err.Error())
	}

	project, err := h.projectService.CreateProject(input)
	if err != nil {
		if isValidationError(err) {
			return NewValidationError(c, err.Error())
		}
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create project")
		return NewInternalError(c, "Failed to create project")
	}

	log.Info().Int32("project_id", project.ID).Str("name", project.Name).Msg("Project created")
	return c.JSON(http.StatusCreated, toProjectResponse(project))
}

// UpdateProject handles PUT /api/projects/:id
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid project ID")
	}

	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body")
	}

	input, err := h.parseInput(&req)
	if err != nil {
		return NewValidationError(c, err.Error())
	}

	project, err := h.projectService.UpdateProject(int32(id), input)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return NewNotFoundError(c, "Project not found")
		}
		if isValidationError(err) {
			return NewValidationError(c, err.Error())
		}
		log.Error().Err(err).Int("project_id", id).Msg("Failed to update project")
		return NewInternalError(c, "Failed to update project")
	}

	log.Info().Int32("project_id", project.ID).Msg("Project updated")
	return c.JSON(http.StatusOK, toProjectResponse(project))
}

// DeleteProject handles DELETE /api/projects/:id
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid project ID")
	}

	if err := h.projectService.DeleteProject(int32(id)); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return NewNotFoundError(c, "Project not found")
		}
		log.Error().Err(err).Int("project_id", id).Msg("Failed to delete project")
		return NewInternalError(c, "Failed to delete project")
	}

	log.Info().Int("project_id", id).Msg("Project deleted")
	return NewSuccessResponse(c)
}

// ToggleProject handles PATCH /api/projects/:id/toggle
func (h *ProjectHandler) ToggleProject(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid project ID")
	}

	project, err := h.projectService.ToggleCompletion(int32(id))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return NewNotFoundError(c, "Project not found")
		}
		log.Error().Err(err).Int("project_id", id).Msg("Failed to toggle project")
		return NewInternalError(c, "Failed to toggle project")
	}

	log.Info().Int32("project_id", project.ID).Bool("completed", project.Completed).Msg("Project completion toggled")
	return c.JSON(http.StatusOK, toProjectResponse(project))
}

func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrNameRequired) ||
		errors.Is(err, domain.ErrNameTooLong) ||
		errors.Is(err, domain.ErrTypeRequired) ||
		errors.Is(err, domain.ErrInvalidCost) ||
		errors.Is(err, domain.ErrDeadlineRequired)
}

func toProjectResponse(project *domain.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:        project.ID,
		Name:      project.Name,
		Type:      project.Type,
		Cost:      project.Cost.StringFixed(2),
		StartDate: project.StartDate.Format(util.DateFormat),
		Deadline:  project.Deadline.Format(util.DateFormat),
		Notes:     project.Notes,
		Completed: project.Completed,
		CreatedAt: project.CreatedAt.Format(time.RFC3339),
	}
	if project.CompletionDate != nil {
		completionDate := project.CompletionDate.Format(util.DateFormat)
		resp.CompletionDate = &completionDate
	}
	return resp
}
