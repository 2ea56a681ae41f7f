package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/artkov/lancer/lancer-backend/internal/service"
	"github.com/artkov/lancer/lancer-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DayPlanHandler handles day-plan HTTP requests
type DayPlanHandler struct {
	dayPlanService *service.DayPlanService
}

// NewDayPlanHandler creates a new DayPlanHandler
func NewDayPlanHandler(dayPlanService *service.DayPlanService) *DayPlanHandler {
	return &DayPlanHandler{dayPlanService: dayPlanService}
}

// TaskPayload represents one task in a day-plan request or response
type TaskPayload struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Priority    string  `json:"priority"`
	Completed   bool    `json:"completed"`
}

// SaveDayPlanRequest represents the upsert day-plan request body
type SaveDayPlanRequest struct {
	Date  string        `json:"date"`
	Tasks []TaskPayload `json:"tasks"`
	Notes *string       `json:"notes,omitempty"`
}

// DayPlanResponse represents a day plan in API responses
type DayPlanResponse struct {
	ID    int32         `json:"id"`
	Date  string        `json:"date"`
	Tasks []TaskPayload `json:"tasks"`
	Notes *string       `json:"notes,omitempty"`
}

// GetDayPlans handles GET /api/dayplans
func (h *DayPlanHandler) GetDayPlans(c echo.Context) error {
	plans, err := h.dayPlanService.GetDayPlans()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch day plans")
		return NewInternalError(c, "Failed to fetch day plans")
	}

	response := make([]DayPlanResponse, len(plans))
	for i, plan := range plans {
		response[i] = toDayPlanResponse(plan)
	}
	return c.JSON(http.StatusOK, response)
}

// SaveDayPlan handles POST /api/dayplans, upserting by date. An empty task
// list removes the plan and responds {"success": true}.
func (h *DayPlanHandler) SaveDayPlan(c echo.Context) error {
	var req SaveDayPlanRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body")
	}
	if req.Date == "" {
		return NewValidationError(c, "date is required")
	}

	date, err := time.Parse(util.DateFormat, req.Date)
	if err != nil {
		return NewValidationError(c, "date must be in YYYY-MM-DD format")
	}

	tasks := make([]domain.Task, len(req.Tasks))
	for i, task := range req.Tasks {
		tasks[i] = domain.Task{
			Title:       task.Title,
			Description: task.Description,
			Priority:    domain.TaskPriority(task.Priority),
			Completed:   task.Completed,
		}
	}

	plan, err := h.dayPlanService.SaveDayPlan(date, tasks, req.Notes)
	if err != nil {
		if errors.Is(err, domain.ErrTitleRequired) || errors.Is(err, domain.ErrInvalidPriority) {
			return NewValidationError(c, err.Error())
		}
		log.Error().Err(err).Str("date", req.Date).Msg("Failed to save day plan")
		return NewInternalError(c, "Failed to save day plan")
	}
	if plan == nil {
		// Empty task list: the plan was removed.
		return NewSuccessResponse(c)
	}

	return c.JSON(http.StatusOK, toDayPlanResponse(plan))
}

// DeleteDayPlan handles DELETE /api/dayplans/:date. Deleting an absent plan
// still succeeds.
func (h *DayPlanHandler) DeleteDayPlan(c echo.Context) error {
	date, err := time.Parse(util.DateFormat, c.Param("date"))
	if err != nil {
		return NewValidationError(c, "date must be in YYYY-MM-DD format")
	}

	if err := h.dayPlanService.DeleteDayPlan(date); err != nil {
		log.Error().Err(err).Str("date", c.Param("date")).Msg("Failed to delete day plan")
		return NewInternalError(c, "Failed to delete day plan")
	}
	return NewSuccessResponse(c)
}

func toDayPlanResponse(plan *domain.DayPlan) DayPlanResponse {
	tasks := make([]TaskPayload, len(plan.Tasks))
	for i, task := range plan.Tasks {
		tasks[i] = TaskPayload{
			Title:       task.Title,
			Description: task.Description,
			Priority:    string(task.Priority),
			Completed:   task.Completed,
		}
	}
	return DayPlanResponse{
		ID:    plan.ID,
		Date:  plan.Date.Format(util.DateFormat),
		Tasks: tasks,
		Notes: plan.Notes,
	}
}
