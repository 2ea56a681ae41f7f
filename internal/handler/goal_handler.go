package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/artkov/lancer/lancer-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// GoalHandler handles goal-related HTTP requests
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// SaveGoalRequest represents the upsert goal request body
type SaveGoalRequest struct {
	Month        string `json:"month"`
	TargetAmount string `json:"targetAmount"`
}

// GoalResponse represents a goal in API responses
type GoalResponse struct {
	ID           int32  `json:"id"`
	Month        string `json:"month"`
	TargetAmount string `json:"targetAmount"`
}

// GetGoals handles GET /api/goals
func (h *GoalHandler) GetGoals(c echo.Context) error {
	goals, err := h.goalService.GetGoals()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch goals")
		return NewInternalError(c, "Failed to fetch goals")
	}

	response := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		response[i] = toGoalResponse(goal)
	}
	return c.JSON(http.StatusOK, response)
}

// SaveGoal handles POST /api/goals, upserting by month
func (h *GoalHandler) SaveGoal(c echo.Context) error {
	var req SaveGoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body")
	}
	if req.Month == "" || req.TargetAmount == "" {
		return NewValidationError(c, "missing required fields: month, targetAmount")
	}

	target, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		return NewValidationError(c, "targetAmount must be a valid decimal number")
	}

	goal, err := h.goalService.SaveGoal(req.Month, target)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMonth) || errors.Is(err, domain.ErrInvalidTarget) {
			return NewValidationError(c, err.Error())
		}
		log.Error().Err(err).Str("month", req.Month).Msg("Failed to save goal")
		return NewInternalError(c, "Failed to save goal")
	}

	log.Info().Int32("goal_id", goal.ID).Str("month", goal.Month).Msg("Goal saved")
	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// DeleteGoal handles DELETE /api/goals/:id
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid goal ID")
	}

	if err := h.goalService.DeleteGoal(int32(id)); err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return NewNotFoundError(c, "Goal not found")
		}
		log.Error().Err(err).Int("goal_id", id).Msg("Failed to delete goal")
		return NewInternalError(c, "Failed to delete goal")
	}

	log.Info().Int("goal_id", id).Msg("Goal deleted")
	return NewSuccessResponse(c)
}

func toGoalResponse(goal *domain.Goal) GoalResponse {
	return GoalResponse{
		ID:           goal.ID,
		Month:        goal.Month,
		TargetAmount: goal.TargetAmount.StringFixed(2),
	}
}
