package handler

import (
	"errors"
	"net/http"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/artkov/lancer/lancer-backend/internal/service"
	"github.com/artkov/lancer/lancer-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// StatsHandler handles the dashboard statistics endpoint
type StatsHandler struct {
	statsService *service.StatsService
	goalService  *service.GoalService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService *service.StatsService, goalService *service.GoalService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		goalService:  goalService,
	}
}

// StatsResponse represents the dashboard summary in API responses
type StatsResponse struct {
	TotalEarned      string                   `json:"totalEarned"`
	MonthlyEarned    string                   `json:"monthlyEarned"`
	AvgCost          string                   `json:"avgCost"`
	Completed        int                      `json:"completed"`
	MonthlyCompleted int                      `json:"monthlyCompleted"`
	AvgTime          int                      `json:"avgTime"`
	ByType           []TypeEarningsResponse   `json:"byType"`
	LongestProjects  []LongestProjectResponse `json:"longestProjects"`
	Goal             *GoalProgressResponse    `json:"goal,omitempty"`
}

// TypeEarningsResponse is one per-type group in the stats breakdown
type TypeEarningsResponse struct {
	Type   string `json:"type"`
	Earned string `json:"earned"`
	Count  int    `json:"count"`
}

// LongestProjectResponse is one entry in the longest-projects ranking
type LongestProjectResponse struct {
	ID             int32  `json:"id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	Days           int    `json:"days"`
	StartDate      string `json:"startDate"`
	CompletionDate string `json:"completionDate"`
}

// GoalProgressResponse reports progress against the month's goal, when one
// exists
type GoalProgressResponse struct {
	ID           int32   `json:"id"`
	Month        string  `json:"month"`
	TargetAmount string  `json:"targetAmount"`
	Progress     float64 `json:"progress"`
	RawProgress  float64 `json:"rawProgress"`
	Achieved     bool    `json:"achieved"`
}

// GetStats handles GET /api/stats?month=YYYY-MM
func (h *StatsHandler) GetStats(c echo.Context) error {
	month := c.QueryParam("month")
	if month == "" {
		month = util.CurrentMonthKey()
	}

	stats, err := h.statsService.Summary(month)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMonth) {
			return NewValidationError(c, "month must be in YYYY-MM format")
		}
		log.Error().Err(err).Str("month", month).Msg("Failed to compute stats")
		return NewInternalError(c, "Failed to fetch stats")
	}

	response := StatsResponse{
		TotalEarned:      stats.TotalEarned.StringFixed(2),
		MonthlyEarned:    stats.MonthlyEarned.StringFixed(2),
		AvgCost:          stats.AvgCost.StringFixed(2),
		Completed:        stats.CompletedCount,
		MonthlyCompleted: stats.MonthlyCompletedCount,
		AvgTime:          stats.AvgTimeDays,
		ByType:           make([]TypeEarningsResponse, len(stats.ByType)),
		LongestProjects:  make([]LongestProjectResponse, len(stats.LongestProjects)),
	}
	for i, group := range stats.ByType {
		response.ByType[i] = TypeEarningsResponse{
			Type:   group.Type,
			Earned: group.Earned.StringFixed(2),
			Count:  group.Count,
		}
	}
	for i, p := range stats.LongestProjects {
		response.LongestProjects[i] = LongestProjectResponse{
			ID:             p.ID,
			Name:           p.Name,
			Type:           p.Type,
			Days:           p.Days,
			StartDate:      p.StartDate.Format(util.DateFormat),
			CompletionDate: p.CompletionDate.Format(util.DateFormat),
		}
	}

	// The month's goal, when present, rides along so the dashboard does not
	// need a second round trip.
	goal, err := h.goalService.GetGoalByMonth(month)
	if err == nil {
		progress := h.goalService.Progress(goal, stats.MonthlyEarned)
		response.Goal = &GoalProgressResponse{
			ID:           goal.ID,
			Month:        goal.Month,
			TargetAmount: goal.TargetAmount.StringFixed(2),
			Progress:     progress.Percent,
			RawProgress:  progress.RawPercent,
			Achieved:     progress.Achieved,
		}
	} else if !errors.Is(err, domain.ErrGoalNotFound) {
		log.Error().Err(err).Str("month", month).Msg("Failed to fetch goal for stats")
	}

	return c.JSON(http.StatusOK, response)
}
