package service

import (
	"regexp"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/shopspring/decimal"
)

var monthKeyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// GoalService handles monthly earnings targets
type GoalService struct {
	goalRepo domain.GoalRepository
}

// NewGoalService creates a new GoalService
func NewGoalService(goalRepo domain.GoalRepository) *GoalService {
	return &GoalService{goalRepo: goalRepo}
}

// GetGoals retrieves all goals
func (s *GoalService) GetGoals() ([]*domain.Goal, error) {
	return s.goalRepo.GetAll()
}

// GetGoalByMonth retrieves the goal for a year-month key
func (s *GoalService) GetGoalByMonth(month string) (*domain.Goal, error) {
	return s.goalRepo.GetByMonth(month)
}

// SaveGoal upserts the goal for a month: a second save for the same month
// overwrites the target amount rather than creating a duplicate.
func (s *GoalService) SaveGoal(month string, targetAmount decimal.Decimal) (*domain.Goal, error) {
	if !monthKeyPattern.MatchString(month) {
		return nil, domain.ErrInvalidMonth
	}
	if targetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidTarget
	}
	return s.goalRepo.Upsert(month, targetAmount)
}

// DeleteGoal removes a goal
func (s *GoalService) DeleteGoal(id int32) error {
	return s.goalRepo.Delete(id)
}

// Progress compares monthly earnings against a goal. Percent is capped at
// 100 for display; Achieved keys off the uncapped figure.
func (s *GoalService) Progress(goal *domain.Goal, monthlyEarned decimal.Decimal) domain.GoalProgress {
	if goal.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return domain.GoalProgress{}
	}

	raw, _ := monthlyEarned.Div(goal.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	percent := raw
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}

	return domain.GoalProgress{
		Percent:    percent,
		RawPercent: raw,
		Achieved:   raw >= 100,
	}
}
