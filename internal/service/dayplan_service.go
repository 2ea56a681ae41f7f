package service

import (
	"strings"
	"time"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/artkov/lancer/lancer-backend/internal/util"
)

// DayPlanService handles per-date task plans
type DayPlanService struct {
	dayPlanRepo domain.DayPlanRepository
}

// NewDayPlanService creates a new DayPlanService
func NewDayPlanService(dayPlanRepo domain.DayPlanRepository) *DayPlanService {
	return &DayPlanService{dayPlanRepo: dayPlanRepo}
}

// GetDayPlans retrieves every stored plan
func (s *DayPlanService) GetDayPlans() ([]*domain.DayPlan, error) {
	return s.dayPlanRepo.GetAll()
}

// SaveDayPlan upserts the plan for a date. Saving an empty task list removes
// the plan entirely, keeping one-plan-per-date with no empty shells.
func (s *DayPlanService) SaveDayPlan(date time.Time, tasks []domain.Task, notes *string) (*domain.DayPlan, error) {
	date = util.Midnight(date)

	if len(tasks) == 0 {
		if err := s.dayPlanRepo.DeleteByDate(date); err != nil {
			return nil, err
		}
		return nil, nil
	}

	for i := range tasks {
		tasks[i].Title = strings.TrimSpace(tasks[i].Title)
		if tasks[i].Title == "" {
			return nil, domain.ErrTitleRequired
		}
		switch tasks[i].Priority {
		case domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow:
		case "":
			tasks[i].Priority = domain.PriorityMedium
		default:
			return nil, domain.ErrInvalidPriority
		}
	}

	return s.dayPlanRepo.Upsert(&domain.DayPlan{
		Date:  date,
		Tasks: tasks,
		Notes: notes,
	})
}

// DeleteDayPlan removes the plan for a date; absent plans delete cleanly
func (s *DayPlanService) DeleteDayPlan(date time.Time) error {
	return s.dayPlanRepo.DeleteByDate(util.Midnight(date))
}
