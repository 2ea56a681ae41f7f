package service

import (
	"math"
	"sort"
	"time"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/artkov/lancer/lancer-backend/internal/util"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// StatsService computes earnings summaries over completed projects. It is a
// stateless reader: it never mutates project records and is safe to call
// concurrently.
type StatsService struct {
	projectRepo domain.ProjectRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(projectRepo domain.ProjectRepository) *StatsService {
	return &StatsService{projectRepo: projectRepo}
}

// Summary computes the dashboard statistics for the given year-month key.
// An empty key defaults to the current month.
func (s *StatsService) Summary(monthKey string) (*domain.Stats, error) {
	if monthKey == "" {
		monthKey = util.CurrentMonthKey()
	}
	monthStart, monthEnd, err := util.MonthInterval(monthKey)
	if err != nil {
		return nil, domain.ErrInvalidMonth
	}

	projects, err := s.projectRepo.GetAll()
	if err != nil {
		return nil, err
	}

	return computeStats(projects, monthStart, monthEnd), nil
}

// computeStats aggregates a project snapshot. Totals run over every completed
// project; the monthly figures cover completed projects whose deadline falls
// in [monthStart, monthEnd).
func computeStats(projects []*domain.Project, monthStart, monthEnd time.Time) *domain.Stats {
	stats := &domain.Stats{
		TotalEarned:     decimal.Zero,
		MonthlyEarned:   decimal.Zero,
		AvgCost:         decimal.Zero,
		ByType:          []domain.TypeEarnings{},
		LongestProjects: []domain.ProjectDuration{},
	}

	var completed []*domain.Project
	for _, p := range projects {
		if p.Completed && p.CompletionDate != nil {
			completed = append(completed, p)
		}
	}

	byType := make(map[string]*domain.TypeEarnings)
	var durations []domain.ProjectDuration
	totalDays := 0

	for _, p := range completed {
		stats.TotalEarned = stats.TotalEarned.Add(p.Cost)
		stats.CompletedCount++

		deadline := util.Midnight(p.Deadline)
		if !deadline.Before(monthStart) && deadline.Before(monthEnd) {
			stats.MonthlyEarned = stats.MonthlyEarned.Add(p.Cost)
			stats.MonthlyCompletedCount++
		}

		group, ok := byType[p.Type]
		if !ok {
			group = &domain.TypeEarnings{Type: p.Type, Earned: decimal.Zero}
			byType[p.Type] = group
		}
		group.Earned = group.Earned.Add(p.Cost)
		group.Count++

		// A zero start date or a completion before the start would produce a
		// meaningless duration; such projects still count toward earnings but
		// are left out of the time-based figures.
		if p.StartDate.IsZero() || p.CompletionDate.IsZero() || p.CompletionDate.Before(p.StartDate) {
			log.Warn().Int32("project_id", p.ID).Str("name", p.Name).Msg("Project has inconsistent dates, excluded from duration stats")
			continue
		}

		days := util.DaysBetweenCeil(p.StartDate, *p.CompletionDate)
		totalDays += days
		durations = append(durations, domain.ProjectDuration{
			ID:             p.ID,
			Name:           p.Name,
			Type:           p.Type,
			Days:           days,
			StartDate:      p.StartDate,
			CompletionDate: *p.CompletionDate,
		})
	}

	if stats.CompletedCount > 0 {
		stats.AvgCost = stats.TotalEarned.Div(decimal.NewFromInt(int64(stats.CompletedCount)))
	}
	if len(durations) > 0 {
		stats.AvgTimeDays = int(math.Round(float64(totalDays) / float64(len(durations))))
	}

	for _, group := range byType {
		stats.ByType = append(stats.ByType, *group)
	}
	sort.Slice(stats.ByType, func(i, j int) bool {
		return stats.ByType[i].Type < stats.ByType[j].Type
	})

	sort.SliceStable(durations, func(i, j int) bool {
		return durations[i].Days > durations[j].Days
	})
	if len(durations) > 5 {
		durations = durations[:5]
	}
	stats.LongestProjects = durations

	return stats
}
