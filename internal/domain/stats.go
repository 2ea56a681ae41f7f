package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stats is the dashboard summary computed over completed projects. Totals
// cover all completed projects; the Monthly* figures cover the subset whose
// deadline falls inside the requested month.
type Stats struct {
	TotalEarned          decimal.Decimal
	MonthlyEarned        decimal.Decimal
	AvgCost              decimal.Decimal
	CompletedCount       int
	MonthlyCompletedCount int
	AvgTimeDays          int
	ByType               []TypeEarnings
	LongestProjects      []ProjectDuration
}

// TypeEarnings is one per-category group in the stats breakdown.
type TypeEarnings struct {
	Type   string          `json:"type"`
	Earned decimal.Decimal `json:"earned"`
	Count  int             `json:"count"`
}

// ProjectDuration is one entry in the longest-projects ranking.
type ProjectDuration struct {
	ID             int32     `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Days           int       `json:"days"`
	StartDate      time.Time `json:"startDate"`
	CompletionDate time.Time `json:"completionDate"`
}
