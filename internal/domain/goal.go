package domain

import "github.com/shopspring/decimal"

// Goal is a monthly earnings target in the reference currency. At most one
// goal exists per month; creation upserts on the month key.
type Goal struct {
	ID           int32           `json:"id"`
	Month        string          `json:"month"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
}

// GoalProgress compares monthly earnings against a goal's target.
// Percent is capped at 100 for progress-bar display; RawPercent is not,
// so "achieved" badges can key off RawPercent >= 100.
type GoalProgress struct {
	Percent    float64 `json:"progress"`
	RawPercent float64 `json:"rawProgress"`
	Achieved   bool    `json:"achieved"`
}

type GoalRepository interface {
	GetAll() ([]*Goal, error)
	GetByMonth(month string) (*Goal, error)
	Upsert(month string, targetAmount decimal.Decimal) (*Goal, error)
	Delete(id int32) error
}
