package domain

import "time"

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// Task is a single entry in a day plan.
type Task struct {
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	Priority    TaskPriority `json:"priority"`
	Completed   bool         `json:"completed"`
}

// DayPlan holds the task list for one calendar date. One plan exists per
// date; saving upserts on the date key, and saving an empty task list
// removes the plan.
type DayPlan struct {
	ID    int32     `json:"id"`
	Date  time.Time `json:"date"`
	Tasks []Task    `json:"tasks"`
	Notes *string   `json:"notes,omitempty"`
}

type DayPlanRepository interface {
	GetAll() ([]*DayPlan, error)
	Upsert(plan *DayPlan) (*DayPlan, error)
	// DeleteByDate is idempotent: deleting an absent plan is not an error.
	DeleteByDate(date time.Time) error
}
