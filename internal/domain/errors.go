package domain

import "errors"

// Domain errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectTypeNotFound = errors.New("project type not found")
	ErrGoalNotFound        = errors.New("goal not found")
	ErrNoteNotFound        = errors.New("note not found")
	ErrDayPlanNotFound     = errors.New("day plan not found")
	ErrNameRequired        = errors.New("name is required")
	ErrNameTooLong         = errors.New("name exceeds maximum length")
	ErrTypeRequired        = errors.New("type is required")
	ErrTitleRequired       = errors.New("title is required")
	ErrInvalidCost         = errors.New("cost must be non-negative")
	ErrDeadlineRequired    = errors.New("deadline is required")
	ErrStartDateRequired   = errors.New("start date is required")
	ErrInvalidMonth        = errors.New("month must be in YYYY-MM format")
	ErrInvalidTarget       = errors.New("target amount must be positive")
	ErrInvalidPriority     = errors.New("priority must be one of: high, medium, low")
	ErrUnknownCurrency     = errors.New("currency code not present in rate table")
)

// Validation constants
const (
	MaxNameLength  = 255
	MaxNotesLength = 1000
)
