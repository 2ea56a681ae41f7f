package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is a single freelance engagement. Cost is stored in the reference
// currency (USD); display conversion never touches the persisted amount.
// CompletionDate is set iff Completed is true.
type Project struct {
	ID             int32           `json:"id"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	Cost           decimal.Decimal `json:"cost"`
	StartDate      time.Time       `json:"startDate"`
	Deadline       time.Time       `json:"deadline"`
	Notes          *string         `json:"notes,omitempty"`
	Completed      bool            `json:"completed"`
	CompletionDate *time.Time      `json:"completionDate,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type ProjectRepository interface {
	Create(project *Project) (*Project, error)
	GetByID(id int32) (*Project, error)
	GetAll() ([]*Project, error)
	Update(project *Project) (*Project, error)
	Delete(id int32) error
	// SetCompletion flips the completed flag and sets or clears the
	// completion date in one statement.
	SetCompletion(id int32, completed bool, completionDate *time.Time) (*Project, error)
}

// ProjectType is a free-text project category. Types are created implicitly
// the first time a project uses an unseen name.
type ProjectType struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type ProjectTypeRepository interface {
	GetAll() ([]*ProjectType, error)
	// Upsert returns the existing type when the name is already taken.
	Upsert(name string) (*ProjectType, error)
}
