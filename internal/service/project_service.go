package service

import (
	"strings"
	"time"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/artkov/lancer/lancer-backend/internal/util"
	"github.com/shopspring/decimal"
)

// ProjectService handles project CRUD and completion toggling
type ProjectService struct {
	projectRepo domain.ProjectRepository
	typeRepo    domain.ProjectTypeRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo domain.ProjectRepository, typeRepo domain.ProjectTypeRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		typeRepo:    typeRepo,
	}
}

// ProjectInput holds the editable fields of a project
type ProjectInput struct {
	Name      string
	Type      string
	Cost      decimal.Decimal
	StartDate time.Time
	Deadline  time.Time
	Notes     *string
}

func (s *ProjectService) validate(input *ProjectInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return domain.ErrNameRequired
	}
	if len(input.Name) > domain.MaxNameLength {
		return domain.ErrNameTooLong
	}

	input.Type = strings.TrimSpace(input.Type)
	if input.Type == "" {
		return domain.ErrTypeRequired
	}

	if input.Cost.IsNegative() {
		return domain.ErrInvalidCost
	}
	if input.Deadline.IsZero() {
		return domain.ErrDeadlineRequired
	}

	// Start date defaults to today, deadline and start are kept at day
	// granularity.
	if input.StartDate.IsZero() {
		input.StartDate = util.Midnight(time.Now())
	} else {
		input.StartDate = util.Midnight(input.StartDate)
	}
	input.Deadline = util.Midnight(input.Deadline)

	if input.Notes != nil {
		trimmed := strings.TrimSpace(*input.Notes)
		if trimmed == "" {
			input.Notes = nil
		} else {
			input.Notes = &trimmed
		}
	}
	return nil
}

// CreateProject creates a project, implicitly registering an unseen type name
func (s *ProjectService) CreateProject(input ProjectInput) (*domain.Project, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	if _, err := s.typeRepo.Upsert(input.Type); err != nil {
		return nil, err
	}

	return s.projectRepo.Create(&domain.Project{
		Name:      input.Name,
		Type:      input.Type,
		Cost:      input.Cost,
		StartDate: input.StartDate,
		Deadline:  input.Deadline,
		Notes:     input.Notes,
	})
}

// GetProjects retrieves all projects
func (s *ProjectService) GetProjects() ([]*domain.Project, error) {
	return s.projectRepo.GetAll()
}

// UpdateProject updates the editable fields of a project
func (s *ProjectService) UpdateProject(id int32, input ProjectInput) (*domain.Project, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	if _, err := s.typeRepo.Upsert(input.Type); err != nil {
		return nil, err
	}

	return s.projectRepo.Update(&domain.Project{
		ID:        id,
		Name:      input.Name,
		Type:      input.Type,
		Cost:      input.Cost,
		StartDate: input.StartDate,
		Deadline:  input.Deadline,
		Notes:     input.Notes,
	})
}

// DeleteProject removes a project
func (s *ProjectService) DeleteProject(id int32) error {
	return s.projectRepo.Delete(id)
}

// ToggleCompletion flips the completed flag. Completing stamps today as the
// completion date; reverting clears it, keeping the record consistent with
// the rule that a completion date exists iff the project is completed.
func (s *ProjectService) ToggleCompletion(id int32) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if project.Completed {
		return s.projectRepo.SetCompletion(id, false, nil)
	}
	today := util.Midnight(time.Now())
	return s.projectRepo.SetCompletion(id, true, &today)
}

// GetProjectTypes retrieves all known project types
func (s *ProjectService) GetProjectTypes() ([]*domain.ProjectType, error) {
	return s.typeRepo.GetAll()
}

// CreateProjectType registers a type name, returning the existing record if
// the name is already taken
func (s *ProjectService) CreateProjectType(name string) (*domain.ProjectType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	return s.typeRepo.Upsert(name)
}
