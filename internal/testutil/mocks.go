// Package testutil provides in-memory repository implementations for
// service and handler tests.
package testutil

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/artkov/lancer/lancer-backend/internal/util"
)

// MockProjectRepository is an in-memory ProjectRepository
type MockProjectRepository struct {
	mu       sync.Mutex
	projects map[int32]*domain.Project
	nextID   int32

	// Err, when set, is returned by every method.
	Err error
}

func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{
		projects: make(map[int32]*domain.Project),
		nextID:   1,
	}
}

// AddProject seeds a project, assigning an ID if it has none.
func (m *MockProjectRepository) AddProject(p *domain.Project) *domain.Project {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID == 0 {
		p.ID = m.nextID
		m.nextID++
	} else if p.ID >= m.nextID {
		m.nextID = p.ID + 1
	}
	cp := *p
	m.projects[p.ID] = &cp
	return p
}

func (m *MockProjectRepository) Create(project *domain.Project) (*domain.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	project.ID = m.nextID
	m.nextID++
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now()
	}
	cp := *project
	m.projects[project.ID] = &cp
	return project, nil
}

func (m *MockProjectRepository) GetByID(id int32) (*domain.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *MockProjectRepository) GetAll() ([]*domain.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Project, 0, len(m.projects))
	for _, p := range m.projects {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockProjectRepository) Update(project *domain.Project) (*domain.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.projects[project.ID]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	project.CreatedAt = existing.CreatedAt
	project.Completed = existing.Completed
	project.CompletionDate = existing.CompletionDate
	cp := *project
	m.projects[project.ID] = &cp
	return project, nil
}

func (m *MockProjectRepository) Delete(id int32) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(m.projects, id)
	return nil
}

func (m *MockProjectRepository) SetCompletion(id int32, completed bool, completionDate *time.Time) (*domain.Project, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	p.Completed = completed
	p.CompletionDate = completionDate
	cp := *p
	return &cp, nil
}

// MockProjectTypeRepository is an in-memory ProjectTypeRepository
type MockProjectTypeRepository struct {
	mu     sync.Mutex
	types  map[string]*domain.ProjectType
	nextID int32

	Err error
}

func NewMockProjectTypeRepository() *MockProjectTypeRepository {
	return &MockProjectTypeRepository{
		types:  make(map[string]*domain.ProjectType),
		nextID: 1,
	}
}

func (m *MockProjectTypeRepository) GetAll() ([]*domain.ProjectType, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.ProjectType, 0, len(m.types))
	for _, t := range m.types {
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockProjectTypeRepository) Upsert(name string) (*domain.ProjectType, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if t, ok := m.types[name]; ok {
		cp := *t
		return &cp, nil
	}
	t := &domain.ProjectType{ID: m.nextID, Name: name}
	m.nextID++
	m.types[name] = t
	cp := *t
	return &cp, nil
}

// MockGoalRepository is an in-memory GoalRepository
type MockGoalRepository struct {
	mu     sync.Mutex
	goals  map[string]*domain.Goal
	nextID int32

	Err error
}

func NewMockGoalRepository() *MockGoalRepository {
	return &MockGoalRepository{
		goals:  make(map[string]*domain.Goal),
		nextID: 1,
	}
}

// AddGoal seeds a goal for a month.
func (m *MockGoalRepository) AddGoal(month string, target decimal.Decimal) *domain.Goal {
	g, _ := m.Upsert(month, target)
	return g
}

func (m *MockGoalRepository) GetAll() ([]*domain.Goal, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Goal, 0, len(m.goals))
	for _, g := range m.goals {
		cp := *g
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

func (m *MockGoalRepository) GetByMonth(month string) (*domain.Goal, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.goals[month]
	if !ok {
		return nil, domain.ErrGoalNotFound
	}
	cp := *g
	return &cp, nil
}

func (m *MockGoalRepository) Upsert(month string, targetAmount decimal.Decimal) (*domain.Goal, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if g, ok := m.goals[month]; ok {
		g.TargetAmount = targetAmount
		cp := *g
		return &cp, nil
	}
	g := &domain.Goal{ID: m.nextID, Month: month, TargetAmount: targetAmount}
	m.nextID++
	m.goals[month] = g
	cp := *g
	return &cp, nil
}

func (m *MockGoalRepository) Delete(id int32) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for month, g := range m.goals {
		if g.ID == id {
			delete(m.goals, month)
			return nil
		}
	}
	return domain.ErrGoalNotFound
}

// MockNoteRepository is an in-memory NoteRepository
type MockNoteRepository struct {
	mu     sync.Mutex
	notes  map[int32]*domain.Note
	nextID int32

	Err error
}

func NewMockNoteRepository() *MockNoteRepository {
	return &MockNoteRepository{
		notes:  make(map[int32]*domain.Note),
		nextID: 1,
	}
}

func (m *MockNoteRepository) Create(note *domain.Note) (*domain.Note, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	note.ID = m.nextID
	m.nextID++
	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now
	cp := *note
	m.notes[note.ID] = &cp
	return note, nil
}

func (m *MockNoteRepository) GetAll() ([]*domain.Note, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Note, 0, len(m.notes))
	for _, n := range m.notes {
		cp := *n
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockNoteRepository) Update(note *domain.Note) (*domain.Note, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.notes[note.ID]
	if !ok {
		return nil, domain.ErrNoteNotFound
	}
	note.CreatedAt = existing.CreatedAt
	note.UpdatedAt = time.Now()
	cp := *note
	m.notes[note.ID] = &cp
	return note, nil
}

func (m *MockNoteRepository) Delete(id int32) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.notes[id]; !ok {
		return domain.ErrNoteNotFound
	}
	delete(m.notes, id)
	return nil
}

// MockDayPlanRepository is an in-memory DayPlanRepository
type MockDayPlanRepository struct {
	mu     sync.Mutex
	plans  map[string]*domain.DayPlan
	nextID int32

	Err error
}

func NewMockDayPlanRepository() *MockDayPlanRepository {
	return &MockDayPlanRepository{
		plans:  make(map[string]*domain.DayPlan),
		nextID: 1,
	}
}

func (m *MockDayPlanRepository) GetAll() ([]*domain.DayPlan, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.DayPlan, 0, len(m.plans))
	for _, p := range m.plans {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *MockDayPlanRepository) Upsert(plan *domain.DayPlan) (*domain.DayPlan, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := plan.Date.Format(util.DateFormat)
	if existing, ok := m.plans[key]; ok {
		plan.ID = existing.ID
	} else {
		plan.ID = m.nextID
		m.nextID++
	}
	cp := *plan
	m.plans[key] = &cp
	return plan, nil
}

func (m *MockDayPlanRepository) DeleteByDate(date time.Time) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.plans, date.Format(util.DateFormat))
	return nil
}

// MockRateSource is a scriptable RateSource
type MockRateSource struct {
	mu       sync.Mutex
	Snapshot *domain.RateSnapshot
	Err      error
	Calls    int
}

func (m *MockRateSource) Fetch() (*domain.RateSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Snapshot == nil {
		return nil, errors.New("no snapshot configured")
	}
	cp := *m.Snapshot
	return &cp, nil
}

// FetchCount returns how many times Fetch was called.
func (m *MockRateSource) FetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

// MockMessenger records sent messages
type MockMessenger struct {
	mu       sync.Mutex
	Messages []string
	Err      error

	// FailFirst fails the first N sends before succeeding.
	FailFirst int
	attempts  int
}

func (m *MockMessenger) Send(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.attempts++
	if m.Err != nil {
		return m.Err
	}
	if m.attempts <= m.FailFirst {
		return errors.New("send failed")
	}
	m.Messages = append(m.Messages, text)
	return nil
}

// Sent returns a copy of the delivered messages.
func (m *MockMessenger) Sent() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Messages))
	copy(out, m.Messages)
	return out
}
