package postgres

import (
	"context"
	"time"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProjectRepository implements domain.ProjectRepository using PostgreSQL
type ProjectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

const projectColumns = `id, name, type, cost, start_date, deadline, notes, completed, completion_date, created_at`

// Create inserts a new project
func (r *ProjectRepository) Create(project *domain.Project) (*domain.Project, error) {
	ctx := context.Background()

	cost, err := decimalToPgNumeric(project.Cost)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO projects (name, type, cost, start_date, deadline, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+projectColumns,
		project.Name, project.Type, cost,
		timeToPgDate(project.StartDate), timeToPgDate(project.Deadline),
		ptrToText(project.Notes),
	)
	return scanProject(row)
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id int32) (*domain.Project, error) {
	ctx := context.Background()

	row := r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	project, err := scanProject(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

// GetAll retrieves all projects, newest first
func (r *ProjectRepository) GetAll() ([]*domain.Project, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// Update replaces the editable fields of a project
func (r *ProjectRepository) Update(project *domain.Project) (*domain.Project, error) {
	ctx := context.Background()

	cost, err := decimalToPgNumeric(project.Cost)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE projects
		SET name = $2, type = $3, cost = $4, start_date = $5, deadline = $6, notes = $7
		WHERE id = $1
		RETURNING `+projectColumns,
		project.ID, project.Name, project.Type, cost,
		timeToPgDate(project.StartDate), timeToPgDate(project.Deadline),
		ptrToText(project.Notes),
	)
	updated, err := scanProject(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a project
func (r *ProjectRepository) Delete(id int32) error {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// SetCompletion flips the completed flag and sets or clears the completion date
func (r *ProjectRepository) SetCompletion(id int32, completed bool, completionDate *time.Time) (*domain.Project, error) {
	ctx := context.Background()

	row := r.pool.QueryRow(ctx, `
		UPDATE projects
		SET completed = $2, completion_date = $3
		WHERE id = $1
		RETURNING `+projectColumns,
		id, completed, timePtrToPgDate(completionDate),
	)
	project, err := scanProject(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var (
		p              domain.Project
		cost           pgtype.Numeric
		startDate      pgtype.Date
		deadline       pgtype.Date
		notes          pgtype.Text
		completionDate pgtype.Date
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Type, &cost, &startDate, &deadline, &notes, &p.Completed, &completionDate, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Cost = pgNumericToDecimal(cost)
	p.StartDate = pgDateToTime(startDate)
	p.Deadline = pgDateToTime(deadline)
	p.Notes = textToPtr(notes)
	p.CompletionDate = pgDateToTimePtr(completionDate)
	return &p, nil
}
