package postgres

import (
	"context"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProjectTypeRepository implements domain.ProjectTypeRepository using PostgreSQL
type ProjectTypeRepository struct {
	pool *pgxpool.Pool
}

// NewProjectTypeRepository creates a new ProjectTypeRepository
func NewProjectTypeRepository(pool *pgxpool.Pool) *ProjectTypeRepository {
	return &ProjectTypeRepository{pool: pool}
}

// GetAll retrieves all project types ordered by name
func (r *ProjectTypeRepository) GetAll() ([]*domain.ProjectType, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `SELECT id, name FROM project_types ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*domain.ProjectType
	for rows.Next() {
		var t domain.ProjectType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, &t)
	}
	return types, rows.Err()
}

// Upsert creates the type if it does not exist and returns the stored row
// either way.
func (r *ProjectTypeRepository) Upsert(name string) (*domain.ProjectType, error) {
	ctx := context.Background()

	var t domain.ProjectType
	err := r.pool.QueryRow(ctx, `
		INSERT INTO project_types (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name`, name,
	).Scan(&t.ID, &t.Name)
	if err == nil {
		return &t, nil
	}
	if err != pgx.ErrNoRows {
		return nil, err
	}

	// Conflict path: the name already exists, fetch it.
	err = r.pool.QueryRow(ctx, `SELECT id, name FROM project_types WHERE name = $1`, name).Scan(&t.ID, &t.Name)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
