package postgres

import (
	"context"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// GoalRepository implements domain.GoalRepository using PostgreSQL
type GoalRepository struct {
	pool *pgxpool.Pool
}

// NewGoalRepository creates a new GoalRepository
func NewGoalRepository(pool *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{pool: pool}
}

// GetAll retrieves all goals, most recent month first
func (r *GoalRepository) GetAll() ([]*domain.Goal, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `SELECT id, month, target_amount FROM goals ORDER BY month DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

// GetByMonth retrieves the goal for a year-month key
func (r *GoalRepository) GetByMonth(month string) (*domain.Goal, error) {
	ctx := context.Background()

	row := r.pool.QueryRow(ctx, `SELECT id, month, target_amount FROM goals WHERE month = $1`, month)
	goal, err := scanGoal(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

// Upsert creates the goal for a month or overwrites its target amount.
// Uniqueness on month is what enforces the one-goal-per-month invariant.
func (r *GoalRepository) Upsert(month string, targetAmount decimal.Decimal) (*domain.Goal, error) {
	ctx := context.Background()

	target, err := decimalToPgNumeric(targetAmount)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO goals (month, target_amount)
		VALUES ($1, $2)
		ON CONFLICT (month) DO UPDATE SET target_amount = EXCLUDED.target_amount
		RETURNING id, month, target_amount`,
		month, target,
	)
	return scanGoal(row)
}

// Delete removes a goal
func (r *GoalRepository) Delete(id int32) error {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var (
		g      domain.Goal
		target pgtype.Numeric
	)
	if err := row.Scan(&g.ID, &g.Month, &target); err != nil {
		return nil, err
	}
	g.TargetAmount = pgNumericToDecimal(target)
	return &g, nil
}
