package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DayPlanRepository implements domain.DayPlanRepository using PostgreSQL
type DayPlanRepository struct {
	pool *pgxpool.Pool
}

// NewDayPlanRepository creates a new DayPlanRepository
func NewDayPlanRepository(pool *pgxpool.Pool) *DayPlanRepository {
	return &DayPlanRepository{pool: pool}
}

// GetAll retrieves every day plan ordered by date
func (r *DayPlanRepository) GetAll() ([]*domain.DayPlan, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `SELECT id, date, tasks, notes FROM day_plans ORDER BY date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []*domain.DayPlan
	for rows.Next() {
		plan, err := scanDayPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

// Upsert creates or replaces the plan for the given date
func (r *DayPlanRepository) Upsert(plan *domain.DayPlan) (*domain.DayPlan, error) {
	ctx := context.Background()

	tasks, err := json.Marshal(plan.Tasks)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO day_plans (date, tasks, notes)
		VALUES ($1, $2, $3)
		ON CONFLICT (date) DO UPDATE SET tasks = EXCLUDED.tasks, notes = EXCLUDED.notes
		RETURNING id, date, tasks, notes`,
		timeToPgDate(plan.Date), tasks, ptrToText(plan.Notes),
	)
	return scanDayPlan(row)
}

// DeleteByDate removes the plan for a date; deleting an absent plan succeeds
func (r *DayPlanRepository) DeleteByDate(date time.Time) error {
	ctx := context.Background()

	_, err := r.pool.Exec(ctx, `DELETE FROM day_plans WHERE date = $1`, timeToPgDate(date))
	return err
}

func scanDayPlan(row pgx.Row) (*domain.DayPlan, error) {
	var (
		p     domain.DayPlan
		date  pgtype.Date
		tasks []byte
		notes pgtype.Text
	)
	if err := row.Scan(&p.ID, &date, &tasks, &notes); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tasks, &p.Tasks); err != nil {
		return nil, err
	}
	p.Date = pgDateToTime(date)
	p.Notes = textToPtr(notes)
	return &p, nil
}
