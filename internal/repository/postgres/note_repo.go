package postgres

import (
	"context"
	"encoding/json"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NoteRepository implements domain.NoteRepository using PostgreSQL
type NoteRepository struct {
	pool *pgxpool.Pool
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(pool *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{pool: pool}
}

const noteColumns = `id, title, content, tags, created_at, updated_at`

// Create inserts a new note
func (r *NoteRepository) Create(note *domain.Note) (*domain.Note, error) {
	ctx := context.Background()

	tags, err := encodeTags(note.Tags)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO notes (title, content, tags)
		VALUES ($1, $2, $3)
		RETURNING `+noteColumns,
		note.Title, note.Content, tags,
	)
	return scanNote(row)
}

// GetAll retrieves all notes, newest first
func (r *NoteRepository) GetAll() ([]*domain.Note, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `SELECT `+noteColumns+` FROM notes ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// Update replaces the title, content and tags of a note
func (r *NoteRepository) Update(note *domain.Note) (*domain.Note, error) {
	ctx := context.Background()

	tags, err := encodeTags(note.Tags)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE notes
		SET title = $2, content = $3, tags = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+noteColumns,
		note.ID, note.Title, note.Content, tags,
	)
	updated, err := scanNote(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNoteNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a note
func (r *NoteRepository) Delete(id int32) error {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

// Tags are stored as a JSON-encoded text column; an empty list is stored as
// NULL to match how the data has always been kept.
func encodeTags(tags []string) (pgtype.Text, error) {
	if len(tags) == 0 {
		return pgtype.Text{}, nil
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return pgtype.Text{}, err
	}
	return pgtype.Text{String: string(encoded), Valid: true}, nil
}

func decodeTags(t pgtype.Text) ([]string, error) {
	if !t.Valid || t.String == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(t.String), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func scanNote(row pgx.Row) (*domain.Note, error) {
	var (
		n    domain.Note
		tags pgtype.Text
	)
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &tags, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	decoded, err := decodeTags(tags)
	if err != nil {
		return nil, err
	}
	n.Tags = decoded
	return &n, nil
}
