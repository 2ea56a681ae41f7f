package domain

import "time"

// Note is a free-form note with an ordered tag list. Tags are persisted as a
// single JSON-encoded text column.
type Note struct {
	ID        int32     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type NoteRepository interface {
	Create(note *Note) (*Note, error)
	GetAll() ([]*Note, error)
	Update(note *Note) (*Note, error)
	Delete(id int32) error
}
