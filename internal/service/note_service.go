package service

import (
	"strings"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
)

// NoteService handles note CRUD
type NoteService struct {
	noteRepo domain.NoteRepository
}

// NewNoteService creates a new NoteService
func NewNoteService(noteRepo domain.NoteRepository) *NoteService {
	return &NoteService{noteRepo: noteRepo}
}

// NoteInput holds the editable fields of a note
type NoteInput struct {
	Title   string
	Content string
	Tags    []string
}

func (s *NoteService) validate(input *NoteInput) error {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return domain.ErrTitleRequired
	}
	if len(input.Title) > domain.MaxNameLength {
		return domain.ErrNameTooLong
	}
	if input.Tags == nil {
		input.Tags = []string{}
	}
	return nil
}

// CreateNote creates a note
func (s *NoteService) CreateNote(input NoteInput) (*domain.Note, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}
	return s.noteRepo.Create(&domain.Note{
		Title:   input.Title,
		Content: input.Content,
		Tags:    input.Tags,
	})
}

// GetNotes retrieves all notes
func (s *NoteService) GetNotes() ([]*domain.Note, error) {
	return s.noteRepo.GetAll()
}

// UpdateNote updates a note
func (s *NoteService) UpdateNote(id int32, input NoteInput) (*domain.Note, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}
	return s.noteRepo.Update(&domain.Note{
		ID:      id,
		Title:   input.Title,
		Content: input.Content,
		Tags:    input.Tags,
	})
}

// DeleteNote removes a note
func (s *NoteService) DeleteNote(id int32) error {
	return s.noteRepo.Delete(id)
}
