package service

import (
	"strings"
	"testing"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/artkov/lancer/lancer-backend/internal/testutil"
)

func TestCreateNote_Success(t *testing.T) {
	noteRepo := testutil.NewMockNoteRepository()
	svc := NewNoteService(noteRepo)

	note, err := svc.CreateNote(NoteInput{
		Title:   "Client call",
		Content: "Discussed the redesign scope",
		Tags:    []string{"client", "call"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if note.ID == 0 {
		t.Error("Expected note to get an ID")
	}

	if note.Title != "Client call" {
		t.Errorf("Expected title 'Client call', got %s", note.Title)
	}

	if note.CreatedAt.IsZero() {
		t.Error("Expected created timestamp to be set")
	}
}

func TestCreateNote_EmptyTitle(t *testing.T) {
	noteRepo := testutil.NewMockNoteRepository()
	svc := NewNoteService(noteRepo)

	_, err := svc.CreateNote(NoteInput{Title: "   ", Content: "body"})
	if err != domain.ErrTitleRequired {
		t.Errorf("Expected ErrTitleRequired, got %v", err)
	}
}

func TestCreateNote_TitleTooLong(t *testing.T) {
	noteRepo := testutil.NewMockNoteRepository()
	svc := NewNoteService(noteRepo)

	_, err := svc.CreateNote(NoteInput{Title: strings.Repeat("a", 256)})
	if err != domain.ErrNameTooLong {
		t.Errorf("Expected ErrNameTooLong, got %v", err)
	}
}

func TestCreateNote_NilTagsBecomeEmpty(t *testing.T) {
	noteRepo := testutil.NewMockNoteRepository()
	svc := NewNoteService(noteRepo)

	note, err := svc.CreateNote(NoteInput{Title: "Untagged"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if note.Tags == nil {
		t.Error("Expected tags to default to an empty slice")
	}
	if len(note.Tags) != 0 {
		t.Errorf("Expected no tags, got %v", note.Tags)
	}
}

func TestUpdateNote_Success(t *testing.T) {
	noteRepo := testutil.NewMockNoteRepository()
	svc := NewNoteService(noteRepo)

	created, err := svc.CreateNote(NoteInput{Title: "Draft", Content: "v1"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	updated, err := svc.UpdateNote(created.ID, NoteInput{Title: "Final", Content: "v2"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Title != "Final" || updated.Content != "v2" {
		t.Errorf("Expected updated fields, got %+v", updated)
	}
}

func TestUpdateNote_NotFound(t *testing.T) {
	noteRepo := testutil.NewMockNoteRepository()
	svc := NewNoteService(noteRepo)

	_, err := svc.UpdateNote(99, NoteInput{Title: "Nope"})
	if err != domain.ErrNoteNotFound {
		t.Errorf("Expected ErrNoteNotFound, got %v", err)
	}
}

func TestDeleteNote_NotFound(t *testing.T) {
	noteRepo := testutil.NewMockNoteRepository()
	svc := NewNoteService(noteRepo)

	err := svc.DeleteNote(99)
	if err != domain.ErrNoteNotFound {
		t.Errorf("Expected ErrNoteNotFound, got %v", err)
	}
}
