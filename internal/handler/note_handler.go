package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/artkov/lancer/lancer-backend/internal/domain"
	"github.com/artkov/lancer/lancer-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// NoteHandler handles note-related HTTP requests
type NoteHandler struct {
	noteService *service.NoteService
}

// NewNoteHandler creates a new NoteHandler
func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// NoteRequest represents the create/update note request body
type NoteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// NoteResponse represents a note in API responses
type NoteResponse struct {
	ID        int32    `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// GetNotes handles GET /api/notes
func (h *NoteHandler) GetNotes(c echo.Context) error {
	notes, err := h.noteService.GetNotes()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch notes")
		return NewInternalError(c, "Failed to fetch notes")
	}

	response := make([]NoteResponse, len(notes))
	for i, note := range notes {
		response[i] = toNoteResponse(note)
	}
	return c.JSON(http.StatusOK, response)
}

// CreateNote handles POST /api/notes
func (h *NoteHandler) CreateNote(c echo.Context) error {
	var req NoteRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body")
	}

	note, err := h.noteService.CreateNote(service.NoteInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTitleRequired) || errors.Is(err, domain.ErrNameTooLong) {
			return NewValidationError(c, err.Error())
		}
		log.Error().Err(err).Msg("Failed to create note")
		return NewInternalError(c, "Failed to create note")
	}

	log.Info().Int32("note_id", note.ID).Msg("Note created")
	return c.JSON(http.StatusCreated, toNoteResponse(note))
}

// UpdateNote handles PUT /api/notes/:id
func (h *NoteHandler) UpdateNote(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid note ID")
	}

	var req NoteRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body")
	}

	note, err := h.noteService.UpdateNote(int32(id), service.NoteInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			return NewNotFoundError(c, "Note not found")
		}
		if errors.Is(err, domain.ErrTitleRequired) || errors.Is(err, domain.ErrNameTooLong) {
			return NewValidationError(c, err.Error())
		}
		log.Error().Err(err).Int("note_id", id).Msg("Failed to update note")
		return NewInternalError(c, "Failed to update note")
	}

	log.Info().Int32("note_id", note.ID).Msg("Note updated")
	return c.JSON(http.StatusOK, toNoteResponse(note))
}

// DeleteNote handles DELETE /api/notes/:id
func (h *NoteHandler) DeleteNote(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid note ID")
	}

	if err := h.noteService.DeleteNote(int32(id)); err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			return NewNotFoundError(c, "Note not found")
		}
		log.Error().Err(err).Int("note_id", id).Msg("Failed to delete note")
		return NewInternalError(c, "Failed to delete note")
	}

	log.Info().Int("note_id", id).Msg("Note deleted")
	return NewSuccessResponse(c)
}

func toNoteResponse(note *domain.Note) NoteResponse {
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Tags:      tags,
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
		UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
	}
}
