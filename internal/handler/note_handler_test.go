package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/artkov/lancer/lancer-backend/internal/service"
	"github.com/artkov/lancer/lancer-backend/internal/testutil"
)

func newNoteHandler() *NoteHandler {
	noteRepo := testutil.NewMockNoteRepository()
	return NewNoteHandler(service.NewNoteService(noteRepo))
}

func TestCreateNote_Handler_Success(t *testing.T) {
	e := echo.New()
	handler := newNoteHandler()

	reqBody := `{"title": "Client call", "content": "Discussed scope", "tags": ["client"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	if err := handler.CreateNote(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}

	var response NoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Title != "Client call" {
		t.Errorf("Expected title 'Client call', got %s", response.Title)
	}

	if len(response.Tags) != 1 || response.Tags[0] != "client" {
		t.Errorf("Expected tags ['client'], got %v", response.Tags)
	}

	if response.CreatedAt == "" {
		t.Error("Expected createdAt to be set")
	}
}

func TestCreateNote_Handler_EmptyTitle(t *testing.T) {
	e := echo.New()
	handler := newNoteHandler()

	reqBody := `{"title": "", "content": "body"}`
	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	if err := handler.CreateNote(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestCreateNote_Handler_NoTagsSerializesEmptyArray(t *testing.T) {
	e := echo.New()
	handler := newNoteHandler()

	reqBody := `{"title": "Untagged", "content": "body"}`
	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	if err := handler.CreateNote(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(rec.Body.String(), `"tags":[]`) {
		t.Errorf("Expected empty tags array in response, got %s", rec.Body.String())
	}
}

func TestUpdateNote_Handler_NotFound(t *testing.T) {
	e := echo.New()
	handler := newNoteHandler()

	reqBody := `{"title": "Nope", "content": "body"}`
	req := httptest.NewRequest(http.MethodPut, "/api/notes/99", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := handler.UpdateNote(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestDeleteNote_Handler_Success(t *testing.T) {
	e := echo.New()
	handler := newNoteHandler()

	reqBody := `{"title": "Delete me", "content": "body"}`
	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	if err := handler.CreateNote(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/notes/1", nil)
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := handler.DeleteNote(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response SuccessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if !response.Success {
		t.Error("Expected success true")
	}
}
