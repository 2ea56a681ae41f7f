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

func newDayPlanHandler() *DayPlanHandler {
	dayPlanRepo := testutil.NewMockDayPlanRepository()
	return NewDayPlanHandler(service.NewDayPlanService(dayPlanRepo))
}

func postDayPlan(e *echo.Echo, handler *DayPlanHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/dayplans", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	_ = handler.SaveDayPlan(e.NewContext(req, rec))
	return rec
}

func TestSaveDayPlan_Handler_Success(t *testing.T) {
	e := echo.New()
	handler := newDayPlanHandler()

	rec := postDayPlan(e, handler, `{"date": "2025-06-10", "tasks": [{"title": "Ship invoice", "priority": "high"}, {"title": "Email client"}]}`)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response DayPlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Date != "2025-06-10" {
		t.Errorf("Expected date '2025-06-10', got %s", response.Date)
	}

	if len(response.Tasks) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(response.Tasks))
	}

	if response.Tasks[1].Priority != "medium" {
		t.Errorf("Expected default priority 'medium', got %s", response.Tasks[1].Priority)
	}
}

func TestSaveDayPlan_Handler_EmptyTasksRemovesPlan(t *testing.T) {
	e := echo.New()
	handler := newDayPlanHandler()

	postDayPlan(e, handler, `{"date": "2025-06-10", "tasks": [{"title": "One"}]}`)

	rec := postDayPlan(e, handler, `{"date": "2025-06-10", "tasks": []}`)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response SuccessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if !response.Success {
		t.Error("Expected success true when tasks are cleared")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/dayplans", nil)
	listRec := httptest.NewRecorder()
	if err := handler.GetDayPlans(e.NewContext(req, listRec)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var plans []DayPlanResponse
	if err := json.Unmarshal(listRec.Body.Bytes(), &plans); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(plans) != 0 {
		t.Errorf("Expected plan removed, got %d plans", len(plans))
	}
}

func TestSaveDayPlan_Handler_MissingDate(t *testing.T) {
	e := echo.New()
	handler := newDayPlanHandler()

	rec := postDayPlan(e, handler, `{"tasks": [{"title": "One"}]}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestSaveDayPlan_Handler_InvalidPriority(t *testing.T) {
	e := echo.New()
	handler := newDayPlanHandler()

	rec := postDayPlan(e, handler, `{"date": "2025-06-10", "tasks": [{"title": "One", "priority": "urgent"}]}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestDeleteDayPlan_Handler_AbsentDateSucceeds(t *testing.T) {
	e := echo.New()
	handler := newDayPlanHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/dayplans/2025-06-10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("date")
	c.SetParamValues("2025-06-10")

	if err := handler.DeleteDayPlan(c); err != nil {
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

func TestDeleteDayPlan_Handler_InvalidDate(t *testing.T) {
	e := echo.New()
	handler := newDayPlanHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/dayplans/june-10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("date")
	c.SetParamValues("june-10")

	if err := handler.DeleteDayPlan(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}
