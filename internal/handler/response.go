package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the wire shape for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse acknowledges deletes and other bodyless operations
type SuccessResponse struct {
	Success bool `json:"success"`
}

// NewValidationError responds 400 with a message describing the bad input
func NewValidationError(c echo.Context, detail string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: detail})
}

// NewNotFoundError responds 404
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{Error: detail})
}

// NewInternalError responds 500 with a generic message; the cause is logged
// by the caller, never surfaced
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: detail})
}

// NewSuccessResponse responds 200 with {"success": true}
func NewSuccessResponse(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
