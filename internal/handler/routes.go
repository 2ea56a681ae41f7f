package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, statsHandler *StatsHandler, projectHandler *ProjectHandler, projectTypeHandler *ProjectTypeHandler, goalHandler *GoalHandler, noteHandler *NoteHandler, dayPlanHandler *DayPlanHandler, ratesHandler *RatesHandler) {
	api := e.Group("/api")

	// Dashboard statistics
	api.GET("/stats", statsHandler.GetStats)

	// Projects
	projects := api.Group("/projects")
	projects.GET("", projectHandler.GetProjects)
	projects.POST("", projectHandler.CreateProject)
	projects.PUT("/:id", projectHandler.UpdateProject)
	projects.DELETE("/:id", projectHandler.DeleteProject)
	projects.PATCH("/:id/toggle", projectHandler.ToggleProject)

	// Project types
	api.GET("/project-types", projectTypeHandler.GetProjectTypes)
	api.POST("/project-types", projectTypeHandler.CreateProjectType)

	// Goals
	goals := api.Group("/goals")
	goals.GET("", goalHandler.GetGoals)
	goals.POST("", goalHandler.SaveGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	// Notes
	notes := api.Group("/notes")
	notes.GET("", noteHandler.GetNotes)
	notes.POST("", noteHandler.CreateNote)
	notes.PUT("/:id", noteHandler.UpdateNote)
	notes.DELETE("/:id", noteHandler.DeleteNote)

	// Day plans
	dayplans := api.Group("/dayplans")
	dayplans.GET("", dayPlanHandler.GetDayPlans)
	dayplans.POST("", dayPlanHandler.SaveDayPlan)
	dayplans.DELETE("/:date", dayPlanHandler.DeleteDayPlan)

	// Exchange rates
	api.GET("/rates", ratesHandler.GetRates)
	api.GET("/rates/convert", ratesHandler.Convert)
}
