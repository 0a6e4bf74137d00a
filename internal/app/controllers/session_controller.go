package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kmuriuki/campusreg/internal/app/models/dto"
	"github.com/kmuriuki/campusreg/internal/app/services"
	"github.com/kmuriuki/campusreg/internal/middleware"
)

// SessionController handles academic session endpoints
type SessionController struct {
	sessionService *services.SessionService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService *services.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// CreateSession creates an academic session
// @Summary Create academic session
// @Description Creates a new academic session, optionally activating it
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSessionRequest true "Session information"
// @Success 201 {object} dto.APIResponse{data=models.AcademicSession} "Session created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Session name already used"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	var req dto.CreateSessionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	session, err := c.sessionService.CreateSession(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(session, "Session created"))
}

// GetAllSessions lists all academic sessions
// @Summary List academic sessions
// @Description Retrieves every academic session, most recent first
// @Tags sessions
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.AcademicSession} "Sessions retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions [get]
func (c *SessionController) GetAllSessions(ctx *gin.Context) {
	sessions, err := c.sessionService.GetAllSessions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(sessions, ""))
}

// GetActiveSession retrieves the active session
// @Summary Get active session
// @Description Retrieves the academic session currently marked active
// @Tags sessions
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.AcademicSession} "Active session retrieved"
// @Failure 404 {object} dto.ErrorResponse "No active session"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/active [get]
func (c *SessionController) GetActiveSession(ctx *gin.Context) {
	session, err := c.sessionService.GetActiveSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(session, ""))
}

// GetSessionByID retrieves a session
// @Summary Get academic session
// @Description Retrieves an academic session by its ID
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.APIResponse{data=models.AcademicSession} "Session retrieved"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/{id} [get]
func (c *SessionController) GetSessionByID(ctx *gin.Context) {
	session, err := c.sessionService.GetSessionByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(session, ""))
}

// UpdateSession updates a session
// @Summary Update academic session
// @Description Updates an academic session, optionally activating it
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body dto.UpdateSessionRequest true "Session changes"
// @Success 200 {object} dto.APIResponse{data=models.AcademicSession} "Session updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/{id} [put]
func (c *SessionController) UpdateSession(ctx *gin.Context) {
	var req dto.UpdateSessionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	session, err := c.sessionService.UpdateSession(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(session, "Session updated"))
}

// ActivateSession marks a session active
// @Summary Activate academic session
// @Description Marks the session active, deactivating any other
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.APIResponse "Session activated"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/{id}/activate [post]
func (c *SessionController) ActivateSession(ctx *gin.Context) {
	if err := c.sessionService.ActivateSession(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Session activated"))
}

// DeleteSession deletes a session
// @Summary Delete academic session
// @Description Deletes a session that has no exams scheduled in it
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.APIResponse "Session deleted"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session still referenced"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/{id} [delete]
func (c *SessionController) DeleteSession(ctx *gin.Context) {
	if err := c.sessionService.DeleteSession(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Session deleted"))
}
