package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kmuriuki/campusreg/internal/app/models"
	"github.com/kmuriuki/campusreg/internal/app/models/dto"
	"github.com/kmuriuki/campusreg/internal/app/services"
	"github.com/kmuriuki/campusreg/internal/middleware"
)

// RegistrationController handles exam registration endpoints
type RegistrationController struct {
	registrationService *services.RegistrationService
	studentService      *services.StudentService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService *services.RegistrationService, studentService *services.StudentService) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
		studentService:      studentService,
	}
}

// CreateRegistration signs a student up for an exam
// @Summary Register for an exam
// @Description Signs a student up for a published exam. Full exams accept the registration as WAITLISTED.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRegistrationRequest true "Registration"
// @Success 201 {object} dto.APIResponse{data=models.ExamRegistration} "Registration created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or exam not found"
// @Failure 409 {object} dto.ErrorResponse "Not open for registration, deadline passed or already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations [post]
func (c *RegistrationController) CreateRegistration(ctx *gin.Context) {
	var req dto.CreateRegistrationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	var notes *string
	if req.Notes != "" {
		notes = &req.Notes
	}

	registration, err := c.registrationService.RegisterForExam(ctx, req.StudentID, req.ExamID, notes, time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(registration, "Registration created"))
}

// RegisterSelf signs the caller's linked student record up for an exam
// @Summary Register self for an exam
// @Description Signs the student record linked to the authenticated account up for an exam
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam ID"
// @Success 201 {object} dto.APIResponse{data=models.ExamRegistration} "Registration created"
// @Failure 404 {object} dto.ErrorResponse "Student or exam not found"
// @Failure 409 {object} dto.ErrorResponse "Not open for registration, deadline passed or already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/{id}/register [post]
func (c *RegistrationController) RegisterSelf(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByUserID(ctx, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	registration, err := c.registrationService.RegisterForExam(ctx, student.ID, ctx.Param("id"), nil, time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(registration, "Registration created"))
}

// GetRegistrationByID retrieves a registration
// @Summary Get registration
// @Description Retrieves a registration with its student and exam attached
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Success 200 {object} dto.APIResponse{data=models.ExamRegistration} "Registration retrieved"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/{id} [get]
func (c *RegistrationController) GetRegistrationByID(ctx *gin.Context) {
	registration, err := c.registrationService.GetRegistrationByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(registration, ""))
}

// GetRegistrationsByExam lists registrations for an exam
// @Summary List exam registrations
// @Description Retrieves every registration for an exam, newest first
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam ID"
// @Success 200 {object} dto.APIResponse{data=[]models.ExamRegistration} "Registrations retrieved"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/{id}/registrations [get]
func (c *RegistrationController) GetRegistrationsByExam(ctx *gin.Context) {
	registrations, err := c.registrationService.GetRegistrationsByExam(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(registrations, ""))
}

// GetRegistrationsByStudent lists a student's registrations
// @Summary List student registrations
// @Description Retrieves every registration made by a student, newest first
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.ExamRegistration} "Registrations retrieved"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/registrations [get]
func (c *RegistrationController) GetRegistrationsByStudent(ctx *gin.Context) {
	registrations, err := c.registrationService.GetRegistrationsByStudent(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(registrations, ""))
}

// UpdateRegistrationStatus moves a registration between states
// @Summary Update registration status
// @Description Moves a registration to a new state. Cancelling an active registration promotes the oldest waitlisted one.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Param request body dto.UpdateRegistrationStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.ExamRegistration} "Registration updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/{id}/status [patch]
func (c *RegistrationController) UpdateRegistrationStatus(ctx *gin.Context) {
	var req dto.UpdateRegistrationStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	registration, err := c.registrationService.UpdateRegistrationStatus(ctx, ctx.Param("id"), models.RegistrationStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(registration, "Registration updated"))
}

// CancelRegistration cancels a registration
// @Summary Cancel registration
// @Description Cancels a registration, freeing its slot for the waitlist
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Success 200 {object} dto.APIResponse "Registration cancelled"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/{id} [delete]
func (c *RegistrationController) CancelRegistration(ctx *gin.Context) {
	if err := c.registrationService.CancelRegistration(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Registration cancelled"))
}

// MarkPaid records payment for a registration
// @Summary Mark registration paid
// @Description Records that the registration fee has been paid
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Success 200 {object} dto.APIResponse "Payment recorded"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Failure 409 {object} dto.ErrorResponse "Registration has no fee to pay"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/{id}/payment [post]
func (c *RegistrationController) MarkPaid(ctx *gin.Context) {
	if err := c.registrationService.MarkPaid(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Payment recorded"))
}
