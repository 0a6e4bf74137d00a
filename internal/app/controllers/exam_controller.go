package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kmuriuki/campusreg/internal/app/models"
	"github.com/kmuriuki/campusreg/internal/app/models/dto"
	"github.com/kmuriuki/campusreg/internal/app/services"
	"github.com/kmuriuki/campusreg/internal/middleware"
	"github.com/kmuriuki/campusreg/internal/pkg/helpers"
	"github.com/kmuriuki/campusreg/internal/pkg/schema"
)

// ExamController handles exam scheduling endpoints
type ExamController struct {
	examService *services.ExamService
}

// NewExamController creates a new ExamController
func NewExamController(examService *services.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// CreateExam schedules a new exam
// @Summary Create an exam
// @Description Validates the scheduling form and creates a DRAFT exam
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body schema.ExamCreationForm true "Exam form"
// @Success 201 {object} dto.APIResponse{data=models.Exam} "Exam created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var form schema.ExamCreationForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	exam, fieldErrs, err := c.examService.CreateExam(ctx, &form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if fieldErrs != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(fieldErrs))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(exam, "Exam created"))
}

// GetExams lists exams with filters and pagination
// @Summary List exams
// @Description Retrieves a filtered page of exams ordered by date and start time
// @Tags exams
// @Produce json
// @Param department query string false "Filter by department ID"
// @Param session query string false "Filter by session ID"
// @Param examType query string false "Filter by exam type"
// @Param status query string false "Filter by lifecycle status" Enums(DRAFT, PUBLISHED, COMPLETED, CANCELLED)
// @Param q query string false "Free-text search over title and course code"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Exams retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid filters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [get]
func (c *ExamController) GetExams(ctx *gin.Context) {
	filters, fieldErrs := schema.ParseExamFilters(ctx.Request.URL.Query())
	if fieldErrs != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(fieldErrs))
		return
	}

	exams, total, err := c.examService.GetExams(ctx, filters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PaginatedResponse{
		Items:      exams,
		Pagination: helpers.NewPaginationInfo(total, filters.Page, filters.Limit),
	}, ""))
}

// GetExamByID retrieves an exam
// @Summary Get exam
// @Description Retrieves an exam by its ID, including the registration count
// @Tags exams
// @Produce json
// @Param id path string true "Exam ID"
// @Success 200 {object} dto.APIResponse{data=models.Exam} "Exam retrieved"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/{id} [get]
func (c *ExamController) GetExamByID(ctx *gin.Context) {
	exam, err := c.examService.GetExamByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(exam, ""))
}

// UpdateExam updates an exam
// @Summary Update exam
// @Description Revalidates the full scheduling form and rewrites the exam
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam ID"
// @Param request body schema.ExamCreationForm true "Exam form"
// @Success 200 {object} dto.APIResponse{data=models.Exam} "Exam updated"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/{id} [put]
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	var form schema.ExamCreationForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	exam, fieldErrs, err := c.examService.UpdateExam(ctx, ctx.Param("id"), &form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if fieldErrs != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(fieldErrs))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(exam, "Exam updated"))
}

// UpdateExamStatus moves an exam through its lifecycle
// @Summary Update exam status
// @Description Moves an exam to a new lifecycle state (e.g. publishes a draft)
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam ID"
// @Param request body dto.UpdateExamStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Exam} "Exam status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Exam lifecycle already ended"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/{id}/status [patch]
func (c *ExamController) UpdateExamStatus(ctx *gin.Context) {
	var req dto.UpdateExamStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	exam, err := c.examService.UpdateExamStatus(ctx, ctx.Param("id"), models.ExamStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(exam, "Exam status updated"))
}

// DeleteExam removes an exam
// @Summary Delete exam
// @Description Removes an exam together with its registrations
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam ID"
// @Success 200 {object} dto.APIResponse "Exam deleted"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/{id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	if err := c.examService.DeleteExam(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Exam deleted"))
}

// GetExamTypes lists the exam categories offered on the creation form
// @Summary List exam types
// @Description Retrieves the exam categories offered on the scheduling form
// @Tags exams
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Exam types retrieved"
// @Router /exams/types [get]
func (c *ExamController) GetExamTypes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(models.ExamTypes, ""))
}
