package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kmuriuki/campusreg/internal/app/models"
	"github.com/kmuriuki/campusreg/internal/app/models/dto"
	"github.com/kmuriuki/campusreg/internal/app/services"
	"github.com/kmuriuki/campusreg/internal/middleware"
	"github.com/kmuriuki/campusreg/internal/pkg/apperrors"
	"github.com/kmuriuki/campusreg/internal/pkg/helpers"
	"github.com/kmuriuki/campusreg/internal/pkg/schema"
)

// HolidayController handles holiday report endpoints
type HolidayController struct {
	holidayService *services.HolidayService
	studentService *services.StudentService
}

// NewHolidayController creates a new HolidayController
func NewHolidayController(holidayService *services.HolidayService, studentService *services.StudentService) *HolidayController {
	return &HolidayController{
		holidayService: holidayService,
		studentService: studentService,
	}
}

// resolveOwnStudent maps the authenticated account to its student record.
func (c *HolidayController) resolveOwnStudent(ctx *gin.Context) (*models.Student, bool) {
	student, err := c.studentService.GetStudentByUserID(ctx, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil, false
	}
	return student, true
}

// isStudentCaller reports whether the request carries the STUDENT role.
func isStudentCaller(ctx *gin.Context) bool {
	role, ok := ctx.Get(middleware.ContextRole)
	if !ok {
		return false
	}
	roleStr, ok := role.(string)
	return ok && roleStr == string(models.RoleStudent)
}

// SubmitReport files a holiday report for the caller's student record
// @Summary Submit holiday report
// @Description Validates the leave form and files a PENDING report for the authenticated student
// @Tags holiday-reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body schema.HolidayReportForm true "Leave form"
// @Success 201 {object} dto.APIResponse{data=models.HolidayReport} "Report submitted"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "No student record linked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /holiday-reports [post]
func (c *HolidayController) SubmitReport(ctx *gin.Context) {
	student, ok := c.resolveOwnStudent(ctx)
	if !ok {
		return
	}

	var form schema.HolidayReportForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	report, fieldErrs, err := c.holidayService.SubmitReport(ctx, student.ID, &form, time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if fieldErrs != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(fieldErrs))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(report, "Report submitted"))
}

// InsertReport files a report on a student's behalf
// @Summary File holiday report for a student
// @Description Files a report on a student's behalf, permitting back-dated leave
// @Tags holiday-reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body schema.InsertHolidayReport true "Report"
// @Success 201 {object} dto.APIResponse{data=models.HolidayReport} "Report filed"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /holiday-reports/admin [post]
func (c *HolidayController) InsertReport(ctx *gin.Context) {
	var insert schema.InsertHolidayReport
	if err := ctx.ShouldBindJSON(&insert); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	report, fieldErrs, err := c.holidayService.InsertReport(ctx, &insert)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if fieldErrs != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(fieldErrs))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(report, "Report filed"))
}

// GetReports lists holiday reports with filters and pagination
// @Summary List holiday reports
// @Description Retrieves a filtered page of holiday reports, newest first
// @Tags holiday-reports
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by review status" Enums(PENDING, APPROVED, REJECTED, UNDER_REVIEW)
// @Param priorityLevel query string false "Filter by priority" Enums(Normal, Urgent, Emergency)
// @Param holidayType query string false "Filter by leave category"
// @Param studentId query string false "Filter by student ID"
// @Param q query string false "Free-text search over destination and reason"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Reports retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid filters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /holiday-reports [get]
func (c *HolidayController) GetReports(ctx *gin.Context) {
	filters, fieldErrs := schema.ParseHolidayReportFilters(ctx.Request.URL.Query())
	if fieldErrs != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(fieldErrs))
		return
	}

	reports, total, err := c.holidayService.GetReports(ctx, filters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PaginatedResponse{
		Items:      reports,
		Pagination: helpers.NewPaginationInfo(total, filters.Page, filters.Limit),
	}, ""))
}

// GetOwnReports lists the caller's holiday reports
// @Summary List own holiday reports
// @Description Retrieves every report submitted by the authenticated student
// @Tags holiday-reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.HolidayReport} "Reports retrieved"
// @Failure 404 {object} dto.ErrorResponse "No student record linked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /holiday-reports/mine [get]
func (c *HolidayController) GetOwnReports(ctx *gin.Context) {
	student, ok := c.resolveOwnStudent(ctx)
	if !ok {
		return
	}

	reports, err := c.holidayService.GetReportsByStudent(ctx, student.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(reports, ""))
}

// GetReportByID retrieves a holiday report
// @Summary Get holiday report
// @Description Retrieves a report with its student and reviewer attached
// @Tags holiday-reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} dto.APIResponse{data=models.HolidayReport} "Report retrieved"
// @Failure 403 {object} dto.ErrorResponse "Report belongs to another student"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /holiday-reports/{id} [get]
func (c *HolidayController) GetReportByID(ctx *gin.Context) {
	report, err := c.holidayService.GetReportByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// Students may only read their own reports; back office sees all.
	if isStudentCaller(ctx) {
		student, resolved := c.resolveOwnStudent(ctx)
		if !resolved {
			return
		}
		if !report.OwnedBy(student.ID) {
			middleware.HandleAPIError(ctx, apperrors.ErrNotReportOwner)
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report, ""))
}

// UpdateReport rewrites a PENDING report owned by the caller
// @Summary Update holiday report
// @Description Rewrites a report. Only the owning student may edit it, and only while PENDING.
// @Tags holiday-reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body schema.HolidayReportForm true "Leave form"
// @Success 200 {object} dto.APIResponse{data=models.HolidayReport} "Report updated"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Report belongs to another student"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Failure 409 {object} dto.ErrorResponse "Report no longer PENDING"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /holiday-reports/{id} [put]
func (c *HolidayController) UpdateReport(ctx *gin.Context) {
	student, ok := c.resolveOwnStudent(ctx)
	if !ok {
		return
	}

	var form schema.HolidayReportForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	report, fieldErrs, err := c.holidayService.UpdateReport(ctx, ctx.Param("id"), student.ID, &form, time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if fieldErrs != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(fieldErrs))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report, "Report updated"))
}

// ReviewReport records a review decision
// @Summary Review holiday report
// @Description Approves, rejects or escalates a report and stamps the reviewer
// @Tags holiday-reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body dto.ReviewHolidayReportRequest true "Review decision"
// @Success 200 {object} dto.APIResponse{data=models.HolidayReport} "Report reviewed"
// @Failure 400 {object} dto.ErrorResponse "Invalid decision"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Failure 409 {object} dto.ErrorResponse "Report already finalized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /holiday-reports/{id}/review [post]
func (c *HolidayController) ReviewReport(ctx *gin.Context) {
	var req dto.ReviewHolidayReportRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	report, err := c.holidayService.ReviewReport(ctx, ctx.Param("id"), middleware.UserID(ctx),
		models.HolidayStatus(req.Status), req.ReviewComments, time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report, "Report reviewed"))
}

// DeleteReport removes a holiday report
// @Summary Delete holiday report
// @Description Students may delete their own PENDING reports; admins may delete any report
// @Tags holiday-reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} dto.APIResponse "Report deleted"
// @Failure 403 {object} dto.ErrorResponse "Report belongs to another student"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Failure 409 {object} dto.ErrorResponse "Report no longer PENDING"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /holiday-reports/{id} [delete]
func (c *HolidayController) DeleteReport(ctx *gin.Context) {
	studentID := ""
	if isStudentCaller(ctx) {
		student, resolved := c.resolveOwnStudent(ctx)
		if !resolved {
			return
		}
		studentID = student.ID
	}

	if err := c.holidayService.DeleteReport(ctx, ctx.Param("id"), studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Report deleted"))
}

// UploadDocument attaches a supporting document to a PENDING report
// @Summary Upload report document
// @Description Stores a supporting document (medical letter...) on a PENDING report owned by the caller
// @Tags holiday-reports
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param category formData string true "Document category, e.g. medicalLetter"
// @Param file formData file true "Document file"
// @Success 200 {object} dto.APIResponse{data=models.FileRef} "Document stored"
// @Failure 400 {object} dto.ErrorResponse "Missing file or category"
// @Failure 403 {object} dto.ErrorResponse "Report belongs to another student"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Failure 409 {object} dto.ErrorResponse "Report no longer PENDING"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /holiday-reports/{id}/documents [post]
func (c *HolidayController) UploadDocument(ctx *gin.Context) {
	student, ok := c.resolveOwnStudent(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Document file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ref, err := c.holidayService.UploadDocument(ctx, ctx.Param("id"), student.ID, ctx.PostForm("category"), fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(ref, "Document stored"))
}

// GetHolidayTypes lists the leave categories offered on the form
// @Summary List holiday types
// @Description Retrieves the leave categories offered on the report form
// @Tags holiday-reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Holiday types retrieved"
// @Router /holiday-reports/types [get]
func (c *HolidayController) GetHolidayTypes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(models.HolidayTypes, ""))
}
