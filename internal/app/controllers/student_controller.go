package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kmuriuki/campusreg/internal/app/models/dto"
	"github.com/kmuriuki/campusreg/internal/app/services"
	"github.com/kmuriuki/campusreg/internal/middleware"
	"github.com/kmuriuki/campusreg/internal/pkg/helpers"
	"github.com/kmuriuki/campusreg/internal/pkg/schema"
)

// StudentController handles student onboarding and record endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// RegisterStudent handles the student registration form
// @Summary Register a student
// @Description Validates the registration form and creates the student record. All field problems are reported in one pass.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body schema.StudentRegistrationForm true "Registration form"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student registered"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Student number or birth certificate already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) RegisterStudent(ctx *gin.Context) {
	var form schema.StudentRegistrationForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, fieldErrs, err := c.studentService.RegisterStudent(ctx, &form, time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if fieldErrs != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(fieldErrs))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student, "Student registered"))
}

// GetStudents lists students with filters and pagination
// @Summary List students
// @Description Retrieves a filtered page of students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param department query string false "Filter by department ID"
// @Param class query string false "Filter by class"
// @Param session query string false "Filter by session"
// @Param studentType query string false "Filter by admission type" Enums(KUCCPS, SELF_SPONSORED)
// @Param q query string false "Free-text search over name, number and email"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Students retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid filters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	filters, fieldErrs := schema.ParseStudentFilters(ctx.Request.URL.Query())
	if fieldErrs != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(fieldErrs))
		return
	}

	students, total, err := c.studentService.GetStudents(ctx, filters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PaginatedResponse{
		Items:      students,
		Pagination: helpers.NewPaginationInfo(total, filters.Page, filters.Limit),
	}, ""))
}

// GetStudentByID retrieves a student
// @Summary Get student
// @Description Retrieves a student record by its ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, ""))
}

// GetOwnRecord retrieves the student record linked to the caller's account
// @Summary Get own student record
// @Description Retrieves the student record linked to the authenticated account
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved"
// @Failure 404 {object} dto.ErrorResponse "No student record linked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/me [get]
func (c *StudentController) GetOwnRecord(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByUserID(ctx, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, ""))
}

// UpdateStudent updates a student record
// @Summary Update student
// @Description Revalidates the full registration form and rewrites the record
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body schema.StudentRegistrationForm true "Registration form"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var form schema.StudentRegistrationForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, fieldErrs, err := c.studentService.UpdateStudent(ctx, ctx.Param("id"), &form, time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if fieldErrs != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(fieldErrs))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, "Student updated"))
}

// DeleteStudent removes a student record
// @Summary Delete student
// @Description Removes a student together with registrations, reports and stored documents
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Student deleted"))
}

// UploadDocument attaches a document to a student record
// @Summary Upload student document
// @Description Stores an uploaded document (birth certificate, KCSE slip...) under the student record
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param category formData string true "Document category, e.g. birthCert"
// @Param file formData file true "Document file"
// @Success 200 {object} dto.APIResponse{data=models.FileRef} "Document stored"
// @Failure 400 {object} dto.ErrorResponse "Missing file or category"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/documents [post]
func (c *StudentController) UploadDocument(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Document file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ref, err := c.studentService.UploadDocument(ctx, ctx.Param("id"), ctx.PostForm("category"), fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(ref, "Document stored"))
}
