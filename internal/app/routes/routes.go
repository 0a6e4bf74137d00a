package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kmuriuki/campusreg/internal/app/controllers"
	"github.com/kmuriuki/campusreg/internal/app/models"
	"github.com/kmuriuki/campusreg/internal/app/models/dto"
	"github.com/kmuriuki/campusreg/internal/middleware"
)

// Controllers bundles the controllers the router wires up.
type Controllers struct {
	Auth         *controllers.AuthController
	Department   *controllers.DepartmentController
	Session      *controllers.SessionController
	Student      *controllers.StudentController
	Exam         *controllers.ExamController
	Registration *controllers.RegistrationController
	Holiday      *controllers.HolidayController
	Dashboard    *controllers.DashboardController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
		auth.POST("/refresh", c.Auth.RefreshToken)
	}

	// Catalog routes stay public so the registration portal can render
	// its forms before login.
	v1.GET("/departments", c.Department.GetAllDepartments)
	v1.GET("/departments/:id", c.Department.GetDepartmentByID)
	v1.GET("/sessions", c.Session.GetAllSessions)
	v1.GET("/sessions/active", c.Session.GetActiveSession)
	v1.GET("/exams", c.Exam.GetExams)
	v1.GET("/exams/types", c.Exam.GetExamTypes)
	v1.GET("/exams/:id", c.Exam.GetExamByID)
	v1.GET("/holiday-reports/types", c.Holiday.GetHolidayTypes)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", c.Auth.Logout)
		authenticated.POST("/auth/change-password", c.Auth.ChangePassword)
		authenticated.GET("/auth/me", c.Auth.GetProfile)

		// Student self-service
		studentOnly := authenticated.Group("")
		studentOnly.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			studentOnly.GET("/students/me", c.Student.GetOwnRecord)
			studentOnly.POST("/exams/:id/register", c.Registration.RegisterSelf)
			studentOnly.POST("/holiday-reports", c.Holiday.SubmitReport)
			studentOnly.GET("/holiday-reports/mine", c.Holiday.GetOwnReports)
			studentOnly.PUT("/holiday-reports/:id", c.Holiday.UpdateReport)
			studentOnly.POST("/holiday-reports/:id/documents", c.Holiday.UploadDocument)
		}

		// Shared between students (own reports) and back office. The
		// handler enforces ownership for student callers.
		authenticated.GET("/holiday-reports/:id", c.Holiday.GetReportByID)
		authenticated.DELETE("/holiday-reports/:id", c.Holiday.DeleteReport)

		// Back-office routes
		staff := authenticated.Group("")
		staff.Use(authMiddleware.RoleRequired(models.RoleStaff, models.RoleAdmin, models.RoleSuperAdmin))
		{
			staff.POST("/students", c.Student.RegisterStudent)
			staff.GET("/students", c.Student.GetStudents)
			staff.GET("/students/:id", c.Student.GetStudentByID)
			staff.PUT("/students/:id", c.Student.UpdateStudent)
			staff.DELETE("/students/:id", c.Student.DeleteStudent)
			staff.POST("/students/:id/documents", c.Student.UploadDocument)
			staff.GET("/students/:id/registrations", c.Registration.GetRegistrationsByStudent)

			staff.POST("/exams", c.Exam.CreateExam)
			staff.PUT("/exams/:id", c.Exam.UpdateExam)
			staff.PATCH("/exams/:id/status", c.Exam.UpdateExamStatus)
			staff.DELETE("/exams/:id", c.Exam.DeleteExam)
			staff.GET("/exams/:id/registrations", c.Registration.GetRegistrationsByExam)

			staff.POST("/registrations", c.Registration.CreateRegistration)
			staff.GET("/registrations/:id", c.Registration.GetRegistrationByID)
			staff.PATCH("/registrations/:id/status", c.Registration.UpdateRegistrationStatus)
			staff.DELETE("/registrations/:id", c.Registration.CancelRegistration)
			staff.POST("/registrations/:id/payment", c.Registration.MarkPaid)

			staff.GET("/holiday-reports", c.Holiday.GetReports)
			staff.POST("/holiday-reports/admin", c.Holiday.InsertReport)
			staff.POST("/holiday-reports/:id/review", c.Holiday.ReviewReport)

			staff.GET("/dashboard/stats", c.Dashboard.GetStats)
		}

		// Catalog administration is restricted to admins
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleSuperAdmin))
		{
			admin.POST("/departments", c.Department.CreateDepartment)
			admin.PUT("/departments/:id", c.Department.UpdateDepartment)
			admin.DELETE("/departments/:id", c.Department.DeleteDepartment)

			admin.POST("/sessions", c.Session.CreateSession)
			admin.GET("/sessions/:id", c.Session.GetSessionByID)
			admin.PUT("/sessions/:id", c.Session.UpdateSession)
			admin.POST("/sessions/:id/activate", c.Session.ActivateSession)
			admin.DELETE("/sessions/:id", c.Session.DeleteSession)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})
}
