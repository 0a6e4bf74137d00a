package services

// Services defined in this package:
// - AuthService: sign-in, token refresh and account management
// - DepartmentService: academic departments
// - SessionService: academic sessions and the active-session switch
// - StudentService: student onboarding and records
// - ExamService: exam scheduling and lifecycle
// - RegistrationService: exam sign-ups, capacity and deadlines
// - HolidayService: holiday report submission and review
// - DashboardService: admin dashboard counters
