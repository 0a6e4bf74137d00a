package dto

// DashboardStats summarizes the admin dashboard counters
type DashboardStats struct {
	TotalStudents          int64            `json:"totalStudents" example:"412"`
	TotalExams             int64            `json:"totalExams" example:"37"`
	UpcomingExams          int64            `json:"upcomingExams" example:"9"`
	PendingHolidayReports  int64            `json:"pendingHolidayReports" example:"14"`
	RegistrationsByStatus  map[string]int64 `json:"registrationsByStatus"`
	StudentsByType         map[string]int64 `json:"studentsByType"`
	HolidayReportsByStatus map[string]int64 `json:"holidayReportsByStatus"`
}
