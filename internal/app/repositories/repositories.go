package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	TokenRepository         *TokenRepository
	DepartmentRepository    *DepartmentRepository
	SessionRepository       *SessionRepository
	StudentRepository       *StudentRepository
	ExamRepository          *ExamRepository
	RegistrationRepository  *RegistrationRepository
	HolidayReportRepository *HolidayReportRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		TokenRepository:         NewTokenRepository(db),
		DepartmentRepository:    NewDepartmentRepository(db),
		SessionRepository:       NewSessionRepository(db),
		StudentRepository:       NewStudentRepository(db),
		ExamRepository:          NewExamRepository(db),
		RegistrationRepository:  NewRegistrationRepository(db),
		HolidayReportRepository: NewHolidayReportRepository(db),
	}
}
