package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	appModels "github.com/kmuriuki/campusreg/internal/app/models"
	appRepos "github.com/kmuriuki/campusreg/internal/app/repositories"
	"github.com/kmuriuki/campusreg/internal/pkg/apperrors"
	"github.com/kmuriuki/campusreg/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// defaultDepartments seeds the department dropdown on the registration form.
var defaultDepartments = []string{
	"Computer Science",
	"Business Administration",
	"Engineering",
	"Health Sciences",
	"Education",
	"Agriculture",
}

// CreateDefaultData creates default departments, an active academic session
// and the initial admin account if they don't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	departmentRepo := appRepos.NewDepartmentRepository(dbPool)
	sessionRepo := appRepos.NewSessionRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (departments, session, admin)...")
	var finalErr error

	for _, name := range defaultDepartments {
		dept := &appModels.Department{Name: name}
		if err := departmentRepo.Create(ctx, dept); err != nil && !errors.Is(err, apperrors.ErrDepartmentNameExists) {
			lgr.Error().Err(err).Str("department", name).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if _, err := sessionRepo.GetActive(ctx); errors.Is(err, apperrors.ErrSessionNotFound) {
		if err := createCurrentSession(ctx, sessionRepo, lgr); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	} else if err != nil {
		lgr.Error().Err(err).Msg("Error checking active session")
		finalErr = errors.Join(finalErr, err)
	}

	if err := createAdminUser(ctx, userRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

// createCurrentSession activates a session named after the current year.
func createCurrentSession(ctx context.Context, sessionRepo *appRepos.SessionRepository, lgr zerolog.Logger) error {
	now := time.Now()
	year := now.Year()
	active := true
	session := &appModels.AcademicSession{
		Name:      now.Format("2006") + "/" + time.Date(year+1, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006"),
		StartDate: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		IsActive:  &active,
	}

	err := sessionRepo.Create(ctx, session)
	if err != nil && !errors.Is(err, apperrors.ErrSessionNameExists) {
		lgr.Error().Err(err).Msg("Error creating default academic session")
		return err
	}
	return nil
}

// createAdminUser provisions the bootstrap admin account if no account
// uses the default admin email yet. The password must be changed after
// first login.
func createAdminUser(ctx context.Context, userRepo *appRepos.UserRepository, lgr zerolog.Logger) error {
	const adminEmail = "admin@campusreg.app"

	exists, err := userRepo.EmailExists(ctx, adminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking admin account")
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword("ChangeMe123!")
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	email := adminEmail
	firstName := "System"
	lastName := "Administrator"
	role := appModels.RoleAdmin
	admin := &appModels.User{
		Email:        &email,
		PasswordHash: hash,
		FirstName:    &firstName,
		LastName:     &lastName,
		Role:         &role,
		IsActive:     true,
	}

	if err := userRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating admin account")
		return err
	}

	lgr.Warn().Str("email", adminEmail).Msg("Default admin account created, change the password after first login")
	return nil
}
