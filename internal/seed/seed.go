package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/tolgaakgoz/attendly/internal/app/models"
	"github.com/tolgaakgoz/attendly/internal/app/repositories"
	"github.com/tolgaakgoz/attendly/internal/pkg/apperrors"
	"github.com/tolgaakgoz/attendly/internal/pkg/auth"
)

// CreateDefaultData seeds a default admin plus a sample advisor, an
// attendance incharge and a couple of students so a fresh install is
// immediately usable. Existing usernames are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default users...")

	defaults := []struct {
		username string
		password string
		role     models.Role
		name     string
		rollNo   string
	}{
		{username: "admin", password: "Admin123!", role: models.RoleAdmin, name: "Administrator"},
		{username: "advisor1", password: "Advisor123!", role: models.RoleAdvisor, name: "Default Advisor"},
		{username: "incharge1", password: "Incharge123!", role: models.RoleAttendanceIncharge, name: "Attendance Incharge"},
		{username: "student1", password: "Student123!", role: models.RoleStudent, name: "Sample Student One", rollNo: "22CS001"},
		{username: "student2", password: "Student123!", role: models.RoleStudent, name: "Sample Student Two", rollNo: "22CS002"},
	}

	var finalErr error
	for _, d := range defaults {
		hash, err := auth.HashPassword(d.password)
		if err != nil {
			lgr.Error().Err(err).Str("username", d.username).Msg("Error hashing seed password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		user := &models.User{
			Username: d.username,
			Password: hash,
			Role:     d.role,
		}
		if d.name != "" {
			name := d.name
			user.Name = &name
		}
		if d.rollNo != "" {
			rollNo := d.rollNo
			user.RollNo = &rollNo
		}

		_, err = userRepo.CreateUser(ctx, user)
		switch {
		case err == nil:
			lgr.Info().Str("username", d.username).Str("role", string(d.role)).Msg("Seed user created")
		case errors.Is(err, apperrors.ErrUsernameExists):
			// already seeded
		default:
			lgr.Error().Err(err).Str("username", d.username).Msg("Error creating seed user")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
