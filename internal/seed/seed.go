package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/uniplace/placement-backend/internal/app/models"
	appRepos "github.com/uniplace/placement-backend/internal/app/repositories"
	"github.com/uniplace/placement-backend/internal/config"
	"github.com/uniplace/placement-backend/internal/pkg/auth"
)

// CreateDefaultData ensures the singleton settings row exists and creates the
// default admin account on first boot.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	settingsRepo := appRepos.NewSettingsRepository(dbPool)

	var finalErr error

	if err := settingsRepo.EnsureRow(ctx); err != nil {
		lgr.Error().Err(err).Msg("Error ensuring settings row")
		finalErr = errors.Join(finalErr, err)
	}

	adminEmail := config.GetEnv("ADMIN_EMAIL", "admin@placement.app")
	adminPassword := config.GetEnv("ADMIN_PASSWORD", "ChangeMe123!")

	exists, err := userRepo.ExistsByEmail(ctx, adminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return errors.Join(finalErr, err)
	}
	if exists {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return finalErr
	}

	lgr.Info().Msg("Creating default admin user...")

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return errors.Join(finalErr, err)
	}

	admin := &appModels.User{
		Email:    adminEmail,
		Password: hashedPassword,
		FullName: "Placement Cell Admin",
		RoleType: appModels.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return errors.Join(finalErr, err)
	}

	lgr.Info().Int64("adminID", admin.ID).Str("email", adminEmail).Msg("Default admin user created successfully")
	return finalErr
}
