package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uniplace/placement-backend/internal/app/models"
)

// Settings error types
var (
	ErrSettingsNotFound = errors.New("settings not found")
)

// settingsRowID is the fixed primary key of the singleton settings row.
const settingsRowID = 1

// SettingsRepository handles database operations for the singleton settings row
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{
		db: db,
	}
}

// Get retrieves the settings row
func (r *SettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	query := `
		SELECT id, college_name, admin_email, placement_year,
			notify_on_application, notify_on_result, auto_sync_sheets, updated_at
		FROM settings
		WHERE id = $1
	`

	var settings models.Settings
	err := r.db.QueryRow(ctx, query, settingsRowID).Scan(
		&settings.ID,
		&settings.CollegeName,
		&settings.AdminEmail,
		&settings.PlacementYear,
		&settings.NotifyOnApplication,
		&settings.NotifyOnResult,
		&settings.AutoSyncSheets,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("error retrieving settings: %w", err)
	}

	return &settings, nil
}

// Update overwrites the settings row
func (r *SettingsRepository) Update(ctx context.Context, settings *models.Settings) error {
	query := `
		UPDATE settings
		SET college_name = $1, admin_email = $2, placement_year = $3,
			notify_on_application = $4, notify_on_result = $5, auto_sync_sheets = $6,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		settings.CollegeName,
		settings.AdminEmail,
		settings.PlacementYear,
		settings.NotifyOnApplication,
		settings.NotifyOnResult,
		settings.AutoSyncSheets,
		settingsRowID,
	).Scan(&settings.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSettingsNotFound
		}
		return fmt.Errorf("error updating settings: %w", err)
	}

	settings.ID = settingsRowID
	return nil
}

// EnsureRow inserts the default settings row if it does not exist yet
func (r *SettingsRepository) EnsureRow(ctx context.Context) error {
	query := `
		INSERT INTO settings (id, college_name, admin_email, placement_year)
		VALUES ($1, '', '', '')
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, settingsRowID); err != nil {
		return fmt.Errorf("error ensuring settings row: %w", err)
	}

	return nil
}
