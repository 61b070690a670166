package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"comitefd/internal/models"
)

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetAll(ctx context.Context) ([]models.SiteSetting, error) {
	query := `SELECT * FROM site_settings`

	var settings []models.SiteSetting
	err := r.db.SelectContext(ctx, &settings, query)
	if err != nil {
		return nil, fmt.Errorf("could not list site settings: %w", err)
	}

	return settings, nil
}

// Upsert creates or replaces one key. Settings are never deleted.
func (r *settingsRepository) Upsert(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO site_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`

	_, err := r.db.ExecContext(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("could not upsert setting %s: %w", key, err)
	}

	return nil
}
