package repository

import (
	"context"
	"fmt"

	"github.com/bytehaven/staffdesk/api/internal/database"
	"github.com/bytehaven/staffdesk/api/internal/model"
)

// settingsRecordID pins the settings singleton to one well-known record, so
// concurrent first reads cannot create duplicate documents.
const settingsRecordID = "application_settings:current"

// SettingsRepository handles application settings data access
type SettingsRepository struct {
	db database.Database
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db database.Database) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get retrieves the settings singleton. Returns database.ErrNotFound when it
// has never been created.
func (r *SettingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": settingsRecordID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseSettingsResult(result)
}

// Create writes the settings singleton with the given values. The fixed
// record ID makes a second create fail rather than produce a duplicate.
func (r *SettingsRepository) Create(ctx context.Context, settings *model.Settings) error {
	query := `
		CREATE type::record($id) CONTENT {
			is_open: $is_open,
			closed_message: $closed_message,
			updated_at: time::now()
		}
	`
	vars := map[string]interface{}{
		"id":             settingsRecordID,
		"is_open":        settings.IsOpen,
		"closed_message": settings.ClosedMessage,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return fmt.Errorf("failed to create settings: %w", err)
	}

	created, err := parseSettingsResult(result)
	if err != nil {
		return err
	}
	settings.UpdatedAt = created.UpdatedAt
	return nil
}

// Update applies a partial update to the singleton and returns it after the
// change.
func (r *SettingsRepository) Update(ctx context.Context, updates map[string]interface{}) (*model.Settings, error) {
	query := `UPDATE type::record($id) SET updated_at = time::now()`
	vars := map[string]interface{}{"id": settingsRecordID}

	for key, value := range updates {
		query += fmt.Sprintf(`, %s = $%s`, key, key)
		vars[key] = value
	}

	query += ` RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseSettingsResult(result)
}

func parseSettingsResult(result interface{}) (*model.Settings, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok {
				if len(resultData) == 0 {
					return nil, database.ErrNotFound
				}
				result = resultData[0]
			}
		}
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: unexpected result format", database.ErrQuery)
	}

	return &model.Settings{
		IsOpen:        getBool(data, "is_open"),
		ClosedMessage: getString(data, "closed_message"),
		UpdatedAt:     getTime(data, "updated_at"),
	}, nil
}
