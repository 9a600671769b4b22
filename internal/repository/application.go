package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bytehaven/staffdesk/api/internal/database"
	"github.com/bytehaven/staffdesk/api/internal/model"
)

// ApplicationRepository handles staff application data access
type ApplicationRepository struct {
	db database.Database
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db database.Database) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationFields = `
	discord_username: $discord_username,
	discord_user_id: $discord_user_id,
	country: $country,
	timezone: $timezone,
	age: $age,
	about_yourself: $about_yourself,
	bot_experience: $bot_experience,
	answers: $answers,
	status: $status,
	notes: $notes,
	created_at: time::now(),
	updated_at: time::now()
`

func applicationVars(app *model.Application) map[string]interface{} {
	return map[string]interface{}{
		"discord_username": app.DiscordUsername,
		"discord_user_id":  app.DiscordUserID,
		"country":          app.Country,
		"timezone":         app.Timezone,
		"age":              app.Age,
		"about_yourself":   app.AboutYourself,
		"bot_experience":   app.BotExperience,
		"answers":          app.Answers,
		"status":           string(app.Status),
		"notes":            app.Notes,
	}
}

// Create creates a new application
func (r *ApplicationRepository) Create(ctx context.Context, app *model.Application) error {
	query := `CREATE staff_application CONTENT {` + applicationFields + `}`

	result, err := r.db.QueryOne(ctx, query, applicationVars(app))
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	created, err := parseApplicationResult(result)
	if err != nil {
		return err
	}

	app.ID = created.ID
	app.CreatedAt = created.CreatedAt
	app.UpdatedAt = created.UpdatedAt
	return nil
}

// CreateBatch creates multiple applications atomically
func (r *ApplicationRepository) CreateBatch(ctx context.Context, apps []*model.Application) error {
	if len(apps) == 0 {
		return nil
	}

	batch := database.NewAtomicBatch()
	for _, app := range apps {
		batch.Add(`CREATE staff_application CONTENT {`+applicationFields+`}`, applicationVars(app))
	}
	if err := batch.Execute(ctx, r.db); err != nil {
		return fmt.Errorf("failed to create application batch: %w", err)
	}
	return nil
}

// List retrieves applications newest-first, optionally filtered by status and
// by a case-insensitive substring over country, age and about_yourself.
func (r *ApplicationRepository) List(ctx context.Context, status model.Status, search string) ([]*model.Application, error) {
	query := `SELECT * FROM staff_application`
	vars := map[string]interface{}{}

	var conditions []string
	if status != "" {
		conditions = append(conditions, `status = $status`)
		vars["status"] = string(status)
	}
	if search != "" {
		conditions = append(conditions, `(
			string::contains(string::lowercase(country), $search)
			OR string::contains(string::lowercase(age), $search)
			OR string::contains(string::lowercase(about_yourself), $search)
		)`)
		vars["search"] = strings.ToLower(search)
	}
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	query += ` ORDER BY created_at DESC`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return parseApplicationsResult(result)
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*model.Application, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseApplicationResult(result)
}

// Update applies a partial update and returns the record after the change
func (r *ApplicationRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Application, error) {
	query := `UPDATE type::record($id) SET updated_at = time::now()`
	vars := map[string]interface{}{"id": id}

	for key, value := range updates {
		query += fmt.Sprintf(`, %s = $%s`, key, key)
		vars[key] = value
	}

	query += ` RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseApplicationResult(result)
}

// Delete deletes an application. Returns database.ErrNotFound when the record
// does not exist.
func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	// RETURN BEFORE makes a delete of a missing record distinguishable:
	// it yields an empty result set, which QueryOne reports as not found.
	query := `DELETE type::record($id) RETURN BEFORE`
	vars := map[string]interface{}{"id": id}

	if _, err := r.db.QueryOne(ctx, query, vars); err != nil {
		return err
	}
	return nil
}

// DeleteByUsernamePrefix removes applications whose username starts with the
// given prefix. Used to clean up seeded sample data.
func (r *ApplicationRepository) DeleteByUsernamePrefix(ctx context.Context, prefix string) (int, error) {
	query := `DELETE staff_application WHERE string::starts_with(discord_username, $prefix) RETURN BEFORE`
	vars := map[string]interface{}{"prefix": prefix}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return 0, fmt.Errorf("failed to delete seeded applications: %w", err)
	}

	deleted, ok := extractQueryResults(result)
	if !ok {
		return 0, nil
	}
	return len(deleted), nil
}

// CountByStatus counts applications with the given status. An empty status
// counts all applications.
func (r *ApplicationRepository) CountByStatus(ctx context.Context, status model.Status) (int, error) {
	query := `SELECT count() AS count FROM staff_application`
	vars := map[string]interface{}{}
	if status != "" {
		query += ` WHERE status = $status`
		vars["status"] = string(status)
	}
	query += ` GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			// GROUP ALL over an empty table yields no rows
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}

	if data, ok := result.(map[string]interface{}); ok {
		return extractCountValue(data["count"]), nil
	}
	return extractCount(result), nil
}

func parseApplicationsResult(result []interface{}) ([]*model.Application, error) {
	records, ok := extractQueryResults(result)
	if !ok {
		return []*model.Application{}, nil
	}

	apps := make([]*model.Application, 0, len(records))
	for _, record := range records {
		app, err := parseApplicationResult(record)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func parseApplicationResult(result interface{}) (*model.Application, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	// Navigate through SurrealDB response structure
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

	return &model.Application{
		ID:              convertSurrealID(data["id"]),
		DiscordUsername: getString(data, "discord_username"),
		DiscordUserID:   getString(data, "discord_user_id"),
		Country:         getString(data, "country"),
		Timezone:        getString(data, "timezone"),
		Age:             getString(data, "age"),
		AboutYourself:   getString(data, "about_yourself"),
		BotExperience:   getString(data, "bot_experience"),
		Answers:         getStringMap(data, "answers"),
		Status:          model.Status(getString(data, "status")),
		Notes:           getString(data, "notes"),
		CreatedAt:       getTime(data, "created_at"),
		UpdatedAt:       getTime(data, "updated_at"),
	}, nil
}
