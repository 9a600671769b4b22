// Package fixtures provides test data factories for database-backed tests.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories handle database insertion
// and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	app := f.CreateApplication(t)
//	denied := f.CreateApplication(t, func(o *ApplicationOpts) {
//	    o.Status = model.StatusDenied
//	})
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/bytehaven/staffdesk/api/internal/database"
	"github.com/bytehaven/staffdesk/api/internal/model"
	"github.com/bytehaven/staffdesk/api/internal/repository"
)

// Factory creates test entities in the database
type Factory struct {
	db           database.Database
	applications *repository.ApplicationRepository
	settings     *repository.SettingsRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		db:           db,
		applications: repository.NewApplicationRepository(db),
		settings:     repository.NewSettingsRepository(db),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ApplicationOpts customizes application creation
type ApplicationOpts struct {
	DiscordUsername string
	DiscordUserID   string
	Country         string
	Timezone        string
	Age             string
	AboutYourself   string
	BotExperience   string
	Answers         map[string]string
	Status          model.Status
	Notes           string
}

// CreateApplication creates a staff application with optional customizations.
// Defaults satisfy the current form revision so the fixture round-trips
// through the same repository code production uses.
func (f *Factory) CreateApplication(t *testing.T, opts ...func(*ApplicationOpts)) *model.Application {
	t.Helper()

	id := randomID()
	o := &ApplicationOpts{
		DiscordUsername: fmt.Sprintf("applicant_%s", id),
		DiscordUserID:   "123456789012345678",
		Country:         "Canada",
		Timezone:        "America/Toronto",
		Age:             "22",
		AboutYourself:   "Longtime community member, active daily.",
		BotExperience:   "4",
		Answers:         defaultAnswers(),
		Status:          model.StatusPending,
		Notes:           "",
	}
	for _, fn := range opts {
		fn(o)
	}

	app := &model.Application{
		DiscordUsername: o.DiscordUsername,
		DiscordUserID:   o.DiscordUserID,
		Country:         o.Country,
		Timezone:        o.Timezone,
		Age:             o.Age,
		AboutYourself:   o.AboutYourself,
		BotExperience:   o.BotExperience,
		Answers:         o.Answers,
		Status:          o.Status,
		Notes:           o.Notes,
	}

	ctx, cancel := testContext()
	defer cancel()

	if err := f.applications.Create(ctx, app); err != nil {
		t.Fatalf("fixtures: failed to create application: %v", err)
	}
	return app
}

// CreateSettings creates the settings singleton in a known state.
func (f *Factory) CreateSettings(t *testing.T, isOpen bool, closedMessage string) *model.Settings {
	t.Helper()

	settings := &model.Settings{
		IsOpen:        isOpen,
		ClosedMessage: closedMessage,
	}

	ctx, cancel := testContext()
	defer cancel()

	if err := f.settings.Create(ctx, settings); err != nil {
		t.Fatalf("fixtures: failed to create settings: %v", err)
	}
	return settings
}

// testContext returns a context with a timeout suitable for test writes.
func testContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// defaultAnswers returns answers for every required form question.
func defaultAnswers() map[string]string {
	answers := make(map[string]string)
	for _, key := range model.CurrentFormRevision().Required {
		answers[key] = "fixture answer for " + key
	}
	return answers
}
