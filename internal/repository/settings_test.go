package repository_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytehaven/staffdesk/api/internal/database"
	"github.com/bytehaven/staffdesk/api/internal/model"
	"github.com/bytehaven/staffdesk/api/internal/repository"
	"github.com/bytehaven/staffdesk/api/internal/testing/fixtures"
	"github.com/bytehaven/staffdesk/api/internal/testing/testdb"
)

func TestSettingsRepository_Get_MissingSingleton(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewSettingsRepository(tdb.DB)

	_, err := repo.Get(tdb.Ctx())
	require.True(t, errors.Is(err, database.ErrNotFound), "expected ErrNotFound, got %v", err)
}

func TestSettingsRepository_CreateAndGet(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewSettingsRepository(tdb.DB)
	f := fixtures.New(tdb.DB)

	f.CreateSettings(t, false, "Applications reopen next month.")

	got, err := repo.Get(tdb.Ctx())
	require.NoError(t, err)
	require.False(t, got.IsOpen)
	require.Equal(t, "Applications reopen next month.", got.ClosedMessage)
	require.False(t, got.UpdatedAt.IsZero())
}

func TestSettingsRepository_Update_Partial(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewSettingsRepository(tdb.DB)
	f := fixtures.New(tdb.DB)

	f.CreateSettings(t, true, model.DefaultClosedMessage)

	updated, err := repo.Update(tdb.Ctx(), map[string]interface{}{
		"is_open": false,
	})
	require.NoError(t, err)
	require.False(t, updated.IsOpen)
	// Untouched fields keep their values.
	require.Equal(t, model.DefaultClosedMessage, updated.ClosedMessage)

	updated, err = repo.Update(tdb.Ctx(), map[string]interface{}{
		"closed_message": "Back soon.",
	})
	require.NoError(t, err)
	require.False(t, updated.IsOpen)
	require.Equal(t, "Back soon.", updated.ClosedMessage)
}

func TestSettingsRepository_Update_SingleRecordSurvivesRepeats(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewSettingsRepository(tdb.DB)
	f := fixtures.New(tdb.DB)

	f.CreateSettings(t, true, "")

	for i := 0; i < 3; i++ {
		_, err := repo.Update(tdb.Ctx(), map[string]interface{}{
			"is_open": i%2 == 0,
		})
		require.NoError(t, err)
	}

	// Still exactly one settings record.
	results := tdb.MustQuery("SELECT count() AS count FROM application_settings GROUP ALL", nil)
	require.NotEmpty(t, results)
}
