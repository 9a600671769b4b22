package repository_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytehaven/staffdesk/api/internal/database"
	"github.com/bytehaven/staffdesk/api/internal/model"
	"github.com/bytehaven/staffdesk/api/internal/repository"
	"github.com/bytehaven/staffdesk/api/internal/testing/fixtures"
	"github.com/bytehaven/staffdesk/api/internal/testing/testdb"
)

func TestApplicationRepository_CreateAndGet(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewApplicationRepository(tdb.DB)
	f := fixtures.New(tdb.DB)

	created := f.CreateApplication(t)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(tdb.Ctx(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.DiscordUsername, got.DiscordUsername)
	require.Equal(t, model.StatusPending, got.Status)
	require.Equal(t, created.Answers["whyJoin"], got.Answers["whyJoin"])
}

func TestApplicationRepository_GetByID_NotFound(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewApplicationRepository(tdb.DB)

	_, err := repo.GetByID(tdb.Ctx(), "staff_application:does_not_exist")
	require.True(t, errors.Is(err, database.ErrNotFound), "expected ErrNotFound, got %v", err)
}

func TestApplicationRepository_List_FilterByStatus(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewApplicationRepository(tdb.DB)
	f := fixtures.New(tdb.DB)

	f.CreateApplication(t)
	f.CreateApplication(t, func(o *fixtures.ApplicationOpts) {
		o.Status = model.StatusDenied
	})
	f.CreateApplication(t, func(o *fixtures.ApplicationOpts) {
		o.Status = model.StatusDenied
	})

	denied, err := repo.List(tdb.Ctx(), model.StatusDenied, "")
	require.NoError(t, err)
	require.Len(t, denied, 2)
	for _, app := range denied {
		require.Equal(t, model.StatusDenied, app.Status)
	}

	all, err := repo.List(tdb.Ctx(), "", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestApplicationRepository_List_SearchIsCaseInsensitive(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewApplicationRepository(tdb.DB)
	f := fixtures.New(tdb.DB)

	f.CreateApplication(t, func(o *fixtures.ApplicationOpts) {
		o.Country = "Portugal"
	})
	f.CreateApplication(t, func(o *fixtures.ApplicationOpts) {
		o.Country = "Japan"
	})

	results, err := repo.List(tdb.Ctx(), "", "PORTU")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Portugal", results[0].Country)
}

func TestApplicationRepository_List_NewestFirst(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewApplicationRepository(tdb.DB)
	f := fixtures.New(tdb.DB)

	f.CreateApplication(t, func(o *fixtures.ApplicationOpts) {
		o.DiscordUsername = "first_in"
	})
	f.CreateApplication(t, func(o *fixtures.ApplicationOpts) {
		o.DiscordUsername = "second_in"
	})
	newest := f.CreateApplication(t, func(o *fixtures.ApplicationOpts) {
		o.DiscordUsername = "third_in"
	})

	results, err := repo.List(tdb.Ctx(), "", "")
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.Equal(t, newest.ID, results[0].ID, "most recent submission should come first")
	for i := 1; i < len(results); i++ {
		require.False(t, results[i-1].CreatedAt.Before(results[i].CreatedAt),
			"results must be ordered by creation time descending: %v before %v",
			results[i-1].CreatedAt, results[i].CreatedAt)
	}
}

func TestApplicationRepository_Update_SetsStatusAndNotes(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewApplicationRepository(tdb.DB)
	f := fixtures.New(tdb.DB)

	created := f.CreateApplication(t)

	updated, err := repo.Update(tdb.Ctx(), created.ID, map[string]interface{}{
		"status": string(model.StatusConsidered),
		"notes":  "solid first impression",
	})
	require.NoError(t, err)
	require.Equal(t, model.StatusConsidered, updated.Status)
	require.Equal(t, "solid first impression", updated.Notes)
	require.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestApplicationRepository_Update_NotFound(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewApplicationRepository(tdb.DB)

	_, err := repo.Update(tdb.Ctx(), "staff_application:missing", map[string]interface{}{
		"notes": "nobody home",
	})
	require.True(t, errors.Is(err, database.ErrNotFound), "expected ErrNotFound, got %v", err)
}

func TestApplicationRepository_Delete(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewApplicationRepository(tdb.DB)
	f := fixtures.New(tdb.DB)

	created := f.CreateApplication(t)

	require.NoError(t, repo.Delete(tdb.Ctx(), created.ID))

	_, err := repo.GetByID(tdb.Ctx(), created.ID)
	require.True(t, errors.Is(err, database.ErrNotFound))

	err = repo.Delete(tdb.Ctx(), created.ID)
	require.True(t, errors.Is(err, database.ErrNotFound), "expected ErrNotFound on double delete, got %v", err)
}

func TestApplicationRepository_CountByStatus(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewApplicationRepository(tdb.DB)
	f := fixtures.New(tdb.DB)

	// Empty table counts as zero rather than erroring.
	count, err := repo.CountByStatus(tdb.Ctx(), model.StatusPending)
	require.NoError(t, err)
	require.Equal(t, 0, count)

	f.CreateApplication(t)
	f.CreateApplication(t)
	f.CreateApplication(t, func(o *fixtures.ApplicationOpts) {
		o.Status = model.StatusConsidered
	})

	count, err = repo.CountByStatus(tdb.Ctx(), model.StatusPending)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	total, err := repo.CountByStatus(tdb.Ctx(), "")
	require.NoError(t, err)
	require.Equal(t, 3, total)
}

func TestApplicationRepository_CreateBatch_Atomic(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewApplicationRepository(tdb.DB)

	apps := make([]*model.Application, 3)
	for i := range apps {
		apps[i] = &model.Application{
			DiscordUsername: "seed_batch_user",
			DiscordUserID:   "123456789012345678",
			Country:         "Canada",
			Timezone:        "America/Toronto",
			Age:             "20",
			AboutYourself:   "batch fixture",
			BotExperience:   "3",
			Answers:         map[string]string{"whyJoin": "batch"},
			Status:          model.StatusPending,
		}
	}

	require.NoError(t, repo.CreateBatch(tdb.Ctx(), apps))

	count, err := repo.CountByStatus(tdb.Ctx(), "")
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestApplicationRepository_DeleteByUsernamePrefix(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	repo := repository.NewApplicationRepository(tdb.DB)
	f := fixtures.New(tdb.DB)

	f.CreateApplication(t, func(o *fixtures.ApplicationOpts) {
		o.DiscordUsername = "seed_alpha"
	})
	f.CreateApplication(t, func(o *fixtures.ApplicationOpts) {
		o.DiscordUsername = "seed_beta"
	})
	keeper := f.CreateApplication(t, func(o *fixtures.ApplicationOpts) {
		o.DiscordUsername = "organic_user"
	})

	removed, err := repo.DeleteByUsernamePrefix(tdb.Ctx(), "seed_")
	require.NoError(t, err)
	require.Equal(t, 2, removed)

	remaining, err := repo.List(tdb.Ctx(), "", "")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.True(t, strings.HasPrefix(remaining[0].DiscordUsername, "organic_"))
	require.Equal(t, keeper.ID, remaining[0].ID)
}
