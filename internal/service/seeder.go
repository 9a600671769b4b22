package service

import (
	"context"
	"fmt"
	mrand "math/rand/v2"
	"time"

	"github.com/bytehaven/staffdesk/api/internal/model"
)

// SeedPrefix marks seeded usernames so cleanup can find them
const SeedPrefix = "seed_"

// MaxSeedCount caps a single seeding request
const MaxSeedCount = 500

// SeederRepository is the storage surface the seeder needs
type SeederRepository interface {
	CreateBatch(ctx context.Context, apps []*model.Application) error
	DeleteByUsernamePrefix(ctx context.Context, prefix string) (int, error)
}

// SeederService generates mock applications for testing and development
type SeederService struct {
	repo SeederRepository
}

// NewSeederService creates a new seeder service
func NewSeederService(repo SeederRepository) *SeederService {
	return &SeederService{repo: repo}
}

// SeedApplicationsRequest configures application seeding
type SeedApplicationsRequest struct {
	Count int `json:"count"`
}

// SeedResult contains the results of a seeding operation
type SeedResult struct {
	Created  int   `json:"created"`
	Duration int64 `json:"durationMs"`
}

// CleanupResult contains the results of a cleanup operation
type CleanupResult struct {
	Deleted  int   `json:"deleted"`
	Duration int64 `json:"durationMs"`
}

var (
	seedCountries = []string{"Netherlands", "Germany", "United Kingdom", "United States", "Canada", "Australia", "Sweden", "Poland", "Brazil", "India"}
	seedTimezones = []string{"CET", "GMT", "EST", "PST", "AEST", "IST", "BRT"}
	seedStatuses  = []model.Status{model.StatusPending, model.StatusConsidered, model.StatusDenied}
)

// SeedApplications creates count sample applications in one atomic batch
func (s *SeederService) SeedApplications(ctx context.Context, req SeedApplicationsRequest) (*SeedResult, error) {
	if req.Count < 1 || req.Count > MaxSeedCount {
		return nil, ErrInvalidSeedCount
	}

	start := time.Now()

	apps := make([]*model.Application, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		apps = append(apps, sampleApplication(i))
	}

	if err := s.repo.CreateBatch(ctx, apps); err != nil {
		return nil, err
	}

	return &SeedResult{
		Created:  len(apps),
		Duration: time.Since(start).Milliseconds(),
	}, nil
}

// Cleanup removes all seeded applications
func (s *SeederService) Cleanup(ctx context.Context) (*CleanupResult, error) {
	start := time.Now()

	deleted, err := s.repo.DeleteByUsernamePrefix(ctx, SeedPrefix)
	if err != nil {
		return nil, err
	}

	return &CleanupResult{
		Deleted:  deleted,
		Duration: time.Since(start).Milliseconds(),
	}, nil
}

func sampleApplication(i int) *model.Application {
	answers := make(map[string]string)
	for _, key := range model.CurrentFormRevision().Required {
		answers[key] = fmt.Sprintf("Sample answer for %s (#%d)", key, i)
	}

	return &model.Application{
		DiscordUsername: fmt.Sprintf("%sapplicant_%d", SeedPrefix, i),
		DiscordUserID:   fmt.Sprintf("%018d", mrand.Int64N(999999999999999999)),
		Country:         seedCountries[mrand.IntN(len(seedCountries))],
		Timezone:        seedTimezones[mrand.IntN(len(seedTimezones))],
		Age:             fmt.Sprintf("%d", 16+mrand.IntN(20)),
		AboutYourself:   fmt.Sprintf("Seeded applicant number %d, generated for dashboard testing.", i),
		BotExperience:   fmt.Sprintf("%d", 1+mrand.IntN(5)),
		Answers:         answers,
		Status:          seedStatuses[mrand.IntN(len(seedStatuses))],
		Notes:           "",
	}
}
