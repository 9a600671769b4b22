package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bytehaven/staffdesk/api/internal/database"
	"github.com/bytehaven/staffdesk/api/internal/model"
)

// ApplicationRepository defines the interface for application storage
type ApplicationRepository interface {
	Create(ctx context.Context, app *model.Application) error
	List(ctx context.Context, status model.Status, search string) ([]*model.Application, error)
	GetByID(ctx context.Context, id string) (*model.Application, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Application, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status model.Status) (int, error)
}

// ApplicationService handles staff application business logic
type ApplicationService struct {
	repo ApplicationRepository
}

// ApplicationServiceConfig holds configuration for the application service
type ApplicationServiceConfig struct {
	Repo ApplicationRepository
}

// NewApplicationService creates a new application service
func NewApplicationService(cfg ApplicationServiceConfig) *ApplicationService {
	return &ApplicationService{
		repo: cfg.Repo,
	}
}

// Submit stores a new application from the public form. The stored status is
// always pending regardless of anything the client sent.
func (s *ApplicationService) Submit(ctx context.Context, req *model.SubmitApplicationRequest) (*model.Application, error) {
	app := &model.Application{
		DiscordUsername: req.DiscordUsername,
		DiscordUserID:   req.DiscordUserID,
		Country:         req.Country,
		Timezone:        req.Timezone,
		Age:             req.Age,
		AboutYourself:   req.AboutYourself,
		BotExperience:   req.BotExperience,
		Answers:         req.Answers,
		Status:          model.StatusPending,
		Notes:           "",
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

// List retrieves applications for the review dashboard. The status filter
// accepts the three statuses plus "all" or empty for no filtering; search is
// matched case-insensitively.
func (s *ApplicationService) List(ctx context.Context, statusFilter, search string) ([]*model.Application, error) {
	var status model.Status
	switch statusFilter {
	case "", model.StatusAll:
		status = ""
	default:
		status = model.Status(statusFilter)
		if !status.Valid() {
			return nil, ErrInvalidStatusFilter
		}
	}

	return s.repo.List(ctx, status, strings.TrimSpace(search))
}

// Update applies a review patch (status and/or notes) to an application
func (s *ApplicationService) Update(ctx context.Context, id string, req *model.UpdateApplicationRequest) (*model.Application, error) {
	updates := make(map[string]interface{})
	if req.Status != nil {
		updates["status"] = string(*req.Status)
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) == 0 {
		return nil, ErrEmptyUpdate
	}

	app, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

// Delete removes an application permanently
func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrApplicationNotFound
		}
		return err
	}
	return nil
}

// Stats returns the aggregate counts for the review dashboard
func (s *ApplicationService) Stats(ctx context.Context) (*model.Stats, error) {
	total, err := s.repo.CountByStatus(ctx, "")
	if err != nil {
		return nil, err
	}
	pending, err := s.repo.CountByStatus(ctx, model.StatusPending)
	if err != nil {
		return nil, err
	}
	considered, err := s.repo.CountByStatus(ctx, model.StatusConsidered)
	if err != nil {
		return nil, err
	}
	denied, err := s.repo.CountByStatus(ctx, model.StatusDenied)
	if err != nil {
		return nil, err
	}

	return &model.Stats{
		Total:      total,
		Pending:    pending,
		Considered: considered,
		Denied:     denied,
	}, nil
}
