package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gamedeck/gamedeck/internal/core/domain"
	"github.com/gamedeck/gamedeck/internal/core/ports"
)

// NavigationService implements menu management over the navigation repository.
type NavigationService struct {
	repo     ports.NavigationRepository
	activity ports.ActivityPublisher
	logger   zerolog.Logger
}

func NewNavigationService(repo ports.NavigationRepository, activity ports.ActivityPublisher, logger zerolog.Logger) *NavigationService {
	return &NavigationService{repo: repo, activity: activity, logger: logger}
}

func (s *NavigationService) List(ctx context.Context) ([]domain.NavigationItem, error) {
	return s.repo.List(ctx)
}

func (s *NavigationService) Get(ctx context.Context, id int) (*domain.NavigationItem, error) {
	return s.repo.Get(ctx, id)
}

func (s *NavigationService) Create(ctx context.Context, input ports.CreateNavigationItemInput) (*domain.NavigationItem, error) {
	item, err := s.repo.Create(ctx, input)
	if err != nil {
		s.logger.Error().Err(err).Str("label", input.Label).Msg("failed to create navigation item")
		return nil, err
	}
	s.logger.Info().Int("nav_id", item.ID).Str("label", item.Label).Msg("navigation item created")
	s.publish(domain.ActivityNavigationSaved, item.ID, item.Label)
	return item, nil
}

func (s *NavigationService) Update(ctx context.Context, id int, patch ports.NavigationItemPatch) (*domain.NavigationItem, error) {
	item, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("nav_id", item.ID).Msg("navigation item updated")
	s.publish(domain.ActivityNavigationSaved, item.ID, item.Label)
	return item, nil
}

func (s *NavigationService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNavigationItemNotFound
	}
	s.logger.Info().Int("nav_id", id).Msg("navigation item deleted")
	s.publish(domain.ActivityNavigationRemoved, id, "")
	return nil
}

func (s *NavigationService) publish(t domain.ActivityType, id int, detail string) {
	if s.activity == nil {
		return
	}
	s.activity.Publish(domain.ActivityEvent{
		Type:       t,
		Entity:     "navigation",
		EntityID:   id,
		Detail:     detail,
		OccurredAt: time.Now().UTC(),
	})
}
