package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gamedeck/gamedeck/internal/core/domain"
	"github.com/gamedeck/gamedeck/internal/core/ports"
)

// LayoutService implements layout persistence use cases. The
// single-active-layout invariant itself lives in the repository, where it
// runs inside the store's guarded sequence; the service adds logging and
// activity reporting on top.
type LayoutService struct {
	repo     ports.LayoutRepository
	activity ports.ActivityPublisher
	logger   zerolog.Logger
}

func NewLayoutService(repo ports.LayoutRepository, activity ports.ActivityPublisher, logger zerolog.Logger) *LayoutService {
	return &LayoutService{repo: repo, activity: activity, logger: logger}
}

func (s *LayoutService) List(ctx context.Context) ([]domain.Layout, error) {
	return s.repo.List(ctx)
}

func (s *LayoutService) Get(ctx context.Context, id int) (*domain.Layout, error) {
	return s.repo.Get(ctx, id)
}

func (s *LayoutService) GetActive(ctx context.Context) (*domain.Layout, error) {
	return s.repo.GetActive(ctx)
}

func (s *LayoutService) Create(ctx context.Context, input ports.CreateLayoutInput) (*domain.Layout, error) {
	layout, err := s.repo.Create(ctx, input)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create layout")
		return nil, err
	}
	s.logger.Info().
		Int("layout_id", layout.ID).
		Str("name", layout.Name).
		Bool("active", layout.IsActive).
		Int("components", len(layout.Components)).
		Msg("layout created")
	s.publish(domain.ActivityLayoutSaved, layout.ID, layout.Name)
	if layout.IsActive {
		s.publish(domain.ActivityLayoutActivated, layout.ID, layout.Name)
	}
	return layout, nil
}

func (s *LayoutService) Update(ctx context.Context, id int, patch ports.LayoutPatch) (*domain.Layout, error) {
	layout, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("layout_id", layout.ID).Bool("active", layout.IsActive).Msg("layout updated")
	s.publish(domain.ActivityLayoutSaved, layout.ID, layout.Name)
	if patch.IsActive != nil && *patch.IsActive {
		s.publish(domain.ActivityLayoutActivated, layout.ID, layout.Name)
	}
	return layout, nil
}

func (s *LayoutService) SetActive(ctx context.Context, id int) (*domain.Layout, error) {
	layout, err := s.repo.SetActive(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("layout_id", layout.ID).Str("name", layout.Name).Msg("layout activated")
	s.publish(domain.ActivityLayoutActivated, layout.ID, layout.Name)
	return layout, nil
}

func (s *LayoutService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrLayoutNotFound
	}
	s.logger.Info().Int("layout_id", id).Msg("layout deleted")
	s.publish(domain.ActivityLayoutRemoved, id, "")
	return nil
}

func (s *LayoutService) publish(t domain.ActivityType, id int, detail string) {
	if s.activity == nil {
		return
	}
	s.activity.Publish(domain.ActivityEvent{
		Type:       t,
		Entity:     "layout",
		EntityID:   id,
		Detail:     detail,
		OccurredAt: time.Now().UTC(),
	})
}
