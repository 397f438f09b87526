package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gamedeck/gamedeck/internal/core/domain"
	"github.com/gamedeck/gamedeck/internal/core/ports"
)

// GameService implements catalog use cases over the game repository.
type GameService struct {
	repo     ports.GameRepository
	activity ports.ActivityPublisher
	logger   zerolog.Logger
}

func NewGameService(repo ports.GameRepository, activity ports.ActivityPublisher, logger zerolog.Logger) *GameService {
	return &GameService{repo: repo, activity: activity, logger: logger}
}

func (s *GameService) List(ctx context.Context) ([]domain.Game, error) {
	return s.repo.List(ctx)
}

func (s *GameService) Get(ctx context.Context, id int) (*domain.Game, error) {
	return s.repo.Get(ctx, id)
}

func (s *GameService) Create(ctx context.Context, input ports.CreateGameInput) (*domain.Game, error) {
	game, err := s.repo.Create(ctx, input)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create game")
		return nil, err
	}
	s.logger.Info().Int("game_id", game.ID).Str("title", game.Title).Msg("game created")
	s.publish(domain.ActivityGameCreated, game.ID, game.Title)
	return game, nil
}

func (s *GameService) Update(ctx context.Context, id int, patch ports.GamePatch) (*domain.Game, error) {
	game, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("game_id", game.ID).Msg("game updated")
	s.publish(domain.ActivityGameUpdated, game.ID, game.Title)
	return game, nil
}

func (s *GameService) ToggleFavorite(ctx context.Context, id int) (*domain.Game, error) {
	game, err := s.repo.ToggleFavorite(ctx, id)
	if err != nil {
		return nil, err
	}
	activity := domain.ActivityGameUnfavorited
	if game.IsFavorite {
		activity = domain.ActivityGameFavorited
	}
	s.logger.Debug().Int("game_id", game.ID).Bool("favorite", game.IsFavorite).Msg("favorite toggled")
	s.publish(activity, game.ID, game.Title)
	return game, nil
}

func (s *GameService) ToggleInstalled(ctx context.Context, id int) (*domain.Game, error) {
	game, err := s.repo.ToggleInstalled(ctx, id)
	if err != nil {
		return nil, err
	}
	activity := domain.ActivityGameUninstalled
	if game.IsInstalled {
		activity = domain.ActivityGameInstalled
	}
	s.logger.Debug().Int("game_id", game.ID).Bool("installed", game.IsInstalled).Msg("installed toggled")
	s.publish(activity, game.ID, game.Title)
	return game, nil
}

func (s *GameService) publish(t domain.ActivityType, id int, detail string) {
	if s.activity == nil {
		return
	}
	s.activity.Publish(domain.ActivityEvent{
		Type:       t,
		Entity:     "game",
		EntityID:   id,
		Detail:     detail,
		OccurredAt: time.Now().UTC(),
	})
}
