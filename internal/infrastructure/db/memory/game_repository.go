package memory

import (
	"context"
	"sync"
	"time"

	"github.com/gamedeck/gamedeck/internal/core/domain"
	"github.com/gamedeck/gamedeck/internal/core/ports"
)

// GameRepository holds the game catalog in memory.
type GameRepository struct {
	mu    sync.RWMutex
	games *collection[domain.Game]
}

func NewGameRepository() *GameRepository {
	return &GameRepository{games: newCollection[domain.Game]()}
}

func (r *GameRepository) List(_ context.Context) ([]domain.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.games.list(), nil
}

func (r *GameRepository) Get(_ context.Context, id int) (*domain.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	game, ok := r.games.get(id)
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	return &game, nil
}

func (r *GameRepository) Create(_ context.Context, input ports.CreateGameInput) (*domain.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	game := r.games.insert(func(id int, createdAt time.Time) domain.Game {
		return domain.Game{
			ID:          id,
			Title:       input.Title,
			Description: input.Description,
			Category:    input.Category,
			CoverImage:  input.CoverImage,
			Rating:      input.Rating,
			IsInstalled: input.IsInstalled,
			IsFavorite:  input.IsFavorite,
			PlayMode:    input.PlayMode,
			CreatedAt:   createdAt,
		}
	})
	return &game, nil
}

func (r *GameRepository) Update(_ context.Context, id int, patch ports.GamePatch) (*domain.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	game, ok := r.games.get(id)
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	if patch.Title != nil {
		game.Title = *patch.Title
	}
	if patch.Description != nil {
		game.Description = *patch.Description
	}
	if patch.Category != nil {
		game.Category = *patch.Category
	}
	if patch.CoverImage != nil {
		game.CoverImage = *patch.CoverImage
	}
	if patch.Rating != nil {
		game.Rating = *patch.Rating
	}
	if patch.IsInstalled != nil {
		game.IsInstalled = *patch.IsInstalled
	}
	if patch.IsFavorite != nil {
		game.IsFavorite = *patch.IsFavorite
	}
	if patch.PlayMode != nil {
		game.PlayMode = *patch.PlayMode
	}
	r.games.put(id, game)
	return &game, nil
}

func (r *GameRepository) ToggleFavorite(_ context.Context, id int) (*domain.Game, error) {
	return r.toggle(id, func(g *domain.Game) { g.IsFavorite = !g.IsFavorite })
}

func (r *GameRepository) ToggleInstalled(_ context.Context, id int) (*domain.Game, error) {
	return r.toggle(id, func(g *domain.Game) { g.IsInstalled = !g.IsInstalled })
}

// toggle flips one flag under the write lock so concurrent toggles on the
// same game cannot lose updates.
func (r *GameRepository) toggle(id int, flip func(*domain.Game)) (*domain.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	game, ok := r.games.get(id)
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	flip(&game)
	r.games.put(id, game)
	return &game, nil
}

func (r *GameRepository) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.games.size()
}
