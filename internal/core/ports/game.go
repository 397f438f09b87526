package ports

import (
	"context"

	"github.com/gamedeck/gamedeck/internal/core/domain"
)

// CreateGameInput carries all data needed to add a catalog entry.
type CreateGameInput struct {
	Title       string
	Description string
	Category    string
	CoverImage  string
	Rating      int
	IsInstalled bool
	IsFavorite  bool
	PlayMode    string
}

// GamePatch is a partial update. Nil fields are left untouched; the
// identifier and creation timestamp can never be patched.
type GamePatch struct {
	Title       *string
	Description *string
	Category    *string
	CoverImage  *string
	Rating      *int
	IsInstalled *bool
	IsFavorite  *bool
	PlayMode    *string
}

// GameRepository defines persistence operations for catalog games.
// Lookups on a missing identifier return domain.ErrGameNotFound.
type GameRepository interface {
	List(ctx context.Context) ([]domain.Game, error)
	Get(ctx context.Context, id int) (*domain.Game, error)
	Create(ctx context.Context, input CreateGameInput) (*domain.Game, error)
	Update(ctx context.Context, id int, patch GamePatch) (*domain.Game, error)
	ToggleFavorite(ctx context.Context, id int) (*domain.Game, error)
	ToggleInstalled(ctx context.Context, id int) (*domain.Game, error)
}

// GameService defines use-case operations for the game catalog.
type GameService interface {
	List(ctx context.Context) ([]domain.Game, error)
	Get(ctx context.Context, id int) (*domain.Game, error)
	Create(ctx context.Context, input CreateGameInput) (*domain.Game, error)
	Update(ctx context.Context, id int, patch GamePatch) (*domain.Game, error)
	ToggleFavorite(ctx context.Context, id int) (*domain.Game, error)
	ToggleInstalled(ctx context.Context, id int) (*domain.Game, error)
}
