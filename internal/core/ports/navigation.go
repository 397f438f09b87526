package ports

import (
	"context"

	"github.com/gamedeck/gamedeck/internal/core/domain"
)

// CreateNavigationItemInput carries all data needed to add a menu entry.
type CreateNavigationItemInput struct {
	Label       string
	Path        string
	Icon        string
	IsAdminOnly bool
	SortOrder   int
	ParentID    *int
}

// NavigationItemPatch is a partial update; nil fields are left untouched.
// ParentID uses a double pointer so "set to null" and "leave alone" stay
// distinguishable.
type NavigationItemPatch struct {
	Label       *string
	Path        *string
	Icon        *string
	IsAdminOnly *bool
	SortOrder   *int
	ParentID    **int
}

// NavigationRepository defines persistence operations for menu entries.
// List returns items re-sorted ascending by sort order on every read.
type NavigationRepository interface {
	List(ctx context.Context) ([]domain.NavigationItem, error)
	Get(ctx context.Context, id int) (*domain.NavigationItem, error)
	Create(ctx context.Context, input CreateNavigationItemInput) (*domain.NavigationItem, error)
	Update(ctx context.Context, id int, patch NavigationItemPatch) (*domain.NavigationItem, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// NavigationService defines use-case operations for the navigation menu.
type NavigationService interface {
	List(ctx context.Context) ([]domain.NavigationItem, error)
	Get(ctx context.Context, id int) (*domain.NavigationItem, error)
	Create(ctx context.Context, input CreateNavigationItemInput) (*domain.NavigationItem, error)
	Update(ctx context.Context, id int, patch NavigationItemPatch) (*domain.NavigationItem, error)
	Delete(ctx context.Context, id int) error
}
