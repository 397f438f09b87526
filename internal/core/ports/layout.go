package ports

import (
	"context"

	"github.com/gamedeck/gamedeck/internal/core/domain"
)

// CreateLayoutInput carries all data needed to persist a layout. Components
// is stored opaquely as the full ordered list built by the editing session.
type CreateLayoutInput struct {
	Name       string
	Components []domain.BuilderComponent
	IsActive   bool
}

// LayoutPatch is a partial update; nil fields are left untouched. A non-nil
// Components always replaces the stored list wholesale.
type LayoutPatch struct {
	Name       *string
	Components []domain.BuilderComponent
	IsActive   *bool
}

// LayoutRepository defines persistence operations for layouts. Create,
// Update and SetActive all uphold the single-active-layout invariant: when
// the target ends up active, every other active layout is deactivated in the
// same guarded sequence. GetActive returns domain.ErrNoActiveLayout when no
// layout is active.
type LayoutRepository interface {
	List(ctx context.Context) ([]domain.Layout, error)
	Get(ctx context.Context, id int) (*domain.Layout, error)
	GetActive(ctx context.Context) (*domain.Layout, error)
	Create(ctx context.Context, input CreateLayoutInput) (*domain.Layout, error)
	Update(ctx context.Context, id int, patch LayoutPatch) (*domain.Layout, error)
	SetActive(ctx context.Context, id int) (*domain.Layout, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// LayoutService defines use-case operations for page layouts.
type LayoutService interface {
	List(ctx context.Context) ([]domain.Layout, error)
	Get(ctx context.Context, id int) (*domain.Layout, error)
	GetActive(ctx context.Context) (*domain.Layout, error)
	Create(ctx context.Context, input CreateLayoutInput) (*domain.Layout, error)
	Update(ctx context.Context, id int, patch LayoutPatch) (*domain.Layout, error)
	SetActive(ctx context.Context, id int) (*domain.Layout, error)
	Delete(ctx context.Context, id int) error
}
