package memory

import (
	"context"
	"sync"
	"time"

	"github.com/gamedeck/gamedeck/internal/core/domain"
	"github.com/gamedeck/gamedeck/internal/core/ports"
)

// LayoutRepository holds persisted layouts in memory and enforces the
// single-active-layout invariant. Every path that can leave the target
// active (create, update, explicit activation) deactivates all other active
// layouts inside the same locked sequence, so no reader ever observes two
// active records.
type LayoutRepository struct {
	mu      sync.RWMutex
	layouts *collection[domain.Layout]
}

func NewLayoutRepository() *LayoutRepository {
	return &LayoutRepository{layouts: newCollection[domain.Layout]()}
}

func (r *LayoutRepository) List(_ context.Context) ([]domain.Layout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.layouts.list(), nil
}

func (r *LayoutRepository) Get(_ context.Context, id int) (*domain.Layout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	layout, ok := r.layouts.get(id)
	if !ok {
		return nil, domain.ErrLayoutNotFound
	}
	return &layout, nil
}

func (r *LayoutRepository) GetActive(_ context.Context) (*domain.Layout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, layout := range r.layouts.list() {
		if layout.IsActive {
			return &layout, nil
		}
	}
	return nil, domain.ErrNoActiveLayout
}

func (r *LayoutRepository) Create(_ context.Context, input ports.CreateLayoutInput) (*domain.Layout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	layout := r.layouts.insert(func(id int, createdAt time.Time) domain.Layout {
		return domain.Layout{
			ID:         id,
			Name:       input.Name,
			Components: input.Components,
			IsActive:   input.IsActive,
			CreatedAt:  createdAt,
		}
	})
	if layout.IsActive {
		r.deactivateOthers(layout.ID)
	}
	return &layout, nil
}

func (r *LayoutRepository) Update(_ context.Context, id int, patch ports.LayoutPatch) (*domain.Layout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	layout, ok := r.layouts.get(id)
	if !ok {
		return nil, domain.ErrLayoutNotFound
	}
	if patch.Name != nil {
		layout.Name = *patch.Name
	}
	if patch.Components != nil {
		// Wholesale replacement; the store never merges component lists.
		layout.Components = patch.Components
	}
	if patch.IsActive != nil {
		layout.IsActive = *patch.IsActive
	}
	r.layouts.put(id, layout)
	if layout.IsActive {
		r.deactivateOthers(id)
	}
	return &layout, nil
}

func (r *LayoutRepository) SetActive(_ context.Context, id int) (*domain.Layout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	layout, ok := r.layouts.get(id)
	if !ok {
		return nil, domain.ErrLayoutNotFound
	}
	r.deactivateOthers(id)
	layout.IsActive = true
	r.layouts.put(id, layout)
	return &layout, nil
}

func (r *LayoutRepository) Delete(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.layouts.remove(id), nil
}

// deactivateOthers clears the active flag on every layout except keep.
// Callers must hold the write lock.
func (r *LayoutRepository) deactivateOthers(keep int) {
	for _, other := range r.layouts.list() {
		if other.ID != keep && other.IsActive {
			other.IsActive = false
			r.layouts.put(other.ID, other)
		}
	}
}

func (r *LayoutRepository) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.layouts.size()
}
