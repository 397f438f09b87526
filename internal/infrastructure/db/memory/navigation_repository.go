package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gamedeck/gamedeck/internal/core/domain"
	"github.com/gamedeck/gamedeck/internal/core/ports"
)

// NavigationRepository holds the menu entries in memory.
type NavigationRepository struct {
	mu    sync.RWMutex
	items *collection[domain.NavigationItem]
}

func NewNavigationRepository() *NavigationRepository {
	return &NavigationRepository{items: newCollection[domain.NavigationItem]()}
}

// List returns all entries re-sorted ascending by sort order on every read.
// Ties keep insertion order; sort order is advisory and not unique.
func (r *NavigationRepository) List(_ context.Context) ([]domain.NavigationItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := r.items.list()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortOrder < items[j].SortOrder
	})
	return items, nil
}

func (r *NavigationRepository) Get(_ context.Context, id int) (*domain.NavigationItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items.get(id)
	if !ok {
		return nil, domain.ErrNavigationItemNotFound
	}
	return &item, nil
}

func (r *NavigationRepository) Create(_ context.Context, input ports.CreateNavigationItemInput) (*domain.NavigationItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item := r.items.insert(func(id int, createdAt time.Time) domain.NavigationItem {
		return domain.NavigationItem{
			ID:          id,
			Label:       input.Label,
			Path:        input.Path,
			Icon:        input.Icon,
			IsAdminOnly: input.IsAdminOnly,
			SortOrder:   input.SortOrder,
			ParentID:    input.ParentID,
			CreatedAt:   createdAt,
		}
	})
	return &item, nil
}

func (r *NavigationRepository) Update(_ context.Context, id int, patch ports.NavigationItemPatch) (*domain.NavigationItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items.get(id)
	if !ok {
		return nil, domain.ErrNavigationItemNotFound
	}
	if patch.Label != nil {
		item.Label = *patch.Label
	}
	if patch.Path != nil {
		item.Path = *patch.Path
	}
	if patch.Icon != nil {
		item.Icon = *patch.Icon
	}
	if patch.IsAdminOnly != nil {
		item.IsAdminOnly = *patch.IsAdminOnly
	}
	if patch.SortOrder != nil {
		item.SortOrder = *patch.SortOrder
	}
	if patch.ParentID != nil {
		item.ParentID = *patch.ParentID
	}
	r.items.put(id, item)
	return &item, nil
}

func (r *NavigationRepository) Delete(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items.remove(id), nil
}

func (r *NavigationRepository) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items.size()
}
