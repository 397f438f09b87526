package service

import (
	"context"
	"testing"

	"github.com/gamedeck/gamedeck/internal/core/domain"
	"github.com/gamedeck/gamedeck/internal/core/ports"
)

// stubLayoutRepo mirrors the memory repository's invariant handling closely
// enough for service-level behavior.
type stubLayoutRepo struct {
	layouts map[int]*domain.Layout
	nextID  int
	deleted []int
}

func newStubLayoutRepo() *stubLayoutRepo {
	return &stubLayoutRepo{layouts: make(map[int]*domain.Layout), nextID: 1}
}

func (r *stubLayoutRepo) List(_ context.Context) ([]domain.Layout, error) {
	out := make([]domain.Layout, 0, len(r.layouts))
	for i := 1; i < r.nextID; i++ {
		if l, ok := r.layouts[i]; ok {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *stubLayoutRepo) Get(_ context.Context, id int) (*domain.Layout, error) {
	l, ok := r.layouts[id]
	if !ok {
		return nil, domain.ErrLayoutNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *stubLayoutRepo) GetActive(_ context.Context) (*domain.Layout, error) {
	for _, l := range r.layouts {
		if l.IsActive {
			clone := *l
			return &clone, nil
		}
	}
	return nil, domain.ErrNoActiveLayout
}

func (r *stubLayoutRepo) Create(_ context.Context, input ports.CreateLayoutInput) (*domain.Layout, error) {
	l := &domain.Layout{ID: r.nextID, Name: input.Name, Components: input.Components, IsActive: input.IsActive}
	r.layouts[r.nextID] = l
	r.nextID++
	if l.IsActive {
		r.deactivateOthers(l.ID)
	}
	clone := *l
	return &clone, nil
}

func (r *stubLayoutRepo) Update(_ context.Context, id int, patch ports.LayoutPatch) (*domain.Layout, error) {
	l, ok := r.layouts[id]
	if !ok {
		return nil, domain.ErrLayoutNotFound
	}
	if patch.Name != nil {
		l.Name = *patch.Name
	}
	if patch.Components != nil {
		l.Components = patch.Components
	}
	if patch.IsActive != nil {
		l.IsActive = *patch.IsActive
	}
	if l.IsActive {
		r.deactivateOthers(id)
	}
	clone := *l
	return &clone, nil
}

func (r *stubLayoutRepo) SetActive(_ context.Context, id int) (*domain.Layout, error) {
	l, ok := r.layouts[id]
	if !ok {
		return nil, domain.ErrLayoutNotFound
	}
	r.deactivateOthers(id)
	l.IsActive = true
	clone := *l
	return &clone, nil
}

func (r *stubLayoutRepo) Delete(_ context.Context, id int) (bool, error) {
	if _, ok := r.layouts[id]; !ok {
		return false, nil
	}
	delete(r.layouts, id)
	r.deleted = append(r.deleted, id)
	return true, nil
}

func (r *stubLayoutRepo) deactivateOthers(keep int) {
	for id, l := range r.layouts {
		if id != keep {
			l.IsActive = false
		}
	}
}

func TestLayoutService_SetActive_PublishesActivation(t *testing.T) {
	repo := newStubLayoutRepo()
	pub := &capturePublisher{}
	svc := NewLayoutService(repo, pub, discardLogger)
	created, _ := svc.Create(context.Background(), ports.CreateLayoutInput{Name: "home"})

	layout, err := svc.SetActive(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("set active: %v", err)
	}
	if !layout.IsActive {
		t.Fatal("expected active layout")
	}
	if pub.last(t).Type != domain.ActivityLayoutActivated {
		t.Fatalf("expected activation event, got %s", pub.last(t).Type)
	}
}

func TestLayoutService_CreateActive_PublishesSaveAndActivation(t *testing.T) {
	repo := newStubLayoutRepo()
	pub := &capturePublisher{}
	svc := NewLayoutService(repo, pub, discardLogger)

	if _, err := svc.Create(context.Background(), ports.CreateLayoutInput{Name: "home", IsActive: true}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(pub.events) != 2 {
		t.Fatalf("expected save + activation events, got %d", len(pub.events))
	}
	if pub.events[0].Type != domain.ActivityLayoutSaved || pub.events[1].Type != domain.ActivityLayoutActivated {
		t.Fatalf("unexpected events: %+v", pub.events)
	}
}

func TestLayoutService_Delete_MissingMapsToNotFound(t *testing.T) {
	svc := NewLayoutService(newStubLayoutRepo(), &capturePublisher{}, discardLogger)
	if err := svc.Delete(context.Background(), 9999); err != domain.ErrLayoutNotFound {
		t.Fatalf("expected ErrLayoutNotFound, got %v", err)
	}
}

func TestLayoutService_Update_InactivePatchPublishesSaveOnly(t *testing.T) {
	repo := newStubLayoutRepo()
	pub := &capturePublisher{}
	svc := NewLayoutService(repo, pub, discardLogger)
	created, _ := svc.Create(context.Background(), ports.CreateLayoutInput{Name: "a"})
	pub.events = nil

	name := "renamed"
	if _, err := svc.Update(context.Background(), created.ID, ports.LayoutPatch{Name: &name}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(pub.events) != 1 || pub.events[0].Type != domain.ActivityLayoutSaved {
		t.Fatalf("expected a single save event, got %+v", pub.events)
	}
}
