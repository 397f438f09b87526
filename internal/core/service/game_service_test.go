package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gamedeck/gamedeck/internal/core/domain"
	"github.com/gamedeck/gamedeck/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubGameRepo struct {
	games  map[int]*domain.Game
	nextID int
}

func newStubGameRepo() *stubGameRepo {
	return &stubGameRepo{games: make(map[int]*domain.Game), nextID: 1}
}

func (r *stubGameRepo) List(_ context.Context) ([]domain.Game, error) {
	out := make([]domain.Game, 0, len(r.games))
	for i := 1; i < r.nextID; i++ {
		if g, ok := r.games[i]; ok {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (r *stubGameRepo) Get(_ context.Context, id int) (*domain.Game, error) {
	g, ok := r.games[id]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	clone := *g
	return &clone, nil
}

func (r *stubGameRepo) Create(_ context.Context, input ports.CreateGameInput) (*domain.Game, error) {
	g := &domain.Game{ID: r.nextID, Title: input.Title, Rating: input.Rating, IsFavorite: input.IsFavorite, IsInstalled: input.IsInstalled}
	r.games[r.nextID] = g
	r.nextID++
	clone := *g
	return &clone, nil
}

func (r *stubGameRepo) Update(_ context.Context, id int, patch ports.GamePatch) (*domain.Game, error) {
	g, ok := r.games[id]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	if patch.Title != nil {
		g.Title = *patch.Title
	}
	if patch.Rating != nil {
		g.Rating = *patch.Rating
	}
	clone := *g
	return &clone, nil
}

func (r *stubGameRepo) ToggleFavorite(_ context.Context, id int) (*domain.Game, error) {
	g, ok := r.games[id]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	g.IsFavorite = !g.IsFavorite
	clone := *g
	return &clone, nil
}

func (r *stubGameRepo) ToggleInstalled(_ context.Context, id int) (*domain.Game, error) {
	g, ok := r.games[id]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	g.IsInstalled = !g.IsInstalled
	clone := *g
	return &clone, nil
}

// capturePublisher records published events synchronously.
type capturePublisher struct {
	events []domain.ActivityEvent
}

func (p *capturePublisher) Publish(event domain.ActivityEvent) {
	p.events = append(p.events, event)
}

func (p *capturePublisher) last(t *testing.T) domain.ActivityEvent {
	t.Helper()
	if len(p.events) == 0 {
		t.Fatal("expected a published activity event")
	}
	return p.events[len(p.events)-1]
}

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestGameService_Create_PublishesActivity(t *testing.T) {
	repo := newStubGameRepo()
	pub := &capturePublisher{}
	svc := NewGameService(repo, pub, discardLogger)

	game, err := svc.Create(context.Background(), ports.CreateGameInput{Title: "Halcyon"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if game.ID != 1 {
		t.Fatalf("expected id 1, got %d", game.ID)
	}

	event := pub.last(t)
	if event.Type != domain.ActivityGameCreated || event.EntityID != 1 || event.Detail != "Halcyon" {
		t.Fatalf("unexpected event: %+v", event)
	}
}

func TestGameService_ToggleFavorite_EventMatchesState(t *testing.T) {
	repo := newStubGameRepo()
	pub := &capturePublisher{}
	svc := NewGameService(repo, pub, discardLogger)
	created, _ := svc.Create(context.Background(), ports.CreateGameInput{Title: "x"})

	game, err := svc.ToggleFavorite(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !game.IsFavorite {
		t.Fatal("expected favorite set")
	}
	if pub.last(t).Type != domain.ActivityGameFavorited {
		t.Fatalf("expected favorited event, got %s", pub.last(t).Type)
	}

	game, _ = svc.ToggleFavorite(context.Background(), created.ID)
	if game.IsFavorite {
		t.Fatal("expected favorite cleared")
	}
	if pub.last(t).Type != domain.ActivityGameUnfavorited {
		t.Fatalf("expected unfavorited event, got %s", pub.last(t).Type)
	}
}

func TestGameService_Toggle_NotFoundPublishesNothing(t *testing.T) {
	pub := &capturePublisher{}
	svc := NewGameService(newStubGameRepo(), pub, discardLogger)

	if _, err := svc.ToggleInstalled(context.Background(), 9999); err != domain.ErrGameNotFound {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
	if len(pub.events) != 0 {
		t.Fatal("failed toggle must not publish activity")
	}
}

func TestGameService_NilPublisherIsSafe(t *testing.T) {
	svc := NewGameService(newStubGameRepo(), nil, discardLogger)
	if _, err := svc.Create(context.Background(), ports.CreateGameInput{Title: "quiet"}); err != nil {
		t.Fatalf("create without publisher: %v", err)
	}
}
