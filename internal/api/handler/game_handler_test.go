package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gamedeck/gamedeck/internal/core/domain"
	"github.com/gamedeck/gamedeck/internal/core/ports"
)

type stubGameService struct {
	listFn            func(ctx context.Context) ([]domain.Game, error)
	getFn             func(ctx context.Context, id int) (*domain.Game, error)
	createFn          func(ctx context.Context, input ports.CreateGameInput) (*domain.Game, error)
	updateFn          func(ctx context.Context, id int, patch ports.GamePatch) (*domain.Game, error)
	toggleFavoriteFn  func(ctx context.Context, id int) (*domain.Game, error)
	toggleInstalledFn func(ctx context.Context, id int) (*domain.Game, error)
}

func (s *stubGameService) List(ctx context.Context) ([]domain.Game, error) {
	return s.listFn(ctx)
}

func (s *stubGameService) Get(ctx context.Context, id int) (*domain.Game, error) {
	return s.getFn(ctx, id)
}

func (s *stubGameService) Create(ctx context.Context, input ports.CreateGameInput) (*domain.Game, error) {
	return s.createFn(ctx, input)
}

func (s *stubGameService) Update(ctx context.Context, id int, patch ports.GamePatch) (*domain.Game, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubGameService) ToggleFavorite(ctx context.Context, id int) (*domain.Game, error) {
	return s.toggleFavoriteFn(ctx, id)
}

func (s *stubGameService) ToggleInstalled(ctx context.Context, id int) (*domain.Game, error) {
	return s.toggleInstalledFn(ctx, id)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestGameHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubGameService{
		createFn: func(ctx context.Context, input ports.CreateGameInput) (*domain.Game, error) {
			if input.Title != "Cyber Odyssey 2077" || input.Rating != 48 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Game{ID: 7, Title: input.Title, Category: input.Category, Rating: input.Rating}, nil
		},
	}
	handler := NewGameHandler(stub)

	body := strings.NewReader(`{
		"title": "Cyber Odyssey 2077",
		"description": "Futuristic open-world RPG",
		"category": "RPG",
		"coverImage": "https://example.com/cover.jpg",
		"rating": 48,
		"isInstalled": false,
		"isFavorite": false,
		"playMode": "Single Player"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/games", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(7) || resp["rating"] != float64(48) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestGameHandler_Create_MissingRating(t *testing.T) {
	e := newTestEcho()
	stub := &stubGameService{
		createFn: func(ctx context.Context, input ports.CreateGameInput) (*domain.Game, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewGameHandler(stub)

	body := strings.NewReader(`{
		"title": "No Rating",
		"description": "d",
		"category": "Action",
		"coverImage": "img",
		"isInstalled": false,
		"isFavorite": false,
		"playMode": "Single Player"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/games", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGameHandler_Create_FalseBooleansAccepted(t *testing.T) {
	e := newTestEcho()
	var captured ports.CreateGameInput
	stub := &stubGameService{
		createFn: func(ctx context.Context, input ports.CreateGameInput) (*domain.Game, error) {
			captured = input
			return &domain.Game{ID: 1, Title: input.Title}, nil
		},
	}
	handler := NewGameHandler(stub)

	body := strings.NewReader(`{
		"title": "t",
		"description": "d",
		"category": "c",
		"coverImage": "i",
		"rating": 0,
		"isInstalled": false,
		"isFavorite": false,
		"playMode": "Co-op"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/games", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Rating != 0 || captured.IsInstalled || captured.IsFavorite {
		t.Fatalf("zero values not preserved: %+v", captured)
	}
}

func TestGameHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubGameService{
		getFn: func(ctx context.Context, id int) (*domain.Game, error) {
			return nil, domain.ErrGameNotFound
		},
	}
	handler := NewGameHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/games/9999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9999")

	_ = handler.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGameHandler_Get_NonNumericID(t *testing.T) {
	e := newTestEcho()
	stub := &stubGameService{
		getFn: func(ctx context.Context, id int) (*domain.Game, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewGameHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/games/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	_ = handler.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGameHandler_Update_PartialPatch(t *testing.T) {
	e := newTestEcho()
	stub := &stubGameService{
		updateFn: func(ctx context.Context, id int, patch ports.GamePatch) (*domain.Game, error) {
			if id != 3 {
				t.Fatalf("unexpected id %d", id)
			}
			if patch.Title == nil || *patch.Title != "Renamed" {
				t.Fatalf("expected title patch, got %+v", patch)
			}
			if patch.Rating != nil || patch.IsFavorite != nil {
				t.Fatalf("expected untouched fields to stay nil: %+v", patch)
			}
			return &domain.Game{ID: 3, Title: "Renamed"}, nil
		},
	}
	handler := NewGameHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/api/games/3", strings.NewReader(`{"title":"Renamed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGameHandler_ToggleFavorite(t *testing.T) {
	e := newTestEcho()
	stub := &stubGameService{
		toggleFavoriteFn: func(ctx context.Context, id int) (*domain.Game, error) {
			return &domain.Game{ID: id, IsFavorite: true}, nil
		},
	}
	handler := NewGameHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/games/2/toggle-favorite", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2")

	if err := handler.ToggleFavorite(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["isFavorite"] != true {
		t.Fatalf("expected isFavorite true, got %v", resp["isFavorite"])
	}
}

func TestGameHandler_ToggleInstalled_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubGameService{
		toggleInstalledFn: func(ctx context.Context, id int) (*domain.Game, error) {
			return nil, domain.ErrGameNotFound
		},
	}
	handler := NewGameHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/games/9999/toggle-installed", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9999")

	_ = handler.ToggleInstalled(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGameHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubGameService{
		listFn: func(ctx context.Context) ([]domain.Game, error) {
			return []domain.Game{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}, nil
		},
	}
	handler := NewGameHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["title"] != "A" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
