package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/gamedeck/gamedeck/internal/core/domain"
	"github.com/gamedeck/gamedeck/internal/core/ports"
)

type stubUserRepo struct {
	byName map[string]*domain.User
	byID   map[int]*domain.User
}

func newStubUserRepo(t *testing.T, username, password string, admin bool) *stubUserRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &domain.User{ID: 1, Username: username, Password: string(hash), IsAdmin: admin, Status: domain.StatusOnline}
	return &stubUserRepo{
		byName: map[string]*domain.User{username: user},
		byID:   map[int]*domain.User{1: user},
	}
}

func (r *stubUserRepo) Get(_ context.Context, id int) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.byName[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Create(_ context.Context, _ ports.CreateUserInput) (*domain.User, error) {
	panic("not used")
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo(t, "admin", "secret", true)
	svc := NewAuthService(repo, "test-secret", 0)

	token, user, err := svc.Login(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Username != "admin" || !user.IsAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["username"] != "admin" || claims["is_admin"] != true {
		t.Fatalf("unexpected claims: %v", claims)
	}
	if sub, ok := claims["sub"].(float64); !ok || int(sub) != 1 {
		t.Fatalf("unexpected subject: %v", claims["sub"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo(t, "admin", "secret", true)
	svc := NewAuthService(repo, "test-secret", 0)

	if _, _, err := svc.Login(context.Background(), "admin", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserHidesExistence(t *testing.T) {
	repo := newStubUserRepo(t, "admin", "secret", true)
	svc := NewAuthService(repo, "test-secret", 0)

	// Unknown accounts fail with the same error as bad passwords.
	if _, _, err := svc.Login(context.Background(), "ghost", "whatever"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
