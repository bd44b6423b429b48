package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/venuelink/venue-services/internal/core/domain"
	"github.com/venuelink/venue-services/internal/core/ports"
	"github.com/venuelink/venue-services/internal/pkg/token"
)

// memUserRepo is an in-memory ports.AuthRepository for service tests.
type memUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	cp := *user
	r.byID[cp.ID] = &cp
	r.byEmail[cp.Email] = &cp
	return &cp, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *user
	r.byID[cp.ID] = &cp
	r.byEmail[cp.Email] = &cp
	return nil
}

func newAuthServiceForTest(repo ports.AuthRepository) *AuthService {
	codec := token.NewCodec("test-secret", "venue-services-test")
	return NewAuthService(repo, codec, 30*time.Minute, 7*24*time.Hour, zerolog.Nop())
}

func registerTestUser(t *testing.T, svc *AuthService, email, pass string) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    email,
		Password: pass,
		FullName: "Test User",
		Role:     domain.RoleCustomer,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return user
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthServiceForTest(repo)

	registered := registerTestUser(t, svc, "ana@example.com", "str0ngpass")
	if registered.PasswordHash == "str0ngpass" {
		t.Fatal("password stored in plaintext")
	}
	if registered.Role != domain.RoleCustomer {
		t.Fatalf("expected customer role, got %q", registered.Role)
	}

	pair, user, err := svc.Login(context.Background(), "ana@example.com", "str0ngpass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens in the pair")
	}
	if user.LastLoginAt == nil {
		t.Fatal("expected last login timestamp to be recorded")
	}

	stored, _ := repo.FindByID(context.Background(), registered.ID)
	if stored.LastLoginAt == nil {
		t.Fatal("last login not persisted")
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthServiceForTest(repo)

	registerTestUser(t, svc, "dup@example.com", "str0ngpass")
	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "dup@example.com",
		Password: "otherpass1",
		FullName: "Other",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthServiceForTest(repo)
	registerTestUser(t, svc, "ana@example.com", "str0ngpass")

	// Unknown account and wrong password must fail identically so login
	// cannot be used to probe which emails exist.
	_, _, errUnknown := svc.Login(context.Background(), "ghost@example.com", "whatever1")
	_, _, errWrongPass := svc.Login(context.Background(), "ana@example.com", "wrongpass")

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
}

func TestAuthService_LoginInactiveAccount(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthServiceForTest(repo)
	user := registerTestUser(t, svc, "ana@example.com", "str0ngpass")

	if _, err := svc.SetActive(context.Background(), user.ID, false); err != nil {
		t.Fatalf("set inactive: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "ana@example.com", "str0ngpass")
	if !errors.Is(err, domain.ErrUserInactive) {
		t.Fatalf("expected ErrUserInactive, got %v", err)
	}
}

func TestAuthService_Refresh(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthServiceForTest(repo)
	registerTestUser(t, svc, "ana@example.com", "str0ngpass")

	pair, _, err := svc.Login(context.Background(), "ana@example.com", "str0ngpass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	fresh, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if fresh.AccessToken == "" || fresh.RefreshToken == "" {
		t.Fatal("expected a full pair from refresh")
	}
}

func TestAuthService_RefreshRejectsAccessToken(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthServiceForTest(repo)
	registerTestUser(t, svc, "ana@example.com", "str0ngpass")

	pair, _, err := svc.Login(context.Background(), "ana@example.com", "str0ngpass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	_, err = svc.Refresh(context.Background(), pair.AccessToken)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for access token, got %v", err)
	}
}

func TestAuthService_RefreshAfterDeactivation(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthServiceForTest(repo)
	user := registerTestUser(t, svc, "ana@example.com", "str0ngpass")

	pair, _, err := svc.Login(context.Background(), "ana@example.com", "str0ngpass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := svc.SetActive(context.Background(), user.ID, false); err != nil {
		t.Fatalf("set inactive: %v", err)
	}

	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	if !errors.Is(err, domain.ErrUserInactive) {
		t.Fatalf("expected ErrUserInactive, got %v", err)
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	repo := newMemUserRepo()
	svc := newAuthServiceForTest(repo)
	user := registerTestUser(t, svc, "ana@example.com", "str0ngpass")

	name := "Ana Lima"
	phone := "+55 11 99999-0000"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, ports.UpdateProfileInput{
		FullName: &name,
		Phone:    &phone,
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.FullName != name {
		t.Fatalf("expected name %q, got %q", name, updated.FullName)
	}
	if updated.Phone == nil || *updated.Phone != phone {
		t.Fatal("phone not updated")
	}
	if updated.PhoneVerified {
		t.Fatal("changing phone must reset phone verification")
	}
}
