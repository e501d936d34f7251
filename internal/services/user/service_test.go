package user

import (
	"context"
	"testing"
	"time"

	"trinh-cafe/internal/apperr"
	"trinh-cafe/internal/auth"
	"trinh-cafe/internal/config"
	"trinh-cafe/internal/logger"
	"trinh-cafe/internal/models"
)

type fakeStore struct {
	byEmail map[string]*models.User
	nextID  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{byEmail: make(map[string]*models.User), nextID: 1}
}

func (s *fakeStore) CreateUser(ctx context.Context, user *models.User) error {
	if _, exists := s.byEmail[user.Email]; exists {
		return apperr.New(apperr.KindInvalidArgument, "Email already in use")
	}
	user.ID = s.nextID
	s.nextID++
	copied := *user
	s.byEmail[user.Email] = &copied
	return nil
}

func (s *fakeStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, apperr.Newf(apperr.KindNotFound, "user %s not found", email)
	}
	copied := *user
	return &copied, nil
}

func newTestService(t *testing.T) (*Service, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	a := auth.New(config.AuthConfig{JWTSecret: "test-secret", TokenTTL: config.Duration(time.Hour)})
	return NewService(store, a, logger.New("test")), store
}

func TestRegisterAndLogin(t *testing.T) {
	service, _ := newTestService(t)

	resp, err := service.Register(context.Background(), &models.RegisterRequest{
		FullName: "Linh Tran",
		Email:    "linh@example.com",
		Password: "secret123",
	}, "req-1")
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.User.Role != models.RoleCustomer {
		t.Errorf("role = %q, want customer", resp.User.Role)
	}
	if resp.User.PasswordHash == "secret123" {
		t.Error("password stored in plain text")
	}

	login, err := service.Login(context.Background(), &models.LoginRequest{
		Email:    "linh@example.com",
		Password: "secret123",
	}, "req-2")
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if login.User.ID != resp.User.ID {
		t.Errorf("login user id = %d, want %d", login.User.ID, resp.User.ID)
	}
}

func TestRegisterValidation(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"missing fields", models.RegisterRequest{Email: "a@b.c"}},
		{"short password", models.RegisterRequest{FullName: "A", Email: "a@b.c", Password: "12345"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), &tt.req, "req-1")
			if !apperr.IsKind(err, apperr.KindInvalidArgument) {
				t.Fatalf("expected invalid_argument, got %v", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _ := newTestService(t)

	req := &models.RegisterRequest{FullName: "A", Email: "dup@example.com", Password: "secret123"}
	if _, err := service.Register(context.Background(), req, "req-1"); err != nil {
		t.Fatalf("first Register() unexpected error: %v", err)
	}
	_, err := service.Register(context.Background(), req, "req-2")
	if !apperr.IsKind(err, apperr.KindInvalidArgument) {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	service, _ := newTestService(t)

	req := &models.RegisterRequest{FullName: "A", Email: "a@example.com", Password: "secret123"}
	if _, err := service.Register(context.Background(), req, "req-1"); err != nil {
		t.Fatal(err)
	}

	_, err := service.Login(context.Background(), &models.LoginRequest{
		Email:    "a@example.com",
		Password: "wrong-password",
	}, "req-2")
	if !apperr.IsKind(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	}, "req-1")
	if !apperr.IsKind(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
