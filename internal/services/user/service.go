// Package user handles account registration and login.
package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"trinh-cafe/internal/apperr"
	"trinh-cafe/internal/auth"
	"trinh-cafe/internal/logger"
	"trinh-cafe/internal/models"
)

// Store is the persistence surface the user service needs.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Service registers accounts and authenticates logins.
type Service struct {
	store  Store
	auth   *auth.Auth
	logger *logger.Logger
}

// NewService creates a user service.
func NewService(store Store, a *auth.Auth, log *logger.Logger) *Service {
	return &Service{store: store, auth: a, logger: log}
}

// Register creates a new customer account and signs it in.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest, requestID string) (*models.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to hash password", err)
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user_registered", "User registered", requestID, map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})

	return s.issue(user)
}

// Login authenticates by email and password.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest, requestID string) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "email and password are required")
	}

	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.New(apperr.KindUnauthorized, "Invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.New(apperr.KindUnauthorized, "Invalid credentials")
	}

	s.logger.Info("user_logged_in", "User logged in", requestID, map[string]interface{}{
		"user_id": user.ID,
	})

	return s.issue(user)
}

func (s *Service) issue(user *models.User) (*models.AuthResponse, error) {
	token, err := s.auth.IssueToken(*user)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to sign token", err)
	}
	return &models.AuthResponse{Token: token, User: *user}, nil
}
