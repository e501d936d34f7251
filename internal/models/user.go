package models

import (
	"time"

	"trinh-cafe/internal/apperr"
)

// Roles recognized by the authorization middleware
const (
	RoleAdmin    = "admin"
	RoleStaff    = "staff"
	RoleCustomer = "customer"
)

// User is a registered account
type User struct {
	ID           int       `json:"id"`
	FullName     string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"-"`
}

// RegisterRequest is the registration payload
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the registration payload
func (req *RegisterRequest) Validate() error {
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return newArgErr("full_name, email and password are required")
	}
	if len(req.Password) < 6 {
		return newArgErr("password must be at least 6 characters")
	}
	return nil
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a signed token and the public user view
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func newArgErr(message string) error {
	return apperr.New(apperr.KindInvalidArgument, message)
}
