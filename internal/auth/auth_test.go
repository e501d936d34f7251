package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trinh-cafe/internal/config"
	"trinh-cafe/internal/models"
)

func newTestAuth() *Auth {
	return New(config.AuthConfig{JWTSecret: "test-secret", TokenTTL: config.Duration(time.Hour)})
}

func TestTokenRoundTrip(t *testing.T) {
	a := newTestAuth()
	user := models.User{ID: 7, FullName: "Linh Tran", Email: "linh@example.com", Role: models.RoleAdmin}

	token, err := a.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken() unexpected error: %v", err)
	}

	claims, err := a.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() unexpected error: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "linh@example.com" || claims.Role != models.RoleAdmin {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	a := newTestAuth()
	other := New(config.AuthConfig{JWTSecret: "different-secret", TokenTTL: config.Duration(time.Hour)})

	token, err := other.IssueToken(models.User{ID: 1, Role: models.RoleStaff})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.ParseToken(token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	a := New(config.AuthConfig{JWTSecret: "test-secret", TokenTTL: config.Duration(-time.Minute)})

	token, err := a.IssueToken(models.User{ID: 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.ParseToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestRequireMiddleware(t *testing.T) {
	a := newTestAuth()

	adminToken, err := a.IssueToken(models.User{ID: 1, Role: models.RoleAdmin})
	if err != nil {
		t.Fatal(err)
	}
	staffToken, err := a.IssueToken(models.User{ID: 2, Role: models.RoleStaff})
	if err != nil {
		t.Fatal(err)
	}

	var gotClaims *Claims
	handler := a.Require(models.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"wrong role", "Bearer " + staffToken, http.StatusForbidden},
		{"admin", "Bearer " + adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}

	if gotClaims == nil || gotClaims.UserID != 1 {
		t.Errorf("claims not attached to request context: %+v", gotClaims)
	}
}

func TestRequireAnyRole(t *testing.T) {
	a := newTestAuth()
	token, err := a.IssueToken(models.User{ID: 3, Role: models.RoleCustomer})
	if err != nil {
		t.Fatal(err)
	}

	handler := a.Require("")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
