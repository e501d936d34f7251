package user

import (
	"encoding/json"
	"net/http"

	"trinh-cafe/internal/logger"
	"trinh-cafe/internal/models"
	"trinh-cafe/internal/web"
)

// Handler exposes the auth endpoints.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates an auth handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Register registers the auth routes.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/register", h.RegisterUser)
	mux.HandleFunc("POST /api/auth/login", h.Login)
}

// RegisterUser handles POST /api/auth/register requests.
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteBadRequest(w, "Invalid JSON format")
		return
	}

	resp, err := h.service.Register(r.Context(), &req, requestID)
	if err != nil {
		h.logger.Error("register_failed", "Failed to register user", requestID, err,
			map[string]interface{}{"email": req.Email})
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusCreated, resp)
}

// Login handles POST /api/auth/login requests.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteBadRequest(w, "Invalid JSON format")
		return
	}

	resp, err := h.service.Login(r.Context(), &req, requestID)
	if err != nil {
		h.logger.Error("login_failed", "Failed to log in", requestID, err,
			map[string]interface{}{"email": req.Email})
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, resp)
}
