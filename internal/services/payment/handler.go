package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"trinh-cafe/internal/apperr"
	"trinh-cafe/internal/logger"
	"trinh-cafe/internal/middleware"
	"trinh-cafe/internal/models"
	"trinh-cafe/internal/web"
)

const requestTimeout = 30 * time.Second

// Handler exposes the payment endpoints.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a payment handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Register registers the payment routes behind authentication.
func (h *Handler) Register(mux *http.ServeMux, requireAuth func(http.Handler) http.Handler) {
	mux.Handle("POST /api/payments", requireAuth(http.HandlerFunc(h.Finalize)))
	mux.Handle("GET /api/payments/history", requireAuth(http.HandlerFunc(h.History)))
}

// Finalize handles POST /api/payments requests.
func (h *Handler) Finalize(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.FinalizePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteBadRequest(w, "Invalid JSON format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	payment, err := h.service.Finalize(ctx, &req, requestID)
	if err != nil {
		middleware.RecordPaymentProcessed("rejected")
		h.logger.Error("payment_failed", "Failed to finalize payment", requestID, err, map[string]interface{}{
			"order_id": req.OrderID,
			"method":   req.Method,
			"kind":     string(apperr.KindOf(err)),
		})
		web.WriteError(w, err)
		return
	}

	middleware.RecordPaymentProcessed("completed")
	web.WriteJSON(w, http.StatusCreated, payment)
}

// History handles GET /api/payments/history requests.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	records, err := h.service.History(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("payment_history_failed", "Failed to list payments", "", err, nil)
		web.WriteError(w, err)
		return
	}
	if records == nil {
		records = []models.PaymentRecord{}
	}
	web.WriteJSON(w, http.StatusOK, records)
}
