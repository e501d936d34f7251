package order

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"trinh-cafe/internal/logger"
	"trinh-cafe/internal/models"
	"trinh-cafe/internal/web"
)

const requestTimeout = 30 * time.Second

// Handler exposes the order endpoints.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates an order handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Register registers the order routes. Creation and status changes require
// authentication; the read endpoints are public so customers can follow
// their table's orders.
func (h *Handler) Register(mux *http.ServeMux, requireAuth func(http.Handler) http.Handler) {
	mux.Handle("POST /api/orders", requireAuth(http.HandlerFunc(h.CreateOrder)))
	mux.Handle("PUT /api/orders/{id}/status", requireAuth(http.HandlerFunc(h.UpdateStatus)))
	mux.HandleFunc("GET /api/orders/open", h.OpenOrders)
	mux.HandleFunc("GET /api/orders/table/{table_id}", h.OrdersByTable)
	mux.HandleFunc("GET /api/orders/{id}", h.OrderDetail)
}

// CreateOrder handles POST /api/orders requests.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.CreateOrderRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		h.logger.Error("validation_failed", "Failed to parse request body", requestID, err, nil)
		web.WriteBadRequest(w, "Invalid JSON format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := h.service.CreateOrder(ctx, &req, requestID)
	if err != nil {
		h.logger.Error("order_creation_failed", "Failed to create order", requestID, err, map[string]interface{}{
			"table_id": req.TableID,
		})
		web.WriteError(w, err)
		return
	}

	web.WriteJSON(w, http.StatusCreated, response)
}

// UpdateStatus handles PUT /api/orders/{id}/status requests.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	orderID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		web.WriteBadRequest(w, "Invalid order ID")
		return
	}

	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteBadRequest(w, "Invalid JSON format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := h.service.UpdateStatus(ctx, orderID, req.Status, requestID)
	if err != nil {
		h.logger.Error("status_update_failed", "Failed to update order status", requestID, err, map[string]interface{}{
			"order_id": orderID,
			"status":   req.Status,
		})
		web.WriteError(w, err)
		return
	}

	web.WriteJSON(w, http.StatusOK, response)
}

// OpenOrders handles GET /api/orders/open requests.
func (h *Handler) OpenOrders(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.OpenOrders(r.Context())
	if err != nil {
		h.logger.Error("open_orders_failed", "Failed to list open orders", "", err, nil)
		web.WriteError(w, err)
		return
	}
	if views == nil {
		views = []models.OrderView{}
	}
	web.WriteJSON(w, http.StatusOK, views)
}

// OrdersByTable handles GET /api/orders/table/{table_id} requests.
func (h *Handler) OrdersByTable(w http.ResponseWriter, r *http.Request) {
	tableID, err := strconv.Atoi(r.PathValue("table_id"))
	if err != nil {
		web.WriteBadRequest(w, "Invalid table ID")
		return
	}

	views, err := h.service.OrdersByTable(r.Context(), tableID)
	if err != nil {
		h.logger.Error("table_orders_failed", "Failed to list table orders", "", err, map[string]interface{}{
			"table_id": tableID,
		})
		web.WriteError(w, err)
		return
	}
	if views == nil {
		views = []models.OrderView{}
	}
	web.WriteJSON(w, http.StatusOK, views)
}

// OrderDetail handles GET /api/orders/{id} requests.
func (h *Handler) OrderDetail(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		web.WriteBadRequest(w, "Invalid order ID")
		return
	}

	detail, err := h.service.OrderDetail(r.Context(), orderID)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, detail)
}
