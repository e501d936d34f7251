package table

import (
	"encoding/json"
	"net/http"
	"strconv"

	"trinh-cafe/internal/logger"
	"trinh-cafe/internal/models"
	"trinh-cafe/internal/web"
)

// Handler exposes the table endpoints.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a table handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Register registers the table routes. requireAdmin guards status changes.
func (h *Handler) Register(mux *http.ServeMux, requireAdmin func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /api/tables", h.ListTables)
	mux.HandleFunc("GET /api/tables/locations", h.ListLocations)
	mux.Handle("PUT /api/tables/{id}/status", requireAdmin(http.HandlerFunc(h.SetStatus)))
}

// ListTables handles GET /api/tables?location_id=N requests.
func (h *Handler) ListTables(w http.ResponseWriter, r *http.Request) {
	var locationID *int
	if raw := r.URL.Query().Get("location_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			web.WriteBadRequest(w, "Invalid location ID")
			return
		}
		locationID = &id
	}

	tables, err := h.service.Tables(r.Context(), locationID)
	if err != nil {
		h.logger.Error("table_list_failed", "Failed to list tables", "", err, nil)
		web.WriteError(w, err)
		return
	}
	if tables == nil {
		tables = []models.Table{}
	}
	web.WriteJSON(w, http.StatusOK, tables)
}

// ListLocations handles GET /api/tables/locations requests.
func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.service.Locations(r.Context())
	if err != nil {
		h.logger.Error("location_list_failed", "Failed to list locations", "", err, nil)
		web.WriteError(w, err)
		return
	}
	if locations == nil {
		locations = []models.Location{}
	}
	web.WriteJSON(w, http.StatusOK, locations)
}

// SetStatus handles PUT /api/tables/{id}/status requests.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	tableID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		web.WriteBadRequest(w, "Invalid table ID")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteBadRequest(w, "Invalid JSON format")
		return
	}

	if err := h.service.SetStatus(r.Context(), tableID, req.Status, requestID); err != nil {
		h.logger.Error("table_status_update_failed", "Failed to update table status", requestID, err,
			map[string]interface{}{"table_id": tableID})
		web.WriteError(w, err)
		return
	}

	web.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
