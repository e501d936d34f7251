package menu

import (
	"encoding/json"
	"net/http"
	"strconv"

	"trinh-cafe/internal/logger"
	"trinh-cafe/internal/models"
	"trinh-cafe/internal/web"
)

// Handler exposes the menu endpoints.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a menu handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Register registers the menu routes. Reads are public, writes are admin only.
func (h *Handler) Register(mux *http.ServeMux, requireAdmin func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /api/menu", h.ListItems)
	mux.HandleFunc("GET /api/menu/categories", h.ListCategories)

	mux.Handle("POST /api/menu/categories", requireAdmin(http.HandlerFunc(h.CreateCategory)))
	mux.Handle("PUT /api/menu/categories/{id}", requireAdmin(http.HandlerFunc(h.UpdateCategory)))
	mux.Handle("DELETE /api/menu/categories/{id}", requireAdmin(http.HandlerFunc(h.DeleteCategory)))

	mux.Handle("POST /api/menu", requireAdmin(http.HandlerFunc(h.CreateItem)))
	mux.Handle("PUT /api/menu/{id}", requireAdmin(http.HandlerFunc(h.UpdateItem)))
	mux.Handle("DELETE /api/menu/{id}", requireAdmin(http.HandlerFunc(h.DeleteItem)))
}

// ListItems handles GET /api/menu requests.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.Items(r.Context())
	if err != nil {
		h.logger.Error("menu_list_failed", "Failed to list menu items", "", err, nil)
		web.WriteError(w, err)
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	web.WriteJSON(w, http.StatusOK, items)
}

// ListCategories handles GET /api/menu/categories requests.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.logger.Error("category_list_failed", "Failed to list categories", "", err, nil)
		web.WriteError(w, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	web.WriteJSON(w, http.StatusOK, categories)
}

// CreateCategory handles POST /api/menu/categories requests.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteBadRequest(w, "Invalid JSON format")
		return
	}

	category, err := h.service.CreateCategory(r.Context(), req.Name)
	if err != nil {
		h.logger.Error("category_create_failed", "Failed to create category", "", err, nil)
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusCreated, category)
}

// UpdateCategory handles PUT /api/menu/categories/{id} requests.
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		web.WriteBadRequest(w, "Invalid category ID")
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteBadRequest(w, "Invalid JSON format")
		return
	}

	if err := h.service.UpdateCategory(r.Context(), id, req.Name); err != nil {
		h.logger.Error("category_update_failed", "Failed to update category", "", err,
			map[string]interface{}{"category_id": id})
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// DeleteCategory handles DELETE /api/menu/categories/{id} requests.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		web.WriteBadRequest(w, "Invalid category ID")
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		h.logger.Error("category_delete_failed", "Failed to delete category", "", err,
			map[string]interface{}{"category_id": id})
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// CreateItem handles POST /api/menu requests.
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteBadRequest(w, "Invalid JSON format")
		return
	}

	item, err := h.service.CreateItem(r.Context(), &req)
	if err != nil {
		h.logger.Error("menu_item_create_failed", "Failed to create menu item", "", err, nil)
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusCreated, item)
}

// UpdateItem handles PUT /api/menu/{id} requests.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		web.WriteBadRequest(w, "Invalid item ID")
		return
	}

	var req models.MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteBadRequest(w, "Invalid JSON format")
		return
	}

	item, err := h.service.UpdateItem(r.Context(), id, &req)
	if err != nil {
		h.logger.Error("menu_item_update_failed", "Failed to update menu item", "", err,
			map[string]interface{}{"item_id": id})
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, item)
}

// DeleteItem handles DELETE /api/menu/{id} requests.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		web.WriteBadRequest(w, "Invalid item ID")
		return
	}

	if err := h.service.DeleteItem(r.Context(), id); err != nil {
		h.logger.Error("menu_item_delete_failed", "Failed to delete menu item", "", err,
			map[string]interface{}{"item_id": id})
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
