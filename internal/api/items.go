package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/gildedrose/internal/imaging"
	"github.com/erazemk/gildedrose/internal/model"
	"github.com/erazemk/gildedrose/internal/rose"
	"github.com/erazemk/gildedrose/internal/store"
)

// ItemsHandler handles item endpoints.
type ItemsHandler struct {
	DB     *sql.DB
	Images *imaging.Processor
}

type createItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SellIn      int    `json:"sell_in"`
	Quality     int    `json:"quality"`
}

type updateItemRequest struct {
	Description string `json:"description"`
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category != "" && !rose.Category(category).Valid() {
		jsonError(w, http.StatusBadRequest, "invalid category")
		return
	}

	items, err := store.ListItems(r.Context(), h.DB, category)
	if err != nil {
		slog.Error("failed to list items", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items. Sell-in and quality are taken as given;
// legendary items get their fixed values regardless.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, req.Name, req.Description, req.SellIn, req.Quality)
	if err != nil {
		slog.Error("failed to create item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	slog.Info("item stocked", "item", item.Name, "category", item.Category,
		"sell_in", item.SellIn, "quality", item.Quality)
	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /api/items/{id}. Only the description can change.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := store.UpdateItemDescription(r.Context(), h.DB, id, req.Description)
	if errors.Is(err, store.ErrItemNotFound) {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		slog.Error("failed to update item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	err := store.DeleteItem(r.Context(), h.DB, id)
	if errors.Is(err, store.ErrItemNotFound) {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// UploadImage handles PUT /api/items/{id}/image.
func (h *ItemsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Images.MaxBytes+1<<10)
	if err := r.ParseMultipartForm(h.Images.MaxBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	photo, err := h.Images.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = store.SetItemImage(r.Context(), h.DB, id, photo.Data, photo.MIME)
	if errors.Is(err, store.ErrItemNotFound) {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		slog.Error("failed to save image", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"message": "image uploaded",
		"width":   photo.Width,
		"height":  photo.Height,
	})
}

// GetImage handles GET /api/items/{id}/image.
func (h *ItemsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	data, mime, err := store.GetItemImage(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to get image", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get image")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write image response", "error", err)
	}
}

// GetHistory handles GET /api/items/{id}/history.
func (h *ItemsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	history, err := store.GetItemHistory(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to get item history", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get item history")
		return
	}
	if history == nil {
		history = []model.DayLog{}
	}
	jsonResponse(w, http.StatusOK, history)
}
