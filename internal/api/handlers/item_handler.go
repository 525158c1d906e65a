package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/bazaarlabs/bazaar-be/internal/auth"
	"github.com/bazaarlabs/bazaar-be/internal/models"
	"github.com/bazaarlabs/bazaar-be/internal/services"
	"github.com/bazaarlabs/bazaar-be/internal/storage"
)

const maxUploadBytes = 32 << 20

// ItemHandler handles HTTP requests for items, including image uploads.
type ItemHandler struct {
	service services.ItemServiceProvider
	files   *storage.FileStore
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service services.ItemServiceProvider, files *storage.FileStore) *ItemHandler {
	return &ItemHandler{service: service, files: files}
}

// GetAll returns items matching the optional search, category, and user
// query filters. All filters combine with AND semantics.
func (h *ItemHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	filter := services.ItemFilter{Search: r.URL.Query().Get("search")}

	if v := r.URL.Query().Get("category"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			respondMsg(w, http.StatusBadRequest, "Invalid category filter")
			return
		}
		filter.CategoryID = &id
	}
	if v := r.URL.Query().Get("user"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			respondMsg(w, http.StatusBadRequest, "Invalid user filter")
			return
		}
		filter.UserID = &id
	}

	items, err := h.service.GetItems(filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve items")
		respondMsg(w, http.StatusInternalServerError, "Failed to retrieve items")
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// Create handles multipart item creation. All validation happens before the
// image is written; if persisting the record fails afterwards, the saved
// file is removed again.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		respondMsg(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondMsg(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondMsg(w, http.StatusBadRequest, "No image part")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		respondMsg(w, http.StatusBadRequest, "No selected file")
		return
	}
	imageName := storage.SanitizeFilename(header.Filename)
	if imageName == "" {
		respondMsg(w, http.StatusBadRequest, "No selected file")
		return
	}

	name := r.FormValue("name")
	categoryStr := r.FormValue("category_id")
	if name == "" || categoryStr == "" {
		respondMsg(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	categoryID, err := strconv.ParseInt(categoryStr, 10, 64)
	if err != nil {
		respondMsg(w, http.StatusBadRequest, "Invalid category_id")
		return
	}

	imageFile, err := h.files.Save(file, imageName)
	if err != nil {
		log.Error().Err(err).Str("filename", imageName).Msg("Failed to save uploaded image")
		respondMsg(w, http.StatusInternalServerError, "Failed to save image")
		return
	}

	item := models.Item{
		Name:        name,
		Description: r.FormValue("description"),
		ImageFile:   imageFile,
		ImageName:   imageName,
		CategoryID:  categoryID,
		UserID:      claims.UserID,
	}

	if _, err := h.service.CreateItem(item); err != nil {
		// Don't leave an orphaned image behind.
		if rmErr := h.files.Remove(imageFile); rmErr != nil {
			log.Warn().Err(rmErr).Str("file", imageFile).Msg("Failed to remove image after insert failure")
		}
		if errors.Is(err, services.ErrCategoryNotFound) {
			respondMsg(w, http.StatusBadRequest, "Category not found")
			return
		}
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("Failed to create item")
		respondMsg(w, http.StatusInternalServerError, "Failed to create item")
		return
	}

	respondMsg(w, http.StatusCreated, "Item created successfully")
}
