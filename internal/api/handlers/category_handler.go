package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/bazaarlabs/bazaar-be/internal/services"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service services.CategoryServiceProvider
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service services.CategoryServiceProvider) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// GetAll returns every category with its item count.
func (h *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve categories")
		respondMsg(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	respondJSON(w, http.StatusOK, categories)
}

// Create handles the request to create a new category.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if payload.Name == "" {
		respondMsg(w, http.StatusBadRequest, "Category name is required")
		return
	}

	category, err := h.service.CreateCategory(payload.Name)
	if err != nil {
		if errors.Is(err, services.ErrCategoryExists) {
			respondMsg(w, http.StatusBadRequest, "Category already exists")
			return
		}
		log.Error().Err(err).Str("name", payload.Name).Msg("Failed to create category")
		respondMsg(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	respondJSON(w, http.StatusCreated, category)
}
