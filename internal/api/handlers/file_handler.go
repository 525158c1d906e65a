package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bazaarlabs/bazaar-be/internal/storage"
)

// FileHandler serves uploaded images back by their storage key.
type FileHandler struct {
	files *storage.FileStore
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(files *storage.FileStore) *FileHandler {
	return &FileHandler{files: files}
}

// Serve returns the raw bytes of a stored file. Lookups are scoped to the
// upload directory; anything else is a 404.
func (h *FileHandler) Serve(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	path, err := h.files.Path(filename)
	if err != nil {
		respondMsg(w, http.StatusNotFound, "File not found")
		return
	}
	http.ServeFile(w, r, path)
}
