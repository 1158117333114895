package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rafflehouse/admin-backend/internal/models"
)

// maxUploadBytes caps image uploads at 10 MiB.
const maxUploadBytes = 10 << 20

func (h *Handler) listImages(w http.ResponseWriter, r *http.Request) {
	assets, err := h.store.ListImageAssets(r.Context())
	if err != nil {
		slog.Error("Failed to list image assets", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list images")
		return
	}
	if assets == nil {
		assets = []models.ImageAsset{}
	}
	writeJSON(w, http.StatusOK, assets)
}

// uploadImage accepts a multipart form with a "file" part, pushes the
// bytes to the blob store, and records the resulting URL in the image
// library.
func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file part")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectPath, downloadURL, err := h.uploader.UploadImage(r.Context(), header.Filename, contentType, file)
	if err != nil {
		slog.Error("Failed to upload image", "name", header.Filename, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to upload image")
		return
	}

	asset := models.ImageAsset{
		Name:        header.Filename,
		URL:         downloadURL,
		StoragePath: objectPath,
	}
	id, err := h.store.CreateImageAsset(r.Context(), asset)
	if err != nil {
		// The blob exists but the library record failed; hand the URL
		// back anyway so the operator's work isn't lost.
		slog.Warn("Image uploaded but library record failed", "path", objectPath, "error", err)
	}
	asset.ID = id
	writeJSON(w, http.StatusCreated, asset)
}

func (h *Handler) deleteImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteImageAsset(r.Context(), id); err != nil {
		slog.Error("Failed to delete image asset", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete image")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
