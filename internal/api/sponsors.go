package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rafflehouse/admin-backend/internal/models"
)

type sponsorRequest struct {
	SponsorName string   `json:"sponsorName" validate:"required"`
	Logo        []string `json:"logo" validate:"max=2,dive,url"`
	Status      string   `json:"status"`
}

func (h *Handler) listSponsors(w http.ResponseWriter, r *http.Request) {
	var (
		sponsors []models.Sponsor
		err      error
	)
	// ?active=true narrows to sponsors offered on selection dropdowns.
	if r.URL.Query().Get("active") == "true" {
		sponsors, err = h.store.ListActiveSponsors(r.Context())
	} else {
		sponsors, err = h.store.ListSponsors(r.Context())
	}
	if err != nil {
		slog.Error("Failed to list sponsors", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list sponsors")
		return
	}
	if sponsors == nil {
		sponsors = []models.Sponsor{}
	}
	writeJSON(w, http.StatusOK, sponsors)
}

func (h *Handler) getSponsor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sponsor, err := h.store.GetSponsor(r.Context(), id)
	if err != nil {
		slog.Error("Failed to get sponsor", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get sponsor")
		return
	}
	if sponsor == nil {
		writeError(w, http.StatusNotFound, "sponsor not found")
		return
	}
	writeJSON(w, http.StatusOK, sponsor)
}

func (h *Handler) createSponsor(w http.ResponseWriter, r *http.Request) {
	var req sponsorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.store.CreateSponsor(r.Context(), models.Sponsor{
		SponsorName: req.SponsorName,
		Logo:        req.Logo,
		Status:      req.Status,
	})
	if err != nil {
		slog.Error("Failed to create sponsor", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create sponsor")
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (h *Handler) updateSponsor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var fields map[string]any
	if err := decodeJSON(r, &fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "no fields to update")
		return
	}
	// Reference sets are mutated through their own operations, never
	// through a blind merge that could drop concurrent additions.
	delete(fields, "gamesCreation")
	delete(fields, "prizesCreation")

	if err := h.store.UpdateSponsor(r.Context(), id, fields); err != nil {
		slog.Error("Failed to update sponsor", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update sponsor")
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: id})
}

func (h *Handler) deleteSponsor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteSponsor(r.Context(), id); err != nil {
		slog.Error("Failed to delete sponsor", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete sponsor")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
