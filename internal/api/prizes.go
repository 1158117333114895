package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rafflehouse/admin-backend/internal/models"
	"github.com/rafflehouse/admin-backend/internal/storage"
)

type prizeRequest struct {
	PrizeName      string  `json:"prizeName" validate:"required"`
	RetailValueUSD float64 `json:"retailValueUSD" validate:"gte=0"`
	Thumbnail      string  `json:"thumbnail" validate:"omitempty,url"`
	SponsorID      string  `json:"sponsorId"`
	Status         string  `json:"status"`
}

func (h *Handler) listPrizes(w http.ResponseWriter, r *http.Request) {
	prizes, err := h.store.ListPrizes(r.Context())
	if err != nil {
		slog.Error("Failed to list prizes", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list prizes")
		return
	}
	if prizes == nil {
		prizes = []models.Prize{}
	}
	writeJSON(w, http.StatusOK, prizes)
}

func (h *Handler) getPrize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	prize, err := h.store.GetPrize(r.Context(), id)
	if err != nil {
		slog.Error("Failed to get prize", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get prize")
		return
	}
	if prize == nil {
		writeError(w, http.StatusNotFound, "prize not found")
		return
	}
	writeJSON(w, http.StatusOK, prize)
}

func (h *Handler) createPrize(w http.ResponseWriter, r *http.Request) {
	var req prizeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.store.CreatePrize(r.Context(), models.Prize{
		PrizeName:      req.PrizeName,
		RetailValueUSD: req.RetailValueUSD,
		Thumbnail:      req.Thumbnail,
		SponsorID:      req.SponsorID,
		Status:         req.Status,
	})
	if err != nil {
		slog.Error("Failed to create prize", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create prize")
		return
	}

	if req.SponsorID != "" {
		if err := h.store.AddSponsorReference(r.Context(), req.SponsorID, storage.RefPrizes, id); err != nil {
			slog.Warn("Failed to link prize to sponsor", "prize", id, "sponsor", req.SponsorID, "error", err)
		}
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (h *Handler) updatePrize(w http.ResponseWriter, r *http.Request) {
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

	if err := h.store.UpdatePrize(r.Context(), id, fields); err != nil {
		slog.Error("Failed to update prize", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update prize")
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: id})
}

func (h *Handler) deletePrize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeletePrize(r.Context(), id); err != nil {
		slog.Error("Failed to delete prize", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete prize")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
