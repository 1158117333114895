package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rafflehouse/admin-backend/internal/lifecycle"
	"github.com/rafflehouse/admin-backend/internal/models"
	"github.com/rafflehouse/admin-backend/internal/storage"
	"github.com/rafflehouse/admin-backend/internal/timeconv"
)

// raffleRequest is the create/edit form payload. Timestamp fields are
// any: the console's older clients send ISO strings, newer ones epoch
// millis, and both must keep working.
type raffleRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	PictureURL  string  `json:"pictureUrl" validate:"omitempty,url"`
	CreatedAt   any     `json:"createdAt" validate:"required"`
	ExpiryDate  any     `json:"expiryDate" validate:"required"`
	Status      string  `json:"status"`
	PrizeID     string  `json:"prizeId"`
	SponsorID   string  `json:"sponsorId"`
	TicketPrice float64 `json:"ticketPrice" validate:"gte=0"`
}

// raffleResponse is a raffle plus its computed lifecycle status.
type raffleResponse struct {
	models.Raffle
	ComputedStatus lifecycle.Status `json:"computedStatus"`
}

func (h *Handler) listRaffles(w http.ResponseWriter, r *http.Request) {
	raffles, err := h.store.ListRaffles(r.Context())
	if err != nil {
		slog.Error("Failed to list raffles", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list raffles")
		return
	}

	now := time.Now()
	out := make([]raffleResponse, 0, len(raffles))
	for _, raffle := range raffles {
		out = append(out, raffleResponse{
			Raffle:         raffle,
			ComputedStatus: lifecycle.Classify(raffle, now),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) getRaffle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	raffle, err := h.store.GetRaffle(r.Context(), id)
	if err != nil {
		slog.Error("Failed to get raffle", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get raffle")
		return
	}
	if raffle == nil {
		writeError(w, http.StatusNotFound, "raffle not found")
		return
	}
	writeJSON(w, http.StatusOK, raffleResponse{
		Raffle:         *raffle,
		ComputedStatus: lifecycle.Classify(*raffle, time.Now()),
	})
}

func (h *Handler) createRaffle(w http.ResponseWriter, r *http.Request) {
	var req raffleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	raffle := models.Raffle{
		Title:       req.Title,
		Description: req.Description,
		PictureURL:  req.PictureURL,
		CreatedAt:   timeconv.ParseInstant(req.CreatedAt),
		ExpiryDate:  timeconv.ParseInstant(req.ExpiryDate),
		Status:      req.Status,
		PrizeID:     req.PrizeID,
		SponsorID:   req.SponsorID,
		TicketPrice: req.TicketPrice,
	}

	id, err := h.store.CreateRaffle(r.Context(), raffle)
	if err != nil {
		slog.Error("Failed to create raffle", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create raffle")
		return
	}

	// Link the new raffle into the sponsor's games reference set.
	// Best-effort: the raffle exists either way, and a failed link is
	// picked up by the consistency sweep.
	if raffle.SponsorID != "" {
		if err := h.store.AddSponsorReference(r.Context(), raffle.SponsorID, storage.RefGames, id); err != nil {
			slog.Warn("Failed to link raffle to sponsor", "raffle", id, "sponsor", raffle.SponsorID, "error", err)
		}
	}

	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (h *Handler) updateRaffle(w http.ResponseWriter, r *http.Request) {
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
	coerceInstantFields(fields, "createdAt", "expiryDate")

	if err := h.store.UpdateRaffle(r.Context(), id, fields); err != nil {
		slog.Error("Failed to update raffle", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update raffle")
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: id})
}

func (h *Handler) deleteRaffle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteRaffle(r.Context(), id); err != nil {
		slog.Error("Failed to delete raffle", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete raffle")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// coerceInstantFields rewrites timestamp-like values in a partial
// update to time.Time so the store persists real timestamps no matter
// which client shape arrived.
func coerceInstantFields(fields map[string]any, names ...string) {
	for _, name := range names {
		if v, ok := fields[name]; ok {
			fields[name] = timeconv.ParseInstant(v)
		}
	}
}
