package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rafflehouse/admin-backend/internal/dashboard"
	"github.com/rafflehouse/admin-backend/internal/models"
	"github.com/rafflehouse/admin-backend/internal/revenue"
)

func (h *Handler) featuredRaffles(w http.ResponseWriter, r *http.Request) {
	featured, err := h.dashboards.Featured(r.Context(), time.Now())
	if err != nil {
		slog.Error("Failed to build featured raffles", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to build featured raffles")
		return
	}
	if featured == nil {
		featured = []dashboard.FeaturedRaffle{}
	}
	writeJSON(w, http.StatusOK, featured)
}

// revenueSeries serves the chart series for the revenue panel. Store
// failures surface as an empty series with a 200, by contract: the
// panel renders an empty chart, never an error state.
func (h *Handler) revenueSeries(w http.ResponseWriter, r *http.Request) {
	g, err := revenue.ParseGranularity(r.URL.Query().Get("granularity"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.revenues.Series(r.Context(), g))
}

// sweepReferences runs the sponsor reference reconciliation pass and
// reports how many dangling entries were removed. Cascade cleanups are
// best-effort, so operators run this after a burst of deletes.
func (h *Handler) sweepReferences(w http.ResponseWriter, r *http.Request) {
	removed, err := h.store.SweepSponsorRefs(r.Context())
	if err != nil {
		slog.Error("Reference sweep failed", "error", err)
		writeError(w, http.StatusInternalServerError, "reference sweep failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"removed": removed})
}

func (h *Handler) listTicketSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.store.ListTicketSales(r.Context())
	if err != nil {
		slog.Error("Failed to list ticket sales", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list ticket sales")
		return
	}
	if sales == nil {
		sales = []models.TicketSale{}
	}
	writeJSON(w, http.StatusOK, sales)
}
