// Package api exposes the console's HTTP surface: CRUD for raffles,
// sponsors, prizes and operators, the dashboard endpoints, and image
// uploads.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rafflehouse/admin-backend/internal/dashboard"
	"github.com/rafflehouse/admin-backend/internal/revenue"
	"github.com/rafflehouse/admin-backend/internal/validation"
)

// Handler carries the dependencies every endpoint shares.
type Handler struct {
	store      Store
	uploader   Uploader
	dashboards *dashboard.Service
	revenues   *revenue.Service
	validate   *validation.Validator
}

func NewHandler(store Store, uploader Uploader, dashboards *dashboard.Service, revenues *revenue.Service) *Handler {
	return &Handler{
		store:      store,
		uploader:   uploader,
		dashboards: dashboards,
		revenues:   revenues,
		validate:   validation.New(),
	}
}

// Options tune the router middlewares.
type Options struct {
	// Authenticate wraps the API routes; nil leaves them open (local
	// development with AUTH_DISABLED).
	Authenticate   func(http.Handler) http.Handler
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter builds the chi router. The health endpoint sits outside
// both auth and rate limiting so probes never get throttled out.
func NewRouter(h *Handler, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, `{"status":"ok"}`)
	})

	r.Route("/api", func(r chi.Router) {
		if opts.RateLimitRPS > 0 {
			r.Use(newRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst).middleware)
		}
		if opts.Authenticate != nil {
			r.Use(opts.Authenticate)
		}

		r.Route("/raffles", func(r chi.Router) {
			r.Get("/", h.listRaffles)
			r.Post("/", h.createRaffle)
			r.Get("/{id}", h.getRaffle)
			r.Patch("/{id}", h.updateRaffle)
			r.Delete("/{id}", h.deleteRaffle)
		})

		r.Route("/sponsors", func(r chi.Router) {
			r.Get("/", h.listSponsors)
			r.Post("/", h.createSponsor)
			r.Get("/{id}", h.getSponsor)
			r.Patch("/{id}", h.updateSponsor)
			r.Delete("/{id}", h.deleteSponsor)
		})

		r.Route("/prizes", func(r chi.Router) {
			r.Get("/", h.listPrizes)
			r.Post("/", h.createPrize)
			r.Get("/{id}", h.getPrize)
			r.Patch("/{id}", h.updatePrize)
			r.Delete("/{id}", h.deletePrize)
		})

		r.Route("/admins", func(r chi.Router) {
			r.Get("/", h.listAdminUsers)
			r.Post("/", h.createAdminUser)
			r.Get("/{id}", h.getAdminUser)
			r.Patch("/{id}", h.updateAdminUser)
			r.Delete("/{id}", h.deleteAdminUser)
		})

		r.Route("/images", func(r chi.Router) {
			r.Get("/", h.listImages)
			r.Post("/", h.uploadImage)
			r.Delete("/{id}", h.deleteImage)
		})

		r.Post("/maintenance/sweep", h.sweepReferences)
		r.Get("/tickets", h.listTicketSales)
		r.Get("/dashboard/featured", h.featuredRaffles)
		r.Get("/dashboard/revenue", h.revenueSeries)
	})

	return r
}
