package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rafflehouse/admin-backend/internal/models"
)

type adminUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

func (h *Handler) listAdminUsers(w http.ResponseWriter, r *http.Request) {
	admins, err := h.store.ListAdminUsers(r.Context())
	if err != nil {
		slog.Error("Failed to list admin users", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list admin users")
		return
	}
	if admins == nil {
		admins = []models.AdminUser{}
	}
	writeJSON(w, http.StatusOK, admins)
}

func (h *Handler) getAdminUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	admin, err := h.store.GetAdminUser(r.Context(), id)
	if err != nil {
		slog.Error("Failed to get admin user", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get admin user")
		return
	}
	if admin == nil {
		writeError(w, http.StatusNotFound, "admin user not found")
		return
	}
	writeJSON(w, http.StatusOK, admin)
}

func (h *Handler) createAdminUser(w http.ResponseWriter, r *http.Request) {
	var req adminUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.store.CreateAdminUser(r.Context(), models.AdminUser{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        req.Role,
	})
	if err != nil {
		slog.Error("Failed to create admin user", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create admin user")
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (h *Handler) updateAdminUser(w http.ResponseWriter, r *http.Request) {
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

	if err := h.store.UpdateAdminUser(r.Context(), id, fields); err != nil {
		slog.Error("Failed to update admin user", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update admin user")
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: id})
}

func (h *Handler) deleteAdminUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteAdminUser(r.Context(), id); err != nil {
		slog.Error("Failed to delete admin user", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete admin user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
