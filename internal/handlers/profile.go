package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sv6095/InnerEcho/internal/models"
	"github.com/sv6095/InnerEcho/internal/services"
)

// ProfileHandler maps the /api/userProfiles endpoints onto ProfileService.
// Unlike the journal endpoints, mutations here wrap store failures into the
// structured {message, status} body, error message included.
type ProfileHandler struct {
	service *services.ProfileService
}

func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// List handles GET /api/userProfiles.
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	profiles, err := h.service.All(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, profiles)
}

// Get handles GET /api/userProfiles/{id}.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	profile, found, err := h.service.ByID(ctx, id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !found {
		writeMessage(w, http.StatusNotFound, "Profile not found for ID: "+id)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Current handles GET /api/userProfiles/current?identifier=... where the
// identifier is either an email or a profile id.
func (h *ProfileHandler) Current(w http.ResponseWriter, r *http.Request) {
	identifier := r.URL.Query().Get("identifier")
	if identifier == "" {
		writeMessage(w, http.StatusBadRequest, "identifier parameter is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	profile, found, err := h.service.Current(ctx, identifier)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !found {
		writeMessage(w, http.StatusNotFound, "Profile not found for identifier: "+identifier)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Create handles POST /api/userProfiles.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	saved, err := h.service.Save(ctx, profile)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Error creating profile: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

// Update handles PUT /api/userProfiles/{id}. The path id wins over any id
// in the body.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	_, found, err := h.service.ByID(ctx, id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Error updating profile: "+err.Error())
		return
	}
	if !found {
		writeMessage(w, http.StatusNotFound, "Profile not found for ID: "+id)
		return
	}

	profile.ID = id
	updated, err := h.service.Save(ctx, profile)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Error updating profile: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/userProfiles/{id}. Deleting an absent profile
// still reports success; callers cannot infer existence from this endpoint.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		writeMessage(w, http.StatusInternalServerError, "Error deleting profile: "+err.Error())
		return
	}

	writeMessage(w, http.StatusOK, "Profile deleted successfully")
}

// Logout handles POST /api/logout. There is no server-side session state to
// invalidate, so this only acknowledges the request.
func (h *ProfileHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "Logout successful")
}
