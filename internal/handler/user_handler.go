package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.UserFilter{
		TeamID:       query.Get("team"),
		FitnessLevel: domain.FitnessLevel(query.Get("fitness_level")),
	}

	users, err := h.userService.ListUsers(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response := make([]UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, domainUserToHTTP(user))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	user, err := h.userService.CreateUser(r.Context(), httpUserToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainUserToHTTP(user))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainUserToHTTP(user))
}

func (h *Handler) PatchUser(w http.ResponseWriter, r *http.Request) {
	h.updateUser(w, r, false)
}

func (h *Handler) PutUser(w http.ResponseWriter, r *http.Request) {
	h.updateUser(w, r, true)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request, full bool) {
	var req UserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if full && (req.Name == nil || req.Email == nil) {
		h.handleError(w, r, domain.NewValidationError("name and email are required"))
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), chi.URLParam(r, "id"), httpUserToPatch(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainUserToHTTP(user))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
