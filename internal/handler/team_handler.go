package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		response = append(response, domainTeamToHTTP(team))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), httpTeamToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainTeamToHTTP(team))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.teamService.GetTeam(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

func (h *Handler) PatchTeam(w http.ResponseWriter, r *http.Request) {
	h.updateTeam(w, r, false)
}

// PutTeam требует все обязательные поля. Необязательные, если не переданы, сохраняют текущие значения
func (h *Handler) PutTeam(w http.ResponseWriter, r *http.Request) {
	h.updateTeam(w, r, true)
}

func (h *Handler) updateTeam(w http.ResponseWriter, r *http.Request, full bool) {
	var req TeamRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if full && req.Name == nil {
		h.handleError(w, r, domain.NewValidationError("name is required"))
		return
	}

	team, err := h.teamService.UpdateTeam(r.Context(), chi.URLParam(r, "id"), httpTeamToPatch(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	if err := h.teamService.DeleteTeam(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
