package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.ActivityFilter{
		UserID:       query.Get("user"),
		ActivityType: domain.ActivityType(query.Get("activity_type")),
	}

	activities, err := h.activityService.ListActivities(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response := make([]ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		response = append(response, domainActivityToHTTP(activity))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req ActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	activity, err := h.activityService.LogActivity(r.Context(), httpActivityToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainActivityToHTTP(activity))
}

func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.activityService.GetActivity(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainActivityToHTTP(activity))
}

func (h *Handler) PatchActivity(w http.ResponseWriter, r *http.Request) {
	h.updateActivity(w, r, false)
}

func (h *Handler) PutActivity(w http.ResponseWriter, r *http.Request) {
	h.updateActivity(w, r, true)
}

func (h *Handler) updateActivity(w http.ResponseWriter, r *http.Request, full bool) {
	var req ActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if full && (req.User == nil || req.ActivityType == nil || req.Duration == nil || req.Date == nil) {
		h.handleError(w, r, domain.NewValidationError("user, activity_type, duration and date are required"))
		return
	}

	activity, err := h.activityService.UpdateActivity(r.Context(), chi.URLParam(r, "id"), httpActivityToPatch(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainActivityToHTTP(activity))
}

func (h *Handler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	if err := h.activityService.DeleteActivity(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
