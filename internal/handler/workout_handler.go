package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

func (h *Handler) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	filter := domain.WorkoutFilter{
		Difficulty: domain.Difficulty(r.URL.Query().Get("difficulty")),
	}

	workouts, err := h.workoutService.ListWorkouts(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response := make([]WorkoutResponse, 0, len(workouts))
	for _, workout := range workouts {
		response = append(response, domainWorkoutToHTTP(workout))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	var req WorkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	workout, err := h.workoutService.CreateWorkout(r.Context(), httpWorkoutToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainWorkoutToHTTP(workout))
}

func (h *Handler) GetWorkout(w http.ResponseWriter, r *http.Request) {
	workout, err := h.workoutService.GetWorkout(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainWorkoutToHTTP(workout))
}

func (h *Handler) PatchWorkout(w http.ResponseWriter, r *http.Request) {
	h.updateWorkout(w, r, false)
}

func (h *Handler) PutWorkout(w http.ResponseWriter, r *http.Request) {
	h.updateWorkout(w, r, true)
}

func (h *Handler) updateWorkout(w http.ResponseWriter, r *http.Request, full bool) {
	var req WorkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if full && req.Name == nil {
		h.handleError(w, r, domain.NewValidationError("name is required"))
		return
	}

	workout, err := h.workoutService.UpdateWorkout(r.Context(), chi.URLParam(r, "id"), httpWorkoutToPatch(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainWorkoutToHTTP(workout))
}

func (h *Handler) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	if err := h.workoutService.DeleteWorkout(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
