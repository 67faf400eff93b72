package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboardService.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainLeaderboardListToHTTP(entries))
}

func (h *Handler) GetLeaderboardEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.leaderboardService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainLeaderboardToHTTP(entry))
}

// RecomputeLeaderboard запускает пересчет и возвращает новую таблицу
func (h *Handler) RecomputeLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboardService.Recompute(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainLeaderboardListToHTTP(entries))
}
