package handler

import (
	"net/http"
	"strings"
)

var collections = []string{"users", "teams", "activities", "leaderboard", "workouts"}

// APIRoot возвращает абсолютные ссылки на все коллекции
func (h *Handler) APIRoot(w http.ResponseWriter, r *http.Request) {
	base := strings.TrimRight(h.baseURL, "/")

	links := make(map[string]string, len(collections))
	for _, name := range collections {
		links[name] = base + "/api/" + name + "/"
	}
	writeJSON(w, http.StatusOK, links)
}
