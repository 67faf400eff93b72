package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bagdasarian/octofit-tracker/internal/service"
)

type Services struct {
	Teams       service.TeamService
	Users       service.UserService
	Activities  service.ActivityService
	Workouts    service.WorkoutService
	Leaderboard service.LeaderboardService
	Stats       service.StatsService
}

type Handler struct {
	teamService        service.TeamService
	userService        service.UserService
	activityService    service.ActivityService
	workoutService     service.WorkoutService
	leaderboardService service.LeaderboardService
	statsService       service.StatsService

	baseURL string
	logger  *slog.Logger
}

// NewHandler создает обработчики REST API. baseURL используется для абсолютных ссылок корня API
func NewHandler(services Services, baseURL string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		teamService:        services.Teams,
		userService:        services.Users,
		activityService:    services.Activities,
		workoutService:     services.Workouts,
		leaderboardService: services.Leaderboard,
		statsService:       services.Stats,
		baseURL:            baseURL,
		logger:             logger,
	}
}

// Routes регистрирует маршруты API. Пути указаны без завершающего слэша, его срезает роутер
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.APIRoot)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.APIRoot)

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", h.ListTeams)
			r.Post("/", h.CreateTeam)
			r.Get("/{id}", h.GetTeam)
			r.Patch("/{id}", h.PatchTeam)
			r.Put("/{id}", h.PutTeam)
			r.Delete("/{id}", h.DeleteTeam)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.ListUsers)
			r.Post("/", h.CreateUser)
			r.Get("/{id}", h.GetUser)
			r.Patch("/{id}", h.PatchUser)
			r.Put("/{id}", h.PutUser)
			r.Delete("/{id}", h.DeleteUser)
		})

		r.Route("/activities", func(r chi.Router) {
			r.Get("/", h.ListActivities)
			r.Post("/", h.CreateActivity)
			r.Get("/{id}", h.GetActivity)
			r.Patch("/{id}", h.PatchActivity)
			r.Put("/{id}", h.PutActivity)
			r.Delete("/{id}", h.DeleteActivity)
		})

		r.Route("/workouts", func(r chi.Router) {
			r.Get("/", h.ListWorkouts)
			r.Post("/", h.CreateWorkout)
			r.Get("/{id}", h.GetWorkout)
			r.Patch("/{id}", h.PatchWorkout)
			r.Put("/{id}", h.PutWorkout)
			r.Delete("/{id}", h.DeleteWorkout)
		})

		r.Route("/leaderboard", func(r chi.Router) {
			r.Get("/", h.ListLeaderboard)
			r.Post("/recompute", h.RecomputeLeaderboard)
			r.Get("/{id}", h.GetLeaderboardEntry)
		})

		r.Get("/stats", h.GetStats)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return newBadRequestError("invalid request body: %v", err)
	}
	return nil
}
