package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bagdasarian/octofit-tracker/internal/config"
	"github.com/bagdasarian/octofit-tracker/internal/db"
	"github.com/bagdasarian/octofit-tracker/internal/handler"
	"github.com/bagdasarian/octofit-tracker/internal/handler/server"
	"github.com/bagdasarian/octofit-tracker/internal/logging"
	"github.com/bagdasarian/octofit-tracker/internal/repository/postgres"
	"github.com/bagdasarian/octofit-tracker/internal/scheduler"
	"github.com/bagdasarian/octofit-tracker/internal/service"
)

func main() {
	cfg := config.MustLoad()
	logger := logging.New(cfg.Log, os.Stdout)

	if cfg.MigrateOnStart {
		if err := db.Migrate(cfg.Database.DSN()); err != nil {
			logger.Error("migration failed", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied")
	}

	database := db.MustLoad(cfg)
	logger.Info("successfully connected to database")
	defer database.Close()

	services := buildServices(database, cfg, logger)

	h := handler.NewHandler(services, cfg.APIBaseURL(), logger)
	health := handler.NewHealthHandler(database, logger)
	router := server.NewRouter(h, health, server.DefaultCORSConfig(cfg.HTTP.CORSAllowedOrigins), logger)
	srv := server.NewServer(router, cfg.HTTP, logger)

	var sched *scheduler.Scheduler
	if cfg.Leaderboard.Schedule != "" {
		s, err := scheduler.New(cfg.Leaderboard.Schedule, services.Leaderboard, logger)
		if err != nil {
			logger.Error("scheduler init failed", slog.Any("error", err))
			os.Exit(1)
		}
		sched = s
		sched.Start()
	}

	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("server failed to start", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if sched != nil {
		sched.Stop(ctx)
	}
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", slog.Any("error", err))
	}
}

func buildServices(database *sql.DB, cfg *config.Config, logger *slog.Logger) handler.Services {
	repos := postgres.NewStore(database).Repositories()
	resolver := service.NewResolver(repos.Teams, repos.Users)

	return handler.Services{
		Teams:      service.NewTeamService(repos.Teams),
		Users:      service.NewUserService(repos.Users, repos.Teams, resolver),
		Activities: service.NewActivityService(repos.Activities, repos.Users, resolver),
		Workouts:   service.NewWorkoutService(repos.Workouts),
		Leaderboard: service.NewLeaderboardService(
			repos.Users,
			repos.Activities,
			repos.Leaderboard,
			resolver,
			logger,
			service.WithScoreFunc(cfg.Leaderboard.Metric.ScoreFunc()),
		),
		Stats: service.NewStatsService(postgres.NewStatsRepository(database)),
	}
}
