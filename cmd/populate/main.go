package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bagdasarian/octofit-tracker/internal/config"
	"github.com/bagdasarian/octofit-tracker/internal/db"
	"github.com/bagdasarian/octofit-tracker/internal/logging"
	"github.com/bagdasarian/octofit-tracker/internal/repository/postgres"
	"github.com/bagdasarian/octofit-tracker/internal/service"
)

type options struct {
	migrate       bool
	recomputeOnly bool
	seed          int64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "populate",
		Short:        "Populate the octofit database with test data",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.migrate, "migrate", false, "apply schema migrations before populating")
	cmd.Flags().BoolVar(&opts.recomputeOnly, "recompute-only", false, "only recompute the leaderboard from existing activities")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed for generated activities (0 uses the current time)")

	return cmd
}

func run(ctx context.Context, opts *options, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log, os.Stderr)

	if opts.migrate {
		if err := db.Migrate(cfg.Database.DSN()); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	database, err := db.NewPostgres(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	store := postgres.NewStore(database)
	repos := store.Repositories()
	resolver := service.NewResolver(repos.Teams, repos.Users)
	leaderboard := service.NewLeaderboardService(
		repos.Users,
		repos.Activities,
		repos.Leaderboard,
		resolver,
		logger,
		service.WithScoreFunc(cfg.Leaderboard.Metric.ScoreFunc()),
	)

	if opts.recomputeOnly {
		fmt.Fprintln(out, "Calculating leaderboard...")
		entries, err := leaderboard.Recompute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Inserted %d leaderboard entries\n", len(entries))
		return nil
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	seeder := service.NewSeedService(store, leaderboard, rand.New(rand.NewSource(seed)), logger)

	fmt.Fprintln(out, "Clearing existing data and inserting test data...")
	summary, err := seeder.Seed(ctx)
	if err != nil {
		return err
	}
	printSummary(out, summary)
	return nil
}

func printSummary(out io.Writer, summary service.SeedSummary) {
	line := strings.Repeat("=", 50)
	fmt.Fprintf(out, "\n%s\nDATABASE POPULATION COMPLETE!\n%s\n\n", line, line)
	fmt.Fprintln(out, "Collection counts:")
	fmt.Fprintf(out, "  Users: %d\n", summary.Users)
	fmt.Fprintf(out, "  Teams: %d\n", summary.Teams)
	fmt.Fprintf(out, "  Activities: %d\n", summary.Activities)
	fmt.Fprintf(out, "  Leaderboard: %d\n", summary.Leaderboard)
	fmt.Fprintf(out, "  Workouts: %d\n", summary.Workouts)
}
