package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

const defaultRunTimeout = time.Minute

type Recomputer interface {
	Recompute(ctx context.Context) ([]*domain.LeaderboardView, error)
}

// Scheduler периодически пересчитывает таблицу лидеров по cron-выражению.
// Запуск пропускается, если предыдущий еще не завершился
type Scheduler struct {
	cron       *cron.Cron
	recomputer Recomputer
	logger     *slog.Logger
	timeout    time.Duration
}

func New(spec string, recomputer Recomputer, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Scheduler{
		cron:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		recomputer: recomputer,
		logger:     logger,
		timeout:    defaultRunTimeout,
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid leaderboard schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.logger.Info("leaderboard scheduler started")
	s.cron.Start()
}

// Stop прекращает планирование и ждет завершения текущего запуска, но не дольше ctx
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("leaderboard scheduler stop timed out")
	}
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	entries, err := s.recomputer.Recompute(ctx)
	if err != nil {
		s.logger.Error("scheduled leaderboard recompute failed", slog.Any("error", err))
		return
	}
	s.logger.Debug("scheduled leaderboard recompute done", slog.Int("entries", len(entries)))
}
