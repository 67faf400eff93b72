package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

type countingRecomputer struct {
	calls atomic.Int32
	err   error
	done  chan struct{}
}

func (r *countingRecomputer) Recompute(context.Context) ([]*domain.LeaderboardView, error) {
	if r.calls.Add(1) == 1 && r.done != nil {
		close(r.done)
	}
	return nil, r.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew(t *testing.T) {
	t.Run("ошибка: некорректное выражение", func(t *testing.T) {
		_, err := New("every now and then", &countingRecomputer{}, discardLogger())

		assert.Error(t, err)
	})

	t.Run("стандартное выражение принимается", func(t *testing.T) {
		s, err := New("*/15 * * * *", &countingRecomputer{}, discardLogger())

		require.NoError(t, err)
		assert.NotNil(t, s)
	})
}

func TestScheduler_run(t *testing.T) {
	t.Run("ошибка пересчета не останавливает планировщик", func(t *testing.T) {
		recomputer := &countingRecomputer{err: errors.New("boom")}
		s, err := New("@every 1h", recomputer, discardLogger())
		require.NoError(t, err)

		s.run()
		s.run()

		assert.Equal(t, int32(2), recomputer.calls.Load())
	})
}

func TestScheduler_StartStop(t *testing.T) {
	t.Run("пересчет запускается по расписанию", func(t *testing.T) {
		recomputer := &countingRecomputer{done: make(chan struct{})}
		s, err := New("@every 1s", recomputer, discardLogger())
		require.NoError(t, err)

		s.Start()
		select {
		case <-recomputer.done:
		case <-time.After(5 * time.Second):
			t.Fatal("scheduled recompute did not run")
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		s.Stop(ctx)

		assert.GreaterOrEqual(t, recomputer.calls.Load(), int32(1))
	})
}
