package workers

import (
	"context"
	"sync"
	"time"

	"github.com/Unikyri/forohub-tui/internal/logger"
)

// RefreshWorker periodically marks the cached topic collections and forum
// counters stale so the next read pulls fresh data from the server. It never
// fetches anything itself: refetching stays demand-driven.
type RefreshWorker struct {
	topics   TopicRefresher
	stats    StatsRefresher
	interval time.Duration
	logger   *logger.Logger

	ctx context.Context

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshWorker creates a RefreshWorker that ticks every interval. If
// interval is zero or negative it defaults to 5 minutes. The worker is idle
// until Run is called; the goroutine exits when ctx is cancelled or Stop is
// called.
func NewRefreshWorker(ctx context.Context, topics TopicRefresher, stats StatsRefresher, interval time.Duration, log *logger.Logger) *RefreshWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &RefreshWorker{
		topics:   topics,
		stats:    stats,
		interval: interval,
		logger:   log,
		ctx:      ctx,
	}
}

// Run implements Worker. It stops any previously running tick loop, then
// launches a background goroutine that invalidates the caches every interval.
func (w *RefreshWorker) Run() {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(w.ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.topics.RefreshCollections()
				w.stats.Refresh()
				w.logger.Debug().
					Str("func", "workers.RefreshWorker.Run").
					Dur("interval", w.interval).
					Msg("marked cached collections stale")
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has fully
// exited. Safe to call when the worker is not running (no-op in that case).
func (w *RefreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
