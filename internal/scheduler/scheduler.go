package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/ndayishimiyefidel/recipe-backend/internal/dispatcher"
	"github.com/ndayishimiyefidel/recipe-backend/internal/model"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler/mock.go -package=mocks

type dueLister interface {
	FindDue(ctx context.Context, now time.Time) ([]model.Notification, error)
}

type recordDispatcher interface {
	Dispatch(ctx context.Context, n model.Notification) dispatcher.Outcome
}

// Scheduler polls the notification store on a fixed interval and hands every
// due record to the dispatcher. It keeps no notification state between ticks:
// each tick re-reads the store, which is what makes a restarted process
// resume cleanly without recovery logic.
type Scheduler struct {
	store      dueLister
	dispatcher recordDispatcher

	interval    time.Duration
	concurrency int
	now         func() time.Time // injectable clock for tests

	mu sync.Mutex // serializes ticks so two fires cannot race one record
}

func New(store dueLister, d recordDispatcher, interval time.Duration, concurrency int) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	if concurrency <= 0 {
		concurrency = 10
	}

	return &Scheduler{
		store:       store,
		dispatcher:  d,
		interval:    interval,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// Run drives the polling loop until ctx is cancelled. The first tick fires
// immediately so reminders that came due while the process was down are not
// delayed by a full interval.
func (s *Scheduler) Run(ctx context.Context) {
	zlog.Logger.Info().
		Dur("interval", s.interval).
		Int("concurrency", s.concurrency).
		Msg("scheduler started")

	s.Tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("scheduler stopped")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs one due-set scan and dispatch pass. A store failure aborts the
// whole tick; it is retried implicitly on the next timer fire. One record's
// dispatch failure never aborts processing of the remaining due records.
func (s *Scheduler) Tick(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	due, err := s.store.FindDue(ctx, now)
	if err != nil {
		zlog.Logger.Error().Err(err).Time("now", now).Msg("tick aborted: failed to list due notifications")
		return
	}

	if len(due) == 0 {
		return
	}

	var (
		wg        sync.WaitGroup
		delivered int64
		rejected  int64
		countMu   sync.Mutex
	)

	// Bounded pool: overlap network-bound gateway calls without
	// overwhelming the gateway.
	sem := make(chan struct{}, s.concurrency)

	for _, n := range due {
		wg.Add(1)
		sem <- struct{}{}

		go func(n model.Notification) {
			defer wg.Done()
			defer func() { <-sem }()
			defer func() {
				if r := recover(); r != nil {
					zlog.Logger.Error().
						Str("id", n.ID.String()).
						Interface("panic", r).
						Msg("dispatch panicked")
				}
			}()

			outcome := s.dispatcher.Dispatch(ctx, n)

			countMu.Lock()
			if outcome == dispatcher.Delivered {
				delivered++
			} else {
				rejected++
			}
			countMu.Unlock()
		}(n)
	}

	wg.Wait()

	zlog.Logger.Info().
		Time("now", now).
		Int("due", len(due)).
		Int64("delivered", delivered).
		Int64("rejected", rejected).
		Msg("tick processed")
}

// SetClock overrides the scheduler's clock. Tests use it to fast-forward
// logical time instead of waiting on wall-clock timers.
func (s *Scheduler) SetClock(now func() time.Time) {
	s.now = now
}
