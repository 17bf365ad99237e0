// Package expiry watches the active discount and clears it once its time is up.
package expiry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/theirongolddev/vowbudget/internal/model"
	"github.com/theirongolddev/vowbudget/internal/progress"
)

// DefaultInterval is the polling cadence of a Watcher.
const DefaultInterval = time.Second

// Remaining returns the whole seconds left on d at now, never negative.
// A nil discount has nothing left.
func Remaining(d *model.ActiveDiscount, now time.Time) time.Duration {
	if d == nil {
		return 0
	}
	left := d.ExpiresAt.Sub(now).Truncate(time.Second)
	if left < 0 {
		return 0
	}
	return left
}

// Check polls the store once. When the active discount has no whole seconds
// left it is cleared, as long as the store still holds that same discount.
// It reports the remaining time and whether this call expired the discount.
func Check(store *progress.Store, now time.Time) (time.Duration, bool) {
	d := store.ActiveDiscount()
	if d == nil {
		return 0, false
	}
	left := Remaining(d, now)
	if left > 0 {
		return left, false
	}
	return 0, store.ClearActiveDiscountIf(d.Code, d.ExpiresAt)
}

// Watcher runs Check on a ticker until the discount disappears, expires, or
// the context is cancelled.
type Watcher struct {
	Store    *progress.Store
	Interval time.Duration
	Now      func() time.Time
	Logger   *slog.Logger

	// OnTick is called after every poll that leaves the discount active.
	OnTick func(remaining time.Duration)
	// OnExpire is called once with the discount this watcher cleared.
	OnExpire func(d model.ActiveDiscount)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Start launches the polling loop, replacing any loop this watcher already
// runs. The returned channel closes when the loop exits.
func (w *Watcher) Start(ctx context.Context) <-chan struct{} {
	w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	w.mu.Lock()
	w.cancel = cancel
	w.done = done
	w.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()
		w.run(ctx)
	}()
	return done
}

// Stop cancels the running loop, if any, and waits for it to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Run blocks in the polling loop until it finishes.
func (w *Watcher) Run(ctx context.Context) {
	w.run(ctx)
}

func (w *Watcher) run(ctx context.Context) {
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if !w.poll(logger) {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !w.poll(logger) {
				return
			}
		}
	}
}

// poll reports whether the loop should keep going.
func (w *Watcher) poll(logger *slog.Logger) bool {
	d := w.Store.ActiveDiscount()
	if d == nil {
		return false
	}

	left, expired := Check(w.Store, w.now())
	if expired {
		logger.Info("discount expired", "code", d.Code)
		if w.OnExpire != nil {
			w.OnExpire(*d)
		}
		return false
	}
	if left == 0 {
		// Replaced by a newer discount between the read and the clear.
		return w.Store.ActiveDiscount() != nil
	}
	if w.OnTick != nil {
		w.OnTick(left)
	}
	return true
}

func (w *Watcher) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}
