package expiry

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/vowbudget/internal/model"
	"github.com/theirongolddev/vowbudget/internal/progress"
)

var base = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func TestRemaining(t *testing.T) {
	d := &model.ActiveDiscount{Code: "WEDDING15", ExpiresAt: base.Add(90 * time.Second)}

	assert.Equal(t, 90*time.Second, Remaining(d, base))
	assert.Equal(t, 89*time.Second, Remaining(d, base.Add(500*time.Millisecond)))
	assert.Equal(t, time.Duration(0), Remaining(d, base.Add(89*time.Second+time.Millisecond)))
	assert.Equal(t, time.Duration(0), Remaining(d, base.Add(time.Hour)))
	assert.Equal(t, time.Duration(0), Remaining(nil, base))
}

func TestCheck_ClearsOnlyWhenNoSecondsLeft(t *testing.T) {
	s := progress.New()
	s.SetActiveDiscount(&model.ActiveDiscount{Option: "5% OFF", Code: "WEDDING5", ExpiresAt: base.Add(2 * time.Second)})

	left, expired := Check(s, base.Add(time.Second))
	assert.Equal(t, time.Second, left)
	assert.False(t, expired)
	assert.NotNil(t, s.ActiveDiscount())

	left, expired = Check(s, base.Add(1500*time.Millisecond))
	assert.Zero(t, left)
	assert.True(t, expired)
	assert.Nil(t, s.ActiveDiscount())

	_, expired = Check(s, base.Add(time.Hour))
	assert.False(t, expired)
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(time.Second)
	return t
}

func TestWatcher_ExpiresDiscount(t *testing.T) {
	s := progress.New()
	s.SetActiveDiscount(&model.ActiveDiscount{Option: "25% OFF", Code: "WEDDING25", ExpiresAt: base.Add(3 * time.Second)})

	var ticks []time.Duration
	var expiredCode string
	w := &Watcher{
		Store:    s,
		Interval: time.Millisecond,
		Now:      (&clock{now: base}).Now,
		OnTick:   func(left time.Duration) { ticks = append(ticks, left) },
		OnExpire: func(d model.ActiveDiscount) { expiredCode = d.Code },
	}

	select {
	case <-w.Start(context.Background()):
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not finish")
	}

	assert.Equal(t, []time.Duration{3 * time.Second, 2 * time.Second, time.Second}, ticks)
	assert.Equal(t, "WEDDING25", expiredCode)
	assert.Nil(t, s.ActiveDiscount())
}

func TestWatcher_ExitsWithoutDiscount(t *testing.T) {
	w := &Watcher{Store: progress.New(), Interval: time.Millisecond}

	select {
	case <-w.Start(context.Background()):
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not exit")
	}
}

func TestWatcher_StopCancelsLoop(t *testing.T) {
	s := progress.New()
	s.SetActiveDiscount(&model.ActiveDiscount{Code: "WEDDING5", ExpiresAt: base.Add(time.Hour)})

	w := &Watcher{Store: s, Interval: time.Millisecond, Now: func() time.Time { return base }}
	done := w.Start(context.Background())
	w.Stop()

	select {
	case <-done:
	default:
		t.Fatal("Stop returned before the loop exited")
	}
	require.NotNil(t, s.ActiveDiscount())
}

func TestWatcher_RestartReplacesLoop(t *testing.T) {
	s := progress.New()
	s.SetActiveDiscount(&model.ActiveDiscount{Code: "WEDDING5", ExpiresAt: base.Add(time.Hour)})

	w := &Watcher{Store: s, Interval: time.Millisecond, Now: func() time.Time { return base }}
	first := w.Start(context.Background())
	second := w.Start(context.Background())

	select {
	case <-first:
	default:
		t.Fatal("first loop still running after restart")
	}

	w.Stop()
	<-second
}

func TestWatcher_ContextCancel(t *testing.T) {
	s := progress.New()
	s.SetActiveDiscount(&model.ActiveDiscount{Code: "WEDDING5", ExpiresAt: base.Add(time.Hour)})

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{Store: s, Interval: time.Millisecond, Now: func() time.Time { return base }}
	done := w.Start(ctx)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher ignored cancellation")
	}
}
