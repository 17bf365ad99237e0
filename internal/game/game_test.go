package game

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/vowbudget/internal/catalog"
	"github.com/theirongolddev/vowbudget/internal/model"
	"github.com/theirongolddev/vowbudget/internal/progress"
	"github.com/theirongolddev/vowbudget/internal/store"
)

var fixedNow = time.Date(2026, 10, 19, 18, 30, 0, 0, time.UTC)

type recorder struct {
	events []store.Event
	err    error
}

func (r *recorder) RecordEvent(ev store.Event) (store.Event, error) {
	r.events = append(r.events, ev)
	return ev, r.err
}

func (r *recorder) kinds() []string {
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind
	}
	return out
}

func newEngine(t *testing.T) (*Engine, *recorder) {
	t.Helper()
	rec := &recorder{}
	e := New(progress.New(), rec, nil)
	e.Now = func() time.Time { return fixedNow }
	e.Rand = rand.New(rand.NewPCG(1, 2))
	return e, rec
}

func TestStepAdvanced(t *testing.T) {
	e, rec := newEngine(t)

	e.StepAdvanced(1)
	assert.Zero(t, e.Store.XP())

	e.StepAdvanced(2)
	e.StepAdvanced(3)
	assert.Equal(t, 40, e.Store.XP())
	require.Len(t, rec.events, 2)
	assert.Equal(t, "step 3", rec.events[1].Detail)
	assert.Equal(t, 40, rec.events[1].XP)
	assert.Equal(t, fixedNow, rec.events[1].At)
}

func TestWizardCompleted_OnlyFirstTime(t *testing.T) {
	e, rec := newEngine(t)

	assert.True(t, e.WizardCompleted())
	assert.Equal(t, progress.AchievementBonusXP+CompletionXP, e.Store.XP())
	assert.Equal(t, 2, e.Store.Level())
	assert.True(t, e.Store.HasAchievement(catalog.BudgetMaster))
	assert.True(t, e.Store.HasUnclaimedRewards())

	assert.False(t, e.WizardCompleted())
	assert.Equal(t, 150, e.Store.XP())
	assert.Equal(t, []string{KindAchievement, KindComplete}, rec.kinds())
}

func TestCategoriesCustomized(t *testing.T) {
	e, _ := newEngine(t)
	cats := []model.BudgetCategory{{Name: "Venue"}, {Name: "Catering"}, {Name: "Music"}}

	assert.False(t, e.CategoriesCustomized([]string{"Venue", "Music"}, cats))
	assert.False(t, e.Store.HasAchievement(catalog.DetailOriented))

	assert.True(t, e.CategoriesCustomized([]string{"Venue", "Music", "Catering"}, cats))
	assert.True(t, e.Store.HasAchievement(catalog.DetailOriented))
	assert.Equal(t, progress.AchievementBonusXP, e.Store.XP())

	assert.False(t, e.CategoriesCustomized([]string{"Venue", "Music", "Catering"}, cats))
	assert.False(t, e.CategoriesCustomized(nil, nil))
}

func TestBudgetAdjusted(t *testing.T) {
	e, _ := newEngine(t)
	initial := decimal.NewFromInt(40000)

	assert.False(t, e.BudgetAdjusted(initial, decimal.NewFromInt(36001)))
	assert.False(t, e.BudgetAdjusted(decimal.Zero, decimal.Zero))
	assert.True(t, e.BudgetAdjusted(initial, decimal.NewFromInt(36000)))
	assert.True(t, e.Store.HasAchievement(catalog.SmartSaver))
	assert.False(t, e.BudgetAdjusted(initial, decimal.NewFromInt(1000)))

	snap := e.Store.Snapshot()
	require.Len(t, snap.Rewards, 1)
	assert.Equal(t, "WEDPLAN15", snap.Rewards[0].Code)
}

func TestJournalErrorDoesNotBlock(t *testing.T) {
	e, rec := newEngine(t)
	rec.err = errors.New("disk full")

	e.StepAdvanced(2)
	assert.Equal(t, StepXP, e.Store.XP())
}

func TestNilJournal(t *testing.T) {
	e := New(progress.New(), nil, nil)
	e.StepAdvanced(4)
	assert.Equal(t, StepXP, e.Store.XP())
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Reached step 3", Describe(KindStep, stepDetail(3)))
	assert.Equal(t, "Finished the personalized estimate", Describe(KindComplete, ""))
	assert.Equal(t, "Unlocked Budget Master", Describe(KindAchievement, catalog.BudgetMaster))
	assert.Equal(t, "Unlocked mystery", Describe(KindAchievement, "mystery"))
	assert.Equal(t, "Spun the wheel: 15% OFF", Describe(KindSpin, "15% OFF"))
	assert.Equal(t, "other x", Describe("other", "x"))
}
