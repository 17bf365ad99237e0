// Package game turns wizard and reward-wheel events into progression changes.
package game

import (
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/vowbudget/internal/catalog"
	"github.com/theirongolddev/vowbudget/internal/model"
	"github.com/theirongolddev/vowbudget/internal/progress"
	"github.com/theirongolddev/vowbudget/internal/store"
)

const (
	// StepXP is granted each time the wizard reaches a step after the first.
	StepXP = 20
	// CompletionXP is granted on top of the achievement bonus when the
	// first breakdown is completed.
	CompletionXP = 100
	// DefaultDiscountTTL is how long a won discount code stays valid.
	DefaultDiscountTTL = 15 * time.Minute
)

// Event kinds written to the journal.
const (
	KindStep        = "step"
	KindComplete    = "complete"
	KindAchievement = "achievement"
	KindSpin        = "spin"
)

var smartSaverThreshold = decimal.NewFromFloat(0.9)

// Journal records game events. *store.DB satisfies it.
type Journal interface {
	RecordEvent(ev store.Event) (store.Event, error)
}

// Engine applies game rules to a progression store.
type Engine struct {
	Store       *progress.Store
	Journal     Journal
	Logger      *slog.Logger
	Now         func() time.Time
	Rand        *rand.Rand
	DiscountTTL time.Duration
}

// New returns an engine with the default clock, randomness and discount TTL.
// journal may be nil.
func New(s *progress.Store, journal Journal, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		Store:       s,
		Journal:     journal,
		Logger:      logger,
		Now:         time.Now,
		Rand:        rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
		DiscountTTL: DefaultDiscountTTL,
	}
}

// StepAdvanced grants step XP when the personalized wizard reaches step.
// Showing the first step earns nothing.
func (e *Engine) StepAdvanced(step int) {
	if step <= 1 {
		return
	}
	e.Store.AddXP(StepXP)
	e.record(KindStep, stepDetail(step))
}

// WizardCompleted unlocks Budget Master and its completion XP the first time
// a breakdown is finished. It reports whether this call unlocked it.
func (e *Engine) WizardCompleted() bool {
	if e.Store.HasAchievement(catalog.BudgetMaster) {
		return false
	}
	e.unlock(catalog.BudgetMaster)
	e.Store.AddXP(CompletionXP)
	e.record(KindComplete, catalog.BudgetMaster)
	return true
}

// CategoriesCustomized unlocks Detail Oriented once every category in all
// appears in edited.
func (e *Engine) CategoriesCustomized(edited []string, all []model.BudgetCategory) bool {
	if len(all) == 0 || e.Store.HasAchievement(catalog.DetailOriented) {
		return false
	}
	seen := make(map[string]bool, len(edited))
	for _, name := range edited {
		seen[name] = true
	}
	for _, c := range all {
		if !seen[c.Name] {
			return false
		}
	}
	e.unlock(catalog.DetailOriented)
	return true
}

// BudgetAdjusted unlocks Smart Saver when current is at least 10% below
// initial.
func (e *Engine) BudgetAdjusted(initial, current decimal.Decimal) bool {
	if !initial.IsPositive() || e.Store.HasAchievement(catalog.SmartSaver) {
		return false
	}
	if current.GreaterThan(initial.Mul(smartSaverThreshold)) {
		return false
	}
	e.unlock(catalog.SmartSaver)
	return true
}

func (e *Engine) unlock(id string) {
	a, ok := catalog.Achievement(id)
	if !ok {
		e.Logger.Warn("unknown achievement", "id", id)
		return
	}
	e.Store.UnlockAchievement(a)
	e.record(KindAchievement, id)
}

func (e *Engine) record(kind, detail string) {
	if e.Journal == nil {
		return
	}
	_, err := e.Journal.RecordEvent(store.Event{
		Kind:   kind,
		Detail: detail,
		XP:     e.Store.XP(),
		Level:  e.Store.Level(),
		At:     e.now(),
	})
	if err != nil {
		e.Logger.Warn("journal write failed", "kind", kind, "error", err)
	}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func stepDetail(step int) string {
	return "step " + strconv.Itoa(step)
}

// Describe renders a journaled event for display.
func Describe(kind, detail string) string {
	switch kind {
	case KindStep:
		return "Reached " + detail
	case KindComplete:
		return "Finished the personalized estimate"
	case KindAchievement:
		if a, ok := catalog.Achievement(detail); ok {
			return "Unlocked " + a.Name
		}
		return "Unlocked " + detail
	case KindSpin:
		return "Spun the wheel: " + detail
	}
	return kind + " " + detail
}
