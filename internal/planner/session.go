package planner

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/vowbudget/internal/allocation"
	"github.com/theirongolddev/vowbudget/internal/catalog"
	"github.com/theirongolddev/vowbudget/internal/game"
)

// Persister loads and saves the current plan.
type Persister interface {
	LoadPlan() (*Plan, bool, error)
	SavePlan(*Plan) error
}

// Session edits one plan and reports the edits to the game engine.
type Session struct {
	plan    *Plan
	engine  *game.Engine
	persist Persister
	logger  *slog.Logger
}

// NewSession wraps plan. engine and persist may be nil.
func NewSession(plan *Plan, engine *game.Engine, persist Persister, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{plan: plan, engine: engine, persist: persist, logger: logger}
}

// Load opens the persisted plan. It returns ErrNoPlan when there is none.
func Load(persist Persister, engine *game.Engine, logger *slog.Logger) (*Session, error) {
	p, ok, err := persist.LoadPlan()
	if err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	if !ok || p == nil {
		return nil, ErrNoPlan
	}
	if err := ValidatePlan(p); err != nil {
		return nil, fmt.Errorf("stored plan: %w", err)
	}
	return NewSession(p, engine, persist, logger), nil
}

// Plan returns a copy of the current plan.
func (s *Session) Plan() *Plan {
	return s.plan.Clone()
}

// Save writes the plan through the persister.
func (s *Session) Save() error {
	return s.save(s.plan)
}

func (s *Session) save(p *Plan) error {
	if s.persist == nil {
		return nil
	}
	if err := s.persist.SavePlan(p); err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}
	return nil
}

// commit saves next and makes it the current plan. On failure the current
// plan is left untouched.
func (s *Session) commit(next *Plan) error {
	if err := s.save(next); err != nil {
		return err
	}
	s.plan = next
	return nil
}

// EditCategory sets one category's share and rebalances the rest.
func (s *Session) EditCategory(name string, percent float64) error {
	if err := ValidateEdit(name, percent); err != nil {
		return err
	}
	cats, err := allocation.Recompute(s.plan.Categories, name, percent)
	if err != nil {
		return err
	}
	next := s.plan.Clone()
	next.Categories = cats
	next.markEdited(name)
	if err := s.commit(next); err != nil {
		return err
	}

	if s.engine != nil {
		if s.engine.CategoriesCustomized(s.plan.Edited, s.plan.Categories) {
			s.logger.Info("achievement unlocked", "id", catalog.DetailOriented)
		}
	}
	return nil
}

// SetBudget changes the total budget.
func (s *Session) SetBudget(amount decimal.Decimal) error {
	if err := ValidateBudget(amount); err != nil {
		return err
	}
	next := s.plan.Clone()
	next.Budget = amount
	if err := s.commit(next); err != nil {
		return err
	}

	if s.engine != nil {
		if s.engine.BudgetAdjusted(s.plan.InitialBudget, amount) {
			s.logger.Info("achievement unlocked", "id", catalog.SmartSaver)
		}
	}
	return nil
}

// SetGuests changes the guest count.
func (s *Session) SetGuests(n int) error {
	if n < 1 {
		return fmt.Errorf("invalid input: guests must be at least 1")
	}
	next := s.plan.Clone()
	next.Guests = n
	return s.commit(next)
}

// Lines returns the dollar split of the current plan.
func (s *Session) Lines() []allocation.Line {
	return allocation.Amounts(s.plan.Budget, s.plan.Categories)
}

// PerGuest returns the budget per guest.
func (s *Session) PerGuest() decimal.Decimal {
	return allocation.PerGuest(s.plan.Budget, s.plan.Guests)
}
