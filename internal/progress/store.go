package progress

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/theirongolddev/vowbudget/internal/catalog"
	"github.com/theirongolddev/vowbudget/internal/model"
)

// Persister loads and saves the progression record.
type Persister interface {
	Load() (State, bool, error)
	Save(State) error
	Clear() error
}

// Store owns the progression state. Every mutation runs under one lock and is
// followed by a save; save failures are logged and the in-memory state stays
// authoritative.
type Store struct {
	mu      sync.RWMutex
	state   State
	persist Persister
	logger  *slog.Logger
}

// Open loads the persisted record (or starts from zero) and returns a store
// that writes back through p. A nil p keeps state in memory only.
func Open(p Persister, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{state: ZeroState(), persist: p, logger: logger}
	if p == nil {
		return s, nil
	}

	st, ok, err := p.Load()
	if err != nil {
		return nil, err
	}
	if ok {
		s.state = st.normalize()
	}
	return s, nil
}

// New returns an in-memory store.
func New() *Store {
	s, _ := Open(nil, nil)
	return s
}

// AddXP adds amount to the XP total. Negative amounts are ignored.
func (s *Store) AddXP(amount int) {
	if amount <= 0 {
		return
	}
	s.mutate(func(st *State) bool {
		st.XP += amount
		st.Level = LevelFor(st.XP)
		return true
	})
}

// UnlockAchievement records a once and grants its reward and the bonus XP.
// Unlocking an id that is already held does nothing.
func (s *Store) UnlockAchievement(a model.Achievement) {
	s.mutate(func(st *State) bool {
		if hasAchievement(st, a.ID) {
			return false
		}
		if a.Reward != nil {
			r := *a.Reward
			r.Claimed = false
			st.Rewards = append(st.Rewards, r)
			a.Reward = &r
		}
		st.Achievements = append(st.Achievements, a)
		st.XP += AchievementBonusXP
		st.Level = LevelFor(st.XP)
		return true
	})
}

// HasAchievement reports whether id has been unlocked.
func (s *Store) HasAchievement(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return hasAchievement(&s.state, id)
}

// ClaimReward marks every reward with rewardID claimed and appends rewardID
// to the claimed list. The list keeps duplicates.
func (s *Store) ClaimReward(rewardID string) {
	s.mutate(func(st *State) bool {
		for i := range st.Rewards {
			if st.Rewards[i].ID == rewardID {
				st.Rewards[i].Claimed = true
			}
		}
		st.ClaimedAchievements = append(st.ClaimedAchievements, rewardID)
		return true
	})
}

// HasUnclaimedRewards reports whether any reward is still unclaimed, unless
// budget_master has been claimed, which silences the prompt entirely.
func (s *Store) HasUnclaimedRewards() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pending := slices.ContainsFunc(s.state.Rewards, func(r model.Reward) bool { return !r.Claimed })
	return pending && !rewardPromptSilenced(&s.state)
}

// HasClaimedAchievement reports whether id is in the claimed list.
func (s *Store) HasClaimedAchievement(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.state.ClaimedAchievements, id)
}

// SetActiveDiscount replaces the active discount. nil clears it.
func (s *Store) SetActiveDiscount(d *model.ActiveDiscount) {
	s.mutate(func(st *State) bool {
		if d == nil {
			st.ActiveDiscount = nil
			return true
		}
		cp := *d
		st.ActiveDiscount = &cp
		return true
	})
}

// ClearActiveDiscount removes the active discount, if any.
func (s *Store) ClearActiveDiscount() {
	s.mutate(func(st *State) bool {
		if st.ActiveDiscount == nil {
			return false
		}
		st.ActiveDiscount = nil
		return true
	})
}

// ClearActiveDiscountIf clears the discount only if it is still the one
// identified by code and expiresAt. It reports whether it cleared anything.
func (s *Store) ClearActiveDiscountIf(code string, expiresAt time.Time) bool {
	cleared := false
	s.mutate(func(st *State) bool {
		d := st.ActiveDiscount
		if d == nil || d.Code != code || !d.ExpiresAt.Equal(expiresAt) {
			return false
		}
		st.ActiveDiscount = nil
		cleared = true
		return true
	})
	return cleared
}

// ActiveDiscount returns a copy of the active discount, or nil.
func (s *Store) ActiveDiscount() *model.ActiveDiscount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.ActiveDiscount == nil {
		return nil
	}
	d := *s.state.ActiveDiscount
	return &d
}

// XP returns the current XP total.
func (s *Store) XP() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.XP
}

// Level returns the level derived from the current XP.
func (s *Store) Level() int {
	return LevelFor(s.XP())
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Reset wipes the persisted record and returns the store to zero state.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persist != nil {
		if err := s.persist.Clear(); err != nil {
			return err
		}
	}
	s.state = ZeroState()
	return nil
}

// mutate applies fn under the write lock and saves when fn reports a change.
func (s *Store) mutate(fn func(st *State) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !fn(&s.state) || s.persist == nil {
		return
	}
	if err := s.persist.Save(s.state.clone()); err != nil {
		s.logger.Warn("saving progression state", "err", err)
	}
}

func hasAchievement(st *State, id string) bool {
	return slices.ContainsFunc(st.Achievements, func(a model.Achievement) bool { return a.ID == id })
}

// rewardPromptSilenced is true once budget_master shows up in the claimed
// list, whatever rewards are still pending.
func rewardPromptSilenced(st *State) bool {
	return slices.Contains(st.ClaimedAchievements, catalog.BudgetMaster)
}
