// Package progress is the gamification state container: XP, level,
// achievements, rewards and the single active discount.
package progress

import "github.com/theirongolddev/vowbudget/internal/model"

const (
	// XPPerLevel is the XP span of one level.
	XPPerLevel = 100
	// AchievementBonusXP is granted alongside every newly unlocked achievement.
	AchievementBonusXP = 50
	// StorageKey names the persisted progression record.
	StorageKey = "wedding-planner-storage"
)

// State is the persisted progression record.
type State struct {
	XP                  int                   `json:"xp"`
	Level               int                   `json:"level"`
	Achievements        []model.Achievement   `json:"achievements"`
	Rewards             []model.Reward        `json:"rewards"`
	ActiveDiscount      *model.ActiveDiscount `json:"activeDiscount"`
	ClaimedAchievements []string              `json:"claimedAchievements"`
}

// ZeroState is the state of a fresh install.
func ZeroState() State {
	return State{
		Level:               LevelFor(0),
		Achievements:        []model.Achievement{},
		Rewards:             []model.Reward{},
		ClaimedAchievements: []string{},
	}
}

// LevelFor derives the level from an XP total.
func LevelFor(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// LevelProgress is the fraction of the current level already earned, 0..1.
func LevelProgress(xp int) float64 {
	if xp < 0 {
		return 0
	}
	return float64(xp%XPPerLevel) / XPPerLevel
}

// XPToNextLevel is the XP still needed to reach the next level.
func XPToNextLevel(xp int) int {
	return LevelFor(xp)*XPPerLevel - xp
}

// normalize repairs a loaded record: nil slices become empty and the stored
// level is replaced by the one derived from xp.
func (s State) normalize() State {
	if s.XP < 0 {
		s.XP = 0
	}
	s.Level = LevelFor(s.XP)
	if s.Achievements == nil {
		s.Achievements = []model.Achievement{}
	}
	if s.Rewards == nil {
		s.Rewards = []model.Reward{}
	}
	if s.ClaimedAchievements == nil {
		s.ClaimedAchievements = []string{}
	}
	return s
}

func (s State) clone() State {
	out := s
	out.Achievements = make([]model.Achievement, len(s.Achievements))
	for i, a := range s.Achievements {
		if a.Reward != nil {
			r := *a.Reward
			a.Reward = &r
		}
		out.Achievements[i] = a
	}
	out.Rewards = append([]model.Reward{}, s.Rewards...)
	out.ClaimedAchievements = append([]string{}, s.ClaimedAchievements...)
	if s.ActiveDiscount != nil {
		d := *s.ActiveDiscount
		out.ActiveDiscount = &d
	}
	return out
}
