package planner

import (
	"github.com/theirongolddev/vowbudget/internal/game"
	"github.com/theirongolddev/vowbudget/internal/model"
)

// PersonalizedSteps counts the personalized wizard screens: budget, guests,
// style, season, venue and the results page.
const PersonalizedSteps = 6

// Finish builds a plan from a finished wizard and applies the game rewards
// the flow earns. Only the personalized flow earns XP and Budget Master.
// It reports whether Budget Master was unlocked by this run.
func Finish(a Answers, engine *game.Engine) (*Plan, bool, error) {
	p, err := NewPlan(a)
	if err != nil {
		return nil, false, err
	}
	if engine == nil || p.Mode != model.ModePersonalized {
		return p, false, nil
	}
	for step := 2; step <= PersonalizedSteps; step++ {
		engine.StepAdvanced(step)
	}
	return p, engine.WizardCompleted(), nil
}
