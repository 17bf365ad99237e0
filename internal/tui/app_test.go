package tui

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/vowbudget/internal/allocation"
	"github.com/theirongolddev/vowbudget/internal/catalog"
	"github.com/theirongolddev/vowbudget/internal/game"
	"github.com/theirongolddev/vowbudget/internal/model"
	"github.com/theirongolddev/vowbudget/internal/planner"
	"github.com/theirongolddev/vowbudget/internal/progress"
	"github.com/theirongolddev/vowbudget/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

var testNow = time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)

type memPlans struct {
	plan  *planner.Plan
	saves int
}

func (m *memPlans) LoadPlan() (*planner.Plan, bool, error) {
	if m.plan == nil {
		return nil, false, nil
	}
	return m.plan.Clone(), true, nil
}

func (m *memPlans) SavePlan(p *planner.Plan) error {
	m.plan = p.Clone()
	m.saves++
	return nil
}

func testDeps(t *testing.T, withPlan bool) (Deps, *memPlans) {
	t.Helper()
	ps := progress.New()
	engine := game.New(ps, nil, nil)
	engine.Now = func() time.Time { return testNow }
	engine.Rand = rand.New(rand.NewPCG(7, 7))

	plans := &memPlans{}
	if withPlan {
		v := NewWizardValues()
		answers, err := v.Answers()
		if err != nil {
			t.Fatal(err)
		}
		p, err := planner.NewPlan(answers)
		if err != nil {
			t.Fatal(err)
		}
		plans.plan = p
	}
	return Deps{
		Progress: ps,
		Engine:   engine,
		Plans:    plans,
		Now:      func() time.Time { return testNow },
	}, plans
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func send(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	app, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T", m)
	}
	return app
}

func TestNewAppWithoutPlanOpensWizard(t *testing.T) {
	deps, _ := testDeps(t, false)
	a := NewApp(deps)
	if a.wizard == nil {
		t.Fatal("expected the estimate wizard")
	}
	if a.session != nil {
		t.Fatal("session should be empty")
	}
}

func TestFinishWizardCreatesPlan(t *testing.T) {
	deps, plans := testDeps(t, false)
	a := NewApp(deps)
	a.wizardVals.Mode = string(model.ModePersonalized)
	a.wizardVals.Style, a.wizardVals.Season, a.wizardVals.Venue = "traditional", "summer", "hotel"

	a.finishWizard()

	if a.session == nil || plans.saves != 1 {
		t.Fatalf("session=%v saves=%d", a.session, plans.saves)
	}
	if !deps.Progress.HasAchievement(catalog.BudgetMaster) {
		t.Error("personalized finish should unlock Budget Master")
	}
	if !strings.Contains(a.flash, "Budget Master") {
		t.Errorf("flash = %q", a.flash)
	}
}

func TestEditCategoryFromKeys(t *testing.T) {
	deps, plans := testDeps(t, true)
	a := NewApp(deps)

	a = send(t, a, keyRune('e'))
	if a.editing != editPercent {
		t.Fatalf("editing = %v, want percent", a.editing)
	}
	if got := a.input.Value(); got != "30" {
		t.Errorf("input prefilled with %q, want 30", got)
	}

	a.input.SetValue("40")
	a = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	if a.editing != editNone {
		t.Error("still editing after enter")
	}
	venue, _ := plans.plan.Category("Venue")
	if venue.Percentage != 40 {
		t.Errorf("Venue = %d, want 40", venue.Percentage)
	}
	if total := allocation.Total(plans.plan.Categories); total != 100 {
		t.Errorf("total = %d, want 100", total)
	}
	if !strings.Contains(a.flash, "Venue set to 40%") {
		t.Errorf("flash = %q", a.flash)
	}
}

func TestEditRejectsBadInput(t *testing.T) {
	deps, plans := testDeps(t, true)
	a := NewApp(deps)

	a = send(t, a, keyRune('e'))
	a.input.SetValue("abc")
	a = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	if plans.saves != 0 {
		t.Errorf("saves = %d, want 0", plans.saves)
	}
	if !strings.Contains(a.flash, "Not a number") {
		t.Errorf("flash = %q", a.flash)
	}
}

func TestEscCancelsEdit(t *testing.T) {
	deps, plans := testDeps(t, true)
	a := NewApp(deps)

	a = send(t, a, keyRune('$'))
	if a.editing != editBudget {
		t.Fatalf("editing = %v, want budget", a.editing)
	}
	a = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.editing != editNone || plans.saves != 0 {
		t.Errorf("editing=%v saves=%d", a.editing, plans.saves)
	}
}

func TestTickExpiresDiscount(t *testing.T) {
	deps, _ := testDeps(t, true)
	deps.Progress.SetActiveDiscount(&model.ActiveDiscount{Option: "5% OFF", Code: "WEDDING5", ExpiresAt: testNow.Add(2 * time.Second)})
	a := NewApp(deps)
	if a.remaining != 2*time.Second {
		t.Fatalf("remaining = %v, want 2s", a.remaining)
	}

	a = send(t, a, tickMsg(testNow.Add(time.Second)))
	if a.remaining != time.Second || deps.Progress.ActiveDiscount() == nil {
		t.Fatalf("after 1s: remaining=%v", a.remaining)
	}

	a = send(t, a, tickMsg(testNow.Add(2*time.Second)))
	if deps.Progress.ActiveDiscount() != nil {
		t.Fatal("discount should be cleared")
	}
	if !strings.Contains(a.flash, "expired") {
		t.Errorf("flash = %q", a.flash)
	}
}

func TestSpinFromRewardsTab(t *testing.T) {
	deps, _ := testDeps(t, true)
	a := NewApp(deps)

	a = send(t, a, keyRune('r'))
	if a.activeTab != tabRewards {
		t.Fatalf("activeTab = %d, want rewards", a.activeTab)
	}

	a = send(t, a, keyRune('s'))
	if a.lastPrize != nil {
		t.Fatal("wheel should be locked before Budget Master")
	}

	deps.Engine.WizardCompleted()
	a = send(t, a, keyRune('s'))
	if a.lastPrize == nil {
		t.Fatal("expected a prize")
	}
	if !deps.Progress.HasClaimedAchievement(catalog.BudgetMaster) {
		t.Error("spin should record the Budget Master claim")
	}
	if game.IsDiscount(a.lastPrize.Slice) && deps.Progress.ActiveDiscount() == nil {
		t.Error("discount slice should set an active discount")
	}
}

func TestClaimRewardFromRewardsTab(t *testing.T) {
	deps, _ := testDeps(t, true)
	deps.Engine.WizardCompleted()
	a := NewApp(deps)
	a.activeTab = tabRewards

	a = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	rewards := deps.Progress.Snapshot().Rewards
	if len(rewards) != 1 || !rewards[0].Claimed {
		t.Fatalf("rewards = %+v", rewards)
	}
	if !strings.Contains(a.flash, "Claimed") {
		t.Errorf("flash = %q", a.flash)
	}
}

func TestViewRendersEachTab(t *testing.T) {
	deps, _ := testDeps(t, true)
	a := NewApp(deps)
	a = send(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})

	want := []string{"Budget Breakdown", "Achievements", "Reward Wheel"}
	for tab, text := range want {
		a.activeTab = tab
		if out := a.View(); !strings.Contains(out, text) {
			t.Errorf("tab %d view missing %q", tab, text)
		}
	}
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 0
		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			if got := a.tabAtX(pos + w/2); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, pos+w/2, got, i)
			}
			pos += w + 1
		}
	}
}
