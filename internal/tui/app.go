// Package tui provides the interactive Bubble Tea dashboard for vowbudget.
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/theirongolddev/vowbudget/internal/cli"
	"github.com/theirongolddev/vowbudget/internal/expiry"
	"github.com/theirongolddev/vowbudget/internal/game"
	"github.com/theirongolddev/vowbudget/internal/planner"
	"github.com/theirongolddev/vowbudget/internal/progress"
	"github.com/theirongolddev/vowbudget/internal/store"
	"github.com/theirongolddev/vowbudget/internal/tui/components"
	"github.com/theirongolddev/vowbudget/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// EventSource lists journaled game events. *store.DB satisfies it.
type EventSource interface {
	RecentEvents(limit int) ([]store.Event, error)
}

// Deps are the services the dashboard drives.
type Deps struct {
	Progress *progress.Store
	Engine   *game.Engine
	Plans    planner.Persister
	Events   EventSource // optional
	Logger   *slog.Logger
	Now      func() time.Time
}

type editKind int

const (
	editNone editKind = iota
	editPercent
	editBudget
)

const (
	tabBreakdown = 0
	tabProgress  = 1
	tabRewards   = 2
)

// App is the root Bubble Tea model.
type App struct {
	deps    Deps
	session *planner.Session
	loadErr error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Estimate wizard (huh form), shown when there is no plan yet
	wizard     *huh.Form
	wizardVals *WizardValues

	// Breakdown editing
	cursor  int
	editing editKind
	input   textinput.Model

	// Rewards
	rewardCursor int
	lastPrize    *game.Prize
	remaining    time.Duration

	flash  string
	events []store.Event
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5
	historyLimit     = 8
)

// NewApp creates a new TUI app model. Without a saved plan it opens the
// estimate wizard first.
func NewApp(deps Deps) App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	a := App{deps: deps, input: newEditInput()}

	sess, err := planner.Load(deps.Plans, deps.Engine, deps.Logger)
	switch {
	case err == nil:
		a.session = sess
	case errors.Is(err, planner.ErrNoPlan):
		a.startWizard()
	default:
		a.loadErr = err
	}

	a.remaining = expiry.Remaining(deps.Progress.ActiveDiscount(), deps.Now())
	a.refreshEvents()
	return a
}

func newEditInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 12
	ti.Width = 14
	return ti
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		tickCmd(),
	}
	if a.wizard != nil {
		cmds = append(cmds, a.wizard.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.wizard != nil {
			a.wizard = a.wizard.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tickMsg:
		left, expired := expiry.Check(a.deps.Progress, time.Time(msg))
		a.remaining = left
		if expired {
			a.flash = "Your discount code has expired"
			a.refreshEvents()
		}
		cmd := tickCmd()
		if a.wizard != nil {
			m, wcmd := a.updateWizard(msg)
			return m, tea.Batch(cmd, wcmd)
		}
		return a, cmd

	case tea.MouseMsg:
		if a.wizard != nil || a.showHelp || a.editing != editNone {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return a, tea.Quit
		}
		if a.wizard != nil {
			return a.updateWizard(msg)
		}
		if a.editing != editNone {
			return a.updateEdit(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}
		a.flash = ""

		switch key {
		case "q":
			return a, tea.Quit
		case "left", "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "n":
			a.startWizard()
			if a.width > 0 {
				a.wizard = a.wizard.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.wizard.Init()
		}
		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}

		switch a.activeTab {
		case tabBreakdown:
			return a.updateBreakdownKeys(key)
		case tabRewards:
			return a.updateRewardsKeys(key)
		}
		return a, nil
	}

	// Forward unhandled messages to the wizard (cursor blinks, etc.)
	if a.wizard != nil {
		return a.updateWizard(msg)
	}
	if a.editing != editNone {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

// ─── Wizard ─────────────────────────────────────────────────────

func (a *App) startWizard() {
	a.wizardVals = NewWizardValues()
	a.wizard = NewWizardForm(a.wizardVals)
}

func (a App) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.wizard.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.wizard = f
	}

	switch a.wizard.State {
	case huh.StateCompleted:
		a.finishWizard()
		return a, nil
	case huh.StateAborted:
		a.wizard = nil
		if a.session == nil {
			return a, tea.Quit
		}
		return a, nil
	}
	return a, cmd
}

func (a *App) finishWizard() {
	a.wizard = nil
	answers, err := a.wizardVals.Answers()
	if err != nil {
		a.flash = err.Error()
		return
	}
	plan, unlocked, err := planner.Finish(answers, a.deps.Engine)
	if err != nil {
		a.flash = err.Error()
		return
	}

	a.session = planner.NewSession(plan, a.deps.Engine, a.deps.Plans, a.deps.Logger)
	a.loadErr = nil
	a.cursor = 0
	a.activeTab = tabBreakdown
	if err := a.session.Save(); err != nil {
		a.flash = err.Error()
	} else if unlocked {
		a.flash = "Achievement unlocked: Budget Master! Spin the wheel on the Rewards tab"
	} else {
		a.flash = "Your budget breakdown is ready"
	}
	a.refreshEvents()
}

// ─── Helpers ────────────────────────────────────────────────────

func (a *App) refreshEvents() {
	if a.deps.Events == nil {
		return
	}
	events, err := a.deps.Events.RecentEvents(historyLimit)
	if err != nil {
		a.deps.Logger.Warn("loading history", "error", err)
		return
	}
	a.events = events
}

// unlockedSince reports achievements gained after a count of before.
func (a *App) unlockedSince(before int) string {
	held := a.deps.Progress.Snapshot().Achievements
	if len(held) <= before {
		return ""
	}
	names := make([]string, 0, len(held)-before)
	for _, ach := range held[before:] {
		names = append(names, ach.Name)
	}
	return "Achievement unlocked: " + strings.Join(names, ", ")
}

func (a App) achievementCount() int {
	return len(a.deps.Progress.Snapshot().Achievements)
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(expiry.DefaultInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1
	}
	return -1
}

// ─── Views ──────────────────────────────────────────────────────

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.wizard != nil {
		return a.wizard.View()
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  vowbudget needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"b p r", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Move selection"},
		}},
		{"Breakdown", []struct{ key, desc string }{
			{"Enter e", "Set category percentage"},
			{"$", "Change total budget"},
			{"n", "Start a new estimate"},
		}},
		{"Rewards", []struct{ key, desc string }{
			{"s", "Spin the reward wheel"},
			{"Enter", "Claim selected reward"},
		}},
		{"General", []struct{ key, desc string }{
			{"Esc", "Cancel edit"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("♥ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.statusLeft(), a.statusRight())

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabBreakdown:
		content = a.renderBreakdownTab(cw)
	case tabProgress:
		content = a.renderProgressTab(cw)
	case tabRewards:
		content = a.renderRewardsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusLeft() string {
	switch {
	case a.editing == editPercent:
		return " Enter a percentage (1-100), Enter to apply, Esc to cancel"
	case a.editing == editBudget:
		return " Enter the new total budget, Enter to apply, Esc to cancel"
	case a.flash != "":
		return " " + a.flash
	}
	return ""
}

func (a App) statusRight() string {
	xp := a.deps.Progress.XP()
	right := fmt.Sprintf("Lv %d · %s", progress.LevelFor(xp), cli.FormatXP(xp))
	if d := a.deps.Progress.ActiveDiscount(); d != nil && a.remaining > 0 {
		right += fmt.Sprintf(" · %s %s", d.Code, cli.FormatCountdown(a.remaining))
	}
	if a.deps.Progress.HasUnclaimedRewards() {
		right += " · ★ reward waiting"
	}
	return right
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
