package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/vowbudget/internal/catalog"
	"github.com/theirongolddev/vowbudget/internal/cli"
	"github.com/theirongolddev/vowbudget/internal/game"
	"github.com/theirongolddev/vowbudget/internal/progress"
	"github.com/theirongolddev/vowbudget/internal/tui/components"
	"github.com/theirongolddev/vowbudget/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderProgressTab(cw int) string {
	t := theme.Active
	snap := a.deps.Progress.Snapshot()
	all := catalog.Achievements()

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Level", Value: fmt.Sprintf("%d", snap.Level)},
		{Label: "Experience", Value: cli.FormatXP(snap.XP)},
		{Label: "Next Level", Value: cli.FormatXP(progress.XPToNextLevel(snap.XP)), Delta: "to go"},
		{Label: "Achievements", Value: fmt.Sprintf("%d / %d", len(snap.Achievements), len(all))},
	}, cw))
	b.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Level %d", snap.Level),
		components.XPBar(progress.LevelProgress(snap.XP), max(innerW-6, 10)),
		cw,
	))
	b.WriteString("\n")

	unlockedStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface).Bold(true)
	lockedStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	held := make(map[string]bool, len(snap.Achievements))
	for _, ach := range snap.Achievements {
		held[ach.ID] = true
	}

	var achBody strings.Builder
	for i, ach := range all {
		if held[ach.ID] {
			achBody.WriteString(unlockedStyle.Render(fmt.Sprintf("%s %s", ach.Icon, ach.Name)))
		} else {
			achBody.WriteString(lockedStyle.Render("🔒 " + ach.Name))
		}
		achBody.WriteString(descStyle.Render("  " + ach.Description))
		if i < len(all)-1 {
			achBody.WriteString("\n")
		}
	}

	widths := components.LayoutRow(cw, 2)
	achCard := components.ContentCard("Achievements", achBody.String(), widths[0])
	historyCard := components.ContentCard("Recent Activity", a.renderHistory(components.CardInnerWidth(widths[1])), widths[1])
	b.WriteString(components.CardRow([]string{achCard, historyCard}))

	return b.String()
}

func (a App) renderHistory(width int) string {
	t := theme.Active
	if len(a.events) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render("Nothing yet")
	}

	whenStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	now := a.deps.Now()
	rows := make([]string, 0, len(a.events))
	for _, ev := range a.events {
		when := fmt.Sprintf("%-9s", cli.FormatAgo(ev.At, now))
		rows = append(rows, whenStyle.Render(when)+textStyle.Render(truncStr(game.Describe(ev.Kind, ev.Detail), width-10)))
	}
	return strings.Join(rows, "\n")
}
