package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/vowbudget/internal/catalog"
	"github.com/theirongolddev/vowbudget/internal/cli"
	"github.com/theirongolddev/vowbudget/internal/model"
	"github.com/theirongolddev/vowbudget/internal/tui/components"
	"github.com/theirongolddev/vowbudget/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

func (a App) updateBreakdownKeys(key string) (tea.Model, tea.Cmd) {
	if a.session == nil {
		return a, nil
	}
	n := len(a.session.Plan().Categories)

	switch key {
	case "j", "down":
		if a.cursor < n-1 {
			a.cursor++
		}
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
	case "g":
		a.cursor = 0
	case "G":
		a.cursor = max(n-1, 0)
	case "enter", "e":
		cat := a.session.Plan().Categories[a.cursor]
		return a.startEdit(editPercent, strconv.Itoa(cat.Percentage))
	case "$":
		return a.startEdit(editBudget, a.session.Plan().Budget.String())
	}
	return a, nil
}

func (a App) startEdit(kind editKind, value string) (tea.Model, tea.Cmd) {
	a.editing = kind
	a.input.SetValue(value)
	a.input.CursorEnd()
	return a, a.input.Focus()
}

func (a App) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.editing = editNone
		a.input.Blur()
		return a, nil
	case "enter":
		kind := a.editing
		a.editing = editNone
		a.input.Blur()
		a.applyEdit(kind, strings.TrimSpace(a.input.Value()))
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) applyEdit(kind editKind, value string) {
	before := a.achievementCount()

	switch kind {
	case editPercent:
		cat := a.session.Plan().Categories[a.cursor]
		pct, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
		if err != nil {
			a.flash = "Not a number: " + value
			return
		}
		if err := a.session.EditCategory(cat.Name, pct); err != nil {
			a.flash = err.Error()
			return
		}
		updated, _ := a.session.Plan().Category(cat.Name)
		a.flash = fmt.Sprintf("%s set to %d%%, other categories rebalanced", cat.Name, updated.Percentage)

	case editBudget:
		amount, err := decimal.NewFromString(strings.NewReplacer("$", "", ",", "").Replace(value))
		if err != nil {
			a.flash = "Not an amount: " + value
			return
		}
		if err := a.session.SetBudget(amount); err != nil {
			a.flash = err.Error()
			return
		}
		a.flash = "Total budget set to " + cli.FormatMoney(amount)
	}

	if msg := a.unlockedSince(before); msg != "" {
		a.flash = msg
	}
	a.refreshEvents()
}

func (a App) renderBreakdownTab(cw int) string {
	t := theme.Active

	if a.loadErr != nil {
		return components.ContentCard("Breakdown", "Could not load your plan: "+a.loadErr.Error(), cw)
	}
	if a.session == nil {
		return components.ContentCard("Breakdown", "No plan yet. Press n to start an estimate.", cw)
	}

	plan := a.session.Plan()
	lines := a.session.Lines()

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Total Budget", Value: cli.FormatMoney(plan.Budget), Delta: budgetDelta(plan.InitialBudget, plan.Budget)},
		{Label: "Guests", Value: cli.FormatNumber(int64(plan.Guests))},
		{Label: "Per Guest", Value: cli.FormatMoney(a.session.PerGuest())},
		{Label: "Plan", Value: planLabel(plan.Mode), Delta: planDetail(plan.Style, plan.Season, plan.Venue)},
	}, cw))
	b.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	pctW, amtW := 5, 12
	nameW := 16
	barW := innerW - nameW - pctW - amtW - 6
	if barW < 8 {
		barW = 8
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover).Bold(true)
	moneyStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	maxPct := 0
	for _, c := range plan.Categories {
		maxPct = max(maxPct, c.Percentage)
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("  %-*s %*s %*s", nameW, "Category", pctW, "Share", amtW, "Amount")))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")

	edited := make(map[string]bool, len(plan.Edited))
	for _, name := range plan.Edited {
		edited[name] = true
	}

	for i, line := range lines {
		style := rowStyle
		marker := "  "
		if i == a.cursor {
			style = selStyle
			marker = "▸ "
		}
		name := line.Category.Name
		if edited[name] {
			name += " ✎"
		}
		body.WriteString(style.Render(fmt.Sprintf("%s%-*s %*s", marker, nameW, truncStr(name, nameW), pctW, cli.FormatPercent(line.Category.Percentage))))
		body.WriteString(moneyStyle.Render(fmt.Sprintf(" %*s", amtW, cli.FormatMoney(line.Amount))))
		body.WriteString(spaceStyle.Render("  "))
		body.WriteString(components.ShareBar(line.Category.Percentage, maxPct, barW))
		body.WriteString("\n")
	}

	if a.editing != editNone {
		label := "New percentage"
		if a.editing == editBudget {
			label = "New total budget"
		}
		body.WriteString("\n")
		body.WriteString(headerStyle.Render(label+": ") + a.input.View())
	} else if desc := selectedDescription(plan.Categories, a.cursor); desc != "" {
		body.WriteString("\n")
		body.WriteString(mutedStyle.Render(desc))
	}

	b.WriteString(components.ContentCard("Budget Breakdown", body.String(), cw))
	return b.String()
}

func budgetDelta(initial, current decimal.Decimal) string {
	if initial.Equal(current) || !initial.IsPositive() {
		return ""
	}
	diff := current.Sub(initial)
	pct := diff.Div(initial).Mul(decimal.NewFromInt(100)).Round(1)
	sign := "+"
	if diff.IsNegative() {
		sign = ""
	}
	return sign + pct.String() + "% vs first estimate"
}

func planLabel(mode model.PlanningMode) string {
	if mode == model.ModePersonalized {
		return "Personalized"
	}
	return "Quick"
}

func planDetail(style, season, venue string) string {
	var parts []string
	if o, ok := catalog.Option(catalog.WeddingStyles, style); ok {
		parts = append(parts, o.Label)
	}
	if o, ok := catalog.Option(catalog.Seasons, season); ok {
		parts = append(parts, o.Label)
	}
	if o, ok := catalog.Option(catalog.Venues, venue); ok {
		parts = append(parts, o.Label)
	}
	return strings.Join(parts, " · ")
}

func selectedDescription(cats []model.BudgetCategory, i int) string {
	if i < 0 || i >= len(cats) {
		return ""
	}
	return cats[i].Description
}
