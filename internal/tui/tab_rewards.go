package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/vowbudget/internal/game"
	"github.com/theirongolddev/vowbudget/internal/model"
	"github.com/theirongolddev/vowbudget/internal/tui/components"
	"github.com/theirongolddev/vowbudget/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateRewardsKeys(key string) (tea.Model, tea.Cmd) {
	rewards := a.deps.Progress.Snapshot().Rewards

	switch key {
	case "j", "down":
		if a.rewardCursor < len(rewards)-1 {
			a.rewardCursor++
		}
	case "k", "up":
		if a.rewardCursor > 0 {
			a.rewardCursor--
		}
	case "enter", "c":
		if a.rewardCursor < len(rewards) {
			r := rewards[a.rewardCursor]
			a.deps.Progress.ClaimReward(r.ID)
			a.flash = "Claimed: " + r.Title
			if r.Code != "" {
				a.flash += " (code " + r.Code + ")"
			}
		}
	case "s":
		a.spin()
	}
	return a, nil
}

func (a *App) spin() {
	if err := a.deps.Engine.CanSpin(); err != nil {
		a.flash = err.Error()
		return
	}
	prize, err := a.deps.Engine.ApplySpin(a.deps.Engine.Spin())
	if err != nil {
		a.flash = err.Error()
		return
	}
	a.lastPrize = &prize
	if prize.Discount != nil {
		a.remaining = a.deps.Engine.DiscountTTL
		a.flash = fmt.Sprintf("You won %s! Use code %s", prize.Slice, prize.Discount.Code)
	} else {
		a.flash = "You won the " + prize.Slice
	}
	a.refreshEvents()
}

func (a App) renderRewardsTab(cw int) string {
	t := theme.Active
	snap := a.deps.Progress.Snapshot()

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	claimedStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	codeStyle := lipgloss.NewStyle().Foreground(t.Yellow).Background(t.Surface).Bold(true)

	var rewards strings.Builder
	if len(snap.Rewards) == 0 {
		rewards.WriteString(mutedStyle.Render("Unlock achievements to earn rewards"))
	}
	for i, r := range snap.Rewards {
		style := titleStyle
		marker := "  "
		if i == a.rewardCursor {
			style = selStyle
			marker = "▸ "
		}
		rewards.WriteString(style.Render(marker + rewardIcon(r.Type) + " " + r.Title))
		if r.Claimed {
			rewards.WriteString(claimedStyle.Render("  ✓ claimed"))
		}
		rewards.WriteString("\n")
		rewards.WriteString(mutedStyle.Render("    " + r.Description))
		if r.Code != "" {
			rewards.WriteString(mutedStyle.Render("  ") + codeStyle.Render(r.Code))
		}
		if i < len(snap.Rewards)-1 {
			rewards.WriteString("\n")
		}
	}

	widths := components.LayoutRow(cw, 2)
	var b strings.Builder
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Your Rewards", rewards.String(), widths[0]),
		components.ContentCard("Reward Wheel", a.renderWheel(), widths[1]),
	}))
	b.WriteString("\n")

	if d := a.deps.Progress.ActiveDiscount(); d != nil && a.remaining > 0 {
		innerW := components.CardInnerWidth(cw)
		bar := components.CountdownBar(d.Code+" ("+d.Option+")", a.remaining, a.deps.Engine.DiscountTTL, max(innerW-lipgloss.Width(d.Code+d.Option)-16, 10))
		b.WriteString(components.ContentCard("Limited-Time Discount", bar, cw))
	}
	return b.String()
}

func (a App) renderWheel() string {
	t := theme.Active
	sliceStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	winStyle := lipgloss.NewStyle().Foreground(t.Yellow).Background(t.SurfaceHover).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	var b strings.Builder
	for _, s := range game.Slices {
		if a.lastPrize != nil && a.lastPrize.Slice == s {
			b.WriteString(winStyle.Render("★ " + s))
		} else {
			b.WriteString(sliceStyle.Render("  " + s))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if err := a.deps.Engine.CanSpin(); err != nil {
		b.WriteString(sliceStyle.Render(err.Error()))
	} else {
		b.WriteString(hintStyle.Render("Press s to spin"))
	}
	return b.String()
}

func rewardIcon(rt model.RewardType) string {
	switch rt {
	case model.RewardGuide:
		return "📖"
	case model.RewardTemplate:
		return "📋"
	case model.RewardDiscount:
		return "🏷"
	}
	return "🎁"
}
