package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/vowbudget/internal/cli"
	"github.com/theirongolddev/vowbudget/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ShareBar renders a category share as a solid bar scaled against maxPct.
func ShareBar(pct, maxPct, width int) string {
	t := theme.Active
	filled := 0
	if maxPct > 0 {
		filled = pct * width / maxPct
	}
	filled = max(0, min(filled, width))
	if pct > 0 && filled == 0 {
		filled = 1
	}

	filledStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.SurfaceBright).Background(t.Surface)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled))
}

// XPBar renders progress through the current level.
func XPBar(fraction float64, width int) string {
	t := theme.Active
	fraction = max(0, min(fraction, 1))

	bar := progress.New(
		progress.WithGradient(string(t.Accent), string(t.Magenta)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.SurfaceBright)

	pctStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return bar.ViewAs(fraction) + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%3.0f%%", fraction*100))
}

// ColorForRemaining returns green, yellow or red as a countdown runs out.
func ColorForRemaining(remaining, total time.Duration) lipgloss.Color {
	t := theme.Active
	if total <= 0 {
		return t.Red
	}
	frac := float64(remaining) / float64(total)
	switch {
	case frac > 0.5:
		return t.Green
	case frac > 0.2:
		return t.Yellow
	default:
		return t.Red
	}
}

// CountdownBar renders the time left on a discount as a draining bar with
// an m:ss label.
func CountdownBar(label string, remaining, total time.Duration, barWidth int) string {
	t := theme.Active

	frac := 0.0
	if total > 0 {
		frac = max(0, min(float64(remaining)/float64(total), 1))
	}
	color := ColorForRemaining(remaining, total)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.SurfaceBright)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	timeStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(label) +
		spaceStyle.Render(" ") +
		bar.ViewAs(frac) +
		spaceStyle.Render(" ") +
		timeStyle.Render(cli.FormatCountdown(remaining))
}
