package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/vowbudget/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsExactly(t *testing.T) {
	for _, tc := range []struct{ total, n int }{{100, 3}, {81, 4}, {7, 7}, {5, 8}} {
		widths := LayoutRow(tc.total, tc.n)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
		if len(widths) > 1 && widths[0] < widths[len(widths)-1] {
			t.Errorf("LayoutRow(%d, %d) = %v, remainder should go first", tc.total, tc.n, widths)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("blush")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("Joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}

	for i, line := range lines {
		if i >= shortLines && !strings.Contains(line, "\x1b[") {
			t.Errorf("Line %d has NO ANSI codes - will show as black squares", i)
		}
	}
}

func TestCardRowWidthConsistency(t *testing.T) {
	theme.SetActive("blush")

	shortCard := ContentCard("Short", "A", 30)
	tallCard := ContentCard("Tall", "A\nB\nC\nD\nE\nF", 20)

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")

	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("Line %d width = %d, want %d", i, w, want)
		}
	}
}

func TestShareBarWidth(t *testing.T) {
	for _, pct := range []int{0, 1, 15, 30, 45} {
		if w := lipgloss.Width(ShareBar(pct, 30, 20)); w != 20 {
			t.Errorf("ShareBar(%d) width = %d, want 20", pct, w)
		}
	}
}

func TestCountdownBarShowsClock(t *testing.T) {
	out := CountdownBar("WEDDING15", 14*time.Minute+5*time.Second, 15*time.Minute, 20)
	if !strings.Contains(out, "14:05") {
		t.Errorf("CountdownBar missing m:ss label: %q", out)
	}
}

func TestColorForRemaining(t *testing.T) {
	theme.SetActive("blush")
	th := theme.Active
	total := 10 * time.Minute
	if got := ColorForRemaining(9*time.Minute, total); got != th.Green {
		t.Errorf("90%% left = %v, want green", got)
	}
	if got := ColorForRemaining(3*time.Minute, total); got != th.Yellow {
		t.Errorf("30%% left = %v, want yellow", got)
	}
	if got := ColorForRemaining(time.Minute, total); got != th.Red {
		t.Errorf("10%% left = %v, want red", got)
	}
}

func TestTabVisualWidthMatchesRender(t *testing.T) {
	theme.SetActive("blush")
	for active := range Tabs {
		bar := RenderTabBar(active, 200)
		want := 0
		for i, tab := range Tabs {
			want += TabVisualWidth(tab, i == active)
			if i < len(Tabs)-1 {
				want++
			}
		}
		if got := lipgloss.Width(strings.TrimRight(stripStyles(bar), " ")); got > want || got < want-1 {
			t.Errorf("active=%d rendered width %d, want about %d", active, got, want)
		}
	}
}

func stripStyles(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
