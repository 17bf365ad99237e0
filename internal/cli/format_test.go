package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"37500", "$37,500"},
		{"0", "$0"},
		{"1234.5", "$1,234.50"},
		{"11250.01", "$11,250.01"},
		{"999.999", "$1,000"},
		{"-42.3", "-$42.30"},
	}
	for _, tt := range tests {
		got := FormatMoney(decimal.RequireFromString(tt.in))
		if got != tt.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		1234567: "1,234,567",
		-175000: "-175,000",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{15 * time.Minute, "15:00"},
		{14*time.Minute + 59*time.Second + 800*time.Millisecond, "14:59"},
		{9 * time.Second, "0:09"},
		{0, "0:00"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatCountdown(tt.in); got != tt.want {
			t.Errorf("FormatCountdown(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAgo(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	if got := FormatAgo(now.Add(-30*time.Second), now); got != "just now" {
		t.Errorf("30s = %q", got)
	}
	if got := FormatAgo(now.Add(-5*time.Minute), now); got != "5m ago" {
		t.Errorf("5m = %q", got)
	}
	if got := FormatAgo(now.Add(-3*time.Hour), now); got != "3h ago" {
		t.Errorf("3h = %q", got)
	}
}

func TestFormatPercentAndXP(t *testing.T) {
	if got := FormatPercent(30); got != "30%" {
		t.Errorf("FormatPercent = %q", got)
	}
	if got := FormatXP(1250); got != "1,250 XP" {
		t.Errorf("FormatXP = %q", got)
	}
}

func TestRenderTableAlignsWideCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Category", "Share"},
		Rows: [][]string{
			{"Venue", "30%"},
			{"Decorations", "7%"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out)
	}
	width := len([]rune(stripANSI(lines[0])))
	for i, l := range lines {
		if w := len([]rune(stripANSI(l))); w != width {
			t.Errorf("line %d width = %d, want %d", i, w, width)
		}
	}
}

func TestRenderProgressBarClamps(t *testing.T) {
	if got := RenderProgressBar(5, 0, 10); got != "" {
		t.Errorf("zero total = %q, want empty", got)
	}
	if got := stripANSI(RenderProgressBar(-5, 100, 10)); !strings.HasPrefix(got, "["+strings.Repeat("░", 10)+"]") {
		t.Errorf("negative = %q", got)
	}
	if got := stripANSI(RenderProgressBar(150, 100, 10)); !strings.HasPrefix(got, "["+strings.Repeat("█", 10)+"]") {
		t.Errorf("overflow = %q", got)
	}
}

func TestRenderShareBar(t *testing.T) {
	if got := stripANSI(RenderShareBar(30, 30, 20)); got != strings.Repeat("█", 20) {
		t.Errorf("max share = %q", got)
	}
	if got := stripANSI(RenderShareBar(1, 30, 20)); got != "█" {
		t.Errorf("min share = %q", got)
	}
	if got := RenderShareBar(0, 30, 20); got != "" {
		t.Errorf("zero share = %q", got)
	}
}

func stripANSI(s string) string {
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
