// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatMoney formats a USD amount with comma separators. Whole-dollar
// amounts drop the cents.
// e.g., 37500 -> "$37,500", 1234.5 -> "$1,234.50"
func FormatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	d = d.Round(2)
	whole := d.Truncate(0)
	out := sign + "$" + FormatNumber(whole.IntPart())
	if cents := d.Sub(whole).Shift(2).IntPart(); cents != 0 {
		out += fmt.Sprintf(".%02d", cents)
	}
	return out
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a whole-number percentage.
func FormatPercent(p int) string {
	return strconv.Itoa(p) + "%"
}

// FormatCountdown formats a duration as m:ss, floored to whole seconds.
// e.g., 14m59.8s -> "14:59"
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// FormatXP formats an XP total.
func FormatXP(xp int) string {
	return FormatNumber(int64(xp)) + " XP"
}

// FormatAgo formats how long ago t was, relative to now.
// e.g., 3725s -> "1h ago", 125s -> "2m ago", 45s -> "just now"
func FormatAgo(t, now time.Time) string {
	secs := int64(now.Sub(t) / time.Second)
	switch {
	case secs < 60:
		return "just now"
	case secs < 3600:
		return fmt.Sprintf("%dm ago", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%dh ago", secs/3600)
	default:
		return t.Local().Format("Jan 2")
	}
}
