// Package allocation rescales a budget's category percentages when one of
// them is edited, keeping the list summing to exactly 100:
//
//	target    = round(clamp(requested, 1, 100))
//	remaining = 100 - target
//	other_i   = round(other_i * remaining / sum(others))
//
// Whatever independent rounding leaves over is folded into the largest
// remaining category.
package allocation

import (
	"errors"
	"math"

	"github.com/theirongolddev/vowbudget/internal/model"
)

// Whole is the total every category list sums to.
const Whole = 100

// ErrUnknownCategory is returned when the edited name is not in the list.
var ErrUnknownCategory = errors.New("unknown category")

// Recompute returns a new category list with edited set to the rounded
// requested percentage and every other category rescaled proportionally.
// The input slice is never modified.
func Recompute(categories []model.BudgetCategory, edited string, requested float64) ([]model.BudgetCategory, error) {
	editedIdx := -1
	for i, c := range categories {
		if c.Name == edited {
			editedIdx = i
			break
		}
	}
	if editedIdx < 0 {
		return nil, ErrUnknownCategory
	}

	out := make([]model.BudgetCategory, len(categories))
	copy(out, categories)

	// A lone category can only ever hold the whole budget.
	if len(out) == 1 {
		out[0].Percentage = Whole
		return out, nil
	}

	target := roundHalfUp(clamp(requested, 1, Whole))
	remaining := Whole - target

	othersTotal := 0
	for i, c := range categories {
		if i != editedIdx {
			othersTotal += c.Percentage
		}
	}

	out[editedIdx].Percentage = target
	if othersTotal == 0 {
		spreadEvenly(out, editedIdx, remaining)
	} else {
		factor := float64(remaining) / float64(othersTotal)
		for i := range out {
			if i == editedIdx {
				continue
			}
			out[i].Percentage = roundHalfUp(float64(out[i].Percentage) * factor)
		}
	}

	// Fix rounding - the largest other category absorbs the difference
	if diff := Whole - Total(out); diff != 0 {
		out[largestExcept(out, editedIdx)].Percentage += diff
	}

	return out, nil
}

// Total sums the percentages of categories.
func Total(categories []model.BudgetCategory) int {
	total := 0
	for _, c := range categories {
		total += c.Percentage
	}
	return total
}

// spreadEvenly hands remaining out across every category except skip.
// Earlier entries absorb the remainder of the integer division.
func spreadEvenly(cats []model.BudgetCategory, skip, remaining int) {
	n := len(cats) - 1
	base := remaining / n
	extra := remaining % n
	for i := range cats {
		if i == skip {
			continue
		}
		cats[i].Percentage = base
		if extra > 0 {
			cats[i].Percentage++
			extra--
		}
	}
}

// largestExcept returns the index of the largest category other than skip.
// Ties go to the first in list order.
func largestExcept(cats []model.BudgetCategory, skip int) int {
	best := -1
	for i, c := range cats {
		if i == skip {
			continue
		}
		if best < 0 || c.Percentage > cats[best].Percentage {
			best = i
		}
	}
	return best
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
