package allocation

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/vowbudget/internal/model"
)

var hundred = decimal.NewFromInt(Whole)

// Line is a category with its dollar share of the budget.
type Line struct {
	Category model.BudgetCategory
	Amount   decimal.Decimal
}

// Amounts converts percentages into dollar amounts rounded to cents. The
// cents lost to rounding go to the largest line so the lines add up to the
// budget exactly.
func Amounts(budget decimal.Decimal, categories []model.BudgetCategory) []Line {
	lines := make([]Line, len(categories))
	allocated := decimal.Zero
	for i, c := range categories {
		amt := budget.Mul(decimal.NewFromInt(int64(c.Percentage))).Div(hundred).Round(2)
		lines[i] = Line{Category: c, Amount: amt}
		allocated = allocated.Add(amt)
	}

	if len(lines) == 0 || Total(categories) != Whole {
		return lines
	}

	if diff := budget.Round(2).Sub(allocated); !diff.IsZero() {
		maxIdx := 0
		for i, l := range lines {
			if l.Amount.GreaterThan(lines[maxIdx].Amount) {
				maxIdx = i
			}
		}
		lines[maxIdx].Amount = lines[maxIdx].Amount.Add(diff)
	}
	return lines
}

// PerGuest divides the budget across guests, rounded to cents.
func PerGuest(budget decimal.Decimal, guests int) decimal.Decimal {
	if guests <= 0 {
		return decimal.Zero
	}
	return budget.Div(decimal.NewFromInt(int64(guests))).Round(2)
}
