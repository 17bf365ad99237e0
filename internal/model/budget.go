// Package model holds the plain data types shared across vowbudget.
package model

// BudgetCategory is one line of the budget breakdown. Percentage is in whole
// percentage points; a category list always sums to 100.
type BudgetCategory struct {
	Name        string `json:"name"`
	Percentage  int    `json:"percentage"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

// Range is a catalog bucket for the total budget or the guest count.
type Range struct {
	Label   string `json:"label"`
	Min     int    `json:"min"`
	Max     int    `json:"max"`
	Average int    `json:"average"`
}

// Option is a labeled wizard choice (style, season, venue).
type Option struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// PlanningMode selects which wizard flow produced a plan.
type PlanningMode string

const (
	ModeQuick        PlanningMode = "quick"
	ModePersonalized PlanningMode = "personalized"
)
