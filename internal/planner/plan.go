// Package planner holds the wizard's answers and the editable breakdown built
// from them.
package planner

import (
	"errors"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/vowbudget/internal/catalog"
	"github.com/theirongolddev/vowbudget/internal/model"
)

// StorageKey names the persisted plan document.
const StorageKey = "wedding-planner-plan"

// ErrNoPlan is returned when no plan has been created yet.
var ErrNoPlan = errors.New("no budget plan yet, run `vowbudget estimate` first")

// BudgetSelection is a preset budget bucket or a custom amount. A custom
// amount wins when set.
type BudgetSelection struct {
	Range  *model.Range `json:"range,omitempty"`
	Custom *int         `json:"custom,omitempty" validate:"omitempty,gt=0"`
}

// Value returns the custom amount, or the bucket average.
func (b BudgetSelection) Value() int {
	if b.Custom != nil {
		return *b.Custom
	}
	if b.Range != nil {
		return b.Range.Average
	}
	return 0
}

// GuestSelection is a preset guest bucket or a custom head count.
type GuestSelection struct {
	Range  *model.Range `json:"range,omitempty"`
	Custom *int         `json:"custom,omitempty" validate:"omitempty,gte=1"`
}

// Value returns the custom count, or the bucket average.
func (g GuestSelection) Value() int {
	if g.Custom != nil {
		return *g.Custom
	}
	if g.Range != nil {
		return g.Range.Average
	}
	return 0
}

// Answers are the wizard inputs.
type Answers struct {
	Mode   model.PlanningMode `json:"mode" validate:"oneof=quick personalized"`
	Budget BudgetSelection    `json:"budget"`
	Guests GuestSelection     `json:"guests"`
	Style  string             `json:"style,omitempty" validate:"required_if=Mode personalized"`
	Season string             `json:"season,omitempty" validate:"required_if=Mode personalized"`
	Venue  string             `json:"venue,omitempty" validate:"required_if=Mode personalized"`
}

// Plan is the current breakdown.
type Plan struct {
	Mode          model.PlanningMode     `json:"mode"`
	Budget        decimal.Decimal        `json:"budget" validate:"gt=0"`
	InitialBudget decimal.Decimal        `json:"initialBudget"`
	Guests        int                    `json:"guests" validate:"gte=1"`
	Style         string                 `json:"style,omitempty"`
	Season        string                 `json:"season,omitempty"`
	Venue         string                 `json:"venue,omitempty"`
	Categories    []model.BudgetCategory `json:"categories" validate:"min=1,dive"`
	Edited        []string               `json:"edited"`
}

// NewPlan validates a and seeds a plan with the default category split.
func NewPlan(a Answers) (*Plan, error) {
	if a.Mode == "" {
		a.Mode = model.ModeQuick
	}
	if err := ValidateAnswers(a); err != nil {
		return nil, err
	}
	budget := decimal.NewFromInt(int64(a.Budget.Value()))
	p := &Plan{
		Mode:          a.Mode,
		Budget:        budget,
		InitialBudget: budget,
		Guests:        a.Guests.Value(),
		Style:         a.Style,
		Season:        a.Season,
		Venue:         a.Venue,
		Categories:    catalog.DefaultCategories(),
		Edited:        []string{},
	}
	return p, nil
}

// Category finds a category by name.
func (p *Plan) Category(name string) (model.BudgetCategory, bool) {
	i := slices.IndexFunc(p.Categories, func(c model.BudgetCategory) bool { return c.Name == name })
	if i < 0 {
		return model.BudgetCategory{}, false
	}
	return p.Categories[i], true
}

// markEdited records name once.
func (p *Plan) markEdited(name string) {
	if !slices.Contains(p.Edited, name) {
		p.Edited = append(p.Edited, name)
	}
}

// Clone returns a deep copy of p.
func (p *Plan) Clone() *Plan {
	cp := *p
	cp.Categories = slices.Clone(p.Categories)
	cp.Edited = slices.Clone(p.Edited)
	return &cp
}

// StyleOption, SeasonOption and VenueOption resolve the plan's choices
// against the catalog.
func (p *Plan) StyleOption() (model.Option, bool)  { return catalog.Option(catalog.WeddingStyles, p.Style) }
func (p *Plan) SeasonOption() (model.Option, bool) { return catalog.Option(catalog.Seasons, p.Season) }
func (p *Plan) VenueOption() (model.Option, bool)  { return catalog.Option(catalog.Venues, p.Venue) }
