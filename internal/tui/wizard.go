package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/theirongolddev/vowbudget/internal/catalog"
	"github.com/theirongolddev/vowbudget/internal/model"
	"github.com/theirongolddev/vowbudget/internal/planner"

	"github.com/charmbracelet/huh"
)

const customChoice = "custom"

// WizardValues collects the estimate wizard answers as the form edits them.
type WizardValues struct {
	Mode         string
	Budget       string // index into catalog.BudgetRanges, or "custom"
	CustomBudget string
	Guests       string // index into catalog.GuestRanges, or "custom"
	CustomGuests string
	Style        string
	Season       string
	Venue        string
}

// NewWizardValues returns values with the quick flow preselected.
func NewWizardValues() *WizardValues {
	return &WizardValues{Mode: string(model.ModeQuick), Budget: "2", Guests: "2"}
}

func (v *WizardValues) personalized() bool {
	return v.Mode == string(model.ModePersonalized)
}

// Answers converts the form values into planner answers.
func (v *WizardValues) Answers() (planner.Answers, error) {
	a := planner.Answers{Mode: model.PlanningMode(v.Mode)}

	var err error
	if a.Budget, err = budgetSelection(v.Budget, v.CustomBudget); err != nil {
		return a, err
	}
	if a.Guests, err = guestSelection(v.Guests, v.CustomGuests); err != nil {
		return a, err
	}
	if v.personalized() {
		a.Style, a.Season, a.Venue = v.Style, v.Season, v.Venue
	}
	return a, nil
}

func budgetSelection(choice, custom string) (planner.BudgetSelection, error) {
	if choice == customChoice {
		n, err := parsePositive(custom)
		if err != nil {
			return planner.BudgetSelection{}, err
		}
		return planner.BudgetSelection{Custom: &n}, nil
	}
	r, err := rangeAt(catalog.BudgetRanges, choice)
	return planner.BudgetSelection{Range: r}, err
}

func guestSelection(choice, custom string) (planner.GuestSelection, error) {
	if choice == customChoice {
		n, err := parsePositive(custom)
		if err != nil {
			return planner.GuestSelection{}, err
		}
		return planner.GuestSelection{Custom: &n}, nil
	}
	r, err := rangeAt(catalog.GuestRanges, choice)
	return planner.GuestSelection{Range: r}, err
}

func rangeAt(ranges []model.Range, choice string) (*model.Range, error) {
	i, err := strconv.Atoi(choice)
	if err != nil || i < 0 || i >= len(ranges) {
		return nil, errors.New("pick one of the listed ranges")
	}
	r := ranges[i]
	return &r, nil
}

func parsePositive(s string) (int, error) {
	s = strings.NewReplacer(",", "", "$", "", " ", "").Replace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("enter a whole number above zero")
	}
	return n, nil
}

func validatePositive(s string) error {
	_, err := parsePositive(s)
	return err
}

func rangeOptions(ranges []model.Range) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(ranges)+1)
	for i, r := range ranges {
		opts = append(opts, huh.NewOption(r.Label, strconv.Itoa(i)))
	}
	return append(opts, huh.NewOption("Enter my own", customChoice))
}

func choiceOptions(choices []model.Option) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		opts = append(opts, huh.NewOption(c.Icon+"  "+c.Label, c.ID))
	}
	return opts
}

// NewWizardForm builds the estimate wizard. The personalized groups are
// skipped in quick mode.
func NewWizardForm(v *WizardValues) *huh.Form {
	quick := func() bool { return !v.personalized() }

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How would you like to plan?").
				Options(
					huh.NewOption("Quick estimate (budget and guests)", string(model.ModeQuick)),
					huh.NewOption("Personalized plan (earns XP and rewards)", string(model.ModePersonalized)),
				).
				Value(&v.Mode),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What's your total budget?").
				Options(rangeOptions(catalog.BudgetRanges)...).
				Value(&v.Budget),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Total budget (USD)").
				Placeholder("30000").
				Validate(validatePositive).
				Value(&v.CustomBudget),
		).WithHideFunc(func() bool { return v.Budget != customChoice }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How many guests?").
				Options(rangeOptions(catalog.GuestRanges)...).
				Value(&v.Guests),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Guest count").
				Placeholder("120").
				Validate(validatePositive).
				Value(&v.CustomGuests),
		).WithHideFunc(func() bool { return v.Guests != customChoice }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What's your wedding style?").
				Options(choiceOptions(catalog.WeddingStyles)...).
				Value(&v.Style),
		).WithHideFunc(quick),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which season?").
				Options(choiceOptions(catalog.Seasons)...).
				Value(&v.Season),
		).WithHideFunc(quick),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What kind of venue?").
				Options(choiceOptions(catalog.Venues)...).
				Value(&v.Venue),
		).WithHideFunc(quick),
	)
}
