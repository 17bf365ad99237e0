package planner

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
			d, ok := v.Interface().(decimal.Decimal)
			if !ok {
				return nil
			}
			return d.InexactFloat64()
		}, decimal.Decimal{})
	})
	return validate
}

// edit is one percentage change request.
type edit struct {
	Category string  `validate:"required"`
	Percent  float64 `validate:"gte=1,lte=100"`
}

type budgetInput struct {
	Amount decimal.Decimal `validate:"gt=0"`
}

// ValidateAnswers checks the wizard inputs.
func ValidateAnswers(a Answers) error {
	if err := validatorInstance().Struct(a); err != nil {
		return describe(err)
	}
	if a.Budget.Value() <= 0 {
		return errors.New("budget: pick a range or enter an amount above zero")
	}
	if a.Guests.Value() < 1 {
		return errors.New("guests: pick a range or enter at least one guest")
	}
	return nil
}

// ValidateEdit checks a category percentage request.
func ValidateEdit(category string, percent float64) error {
	if err := validatorInstance().Struct(edit{Category: category, Percent: percent}); err != nil {
		return describe(err)
	}
	return nil
}

// ValidateBudget checks a new total budget.
func ValidateBudget(amount decimal.Decimal) error {
	if err := validatorInstance().Struct(budgetInput{Amount: amount}); err != nil {
		return describe(err)
	}
	return nil
}

// ValidatePlan checks a loaded or edited plan.
func ValidatePlan(p *Plan) error {
	if err := validatorInstance().Struct(p); err != nil {
		return describe(err)
	}
	return nil
}

// describe turns validator output into one readable error.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	name := fe.StructNamespace()
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.ToLower(name)
	switch fe.Tag() {
	case "required", "required_if":
		return name + " is required"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "gt":
		return name + " must be greater than zero"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", name, fe.Tag())
	}
}
