package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/theirongolddev/vowbudget/internal/catalog"
	"github.com/theirongolddev/vowbudget/internal/model"
)

// Slices are the reward wheel segments in wheel order.
var Slices = []string{"5% OFF", "15% OFF", "25% OFF", "Wedding Guide"}

var (
	// ErrSliceOutOfRange is returned by ApplySpin for an index outside Slices.
	ErrSliceOutOfRange = errors.New("no such wheel slice")

	// ErrWheelLocked means Budget Master has not been unlocked yet.
	ErrWheelLocked = errors.New("the reward wheel unlocks with the Budget Master achievement")

	// ErrWheelSpent means the Budget Master spin was already used.
	ErrWheelSpent = errors.New("the reward wheel has already been spun")
)

// Prize is the outcome of one spin.
type Prize struct {
	Slice    string
	Discount *model.ActiveDiscount
}

// IsDiscount reports whether the slice grants a discount code.
func IsDiscount(slice string) bool {
	return strings.Contains(slice, "OFF")
}

// DiscountCode builds the code for a discount slice: WEDDING followed by the
// slice's digits.
func DiscountCode(slice string) string {
	var b strings.Builder
	b.WriteString("WEDDING")
	for _, r := range slice {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CanSpin reports whether the wheel is available: Budget Master is held and
// its reward has not been claimed through the wheel yet.
func (e *Engine) CanSpin() error {
	if !e.Store.HasAchievement(catalog.BudgetMaster) {
		return ErrWheelLocked
	}
	if e.Store.HasClaimedAchievement(catalog.BudgetMaster) {
		return ErrWheelSpent
	}
	return nil
}

// Spin picks a slice index uniformly.
func (e *Engine) Spin() int {
	return e.Rand.IntN(len(Slices))
}

// ApplySpin settles a spin on slice idx. The Budget Master claim is recorded
// for every outcome; discount slices also start a new active discount.
func (e *Engine) ApplySpin(idx int) (Prize, error) {
	if idx < 0 || idx >= len(Slices) {
		return Prize{}, fmt.Errorf("%w: %d", ErrSliceOutOfRange, idx)
	}
	slice := Slices[idx]
	e.Store.ClaimReward(catalog.BudgetMaster)

	prize := Prize{Slice: slice}
	if IsDiscount(slice) {
		ttl := e.DiscountTTL
		if ttl <= 0 {
			ttl = DefaultDiscountTTL
		}
		d := &model.ActiveDiscount{
			Option:    slice,
			Code:      DiscountCode(slice),
			ExpiresAt: e.now().Add(ttl),
		}
		e.Store.SetActiveDiscount(d)
		prize.Discount = d
		e.Logger.Info("discount won", "code", d.Code, "expires", d.ExpiresAt)
	}
	e.record(KindSpin, slice)
	return prize, nil
}
