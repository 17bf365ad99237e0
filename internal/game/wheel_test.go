package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/vowbudget/internal/catalog"
)

func TestDiscountCode(t *testing.T) {
	assert.Equal(t, "WEDDING5", DiscountCode("5% OFF"))
	assert.Equal(t, "WEDDING15", DiscountCode("15% OFF"))
	assert.Equal(t, "WEDDING25", DiscountCode("25% OFF"))
	assert.True(t, IsDiscount("25% OFF"))
	assert.False(t, IsDiscount("Wedding Guide"))
}

func TestCanSpin(t *testing.T) {
	e, _ := newEngine(t)
	assert.ErrorIs(t, e.CanSpin(), ErrWheelLocked)

	e.WizardCompleted()
	assert.NoError(t, e.CanSpin())

	_, err := e.ApplySpin(3)
	require.NoError(t, err)
	assert.ErrorIs(t, e.CanSpin(), ErrWheelSpent)
}

func TestSpin_InRange(t *testing.T) {
	e, _ := newEngine(t)
	seen := make(map[int]bool)
	for range 200 {
		idx := e.Spin()
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(Slices))
		seen[idx] = true
	}
	assert.Len(t, seen, len(Slices))
}

func TestApplySpin_Discount(t *testing.T) {
	e, rec := newEngine(t)
	e.WizardCompleted()

	prize, err := e.ApplySpin(1)
	require.NoError(t, err)
	assert.Equal(t, "15% OFF", prize.Slice)
	require.NotNil(t, prize.Discount)
	assert.Equal(t, "WEDDING15", prize.Discount.Code)
	assert.Equal(t, fixedNow.Add(DefaultDiscountTTL), prize.Discount.ExpiresAt)

	active := e.Store.ActiveDiscount()
	require.NotNil(t, active)
	assert.Equal(t, *prize.Discount, *active)

	assert.True(t, e.Store.HasClaimedAchievement(catalog.BudgetMaster))
	assert.False(t, e.Store.HasUnclaimedRewards())
	assert.Equal(t, KindSpin, rec.events[len(rec.events)-1].Kind)
}

func TestApplySpin_GuideHasNoDiscount(t *testing.T) {
	e, _ := newEngine(t)

	prize, err := e.ApplySpin(3)
	require.NoError(t, err)
	assert.Nil(t, prize.Discount)
	assert.Nil(t, e.Store.ActiveDiscount())
	assert.True(t, e.Store.HasClaimedAchievement(catalog.BudgetMaster))
}

func TestApplySpin_CustomTTL(t *testing.T) {
	e, _ := newEngine(t)
	e.DiscountTTL = 0
	prize, err := e.ApplySpin(0)
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(DefaultDiscountTTL), prize.Discount.ExpiresAt)

	e.DiscountTTL = 5 * time.Minute
	prize, err = e.ApplySpin(2)
	require.NoError(t, err)
	assert.Equal(t, "WEDDING25", e.Store.ActiveDiscount().Code)
	assert.Equal(t, fixedNow.Add(e.DiscountTTL), prize.Discount.ExpiresAt)
}

func TestApplySpin_OutOfRange(t *testing.T) {
	e, _ := newEngine(t)
	_, err := e.ApplySpin(4)
	assert.ErrorIs(t, err, ErrSliceOutOfRange)
	_, err = e.ApplySpin(-1)
	assert.ErrorIs(t, err, ErrSliceOutOfRange)
	assert.False(t, e.Store.HasClaimedAchievement(catalog.BudgetMaster))
}
