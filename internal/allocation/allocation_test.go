package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/vowbudget/internal/catalog"
	"github.com/theirongolddev/vowbudget/internal/model"
)

func cats(pcts ...int) []model.BudgetCategory {
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	out := make([]model.BudgetCategory, len(pcts))
	for i, p := range pcts {
		out[i] = model.BudgetCategory{Name: names[i], Percentage: p}
	}
	return out
}

func percentages(cs []model.BudgetCategory) []int {
	out := make([]int, len(cs))
	for i, c := range cs {
		out[i] = c.Percentage
	}
	return out
}

func TestRecompute_DefaultCatalog(t *testing.T) {
	got, err := Recompute(catalog.DefaultCategories(), "Venue", 40)
	require.NoError(t, err)

	assert.Equal(t, 40, got[0].Percentage)
	assert.Equal(t, Whole, Total(got))
	// Catering 20 * 60/70 = 17.14 -> 17
	assert.Equal(t, 17, got[1].Percentage)
}

func TestRecompute_SumAlways100(t *testing.T) {
	starts := [][]model.BudgetCategory{
		catalog.DefaultCategories(),
		cats(50, 50),
		cats(34, 33, 33),
		cats(1, 1, 1, 97),
		cats(12, 13, 12, 13, 12, 13, 12, 13),
	}

	for _, start := range starts {
		for _, c := range start {
			for req := 1; req <= 100; req++ {
				got, err := Recompute(start, c.Name, float64(req))
				require.NoError(t, err)
				require.Equal(t, Whole, Total(got), "edit %s to %d from %v", c.Name, req, percentages(start))
			}
		}
	}
}

func TestRecompute_EditedValueIsRoundedRequest(t *testing.T) {
	start := catalog.DefaultCategories()
	for req := 1.0; req <= 100; req += 0.25 {
		got, err := Recompute(start, "Cake", req)
		require.NoError(t, err)
		assert.Equal(t, roundHalfUp(req), got[7].Percentage, "requested %.2f", req)
	}
}

func TestRecompute_RoundsHalfUp(t *testing.T) {
	got, err := Recompute(cats(50, 50), "A", 24.5)
	require.NoError(t, err)
	assert.Equal(t, []int{25, 75}, percentages(got))
}

func TestRecompute_ClampsOutOfRange(t *testing.T) {
	got, err := Recompute(cats(50, 50), "A", 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 99}, percentages(got))

	got, err = Recompute(cats(50, 50), "A", 250)
	require.NoError(t, err)
	assert.Equal(t, []int{100, 0}, percentages(got))
}

func TestRecompute_Idempotent(t *testing.T) {
	start := catalog.DefaultCategories()
	once, err := Recompute(start, "Photography", 21)
	require.NoError(t, err)
	twice, err := Recompute(once, "Photography", 21)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestRecompute_ZeroOthersSpreadsEvenly(t *testing.T) {
	start := cats(100, 0, 0, 0)

	got, err := Recompute(start, "A", 90)
	require.NoError(t, err)
	assert.Equal(t, []int{90, 4, 3, 3}, percentages(got))
	assert.Equal(t, Whole, Total(got))

	again, err := Recompute(start, "A", 90)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestRecompute_RemainderGoesToFirstLargest(t *testing.T) {
	// Others 33/33/33 scaled to 50: 16.67 each -> 17*3 = 51, diff -1.
	got, err := Recompute(cats(1, 33, 33, 33), "A", 50)
	require.NoError(t, err)
	assert.Equal(t, []int{50, 16, 17, 17}, percentages(got))
}

func TestRecompute_SingleCategoryPinnedAt100(t *testing.T) {
	got, err := Recompute(cats(100), "A", 40)
	require.NoError(t, err)
	assert.Equal(t, []int{100}, percentages(got))
}

func TestRecompute_DoesNotMutateInput(t *testing.T) {
	start := catalog.DefaultCategories()
	_, err := Recompute(start, "Venue", 10)
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultCategories(), start)
}

func TestRecompute_UnknownCategory(t *testing.T) {
	_, err := Recompute(cats(50, 50), "Z", 10)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestRecompute_PreservesIdentities(t *testing.T) {
	start := catalog.DefaultCategories()
	got, err := Recompute(start, "Rings", 9)
	require.NoError(t, err)
	require.Len(t, got, len(start))
	for i := range start {
		assert.Equal(t, start[i].Name, got[i].Name)
		assert.Equal(t, start[i].Description, got[i].Description)
	}
}
