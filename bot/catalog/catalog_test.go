package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoriesSortedDistinct(t *testing.T) {
	cat := Showcase()
	got := cat.Categories()
	require.True(t, sort.StringsAreSorted(got))

	seen := map[string]bool{}
	for _, c := range got {
		require.False(t, seen[c], "duplicate category %s", c)
		seen[c] = true
	}
}

func TestProductsByCategory(t *testing.T) {
	cat := Showcase()
	electronics := cat.ProductsByCategory("Electronics")
	require.NotEmpty(t, electronics)
	for _, p := range electronics {
		require.Equal(t, "Electronics", p.Category)
	}
	for i := 1; i < len(electronics); i++ {
		require.Less(t, electronics[i-1].ID, electronics[i].ID)
	}
	require.Empty(t, cat.ProductsByCategory("Nope"))
}

func TestVariantsShareSlotsAndRates(t *testing.T) {
	require.Equal(t, Showcase().Slots, Salon().Slots)
	require.Equal(t, Showcase().Rates, Salon().Rates)
	require.NotEmpty(t, Salon().Services)
}
