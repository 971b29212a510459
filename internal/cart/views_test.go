package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByBrand_GroupedCheckout(t *testing.T) {
	state := mustReduce(EmptyState(),
		AddItem{Product: product("A", "X", "Rs.1,000"), Quantity: 2, Size: "M"},
		AddItem{Product: product("B", "X", "Rs.500"), Quantity: 1, Size: "M"},
		AddItem{Product: product("C", "Y", "Rs.700"), Quantity: 1, Size: "M"},
	)

	grouped := state.GroupByBrand()
	require.Len(t, grouped, 2)
	assert.Equal(t, []string{"A", "B"}, productIDs(grouped["X"]))
	assert.Equal(t, []string{"C"}, productIDs(grouped["Y"]))

	assert.Equal(t, 2500.0, state.BrandTotal("X"))
	assert.Equal(t, 700.0, state.BrandTotal("Y"))
	assert.Equal(t, 0.0, state.BrandTotal("Z"))
}

func TestGroupByBrand_MissingBrandGoesToOther(t *testing.T) {
	state := mustReduce(EmptyState(),
		AddItem{Product: product("A", "", "100"), Quantity: 1, Size: "M"},
		AddItem{Product: product("B", "X", "100"), Quantity: 1, Size: "M"},
	)

	grouped := state.GroupByBrand()
	assert.Equal(t, []string{"A"}, productIDs(grouped[OtherBrand]))
	assert.Equal(t, 0.0, state.BrandTotal(OtherBrand))
}

func TestGroupByBrand_ReflectsLatestItems(t *testing.T) {
	state := mustReduce(EmptyState(), AddItem{Product: product("A", "X", "100"), Quantity: 1, Size: "M"})
	first := state.GroupByBrand()

	state = mustReduce(state, AddItem{Product: product("B", "X", "100"), Quantity: 1, Size: "M"})
	assert.Len(t, first["X"], 1)
	assert.Len(t, state.GroupByBrand()["X"], 2)
}

func TestBrandGroups_OrderedWithTotals(t *testing.T) {
	state := mustReduce(EmptyState(),
		AddItem{Product: product("A", "Y", "100"), Quantity: 2, Size: "M"},
		AddItem{Product: product("B", "", "50"), Quantity: 1, Size: "M"},
		AddItem{Product: product("C", "X", "10"), Quantity: 3, Size: "M"},
		AddItem{Product: product("D", "Y", "1"), Quantity: 1, Size: "M"},
	)

	groups := state.BrandGroups()
	require.Len(t, groups, 3)

	assert.Equal(t, "Y", groups[0].Brand)
	assert.Equal(t, []string{"A", "D"}, productIDs(groups[0].Items))
	assert.Equal(t, 3, groups[0].TotalItems)
	assert.Equal(t, 201.0, groups[0].Total)

	assert.Equal(t, OtherBrand, groups[1].Brand)
	assert.Equal(t, 50.0, groups[1].Total)

	assert.Equal(t, "X", groups[2].Brand)
	assert.Equal(t, 30.0, groups[2].Total)
}

func TestBrandGroups_Empty(t *testing.T) {
	assert.Empty(t, EmptyState().BrandGroups())
	assert.Empty(t, EmptyState().GroupByBrand())
}
