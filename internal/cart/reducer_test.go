package cart

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fashionhive/storefront/internal/domain"
	"github.com/fashionhive/storefront/internal/pricing"
)

func TestReduce_AddMergesDuplicateKey(t *testing.T) {
	p := product("P", "Khaadi", "Rs.1,000")
	state := mustReduce(EmptyState(),
		AddItem{Product: p, Quantity: 2, Size: "M", Color: "red"},
		AddItem{Product: p, Quantity: 3, Size: "M", Color: "red"},
	)

	require.Equal(t, 1, state.Len())
	assert.Equal(t, 5, state.Items()[0].Quantity)
	assert.Equal(t, 5, state.TotalItems())
	assert.Equal(t, 5000.0, state.TotalPrice())
}

func TestReduce_AddDistinctVariants(t *testing.T) {
	p := product("P", "Khaadi", "Rs.1,000")
	state := mustReduce(EmptyState(),
		AddItem{Product: p, Quantity: 1, Size: "M"},
		AddItem{Product: p, Quantity: 1, Size: "L"},
		AddItem{Product: p, Quantity: 1, Size: "M", Color: "blue"},
	)

	assert.Equal(t, 3, state.Len())
}

func TestReduce_AddMissingSizeLeavesStateUntouched(t *testing.T) {
	before := mustReduce(EmptyState(), AddItem{Product: product("A", "X", "100"), Quantity: 1, Size: "S"})

	after, err := Reduce(before, AddItem{Product: product("B", "X", "100"), Quantity: 1, Size: ""})
	require.ErrorIs(t, err, ErrMissingSize)
	assert.Equal(t, "missing size", err.Error())
	assert.Equal(t, before.Items(), after.Items())

	_, err = Reduce(before, AddItem{Product: product("B", "X", "100"), Quantity: 1, Size: "   "})
	assert.ErrorIs(t, err, ErrMissingSize)
}

func TestReduce_AddQuantityRules(t *testing.T) {
	state, err := Reduce(EmptyState(), AddItem{Product: product("A", "X", "100"), Size: "S"})
	require.NoError(t, err)
	assert.Equal(t, 1, state.TotalItems())

	_, err = Reduce(EmptyState(), AddItem{Product: product("A", "X", "100"), Quantity: -2, Size: "S"})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = Reduce(EmptyState(), AddItem{Product: domain.Product{}, Quantity: 1, Size: "S"})
	assert.ErrorIs(t, err, ErrMissingProductID)
}

func TestReduce_AddSnapshotsPriceAndBrand(t *testing.T) {
	p := domain.Product{ID: "A", Price: pricing.StringPrice("Rs.3,990"), Brand: "Sapphire"}
	state := mustReduce(EmptyState(), AddItem{Product: p, Quantity: 2, Size: "M"})

	item := state.Items()[0]
	assert.Equal(t, 3990.0, item.NumericPrice)
	assert.Equal(t, "Sapphire", item.BrandCollection)
	assert.Equal(t, "A", item.Product.ID)
	assert.Equal(t, 7980.0, state.TotalPrice())

	numeric := domain.Product{ID: "B", Price: pricing.NumberPrice(1500), BrandCollection: "Sapphire"}
	state = mustReduce(state, AddItem{Product: numeric, Quantity: 1, Size: "M"})
	assert.Equal(t, 1500.0, state.Items()[1].NumericPrice)
}

func TestReduce_AddWithoutPriceCountsAsZero(t *testing.T) {
	// a stale numericPrice on the product is not trusted
	p := domain.Product{ID: "A", NumericPrice: 1500, BrandCollection: "Sapphire"}
	state := mustReduce(EmptyState(), AddItem{Product: p, Quantity: 2, Size: "M"})

	assert.Equal(t, 0.0, state.Items()[0].NumericPrice)
	assert.Equal(t, 2, state.TotalItems())
	assert.Equal(t, 0.0, state.TotalPrice())
}

func TestReduce_UpdateQuantity(t *testing.T) {
	state := mustReduce(EmptyState(), AddItem{Product: product("A", "X", "100"), Quantity: 2, Size: "M"})

	updated := mustReduce(state, UpdateQuantity{Key: Key{ProductID: "A", Size: "M"}, Quantity: 7})
	assert.Equal(t, 7, updated.TotalItems())
	assert.Equal(t, 700.0, updated.TotalPrice())

	again := mustReduce(updated, UpdateQuantity{Key: Key{ProductID: "A", Size: "M"}, Quantity: 7})
	assert.Equal(t, updated.Items(), again.Items())
}

func TestReduce_AbsentKeysAreNoOps(t *testing.T) {
	state := mustReduce(EmptyState(),
		AddItem{Product: product("A", "X", "100"), Quantity: 1, Size: "M"},
		AddItem{Product: product("B", "Y", "200"), Quantity: 1, Size: "L"},
	)

	missing := []Key{
		{ProductID: "Z", Size: "M"},
		{ProductID: "A", Size: "L"},
		{ProductID: "A", Size: "M", Color: "red"},
	}
	for _, key := range missing {
		assert.Equal(t, state.Items(), mustReduce(state, RemoveItem{Key: key}).Items())
		assert.Equal(t, state.Items(), mustReduce(state, UpdateQuantity{Key: key, Quantity: 0}).Items())
		assert.Equal(t, state.Items(), mustReduce(state, UpdateQuantity{Key: key, Quantity: 4}).Items())
	}
}

func TestReduce_AddThenPartialRemove(t *testing.T) {
	state := mustReduce(EmptyState(),
		AddItem{Product: product("A", "X", "100"), Quantity: 2, Size: "M"},
		AddItem{Product: product("B", "X", "100"), Quantity: 1, Size: "L"},
	)
	assert.Equal(t, 3, state.TotalItems())

	state = mustReduce(state, UpdateQuantity{Key: Key{ProductID: "A", Size: "M"}, Quantity: 0})
	assert.Equal(t, []string{"B"}, productIDs(state.Items()))
	assert.Equal(t, 1, state.TotalItems())
}

func TestReduce_ClearBrandIsolation(t *testing.T) {
	state := mustReduce(EmptyState(),
		AddItem{Product: product("A", "X", "100"), Quantity: 1, Size: "M"},
		AddItem{Product: product("B", "Y", "200"), Quantity: 1, Size: "M"},
		AddItem{Product: product("C", "X", "300"), Quantity: 1, Size: "M"},
		AddItem{Product: product("D", "Z", "400"), Quantity: 2, Size: "M"},
		AddItem{Product: product("E", "x", "500"), Quantity: 1, Size: "M"},
	)

	cleared := mustReduce(state, ClearBrand{Brand: "X"})
	assert.Equal(t, []string{"B", "D", "E"}, productIDs(cleared.Items()))
	assert.Equal(t, 4, cleared.TotalItems())
	assert.Equal(t, 1500.0, cleared.TotalPrice())

	assert.Equal(t, cleared.Items(), mustReduce(cleared, ClearBrand{Brand: "X"}).Items())
}

func TestReduce_ClearCart(t *testing.T) {
	state := mustReduce(EmptyState(), AddItem{Product: product("A", "X", "100"), Quantity: 1, Size: "M"})
	state = mustReduce(state, ClearCart{}, ClearCart{})
	assert.Equal(t, 0, state.Len())
	assert.Equal(t, Totals{}, state.Totals())
}

func TestReduce_SetCartSanitizes(t *testing.T) {
	items := []LineItem{
		{ProductID: "A", Size: "M", Quantity: 1, NumericPrice: 10},
		{ProductID: "B", Size: "", Quantity: 1, NumericPrice: 10},
		{ProductID: "C", Size: "M", Quantity: 0, NumericPrice: 10},
		{ProductID: "A", Size: "M", Quantity: 2, NumericPrice: 10},
		{ProductID: "", Size: "M", Quantity: 1, NumericPrice: 10},
	}
	state := mustReduce(EmptyState(), SetCart{Items: items})

	require.Equal(t, 1, state.Len())
	assert.Equal(t, 3, state.Items()[0].Quantity)
	assert.Equal(t, 30.0, state.TotalPrice())
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := mustReduce(EmptyState(), AddItem{Product: product("A", "X", "100"), Quantity: 1, Size: "M"})
	snapshot := before.Items()

	mustReduce(before,
		AddItem{Product: product("A", "X", "100"), Quantity: 5, Size: "M"},
		UpdateQuantity{Key: Key{ProductID: "A", Size: "M"}, Quantity: 9},
	)
	assert.Equal(t, snapshot, before.Items())
}

func TestReplay(t *testing.T) {
	state, err := Replay(
		AddItem{Product: product("A", "X", "100"), Quantity: 2, Size: "M"},
		AddItem{Product: product("B", "Y", "50"), Quantity: 1, Size: "S"},
		RemoveItem{Key: Key{ProductID: "A", Size: "M"}},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, productIDs(state.Items()))

	partial, err := Replay(
		AddItem{Product: product("A", "X", "100"), Quantity: 2, Size: "M"},
		AddItem{Product: product("B", "Y", "50"), Quantity: 1},
	)
	require.ErrorIs(t, err, ErrMissingSize)
	assert.Contains(t, err.Error(), "command 1 (add_item)")
	assert.Equal(t, 2, partial.TotalItems())
}

func TestReduce_TotalsStayConsistent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := []string{"A", "B", "C", "D"}
	brands := []string{"X", "Y", ""}
	sizes := []string{"S", "M"}
	prices := []string{"Rs.1,250", "999.99", "Rs. 3,990", "0.1"}

	state := EmptyState()
	for i := 0; i < 500; i++ {
		id := ids[rng.Intn(len(ids))]
		key := Key{ProductID: id, Size: sizes[rng.Intn(len(sizes))]}

		var cmd Command
		switch rng.Intn(6) {
		case 0, 1:
			p := product(id, brands[rng.Intn(len(brands))], prices[rng.Intn(len(prices))])
			cmd = AddItem{Product: p, Quantity: rng.Intn(3), Size: key.Size}
		case 2:
			cmd = UpdateQuantity{Key: key, Quantity: rng.Intn(5) - 1}
		case 3:
			cmd = RemoveItem{Key: key}
		case 4:
			cmd = ClearBrand{Brand: brands[rng.Intn(len(brands))]}
		default:
			if rng.Intn(10) == 0 {
				cmd = ClearCart{}
			} else {
				cmd = RemoveItem{Key: Key{ProductID: "missing"}}
			}
		}

		next, err := Reduce(state, cmd)
		require.NoError(t, err)
		state = next

		count := 0
		sum := decimal.Zero
		seen := make(map[Key]bool)
		for _, item := range state.Items() {
			require.GreaterOrEqual(t, item.Quantity, 1)
			require.NotEmpty(t, item.Size)
			require.False(t, seen[item.Key()], "duplicate key %v", item.Key())
			seen[item.Key()] = true
			count += item.Quantity
			sum = sum.Add(pricing.LineTotal(item.NumericPrice, item.Quantity))
		}
		require.Equal(t, count, state.TotalItems())
		require.Equal(t, pricing.Float(sum), state.TotalPrice())
	}
}
