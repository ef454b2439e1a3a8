package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navbug/storefront-core/internal/pkg/clock"
)

func newTestCart() *Cart {
	return NewCart(DefaultPricingPolicy(), clock.NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
}

func snapshot(id string, price int64, stock int) ProductSnapshot {
	return ProductSnapshot{
		ID:    id,
		Title: "Product " + id,
		Price: MoneyFromInt(price),
		Image: "https://cdn.example.com/" + id + ".png",
		Stock: stock,
	}
}

func TestCart_AddItem(t *testing.T) {
	t.Run("adds new item with quantity 1", func(t *testing.T) {
		c := newTestCart()
		err := c.AddItem(snapshot("p1", 499, 10))
		require.NoError(t, err)

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "p1", items[0].ProductID)
		assert.Equal(t, 1, items[0].Quantity)
		assert.Equal(t, 10, items[0].Stock)
		assert.True(t, c.Subtotal().Equals(MoneyFromInt(499)))
	})

	t.Run("duplicate add leaves item count unchanged", func(t *testing.T) {
		c := newTestCart()
		require.NoError(t, c.AddItem(snapshot("p1", 499, 10)))

		err := c.AddItem(snapshot("p1", 499, 10))
		assert.ErrorIs(t, err, ErrItemAlreadyInCart)
		assert.Equal(t, 1, c.ItemCount())
	})

	t.Run("empty product id rejected", func(t *testing.T) {
		c := newTestCart()
		err := c.AddItem(snapshot("", 499, 10))
		assert.ErrorIs(t, err, ErrEmptyProductID)
		assert.True(t, c.IsEmpty())
	})

	t.Run("insertion order preserved", func(t *testing.T) {
		c := newTestCart()
		require.NoError(t, c.AddItem(snapshot("p1", 100, 5)))
		require.NoError(t, c.AddItem(snapshot("p2", 200, 5)))
		require.NoError(t, c.AddItem(snapshot("p3", 300, 5)))

		items := c.Items()
		require.Len(t, items, 3)
		assert.Equal(t, "p1", items[0].ProductID)
		assert.Equal(t, "p2", items[1].ProductID)
		assert.Equal(t, "p3", items[2].ProductID)
	})
}

func TestCart_RemoveItem(t *testing.T) {
	c := newTestCart()
	require.NoError(t, c.AddItem(snapshot("p1", 499, 10)))
	require.NoError(t, c.AddItem(snapshot("p2", 999, 10)))

	t.Run("removes matching item", func(t *testing.T) {
		require.NoError(t, c.RemoveItem("p1"))
		assert.Equal(t, 1, c.ItemCount())
		assert.True(t, c.Subtotal().Equals(MoneyFromInt(999)))
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		require.NoError(t, c.RemoveItem("ghost"))
		assert.Equal(t, 1, c.ItemCount())
	})
}

func TestCart_ChangeQuantity(t *testing.T) {
	c := newTestCart()
	require.NoError(t, c.AddItem(snapshot("p1", 100, 5)))

	t.Run("valid change applies and recomputes", func(t *testing.T) {
		require.NoError(t, c.ChangeQuantity("p1", 3))
		assert.Equal(t, 3, c.Items()[0].Quantity)
		assert.True(t, c.Subtotal().Equals(MoneyFromInt(300)))
	})

	t.Run("below one rejected without state change", func(t *testing.T) {
		err := c.ChangeQuantity("p1", 0)
		assert.ErrorIs(t, err, ErrQuantityOutOfRange)
		assert.Equal(t, 3, c.Items()[0].Quantity)
	})

	t.Run("above stock snapshot rejected without state change", func(t *testing.T) {
		err := c.ChangeQuantity("p1", 6)
		assert.ErrorIs(t, err, ErrQuantityOutOfRange)
		assert.Equal(t, 3, c.Items()[0].Quantity)
	})

	t.Run("quantity equal to stock allowed", func(t *testing.T) {
		require.NoError(t, c.ChangeQuantity("p1", 5))
		assert.Equal(t, 5, c.Items()[0].Quantity)
	})

	t.Run("unknown product rejected", func(t *testing.T) {
		err := c.ChangeQuantity("ghost", 2)
		assert.ErrorIs(t, err, ErrItemNotInCart)
	})
}

func TestCart_Totals(t *testing.T) {
	t.Run("subtotal above threshold ships free", func(t *testing.T) {
		c := newTestCart()
		require.NoError(t, c.AddItem(snapshot("p1", 600, 10)))
		require.NoError(t, c.ChangeQuantity("p1", 2)) // subtotal 1200

		assert.True(t, c.Subtotal().Equals(MoneyFromInt(1200)))
		assert.True(t, c.ShippingCharges().IsZero())
		assert.True(t, c.Total().Equals(MoneyFromInt(1200)))
	})

	t.Run("subtotal at or below threshold pays flat fee", func(t *testing.T) {
		c := newTestCart()
		require.NoError(t, c.AddItem(snapshot("p1", 500, 10)))

		assert.True(t, c.Subtotal().Equals(MoneyFromInt(500)))
		assert.True(t, c.ShippingCharges().Equals(MoneyFromInt(200)))
		assert.True(t, c.Total().Equals(MoneyFromInt(700)))
	})

	t.Run("exactly at threshold still pays fee", func(t *testing.T) {
		c := newTestCart()
		require.NoError(t, c.AddItem(snapshot("p1", 1000, 10)))

		assert.True(t, c.ShippingCharges().Equals(MoneyFromInt(200)))
		assert.True(t, c.Total().Equals(MoneyFromInt(1200)))
	})

	t.Run("total equals subtotal plus shipping after every mutation", func(t *testing.T) {
		c := newTestCart()
		require.NoError(t, c.AddItem(snapshot("p1", 499, 10)))
		require.NoError(t, c.AddItem(snapshot("p2", 251, 10)))
		require.NoError(t, c.ChangeQuantity("p1", 4))
		require.NoError(t, c.RemoveItem("p2"))

		want := c.Subtotal().Add(c.ShippingCharges())
		assert.True(t, c.Total().Equals(want))
	})

	t.Run("recompute is idempotent", func(t *testing.T) {
		c := newTestCart()
		require.NoError(t, c.AddItem(snapshot("p1", 500, 10)))

		before := c.Total()
		c.RecomputeTotals()
		c.RecomputeTotals()
		assert.True(t, c.Total().Equals(before))
	})
}

func TestCart_SaveShippingInfo(t *testing.T) {
	c := newTestCart()

	t.Run("valid country accepted", func(t *testing.T) {
		err := c.SaveShippingInfo(ShippingInfo{
			Address: "12 MG Road",
			City:    "Bengaluru",
			State:   "Karnataka",
			Country: "india",
			PinCode: "560001",
		})
		require.NoError(t, err)
		assert.Equal(t, "Bengaluru", c.ShippingInfo().City)
	})

	t.Run("country matching is case-insensitive", func(t *testing.T) {
		err := c.SaveShippingInfo(ShippingInfo{Country: "India"})
		assert.NoError(t, err)
	})

	t.Run("unsupported country rejected, draft unchanged", func(t *testing.T) {
		before := c.ShippingInfo()
		err := c.SaveShippingInfo(ShippingInfo{Country: "atlantis"})
		assert.ErrorIs(t, err, ErrUnsupportedCountry)
		assert.Equal(t, before, c.ShippingInfo())
	})

	t.Run("missing country rejected", func(t *testing.T) {
		err := c.SaveShippingInfo(ShippingInfo{City: "Bengaluru"})
		assert.ErrorIs(t, err, ErrUnsupportedCountry)
	})
}

func TestCart_Reset(t *testing.T) {
	c := newTestCart()
	require.NoError(t, c.AddItem(snapshot("p1", 499, 10)))
	require.NoError(t, c.SaveShippingInfo(ShippingInfo{Country: "india"}))

	c.Reset()

	assert.True(t, c.IsEmpty())
	assert.True(t, c.Subtotal().IsZero())
	assert.True(t, c.ShippingCharges().IsZero())
	assert.True(t, c.Total().IsZero())
	assert.Equal(t, ShippingInfo{}, c.ShippingInfo())
}

func TestCart_DrainEvents(t *testing.T) {
	c := newTestCart()
	require.NoError(t, c.AddItem(snapshot("p1", 499, 10)))
	require.NoError(t, c.ChangeQuantity("p1", 2))

	events := c.DrainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "cart.item_added", events[0].EventType())
	assert.Equal(t, "cart.quantity_changed", events[1].EventType())

	// Drained; nothing left.
	assert.Empty(t, c.DrainEvents())

	// Rejected mutations record nothing.
	_ = c.AddItem(snapshot("p1", 499, 10))
	assert.Empty(t, c.DrainEvents())
}
