package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinaytz/theSkFoodBackend/pkg/cart"
)

func line(id string, qty int) cart.Line {
	return cart.Line{
		ID:             id,
		MealType:       "lunch",
		SabjisSelected: []string{"Aloo Gobi"},
		Base:           "roti",
		Quantity:       qty,
		BasePrice:      60,
	}
}

func TestAddMergesSameID(t *testing.T) {
	c := cart.New()
	c.Add(line("a", 1))
	c.Add(line("a", 2))

	lines := c.Lines()
	require.Len(t, lines, 1, "same id must merge, not duplicate")
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, int64(180), lines[0].Total)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	c := cart.New()
	c.Add(line("a", 1))
	c.Add(line("b", 1))
	c.Add(line("c", 1))
	c.Remove("b")

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "a", lines[0].ID)
	assert.Equal(t, "c", lines[1].ID)
}

func TestSetQuantity(t *testing.T) {
	c := cart.New()
	c.Add(line("a", 2))

	c.SetQuantity("a", 5)
	assert.Equal(t, 5, c.Lines()[0].Quantity)
	assert.Equal(t, int64(300), c.Lines()[0].Total)

	// zero or below removes the line
	c.SetQuantity("a", 0)
	assert.Empty(t, c.Lines())
}

func TestSummary(t *testing.T) {
	c := cart.New()
	l := line("a", 2) // unit 60, total 120
	c.Add(l)

	special := line("b", 1)
	special.IsSpecial = true
	special.ExtraRoti = 2 // unit 60+20+20 = 100
	c.Add(special)

	s := c.Summary()
	assert.Equal(t, 3, s.TotalItems)
	assert.Equal(t, int64(220), s.Subtotal)
	assert.Equal(t, int64(20), s.DeliveryFee)
	assert.Equal(t, int64(11), s.Tax)
	assert.Equal(t, int64(251), s.GrandTotal)
}

func TestSummaryEmptyCartWaivesDeliveryFee(t *testing.T) {
	s := cart.New().Summary()
	assert.Equal(t, int64(0), s.Subtotal)
	assert.Equal(t, int64(0), s.DeliveryFee)
	assert.Equal(t, int64(0), s.Tax)
	assert.Equal(t, int64(0), s.GrandTotal)
}

func TestClear(t *testing.T) {
	c := cart.New()
	c.Add(line("a", 1))
	c.Clear()
	assert.Empty(t, c.Lines())
	assert.Equal(t, int64(0), c.Summary().GrandTotal)
}
