// Package cart aggregates thali lines ahead of checkout. The cart itself is
// client state; the server rebuilds one from the submitted lines to re-derive
// every amount with catalog prices instead of trusting the client's math.
package cart

import (
	"github.com/vinaytz/theSkFoodBackend/pkg/pricing"
)

// Line is one configured thali with a quantity. ID is the client-local line
// identity (a uuid on the frontend); two adds with the same ID merge.
type Line struct {
	ID             string   `json:"id"`
	MealType       string   `json:"mealType"`
	SabjisSelected []string `json:"sabjisSelected"`
	Base           string   `json:"base"`
	ExtraRoti      int      `json:"extraRoti"`
	IsSpecial      bool     `json:"isSpecial"`
	Quantity       int      `json:"quantity"`
	BasePrice      int64    `json:"basePrice"`
	UnitPrice      int64    `json:"unitPrice"`
	Total          int64    `json:"total"`
}

// Summary is the derived cart totals.
type Summary struct {
	TotalItems  int   `json:"totalItems"`
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Tax         int64 `json:"tax"`
	GrandTotal  int64 `json:"grandTotal"`
}

// Cart holds an ordered collection of lines.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add appends a line, or merges quantities when a line with the same ID is
// already present. The line's unit price is normalized into its total.
func (c *Cart) Add(l Line) {
	l.UnitPrice = pricing.UnitPrice(l.BasePrice, l.IsSpecial, l.ExtraRoti)
	for i := range c.lines {
		if c.lines[i].ID == l.ID {
			c.lines[i].Quantity += l.Quantity
			c.lines[i].Total = pricing.LineTotal(c.lines[i].UnitPrice, c.lines[i].Quantity)
			return
		}
	}
	l.Total = pricing.LineTotal(l.UnitPrice, l.Quantity)
	c.lines = append(c.lines, l)
}

// Remove drops the line with the given ID. Unknown IDs are a no-op.
func (c *Cart) Remove(id string) {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity changes a line's quantity; zero or below removes the line.
func (c *Cart) SetQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.Remove(id)
		return
	}
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Quantity = quantity
			c.lines[i].Total = pricing.LineTotal(c.lines[i].UnitPrice, quantity)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns the lines in insertion order.
func (c *Cart) Lines() []Line {
	return c.lines
}

// Summary derives the cart totals: delivery fee is waived on an empty cart,
// tax is 5% of the subtotal rounded to the nearest rupee.
func (c *Cart) Summary() Summary {
	var s Summary
	for _, l := range c.lines {
		s.TotalItems += l.Quantity
		s.Subtotal += l.Total
	}
	if s.Subtotal > 0 {
		s.DeliveryFee = pricing.DeliveryFee
	}
	s.Tax = pricing.Tax(s.Subtotal)
	s.GrandTotal = s.Subtotal + s.DeliveryFee + s.Tax
	return s
}
