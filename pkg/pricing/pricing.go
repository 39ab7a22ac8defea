// Package pricing computes thali prices. All amounts are integer rupees.
package pricing

import "math"

const (
	// DefaultBasePrice applies when no menu is active for a meal period.
	DefaultBasePrice int64 = 60

	// SpecialSurcharge is added once per thali when a special sabji is picked.
	SpecialSurcharge int64 = 20

	// PerRotiPrice is the surcharge per extra roti.
	PerRotiPrice int64 = 10

	// DeliveryFee is flat per checkout, waived on an empty cart.
	DeliveryFee int64 = 20

	// TaxRate is applied to the cart subtotal, rounded to the nearest rupee.
	TaxRate = 0.05
)

// UnitPrice returns the price of a single thali. Inputs are not validated;
// callers constrain extraRoti to non-negative integers.
func UnitPrice(basePrice int64, isSpecial bool, extraRoti int) int64 {
	p := basePrice + int64(extraRoti)*PerRotiPrice
	if isSpecial {
		p += SpecialSurcharge
	}
	return p
}

// LineTotal returns the price of quantity thalis at the given unit price.
func LineTotal(unitPrice int64, quantity int) int64 {
	return unitPrice * int64(quantity)
}

// Tax returns the tax on a subtotal, rounded to the nearest rupee.
func Tax(subtotal int64) int64 {
	return int64(math.Round(float64(subtotal) * TaxRate))
}
