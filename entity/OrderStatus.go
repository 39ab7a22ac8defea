package entity

// OrderStatus is the delivery state of an order. The wire values match what
// the frontend renders, so they are not normalized.
type OrderStatus string

const (
	StatusConfirmed OrderStatus = "Confirmed"
	StatusOnTheWay  OrderStatus = "on-the-way"
	StatusDelivered OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusOnTheWay, StatusDelivered:
		return true
	}
	return false
}

// Next returns the status that follows s. Delivered is terminal.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusConfirmed:
		return StatusOnTheWay, true
	case StatusOnTheWay:
		return StatusDelivered, true
	}
	return "", false
}

// CanTransition reports whether from -> to is a legal single step. The chain
// is monotonic: Confirmed -> on-the-way -> delivered, no reverse, no skip.
func CanTransition(from, to OrderStatus) bool {
	next, ok := from.Next()
	return ok && next == to
}
