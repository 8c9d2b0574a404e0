package domain

import (
	"fmt"
	"strings"
)

// OrderStatus is one of the named states an order moves through. The main
// lifecycle is a fixed sequence; Cancelled and Returned are absorbing side
// states reachable from any non-terminal state.
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "Order Placed"
	StatusAccepted       OrderStatus = "Order Accepted"
	StatusProcessing     OrderStatus = "Order Processing"
	StatusPacked         OrderStatus = "Order Packed"
	StatusPicked         OrderStatus = "Order Picked"
	StatusShipped        OrderStatus = "Order Shipped"
	StatusOutForDelivery OrderStatus = "Order Out for Delivery"
	StatusDelivered      OrderStatus = "Order Delivered"
	StatusCancelled      OrderStatus = "Order Cancelled"
	StatusReturned       OrderStatus = "Order Returned"
)

var lifecycle = []OrderStatus{
	StatusPlaced,
	StatusAccepted,
	StatusProcessing,
	StatusPacked,
	StatusPicked,
	StatusShipped,
	StatusOutForDelivery,
	StatusDelivered,
}

// Lifecycle returns the ordered main sequence, Placed through Delivered.
func Lifecycle() []OrderStatus {
	out := make([]OrderStatus, len(lifecycle))
	copy(out, lifecycle)
	return out
}

// Statuses returns every assignable status, lifecycle order first, then the
// absorbing side states. This is the option list for a status selector.
func Statuses() []OrderStatus {
	return append(Lifecycle(), StatusCancelled, StatusReturned)
}

// ParseStatus resolves a raw string to a known status, ignoring case and
// surrounding whitespace.
func ParseStatus(raw string) (OrderStatus, error) {
	cleaned := strings.TrimSpace(raw)
	for _, s := range Statuses() {
		if strings.EqualFold(cleaned, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", raw)
}

func (s OrderStatus) Valid() bool {
	for _, known := range Statuses() {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether no further lifecycle progress is possible.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusReturned
}

// Rank is the position in the main lifecycle, or -1 for Cancelled, Returned
// and unknown values. Callers that want to enforce forward-only transitions
// can compare ranks; the controllers deliberately do not (any known status is
// assignable regardless of the current one).
func (s OrderStatus) Rank() int {
	for i, step := range lifecycle {
		if s == step {
			return i
		}
	}
	return -1
}

func (s OrderStatus) String() string {
	return string(s)
}
