package order

import "strings"

// DeliveryMethod is the normalized form of the free-text delivery field on
// an order row.
type DeliveryMethod string

const (
	// MethodDelivery means the order is delivered to the customer.
	MethodDelivery DeliveryMethod = "delivery"

	// MethodPickup means the customer collects the order in store.
	MethodPickup DeliveryMethod = "pickup"

	// MethodUnknown is the result for anything that is not an exact
	// trimmed, lower-cased match; the value is never guessed.
	MethodUnknown DeliveryMethod = "unknown"
)

// NormalizeDeliveryMethod maps free text onto a DeliveryMethod.
func NormalizeDeliveryMethod(raw string) DeliveryMethod {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(MethodDelivery):
		return MethodDelivery
	case string(MethodPickup):
		return MethodPickup
	default:
		return MethodUnknown
	}
}

// String returns the normalized method name.
func (m DeliveryMethod) String() string {
	return string(m)
}
