package store

import "fmt"

// DestinationKind tags the active modal variant.
type DestinationKind int

const (
	DestinationNone DestinationKind = iota
	DestinationConfirmation
	DestinationSuccess
	DestinationError
)

// Destination is the cart's modal overlay state. At most one variant is
// active at a time: opening a new destination always replaces the previous
// one wholesale, and dismissal resets the single field to the zero value.
// It holds no behavior of its own; the cart machine drives its lifecycle.
type Destination struct {
	Kind    DestinationKind
	Title   string
	Message string
}

func (d Destination) IsActive() bool {
	return d.Kind != DestinationNone
}

// ConfirmationDestination asks the user to confirm a purchase of the given
// formatted total.
func ConfirmationDestination(totalPrice string) Destination {
	return Destination{
		Kind:    DestinationConfirmation,
		Title:   "Confirm your purchase",
		Message: fmt.Sprintf("Do you want to proceed with your purchase of %s?", totalPrice),
	}
}

// SuccessDestination acknowledges an accepted order, showing the order
// sink's confirmation message.
func SuccessDestination(message string) Destination {
	if message == "" {
		message = "Your order is in process."
	}
	return Destination{
		Kind:    DestinationSuccess,
		Title:   "Thank you!",
		Message: message,
	}
}

// ErrorDestination reports a failed submission. The underlying cause is
// logged, never shown.
func ErrorDestination() Destination {
	return Destination{
		Kind:    DestinationError,
		Title:   "Oops!",
		Message: "Unable to send order, try again later.",
	}
}
