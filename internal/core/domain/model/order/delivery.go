package order

import (
	"errors"
	"fmt"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
)

// DeliveryStatus represents the delivery sub-state of an order.
//
// State transitions:
//
//	Pending ──> Delivered
//
// The transition is triggered by the assigned delivery agent's confirmation.
// For cash-on-delivery orders the aggregate enforces that cash has been
// collected before this transition is allowed.
type DeliveryStatus int

const (
	// DeliveryStatusUnknown represents an invalid or undefined delivery status.
	DeliveryStatusUnknown DeliveryStatus = iota

	// Pending is the initial delivery status of every order.
	Pending

	// Delivered indicates the order has reached the customer.
	// This is a final state for the delivery sub-machine.
	Delivered
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryStatusUnknown: "Unknown",
		Pending:               "Pending",
		Delivered:             "Delivered",
	}
}

// Validate checks if the DeliveryStatus value is valid.
func (s DeliveryStatus) Validate() error {
	if s != Pending && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryStatus", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the human-readable name of the delivery status.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Pending -> Delivered
//
// Returns (0, InvalidTransitionError) for any other starting state, including
// a repeated delivery confirmation.
func (s DeliveryStatus) Deliver() (DeliveryStatus, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("order delivery", s.String(), Delivered.String())
	}

	return Delivered, nil
}

// errCodNotCollected is the cause recorded on the invalid-transition error
// when a COD order's delivery is confirmed before its cash is collected.
var errCodNotCollected = errors.New("COD payment not collected")
