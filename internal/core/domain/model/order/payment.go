package order

import (
	"fmt"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
)

// PaymentMethod identifies how an order is paid.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	// This value (0) helps catch uninitialized PaymentMethod values.
	PaymentMethodUnknown PaymentMethod = iota

	// CashOnDelivery means cash is collected by the delivery agent at
	// delivery time. Orders with this method carry an extra guard: delivery
	// cannot be confirmed until the cash has been collected.
	CashOnDelivery

	// Prepaid means the order is paid through a payment instrument before
	// delivery; the payment-verification callback marks it paid.
	Prepaid
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "Unknown",
		CashOnDelivery:       "CashOnDelivery",
		Prepaid:              "Prepaid",
	}
}

// PaymentMethodFromString parses a wire representation ("cod" or "prepaid")
// into a PaymentMethod. Parsing is case-sensitive and intentionally strict.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	switch s {
	case "cod", "cash-on-delivery":
		return CashOnDelivery, nil
	case "prepaid":
		return Prepaid, nil
	default:
		return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod", fmt.Errorf("%q is not a valid payment method", s))
	}
}

// Validate checks if the PaymentMethod value is valid.
// Valid methods are CashOnDelivery and Prepaid.
func (m PaymentMethod) Validate() error {
	if m != CashOnDelivery && m != Prepaid {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the human-readable name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// PaymentStatus represents the payment sub-state of an order.
//
// State transitions:
//
//	Unpaid ──> Paid
//
// The transition is triggered either by the external payment-verification
// callback (prepaid orders) or by the COD-collection event (cash orders).
// Paid is a final state; paying twice is an invalid transition.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// Unpaid is the initial payment status of every order.
	Unpaid

	// Paid indicates the order's payment has been captured or collected.
	Paid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "Unknown",
		Unpaid:               "Unpaid",
		Paid:                 "Paid",
	}
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if s != Unpaid && s != Paid {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Unpaid -> Paid
//
// Returns (0, InvalidTransitionError) for any other starting state; the
// guard violation is never silently corrected.
func (s PaymentStatus) Pay() (PaymentStatus, error) {
	if s != Unpaid {
		return 0, errs.NewInvalidTransitionError("order payment", s.String(), Paid.String())
	}

	return Paid, nil
}
