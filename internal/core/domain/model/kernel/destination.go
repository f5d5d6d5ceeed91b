package kernel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/guard"
)

// ErrDestinationIsNotConstructed is returned when attempting to use an
// improperly initialized Destination. Destinations must be created using the
// NewDestination constructor to ensure their fields are normalized.
var ErrDestinationIsNotConstructed = errs.NewValueIsRequiredError(
	"destination must be created via NewDestination constructor")

// Destination represents a shipping destination used for delivery-agent
// matching. It is an immutable value object holding a normalized city name
// and pincode.
//
// Normalization rules:
//   - city: surrounding whitespace trimmed, lowercased (city matching is
//     case-insensitive throughout the system)
//   - pincode: surrounding whitespace trimmed
//
// The pincode is the finest-grained locality key; the city is the fallback.
// The zero value of Destination is invalid and will fail validation.
//
// Example:
//
//	dest, err := kernel.NewDestination(" Bangalore ", "560001")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(dest.City())    // "bangalore"
//	fmt.Println(dest.Pincode()) // "560001"
type Destination struct { //nolint:recvcheck //using for validation
	city    string
	pincode string
	guard   guard.ConstructorGuard
}

// NewDestination creates a normalized Destination from a raw city name and
// pincode. Both values are required; empty (or whitespace-only) input is
// rejected with a validation error.
func NewDestination(city string, pincode string) (Destination, error) {
	dest := Destination{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(dest.setCity(city), dest.setPincode(pincode)); err != nil {
		return Destination{}, err
	}

	return dest, nil
}

// Validate checks if the Destination was properly constructed using the
// constructor. The zero value of Destination fails this validation.
func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}

// City returns the normalized (trimmed, lowercased) city name.
func (d Destination) City() string {
	return d.city
}

// Pincode returns the trimmed pincode.
func (d Destination) Pincode() string {
	return d.pincode
}

// IsEqual compares two destinations by their normalized fields.
func (d Destination) IsEqual(other Destination) bool {
	return d.city == other.city && d.pincode == other.pincode
}

// String implements fmt.Stringer for logging and error messages.
func (d Destination) String() string {
	return fmt.Sprintf("Destination(%s, %s)", d.city, d.pincode)
}

// NormalizeCity applies the destination city normalization (trim + lowercase)
// to a raw city string. Agent service areas use the same normalization so
// that city comparison is always exact after normalization.
func NormalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// NormalizePincode applies the destination pincode normalization (trim) to a
// raw pincode string.
func NormalizePincode(pincode string) string {
	return strings.TrimSpace(pincode)
}

func (d *Destination) setCity(city string) error {
	normalized := NormalizeCity(city)
	if normalized == "" {
		return errs.NewValueIsRequiredError("city")
	}

	d.city = normalized
	return nil
}

func (d *Destination) setPincode(pincode string) error {
	normalized := NormalizePincode(pincode)
	if normalized == "" {
		return errs.NewValueIsRequiredError("pincode")
	}

	d.pincode = normalized
	return nil
}
