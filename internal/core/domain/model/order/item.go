package order

import (
	"errors"
	"fmt"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through the
// NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an immutable order line: a product reference with the quantity and
// the unit price captured at checkout time. Prices on an order never change
// after creation, even if the catalog price does.
type Item struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	quantity  int
	unitPrice float64

	guard guard.ConstructorGuard
}

// NewItem creates an order line. Quantity must be positive and the unit price
// non-negative; the product name is carried for display and notifications.
func NewItem(productID kernel.UUID, name string, quantity int, unitPrice float64) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the referenced catalog product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name captured at checkout.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price captured at checkout.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Subtotal returns quantity × unit price for this line.
func (i Item) Subtotal() float64 {
	return float64(i.quantity) * i.unitPrice
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%f is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
