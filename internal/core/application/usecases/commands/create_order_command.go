package commands

import (
	"errors"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// NewOrderItem carries one order line of the checkout request.
type NewOrderItem struct {
	ProductID kernel.UUID
	Name      string
	Quantity  int
	UnitPrice float64
}

// CreateOrderCommand represents a checkout request: the items being bought,
// where to ship them, how they will be paid for, and optionally how many
// loyalty points to redeem against the total.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), customerID, items, "Mumbai", "400001",
//	    order.Prepaid, 150,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	customerID           kernel.UUID
	items                []NewOrderItem
	destination          kernel.Destination
	paymentMethod        order.PaymentMethod
	rewardPointsToRedeem int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, requires a non-empty item list, a resolvable
// destination, a known payment method and a non-negative redemption amount.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	items []NewOrderItem,
	city string,
	pincode string,
	paymentMethod order.PaymentMethod,
	rewardPointsToRedeem int,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
		orderCommand.setDestination(city, pincode),
		orderCommand.setPaymentMethod(paymentMethod),
		orderCommand.setRewardPointsToRedeem(rewardPointsToRedeem),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the buying customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []NewOrderItem {
	items := make([]NewOrderItem, len(c.items))
	copy(items, c.items)
	return items
}

// Destination returns the normalized shipping destination.
func (c CreateOrderCommand) Destination() kernel.Destination {
	return c.destination
}

// PaymentMethod returns the chosen payment method.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// RewardPointsToRedeem returns the points to redeem, zero if none.
func (c CreateOrderCommand) RewardPointsToRedeem() int {
	return c.rewardPointsToRedeem
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []NewOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	c.items = make([]NewOrderItem, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setDestination(city string, pincode string) error {
	destination, err := kernel.NewDestination(city, pincode)
	if err != nil {
		return err
	}

	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setRewardPointsToRedeem(points int) error {
	if points < 0 {
		return errs.NewValueIsInvalidError("reward points to redeem")
	}

	c.rewardPointsToRedeem = points
	return nil
}
