package commands

import (
	"errors"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/guard"
)

var ErrRequestReturnExchangeCommandIsNotConstructed = errors.New(
	"RequestReturnExchangeCommand must be created via NewRequestReturnExchangeCommand constructor",
)

// RequestReturnExchangeCommand represents a customer opening a return or
// exchange request for a delivered order they own.
type RequestReturnExchangeCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerID  kernel.UUID
	requestType order.ReturnType
	reason      string

	guard guard.ConstructorGuard
}

// NewRequestReturnExchangeCommand creates a command to open a return or
// exchange request. The reason is mandatory.
func NewRequestReturnExchangeCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	requestType order.ReturnType,
	reason string,
) (RequestReturnExchangeCommand, error) {
	cmd := RequestReturnExchangeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRequestType(requestType),
		cmd.setReason(reason),
	); err != nil {
		return RequestReturnExchangeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestReturnExchangeCommand) Validate() error {
	return c.guard.Validate(ErrRequestReturnExchangeCommandIsNotConstructed)
}

// OrderID returns the order the request is for.
func (c RequestReturnExchangeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the requesting customer.
func (c RequestReturnExchangeCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RequestType returns whether a return or an exchange is requested.
func (c RequestReturnExchangeCommand) RequestType() order.ReturnType {
	return c.requestType
}

// Reason returns the customer's stated reason.
func (c RequestReturnExchangeCommand) Reason() string {
	return c.reason
}

func (c *RequestReturnExchangeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestReturnExchangeCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RequestReturnExchangeCommand) setRequestType(requestType order.ReturnType) error {
	if err := requestType.Validate(); err != nil {
		return err
	}

	c.requestType = requestType
	return nil
}

func (c *RequestReturnExchangeCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
