package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// RewardPointsUsed captures the loyalty redemption applied to an order at
// creation time. It is immutable afterward; the zero value means no points
// were redeemed.
type RewardPointsUsed struct {
	Points         int
	DiscountAmount float64
}

// Order is the aggregate root for a customer purchase. It owns the composite
// lifecycle state: the payment, delivery and return/exchange sub-machines,
// plus the delivery-agent assignment and the refund flag.
//
// Invariants:
//   - items are non-empty and immutable after creation
//   - a COD order is never Delivered without codPaymentReceived
//   - a delivery agent is assigned at most once, and never after delivery
//   - the return request type moves off NoRequest exactly once
//   - isRefunded is true if and only if a Return request reached Completed
type Order struct {
	id          kernel.UUID
	customerID  kernel.UUID
	items       []Item
	destination kernel.Destination

	paymentMethod      PaymentMethod
	paymentStatus      PaymentStatus
	codPaymentReceived bool

	deliveryStatus DeliveryStatus
	agentID        *kernel.UUID

	returnRequest ReturnRequest
	isRefunded    bool

	rewardPointsUsed RewardPointsUsed
	createdAt        time.Time

	isConstructed bool
}

// NewOrder creates a new Order in the initial state: unpaid, pending
// delivery, no agent, no return request.
//
// The item list must be non-empty and every item must come from NewItem.
// The redeemed-points capture is recorded as-is; the caller (the checkout
// use case) is responsible for having performed the redemption first.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	destination kernel.Destination,
	paymentMethod PaymentMethod,
	rewardPointsUsed RewardPointsUsed,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		paymentStatus:  Unpaid,
		deliveryStatus: Pending,
		createdAt:      createdAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setDestination(destination),
		order.setPaymentMethod(paymentMethod),
		order.setRewardPointsUsed(rewardPointsUsed),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. All sub-machine
// states are validated individually and for mutual consistency, so a corrupt
// row cannot produce an aggregate that violates the lifecycle invariants.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	destination kernel.Destination,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	codPaymentReceived bool,
	deliveryStatus DeliveryStatus,
	agentID *kernel.UUID,
	returnRequest ReturnRequest,
	isRefunded bool,
	rewardPointsUsed RewardPointsUsed,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		codPaymentReceived: codPaymentReceived,
		returnRequest:      returnRequest,
		isRefunded:         isRefunded,
		createdAt:          createdAt,
		isConstructed:      true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setDestination(destination),
		order.setPaymentMethod(paymentMethod),
		order.setRewardPointsUsed(rewardPointsUsed),
		paymentStatus.Validate(),
		deliveryStatus.Validate(),
	); err != nil {
		return nil, err
	}

	order.paymentStatus = paymentStatus
	order.deliveryStatus = deliveryStatus

	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return nil, err
		}
		assigned := *agentID
		order.agentID = &assigned
	}

	if err := order.validateConsistency(); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreReturnRequest rebuilds the return/exchange sub-state from persisted
// fields. Used by the persistence adapter together with RestoreOrder.
func RestoreReturnRequest(requestType ReturnType, status ReturnStatus, reason string, requestedAt time.Time) (ReturnRequest, error) {
	if requestType == NoRequest {
		if status != ReturnStatusNone {
			return ReturnRequest{}, errs.NewValueIsInvalidErrorWithCause("returnRequest",
				fmt.Errorf("status %s without a request type", status))
		}
		return ReturnRequest{}, nil
	}

	if err := errors.Join(requestType.Validate(), status.Validate()); err != nil {
		return ReturnRequest{}, err
	}
	if status == ReturnStatusNone {
		return ReturnRequest{}, errs.NewValueIsInvalidErrorWithCause("returnRequest",
			fmt.Errorf("request type %s without a status", requestType))
	}

	return ReturnRequest{
		requestType: requestType,
		status:      status,
		reason:      reason,
		requestedAt: requestedAt,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Destination returns the shipping destination.
func (o *Order) Destination() kernel.Destination {
	return o.destination
}

// PaymentMethod returns how the order is paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the payment sub-state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// IsPaid reports whether the payment has been captured or collected.
func (o *Order) IsPaid() bool {
	return o.paymentStatus == Paid
}

// CodPaymentReceived reports whether cash has been collected. Only meaningful
// for CashOnDelivery orders.
func (o *Order) CodPaymentReceived() bool {
	return o.codPaymentReceived
}

// DeliveryStatus returns the delivery sub-state.
func (o *Order) DeliveryStatus() DeliveryStatus {
	return o.deliveryStatus
}

// IsDelivered reports whether the order reached the customer.
func (o *Order) IsDelivered() bool {
	return o.deliveryStatus == Delivered
}

// Agent returns the assigned delivery agent's ID, or nil when the order is
// unassigned.
func (o *Order) Agent() *kernel.UUID {
	return o.agentID
}

// ReturnRequest returns the return/exchange sub-state.
func (o *Order) ReturnRequest() ReturnRequest {
	return o.returnRequest
}

// IsRefunded reports whether a completed return triggered a refund.
func (o *Order) IsRefunded() bool {
	return o.isRefunded
}

// RewardPointsUsed returns the loyalty redemption captured at creation.
func (o *Order) RewardPointsUsed() RewardPointsUsed {
	return o.rewardPointsUsed
}

// CreatedAt returns the order creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ItemsTotal returns the sum of all line subtotals before any points
// discount.
func (o *Order) ItemsTotal() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}

// AmountPayable returns the amount paid through the payment instrument: the
// items total minus the points discount, floored at zero. Loyalty points are
// earned on this amount only.
func (o *Order) AmountPayable() float64 {
	payable := o.ItemsTotal() - o.rewardPointsUsed.DiscountAmount
	if payable < 0 {
		return 0
	}
	return payable
}

// AssignAgent assigns a delivery agent to the order. An agent is assigned at
// most once and never after delivery; violations are invalid transitions.
func (o *Order) AssignAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	if o.agentID != nil {
		return errs.NewInvalidTransitionErrorWithCause("agent assignment",
			"Assigned", "Assigned", errors.New("agent already assigned"))
	}
	if o.deliveryStatus == Delivered {
		return errs.NewInvalidTransitionErrorWithCause("agent assignment",
			Delivered.String(), "Assigned", errors.New("order already delivered"))
	}

	assigned := agentID
	o.agentID = &assigned
	return nil
}

// MarkPaid records a successful payment verification for a prepaid order.
// COD orders are paid through CollectCodPayment instead.
func (o *Order) MarkPaid() error {
	if o.paymentMethod == CashOnDelivery {
		return errs.NewInvalidTransitionErrorWithCause("order payment",
			o.paymentStatus.String(), Paid.String(),
			errors.New("cash orders are paid via COD collection"))
	}

	newStatus, err := o.paymentStatus.Pay()
	if err != nil {
		return err
	}

	o.paymentStatus = newStatus
	return nil
}

// CollectCodPayment records the cash collection for a COD order and marks it
// paid in the same step. Collecting twice, or collecting on a prepaid order,
// is an invalid transition.
func (o *Order) CollectCodPayment() error {
	if o.paymentMethod != CashOnDelivery {
		return errs.NewInvalidTransitionErrorWithCause("order payment",
			o.paymentStatus.String(), Paid.String(),
			fmt.Errorf("payment method is %s, not %s", o.paymentMethod, CashOnDelivery))
	}
	if o.codPaymentReceived {
		return errs.NewInvalidTransitionErrorWithCause("order payment",
			Paid.String(), Paid.String(), errors.New("COD payment already collected"))
	}

	newStatus, err := o.paymentStatus.Pay()
	if err != nil {
		return err
	}

	o.codPaymentReceived = true
	o.paymentStatus = newStatus
	return nil
}

// MarkDelivered records the delivery confirmation.
//
// Guard: a COD order cannot be delivered until its cash has been collected.
// The caller must collect COD payment first; the ordering is enforced, not
// auto-corrected.
func (o *Order) MarkDelivered() error {
	if o.paymentMethod == CashOnDelivery && !o.codPaymentReceived {
		return errs.NewInvalidTransitionErrorWithCause("order delivery",
			o.deliveryStatus.String(), Delivered.String(), errCodNotCollected)
	}

	newStatus, err := o.deliveryStatus.Deliver()
	if err != nil {
		return err
	}

	o.deliveryStatus = newStatus
	return nil
}

// RequestReturn files a return or exchange request.
//
// Guards: the order must be delivered, a reason is required, and only one
// request is allowed per order; a second request is an invalid transition
// regardless of the first one's status.
func (o *Order) RequestReturn(requestType ReturnType, reason string, requestedAt time.Time) error {
	if err := requestType.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("return reason")
	}
	if o.deliveryStatus != Delivered {
		return errs.NewInvalidTransitionErrorWithCause("return request",
			ReturnStatusNone.String(), ReturnPending.String(),
			errors.New("order not delivered"))
	}
	if o.returnRequest.Exists() {
		return errs.NewInvalidTransitionErrorWithCause("return request",
			o.returnRequest.status.String(), ReturnPending.String(),
			errors.New("a return/exchange request already exists"))
	}

	newStatus, err := o.returnRequest.status.TransitionTo(ReturnPending)
	if err != nil {
		return err
	}

	o.returnRequest = ReturnRequest{
		requestType: requestType,
		status:      newStatus,
		reason:      reason,
		requestedAt: requestedAt,
	}
	return nil
}

// UpdateReturnStatus advances the return/exchange workflow according to the
// transition table.
//
// Side effect: when a Return (not an Exchange) reaches Completed, the refund
// flag is set in the same step, so the status write and the refund flag are
// atomic within the aggregate.
func (o *Order) UpdateReturnStatus(next ReturnStatus) error {
	if !o.returnRequest.Exists() {
		return errs.NewInvalidTransitionError("return request",
			ReturnStatusNone.String(), next.String())
	}

	newStatus, err := o.returnRequest.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.returnRequest.status = newStatus
	if newStatus == ReturnCompleted && o.returnRequest.requestType == Return {
		o.isRefunded = true
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDestination(destination kernel.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setRewardPointsUsed(used RewardPointsUsed) error {
	if used.Points < 0 || used.DiscountAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("rewardPointsUsed",
			fmt.Errorf("points %d / discount %f must not be negative", used.Points, used.DiscountAmount))
	}
	o.rewardPointsUsed = used
	return nil
}

// validateConsistency checks cross-sub-machine invariants when restoring
// from persistence.
func (o *Order) validateConsistency() error {
	if o.deliveryStatus == Delivered && o.paymentMethod == CashOnDelivery && !o.codPaymentReceived {
		return errs.NewValueIsInvalidErrorWithCause("order",
			errors.New("delivered COD order without collected payment"))
	}
	if o.returnRequest.Exists() && o.deliveryStatus != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("order",
			errors.New("return/exchange request on an undelivered order"))
	}
	if o.isRefunded &&
		(o.returnRequest.requestType != Return || o.returnRequest.status != ReturnCompleted) {
		return errs.NewValueIsInvalidErrorWithCause("order",
			errors.New("refund flag without a completed return"))
	}
	return nil
}
