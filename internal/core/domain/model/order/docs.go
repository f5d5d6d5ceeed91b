// Package order contains the Order aggregate and its lifecycle state
// machines.
//
// An order's state is composite: payment, delivery and return/exchange are
// three orthogonal sub-machines, each modeled as its own small value object
// with an explicit transition table. The aggregate coordinates the guards
// that span sub-machines:
//
//   - a cash-on-delivery order cannot be delivered until its cash has been
//     collected
//   - a return or exchange can only be requested after delivery, and at most
//     once per order
//   - the refund flag is set if and only if a return (not an exchange)
//     reaches the Completed status, atomically with that transition
//
// Items and the redeemed-points capture are immutable once the order is
// created. A delivery agent is assigned at most once.
package order
