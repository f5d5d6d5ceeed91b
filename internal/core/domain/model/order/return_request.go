package order

import (
	"fmt"
	"time"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"
)

// ReturnType identifies the kind of post-delivery request on an order.
// The type moves off NoRequest exactly once per order.
type ReturnType int

const (
	// NoRequest means no return or exchange has been requested.
	NoRequest ReturnType = iota

	// Return means the customer sends the item back for a refund.
	Return

	// Exchange means the customer sends the item back for a replacement;
	// completion means the replacement shipped, not a refund.
	Exchange
)

func getReturnTypeStrings() map[ReturnType]string {
	return map[ReturnType]string{
		NoRequest: "None",
		Return:    "Return",
		Exchange:  "Exchange",
	}
}

// ReturnTypeFromString parses a wire representation ("return" or "exchange")
// into a ReturnType.
func ReturnTypeFromString(s string) (ReturnType, error) {
	switch s {
	case "return":
		return Return, nil
	case "exchange":
		return Exchange, nil
	default:
		return NoRequest, errs.NewValueIsInvalidErrorWithCause(
			"returnType", fmt.Errorf("%q is not a valid return/exchange type", s))
	}
}

// Validate checks if the ReturnType value names an actual request kind.
func (t ReturnType) Validate() error {
	if t != Return && t != Exchange {
		return errs.NewValueIsInvalidErrorWithCause(
			"returnType", fmt.Errorf("%d is not a valid return/exchange type", t))
	}
	return nil
}

// String returns the human-readable name of the return type.
func (t ReturnType) String() string {
	if str, ok := getReturnTypeStrings()[t]; ok {
		return str
	}
	return "None"
}

// ReturnStatus represents the return/exchange sub-state of an order.
//
// State transitions:
//
//	None ──> Pending ──┬──> Approved ──> PickedUp ──> Completed
//	                   └──> Rejected
//
// Returns and exchanges follow the same shape; for a return, Completed also
// triggers the refund flag on the aggregate. Rejected and Completed are
// final states.
type ReturnStatus int

const (
	// ReturnStatusNone means no request exists yet.
	ReturnStatusNone ReturnStatus = iota

	// ReturnPending is the initial status of a newly filed request,
	// awaiting an admin decision.
	ReturnPending

	// ReturnApproved means an admin accepted the request; the item awaits
	// physical pickup by the assigned delivery agent.
	ReturnApproved

	// ReturnRejected means an admin declined the request. Final state.
	ReturnRejected

	// ReturnPickedUp means the delivery agent collected the item.
	ReturnPickedUp

	// ReturnCompleted means the workflow finished: refund issued for a
	// return, replacement shipped for an exchange. Final state.
	ReturnCompleted
)

func getReturnStatusStrings() map[ReturnStatus]string {
	return map[ReturnStatus]string{
		ReturnStatusNone: "None",
		ReturnPending:    "Pending",
		ReturnApproved:   "Approved",
		ReturnRejected:   "Rejected",
		ReturnPickedUp:   "PickedUp",
		ReturnCompleted:  "Completed",
	}
}

// returnTransitions is the explicit transition table for the return/exchange
// sub-machine. A status maps to the set of statuses it may move to.
func returnTransitions() map[ReturnStatus][]ReturnStatus {
	return map[ReturnStatus][]ReturnStatus{
		ReturnStatusNone: {ReturnPending},
		ReturnPending:    {ReturnApproved, ReturnRejected},
		ReturnApproved:   {ReturnPickedUp},
		ReturnPickedUp:   {ReturnCompleted},
		ReturnRejected:   {},
		ReturnCompleted:  {},
	}
}

// ReturnStatusFromString parses a wire representation into a ReturnStatus.
// Only statuses reachable by an explicit update are accepted; "none" is not
// a requestable status.
func ReturnStatusFromString(s string) (ReturnStatus, error) {
	switch s {
	case "pending":
		return ReturnPending, nil
	case "approved":
		return ReturnApproved, nil
	case "rejected":
		return ReturnRejected, nil
	case "pickedUp", "picked-up":
		return ReturnPickedUp, nil
	case "completed":
		return ReturnCompleted, nil
	default:
		return ReturnStatusNone, errs.NewValueIsInvalidErrorWithCause(
			"returnStatus", fmt.Errorf("%q is not a valid return/exchange status", s))
	}
}

// Validate checks if the ReturnStatus value is one the transition table knows.
func (s ReturnStatus) Validate() error {
	if _, ok := getReturnStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"returnStatus", fmt.Errorf("%d is not a valid return/exchange status", s))
	}
	return nil
}

// String returns the human-readable name of the return status.
func (s ReturnStatus) String() string {
	if str, ok := getReturnStatusStrings()[s]; ok {
		return str
	}
	return "None"
}

// CanTransitionTo reports whether the transition table allows moving from the
// current status to next.
func (s ReturnStatus) CanTransitionTo(next ReturnStatus) bool {
	for _, allowed := range returnTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo moves the status to next according to the transition table.
// Returns (0, InvalidTransitionError) when the table does not allow the move.
func (s ReturnStatus) TransitionTo(next ReturnStatus) (ReturnStatus, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewInvalidTransitionError("return request", s.String(), next.String())
	}

	return next, nil
}

// IsFinal reports whether no further transitions are possible.
func (s ReturnStatus) IsFinal() bool {
	return len(returnTransitions()[s]) == 0 && s != ReturnStatusNone
}

// ReturnRequest captures a customer's return or exchange request on a
// delivered order. The zero value means "no request".
type ReturnRequest struct {
	requestType ReturnType
	status      ReturnStatus
	reason      string
	requestedAt time.Time
}

// Type returns the kind of request (NoRequest when none exists).
func (r ReturnRequest) Type() ReturnType {
	return r.requestType
}

// Status returns the current workflow status of the request.
func (r ReturnRequest) Status() ReturnStatus {
	return r.status
}

// Reason returns the customer-provided reason for the request.
func (r ReturnRequest) Reason() string {
	return r.reason
}

// RequestedAt returns when the request was filed.
func (r ReturnRequest) RequestedAt() time.Time {
	return r.requestedAt
}

// Exists reports whether a return or exchange has been requested.
func (r ReturnRequest) Exists() bool {
	return r.requestType != NoRequest
}
