package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions to ensure orders follow the correct
// business workflow.
//
// State transitions:
//
//	Draft ──> Confirmed ──> Shipped
//	  │            │
//	  └────────────┴──> Cancelled
//
// Only the Draft -> Confirmed transition is driven by this package; Shipped
// and Cancelled are terminal for the operations defined here and are set by
// future extensions (fulfillment, cancellation).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status of a newly created order.
	// Draft orders can be modified freely.
	Draft

	// Confirmed indicates the customer finalized the order for fulfillment.
	Confirmed

	// Shipped indicates the order has been dispatched to a carrier.
	Shipped

	// Cancelled indicates the order has been cancelled.
	// Cancelled orders can never be modified.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Draft, Confirmed, Shipped, and Cancelled; Unknown (0)
// and any other values are invalid. Used when reconstituting orders from
// persistence or external sources.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAddItem checks whether the status allows line-item modification.
//
// Cancelled orders are never modifiable; Confirmed and Shipped orders are
// also rejected, so only Draft orders accept items. Cancelled yields the
// dedicated ErrCannotModifyCancelled so callers can distinguish it from the
// generic invalid-state case.
func (s Status) ValidateAddItem() error {
	if s == Cancelled {
		return ErrCannotModifyCancelled
	}
	if s != Draft {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to add items", s.String()),
		)
	}
	return nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Draft -> Confirmed
//
// Any other current status yields an invalid-state error.
//
// Returns:
//   - (Confirmed, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Confirm() (Status, error) {
	if s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}

	return Confirmed, nil
}
