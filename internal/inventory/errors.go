package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuantity is returned when a transaction's quantity is zero
	// or negative.
	ErrInvalidQuantity = errors.New("quantity must be a positive number of millilitres")

	// ErrInvalidBloodGroup is returned for a blood group outside the eight
	// known ABO/Rh groups.
	ErrInvalidBloodGroup = errors.New("unknown blood group")

	// ErrInvalidDirection is returned for a direction other than in/out.
	ErrInvalidDirection = errors.New("direction must be in or out")

	// ErrMissingCounterparty is returned when no donor/hospital id
	// accompanies the request.
	ErrMissingCounterparty = errors.New("counterparty id is required")

	// ErrCounterpartyNotFound is returned when the identity directory has
	// no account with the requested id and role.
	ErrCounterpartyNotFound = errors.New("counterparty not found")

	// ErrInvalidLimit is returned when a recent-activity query asks for a
	// non-positive number of entries.
	ErrInvalidLimit = errors.New("limit must be positive")

	// ErrInvalidRole is returned for a counterparty role other than
	// donor/hospital.
	ErrInvalidRole = errors.New("role must be donor or hospital")

	// ErrStorageUnavailable wraps storage-layer failures. Callers may retry
	// with backoff; the ledger itself is unchanged.
	ErrStorageUnavailable = errors.New("ledger storage unavailable")
)

// InsufficientStockError rejects an OUT transaction that would drive the
// balance for its blood group negative. Available carries the balance
// observed at decision time so callers can tell the user how much is left.
type InsufficientStockError struct {
	BloodGroup BloodGroup
	Requested  int64
	Available  int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("only %dML of %s is available (requested %dML)",
		e.Available, e.BloodGroup, e.Requested)
}
