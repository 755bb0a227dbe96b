package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Direction says which way blood moves: into an organisation's stock
// (a donation) or out of it (consumption by a hospital).
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == DirectionIn || d == DirectionOut
}

// BloodGroup is one of the eight ABO/Rh blood groups.
type BloodGroup string

const (
	OPositive  BloodGroup = "O+"
	ONegative  BloodGroup = "O-"
	ABPositive BloodGroup = "AB+"
	ABNegative BloodGroup = "AB-"
	APositive  BloodGroup = "A+"
	ANegative  BloodGroup = "A-"
	BPositive  BloodGroup = "B+"
	BNegative  BloodGroup = "B-"
)

// BloodGroups lists every valid group, in the order the original intake
// forms present them.
var BloodGroups = []BloodGroup{
	OPositive, ONegative,
	ABPositive, ABNegative,
	APositive, ANegative,
	BPositive, BNegative,
}

// Valid reports whether g is one of the eight known blood groups.
func (g BloodGroup) Valid() bool {
	for _, known := range BloodGroups {
		if g == known {
			return true
		}
	}

	return false
}

// CounterpartyRole identifies which kind of account sits on the other side
// of a transaction: donors give blood (IN), hospitals receive it (OUT).
type CounterpartyRole string

const (
	RoleDonor    CounterpartyRole = "donor"
	RoleHospital CounterpartyRole = "hospital"
)

// Valid reports whether r is a known counterparty role.
func (r CounterpartyRole) Valid() bool {
	return r == RoleDonor || r == RoleHospital
}

// Transaction is a single committed ledger entry. Entries are append-only:
// once committed they are never updated or deleted, and corrections are
// expressed as new compensating entries.
type Transaction struct {
	ID             uuid.UUID
	Direction      Direction
	BloodGroup     BloodGroup
	Quantity       int64 // millilitres, always > 0
	OrganisationID uuid.UUID
	DonorID        *uuid.UUID // set iff Direction == in
	HospitalID     *uuid.UUID // set iff Direction == out
	ContactEmail   string
	CreatedAt      time.Time
}

// Counterparty returns the donor or hospital id, whichever the direction
// selects.
func (t *Transaction) Counterparty() uuid.UUID {
	if t.Direction == DirectionIn && t.DonorID != nil {
		return *t.DonorID
	}

	if t.Direction == DirectionOut && t.HospitalID != nil {
		return *t.HospitalID
	}

	return uuid.Nil
}
