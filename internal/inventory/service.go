package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=inventory
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	Availability(ctx context.Context, orgID uuid.UUID, group BloodGroup) (int64, error)
	AvailabilitySummary(ctx context.Context, orgID uuid.UUID) (map[BloodGroup]int64, error)

	ListTransactions(ctx context.Context, orgID uuid.UUID, filter ListFilter) ([]*Transaction, error)
	ListRecent(ctx context.Context, orgID uuid.UUID, limit int) ([]*Transaction, error)
	DistinctCounterparties(ctx context.Context, orgID uuid.UUID, role CounterpartyRole) ([]uuid.UUID, error)
	OrganisationsLinkedTo(ctx context.Context, counterpartyID uuid.UUID, role CounterpartyRole) ([]uuid.UUID, error)

	BeginWithdrawal(ctx context.Context, orgID uuid.UUID, group BloodGroup) (WithdrawalTx, error)
}

// WithdrawalTx scopes the check-then-append sequence of an OUT transaction.
// Implementations must guarantee that between Available and Commit no other
// withdrawal for the same (organisation, blood group) pair can commit.
type WithdrawalTx interface {
	Available(ctx context.Context) (int64, error)
	CreateTransaction(ctx context.Context, tx *Transaction) error
	Commit() error
	Rollback() error
}

// Directory is the slice of the identity collaborator the ledger needs:
// confirming that a counterparty exists and holds the expected role.
// Implementations return ErrCounterpartyNotFound when it does not.
type Directory interface {
	CounterpartyExists(ctx context.Context, id uuid.UUID, role CounterpartyRole) error
}

type Service struct {
	repo Repository
	dir  Directory
}

func NewService(repo Repository, dir Directory) *Service {
	return &Service{repo: repo, dir: dir}
}

type AppendParams struct {
	OrganisationID uuid.UUID
	Direction      Direction
	BloodGroup     BloodGroup
	Quantity       int64
	CounterpartyID uuid.UUID
	ContactEmail   string
}

// ListFilter narrows a transaction listing. Nil fields match everything.
type ListFilter struct {
	Direction    *Direction
	BloodGroup   *BloodGroup
	Counterparty *uuid.UUID
}

// Append validates and commits a new ledger entry. IN transactions only
// increase availability and commit directly. OUT transactions run the
// check-then-append sequence inside a WithdrawalTx so that two concurrent
// withdrawals for the same (organisation, blood group) pair cannot both
// observe the same balance and overdraw it.
func (s *Service) Append(ctx context.Context, params AppendParams) (*Transaction, error) {
	if err := validateAppend(params); err != nil {
		return nil, err
	}

	role := RoleDonor
	if params.Direction == DirectionOut {
		role = RoleHospital
	}

	if err := s.dir.CounterpartyExists(ctx, params.CounterpartyID, role); err != nil {
		return nil, err
	}

	tx := &Transaction{
		Direction:      params.Direction,
		BloodGroup:     params.BloodGroup,
		Quantity:       params.Quantity,
		OrganisationID: params.OrganisationID,
		ContactEmail:   params.ContactEmail,
	}

	if params.Direction == DirectionIn {
		tx.DonorID = &params.CounterpartyID

		if err := s.repo.CreateTransaction(ctx, tx); err != nil {
			return nil, fmt.Errorf("committing donation: %w", err)
		}

		return tx, nil
	}

	tx.HospitalID = &params.CounterpartyID

	wtx, err := s.repo.BeginWithdrawal(ctx, params.OrganisationID, params.BloodGroup)
	if err != nil {
		return nil, fmt.Errorf("beginning withdrawal: %w", err)
	}
	defer wtx.Rollback()

	available, err := wtx.Available(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading availability: %w", err)
	}

	if params.Quantity > available {
		return nil, &InsufficientStockError{
			BloodGroup: params.BloodGroup,
			Requested:  params.Quantity,
			Available:  available,
		}
	}

	if err := wtx.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("committing withdrawal: %w", err)
	}

	if err := wtx.Commit(); err != nil {
		return nil, fmt.Errorf("committing withdrawal: %w", err)
	}

	return tx, nil
}

func validateAppend(params AppendParams) error {
	if !params.Direction.Valid() {
		return ErrInvalidDirection
	}

	if !params.BloodGroup.Valid() {
		return ErrInvalidBloodGroup
	}

	if params.Quantity <= 0 {
		return ErrInvalidQuantity
	}

	if params.CounterpartyID == uuid.Nil {
		return ErrMissingCounterparty
	}

	return nil
}

// Availability returns the current balance for one blood group:
// total donated minus total consumed. Zero for a group the organisation
// has never stocked.
func (s *Service) Availability(ctx context.Context, orgID uuid.UUID, group BloodGroup) (int64, error) {
	if !group.Valid() {
		return 0, ErrInvalidBloodGroup
	}

	return s.repo.Availability(ctx, orgID, group)
}

// AvailabilitySummary returns the balance of every blood group for the
// organisation, including groups with no transactions (balance 0).
func (s *Service) AvailabilitySummary(ctx context.Context, orgID uuid.UUID) (map[BloodGroup]int64, error) {
	summary, err := s.repo.AvailabilitySummary(ctx, orgID)
	if err != nil {
		return nil, err
	}

	for _, group := range BloodGroups {
		if _, ok := summary[group]; !ok {
			summary[group] = 0
		}
	}

	return summary, nil
}

// List returns the organisation's transactions, most recent first, ties
// broken by insertion order.
func (s *Service) List(ctx context.Context, orgID uuid.UUID, filter ListFilter) ([]*Transaction, error) {
	if filter.Direction != nil && !filter.Direction.Valid() {
		return nil, ErrInvalidDirection
	}

	if filter.BloodGroup != nil && !filter.BloodGroup.Valid() {
		return nil, ErrInvalidBloodGroup
	}

	return s.repo.ListTransactions(ctx, orgID, filter)
}

// ListRecent returns the limit most recently created transactions for the
// organisation, most recent first.
func (s *Service) ListRecent(ctx context.Context, orgID uuid.UUID, limit int) ([]*Transaction, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	return s.repo.ListRecent(ctx, orgID, limit)
}

// DistinctCounterparties returns the unique donors (role donor) or
// hospitals (role hospital) that appear in the organisation's ledger.
// Only identifiers are returned; resolving them to accounts is the
// identity collaborator's job.
func (s *Service) DistinctCounterparties(ctx context.Context, orgID uuid.UUID, role CounterpartyRole) ([]uuid.UUID, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	return s.repo.DistinctCounterparties(ctx, orgID, role)
}

// OrganisationsLinkedTo is the inverse query: the organisations a donor has
// donated to, or a hospital has received from.
func (s *Service) OrganisationsLinkedTo(ctx context.Context, counterpartyID uuid.UUID, role CounterpartyRole) ([]uuid.UUID, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	return s.repo.OrganisationsLinkedTo(ctx, counterpartyID, role)
}
