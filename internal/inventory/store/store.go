package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/davedmaia/hemolog/internal/inventory"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// scanTransaction reads a ledger row and returns a populated Transaction.
// Expected column order: id, direction, blood_group, quantity, organisation_id,
// donor_id, hospital_id, contact_email, created_at
func scanTransaction(s scanner) (*inventory.Transaction, error) {
	var tx inventory.Transaction

	var directionStr, groupStr string

	var donorID, hospitalID *uuid.UUID

	if err := s.Scan(
		&tx.ID, &directionStr, &groupStr, &tx.Quantity, &tx.OrganisationID,
		&donorID, &hospitalID, &tx.ContactEmail, &tx.CreatedAt,
	); err != nil {
		return nil, err
	}

	tx.Direction = inventory.Direction(directionStr)
	tx.BloodGroup = inventory.BloodGroup(groupStr)
	tx.DonorID = donorID
	tx.HospitalID = hospitalID

	return &tx, nil
}

const selectTransactionColumns = `
	t.id, t.direction, t.blood_group, t.quantity, t.organisation_id,
	t.donor_id, t.hospital_id, t.contact_email, t.created_at
`

// availabilityQuery folds the whole ledger for one (organisation, blood group)
// pair into its balance. COALESCE covers groups with no history yet.
const availabilityQuery = `
	SELECT COALESCE(SUM(CASE WHEN direction = 'in' THEN quantity ELSE -quantity END), 0)
	FROM transactions
	WHERE organisation_id = $1 AND blood_group = $2
`

// storageErr maps timeouts and dead connections to ErrStorageUnavailable so
// callers can tell a retryable outage from a plain query failure.
func storageErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return fmt.Errorf("%s: %w", op, inventory.ErrStorageUnavailable)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func (s *Store) CreateTransaction(ctx context.Context, tx *inventory.Transaction) error {
	return createTransaction(ctx, s.db, tx)
}

func createTransaction(ctx context.Context, q querier, tx *inventory.Transaction) error {
	query := `
		INSERT INTO transactions (direction, blood_group, quantity, organisation_id, donor_id, hospital_id, contact_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRowContext(ctx, query,
		tx.Direction,
		tx.BloodGroup,
		tx.Quantity,
		tx.OrganisationID,
		tx.DonorID,
		tx.HospitalID,
		tx.ContactEmail,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return storageErr("creating transaction", err)
	}

	return nil
}

func (s *Store) Availability(ctx context.Context, orgID uuid.UUID, group inventory.BloodGroup) (int64, error) {
	var available int64
	if err := s.db.QueryRowContext(ctx, availabilityQuery, orgID, group).Scan(&available); err != nil {
		return 0, storageErr("reading availability", err)
	}

	return available, nil
}

func (s *Store) AvailabilitySummary(ctx context.Context, orgID uuid.UUID) (map[inventory.BloodGroup]int64, error) {
	query := `
		SELECT blood_group, COALESCE(SUM(CASE WHEN direction = 'in' THEN quantity ELSE -quantity END), 0)
		FROM transactions
		WHERE organisation_id = $1
		GROUP BY blood_group
	`

	rows, err := s.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, storageErr("reading availability summary", err)
	}
	defer rows.Close()

	summary := make(map[inventory.BloodGroup]int64)

	for rows.Next() {
		var groupStr string

		var available int64

		if err := rows.Scan(&groupStr, &available); err != nil {
			return nil, fmt.Errorf("scanning availability row: %w", err)
		}

		summary[inventory.BloodGroup(groupStr)] = available
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating availability rows", err)
	}

	return summary, nil
}

func (s *Store) ListTransactions(ctx context.Context, orgID uuid.UUID, filter inventory.ListFilter) ([]*inventory.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.organisation_id = $1`

	args := []any{orgID}

	argIdx := 2

	if filter.Direction != nil {
		query += fmt.Sprintf(" AND t.direction = $%d", argIdx)

		args = append(args, *filter.Direction)
		argIdx++
	}

	if filter.BloodGroup != nil {
		query += fmt.Sprintf(" AND t.blood_group = $%d", argIdx)

		args = append(args, *filter.BloodGroup)
		argIdx++
	}

	if filter.Counterparty != nil {
		query += fmt.Sprintf(" AND (t.donor_id = $%d OR t.hospital_id = $%d)", argIdx, argIdx)

		args = append(args, *filter.Counterparty)
	}

	// seq is a serial column; it breaks created_at ties in insertion order.
	query += " ORDER BY t.created_at DESC, t.seq DESC"

	return s.queryTransactions(ctx, query, args...)
}

func (s *Store) ListRecent(ctx context.Context, orgID uuid.UUID, limit int) ([]*inventory.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.organisation_id = $1
		ORDER BY t.created_at DESC, t.seq DESC
		LIMIT $2`

	return s.queryTransactions(ctx, query, orgID, limit)
}

func (s *Store) queryTransactions(ctx context.Context, query string, args ...any) ([]*inventory.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("listing transactions", err)
	}
	defer rows.Close()

	var txs []*inventory.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating transaction rows", err)
	}

	return txs, nil
}

func (s *Store) DistinctCounterparties(ctx context.Context, orgID uuid.UUID, role inventory.CounterpartyRole) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT donor_id
		FROM transactions
		WHERE organisation_id = $1 AND direction = 'in' AND donor_id IS NOT NULL
	`

	if role == inventory.RoleHospital {
		query = `
			SELECT DISTINCT hospital_id
			FROM transactions
			WHERE organisation_id = $1 AND direction = 'out' AND hospital_id IS NOT NULL
		`
	}

	return s.queryIDs(ctx, query, orgID)
}

func (s *Store) OrganisationsLinkedTo(ctx context.Context, counterpartyID uuid.UUID, role inventory.CounterpartyRole) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT organisation_id
		FROM transactions
		WHERE donor_id = $1
	`

	if role == inventory.RoleHospital {
		query = `
			SELECT DISTINCT organisation_id
			FROM transactions
			WHERE hospital_id = $1
		`
	}

	return s.queryIDs(ctx, query, counterpartyID)
}

func (s *Store) queryIDs(ctx context.Context, query string, arg any) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, storageErr("listing ids", err)
	}
	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning id: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating id rows", err)
	}

	return ids, nil
}

// withdrawalLockKey derives the advisory-lock key that serializes withdrawals
// for one (organisation, blood group) pair.
func withdrawalLockKey(orgID uuid.UUID, group inventory.BloodGroup) int64 {
	h := fnv.New64a()
	h.Write(orgID[:])
	h.Write([]byte{0})
	h.Write([]byte(group))

	return int64(h.Sum64())
}

type withdrawalTx struct {
	tx    *sql.Tx
	orgID uuid.UUID
	group inventory.BloodGroup
}

// BeginWithdrawal opens a database transaction holding the advisory lock for
// the (organisation, blood group) pair. The lock is released on commit or
// rollback, so at most one withdrawal per pair runs its balance check and
// insert at a time. Donations never take this path.
func (s *Store) BeginWithdrawal(ctx context.Context, orgID uuid.UUID, group inventory.BloodGroup) (inventory.WithdrawalTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageErr("beginning withdrawal tx", err)
	}

	lockKey := withdrawalLockKey(orgID, group)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		dbTx.Rollback()
		return nil, storageErr("acquiring withdrawal lock", err)
	}

	return &withdrawalTx{tx: dbTx, orgID: orgID, group: group}, nil
}

func (w *withdrawalTx) Commit() error   { return w.tx.Commit() }
func (w *withdrawalTx) Rollback() error { return w.tx.Rollback() }

func (w *withdrawalTx) Available(ctx context.Context) (int64, error) {
	var available int64
	if err := w.tx.QueryRowContext(ctx, availabilityQuery, w.orgID, w.group).Scan(&available); err != nil {
		return 0, storageErr("reading availability", err)
	}

	return available, nil
}

func (w *withdrawalTx) CreateTransaction(ctx context.Context, tx *inventory.Transaction) error {
	return createTransaction(ctx, w.tx, tx)
}
