package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/davedmaia/hemolog/internal/identity"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Accounts are stored in one table with a role column plus one nullable name
// column per role; the row is projected back into the matching Profile
// variant on read, so the rest of the codebase never sees the nullables.

type scanner interface {
	Scan(dest ...any) error
}

const selectAccountColumns = `
	a.id, a.role, a.name, a.organisation_name, a.hospital_name,
	a.email, a.password_hash, a.address, a.phone, a.website, a.created_at
`

func scanAccount(s scanner) (*identity.Account, error) {
	var account identity.Account

	var roleStr string

	var name, orgName, hospitalName, website sql.NullString

	if err := s.Scan(
		&account.ID, &roleStr, &name, &orgName, &hospitalName,
		&account.Email, &account.PasswordHash, &account.Address,
		&account.Phone, &website, &account.CreatedAt,
	); err != nil {
		return nil, err
	}

	account.Website = website.String

	switch identity.Role(roleStr) {
	case identity.RoleAdmin:
		account.Profile = identity.AdminProfile{Name: name.String}
	case identity.RoleDonor:
		account.Profile = identity.DonorProfile{Name: name.String}
	case identity.RoleOrganisation:
		account.Profile = identity.OrganisationProfile{OrganisationName: orgName.String}
	case identity.RoleHospital:
		account.Profile = identity.HospitalProfile{HospitalName: hospitalName.String}
	default:
		return nil, fmt.Errorf("account %s has unknown role %q", account.ID, roleStr)
	}

	return &account, nil
}

func profileColumns(p identity.Profile) (name, orgName, hospitalName sql.NullString) {
	switch profile := p.(type) {
	case identity.AdminProfile:
		name = sql.NullString{String: profile.Name, Valid: true}
	case identity.DonorProfile:
		name = sql.NullString{String: profile.Name, Valid: true}
	case identity.OrganisationProfile:
		orgName = sql.NullString{String: profile.OrganisationName, Valid: true}
	case identity.HospitalProfile:
		hospitalName = sql.NullString{String: profile.HospitalName, Valid: true}
	}

	return name, orgName, hospitalName
}

func (s *Store) CreateAccount(ctx context.Context, account *identity.Account) error {
	query := `
		INSERT INTO accounts (role, name, organisation_name, hospital_name, email, password_hash, address, phone, website, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	name, orgName, hospitalName := profileColumns(account.Profile)

	website := sql.NullString{String: account.Website, Valid: account.Website != ""}

	err := s.db.QueryRowContext(ctx, query,
		account.Role(),
		name,
		orgName,
		hospitalName,
		account.Email,
		account.PasswordHash,
		account.Address,
		account.Phone,
		website,
	).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return identity.ErrEmailTaken
		}

		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*identity.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts a WHERE a.id = $1`

	account, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, identity.ErrAccountNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return account, nil
}

func (s *Store) GetAccountByEmail(ctx context.Context, email string) (*identity.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts a WHERE a.email = $1`

	account, err := scanAccount(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, identity.ErrAccountNotFound
		}

		return nil, fmt.Errorf("getting account by email: %w", err)
	}

	return account, nil
}

func (s *Store) ListAccountsByRole(ctx context.Context, role identity.Role) ([]*identity.Account, error) {
	query := `SELECT ` + selectAccountColumns + `
		FROM accounts a
		WHERE a.role = $1
		ORDER BY a.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

func (s *Store) ListAccountsByIDs(ctx context.Context, ids []uuid.UUID) ([]*identity.Account, error) {
	query := `SELECT ` + selectAccountColumns + `
		FROM accounts a
		WHERE a.id = ANY($1::uuid[])
		ORDER BY a.created_at DESC`

	// database/sql has no uuid-slice support; go through text.
	idStrs := make([]string, len(ids))
	for i, id := range ids {
		idStrs[i] = id.String()
	}

	rows, err := s.db.QueryContext(ctx, query, idStrs)
	if err != nil {
		return nil, fmt.Errorf("listing accounts by id: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

func collectAccounts(rows *sql.Rows) ([]*identity.Account, error) {
	var accounts []*identity.Account

	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	return accounts, nil
}

func (s *Store) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	if affected == 0 {
		return identity.ErrAccountNotFound
	}

	return nil
}
