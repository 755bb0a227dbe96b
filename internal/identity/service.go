package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Store interface {
	CreateAccount(ctx context.Context, account *Account) error
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	ListAccountsByRole(ctx context.Context, role Role) ([]*Account, error)
	ListAccountsByIDs(ctx context.Context, ids []uuid.UUID) ([]*Account, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

type RegisterParams struct {
	Role             Role
	Email            string
	Password         string
	Name             string // admins and donors
	OrganisationName string // organisations
	HospitalName     string // hospitals
	Address          string
	Phone            string
	Website          string
}

// Register creates a new account after hashing its password. The profile is
// built per role, so incomplete registrations fail before touching storage.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*Account, error) {
	profile, err := buildProfile(params)
	if err != nil {
		return nil, err
	}

	if params.Email == "" || params.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrIncompleteProfile)
	}

	if params.Address == "" || params.Phone == "" {
		return nil, fmt.Errorf("%w: address and phone are required", ErrIncompleteProfile)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	account := &Account{
		Email:        params.Email,
		PasswordHash: string(hash),
		Address:      params.Address,
		Phone:        params.Phone,
		Website:      params.Website,
		Profile:      profile,
	}

	if err := s.store.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

func buildProfile(params RegisterParams) (Profile, error) {
	switch params.Role {
	case RoleAdmin:
		if params.Name == "" {
			return nil, fmt.Errorf("%w: name is required for an admin", ErrIncompleteProfile)
		}

		return AdminProfile{Name: params.Name}, nil
	case RoleDonor:
		if params.Name == "" {
			return nil, fmt.Errorf("%w: name is required for a donor", ErrIncompleteProfile)
		}

		return DonorProfile{Name: params.Name}, nil
	case RoleOrganisation:
		if params.OrganisationName == "" {
			return nil, fmt.Errorf("%w: organisation name is required", ErrIncompleteProfile)
		}

		return OrganisationProfile{OrganisationName: params.OrganisationName}, nil
	case RoleHospital:
		if params.HospitalName == "" {
			return nil, fmt.Errorf("%w: hospital name is required", ErrIncompleteProfile)
		}

		return HospitalProfile{HospitalName: params.HospitalName}, nil
	default:
		return nil, ErrInvalidRole
	}
}

// Login verifies the credentials and the claimed role. Unknown email and
// wrong password both come back as ErrInvalidCredentials; a wrong role on an
// otherwise valid login is ErrRoleMismatch.
func (s *Service) Login(ctx context.Context, email, password string, role Role) (*Account, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	account, err := s.store.GetAccountByEmail(ctx, email)
	if err != nil {
		if err == ErrAccountNotFound {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if account.Role() != role {
		return nil, ErrRoleMismatch
	}

	return account, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.store.GetAccount(ctx, id)
}

// ListByRole returns every account of the given role, for the admin list pages.
func (s *Service) ListByRole(ctx context.Context, role Role) ([]*Account, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	return s.store.ListAccountsByRole(ctx, role)
}

// Resolve maps a set of account ids to full accounts, preserving only ids
// that still exist. Used to materialize the ledger's counterparty id sets.
func (s *Service) Resolve(ctx context.Context, ids []uuid.UUID) ([]*Account, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	return s.store.ListAccountsByIDs(ctx, ids)
}

// Delete removes an account. Ledger history referencing the account is left
// untouched: the ledger is append-only and deletion is an administrative
// concern, not a correction.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteAccount(ctx, id)
}
