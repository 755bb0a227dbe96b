package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/davedmaia/hemolog/internal/inventory"
)

// CounterpartyExists implements inventory.Directory: the ledger engine asks
// the identity side whether a donor/hospital id is real before admitting a
// transaction. An existing account with the wrong role is reported the same
// way as a missing one.
func (s *Service) CounterpartyExists(ctx context.Context, id uuid.UUID, role inventory.CounterpartyRole) error {
	want := RoleDonor
	if role == inventory.RoleHospital {
		want = RoleHospital
	}

	account, err := s.store.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return inventory.ErrCounterpartyNotFound
		}

		return err
	}

	if account.Role() != want {
		return fmt.Errorf("%w: account %s is not a %s", inventory.ErrCounterpartyNotFound, id, want)
	}

	return nil
}
