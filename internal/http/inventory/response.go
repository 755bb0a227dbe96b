package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/davedmaia/hemolog/internal/identity"
	"github.com/davedmaia/hemolog/internal/inventory"
)

type transactionResponse struct {
	ID             uuid.UUID            `json:"id"`
	Direction      inventory.Direction  `json:"direction"`
	BloodGroup     inventory.BloodGroup `json:"blood_group"`
	Quantity       int64                `json:"quantity"`
	OrganisationID uuid.UUID            `json:"organisation_id"`
	DonorID        *uuid.UUID           `json:"donor_id,omitempty"`
	HospitalID     *uuid.UUID           `json:"hospital_id,omitempty"`
	ContactEmail   string               `json:"contact_email,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

func toResponse(tx *inventory.Transaction) transactionResponse {
	return transactionResponse{
		ID:             tx.ID,
		Direction:      tx.Direction,
		BloodGroup:     tx.BloodGroup,
		Quantity:       tx.Quantity,
		OrganisationID: tx.OrganisationID,
		DonorID:        tx.DonorID,
		HospitalID:     tx.HospitalID,
		ContactEmail:   tx.ContactEmail,
		CreatedAt:      tx.CreatedAt,
	}
}

func toResponseList(txs []*inventory.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

type accountResponse struct {
	ID      uuid.UUID     `json:"id"`
	Role    identity.Role `json:"role"`
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Address string        `json:"address"`
	Phone   string        `json:"phone"`
	Website string        `json:"website,omitempty"`
}

func toAccountList(accounts []*identity.Account) []accountResponse {
	resp := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = accountResponse{
			ID:      a.ID,
			Role:    a.Role(),
			Name:    a.Profile.DisplayName(),
			Email:   a.Email,
			Address: a.Address,
			Phone:   a.Phone,
			Website: a.Website,
		}
	}

	return resp
}
