package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/davedmaia/hemolog/internal/identity"
)

type accountResponse struct {
	ID        uuid.UUID     `json:"id"`
	Role      identity.Role `json:"role"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Address   string        `json:"address"`
	Phone     string        `json:"phone"`
	Website   string        `json:"website,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

func toResponse(a *identity.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Role:      a.Role(),
		Name:      a.Profile.DisplayName(),
		Email:     a.Email,
		Address:   a.Address,
		Phone:     a.Phone,
		Website:   a.Website,
		CreatedAt: a.CreatedAt,
	}
}

func toResponseList(accounts []*identity.Account) []accountResponse {
	resp := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = toResponse(a)
	}

	return resp
}
