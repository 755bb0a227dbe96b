package inventory_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	hemologHttp "github.com/davedmaia/hemolog/internal/http"
	identityHandler "github.com/davedmaia/hemolog/internal/http/identity"
	inventoryHandler "github.com/davedmaia/hemolog/internal/http/inventory"
	"github.com/davedmaia/hemolog/internal/http/middleware"
	"github.com/davedmaia/hemolog/internal/identity"
	"github.com/davedmaia/hemolog/internal/inventory"
	"github.com/davedmaia/hemolog/internal/token"
)

// fakeAccounts is a map-backed identity.Store seeded directly with accounts.
type fakeAccounts struct {
	accounts map[uuid.UUID]*identity.Account
}

func (f *fakeAccounts) CreateAccount(_ context.Context, account *identity.Account) error {
	account.ID = uuid.New()
	f.accounts[account.ID] = account

	return nil
}

func (f *fakeAccounts) GetAccount(_ context.Context, id uuid.UUID) (*identity.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, identity.ErrAccountNotFound
	}

	return account, nil
}

func (f *fakeAccounts) GetAccountByEmail(_ context.Context, email string) (*identity.Account, error) {
	for _, account := range f.accounts {
		if account.Email == email {
			return account, nil
		}
	}

	return nil, identity.ErrAccountNotFound
}

func (f *fakeAccounts) ListAccountsByRole(_ context.Context, role identity.Role) ([]*identity.Account, error) {
	var out []*identity.Account

	for _, account := range f.accounts {
		if account.Role() == role {
			out = append(out, account)
		}
	}

	return out, nil
}

func (f *fakeAccounts) ListAccountsByIDs(_ context.Context, ids []uuid.UUID) ([]*identity.Account, error) {
	var out []*identity.Account

	for _, id := range ids {
		if account, ok := f.accounts[id]; ok {
			out = append(out, account)
		}
	}

	return out, nil
}

func (f *fakeAccounts) DeleteAccount(_ context.Context, id uuid.UUID) error {
	delete(f.accounts, id)
	return nil
}

func (f *fakeAccounts) seed(profile identity.Profile) *identity.Account {
	account := &identity.Account{
		ID:      uuid.New(),
		Email:   fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		Profile: profile,
	}
	f.accounts[account.ID] = account

	return account
}

type fixture struct {
	server   *httptest.Server
	tokens   *token.Manager
	repo     *inventory.MockRepository
	accounts *fakeAccounts
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := inventory.NewMockRepository(ctrl)
	accounts := &fakeAccounts{accounts: make(map[uuid.UUID]*identity.Account)}

	accountService := identity.NewService(accounts)
	ledgerService := inventory.NewService(repo, accountService)
	tokens := token.NewManager("test-secret", time.Hour)
	auth := middleware.NewAuthenticator(tokens)

	router := hemologHttp.New(
		[]string{"*"},
		auth,
		identityHandler.NewHandler(accountService, tokens, auth),
		inventoryHandler.NewHandler(ledgerService, accountService),
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &fixture{server: server, tokens: tokens, repo: repo, accounts: accounts}
}

func (f *fixture) request(t *testing.T, method, path, bearer string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, f.server.URL+path, &buf)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")

	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)

	return resp
}

func (f *fixture) tokenFor(t *testing.T, account *identity.Account) string {
	t.Helper()

	signed, err := f.tokens.Issue(account)
	require.NoError(t, err)

	return signed
}

func TestHandler_CreateDonation(t *testing.T) {
	f := newFixture(t)

	org := f.accounts.seed(identity.OrganisationProfile{OrganisationName: "Central"})
	donor := f.accounts.seed(identity.DonorProfile{Name: "Maria"})

	f.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *inventory.Transaction) error {
			tx.ID = uuid.New()
			tx.CreatedAt = time.Now()
			return nil
		})

	resp := f.request(t, http.MethodPost, "/api/v1/inventory", f.tokenFor(t, org), map[string]any{
		"direction":       "in",
		"blood_group":     "A+",
		"quantity":        50,
		"counterparty_id": donor.ID,
		"contact_email":   "maria@example.com",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID         uuid.UUID  `json:"id"`
		Direction  string     `json:"direction"`
		BloodGroup string     `json:"blood_group"`
		DonorID    *uuid.UUID `json:"donor_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "in", created.Direction)
	assert.Equal(t, "A+", created.BloodGroup)
	require.NotNil(t, created.DonorID)
	assert.Equal(t, donor.ID, *created.DonorID)
}

func TestHandler_CreateWithdrawal_InsufficientStock(t *testing.T) {
	f := newFixture(t)

	org := f.accounts.seed(identity.OrganisationProfile{OrganisationName: "Central"})
	hospital := f.accounts.seed(identity.HospitalProfile{HospitalName: "St. Jude"})

	ctrl := gomock.NewController(t)
	wtx := inventory.NewMockWithdrawalTx(ctrl)

	f.repo.EXPECT().
		BeginWithdrawal(gomock.Any(), org.ID, inventory.OPositive).
		Return(wtx, nil)
	wtx.EXPECT().Available(gomock.Any()).Return(int64(10), nil)
	wtx.EXPECT().Rollback().Return(nil)

	resp := f.request(t, http.MethodPost, "/api/v1/inventory", f.tokenFor(t, org), map[string]any{
		"direction":       "out",
		"blood_group":     "O+",
		"quantity":        11,
		"counterparty_id": hospital.ID,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var payload struct {
		Error     string `json:"error"`
		Available int64  `json:"available"`
		Requested int64  `json:"requested"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	assert.Equal(t, int64(10), payload.Available)
	assert.Equal(t, int64(11), payload.Requested)
	assert.Contains(t, payload.Error, "10ML")
}

func TestHandler_Create_ValidationAndAuth(t *testing.T) {
	f := newFixture(t)

	org := f.accounts.seed(identity.OrganisationProfile{OrganisationName: "Central"})
	donor := f.accounts.seed(identity.DonorProfile{Name: "Maria"})

	t.Run("NoToken", func(t *testing.T) {
		resp := f.request(t, http.MethodPost, "/api/v1/inventory", "", map[string]any{})
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("DonorForbidden", func(t *testing.T) {
		resp := f.request(t, http.MethodPost, "/api/v1/inventory", f.tokenFor(t, donor), map[string]any{})
		defer resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("ZeroQuantity", func(t *testing.T) {
		resp := f.request(t, http.MethodPost, "/api/v1/inventory", f.tokenFor(t, org), map[string]any{
			"direction":       "in",
			"blood_group":     "A+",
			"quantity":        0,
			"counterparty_id": donor.ID,
		})
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UnknownCounterparty", func(t *testing.T) {
		resp := f.request(t, http.MethodPost, "/api/v1/inventory", f.tokenFor(t, org), map[string]any{
			"direction":       "in",
			"blood_group":     "A+",
			"quantity":        10,
			"counterparty_id": uuid.New(),
		})
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestHandler_Availability(t *testing.T) {
	f := newFixture(t)

	org := f.accounts.seed(identity.OrganisationProfile{OrganisationName: "Central"})

	f.repo.EXPECT().
		Availability(gomock.Any(), org.ID, inventory.ABNegative).
		Return(int64(75), nil)

	resp := f.request(t, http.MethodGet, "/api/v1/inventory/availability?blood_group=AB-", f.tokenFor(t, org), nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		BloodGroup string `json:"blood_group"`
		Available  int64  `json:"available"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	assert.Equal(t, "AB-", payload.BloodGroup)
	assert.Equal(t, int64(75), payload.Available)

	badResp := f.request(t, http.MethodGet, "/api/v1/inventory/availability?blood_group=Z%2B", f.tokenFor(t, org), nil)
	defer badResp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, badResp.StatusCode)
}

func TestHandler_Donors(t *testing.T) {
	f := newFixture(t)

	org := f.accounts.seed(identity.OrganisationProfile{OrganisationName: "Central"})
	donor := f.accounts.seed(identity.DonorProfile{Name: "Maria"})

	f.repo.EXPECT().
		DistinctCounterparties(gomock.Any(), org.ID, inventory.RoleDonor).
		Return([]uuid.UUID{donor.ID}, nil)

	resp := f.request(t, http.MethodGet, "/api/v1/inventory/donors", f.tokenFor(t, org), nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload []struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
		Role string    `json:"role"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	require.Len(t, payload, 1)
	assert.Equal(t, donor.ID, payload[0].ID)
	assert.Equal(t, "Maria", payload[0].Name)
	assert.Equal(t, "donor", payload[0].Role)
}

func TestHandler_Recent_InvalidLimit(t *testing.T) {
	f := newFixture(t)

	org := f.accounts.seed(identity.OrganisationProfile{OrganisationName: "Central"})

	resp := f.request(t, http.MethodGet, "/api/v1/inventory/recent?limit=0", f.tokenFor(t, org), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
