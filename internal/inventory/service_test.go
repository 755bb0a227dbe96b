package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/davedmaia/hemolog/internal/inventory"
)

func TestService_Append_Validation(t *testing.T) {
	orgID := uuid.New()
	donorID := uuid.New()

	type testCase struct {
		name    string
		params  inventory.AppendParams
		wantErr error
	}

	tests := []testCase{
		{
			name: "ZeroQuantity",
			params: inventory.AppendParams{
				OrganisationID: orgID,
				Direction:      inventory.DirectionIn,
				BloodGroup:     inventory.OPositive,
				Quantity:       0,
				CounterpartyID: donorID,
			},
			wantErr: inventory.ErrInvalidQuantity,
		},
		{
			name: "NegativeQuantity",
			params: inventory.AppendParams{
				OrganisationID: orgID,
				Direction:      inventory.DirectionIn,
				BloodGroup:     inventory.OPositive,
				Quantity:       -5,
				CounterpartyID: donorID,
			},
			wantErr: inventory.ErrInvalidQuantity,
		},
		{
			name: "UnknownBloodGroup",
			params: inventory.AppendParams{
				OrganisationID: orgID,
				Direction:      inventory.DirectionIn,
				BloodGroup:     inventory.BloodGroup("C+"),
				Quantity:       100,
				CounterpartyID: donorID,
			},
			wantErr: inventory.ErrInvalidBloodGroup,
		},
		{
			name: "UnknownDirection",
			params: inventory.AppendParams{
				OrganisationID: orgID,
				Direction:      inventory.Direction("sideways"),
				BloodGroup:     inventory.OPositive,
				Quantity:       100,
				CounterpartyID: donorID,
			},
			wantErr: inventory.ErrInvalidDirection,
		},
		{
			name: "MissingCounterparty",
			params: inventory.AppendParams{
				OrganisationID: orgID,
				Direction:      inventory.DirectionIn,
				BloodGroup:     inventory.OPositive,
				Quantity:       100,
			},
			wantErr: inventory.ErrMissingCounterparty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := inventory.NewService(
				inventory.NewMockRepository(ctrl),
				inventory.NewMockDirectory(ctrl),
			)

			got, err := svc.Append(context.Background(), tt.params)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestService_Append_Donation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	donorID := uuid.New()

	repo := inventory.NewMockRepository(ctrl)
	dir := inventory.NewMockDirectory(ctrl)

	dir.EXPECT().
		CounterpartyExists(gomock.Any(), donorID, inventory.RoleDonor).
		Return(nil)

	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *inventory.Transaction) error {
			tx.ID = uuid.New()
			return nil
		})

	svc := inventory.NewService(repo, dir)

	got, err := svc.Append(context.Background(), inventory.AppendParams{
		OrganisationID: orgID,
		Direction:      inventory.DirectionIn,
		BloodGroup:     inventory.APositive,
		Quantity:       50,
		CounterpartyID: donorID,
		ContactEmail:   "donor@example.com",
	})

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotEmpty(t, got.ID)
	require.NotNil(t, got.DonorID)
	assert.Equal(t, donorID, *got.DonorID)
	assert.Nil(t, got.HospitalID)
}

func TestService_Append_CounterpartyNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hospitalID := uuid.New()

	repo := inventory.NewMockRepository(ctrl)
	dir := inventory.NewMockDirectory(ctrl)

	dir.EXPECT().
		CounterpartyExists(gomock.Any(), hospitalID, inventory.RoleHospital).
		Return(inventory.ErrCounterpartyNotFound)

	svc := inventory.NewService(repo, dir)

	got, err := svc.Append(context.Background(), inventory.AppendParams{
		OrganisationID: uuid.New(),
		Direction:      inventory.DirectionOut,
		BloodGroup:     inventory.OPositive,
		Quantity:       10,
		CounterpartyID: hospitalID,
	})

	assert.ErrorIs(t, err, inventory.ErrCounterpartyNotFound)
	assert.Nil(t, got)
}

func TestService_Append_Withdrawal(t *testing.T) {
	type testCase struct {
		name      string
		available int64
		requested int64
		wantErr   bool
	}

	tests := []testCase{
		{name: "ExactStock", available: 10, requested: 10, wantErr: false},
		{name: "PartialStock", available: 30, requested: 20, wantErr: false},
		{name: "Overdraw", available: 10, requested: 11, wantErr: true},
		{name: "EmptyStock", available: 0, requested: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			orgID := uuid.New()
			hospitalID := uuid.New()

			repo := inventory.NewMockRepository(ctrl)
			dir := inventory.NewMockDirectory(ctrl)
			wtx := inventory.NewMockWithdrawalTx(ctrl)

			dir.EXPECT().
				CounterpartyExists(gomock.Any(), hospitalID, inventory.RoleHospital).
				Return(nil)

			repo.EXPECT().
				BeginWithdrawal(gomock.Any(), orgID, inventory.OPositive).
				Return(wtx, nil)

			wtx.EXPECT().Available(gomock.Any()).Return(tt.available, nil)
			wtx.EXPECT().Rollback().Return(nil).AnyTimes()

			if !tt.wantErr {
				wtx.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *inventory.Transaction) error {
						tx.ID = uuid.New()
						return nil
					})
				wtx.EXPECT().Commit().Return(nil)
			}

			svc := inventory.NewService(repo, dir)

			got, err := svc.Append(context.Background(), inventory.AppendParams{
				OrganisationID: orgID,
				Direction:      inventory.DirectionOut,
				BloodGroup:     inventory.OPositive,
				Quantity:       tt.requested,
				CounterpartyID: hospitalID,
			})

			if tt.wantErr {
				var stockErr *inventory.InsufficientStockError

				require.ErrorAs(t, err, &stockErr)
				assert.Equal(t, tt.available, stockErr.Available)
				assert.Equal(t, tt.requested, stockErr.Requested)
				assert.Equal(t, inventory.OPositive, stockErr.BloodGroup)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			require.NotNil(t, got.HospitalID)
			assert.Equal(t, hospitalID, *got.HospitalID)
			assert.Nil(t, got.DonorID)
		})
	}
}

func TestService_Availability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()

	repo := inventory.NewMockRepository(ctrl)
	repo.EXPECT().
		Availability(gomock.Any(), orgID, inventory.BNegative).
		Return(int64(42), nil)

	svc := inventory.NewService(repo, inventory.NewMockDirectory(ctrl))

	got, err := svc.Availability(context.Background(), orgID, inventory.BNegative)

	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	_, err = svc.Availability(context.Background(), orgID, inventory.BloodGroup("X-"))
	assert.ErrorIs(t, err, inventory.ErrInvalidBloodGroup)
}

func TestService_AvailabilitySummary_FillsEmptyGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()

	repo := inventory.NewMockRepository(ctrl)
	repo.EXPECT().
		AvailabilitySummary(gomock.Any(), orgID).
		Return(map[inventory.BloodGroup]int64{
			inventory.OPositive: 120,
			inventory.ANegative: 30,
		}, nil)

	svc := inventory.NewService(repo, inventory.NewMockDirectory(ctrl))

	summary, err := svc.AvailabilitySummary(context.Background(), orgID)

	require.NoError(t, err)
	assert.Len(t, summary, len(inventory.BloodGroups))
	assert.Equal(t, int64(120), summary[inventory.OPositive])
	assert.Equal(t, int64(30), summary[inventory.ANegative])
	assert.Equal(t, int64(0), summary[inventory.ABPositive])
}

func TestService_ListRecent_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := inventory.NewService(
		inventory.NewMockRepository(ctrl),
		inventory.NewMockDirectory(ctrl),
	)

	for _, limit := range []int{0, -3} {
		got, err := svc.ListRecent(context.Background(), uuid.New(), limit)

		assert.ErrorIs(t, err, inventory.ErrInvalidLimit)
		assert.Nil(t, got)
	}
}

func TestService_DistinctCounterparties(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	donors := []uuid.UUID{uuid.New(), uuid.New()}

	repo := inventory.NewMockRepository(ctrl)
	repo.EXPECT().
		DistinctCounterparties(gomock.Any(), orgID, inventory.RoleDonor).
		Return(donors, nil)

	svc := inventory.NewService(repo, inventory.NewMockDirectory(ctrl))

	got, err := svc.DistinctCounterparties(context.Background(), orgID, inventory.RoleDonor)

	require.NoError(t, err)
	assert.Equal(t, donors, got)

	_, err = svc.DistinctCounterparties(context.Background(), orgID, inventory.CounterpartyRole("admin"))
	assert.ErrorIs(t, err, inventory.ErrInvalidRole)
}

func TestService_List_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()

	repo := inventory.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any(), orgID, inventory.ListFilter{}).
		Return(nil, errors.New("db error"))

	svc := inventory.NewService(repo, inventory.NewMockDirectory(ctrl))

	got, err := svc.List(context.Background(), orgID, inventory.ListFilter{})

	assert.Error(t, err)
	assert.Nil(t, got)
}
