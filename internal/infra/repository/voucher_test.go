//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"order-ledger/internal/infra"
	"order-ledger/internal/infra/repository"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/usecase/shared"
	"order-ledger/tests/common/builder"
	repositorymock "order-ledger/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// IncrementUsedCount Tests
// =============================================================================

func TestVoucherRepository_IncrementUsedCount(t *testing.T) {
	ctx := context.Background()
	voucherID := uuid.New()

	testCases := []struct {
		name       string
		rows       int64
		dbErr      error
		wantOK     bool
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: compare-and-set won", rows: 1, wantOK: true},
		{name: "success: stale count or cap reached", rows: 0, wantOK: false},
		{name: "error: database error occurs", dbErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockVoucherWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewVoucherRepository(mockQueries, mockDB)

			mockQueries.EXPECT().IncrementVoucherUsedCount(ctx, mockDB, sqlc.IncrementVoucherUsedCountParams{
				ID:                voucherID,
				ExpectedUsedCount: 3,
			}).Return(tc.rows, tc.dbErr)

			ok, err := repo.IncrementUsedCount(ctx, voucherID, 3)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

// =============================================================================
// InsertUsage Tests
// =============================================================================

func TestVoucherRepository_InsertUsage(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	redeemedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		userID     *uuid.UUID
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: customer usage", userID: &userID},
		{name: "success: guest usage has no user", userID: nil},
		{
			name:       "error: customer already redeemed this voucher",
			userID:     &userID,
			dbErr:      &pgconn.PgError{Code: "23505", ConstraintName: "voucher_usages_voucher_user_key"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: database error occurs",
			userID:     &userID,
			dbErr:      errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockVoucherWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewVoucherRepository(mockQueries, mockDB)

			usage := shared.VoucherUsage{VoucherID: uuid.New(), UserID: tc.userID, OrderID: uuid.New(), RedeemedAt: redeemedAt}

			mockQueries.EXPECT().CreateVoucherUsage(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateVoucherUsageParams) error {
					assert.Equal(t, usage.VoucherID, arg.VoucherID)
					assert.Equal(t, usage.OrderID, arg.OrderID)
					assert.Equal(t, tc.userID != nil, arg.UserID.Valid)
					assert.True(t, redeemedAt.Equal(arg.RedeemedAt.Time))
					return tc.dbErr
				})

			err := repo.InsertUsage(ctx, usage)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVoucherRepository_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockVoucherWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewVoucherRepository(mockQueries, mockDB)

	holder := uuid.New()
	v := builder.NewVoucherBuilder().Capped(1).With(func(b *builder.VoucherBuilder) {
		b.Code = "REF-ABC123"
		b.IssuedTo = &holder
	}).BuildDomain()

	mockQueries.EXPECT().CreateVoucher(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateVoucherParams) error {
			assert.Equal(t, v.ID(), arg.ID)
			assert.Equal(t, "REF-ABC123", arg.Code)
			assert.Equal(t, int32(1), arg.MaxUses.Int32)
			assert.True(t, arg.MaxUses.Valid)
			assert.Equal(t, holder, uuid.UUID(arg.IssuedTo.Bytes))
			return nil
		})
	require.NoError(t, repo.Create(ctx, v))

	mockQueries.EXPECT().CreateVoucher(ctx, mockDB, gomock.Any()).
		Return(&pgconn.PgError{Code: "23505"})
	err := repo.Create(ctx, v)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}
