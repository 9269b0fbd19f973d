//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"order-ledger/internal/domain/referral"
	"order-ledger/internal/usecase/commands"
	"order-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contribution(userID uuid.UUID, total int64, code string) commands.ReferralContribution {
	return commands.ReferralContribution{
		UserID:      userID,
		OrderID:     uuid.New(),
		Total:       decimal.NewFromInt(total),
		AppliedCode: code,
	}
}

func TestReferralProgressor_Advance(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name           string
		orders         []commands.ReferralContribution
		expectedStatus referral.Status
		expectedAmount int64
		expectGiven    bool
		expectRewards  int
	}{
		{
			name:           "below threshold stays applied",
			orders:         []commands.ReferralContribution{{Total: decimal.NewFromInt(12000)}},
			expectedStatus: referral.StatusApplied,
			expectedAmount: 12000,
		},
		{
			name: "reaching the threshold qualifies and rewards once",
			orders: []commands.ReferralContribution{
				{Total: decimal.NewFromInt(12000)},
				{Total: decimal.NewFromInt(8000)},
			},
			expectedStatus: referral.StatusQualified,
			expectedAmount: 20000,
			expectRewards:  1,
		},
		{
			name:           "redeeming the referral code completes without reward",
			orders:         []commands.ReferralContribution{{Total: decimal.NewFromInt(5000), AppliedCode: " friend-5 "}},
			expectedStatus: referral.StatusCompleted,
			expectedAmount: 5000,
			expectGiven:    true,
		},
		{
			name:           "code and threshold together complete and still reward",
			orders:         []commands.ReferralContribution{{Total: decimal.NewFromInt(25000), AppliedCode: "FRIEND-5"}},
			expectedStatus: referral.StatusCompleted,
			expectedAmount: 25000,
			expectGiven:    true,
			expectRewards:  1,
		},
		{
			name:           "another code does not complete",
			orders:         []commands.ReferralContribution{{Total: decimal.NewFromInt(5000), AppliedCode: "SPRING25"}},
			expectedStatus: referral.StatusApplied,
			expectedAmount: 5000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			ref := builder.NewReferralBuilder()
			h.store.PutReferral(ref.BuildParams())

			for _, o := range tc.orders {
				o.UserID = ref.ReferredID
				o.OrderID = uuid.New()
				_, err := h.referrals.Advance(ctx, o)
				require.NoError(t, err)
			}

			stored := h.store.Referral(ref.ID)
			assert.Equal(t, tc.expectedStatus, stored.Status)
			assert.True(t, decimal.NewFromInt(tc.expectedAmount).Equal(stored.PurchaseAmount), "amount %s", stored.PurchaseAmount)
			assert.Equal(t, tc.expectGiven, stored.DiscountGiven)

			rewards := h.rewards.Issued()
			require.Len(t, rewards, tc.expectRewards)
			for _, r := range rewards {
				assert.Equal(t, ref.ReferrerID, r.ReferrerID)
				assert.Equal(t, ref.ReferrerEmail, r.ReferrerEmail)
				assert.True(t, decimal.NewFromInt(2000).Equal(r.Amount))
			}
		})
	}
}

func TestReferralProgressor_SameOrderContributesOnce(t *testing.T) {
	h := newHarness(t)
	ref := builder.NewReferralBuilder()
	h.store.PutReferral(ref.BuildParams())

	c := contribution(ref.ReferredID, 15000, "")
	first, err := h.referrals.Advance(context.Background(), c)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := h.referrals.Advance(context.Background(), c)
	require.NoError(t, err)
	assert.Nil(t, second)

	assert.True(t, decimal.NewFromInt(15000).Equal(h.store.Referral(ref.ID).PurchaseAmount))
}

func TestReferralProgressor_NoAppliedReferral(t *testing.T) {
	h := newHarness(t)

	progress, err := h.referrals.Advance(context.Background(), contribution(uuid.New(), 50000, ""))

	require.NoError(t, err)
	assert.Nil(t, progress)
	assert.Empty(t, h.rewards.Issued())
}

func TestReferralProgressor_QualifiedReferralIsNotRewardedAgain(t *testing.T) {
	h := newHarness(t)
	ref := builder.NewReferralBuilder()
	h.store.PutReferral(ref.BuildParams())

	_, err := h.referrals.Advance(context.Background(), contribution(ref.ReferredID, 20000, ""))
	require.NoError(t, err)
	progress, err := h.referrals.Advance(context.Background(), contribution(ref.ReferredID, 20000, ""))
	require.NoError(t, err)

	assert.Nil(t, progress)
	assert.Len(t, h.rewards.Issued(), 1)
}

func TestReferralProgressor_IssuerFailureDoesNotFailAdvance(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(h *harness)
	}{
		{name: "issuer error", setup: func(h *harness) { h.rewards.Err = errors.New("voucher service down") }},
		{name: "issuer panic", setup: func(h *harness) { h.rewards.Panic = true }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			tc.setup(h)
			ref := builder.NewReferralBuilder()
			h.store.PutReferral(ref.BuildParams())

			progress, err := h.referrals.Advance(context.Background(), contribution(ref.ReferredID, 20000, ""))

			require.NoError(t, err)
			require.NotNil(t, progress)
			assert.Equal(t, referral.StatusQualified, progress.Status)
			assert.Equal(t, referral.StatusQualified, h.store.Referral(ref.ID).Status)
		})
	}
}

func TestReferralProgressor_PersistenceFailureLeavesReferralUntouched(t *testing.T) {
	h := newHarness(t)
	ref := builder.NewReferralBuilder()
	h.store.PutReferral(ref.BuildParams())
	h.store.FailOn["Referrals.SaveProgress"] = errors.New("connection reset")

	_, err := h.referrals.Advance(context.Background(), contribution(ref.ReferredID, 20000, ""))

	require.Error(t, err)
	stored := h.store.Referral(ref.ID)
	assert.Equal(t, referral.StatusApplied, stored.Status)
	assert.True(t, stored.PurchaseAmount.IsZero())
	assert.Empty(t, h.rewards.Issued())
}
