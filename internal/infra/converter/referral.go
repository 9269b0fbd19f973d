package converter

import (
	"order-ledger/internal/domain/referral"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/pkg/pgconv"
)

func ReferralFromRow(row sqlc.Referrals) (*referral.Referral, error) {
	status, err := referral.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return referral.Reconstruct(referral.ReconstructParams{
		ID:             row.ID,
		ReferrerID:     row.ReferrerID,
		ReferrerEmail:  row.ReferrerEmail,
		ReferredID:     row.ReferredID,
		ReferredEmail:  row.ReferredEmail,
		DiscountCode:   row.DiscountCode,
		PurchaseAmount: row.ReferredPurchaseAmount,
		DiscountGiven:  row.DiscountGiven,
		Status:         status,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
