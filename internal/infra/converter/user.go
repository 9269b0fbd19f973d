package converter

import (
	"order-ledger/internal/domain/user"
	sqlc "order-ledger/internal/infra/sqlc/generated"
)

// ProfileFromRow tolerates a malformed stored email by leaving it empty;
// the profile stays usable for loyalty bookkeeping.
func ProfileFromRow(row sqlc.UserProfiles) *user.Profile {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		email = user.Email{}
	}
	return user.ReconstructProfile(row.ID, email, row.LoyaltyPoints, row.SpinEligible)
}
