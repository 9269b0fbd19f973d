//go:build unit || e2e

package builder

import (
	"time"

	"order-ledger/internal/domain/user"
	sqlc "order-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID            uuid.UUID
	Email         string
	Role          string
	LoyaltyPoints int64
	SpinEligible  bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    uuid.New(),
		Email: "customer@example.com",
		Role:  string(user.RoleCustomer),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.Profile, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.ReconstructProfile(u.ID, email, u.LoyaltyPoints, u.SpinEligible), nil
}

func (u *UserBuilder) BuildInfra() sqlc.UserProfiles {
	now := time.Now()
	return sqlc.UserProfiles{
		ID:            u.ID,
		Email:         u.Email,
		Role:          u.Role,
		LoyaltyPoints: u.LoyaltyPoints,
		SpinEligible:  u.SpinEligible,
		CreatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
	}
}
