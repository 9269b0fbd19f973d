package readstore

import (
	"context"

	"order-ledger/internal/infra"
	"order-ledger/internal/infra/converter"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/pkg/pgconv"
	"order-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserProfile(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.UserProfiles, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) ContactByID(ctx context.Context, id uuid.UUID) (*shared.UserContact, error) {
	row, err := r.queries.GetUserProfile(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	profile := converter.ProfileFromRow(row)
	return &shared.UserContact{
		UserID: profile.ID(),
		Email:  profile.Email().Value(),
	}, nil
}
