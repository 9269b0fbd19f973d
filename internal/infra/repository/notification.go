package repository

import (
	"context"

	"order-ledger/internal/infra"
	sqlc "order-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationParams) (sqlc.CreateNotificationRow, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

// Create stores an in-app notification and returns its id.
func (r *NotificationRepository) Create(ctx context.Context, userID uuid.UUID, title, message, link string) (uuid.UUID, error) {
	row, err := r.queries.CreateNotification(ctx, r.db, sqlc.CreateNotificationParams{
		UserID:  userID,
		Title:   title,
		Message: message,
		Link:    link,
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification", err)
	}
	return row.ID, nil
}
