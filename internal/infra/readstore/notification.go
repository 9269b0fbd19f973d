package readstore

import (
	"context"
	"time"

	"order-ledger/internal/infra"
	sqlc "order-ledger/internal/infra/sqlc/generated"
	"order-ledger/internal/pkg/pgconv"
	"order-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationReadQueries interface {
	ListNotificationsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsFirstPageParams) ([]sqlc.Notifications, error)
	ListNotificationsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsKeysetParams) ([]sqlc.Notifications, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *NotificationReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := s.queries.ListNotificationsFirstPage(ctx, s.db, sqlc.ListNotificationsFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	return mapNotifications(rows), nil
}

func (s *NotificationReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := s.queries.ListNotificationsKeyset(ctx, s.db, sqlc.ListNotificationsKeysetParams{
		UserID:    userID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Lim:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications after cursor", err)
	}
	return mapNotifications(rows), nil
}

func mapNotifications(rows []sqlc.Notifications) []*queries.NotificationView {
	views := make([]*queries.NotificationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.NotificationView{
			ID:        row.ID,
			Title:     row.Title,
			Message:   row.Message,
			Link:      row.Link,
			ReadAt:    pgconv.TimePtrFromPgtype(row.ReadAt),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views
}
