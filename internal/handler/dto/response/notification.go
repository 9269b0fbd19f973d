package response

import (
	"time"

	"order-ledger/internal/usecase/queries"
)

type NotificationResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Link      string     `json:"link,omitempty"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	NextCursor    *string                `json:"nextCursor,omitempty"`
}

func FromNotificationList(items []*queries.NotificationView, next *queries.Cursor) NotificationListResponse {
	out := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, NotificationResponse{
			ID:        n.ID.String(),
			Title:     n.Title,
			Message:   n.Message,
			Link:      n.Link,
			ReadAt:    n.ReadAt,
			CreatedAt: n.CreatedAt,
		})
	}
	resp := NotificationListResponse{Notifications: out}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}
