package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          *uuid.UUID
	Status          string
	RequestHash     string
	ResultOrderID   *uuid.UUID
	ResultReference *string
	ExpiresAt       time.Time
}

func (r *IdempotencyRecord) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

type VoucherUsage struct {
	VoucherID  uuid.UUID
	UserID     *uuid.UUID
	OrderID    uuid.UUID
	RedeemedAt time.Time
}

// UserContact is the minimum needed to reach a customer.
type UserContact struct {
	UserID uuid.UUID
	Email  string
}
