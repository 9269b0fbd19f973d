package shared

import (
	"context"
	"time"

	"order-ledger/internal/domain/loyalty"
	"order-ledger/internal/domain/order"
	"order-ledger/internal/domain/referral"
	"order-ledger/internal/domain/voucher"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to one open transaction.
type Tx interface {
	Orders() OrderRepository
	Vouchers() VoucherRepository
	Referrals() ReferralRepository
	Loyalty() LoyaltyRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
}

type CommandReads interface {
	VoucherByID(ctx context.Context, id uuid.UUID) (*voucher.Voucher, error)
	VoucherUsageExists(ctx context.Context, voucherID, userID uuid.UUID) (bool, error)
	OrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	ActiveReferralForUser(ctx context.Context, userID uuid.UUID) (*referral.Referral, error)
	CountPriorOrders(ctx context.Context, userID uuid.UUID) (int64, error)
	UserContact(ctx context.Context, userID uuid.UUID) (*UserContact, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
}

type OrderRepository interface {
	// Create persists the order together with its line items.
	Create(ctx context.Context, o *order.Order) error
	// UpdateStatus applies change only while the stored status still equals change.From.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, change order.StatusChange) error
	ClearVoucher(ctx context.Context, orderID uuid.UUID) error
}

type VoucherRepository interface {
	// IncrementUsedCount is the compare-and-swap on used_count; false means the
	// stored counter no longer equals expected or the cap was reached.
	IncrementUsedCount(ctx context.Context, id uuid.UUID, expected int32) (bool, error)
	InsertUsage(ctx context.Context, usage VoucherUsage) error
	Create(ctx context.Context, v *voucher.Voucher) error
}

type ReferralRepository interface {
	// RecordContribution returns false when the order already contributed.
	RecordContribution(ctx context.Context, referralID, orderID uuid.UUID, amount decimal.Decimal, at time.Time) (bool, error)
	// AddPurchaseAmount increments the cumulative amount of an applied referral
	// and returns the row as stored after the increment.
	AddPurchaseAmount(ctx context.Context, referralID uuid.UUID, amount decimal.Decimal, at time.Time) (*referral.Referral, error)
	// SaveProgress writes status and discount flag while the row is still applied.
	SaveProgress(ctx context.Context, referralID uuid.UUID, p referral.Progress, at time.Time) (bool, error)
}

type LoyaltyRepository interface {
	// InsertGrant returns false when the order already has a grant.
	InsertGrant(ctx context.Context, g loyalty.Grant) (bool, error)
	AddPoints(ctx context.Context, userID uuid.UUID, points int64) error
	// SubtractPoints floors the counter at zero.
	SubtractPoints(ctx context.Context, userID uuid.UUID, points int64) error
	SetSpinEligible(ctx context.Context, userID uuid.UUID, eligible bool) error
	// MarkRetracted returns false when there is no unretracted grant for the order.
	MarkRetracted(ctx context.Context, orderID uuid.UUID, at time.Time) (bool, error)
}

type IdempotencyRepository interface {
	// TryInsert claims the key in processing state; false when it already exists.
	TryInsert(ctx context.Context, rec IdempotencyRecord) (bool, error)
	MarkCompleted(ctx context.Context, key, orderID uuid.UUID, reference string) error
	Release(ctx context.Context, key uuid.UUID) error
}
