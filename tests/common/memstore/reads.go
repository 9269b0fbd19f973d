//go:build unit

package memstore

import (
	"context"

	"order-ledger/internal/domain/order"
	"order-ledger/internal/domain/referral"
	"order-ledger/internal/domain/voucher"
	"order-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type reads struct{ s *Store }

func (r *reads) VoucherByID(_ context.Context, id uuid.UUID) (*voucher.Voucher, error) {
	if err := r.s.fail("Reads.VoucherByID"); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	p, ok := r.s.vouchers[id]
	hook := r.s.OnVoucherRead
	r.s.mu.Unlock()
	if !ok {
		return nil, notFound("voucher not found")
	}
	if hook != nil {
		hook(id)
	}
	return voucher.Reconstruct(p), nil
}

func (r *reads) VoucherUsageExists(_ context.Context, voucherID, userID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.usages {
		if u.VoucherID == voucherID && u.UserID != nil && *u.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *reads) OrderByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, notFound("order not found")
	}
	return rebuildOrder(o, func(*order.ReconstructParams) {}), nil
}

func (r *reads) ActiveReferralForUser(_ context.Context, userID uuid.UUID) (*referral.Referral, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.referrals {
		if p.ReferredID == userID && p.Status == referral.StatusApplied {
			return referral.Reconstruct(p), nil
		}
	}
	return nil, notFound("no applied referral")
}

func (r *reads) CountPriorOrders(_ context.Context, userID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, o := range r.s.orders {
		if uid := o.UserID(); uid != nil && *uid == userID {
			n++
		}
	}
	return n, nil
}

func (r *reads) UserContact(_ context.Context, userID uuid.UUID) (*shared.UserContact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, notFound("user not found")
	}
	return &shared.UserContact{UserID: userID, Email: p.Email}, nil
}

func (r *reads) IdempotencyByKey(_ context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.idempotency[key]
	if !ok {
		return nil, notFound("idempotency key not found")
	}
	return &rec, nil
}
