//go:build unit

package memstore

import (
	"context"
	"sync"
	"time"

	"order-ledger/internal/domain/loyalty"
	"order-ledger/internal/domain/order"
	"order-ledger/internal/domain/referral"
	"order-ledger/internal/domain/voucher"
	"order-ledger/internal/infra"
	"order-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type memTx struct {
	s    *Store
	mu   sync.Mutex
	undo []func()
}

// record must be called with s.mu held.
func (t *memTx) record(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.undo = append(t.undo, fn)
}

func (t *memTx) rollback() {
	t.mu.Lock()
	undo := t.undo
	t.undo = nil
	t.mu.Unlock()

	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for i := len(undo) - 1; i >= 0; i-- {
		undo[i]()
	}
}

func (t *memTx) Orders() shared.OrderRepository            { return &orderRepo{t: t} }
func (t *memTx) Vouchers() shared.VoucherRepository        { return &voucherRepo{t: t} }
func (t *memTx) Referrals() shared.ReferralRepository      { return &referralRepo{t: t} }
func (t *memTx) Loyalty() shared.LoyaltyRepository         { return &loyaltyRepo{t: t} }
func (t *memTx) Idempotency() shared.IdempotencyRepository { return &idempotencyRepo{t: t} }
func (t *memTx) Reads() shared.CommandReads                { return &reads{s: t.s} }

// orders

type orderRepo struct{ t *memTx }

func (r *orderRepo) Create(_ context.Context, o *order.Order) error {
	s := r.t.s
	if err := s.fail("Orders.Create"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.orders[o.ID()]; exists {
		return infra.WrapRepoErr("order exists", nil, infra.KindDuplicateKey)
	}
	s.orders[o.ID()] = rebuildOrder(o, func(*order.ReconstructParams) {})
	id := o.ID()
	r.t.record(func() { delete(s.orders, id) })
	return nil
}

func (r *orderRepo) UpdateStatus(_ context.Context, orderID uuid.UUID, change order.StatusChange) error {
	s := r.t.s
	if err := s.fail("Orders.UpdateStatus"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.orders[orderID]
	if !ok || prev.Status() != change.From {
		return infra.WrapRepoErr("order status changed concurrently", nil, infra.KindConflict)
	}
	s.orders[orderID] = rebuildOrder(prev, func(p *order.ReconstructParams) {
		p.Status = change.To
		p.PaymentStatus = change.PaymentStatus
		p.UpdatedAt = change.At
	})
	r.t.record(func() { s.orders[orderID] = prev })
	return nil
}

func (r *orderRepo) ClearVoucher(_ context.Context, orderID uuid.UUID) error {
	s := r.t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.orders[orderID]
	if !ok {
		return nil
	}
	s.orders[orderID] = rebuildOrder(prev, func(p *order.ReconstructParams) { p.VoucherID = nil })
	r.t.record(func() { s.orders[orderID] = prev })
	return nil
}

func rebuildOrder(o *order.Order, mutate func(p *order.ReconstructParams)) *order.Order {
	p := order.ReconstructParams{
		ID:            o.ID(),
		UserID:        o.UserID(),
		Reference:     o.Reference(),
		Items:         o.Items(),
		Shipping:      o.Shipping(),
		Total:         o.Total(),
		DeliveryFee:   o.DeliveryFee(),
		VoucherID:     o.VoucherID(),
		Status:        o.Status(),
		PaymentMethod: o.PaymentMethod(),
		PaymentStatus: o.PaymentStatus(),
		Note:          o.Note(),
		FirstOrder:    o.FirstOrder(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
	mutate(&p)
	return order.Reconstruct(p)
}

// vouchers

type voucherRepo struct{ t *memTx }

func (r *voucherRepo) IncrementUsedCount(_ context.Context, id uuid.UUID, expected int32) (bool, error) {
	s := r.t.s
	if err := s.fail("Vouchers.IncrementUsedCount"); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.vouchers[id]
	if !ok || p.UsedCount != expected {
		return false, nil
	}
	if p.MaxUses != nil && p.UsedCount >= *p.MaxUses {
		return false, nil
	}
	p.UsedCount++
	s.vouchers[id] = p
	r.t.record(func() {
		cur := s.vouchers[id]
		cur.UsedCount--
		s.vouchers[id] = cur
	})
	return true, nil
}

func (r *voucherRepo) InsertUsage(_ context.Context, usage shared.VoucherUsage) error {
	s := r.t.s
	if err := s.fail("Vouchers.InsertUsage"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.usages {
		if u.OrderID == usage.OrderID {
			return infra.WrapRepoErr("usage exists for order", nil, infra.KindDuplicateKey)
		}
		if u.VoucherID == usage.VoucherID && u.UserID != nil && usage.UserID != nil && *u.UserID == *usage.UserID {
			return infra.WrapRepoErr("usage exists for user", nil, infra.KindDuplicateKey)
		}
	}
	s.usages = append(s.usages, usage)
	r.t.record(func() {
		for i, u := range s.usages {
			if u.OrderID == usage.OrderID {
				s.usages = append(s.usages[:i], s.usages[i+1:]...)
				return
			}
		}
	})
	return nil
}

func (r *voucherRepo) Create(_ context.Context, v *voucher.Voucher) error {
	s := r.t.s
	if err := s.fail("Vouchers.Create"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.vouchers {
		if p.Code == v.Code() {
			return infra.WrapRepoErr("voucher code exists", nil, infra.KindDuplicateKey)
		}
	}
	s.vouchers[v.ID()] = voucher.ReconstructParams{
		ID:             v.ID(),
		Code:           v.Code(),
		Discount:       v.Discount(),
		MinOrderAmount: v.MinOrderAmount(),
		MaxUses:        v.MaxUses(),
		UsedCount:      v.UsedCount(),
		Active:         v.Active(),
		ValidFrom:      v.ValidFrom(),
		ValidTo:        v.ValidTo(),
		IssuedTo:       v.IssuedTo(),
		CreatedAt:      v.CreatedAt(),
		UpdatedAt:      v.UpdatedAt(),
	}
	id := v.ID()
	r.t.record(func() { delete(s.vouchers, id) })
	return nil
}

// referrals

type referralRepo struct{ t *memTx }

func (r *referralRepo) RecordContribution(_ context.Context, referralID, orderID uuid.UUID, amount decimal.Decimal, _ time.Time) (bool, error) {
	s := r.t.s
	if err := s.fail("Referrals.RecordContribution"); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := contributionKey{referralID: referralID, orderID: orderID}
	if _, exists := s.contributions[key]; exists {
		return false, nil
	}
	s.contributions[key] = amount
	r.t.record(func() { delete(s.contributions, key) })
	return true, nil
}

func (r *referralRepo) AddPurchaseAmount(_ context.Context, referralID uuid.UUID, amount decimal.Decimal, at time.Time) (*referral.Referral, error) {
	s := r.t.s
	if err := s.fail("Referrals.AddPurchaseAmount"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.referrals[referralID]
	if !ok || prev.Status != referral.StatusApplied {
		return nil, notFound("applied referral not found")
	}
	next := prev
	next.PurchaseAmount = prev.PurchaseAmount.Add(amount)
	next.UpdatedAt = at
	s.referrals[referralID] = next
	r.t.record(func() {
		cur := s.referrals[referralID]
		cur.PurchaseAmount = cur.PurchaseAmount.Sub(amount)
		s.referrals[referralID] = cur
	})
	return referral.Reconstruct(next), nil
}

func (r *referralRepo) SaveProgress(_ context.Context, referralID uuid.UUID, p referral.Progress, at time.Time) (bool, error) {
	s := r.t.s
	if err := s.fail("Referrals.SaveProgress"); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.referrals[referralID]
	if !ok || prev.Status != referral.StatusApplied {
		return false, nil
	}
	next := prev
	next.Status = p.Status
	next.DiscountGiven = p.DiscountGiven
	next.UpdatedAt = at
	s.referrals[referralID] = next
	r.t.record(func() {
		cur := s.referrals[referralID]
		cur.Status = prev.Status
		cur.DiscountGiven = prev.DiscountGiven
		s.referrals[referralID] = cur
	})
	return true, nil
}

// loyalty

type loyaltyRepo struct{ t *memTx }

func (r *loyaltyRepo) InsertGrant(_ context.Context, g loyalty.Grant) (bool, error) {
	s := r.t.s
	if err := s.fail("Loyalty.InsertGrant"); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.grants[g.OrderID]; exists {
		return false, nil
	}
	s.grants[g.OrderID] = g
	r.t.record(func() { delete(s.grants, g.OrderID) })
	return true, nil
}

func (r *loyaltyRepo) AddPoints(_ context.Context, userID uuid.UUID, points int64) error {
	s := r.t.s
	if err := s.fail("Loyalty.AddPoints"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profileLocked(userID)
	p.LoyaltyPoints += points
	r.t.record(func() { p.LoyaltyPoints -= points })
	return nil
}

func (r *loyaltyRepo) SubtractPoints(_ context.Context, userID uuid.UUID, points int64) error {
	s := r.t.s
	if err := s.fail("Loyalty.SubtractPoints"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profileLocked(userID)
	prev := p.LoyaltyPoints
	p.LoyaltyPoints = max(prev-points, 0)
	r.t.record(func() { p.LoyaltyPoints = prev })
	return nil
}

func (r *loyaltyRepo) SetSpinEligible(_ context.Context, userID uuid.UUID, eligible bool) error {
	s := r.t.s
	if err := s.fail("Loyalty.SetSpinEligible"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profileLocked(userID)
	prev := p.SpinEligible
	p.SpinEligible = eligible
	r.t.record(func() { p.SpinEligible = prev })
	return nil
}

func (r *loyaltyRepo) MarkRetracted(_ context.Context, orderID uuid.UUID, at time.Time) (bool, error) {
	s := r.t.s
	if err := s.fail("Loyalty.MarkRetracted"); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.grants[orderID]
	if !ok || g.IsRetracted() {
		return false, nil
	}
	retracted := g
	retracted.RetractedAt = &at
	s.grants[orderID] = retracted
	r.t.record(func() { s.grants[orderID] = g })
	return true, nil
}

func (s *Store) profileLocked(userID uuid.UUID) *Profile {
	p, ok := s.profiles[userID]
	if !ok {
		p = &Profile{}
		s.profiles[userID] = p
	}
	return p
}

// idempotency

type idempotencyRepo struct{ t *memTx }

func (r *idempotencyRepo) TryInsert(_ context.Context, rec shared.IdempotencyRecord) (bool, error) {
	s := r.t.s
	if err := s.fail("Idempotency.TryInsert"); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.idempotency[rec.Key]; exists {
		return false, nil
	}
	s.idempotency[rec.Key] = rec
	r.t.record(func() { delete(s.idempotency, rec.Key) })
	return true, nil
}

func (r *idempotencyRepo) MarkCompleted(_ context.Context, key, orderID uuid.UUID, reference string) error {
	s := r.t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.idempotency[key]
	if !ok {
		return nil
	}
	next := prev
	next.Status = shared.IdempotencyCompleted
	next.ResultOrderID = &orderID
	next.ResultReference = &reference
	s.idempotency[key] = next
	r.t.record(func() { s.idempotency[key] = prev })
	return nil
}

func (r *idempotencyRepo) Release(_ context.Context, key uuid.UUID) error {
	s := r.t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.idempotency[key]
	if !ok {
		return nil
	}
	if prev.Status == shared.IdempotencyProcessing || prev.IsExpired(s.Now()) {
		delete(s.idempotency, key)
		r.t.record(func() { s.idempotency[key] = prev })
	}
	return nil
}
