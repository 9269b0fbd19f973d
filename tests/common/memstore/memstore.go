//go:build unit

// Package memstore is an in-memory shared.UnitOfWork for command tests.
// Every repository call is atomic on its own; a failed Within replays the
// transaction's undo log so partial writes disappear.
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

type Profile struct {
	Email         string
	LoyaltyPoints int64
	SpinEligible  bool
}

type contributionKey struct {
	referralID uuid.UUID
	orderID    uuid.UUID
}

type Store struct {
	mu sync.Mutex

	vouchers      map[uuid.UUID]voucher.ReconstructParams
	usages        []shared.VoucherUsage
	orders        map[uuid.UUID]*order.Order
	referrals     map[uuid.UUID]referral.ReconstructParams
	contributions map[contributionKey]decimal.Decimal
	grants        map[uuid.UUID]loyalty.Grant
	profiles      map[uuid.UUID]*Profile
	idempotency   map[uuid.UUID]shared.IdempotencyRecord

	// OnVoucherRead runs after a voucher is loaded, outside the store lock.
	OnVoucherRead func(id uuid.UUID)
	// FailOn makes the named operation return the error, e.g. "Orders.Create".
	FailOn map[string]error

	Now func() time.Time
}

func New() *Store {
	return &Store{
		vouchers:      map[uuid.UUID]voucher.ReconstructParams{},
		orders:        map[uuid.UUID]*order.Order{},
		referrals:     map[uuid.UUID]referral.ReconstructParams{},
		contributions: map[contributionKey]decimal.Decimal{},
		grants:        map[uuid.UUID]loyalty.Grant{},
		profiles:      map[uuid.UUID]*Profile{},
		idempotency:   map[uuid.UUID]shared.IdempotencyRecord{},
		FailOn:        map[string]error{},
		Now:           time.Now,
	}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t := &memTx{s: s}
	if err := fn(ctx, t); err != nil {
		t.rollback()
		return err
	}
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{s: s}
}

func (s *Store) fail(op string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.FailOn[op]
}

// Seeding and inspection helpers.

func (s *Store) PutVoucher(p voucher.ReconstructParams) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vouchers[p.ID] = p
}

func (s *Store) PutReferral(p referral.ReconstructParams) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.referrals[p.ID] = p
}

func (s *Store) PutProfile(id uuid.UUID, p Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := p
	s.profiles[id] = &cp
}

func (s *Store) PutOrder(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID()] = o
}

// BumpVoucherUsedCount simulates a redemption committed by another process.
func (s *Store) BumpVoucherUsedCount(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.vouchers[id]
	p.UsedCount++
	s.vouchers[id] = p
}

func (s *Store) VoucherUsedCount(id uuid.UUID) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vouchers[id].UsedCount
}

// Vouchers returns every stored voucher, including ones minted during a test.
func (s *Store) Vouchers() []voucher.ReconstructParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]voucher.ReconstructParams, 0, len(s.vouchers))
	for _, p := range s.vouchers {
		out = append(out, p)
	}
	return out
}

func (s *Store) Usages() []shared.VoucherUsage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]shared.VoucherUsage(nil), s.usages...)
}

func (s *Store) Orders() []*order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out
}

func (s *Store) Order(id uuid.UUID) *order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id]
}

func (s *Store) Referral(id uuid.UUID) referral.ReconstructParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.referrals[id]
}

func (s *Store) Profile(id uuid.UUID) Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.profiles[id]; ok {
		return *p
	}
	return Profile{}
}

func (s *Store) Grant(orderID uuid.UUID) (loyalty.Grant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.grants[orderID]
	return g, ok
}

func (s *Store) Idempotency(key uuid.UUID) (shared.IdempotencyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.idempotency[key]
	return r, ok
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func (s *Store) PutIdempotency(rec shared.IdempotencyRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idempotency[rec.Key] = rec
}

// Reset clears injected failures and hooks.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FailOn = map[string]error{}
	s.OnVoucherRead = nil
}
