package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"order-ledger/internal/domain/order"
	"order-ledger/internal/domain/voucher"
	"order-ledger/internal/infra"
	"order-ledger/internal/pkg/errs"
	"order-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (uc *orderUseCaseImpl) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*PlaceOrderResult, error) {
	now := uc.clock.Now()

	o, err := buildOrder(in, now)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if in.IdempotencyKey == nil {
		return uc.settle(ctx, o, nil, now)
	}

	key := *in.IdempotencyKey
	hash, err := hashPlaceOrder(in)
	if err != nil {
		return nil, err
	}
	replay, err := uc.claimIdempotencyKey(ctx, key, in.UserID, hash, now)
	if err != nil || replay != nil {
		return replay, err
	}

	result, err := uc.settle(ctx, o, &key, now)
	if err != nil {
		uc.releaseIdempotencyKey(ctx, key)
	}
	return result, err
}

func buildOrder(in PlaceOrderInput, now time.Time) (*order.Order, error) {
	items := make([]order.Item, 0, len(in.Items))
	for _, it := range in.Items {
		kind, err := order.ParseItemKind(it.Kind)
		if err != nil {
			return nil, err
		}
		item, err := order.NewItem(kind, it.RefID, it.Quantity, it.UnitPrice, it.Option)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	shipping, err := order.NewShippingAddress(order.ShippingAddress{
		RecipientName: in.Shipping.RecipientName,
		Phone:         in.Shipping.Phone,
		Email:         in.Shipping.Email,
		Line1:         in.Shipping.Line1,
		Line2:         in.Shipping.Line2,
		City:          in.Shipping.City,
		PostalCode:    in.Shipping.PostalCode,
	})
	if err != nil {
		return nil, err
	}

	method, err := order.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	note, err := order.NewNote(in.Note)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(order.NewOrderParams{
		UserID:        in.UserID,
		Items:         items,
		Shipping:      shipping,
		Total:         in.Total,
		DeliveryFee:   in.DeliveryFee,
		VoucherID:     in.VoucherID,
		PaymentMethod: method,
		Note:          note,
	}, now)
}

// settle runs the voucher checks, persists the order, then fans out the
// incentive side effects. Only failures before the order commit are returned.
func (uc *orderUseCaseImpl) settle(ctx context.Context, o *order.Order, key *uuid.UUID, now time.Time) (*PlaceOrderResult, error) {
	var v *voucher.Voucher
	if id := o.VoucherID(); id != nil {
		var err error
		if v, err = uc.checkVoucher(ctx, *id, o.UserID(), o.Total(), now); err != nil {
			return nil, err
		}
	}

	if uid := o.UserID(); uid != nil {
		prior, err := uc.uow.CommandReads().CountPriorOrders(ctx, *uid)
		if err != nil {
			return nil, errs.Mark(err, ErrPersistence)
		}
		o.MarkFirstOrder(prior == 0)
	}

	ref, err := order.NewReference(now)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}
	o.AssignReference(ref)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Orders().Create(ctx, o); err != nil {
			return err
		}
		if key != nil {
			return tx.Idempotency().MarkCompleted(ctx, *key, o.ID(), ref.String())
		}
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}

	result := &PlaceOrderResult{
		OrderID:   o.ID(),
		Reference: ref.String(),
	}

	// The order exists from here on; a caller hanging up must not cut the fan-out short.
	bg := context.WithoutCancel(ctx)

	if v != nil {
		runBestEffort(bg, uc.logger, "voucher redemption", func(ctx context.Context) error {
			return uc.redeemVoucher(ctx, o, v, result)
		})
	}

	if uid := o.UserID(); uid != nil {
		runBestEffort(bg, uc.logger, "loyalty grant", func(ctx context.Context) error {
			tier, err := uc.loyalty.Grant(ctx, o)
			if tier != nil {
				name := tier.Name
				result.LoyaltyTier = &name
			}
			return err
		})

		runBestEffort(bg, uc.logger, "referral advance", func(ctx context.Context) error {
			code := ""
			if result.VoucherRedeemed {
				code = v.Code().String()
			}
			_, err := uc.referrals.Advance(ctx, ReferralContribution{
				UserID:      *uid,
				OrderID:     o.ID(),
				Total:       o.Total(),
				AppliedCode: code,
			})
			return err
		})
	}

	uc.logger.InfoContext(ctx, "order placed",
		slog.String("order_id", o.ID().String()),
		slog.String("reference", ref.String()),
		slog.Bool("voucher_redeemed", result.VoucherRedeemed))

	return result, nil
}

func (uc *orderUseCaseImpl) checkVoucher(
	ctx context.Context,
	voucherID uuid.UUID,
	userID *uuid.UUID,
	total decimal.Decimal,
	now time.Time,
) (*voucher.Voucher, error) {
	reads := uc.uow.CommandReads()

	v, err := reads.VoucherByID(ctx, voucherID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrVoucherNotFound)
		}
		return nil, errs.Mark(err, ErrPersistence)
	}

	if err := v.CheckRedeemable(now, total); err != nil {
		if errs.Is(err, voucher.ErrExhausted) {
			return nil, errs.Mark(err, ErrVoucherExhausted)
		}
		return nil, errs.Mark(err, ErrValidation)
	}
	if err := v.CheckHolder(userID); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if userID != nil {
		used, err := reads.VoucherUsageExists(ctx, voucherID, *userID)
		if err != nil {
			return nil, errs.Mark(err, ErrPersistence)
		}
		if used {
			return nil, ErrVoucherAlreadyRedeemed
		}
	}
	return v, nil
}

// redeemVoucher detaches the voucher from the order when redemption fails so
// the stored order never references a voucher slot it did not consume.
func (uc *orderUseCaseImpl) redeemVoucher(ctx context.Context, o *order.Order, v *voucher.Voucher, result *PlaceOrderResult) error {
	err := uc.vouchers.TryRedeem(ctx, RedeemRequest{
		VoucherID: v.ID(),
		UserID:    o.UserID(),
		OrderID:   o.ID(),
	})
	if err == nil {
		result.VoucherRedeemed = true
		return nil
	}

	o.DropVoucher()
	clearErr := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().ClearVoucher(ctx, o.ID())
	})
	if clearErr != nil {
		uc.logger.ErrorContext(ctx, "failed to detach unredeemed voucher",
			slog.String("order_id", o.ID().String()),
			slog.String("error", clearErr.Error()))
	}
	return err
}

func (uc *orderUseCaseImpl) claimIdempotencyKey(
	ctx context.Context,
	key uuid.UUID,
	userID *uuid.UUID,
	requestHash string,
	now time.Time,
) (*PlaceOrderResult, error) {
	rec := shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Status:      shared.IdempotencyProcessing,
		RequestHash: requestHash,
		ExpiresAt:   now.Add(uc.settings.IdempotencyTTL),
	}

	// Two rounds cover a key that expired or was released between insert and read.
	for range 2 {
		var inserted bool
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			inserted, err = tx.Idempotency().TryInsert(ctx, rec)
			return err
		})
		if err != nil {
			return nil, errs.Mark(err, ErrPersistence)
		}
		if inserted {
			return nil, nil
		}

		existing, err := uc.uow.CommandReads().IdempotencyByKey(ctx, key)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return nil, errs.Mark(err, ErrPersistence)
		}
		if existing.IsExpired(now) {
			uc.releaseIdempotencyKey(ctx, key)
			continue
		}
		if existing.RequestHash != requestHash || !sameUser(existing.UserID, userID) {
			return nil, ErrIdempotencyKeyReuse
		}

		if existing.Status == shared.IdempotencyCompleted && existing.ResultOrderID != nil {
			reference := ""
			if existing.ResultReference != nil {
				reference = *existing.ResultReference
			}
			return &PlaceOrderResult{
				OrderID:   *existing.ResultOrderID,
				Reference: reference,
				Replayed:  true,
			}, nil
		}
		return nil, ErrIdempotencyInProgress
	}
	return nil, ErrIdempotencyInProgress
}

func (uc *orderUseCaseImpl) releaseIdempotencyKey(ctx context.Context, key uuid.UUID) {
	err := uc.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, key)
	})
	if err != nil {
		uc.logger.WarnContext(ctx, "failed to release idempotency key",
			slog.String("key", key.String()),
			slog.String("error", err.Error()))
	}
}

func hashPlaceOrder(in PlaceOrderInput) (string, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return "", errs.Wrap(err, "hash place order request")
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

func sameUser(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
