package commands

import (
	"context"
	"fmt"
	"log/slog"

	"order-ledger/internal/domain/order"
	"order-ledger/internal/infra"
	"order-ledger/internal/pkg/errs"
	"order-ledger/internal/usecase/shared"
)

func (uc *orderUseCaseImpl) UpdateOrderStatus(ctx context.Context, in UpdateOrderStatusInput) error {
	if !in.ActorRole.IsAdmin() {
		return ErrAuthorization
	}

	target, err := order.ParseStatus(in.Target)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}

	o, err := uc.uow.CommandReads().OrderByID(ctx, in.OrderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrOrderNotFound)
		}
		return errs.Mark(err, ErrPersistence)
	}

	change, err := o.TransitionTo(target, uc.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrIllegalTransition)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().UpdateStatus(ctx, o.ID(), change)
	})
	if err != nil {
		// The guarded update found a different status: someone else moved the order first.
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, ErrIllegalTransition)
		}
		return errs.Mark(err, ErrPersistence)
	}

	uc.logger.InfoContext(ctx, "order status changed",
		slog.String("order_id", o.ID().String()),
		slog.String("from", change.From.String()),
		slog.String("to", change.To.String()),
		slog.String("actor_id", in.ActorID.String()))

	bg := context.WithoutCancel(ctx)

	if target == order.StatusCancelled {
		runBestEffort(bg, uc.logger, "loyalty retraction", func(ctx context.Context) error {
			_, err := uc.loyalty.Retract(ctx, o)
			return err
		})
		runBestEffort(bg, uc.logger, "status notification", func(ctx context.Context) error {
			return uc.notifyStatus(ctx, o)
		})
		return nil
	}

	runBestEffort(bg, uc.logger, "status notification", func(ctx context.Context) error {
		return uc.notifyStatus(ctx, o)
	})
	if target != order.StatusConfirmed {
		runBestEffort(bg, uc.logger, "status email", func(ctx context.Context) error {
			return uc.emailStatus(ctx, o)
		})
	}
	return nil
}

func (uc *orderUseCaseImpl) notifyStatus(ctx context.Context, o *order.Order) error {
	if o.IsGuest() {
		return nil
	}
	return uc.notifier.Notify(ctx, Notification{
		UserID:  *o.UserID(),
		Title:   "Order " + o.Reference().String(),
		Message: fmt.Sprintf("Your order %s is now: %s", o.Reference(), o.Status()),
		Link:    uc.settings.DeepLinkBase + o.ID().String(),
	})
}

func (uc *orderUseCaseImpl) emailStatus(ctx context.Context, o *order.Order) error {
	to := o.Shipping().Email
	if uid := o.UserID(); uid != nil {
		contact, err := uc.uow.CommandReads().UserContact(ctx, *uid)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		if contact != nil && contact.Email != "" {
			to = contact.Email
		}
	}
	if to == "" {
		uc.logger.DebugContext(ctx, "no email recipient for order",
			slog.String("order_id", o.ID().String()))
		return nil
	}

	items := make([]EmailItem, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, EmailItem{
			Kind:      string(it.Kind()),
			Quantity:  it.Quantity(),
			UnitPrice: it.UnitPrice(),
			Option:    it.Option(),
		})
	}

	return uc.mailer.SendOrderStatus(ctx, OrderStatusEmail{
		To:        to,
		Reference: o.Reference().String(),
		Status:    o.Status().String(),
		Items:     items,
		Total:     o.Total(),
		Shipping:  o.Shipping(),
	})
}
