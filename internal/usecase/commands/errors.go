package commands

import (
	"order-ledger/internal/pkg/errs"
)

// Typed failures surfaced to callers. Wrapped causes stay reachable with errors.Is.
var (
	ErrValidation                = errs.New("validation error")
	ErrVoucherNotFound           = errs.New("voucher not found")
	ErrVoucherExhausted          = errs.New("voucher exhausted")
	ErrVoucherRedemptionConflict = errs.New("voucher redemption conflict")
	ErrVoucherAlreadyRedeemed    = errs.New("voucher already redeemed by user")
	ErrAuthorization             = errs.New("not authorized")
	ErrIllegalTransition         = errs.New("illegal status transition")
	ErrOrderNotFound             = errs.New("order not found")
	ErrPersistence               = errs.New("persistence failure")
	ErrIdempotencyInProgress     = errs.New("idempotency in progress")
	ErrIdempotencyKeyReuse       = errs.New("idempotency key reused with different request")
)
