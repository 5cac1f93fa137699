package dispatch

import "errors"

var (
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidCourierID     = errors.New("invalid courier id")
	ErrRejectReasonRequired = errors.New("reject reason required")
	ErrCancelReasonRequired = errors.New("cancel reason required")
	ErrInvalidTip           = errors.New("invalid tip amount")

	ErrOrderNotFound      = errors.New("order not found")
	ErrVendorNotFound     = errors.New("vendor not found")
	ErrAssignmentNotFound = errors.New("assignment not found")

	ErrOrderNotReady        = errors.New("order is not ready for assignment")
	ErrOrderAlreadyAssigned = errors.New("order already has an active assignment")
	// ErrOrderStatusConflict — CAS по статусу заказа не прошел: заказ
	// изменили конкурентно между чтением и записью.
	ErrOrderStatusConflict      = errors.New("order status changed concurrently")
	ErrAssignmentStatusConflict = errors.New("assignment is not in expected status")
	ErrOrderNotCancellable      = errors.New("order can no longer be cancelled")

	ErrCourierNotAvailable = errors.New("courier is not available")
	ErrCourierAtCapacity   = errors.New("courier is at max active orders")

	ErrNoOffer      = errors.New("no broadcast offer for courier")
	ErrOfferExpired = errors.New("broadcast offer expired")

	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	// ErrEarningAlreadyRecorded защищает леджер от повторной выплаты
	// за один и тот же заказ.
	ErrEarningAlreadyRecorded = errors.New("earning already recorded for order")
)
