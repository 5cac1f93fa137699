package order

import "errors"

var (
	ErrUndefinedStatus = errors.New("undefined order status")
	ErrMissingEventKey = errors.New("order id and status are required")
)
