package selector

import "errors"

var (
	ErrVendorLocationMissing = errors.New("vendor has no location")
	ErrNoAvailableCouriers   = errors.New("no available couriers in radius")
)
