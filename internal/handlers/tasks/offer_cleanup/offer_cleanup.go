package offer_cleanup

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Offers interface {
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type Clock interface {
	Now() time.Time
}

// OfferCleanup периодически выметает протухшие предложения рассылки.
// Заказ при этом не трогается: он остается в ready и доступен для
// следующего раунда назначения.
type OfferCleanup struct {
	log      logger.Logger
	offers   Offers
	clock    Clock
	interval time.Duration
}

func NewOfferCleanup(log logger.Logger, offers Offers, clock Clock, interval time.Duration) *OfferCleanup {
	return &OfferCleanup{
		log:      log,
		offers:   offers,
		clock:    clock,
		interval: interval,
	}
}

func (o *OfferCleanup) TTL() time.Duration {
	return o.interval
}

func (o *OfferCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	rowsAffected, err := o.offers.DeleteExpired(ctxWithTimeout, o.clock.Now())

	if rowsAffected > 0 {
		o.log.With(
			logger.NewField("expired_offers", rowsAffected),
		).Info("offer cleanup")
	}

	return err
}

func (o *OfferCleanup) Info() string {
	return "offer cleanup"
}
