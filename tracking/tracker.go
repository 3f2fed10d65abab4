package tracking

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/models"
)

// OrderFetcher is the order-service boundary for tracking lookups.
type OrderFetcher interface {
	OrdersByPhone(ctx context.Context, phone string) ([]models.Order, error)
}

// ErrTrackingUnavailable marks a transport failure behind a lookup. The
// shopper-facing outcome is the same as an empty result (see NoOrdersFound);
// the typed error is what lets a caller split the two cases later.
var ErrTrackingUnavailable = errors.New("order tracking unavailable")

// Tracker is the read-only order lookup by customer phone number.
type Tracker struct {
	svc OrderFetcher
}

func NewTracker(svc OrderFetcher) *Tracker {
	return &Tracker{svc: svc}
}

// TrackByPhone returns the customer's orders newest first.
func (t *Tracker) TrackByPhone(ctx context.Context, phone string) ([]models.Order, error) {
	orders, err := t.svc.OrdersByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTrackingUnavailable, err)
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// NoOrdersFound reports the outcome the shopper sees for a lookup: zero
// results and an unreachable service present identically as "no orders
// found".
func NoOrdersFound(orders []models.Order, err error) bool {
	return err != nil || len(orders) == 0
}
