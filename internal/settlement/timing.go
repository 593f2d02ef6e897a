// Package settlement implements the auto-accept reverse-auction core: a
// timing policy for bid windows, a pure lowest-bid resolver, an executor that
// applies a resolution against the store, and a sweeper that drives
// settlement across a batch of orders.
package settlement

import (
	"strconv"
	"strings"
	"time"

	model "github.com/6ixapp/morren/internal/models"
)

// DefaultBidWindowDays is the bidding window applied when an item carries no
// usable bid-running-time specification.
const DefaultBidWindowDays = 7

// Specification keys the timing policy understands. Phase-specific keys take
// precedence over the generic one.
const (
	specKeySellerDays   = "Seller Bid Running Time (days)"
	specKeyShippingDays = "Shipping Bid Running Time (days)"
	specKeyGenericDays  = "Bid Running Time (days)"
)

// SellerBidDeadline returns the instant the seller bidding window closes:
// order creation time plus the configured window in calendar days.
func SellerBidDeadline(order model.Order) time.Time {
	days := bidWindowDays(order.Item, specKeySellerDays, specKeyGenericDays)
	return order.CreatedAt.Add(time.Duration(days) * 24 * time.Hour)
}

// ShippingBidDeadline returns the instant the shipping bidding window closes.
// The window opens when the order transitioned to accepted, which is the
// order's last-updated timestamp.
func ShippingBidDeadline(order model.Order) time.Time {
	days := bidWindowDays(order.Item, specKeyShippingDays, specKeyGenericDays)
	return order.UpdatedAt.Add(time.Duration(days) * 24 * time.Hour)
}

// IsSellerPhaseExpired reports whether the seller bidding window has closed.
// The deadline itself is not yet expired; comparison is strictly after.
func IsSellerPhaseExpired(order model.Order, now time.Time) bool {
	return now.After(SellerBidDeadline(order))
}

// IsShippingPhaseExpired reports whether the shipping bidding window has
// closed, strictly after the deadline.
func IsShippingPhaseExpired(order model.Order, now time.Time) bool {
	return now.After(ShippingBidDeadline(order))
}

// bidWindowDays reads the bidding window from the item's stringly-typed
// specification bag. A value that is missing, non-numeric, zero or negative
// counts as unspecified and the next key (then the default) applies.
func bidWindowDays(item *model.Item, keys ...string) int {
	if item == nil {
		return DefaultBidWindowDays
	}
	for _, key := range keys {
		raw, ok := item.Specifications[key]
		if !ok {
			continue
		}
		if days, ok := parseDays(raw); ok && days > 0 {
			return days
		}
	}
	return DefaultBidWindowDays
}

// parseDays converts a specification value to whole days. Specifications come
// from JSON, so numbers usually arrive as float64 and user-entered values as
// strings.
func parseDays(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		s := strings.TrimSpace(v)
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}
