// README: Coupon definitions, validation result and usage record.
package coupon

import (
	"errors"
	"strings"
	"time"

	"transfer/internal/types"
)

var (
	ErrRateLimited      = errors.New("too many coupon requests")
	ErrEmptyCode        = errors.New("coupon code is required")
	ErrStoreUnavailable = errors.New("coupon usage store unavailable")
)

type Coupon struct {
	Code            string      `json:"code"`
	Description     string      `json:"description"`
	DiscountPercent float64     `json:"discount_percent,omitempty"`
	DiscountAmount  types.Money `json:"discount_amount"`
	MinimumPrice    types.Money `json:"minimum_price"`
	ValidUntil      time.Time   `json:"valid_until"`
	MaxUses         int         `json:"max_uses,omitempty"` // 0 = unlimited
	Active          bool        `json:"active"`
}

// Apply returns the discounted price, never below zero. Prices under
// MinimumPrice are returned unchanged.
func (c Coupon) Apply(price types.Money) types.Money {
	if price.Amount < c.MinimumPrice.Amount {
		return price
	}
	discounted := price
	if c.DiscountPercent > 0 {
		discounted = price.Scale(1 - c.DiscountPercent/100)
	}
	discounted.Amount -= c.DiscountAmount.Amount
	if discounted.Amount < 0 {
		discounted.Amount = 0
	}
	return discounted
}

func (c Coupon) expired(now time.Time) bool {
	return !c.ValidUntil.IsZero() && now.After(c.ValidUntil)
}

// Result is the validation response body.
type Result struct {
	Valid   bool    `json:"valid"`
	Message string  `json:"message"`
	Coupon  *Coupon `json:"coupon,omitempty"`
}

type Usage struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	UsedAt    time.Time `json:"used_at"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
}

// NormalizeCode trims and uppercases a user-entered code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
