package validate

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Same pattern the site's form scripts use: one @, a local part, and a
// domain containing a dot. Deliberately not full RFC validation so the
// server never rejects what the client accepted.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CustomAmountSentinel is the preset-amount option that defers to the
// custom amount field.
const CustomAmountSentinel = "custom"

var (
	ErrAmountRequired    = errors.New("donation amount is required")
	ErrAmountNotPositive = errors.New("donation amount must be greater than zero")
)

// Email reports whether the address passes the shared format check.
func Email(addr string) bool {
	return emailPattern.MatchString(strings.TrimSpace(addr))
}

// NormalizeEmail lowercases and trims an address for storage and lookups.
func NormalizeEmail(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// ResolveAmount picks between the preset amount and the custom amount field
// and parses the result. amount == "custom" means the donor typed their own
// value into customAmount.
func ResolveAmount(amount, customAmount string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(amount)
	if raw == CustomAmountSentinel {
		raw = strings.TrimSpace(customAmount)
	}
	if raw == "" {
		return decimal.Zero, ErrAmountRequired
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrAmountNotPositive
	}
	if !value.IsPositive() {
		return decimal.Zero, ErrAmountNotPositive
	}
	return value, nil
}
