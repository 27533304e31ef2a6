package qif

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders minor units as a signed decimal with exactly two
// fraction digits: -1000 -> "-10.00", 5 -> "0.05".
func FormatAmount(minor int64) string {
	neg := minor < 0
	mag := uint64(minor)
	if neg {
		mag = -mag // wraps correctly for math.MinInt64
	}

	digits := strconv.FormatUint(mag, 10)
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}
	cut := len(digits) - 2

	var sb strings.Builder
	sb.Grow(len(digits) + 2)
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteString(digits[:cut])
	sb.WriteByte('.')
	sb.WriteString(digits[cut:])
	return sb.String()
}

// ParseAmount parses a decimal string such as "-4.50" into minor units.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidAmount, s, err)
	}
	return AmountFromDecimal(d)
}

// AmountFromDecimal converts d to minor units. It fails if d carries more
// than two fraction digits or does not fit in an int64.
func AmountFromDecimal(d decimal.Decimal) (int64, error) {
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("%w: %s has more than 2 decimal places", ErrInvalidAmount, d)
	}
	bi := cents.BigInt()
	if !bi.IsInt64() {
		return 0, fmt.Errorf("%w: %s out of range", ErrInvalidAmount, d)
	}
	return bi.Int64(), nil
}

// AmountToDecimal converts minor units back to a decimal value.
func AmountToDecimal(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}
