// internal/pkg/currency/currency.go
package currency

import (
	"strconv"
	"strings"
)

// Parse extracts the numeric value from a display price string such as
// "TZS 8,500,000" or "From TZS 150,000". Every rune that is not a digit
// or a decimal point is stripped before parsing. An unparsable or empty
// result yields 0 rather than an error; catalog prices that carry no
// number ("Custom Pricing") simply contribute nothing to totals.
func Parse(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return value
}

// Format renders an amount as a display string in the given currency
// code, e.g. Format(9250000, "TZS") == "TZS 9,250,000". Amounts are
// whole currency units; any fractional part is truncated because the
// catalog never displays cents.
func Format(amount float64, code string) string {
	return code + " " + group(int64(amount))
}

// group inserts thousands separators into the decimal representation.
func group(n int64) string {
	negative := n < 0
	if negative {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
