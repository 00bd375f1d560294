// Package money renders decimal amounts the way the retail screens show them:
// rupee amounts with en-IN digit grouping, percentages and order quantities.
package money

import (
	"github.com/shopspring/decimal"
	"strings"
)

const RupeeSymbol = "₹"

// Rupees formats amount with two decimals and en-IN grouping, e.g. ₹1,23,456.70.
// Negative amounts keep the sign after the symbol (₹-50.00).
func Rupees(amount decimal.Decimal) string {
	return RupeeSymbol + Indian(amount)
}

// Indian formats amount with two decimals, grouping the last three integer
// digits and then every two (lakh/crore style).
func Indian(amount decimal.Decimal) string {
	return group(amount.StringFixed(2), 3, 2)
}

// Grouped formats amount with two decimals and a comma every three digits.
func Grouped(amount decimal.Decimal) string {
	return group(amount.StringFixed(2), 3, 3)
}

func Percent(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// Compact renders a quantity with one decimal and drops a trailing ".0".
func Compact(quantity decimal.Decimal) string {
	return strings.TrimSuffix(quantity.StringFixed(1), ".0")
}

// group inserts commas into the integer part of a fixed-point string. The
// last group holds last digits and every group before it holds rest digits.
func group(fixed string, last, rest int) string {
	var b strings.Builder
	b.Grow(len(fixed) + len(fixed)/rest + 1)
	if strings.HasPrefix(fixed, "-") {
		b.WriteByte('-')
		fixed = fixed[1:]
	}
	digits, fraction, hasFraction := strings.Cut(fixed, ".")

	if head := len(digits) - last; head > 0 {
		lead := head % rest
		if lead == 0 {
			lead = rest
		}
		b.WriteString(digits[:lead])
		for i := lead; i < head; i += rest {
			b.WriteByte(',')
			b.WriteString(digits[i : i+rest])
		}
		b.WriteByte(',')
		b.WriteString(digits[head:])
	} else {
		b.WriteString(digits)
	}

	if hasFraction {
		b.WriteByte('.')
		b.WriteString(fraction)
	}
	return b.String()
}
