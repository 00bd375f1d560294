package validation

import (
	"fmt"
	"github.com/shopspring/decimal"
	"strings"
)

const (
	// maxInputLength bounds the text a field may hold before parsing.
	maxInputLength = 512
	// maxOrder and minOrder are the positions of the leading digit of the
	// largest finite and smallest non-zero float64.
	maxOrder = 309
	minOrder = -323
)

var maxMagnitude = decimal.RequireFromString("1.7976931348623157e308")

type State int

const (
	Empty State = iota
	Valid
	Invalid
)

// Number is the outcome of reading one form field.
type Number struct {
	state State
	value decimal.Decimal
	err   *InputError
}

func (n Number) State() State {
	return n.state
}

func (n Number) IsEmpty() bool {
	return n.state == Empty
}

func (n Number) IsValid() bool {
	return n.state == Valid
}

func (n Number) IsInvalid() bool {
	return n.state == Invalid
}

// Value is zero unless the number is valid.
func (n Number) Value() decimal.Decimal {
	return n.value
}

func (n Number) Err() error {
	if n.err == nil {
		return nil
	}
	return n.err
}

func (n Number) Message() string {
	if n.err == nil {
		return ""
	}
	return n.err.Message
}

// ParseReal reads a non-negative real number.
func ParseReal(text, field string) Number {
	return parse(text, field, false)
}

// ParseWhole reads a non-negative whole number.
func ParseWhole(text, field string) Number {
	return parse(text, field, true)
}

// RealOrZero reads a non-negative real number and maps blank, malformed and
// negative text to zero without reporting anything.
func RealOrZero(text string) decimal.Decimal {
	return ParseReal(text, "").Value()
}

// CountOrZero reads the leading decimal digits of text the way a tally field
// is read: "2.5" is 2, "1e3" is 1 and "12abc" is 12. Blank, malformed and
// negative text is zero.
func CountOrZero(text string) decimal.Decimal {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "-") {
		return decimal.Zero
	}
	trimmed = strings.TrimPrefix(trimmed, "+")
	end := 0
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
		if end > maxOrder {
			return decimal.Zero
		}
	}
	if end == 0 {
		return decimal.Zero
	}
	return decimal.RequireFromString(trimmed[:end])
}

func parse(text, field string, whole bool) Number {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Number{state: Empty}
	}
	if len(trimmed) > maxInputLength {
		return invalid(KindParse, field, parseMessage(field, whole))
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return invalid(KindParse, field, parseMessage(field, whole))
	}
	value, ok := bounded(value)
	if !ok || (whole && !value.IsInteger()) {
		return invalid(KindParse, field, parseMessage(field, whole))
	}
	if value.IsNegative() {
		return invalid(KindRange, field, fmt.Sprintf("%s cannot be negative.", field))
	}
	return Number{state: Valid, value: value}
}

// bounded keeps value inside the float64 range. The exponent is checked
// before any arithmetic so that text like "1e100000" stays cheap. Values too
// small to represent become zero.
func bounded(value decimal.Decimal) (decimal.Decimal, bool) {
	if value.IsZero() {
		return decimal.Zero, true
	}
	order := int64(value.Exponent()) + int64(value.NumDigits())
	switch {
	case order > maxOrder:
		return decimal.Decimal{}, false
	case order == maxOrder && value.Abs().GreaterThan(maxMagnitude):
		return decimal.Decimal{}, false
	case order < minOrder:
		return decimal.Zero, true
	}
	return value, true
}

func parseMessage(field string, whole bool) string {
	if whole {
		return fmt.Sprintf("Invalid %s value. Please enter a whole number.", field)
	}
	return fmt.Sprintf("Invalid %s value. Please enter a number.", field)
}

func invalid(kind Kind, field, message string) Number {
	return Number{
		state: Invalid,
		err: &InputError{
			Kind:    kind,
			Field:   field,
			Message: message,
		},
	}
}
