package validation

import (
	"errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestParseReal(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		state   State
		value   string
		message string
		err     error
	}{
		{name: "blank", text: "", state: Empty},
		{name: "spaces", text: "   ", state: Empty},
		{name: "integer", text: "100", state: Valid, value: "100"},
		{name: "fraction", text: " 12.75 ", state: Valid, value: "12.75"},
		{name: "zero", text: "0", state: Valid, value: "0"},
		{name: "huge", text: "123456789012345678901234567890", state: Valid, value: "123456789012345678901234567890"},
		{name: "letters", text: "abc", state: Invalid, message: "Invalid MRP value. Please enter a number.", err: ErrParse},
		{name: "negative", text: "-4", state: Invalid, message: "MRP cannot be negative.", err: ErrRange},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			n := ParseReal(test.text, "MRP")
			assert.Equal(t, test.state, n.State())
			assert.Equal(t, test.message, n.Message())
			if test.value != "" {
				assert.True(t, decimal.RequireFromString(test.value).Equal(n.Value()), "got %s", n.Value())
			}
			if test.err != nil {
				require.Error(t, n.Err())
				assert.True(t, errors.Is(n.Err(), test.err))
			} else {
				assert.NoError(t, n.Err())
			}
		})
	}
}

func TestParseWhole(t *testing.T) {
	n := ParseWhole("12", "Number of Units")
	assert.True(t, n.IsValid())
	assert.True(t, n.Value().Equal(decimal.NewFromInt(12)))

	n = ParseWhole("2.5", "Number of Units")
	assert.True(t, n.IsInvalid())
	assert.Equal(t, "Invalid Number of Units value. Please enter a whole number.", n.Message())

	n = ParseWhole("x", "Number of Units")
	assert.Equal(t, "Invalid Number of Units value. Please enter a whole number.", n.Message())

	n = ParseWhole("-3", "Number of Units")
	assert.Equal(t, "Number of Units cannot be negative.", n.Message())
	assert.ErrorIs(t, n.Err(), ErrRange)
}

func TestOrZero(t *testing.T) {
	assert.True(t, RealOrZero("").IsZero())
	assert.True(t, RealOrZero("oops").IsZero())
	assert.True(t, RealOrZero("-2").IsZero())
	assert.True(t, RealOrZero("2.5").Equal(decimal.RequireFromString("2.5")))
}

func TestCountOrZero(t *testing.T) {
	tests := []struct {
		text     string
		expected int64
	}{
		{text: "", expected: 0},
		{text: "7", expected: 7},
		{text: " 12 ", expected: 12},
		{text: "+5", expected: 5},
		{text: "2.5", expected: 2},
		{text: "1e3", expected: 1},
		{text: "12abc", expected: 12},
		{text: "abc", expected: 0},
		{text: "-3", expected: 0},
		{text: strings.Repeat("9", 400), expected: 0},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			assert.True(t, CountOrZero(test.text).Equal(decimal.NewFromInt(test.expected)), CountOrZero(test.text).String())
		})
	}
}

func TestParseBoundsMagnitude(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		valid bool
		value string
	}{
		{name: "huge exponent", text: "1e100000"},
		{name: "huge whole exponent", text: "5e10000000"},
		{name: "above float range", text: "1.8e308"},
		{name: "largest float", text: "1.7976931348623157e308", valid: true, value: "1.7976931348623157e308"},
		{name: "underflow", text: "1e-100000", valid: true, value: "0"},
		{name: "zero with exponent", text: "0e100000", valid: true, value: "0"},
		{name: "too long", text: strings.Repeat("1", 600)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			n := ParseReal(test.text, "Base Price")
			if !test.valid {
				assert.True(t, n.IsInvalid())
				assert.ErrorIs(t, n.Err(), ErrParse)
				return
			}
			require.True(t, n.IsValid())
			assert.True(t, n.Value().Equal(decimal.RequireFromString(test.value)))
		})
	}
}

func TestDomainError(t *testing.T) {
	err := Domain("Sale price cannot be greater than MRP.")
	assert.ErrorIs(t, err, ErrDomain)
	assert.Equal(t, "Sale price cannot be greater than MRP.", MessageOf(err))
	assert.Equal(t, "boom", MessageOf(errors.New("boom")))
}
