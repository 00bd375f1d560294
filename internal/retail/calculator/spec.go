package calculator

import (
	"github.com/shopspring/decimal"
	"go-retail/internal/retail/form"
	"go-retail/pkg/money"
)

type InputKind int

const (
	// Real is a validated non-negative real number.
	Real InputKind = iota
	// Whole is a validated non-negative whole number.
	Whole
	// Count is a whole number that reads as zero when blank or malformed and
	// never reports a message.
	Count
	// Text is free text owned by the calculator but never parsed.
	Text
)

func (k InputKind) String() string {
	switch k {
	case Real:
		return "real"
	case Whole:
		return "whole"
	case Count:
		return "count"
	case Text:
		return "text"
	}
	return "unknown"
}

type InputSpec struct {
	Name  string
	Label string
	Kind  InputKind
	// Optional inputs do not block the formula when empty or invalid.
	Optional bool
	// Quiet inputs never put their validation message on the message box.
	Quiet bool
}

type Format int

const (
	Currency Format = iota
	Percent
	// Weight takes grams and shows kilograms from 1000 g upwards.
	Weight
	Quantity
)

var gramsPerKg = decimal.NewFromInt(1000)

func (f Format) Render(value decimal.Decimal) string {
	switch f {
	case Percent:
		return money.Percent(value)
	case Weight:
		if value.GreaterThanOrEqual(gramsPerKg) {
			return value.Div(gramsPerKg).StringFixed(2) + " kg"
		}
		return value.StringFixed(2) + " grams"
	case Quantity:
		return value.StringFixed(2)
	default:
		return money.Rupees(value)
	}
}

func (f Format) Baseline() string {
	return f.Render(decimal.Zero)
}

type OutputSpec struct {
	Name   string
	Format Format
}

// Reading is one computed output. Text, when set, replaces the formatted value.
type Reading struct {
	Value decimal.Decimal
	Text  string
	Tone  form.Tone
}

type Outcome struct {
	Readings map[string]Reading
	// Message is shown even though the formula produced results.
	Message string
}

// Inputs carries the parsed values of one recompute pass.
type Inputs struct {
	values map[string]decimal.Decimal
}

func (in Inputs) Get(name string) decimal.Decimal {
	return in.values[name]
}

func (in Inputs) Has(name string) bool {
	_, ok := in.values[name]
	return ok
}

// Formula returns an error built with validation.Domain to reject a
// combination of inputs; the calculator then shows baselines and the message.
type Formula func(in Inputs) (Outcome, error)

type Spec struct {
	Name    string
	Title   string
	Inputs  []InputSpec
	Outputs []OutputSpec
	Formula Formula
}
