package reorder

import (
	"github.com/shopspring/decimal"
	"go-retail/internal/retail/catalog"
	"strings"
)

const (
	unitLitre  = "L"
	unitKilo   = "Kg"
	unitPacket = "Packet"
)

type unitRule struct {
	factor  decimal.Decimal
	display string
}

var (
	thousand = decimal.NewFromInt(1000)
	one      = decimal.NewFromInt(1)
)

var unitRules = map[string]unitRule{
	"ml":    {factor: thousand, display: unitLitre},
	"g":     {factor: thousand, display: unitKilo},
	"packs": {factor: one, display: unitPacket},
}

var defaultRule = unitRule{factor: one, display: unitPacket}

// Converter turns an ordered piece count into the amount and unit an order
// line is written in.
type Converter struct {
	overrides []catalog.Override
}

func NewConverter(overrides []catalog.Override) *Converter {
	return &Converter{overrides: overrides}
}

// Convert returns quantity × unit value / factor for the product's unit type.
// A product matched by a per-kg override is converted by its pieces per kg
// instead. The first matching override wins.
func (c *Converter) Convert(p catalog.Product, quantity decimal.Decimal) (decimal.Decimal, string) {
	for _, o := range c.overrides {
		if strings.Contains(p.Name, o.Match) {
			return quantity.Div(decimal.NewFromFloat(o.PiecesPerKg)), unitKilo
		}
	}
	rule, ok := unitRules[p.UnitType]
	if !ok {
		rule = defaultRule
	}
	return quantity.Mul(p.Multiplier()).Div(rule.factor), rule.display
}
