package calculator

import (
	"github.com/shopspring/decimal"
	"go-retail/internal/retail/form"
	"go-retail/internal/retail/validation"
)

var hundred = decimal.NewFromInt(100)

func toneOf(value decimal.Decimal) form.Tone {
	switch value.Sign() {
	case 1:
		return form.TonePositive
	case -1:
		return form.ToneNegative
	}
	return form.ToneNone
}

// profitTone treats a break-even result as a profit.
func profitTone(value decimal.Decimal) form.Tone {
	if value.IsNegative() {
		return form.ToneNegative
	}
	return form.TonePositive
}

func single(name string, value decimal.Decimal) Outcome {
	return Outcome{Readings: map[string]Reading{name: {Value: value}}}
}

func denominationInput(value int64) string {
	return "denom-" + decimal.NewFromInt(value).String()
}

func cashCounter(denominations []int64) Formula {
	return func(in Inputs) (Outcome, error) {
		total := decimal.Zero
		for _, value := range denominations {
			count := in.Get(denominationInput(value))
			total = total.Add(count.Mul(decimal.NewFromInt(value)))
		}
		res := Outcome{Readings: map[string]Reading{
			"cashTotalAmount": {Value: total},
			"cashDifference":  {Value: decimal.Zero},
		}}
		if in.Has("expectedCash") {
			difference := total.Sub(in.Get("expectedCash"))
			res.Readings["cashDifference"] = Reading{Value: difference, Tone: toneOf(difference)}
		}
		return res, nil
	}
}

func pricePerUnit(in Inputs) (Outcome, error) {
	pieces := in.Get("piecesInBox")
	if pieces.IsZero() {
		return Outcome{}, validation.Domain("Number of units cannot be zero.")
	}
	return single("pricePerPiece", in.Get("mrpBox").Div(pieces)), nil
}

func boxProfit(in Inputs) (Outcome, error) {
	revenue := in.Get("sellingPricePerPc").Mul(in.Get("piecesInBoxProfit"))
	profit := revenue.Sub(in.Get("costOfBox"))
	return Outcome{Readings: map[string]Reading{
		"totalBoxProfit": {Value: profit, Tone: profitTone(profit)},
	}}, nil
}

func margin(in Inputs) (Outcome, error) {
	cost := in.Get("costPriceMargin")
	sell := in.Get("sellingPriceMargin")
	res := Outcome{}
	if sell.LessThan(cost) {
		res.Message = "Selling price cannot be less than cost price for positive margin."
	}
	profit := sell.Sub(cost)
	pct := decimal.Zero
	if sell.IsPositive() {
		pct = profit.Div(sell).Mul(hundred)
	}
	res.Readings = map[string]Reading{
		"grossProfitAmount":     {Value: profit},
		"grossMarginPercentage": {Value: pct},
	}
	return res, nil
}

func gst(in Inputs) (Outcome, error) {
	base := in.Get("basePriceGST")
	amount := base.Mul(in.Get("gstRate")).Div(hundred)
	return Outcome{Readings: map[string]Reading{
		"gstAmount":         {Value: amount},
		"totalPriceWithGST": {Value: base.Add(amount)},
	}}, nil
}

func discount(in Inputs) (Outcome, error) {
	mrp := in.Get("mrp")
	sale := in.Get("salePrice")
	if sale.GreaterThan(mrp) {
		return Outcome{}, validation.Domain("Sale price cannot be greater than MRP.")
	}
	amount := mrp.Sub(sale)
	pct := decimal.Zero
	if mrp.IsPositive() {
		pct = amount.Div(mrp).Mul(hundred)
	}
	return Outcome{Readings: map[string]Reading{
		"discountAmount":     {Value: amount},
		"discountPercentage": {Value: pct},
	}}, nil
}

func priceToWeight(in Inputs) (Outcome, error) {
	pricePerKg := in.Get("pulsePricePerKg")
	amount := in.Get("amountToSpend")
	if pricePerKg.IsZero() {
		if !amount.IsPositive() {
			return single("pulseQuantity", decimal.Zero), nil
		}
		return Outcome{
			Readings: map[string]Reading{"pulseQuantity": {Text: "Infinite"}},
			Message:  "Cannot calculate quantity if price is zero and amount is positive.",
		}, nil
	}
	return single("pulseQuantity", amount.Div(pricePerKg).Mul(gramsPerKg)), nil
}

func looseItemProfit(in Inputs) (Outcome, error) {
	items := in.Get("totalItems")
	if items.IsZero() {
		return Outcome{}, validation.Domain("Total items cannot be zero.")
	}
	costPerItem := in.Get("packCost").Div(items)
	profit := in.Get("sellPricePerItem").Sub(costPerItem)
	return Outcome{Readings: map[string]Reading{
		"costPerItem":   {Value: costPerItem},
		"profitPerItem": {Value: profit, Tone: profitTone(profit)},
	}}, nil
}

func scheme(in Inputs) (Outcome, error) {
	buy := in.Get("buyQuantity")
	units := buy.Add(in.Get("freeQuantity"))
	if units.IsZero() {
		return Outcome{}, validation.Domain("Buy and free quantity cannot both be zero.")
	}
	total := in.Get("pricePerItem").Mul(buy)
	return Outcome{Readings: map[string]Reading{
		"schemeTotalCost":       {Value: total},
		"effectivePricePerItem": {Value: total.Div(units)},
	}}, nil
}

func leftover(in Inputs) (Outcome, error) {
	total := in.Get("totalQuantity")
	sold := in.Get("soldQuantity")
	if sold.GreaterThan(total) {
		return Outcome{}, validation.Domain("Sold quantity cannot be greater than total quantity.")
	}
	return single("leftoverQuantity", total.Sub(sold)), nil
}
