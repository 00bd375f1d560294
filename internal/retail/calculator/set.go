package calculator

import (
	"fmt"
	"go-retail/internal/retail/catalog"
	"go-retail/internal/retail/form"
	"go-retail/pkg/money"
)

const (
	CashCounter     = "cash-counter"
	PricePerUnit    = "price-per-unit"
	BoxProfit       = "box-profit"
	Margin          = "margin"
	GST             = "gst"
	Discount        = "discount"
	PriceToWeight   = "price-to-weight"
	LooseItemProfit = "loose-item-profit"
	Scheme          = "scheme"
	Leftover        = "leftover"
)

// Set is the configured table of calculators, in display order.
type Set struct {
	specs []Spec
	index map[string]int
}

func NewSet(denominations []int64) *Set {
	if len(denominations) == 0 {
		denominations = catalog.DefaultDenominations
	}
	specs := []Spec{
		cashCounterSpec(denominations),
		{
			Name:  PricePerUnit,
			Title: "Unit Price Calculator",
			Inputs: []InputSpec{
				{Name: "mrpBox", Label: "MRP of Box", Kind: Real},
				{Name: "piecesInBox", Label: "Number of Units", Kind: Whole},
			},
			Outputs: []OutputSpec{{Name: "pricePerPiece", Format: Currency}},
			Formula: pricePerUnit,
		},
		{
			Name:  BoxProfit,
			Title: "Total Box Profit Calculator",
			Inputs: []InputSpec{
				{Name: "sellingPricePerPc", Label: "Selling Price Per Piece", Kind: Real},
				{Name: "costOfBox", Label: "Cost of Box", Kind: Real},
				{Name: "piecesInBoxProfit", Label: "Number of Pieces in Box", Kind: Whole},
			},
			Outputs: []OutputSpec{{Name: "totalBoxProfit", Format: Currency}},
			Formula: boxProfit,
		},
		{
			Name:  Margin,
			Title: "Margin Calculator",
			Inputs: []InputSpec{
				{Name: "costPriceMargin", Label: "Cost Price", Kind: Real},
				{Name: "sellingPriceMargin", Label: "Selling Price", Kind: Real},
			},
			Outputs: []OutputSpec{
				{Name: "grossProfitAmount", Format: Currency},
				{Name: "grossMarginPercentage", Format: Percent},
			},
			Formula: margin,
		},
		{
			Name:  GST,
			Title: "GST Calculator",
			Inputs: []InputSpec{
				{Name: "basePriceGST", Label: "Base Price", Kind: Real},
				{Name: "gstRate", Label: "GST Rate", Kind: Real},
			},
			Outputs: []OutputSpec{
				{Name: "gstAmount", Format: Currency},
				{Name: "totalPriceWithGST", Format: Currency},
			},
			Formula: gst,
		},
		{
			Name:  Discount,
			Title: "Discount Calculator",
			Inputs: []InputSpec{
				{Name: "mrp", Label: "MRP", Kind: Real},
				{Name: "salePrice", Label: "Sale Price", Kind: Real},
			},
			Outputs: []OutputSpec{
				{Name: "discountAmount", Format: Currency},
				{Name: "discountPercentage", Format: Percent},
			},
			Formula: discount,
		},
		{
			Name:  PriceToWeight,
			Title: "Price-Based Weight Calculator",
			Inputs: []InputSpec{
				{Name: "pulsePricePerKg", Label: "Price Per Kg", Kind: Real},
				{Name: "amountToSpend", Label: "Amount to Spend", Kind: Real},
			},
			Outputs: []OutputSpec{{Name: "pulseQuantity", Format: Weight}},
			Formula: priceToWeight,
		},
		{
			Name:  LooseItemProfit,
			Title: "Loose Item Profit Calculator",
			Inputs: []InputSpec{
				{Name: "packCost", Label: "Pack Cost", Kind: Real},
				{Name: "totalItems", Label: "Total Items", Kind: Whole},
				{Name: "sellPricePerItem", Label: "Selling Price Per Item", Kind: Real},
			},
			Outputs: []OutputSpec{
				{Name: "costPerItem", Format: Currency},
				{Name: "profitPerItem", Format: Currency},
			},
			Formula: looseItemProfit,
		},
		{
			Name:  Scheme,
			Title: "Scheme Price Calculator",
			Inputs: []InputSpec{
				{Name: "pricePerItem", Label: "Price Per Item", Kind: Real},
				{Name: "buyQuantity", Label: "Buy Quantity", Kind: Whole},
				{Name: "freeQuantity", Label: "Free Quantity", Kind: Whole},
			},
			Outputs: []OutputSpec{
				{Name: "schemeTotalCost", Format: Currency},
				{Name: "effectivePricePerItem", Format: Currency},
			},
			Formula: scheme,
		},
		{
			Name:  Leftover,
			Title: "Leftover Stock Calculator",
			Inputs: []InputSpec{
				{Name: "totalQuantity", Label: "Total Quantity", Kind: Real},
				{Name: "soldQuantity", Label: "Sold Quantity", Kind: Real},
			},
			Outputs: []OutputSpec{{Name: "leftoverQuantity", Format: Quantity}},
			Formula: leftover,
		},
	}

	index := make(map[string]int, len(specs))
	for i, spec := range specs {
		index[spec.Name] = i
	}
	return &Set{specs: specs, index: index}
}

func cashCounterSpec(denominations []int64) Spec {
	inputs := make([]InputSpec, 0, len(denominations)+3)
	for _, value := range denominations {
		inputs = append(inputs, InputSpec{
			Name:  denominationInput(value),
			Label: fmt.Sprintf("%s%d x ", money.RupeeSymbol, value),
			Kind:  Count,
		})
	}
	inputs = append(inputs,
		InputSpec{Name: "expectedCash", Label: "Expected Cash", Kind: Real, Optional: true, Quiet: true},
		InputSpec{Name: "customerName", Label: "Customer Name", Kind: Text},
		InputSpec{Name: "accountNumber", Label: "Account Number", Kind: Text},
	)
	return Spec{
		Name:   CashCounter,
		Title:  "Indian Cash Counter",
		Inputs: inputs,
		Outputs: []OutputSpec{
			{Name: "cashTotalAmount", Format: Currency},
			{Name: "cashDifference", Format: Currency},
		},
		Formula: cashCounter(append([]int64(nil), denominations...)),
	}
}

func (s *Set) Specs() []Spec {
	return append([]Spec(nil), s.specs...)
}

func (s *Set) Spec(name string) (Spec, error) {
	i, ok := s.index[name]
	if !ok {
		return Spec{}, fmt.Errorf("%q: %w", name, ErrUnknownCalculator)
	}
	return s.specs[i], nil
}

// Build wires the named calculator to handles.
func (s *Set) Build(name string, handles Handles) (*Calculator, error) {
	spec, err := s.Spec(name)
	if err != nil {
		return nil, err
	}
	return New(spec, handles)
}

// BuildOnForm wires the named calculator to in-memory handles of f.
func (s *Set) BuildOnForm(name string, f *form.Form) (*Calculator, error) {
	spec, err := s.Spec(name)
	if err != nil {
		return nil, err
	}
	return New(spec, FormHandles(spec, f))
}
