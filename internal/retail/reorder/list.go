// Package reorder totals a stock reorder list and renders it as an order
// message, a share link or a spreadsheet.
package reorder

import (
	"fmt"
	"github.com/shopspring/decimal"
	"go-retail/internal/retail/catalog"
	"go-retail/internal/retail/form"
	"go-retail/internal/retail/validation"
	"go-retail/pkg/money"
	"net/url"
	"strings"
	"time"
)

const (
	DateLayout      = "02/01/2006"
	NoItemsMessage  = "No items selected for order."
	CopiedNotice    = "Order text copied to clipboard!"
	shareBaseURL    = "https://wa.me/?text="
	costDisplayName = "cost:"
	grandTotalName  = "grandTotal"
)

type Notifier interface {
	Show(message string)
}

type Row struct {
	Product  catalog.Product
	Quantity form.Field
	Cost     form.Display
}

// Line is a snapshot of one row after the quantity text has been read.
type Line struct {
	Product  catalog.Product
	Quantity decimal.Decimal
	Total    decimal.Decimal
}

type List struct {
	rows       []Row
	grandTotal form.Display
	converter  *Converter
	notifier   Notifier
}

// NewList wires a list over rows. notifier may be nil when nobody shows the
// copy notice.
func NewList(rows []Row, grandTotal form.Display, converter *Converter, notifier Notifier) *List {
	return &List{
		rows:       rows,
		grandTotal: grandTotal,
		converter:  converter,
		notifier:   notifier,
	}
}

// OnForm builds a list whose quantity fields are named after the products.
func OnForm(products []catalog.Product, f *form.Form, converter *Converter, notifier Notifier) *List {
	rows := make([]Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, Row{
			Product:  p,
			Quantity: f.Field(p.Name),
			Cost:     f.Display(CostDisplay(p.Name)),
		})
	}
	return NewList(rows, f.Display(grandTotalName), converter, notifier)
}

func CostDisplay(product string) string {
	return costDisplayName + product
}

func GrandTotalDisplay() string {
	return grandTotalName
}

func (l *List) Rows() []Row {
	return l.rows
}

// Lines reads every row. Blank, invalid and negative quantities count as 0.
func (l *List) Lines() []Line {
	lines := make([]Line, 0, len(l.rows))
	for _, r := range l.rows {
		qty := validation.RealOrZero(r.Quantity.Text())
		lines = append(lines, Line{
			Product:  r.Product,
			Quantity: qty,
			Total:    qty.Mul(r.Product.Price()),
		})
	}
	return lines
}

// Recalculate refreshes every row cost and the grand total and returns the
// grand total.
func (l *List) Recalculate() decimal.Decimal {
	grand := decimal.Zero
	for i, line := range l.Lines() {
		l.rows[i].Cost.Show(money.Grouped(line.Total), form.ToneNone)
		grand = grand.Add(line.Total)
	}
	l.grandTotal.Show(money.RupeeSymbol+money.Grouped(grand), form.ToneNone)
	return grand
}

func (l *List) OrderText(date time.Time) string {
	var b strings.Builder
	b.WriteString(date.Format(DateLayout))
	b.WriteString("\n")
	n := 0
	for _, line := range l.Lines() {
		if !line.Quantity.IsPositive() {
			continue
		}
		n++
		amount, unit := l.converter.Convert(line.Product, line.Quantity)
		fmt.Fprintf(&b, "%d. %s - %s%s\n", n, line.Product.Name, money.Compact(amount), unit)
	}
	if n == 0 {
		b.WriteString(NoItemsMessage)
	}
	return b.String()
}

// Copy returns the order text and raises the copied notice.
func (l *List) Copy(date time.Time) string {
	text := l.OrderText(date)
	if l.notifier != nil {
		l.notifier.Show(CopiedNotice)
	}
	return text
}

// Reset clears every quantity and recalculates.
func (l *List) Reset() {
	for _, r := range l.rows {
		r.Quantity.SetText("")
	}
	l.Recalculate()
}

// ShareLink builds a wa.me link carrying text. Spaces are sent as %20.
func ShareLink(text string) string {
	return shareBaseURL + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
