package service

import (
	"bytes"
	"context"
	"fmt"
	"go-retail/internal/retail/catalog"
	"go-retail/internal/retail/form"
	"go-retail/internal/retail/reorder"
	"go-retail/pkg/logging"
	"go.uber.org/zap"
	"time"
)

type RowTotal struct {
	Name     string
	Quantity string
	Cost     string
}

type Totals struct {
	Rows       []RowTotal
	GrandTotal string
}

type Order struct {
	Text      string
	ShareLink string
	Notice    string
}

// Reorder rebuilds the reorder list from the catalog for every call.
type Reorder struct {
	products  []catalog.Product
	known     map[string]struct{}
	converter *reorder.Converter
	notifier  reorder.Notifier
	now       func() time.Time
	logger    *logging.ZapLogger
}

// NewReorder serves the products of c. notifier receives the copied notice and
// may be nil; now defaults to time.Now.
func NewReorder(c *catalog.Catalog, notifier reorder.Notifier, now func() time.Time, logger *logging.ZapLogger) *Reorder {
	if now == nil {
		now = time.Now
	}
	known := make(map[string]struct{}, len(c.Products))
	for _, p := range c.Products {
		known[p.Name] = struct{}{}
	}
	return &Reorder{
		products:  c.Products,
		known:     known,
		converter: reorder.NewConverter(c.Overrides),
		notifier:  notifier,
		now:       now,
		logger:    logger,
	}
}

func (s *Reorder) Products() []catalog.Product {
	return s.products
}

func (s *Reorder) Totals(ctx context.Context, quantities map[string]string) (Totals, error) {
	list, f, err := s.list(quantities, nil)
	if err != nil {
		return Totals{}, err
	}
	grand := list.Recalculate()
	s.logger.DebugCtx(ctx, "reorder recalculated", zap.String("grand_total", grand.String()))

	res := Totals{
		Rows:       make([]RowTotal, 0, len(s.products)),
		GrandTotal: f.Display(reorder.GrandTotalDisplay()).Text(),
	}
	for _, r := range list.Rows() {
		res.Rows = append(res.Rows, RowTotal{
			Name:     r.Product.Name,
			Quantity: r.Quantity.Text(),
			Cost:     f.Display(reorder.CostDisplay(r.Product.Name)).Text(),
		})
	}
	return res, nil
}

// Order builds the order text for today, its share link and raises the copied
// notice.
func (s *Reorder) Order(ctx context.Context, quantities map[string]string) (Order, error) {
	list, _, err := s.list(quantities, s.notifier)
	if err != nil {
		return Order{}, err
	}
	text := list.Copy(s.now())
	s.logger.InfoCtx(ctx, "order text built", zap.Int("length", len(text)))
	return Order{
		Text:      text,
		ShareLink: reorder.ShareLink(text),
		Notice:    reorder.CopiedNotice,
	}, nil
}

func (s *Reorder) Export(ctx context.Context, quantities map[string]string) ([]byte, error) {
	list, _, err := s.list(quantities, nil)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := list.ExportXLSX(&buf, s.now()); err != nil {
		s.logger.ErrorCtx(ctx, "failed to export reorder sheet", zap.Error(err))
		return nil, fmt.Errorf("export failed: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *Reorder) list(quantities map[string]string, notifier reorder.Notifier) (*reorder.List, *form.Form, error) {
	for name := range quantities {
		if _, ok := s.known[name]; !ok {
			return nil, nil, fmt.Errorf("%q: %w", name, ErrUnknownProduct)
		}
	}
	f := form.New()
	list := reorder.OnForm(s.products, f, s.converter, notifier)
	for name, text := range quantities {
		f.Field(name).SetText(text)
	}
	return list, f, nil
}
