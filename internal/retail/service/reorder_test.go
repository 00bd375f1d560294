package service

import (
	"bytes"
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go-retail/internal/retail/catalog"
	"go-retail/internal/retail/reorder"
	"go-retail/pkg/logging"
	"testing"
	"time"
)

type notices struct {
	shown []string
}

func (n *notices) Show(message string) {
	n.shown = append(n.shown, message)
}

var testCatalog = &catalog.Catalog{
	Products: []catalog.Product{
		{Name: "Amul Taaza, 500ml", UnitType: "ml", UnitValue: 500, UnitPrice: 27},
		{Name: "Amul Butter", UnitType: "packs", UnitValue: 1, UnitPrice: 58},
	},
}

func fixedNow() time.Time {
	return time.Date(2024, time.December, 31, 18, 0, 0, 0, time.UTC)
}

func TestReorderTotals(t *testing.T) {
	s := NewReorder(testCatalog, nil, fixedNow, logging.NewNop())

	res, err := s.Totals(context.Background(), map[string]string{"Amul Butter": "3"})
	require.NoError(t, err)

	require.Len(t, res.Rows, 2)
	assert.Equal(t, RowTotal{Name: "Amul Taaza, 500ml", Quantity: "", Cost: "0.00"}, res.Rows[0])
	assert.Equal(t, RowTotal{Name: "Amul Butter", Quantity: "3", Cost: "174.00"}, res.Rows[1])
	assert.Equal(t, "₹174.00", res.GrandTotal)
}

func TestReorderUnknownProduct(t *testing.T) {
	s := NewReorder(testCatalog, nil, fixedNow, logging.NewNop())

	_, err := s.Totals(context.Background(), map[string]string{"Ghee": "1"})
	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestReorderOrder(t *testing.T) {
	n := &notices{}
	s := NewReorder(testCatalog, n, fixedNow, logging.NewNop())

	res, err := s.Order(context.Background(), map[string]string{"Amul Taaza, 500ml": "4"})
	require.NoError(t, err)

	assert.Equal(t, "31/12/2024\n1. Amul Taaza, 500ml - 2L\n", res.Text)
	assert.Equal(t, reorder.ShareLink(res.Text), res.ShareLink)
	assert.Equal(t, reorder.CopiedNotice, res.Notice)
	assert.Equal(t, []string{reorder.CopiedNotice}, n.shown)
}

func TestReorderExport(t *testing.T) {
	s := NewReorder(testCatalog, nil, fixedNow, logging.NewNop())

	data, err := s.Export(context.Background(), map[string]string{"Amul Butter": "2"})
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()
	name, err := book.GetCellValue("Reorder", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Amul Butter", name)
}
