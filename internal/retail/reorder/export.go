package reorder

import (
	"fmt"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"io"
	"time"
)

const sheetName = "Reorder"

var sheetHeader = []interface{}{"Product", "Quantity", "Unit Price", "Cost"}

// ExportXLSX writes the list as a single sheet: date, header, one row per
// product and a grand total row.
func (l *List) ExportXLSX(w io.Writer, date time.Time) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &[]interface{}{"Date", date.Format(DateLayout)}); err != nil {
		return fmt.Errorf("failed to write date row: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A2", &sheetHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := 3
	grand := decimal.Zero
	for _, line := range l.Lines() {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		values := []interface{}{
			line.Product.Name,
			line.Quantity.InexactFloat64(),
			line.Product.UnitPrice,
			line.Total.InexactFloat64(),
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write %q: %w", line.Product.Name, err)
		}
		grand = grand.Add(line.Total)
		row++
	}

	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, cell, &[]interface{}{"Grand Total", "", "", grand.InexactFloat64()}); err != nil {
		return fmt.Errorf("failed to write grand total: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
