package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"antenna-workshop/internal/core"
)

// PurchaseOrderWorkbook renders a purchase order as an xlsx workbook the
// supplier can open directly. Returns the encoded file bytes and a suggested
// filename.
func PurchaseOrderWorkbook(po *core.PurchaseOrder) ([]byte, string, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	head := [][]interface{}{
		{"Purchase Order", po.PONumber},
		{"Supplier", po.SupplierName},
		{"Date", po.CreatedAt.Format("2006-01-02")},
	}
	row := 1
	for _, r := range head {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, "", fmt.Errorf("workbook header cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return nil, "", fmt.Errorf("workbook header row: %w", err)
		}
		row++
	}
	if po.Notes != nil && *po.Notes != "" {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		notes := []interface{}{"Notes", *po.Notes}
		if err := f.SetSheetRow(sheet, cell, &notes); err != nil {
			return nil, "", fmt.Errorf("workbook notes row: %w", err)
		}
		row++
	}

	row++ // blank spacer
	columns := []interface{}{"#", "Material", "Unit", "Quantity", "Unit Cost", "Line Total"}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return nil, "", fmt.Errorf("workbook column cell: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &columns); err != nil {
		return nil, "", fmt.Errorf("workbook column row: %w", err)
	}
	row++

	for _, line := range po.Lines {
		excelRow := []interface{}{
			line.LineNumber,
			line.MaterialName,
			line.Unit,
			line.Quantity,
			line.UnitCost.InexactFloat64(),
			line.LineTotal.InexactFloat64(),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, "", fmt.Errorf("workbook line cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, "", fmt.Errorf("workbook line row: %w", err)
		}
		row++
	}

	total := []interface{}{"", "", "", "", "Total", po.Total.InexactFloat64()}
	cell, err = excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return nil, "", fmt.Errorf("workbook total cell: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &total); err != nil {
		return nil, "", fmt.Errorf("workbook total row: %w", err)
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, "", fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), fmt.Sprintf("%s.xlsx", po.PONumber), nil
}
