// Package workbook exports a dataset as an XLSX file. The sheets use the same
// header layout as the Google Sheets source, so an exported workbook can be
// imported back as a data source.
package workbook

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/mamadbah2/cropstats/internal/registry"
	"github.com/mamadbah2/cropstats/internal/repository/sheets"
)

const columnWidth = 16

// Build lays ds out in a new workbook, one sheet per tab.
func Build(ds *registry.Dataset) (*excelize.File, error) {
	f := excelize.NewFile()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9EAD3"}},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("header style: %w", err)
	}

	encoded := sheets.Encode(ds)
	for i, tab := range sheets.Tabs() {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", tab); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(tab); err != nil {
			f.Close()
			return nil, fmt.Errorf("new sheet %s: %w", tab, err)
		}

		if err := fillSheet(f, tab, encoded[tab], header); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %s: %w", tab, err)
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func fillSheet(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if len(rows) == 0 {
		return nil
	}

	last, err := excelize.ColumnNumberToName(len(rows[0]))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", last, columnWidth); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// Write streams the workbook of ds to w.
func Write(w io.Writer, ds *registry.Dataset) error {
	f, err := Build(ds)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
