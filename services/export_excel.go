package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// styles are the cell styles shared by the workbook exports.
type styles struct {
	title, subtitle, header, row, summaryLabel int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error

	// Title: bold, 16pt.
	if s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	}); err != nil {
		return s, fmt.Errorf("create title style: %w", err)
	}

	if s.subtitle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	}); err != nil {
		return s, fmt.Errorf("create subtitle style: %w", err)
	}

	// Column header: bold white text on charcoal, centered.
	if s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: thinBorders(),
	}); err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}

	if s.row, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	}); err != nil {
		return s, fmt.Errorf("create row style: %w", err)
	}

	if s.summaryLabel, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return s, fmt.Errorf("create summary style: %w", err)
	}

	return s, nil
}

// GenerateComparisonExcel writes the comparison table as an .xlsx workbook:
// title in row 1, date in row 2, column headers in row 4 and one row per
// component from row 5.
func GenerateComparisonExcel(data ComparisonExport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Comparison"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	headers := append([]string{"Component"}, data.Table.Columns...)
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, fmt.Errorf("last column: %w", err)
	}

	if err := f.SetColWidth(sheetName, "A", "A", 28); err != nil {
		return nil, fmt.Errorf("set col width: %w", err)
	}
	if len(headers) > 1 {
		if err := f.SetColWidth(sheetName, "B", lastCol, 16); err != nil {
			return nil, fmt.Errorf("set col width: %w", err)
		}
	}

	if err := writeTitle(f, sheetName, lastCol, data.Title, data.CreatedDate, st); err != nil {
		return nil, err
	}

	// ── Row 4: Column Headers ───────────────────────────────────────────

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", st.header)

	// ── Data Rows (starting row 5) ──────────────────────────────────────

	row := 5
	for _, r := range data.Table.Rows {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.Component))
		for i, v := range r.Values {
			cell, _ := excelize.CoordinatesToCellName(i+2, row)
			f.SetCellValue(sheetName, cell, sanitizeExcelCell(v))
		}
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, st.row)
		row++
	}

	return writeBuffer(f)
}

// GenerateLayersExcel writes a configured custom component as an .xlsx
// workbook listing every layer with its bounds and chosen thickness.
func GenerateLayersExcel(data LayersExport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Layers"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	lastCol := columns[len(columns)-1]
	widths := []float64{6, 32, 12, 14, 14, 14, 14}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	if err := writeTitle(f, sheetName, lastCol, data.Title, data.CreatedDate, st); err != nil {
		return nil, err
	}

	headers := []string{"#", "Material", "Material ID", "Min [m]", "Max [m]", "Default [m]", "Thickness [m]"}
	for i, h := range headers {
		f.SetCellValue(sheetName, columns[i]+"4", h)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", st.header)

	row := 5
	for _, l := range data.Component.Layers {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, l.Position)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(l.Name))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(l.MaterialID))
		f.SetCellValue(sheetName, "D"+rowStr, l.MinThickness)
		f.SetCellValue(sheetName, "E"+rowStr, l.MaxThickness)
		f.SetCellValue(sheetName, "F"+rowStr, l.Default)
		f.SetCellValue(sheetName, "G"+rowStr, l.Thickness)
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, st.row)
		row++
	}

	// Skip a blank row before the total.
	row++
	totalRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "F"+totalRow, "Total:")
	f.SetCellStyle(sheetName, "F"+totalRow, "F"+totalRow, st.summaryLabel)
	f.SetCellValue(sheetName, "G"+totalRow, data.Component.TotalThickness)

	return writeBuffer(f)
}

// writeTitle fills rows 1 and 2 with the merged title and date.
func writeTitle(f *excelize.File, sheetName, lastCol, title, date string, st styles) error {
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", st.title)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A2", "Date: "+date)
	f.SetCellStyle(sheetName, "A2", lastCol+"2", st.subtitle)
	return nil
}

func writeBuffer(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
