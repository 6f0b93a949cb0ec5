package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the three tables the workbook must contain.
const (
	OverviewSheet  = "Katalog-Uebersicht"
	BOMSheet       = "BOM"
	MaterialsSheet = "Materials"
)

// Column headers. These are exact-match contracts with the workbook.
const (
	ColName           = "Name"
	ColType           = "Type"
	ColMaterial       = "Material"
	ColBuildingClass  = "Building class"
	ColFireProofClass = "Fire proof class"
	ColUValue         = "U-value"
	ColSoundProof1    = "Sound proof 1"
	ColSoundProof2    = "Sound proof 2"
	ColPreFabricated  = "Pre-fabricated"
	ColExposed        = "Exposed"
	ColGWP            = "GWP"
	ColEmbodiedEnergy = "Embodied energy"
	ColCost           = "Cost"

	ColMaterialID    = "Material ID"
	ColMaterialLevel = "Material level"
	ColThickness     = "Thickness [m]"

	ColMinThickness = "Min thickness"
	ColMaxThickness = "Max thickness"
)

// PlaceholderMetric fills GWP, embodied energy and cost until real figures
// are computed upstream.
const PlaceholderMetric = "0.15"

var (
	overviewColumns = []string{
		ColName, ColType, ColMaterial, ColBuildingClass, ColFireProofClass,
		ColUValue, ColSoundProof1, ColSoundProof2, ColPreFabricated, ColExposed,
	}
	bomColumns      = []string{ColName, ColMaterialID, ColMaterialLevel, ColThickness}
	materialColumns = []string{ColMaterialID, ColName, ColMinThickness, ColMaxThickness}
)

// table is one sheet split into a header index and its data rows. rows hold
// raw stored values for numeric parsing; display holds the text the sheet
// shows, so boolean cells read TRUE/FALSE instead of 1/0.
type table struct {
	path    string
	sheet   string
	header  map[string]int
	rows    [][]string
	display [][]string
}

// readTable loads a sheet and checks that every required column is present
// in the header row.
func readTable(f *excelize.File, path, sheet string, required []string) (*table, error) {
	if !slices.Contains(f.GetSheetList(), sheet) {
		return nil, &LoadError{Path: path, Sheet: sheet, Err: fmt.Errorf("sheet is missing")}
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &LoadError{Path: path, Sheet: sheet, Err: fmt.Errorf("read rows: %w", err)}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Path: path, Sheet: sheet, Err: fmt.Errorf("header row is missing")}
	}

	header := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, dup := header[h]; !dup {
			header[h] = i
		}
	}
	for _, col := range required {
		if _, ok := header[col]; !ok {
			return nil, &LoadError{Path: path, Sheet: sheet, Column: col, Err: fmt.Errorf("column is missing")}
		}
	}

	shown, err := f.GetRows(sheet)
	if err != nil {
		return nil, &LoadError{Path: path, Sheet: sheet, Err: fmt.Errorf("read rows: %w", err)}
	}
	var display [][]string
	if len(shown) > 0 {
		display = shown[1:]
	}

	return &table{path: path, sheet: sheet, header: header, rows: rows[1:], display: display}, nil
}

// sheetRow converts a data row index into the 1-based row number shown in a
// spreadsheet application (header is row 1).
func sheetRow(i int) int { return i + 2 }

// has reports whether an optional column exists.
func (t *table) has(col string) bool {
	_, ok := t.header[col]
	return ok
}

// cell returns the trimmed value of col in row, or "" when the row is short.
func (t *table) cell(row []string, col string) string {
	idx, ok := t.header[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// text returns the displayed value of col in data row i.
func (t *table) text(i int, col string) string {
	if i >= len(t.display) {
		return ""
	}
	return t.cell(t.display[i], col)
}

// blank reports whether every cell of the row is empty.
func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// number parses a numeric cell; an empty cell is zero.
func (t *table) number(row []string, i int, col string) (float64, error) {
	v := t.cell(row, col)
	if v == "" {
		return 0, nil
	}
	n, err := cast.ToFloat64E(strings.ReplaceAll(v, ",", "."))
	if err != nil {
		return 0, &LoadError{Path: t.path, Sheet: t.sheet, Column: col, Row: sheetRow(i),
			Err: fmt.Errorf("%q is not a number", v)}
	}
	return n, nil
}

// integer parses an integer cell; an empty cell is zero.
func (t *table) integer(row []string, i int, col string) (int, error) {
	v := t.cell(row, col)
	if v == "" {
		return 0, nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		// Workbooks saved by some tools store integers as "1.0".
		f, ferr := cast.ToFloat64E(v)
		if ferr != nil || f != float64(int(f)) {
			return 0, &LoadError{Path: t.path, Sheet: t.sheet, Column: col, Row: sheetRow(i),
				Err: fmt.Errorf("%q is not an integer", v)}
		}
		n = int(f)
	}
	return n, nil
}
