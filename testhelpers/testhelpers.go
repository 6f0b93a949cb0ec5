// Package testhelpers builds throwaway component workbooks and stores for tests.
package testhelpers

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"componentcreator/catalog"
)

// Workbook describes the sheets of a test workbook. Each table is a header
// row followed by data rows. A nil table omits the sheet entirely.
type Workbook struct {
	Overview  [][]any
	BOM       [][]any
	Materials [][]any
}

// OverviewHeader is the overview sheet's header row.
func OverviewHeader() []any {
	return []any{
		catalog.ColName, catalog.ColType, catalog.ColMaterial, catalog.ColBuildingClass,
		catalog.ColFireProofClass, catalog.ColUValue, catalog.ColSoundProof1,
		catalog.ColSoundProof2, catalog.ColPreFabricated, catalog.ColExposed,
	}
}

// BOMHeader is the BOM sheet's header row.
func BOMHeader() []any {
	return []any{catalog.ColName, catalog.ColMaterialID, catalog.ColMaterialLevel, catalog.ColThickness}
}

// MaterialsHeader is the Materials sheet's header row.
func MaterialsHeader() []any {
	return []any{catalog.ColMaterialID, catalog.ColName, catalog.ColMinThickness, catalog.ColMaxThickness}
}

// SampleWorkbook returns a small, well-formed catalog:
//
//   - AW-MT-01 has three layers, gypsum board appearing twice.
//   - TRD-tr-HBV-GKL45-si has two level-1 layers followed by a level-2 row
//     and a trailing level-1 row that must not be collected.
//   - IW-CB-02 has a BOM entry but no layers.
//   - DA-CO-04 has no BOM entry.
//   - XX-ST-05 uses a type and material outside the known enumerations.
func SampleWorkbook() Workbook {
	return Workbook{
		Overview: [][]any{
			OverviewHeader(),
			{"AW-MT-01", "External walls", "Mass Timber", "GK4", "REI 90", 0.18, "48 dB", "53 dB", "Yes", "No"},
			{"IW-CB-02", "Internal walls", "Clay brick", "GK3", "REI 60", 0.9, "45 dB", "", "No", "Yes"},
			{"TRD-tr-HBV-GKL45-si", "Slabs", "Mass Timber", "GK5", "REI 90", 0.25, "52 dB", "58 dB", "Yes", "No"},
			{"DA-CO-04", "Roofs", "Concrete", "GK5", "REI 120", 0.15, "55 dB", "60 dB", "No", "No"},
			{"XX-ST-05", "Facades", "Steel", "GK2", "R 30", 0.3, "", "", "Yes", "Yes"},
		},
		BOM: [][]any{
			BOMHeader(),
			{"AW-MT-01", "", 0, ""},
			{"", "M01", 1, 0.0125},
			{"", "M02", 1, 0.1},
			{"", "M01", 1, 0.0125},
			{"IW-CB-02", "", 0, ""},
			{"TRD-tr-HBV-GKL45-si", "", 0, ""},
			{"", "M03", 1, 0.12},
			{"", "M03", 1, 0.04},
			{"", "M04", 2, 0.02},
			{"", "M05", 1, 0.06},
		},
		Materials: [][]any{
			MaterialsHeader(),
			{"M01", "Gypsum board", 0.01, 0.025},
			{"M02", "Cross-laminated timber", 0.06, 0.3},
			{"M03", "Plywood", 0.01, 0.2},
			{"M04", "Insulation", 0.02, 0.3},
			{"M05", "Concrete", 0.1, 0.4},
		},
	}
}

// WriteWorkbook saves wb as an .xlsx file in a temporary directory and
// returns its path. The directory is removed when the test finishes.
func WriteWorkbook(t *testing.T, wb Workbook) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name string
		rows [][]any
	}{
		{catalog.OverviewSheet, wb.Overview},
		{catalog.BOMSheet, wb.BOM},
		{catalog.MaterialsSheet, wb.Materials},
	}

	defaultSheet := f.GetSheetName(0)
	renamed := false
	for _, s := range sheets {
		if s.rows == nil {
			continue
		}
		if !renamed {
			if err := f.SetSheetName(defaultSheet, s.name); err != nil {
				t.Fatalf("failed to rename sheet: %v", err)
			}
			renamed = true
		} else if _, err := f.NewSheet(s.name); err != nil {
			t.Fatalf("failed to create sheet %q: %v", s.name, err)
		}
		for i, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				t.Fatalf("invalid cell for row %d: %v", i+1, err)
			}
			values := row
			if err := f.SetSheetRow(s.name, cell, &values); err != nil {
				t.Fatalf("failed to write %q row %d: %v", s.name, i+1, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "bauteil-database.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	return path
}

// NewTestStore writes wb and loads it into a catalog store.
func NewTestStore(t *testing.T, wb Workbook) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(WriteWorkbook(t, wb))
	if err != nil {
		t.Fatalf("failed to load test workbook: %v", err)
	}
	return store
}

// NewSampleStore loads SampleWorkbook.
func NewSampleStore(t *testing.T) *catalog.Store {
	t.Helper()
	return NewTestStore(t, SampleWorkbook())
}

// AssertBodyContains checks that body contains all specified fragments.
func AssertBodyContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected body to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
