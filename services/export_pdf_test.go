package services

import (
	"testing"
)

func TestGenerateComparisonPDF(t *testing.T) {
	result, err := GenerateComparisonPDF(sampleComparison())
	if err != nil {
		t.Fatalf("GenerateComparisonPDF() error = %v", err)
	}
	if len(result) < 5 {
		t.Fatal("GenerateComparisonPDF() returned too few bytes")
	}
	// PDF files start with %PDF
	if string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGenerateComparisonPDF_Empty(t *testing.T) {
	result, err := GenerateComparisonPDF(ComparisonExport{
		Title:       "Empty",
		CreatedDate: "2026-01-15",
		Table:       PropertyTable{Columns: PropertyColumns[:]},
	})
	if err != nil {
		t.Fatalf("GenerateComparisonPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateComparisonPDF() returned empty bytes")
	}
}

func TestGenerateLayersPDF(t *testing.T) {
	result, err := GenerateLayersPDF(sampleLayersExport())
	if err != nil {
		t.Fatalf("GenerateLayersPDF() error = %v", err)
	}
	if len(result) < 5 || string(result[:5]) != "%PDF-" {
		t.Errorf("result is not a PDF")
	}
}
