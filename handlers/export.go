package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"componentcreator/metrics"
	"componentcreator/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// buildComparisonExport projects the requested components for export.
func buildComparisonExport(d *Deps, names []string) (services.ComparisonExport, error) {
	table, err := d.Projector.ProjectMany(names)
	if err != nil {
		return services.ComparisonExport{}, err
	}
	return services.ComparisonExport{
		Title:       "Component comparison",
		CreatedDate: d.exportDate(),
		Table:       table,
	}, nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, `"`, "")
	return s
}

// sendFile writes body as a download attachment.
func sendFile(e *core.RequestEvent, op, contentType, filename string, body []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	e.Response.WriteHeader(http.StatusOK)
	if _, err := e.Response.Write(body); err != nil {
		return err
	}
	metrics.ObserveQuery(op, metrics.OutcomeOK)
	return nil
}

// HandleCompareExportExcel returns a handler that downloads the comparison
// of the ?name= components as an Excel file.
func HandleCompareExportExcel(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		const op = "export_comparison_excel"

		data, err := buildComparisonExport(d, e.Request.URL.Query()["name"])
		if err != nil {
			return respondError(d, e, op, err)
		}

		xlsxBytes, err := services.GenerateComparisonExcel(data)
		if err != nil {
			return respondError(d, e, op, fmt.Errorf("generate excel: %w", err))
		}

		filename := fmt.Sprintf("Comparison_%d.xlsx", d.Now().Year())
		return sendFile(e, op, xlsxContentType, filename, xlsxBytes)
	}
}

// HandleCompareExportPDF returns a handler that downloads the comparison of
// the ?name= components as a PDF file.
func HandleCompareExportPDF(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		const op = "export_comparison_pdf"

		data, err := buildComparisonExport(d, e.Request.URL.Query()["name"])
		if err != nil {
			return respondError(d, e, op, err)
		}

		pdfBytes, err := services.GenerateComparisonPDF(data)
		if err != nil {
			return respondError(d, e, op, fmt.Errorf("generate pdf: %w", err))
		}

		filename := fmt.Sprintf("Comparison_%d.pdf", d.Now().Year())
		return sendFile(e, op, "application/pdf", filename, pdfBytes)
	}
}
