package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// comparisonGrid gives the component column two units and each of the
// twelve property columns two units.
const comparisonGrid = 2 + 2*len(PropertyColumns)

func newDocument(gridSize int) core.Maroto {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithMaxGridSize(gridSize).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()
	return maroto.New(cfg)
}

// GenerateComparisonPDF renders the comparison table on landscape A4 pages.
func GenerateComparisonPDF(data ComparisonExport) ([]byte, error) {
	m := newDocument(comparisonGrid)

	addHeader(m, comparisonGrid, data.Title, data.CreatedDate)

	headers := append([]string{"Component"}, data.Table.Columns...)
	addTableHeader(m, headers, 2)

	for i, r := range data.Table.Rows {
		cells := append([]string{r.Component}, r.Values[:]...)
		addTableRow(m, cells, 2, i%2 == 1)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateLayersPDF renders a configured custom component with its layer
// list and total thickness.
func GenerateLayersPDF(data LayersExport) ([]byte, error) {
	const grid = 12
	m := newDocument(grid)

	addHeader(m, grid, data.Title, data.CreatedDate)
	addTableHeader(m, []string{"#", "Material", "Range", "Default", "Thickness", "Custom"}, 2)

	for i, l := range data.Component.Layers {
		custom := ""
		if l.Custom {
			custom = "yes"
		}
		addTableRow(m, []string{
			fmt.Sprintf("%d", l.Position),
			l.Name,
			FormatThickness(l.MinThickness) + " - " + FormatThickness(l.MaxThickness),
			FormatThickness(l.Default),
			FormatThickness(l.Thickness),
			custom,
		}, 2, i%2 == 1)
	}

	addSummary(m, "Total thickness", FormatThickness(data.Component.TotalThickness))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addHeader adds the title and date rows.
func addHeader(m core.Maroto, grid int, title, date string) {
	m.AddRows(
		row.New(12).Add(
			col.New(grid).Add(
				text.New(title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(grid).Add(
				text.New(fmt.Sprintf("Date: %s", date), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addTableHeader adds one dark header row with equally wide columns.
func addTableHeader(m core.Maroto, headers []string, width int) {
	headerCell := props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}

	cols := make([]core.Col, len(headers))
	for i, h := range headers {
		cols[i] = col.New(width).Add(text.New(h, headerText)).WithStyle(&headerCell)
	}
	m.AddRows(row.New(10).Add(cols...))
}

// addTableRow adds a data row; striped rows get a light gray background.
func addTableRow(m core.Maroto, cells []string, width int, striped bool) {
	baseText := props.Text{Size: 7, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	leftText.Style = fontstyle.Bold

	cols := make([]core.Col, len(cells))
	for i, v := range cells {
		style := baseText
		if i == 0 {
			style = leftText
		}
		c := col.New(width).Add(text.New(v, style))
		if striped {
			c = c.WithStyle(&props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}})
		}
		cols[i] = c
	}
	m.AddRows(row.New(8).Add(cols...))
}

// addSummary adds a bold label and value row below the table.
func addSummary(m core.Maroto, label, value string) {
	m.AddRows(row.New(6))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	style := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New(label, style)).WithStyle(summaryCell),
			col.New(4).Add(text.New(value, style)).WithStyle(summaryCell),
		),
	)
}
