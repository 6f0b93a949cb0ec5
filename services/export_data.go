package services

// ComparisonExport holds everything needed to export a comparison table.
type ComparisonExport struct {
	Title       string
	CreatedDate string
	Table       PropertyTable
}

// LayersExport holds a configured custom component for export.
type LayersExport struct {
	Title       string
	CreatedDate string
	Component   CustomComponent
}
