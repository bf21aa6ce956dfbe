package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	// Preview assembles the row-limited {columns, rows} payload for
	// on-screen display.
	Preview(ctx context.Context, req PreviewRequest) (ReportData, error)

	// Export renders the full report as an xlsx, csv or pdf document.
	Export(ctx context.Context, req ExportRequest) (Document, error)
}
