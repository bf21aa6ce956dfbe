package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/stafflog/attendance-backend-go/internal/domain/report"
	"github.com/stafflog/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Preview returns the row-limited report payload as JSON.
	Preview(w http.ResponseWriter, r *http.Request)

	// Download streams the report as an xlsx, csv or pdf attachment.
	Download(w http.ResponseWriter, r *http.Request)

	// DownloadSelf is the /attendance self-report variant: the export
	// target is always the authenticated user.
	DownloadSelf(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Preview handles GET /reports/preview
func (h *reportHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	req := report.PreviewRequest{
		Type:  report.Type(q.Get("type")),
		Month: q.Get("month"),
		Date:  q.Get("date"),
	}

	result, err := h.reportService.Preview(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Download handles GET /reports/download
func (h *reportHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, false)
}

// DownloadSelf handles GET /attendance/my/report/download
func (h *reportHandlerImpl) DownloadSelf(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, true)
}

func (h *reportHandlerImpl) download(w http.ResponseWriter, r *http.Request, selfService bool) {
	ctx := r.Context()
	q := r.URL.Query()

	format := report.Format(q.Get("format"))
	if format == "" {
		format = report.FormatXLSX
	}

	req := report.ExportRequest{
		Type:         report.Type(q.Get("type")),
		Month:        q.Get("month"),
		Date:         q.Get("date"),
		Format:       format,
		TargetUserID: q.Get("user_id"),
		SelfService:  selfService,
	}

	doc, err := h.reportService.Export(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", doc.FileName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(doc.Content)))
	if _, err := w.Write(doc.Content); err != nil {
		// Headers are out; nothing left to report to the client.
		slog.Error("Failed to stream report document", "file", doc.FileName, "error", err)
	}
}
