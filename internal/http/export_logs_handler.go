package http

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"log-admin-probe/internal/models"
	"log-admin-probe/internal/shared/svcerrors"
	"log-admin-probe/internal/stores"
)

const (
	exportFormatCSV  = "csv"
	exportFormatJSON = "json"

	malformedJSONExport = `{"success": true, "count": 3, "logs": [`
)

type exportJSONResponse struct {
	Success bool                 `json:"success"`
	Count   int                  `json:"count"`
	Logs    []*models.RequestLog `json:"logs"`
}

type exportLogsHandler struct {
	store  stores.RequestLogStore
	faults Faults
	now    func() time.Time
}

func NewExportLogsHandler(store stores.RequestLogStore, faults Faults) AppHttpHandler {
	return &exportLogsHandler{store: store, faults: faults, now: time.Now}
}

// Handle processes GET /admin/logs/export?format=csv|json. A missing format means json.
func (h *exportLogsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if handled, err := h.faults.apply(w, RouteExportLogs); handled {
		return err
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = exportFormatJSON
	}
	if format != exportFormatCSV && format != exportFormatJSON {
		return svcerrors.NewInvalidArgumentError(errorCodeUnknownExportFormat,
			fmt.Sprintf("unsupported export format %q", format), nil)
	}

	if format == exportFormatJSON && h.faults.MalformedJSONExport {
		w.Header().Set(headerContentType, contentTypeJSON)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(malformedJSONExport))
		return nil
	}

	logs, err := h.store.All(r.Context())
	if err != nil {
		return svcerrors.NewInternalError(errorCodeStoreFailure, err)
	}

	if format == exportFormatJSON {
		writeJSON(w, http.StatusOK, exportJSONResponse{Success: true, Count: len(logs), Logs: logs})
		return nil
	}
	return h.writeCSV(w, logs)
}

func (h *exportLogsHandler) writeCSV(w http.ResponseWriter, logs []*models.RequestLog) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(models.RequestLogCSVHeader); err != nil {
		return svcerrors.NewInternalError(errorCodeCSVEncoding, err)
	}
	for _, l := range logs {
		if err := cw.Write(l.CSVRecord()); err != nil {
			return svcerrors.NewInternalError(errorCodeCSVEncoding, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return svcerrors.NewInternalError(errorCodeCSVEncoding, err)
	}

	contentType := contentTypeCSV
	if h.faults.CSVContentType != "" {
		contentType = h.faults.CSVContentType
	}
	w.Header().Set(headerContentType, contentType)
	w.Header().Set(headerContentDisposition,
		fmt.Sprintf("attachment; filename=request_logs_%s.csv", h.now().UTC().Format("20060102_150405")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
	return nil
}
