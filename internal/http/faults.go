package http

import (
	"net/http"

	"log-admin-probe/internal/shared/svcerrors"
)

// Route names used as keys of Faults.Status.
const (
	RouteListLogs    = "list_logs"
	RouteBatchDelete = "batch_delete"
	RouteExportLogs  = "export_logs"
)

// Faults makes the admin API misbehave on purpose. The zero value serves the normal contract.
type Faults struct {
	// Status forces a non-200 status with an error envelope on the named route.
	Status map[string]int
	// LoggerUnavailable answers every admin route with 503 "Request logger not available".
	LoggerUnavailable bool
	// ApplicationError answers every admin route with 200 {"success":false,"error":ApplicationError}.
	ApplicationError string
	// CSVContentType replaces the content-type of the CSV export.
	CSVContentType string
	// MalformedJSONExport truncates the JSON export body.
	MalformedJSONExport bool
}

// apply writes the injected response for route and reports whether it did.
func (f Faults) apply(w http.ResponseWriter, route string) (bool, error) {
	if status, ok := f.Status[route]; ok && status != http.StatusOK {
		return true, svcerrors.NewInjectedFaultError(errorCodeInjectedStatus, status)
	}
	if f.LoggerUnavailable {
		return true, svcerrors.NewUnavailableError(errorCodeLoggerUnavailable, messageLoggerUnavailable)
	}
	if f.ApplicationError != "" {
		writeJSON(w, http.StatusOK, ErrorResponse{Success: false, Error: f.ApplicationError})
		return true, nil
	}
	return false, nil
}
