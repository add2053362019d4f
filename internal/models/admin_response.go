package models

import "encoding/json"

// ListLogsResponse is the payload of a successful GET /admin/logs.
type ListLogsResponse struct {
	Logs       []LogEntry `json:"logs" validate:"dive"`
	TotalCount JSONValue  `json:"total_count"`
}

// BatchDeleteResponse is the payload of a successful DELETE /admin/logs/batch.
type BatchDeleteResponse struct {
	DeletedCount JSONValue `json:"deleted_count"`
}

// ExportJSONResponse is the payload of a successful GET /admin/logs/export?format=json.
type ExportJSONResponse struct {
	Count JSONValue       `json:"count"`
	Logs  json.RawMessage `json:"logs,omitempty"`

	// Raw is the response body as received.
	Raw []byte `json:"-"`
}

// CSVExport is the raw result of GET /admin/logs/export?format=csv.
type CSVExport struct {
	ContentType string
	Body        []byte
}
