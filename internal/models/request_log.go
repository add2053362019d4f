package models

import (
	"strconv"
	"time"
)

// RequestLog is a stored admin API log record, as served by the in-memory admin server.
type RequestLog struct {
	ID           int64     `json:"id"`
	ProxyKeyName string    `json:"proxy_key_name"`
	ProxyKeyID   string    `json:"proxy_key_id"`
	Model        string    `json:"model"`
	StatusCode   int       `json:"status_code"`
	IsStream     bool      `json:"is_stream"`
	Duration     int64     `json:"duration"` // milliseconds
	TokensUsed   int       `json:"tokens_used"`
	Error        string    `json:"error"`
	CreatedAt    time.Time `json:"created_at"`
}

// RequestLogCSVHeader is the header row of a CSV export.
var RequestLogCSVHeader = []string{
	"id", "proxy_key_name", "proxy_key_id", "model", "status_code",
	"is_stream", "duration", "tokens_used", "error", "created_at",
}

// CSVRecord renders the log in RequestLogCSVHeader column order.
func (l *RequestLog) CSVRecord() []string {
	return []string{
		strconv.FormatInt(l.ID, 10),
		l.ProxyKeyName,
		l.ProxyKeyID,
		l.Model,
		strconv.Itoa(l.StatusCode),
		strconv.FormatBool(l.IsStream),
		strconv.FormatInt(l.Duration, 10),
		strconv.Itoa(l.TokensUsed),
		l.Error,
		l.CreatedAt.UTC().Format(time.RFC3339),
	}
}
