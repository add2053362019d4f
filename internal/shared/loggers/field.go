package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldRunID      = "run_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldStep      = "step"
	FieldOutcome   = "outcome"
	FieldBaseURL   = "base_url"
	FieldClient    = "client"
	FieldClientOS  = "client_os"
	FieldClientBot = "client_bot"
	FieldLogCount  = "log_count"
)
