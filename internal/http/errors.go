package http

const (
	errorCodeInvalidDeleteBody   = "FAKE_1000"
	errorCodeEmptyIDs            = "FAKE_1001"
	errorCodeUnknownExportFormat = "FAKE_1002"
	errorCodeLoggerUnavailable   = "FAKE_1003"
	errorCodeInjectedStatus      = "FAKE_1004"

	errorCodeStoreFailure = "FAKE_9000"
	errorCodeCSVEncoding  = "FAKE_9001"
)

const messageLoggerUnavailable = "Request logger not available"
