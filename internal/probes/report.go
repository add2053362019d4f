package probes

import (
	"time"

	"log-admin-probe/internal/shared/svcerrors"
)

type Step string

const (
	StepListLogs    Step = "list_logs"
	StepBatchDelete Step = "batch_delete"
	StepExportCSV   Step = "export_csv"
	StepExportJSON  Step = "export_json"
)

type Outcome string

const (
	OutcomeOK                  Outcome = "ok"
	OutcomeSkipped             Outcome = "skipped"
	OutcomeInconclusive        Outcome = "inconclusive"
	OutcomeHttpStatus          Outcome = "http_status"
	OutcomeMalformedResponse   Outcome = "malformed_response"
	OutcomeApplicationError    Outcome = "application_error"
	OutcomeContentTypeMismatch Outcome = "content_type_mismatch"
	OutcomeUnreachable         Outcome = "unreachable"
	OutcomeUnexpected          Outcome = "unexpected"
)

// IsFailure reports whether the outcome means the admin API misbehaved or could not be checked.
func (o Outcome) IsFailure() bool {
	switch o {
	case OutcomeOK, OutcomeSkipped, OutcomeInconclusive:
		return false
	}
	return true
}

// aborts reports whether the outcome ends the whole run.
func (o Outcome) aborts() bool {
	return o == OutcomeUnreachable || o == OutcomeUnexpected
}

// outcomeOf maps a client error to the outcome of its step.
func outcomeOf(err error) Outcome {
	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		return OutcomeUnexpected
	}
	switch {
	case svcErr.IsUnreachable():
		return OutcomeUnreachable
	case svcErr.IsHttpStatus():
		return OutcomeHttpStatus
	case svcErr.IsMalformedResponse():
		return OutcomeMalformedResponse
	case svcErr.IsApplicationError():
		return OutcomeApplicationError
	}
	return OutcomeUnexpected
}

type StepResult struct {
	Step     Step
	Outcome  Outcome
	Detail   string
	Duration time.Duration
}

// Report is the outcome of one probe run.
type Report struct {
	RunID   string
	BaseURL string
	Steps   []StepResult

	// Aborted is set when a connection failure or an unexpected error ended the run.
	Aborted bool
	// Completed is set when every step ran.
	Completed bool
}

// Step returns the result recorded for step, if any.
func (r *Report) Step(step Step) (StepResult, bool) {
	for _, res := range r.Steps {
		if res.Step == step {
			return res, true
		}
	}
	return StepResult{}, false
}

// HasFailure reports whether any step failed.
func (r *Report) HasFailure() bool {
	if r.Aborted {
		return true
	}
	for _, res := range r.Steps {
		if res.Outcome.IsFailure() {
			return true
		}
	}
	return false
}
