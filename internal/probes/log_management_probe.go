package probes

import (
	"context"
	"io"
	"mime"
	"time"

	"log-admin-probe/internal/adminclient"
	"log-admin-probe/internal/artifacts"
	"log-admin-probe/internal/models"
	"log-admin-probe/internal/shared/loggers"
	"log-admin-probe/internal/shared/svcerrors"
	"log-admin-probe/internal/shared/ulid"
)

const (
	contentTypeCSV = "text/csv"

	// deleteBatchSize is the number of listed logs the batch delete step removes. The step
	// runs only when at least this many logs are listed.
	deleteBatchSize = 2
)

type Options struct {
	BaseURL string
	// StrictCSVContentType requires the CSV export content-type to equal "text/csv" exactly;
	// otherwise parameters such as "; charset=utf-8" are accepted.
	StrictCSVContentType bool
}

// LogManagementProbe checks the log management endpoints of the admin API: it lists logs,
// deletes the first two, exports as CSV and exports as JSON, strictly in that order.
type LogManagementProbe interface {
	Run(ctx context.Context) *Report
}

type logManagementProbe struct {
	client      adminclient.AdminClient
	exportStore artifacts.ExportStore
	reporter    *reporter
	opts        Options
}

func NewLogManagementProbe(client adminclient.AdminClient, exportStore artifacts.ExportStore, out io.Writer, opts Options) LogManagementProbe {
	if exportStore == nil {
		exportStore = artifacts.NopExportStore{}
	}
	return &logManagementProbe{
		client:      client,
		exportStore: exportStore,
		reporter:    &reporter{w: out},
		opts:        opts,
	}
}

// Run executes the four steps. It never panics on server misbehaviour and never returns an
// error: every outcome is printed and recorded in the report.
func (p *logManagementProbe) Run(ctx context.Context) *Report {
	report := &Report{
		RunID:   ulid.NewULID(),
		BaseURL: p.opts.BaseURL,
	}
	ctx = loggers.Ctx(ctx).With().
		Str(loggers.FieldRunID, report.RunID).
		Logger().WithContext(ctx)
	logger := loggers.Ctx(ctx)
	logger.Info().Str(loggers.FieldBaseURL, p.opts.BaseURL).Msg("log management check started")

	p.reporter.header()
	if err := p.run(ctx, report); err != nil {
		report.Aborted = true
		if svcErr, ok := svcerrors.AsServiceError(err); ok && svcErr.IsUnreachable() {
			p.reporter.unreachable(p.opts.BaseURL)
		} else {
			p.reporter.unexpected(messageOf(err))
		}
	}

	logger.Info().
		Bool("aborted", report.Aborted).
		Bool("completed", report.Completed).
		Bool("has_failure", report.HasFailure()).
		Msg("log management check finished")
	return report
}

// run returns an error only when the run must abort.
func (p *logManagementProbe) run(ctx context.Context, report *Report) error {
	p.reporter.section(1, "Fetching log list")
	logs, res, err := p.fetchLogs(ctx)
	p.record(ctx, report, res)
	if err != nil {
		return err
	}
	if res.Outcome != OutcomeOK {
		return nil
	}

	if len(logs) >= deleteBatchSize {
		p.reporter.section(2, "Testing batch delete")
		res, err = p.batchDeleteLogs(ctx, models.LeadingIDs(logs, deleteBatchSize))
	} else {
		res = StepResult{Step: StepBatchDelete, Outcome: OutcomeSkipped, Detail: "fewer than 2 logs listed"}
	}
	p.record(ctx, report, res)
	if err != nil {
		return err
	}

	p.reporter.section(3, "Testing CSV export")
	res, err = p.exportCSV(ctx, report.RunID)
	p.record(ctx, report, res)
	if err != nil {
		return err
	}

	p.reporter.section(4, "Testing JSON export")
	res, err = p.exportJSON(ctx, report.RunID)
	p.record(ctx, report, res)
	if err != nil {
		return err
	}

	p.reporter.footer()
	report.Completed = true
	return nil
}

func (p *logManagementProbe) fetchLogs(ctx context.Context) ([]models.LogEntry, StepResult, error) {
	start := time.Now()
	resp, err := p.client.ListLogs(ctx)
	res := StepResult{Step: StepListLogs, Duration: time.Since(start)}

	if err != nil {
		res.Outcome, res.Detail = outcomeOf(err), err.Error()
		switch res.Outcome {
		case OutcomeHttpStatus:
			p.reporter.line("request failed: %d", statusOf(err))
		case OutcomeApplicationError:
			p.reporter.line("failed to fetch logs: %s", orNone(messageOf(err)))
		case OutcomeMalformedResponse:
			p.reporter.line("malformed log list: %s", messageOf(err))
		}
		return nil, res, abortErr(res.Outcome, err)
	}

	p.reporter.line("fetched %d logs", len(resp.Logs))
	if len(resp.Logs) == 0 {
		p.reporter.line("no log data, cannot test deletion")
		res.Outcome, res.Detail = OutcomeInconclusive, "no logs listed"
		return nil, res, nil
	}
	p.reporter.line("sample log ids: %s", formatIDs(models.LeadingIDs(resp.Logs, sampleIDsMax)))

	res.Outcome = OutcomeOK
	return resp.Logs, res, nil
}

func (p *logManagementProbe) batchDeleteLogs(ctx context.Context, ids []models.LogID) (StepResult, error) {
	start := time.Now()
	resp, err := p.client.BatchDeleteLogs(ctx, ids)
	res := StepResult{Step: StepBatchDelete, Duration: time.Since(start)}

	if err != nil {
		res.Outcome, res.Detail = outcomeOf(err), err.Error()
		switch res.Outcome {
		case OutcomeHttpStatus:
			p.reporter.line("delete request failed: %d", statusOf(err))
		case OutcomeApplicationError:
			p.reporter.line("delete failed: %s", orNone(messageOf(err)))
		case OutcomeMalformedResponse:
			p.reporter.line("malformed delete response: %s", messageOf(err))
		}
		return res, abortErr(res.Outcome, err)
	}

	p.reporter.line("deleted %s logs", formatCount(resp.DeletedCount))
	res.Outcome, res.Detail = OutcomeOK, "ids "+formatIDs(ids)
	return res, nil
}

func (p *logManagementProbe) exportCSV(ctx context.Context, runID string) (StepResult, error) {
	start := time.Now()
	export, err := p.client.ExportCSV(ctx)
	res := StepResult{Step: StepExportCSV, Duration: time.Since(start)}

	if err != nil {
		res.Outcome, res.Detail = outcomeOf(err), err.Error()
		if res.Outcome == OutcomeHttpStatus {
			p.reporter.line("export request failed: %d", statusOf(err))
		}
		return res, abortErr(res.Outcome, err)
	}

	if !p.csvContentTypeMatches(export.ContentType) {
		p.reporter.line("unexpected export format: %s", orNone(export.ContentType))
		res.Outcome, res.Detail = OutcomeContentTypeMismatch, "content-type "+orNone(export.ContentType)
		return res, nil
	}

	p.reporter.line("exported CSV, size: %d bytes", len(export.Body))
	res.Outcome = OutcomeOK
	p.saveArtifact(ctx, StepExportCSV, func() (string, error) {
		return p.exportStore.SaveCSV(ctx, runID, export.Body)
	})
	return res, nil
}

func (p *logManagementProbe) exportJSON(ctx context.Context, runID string) (StepResult, error) {
	start := time.Now()
	resp, err := p.client.ExportJSON(ctx)
	res := StepResult{Step: StepExportJSON, Duration: time.Since(start)}

	if err != nil {
		res.Outcome, res.Detail = outcomeOf(err), err.Error()
		switch res.Outcome {
		case OutcomeHttpStatus:
			p.reporter.line("JSON export request failed: %d", statusOf(err))
		case OutcomeApplicationError:
			p.reporter.line("JSON export failed: %s", orNone(messageOf(err)))
		case OutcomeMalformedResponse:
			p.reporter.line("malformed JSON")
		}
		return res, abortErr(res.Outcome, err)
	}

	p.reporter.line("exported JSON with %s records", formatCount(resp.Count))
	res.Outcome = OutcomeOK
	p.saveArtifact(ctx, StepExportJSON, func() (string, error) {
		return p.exportStore.SaveJSON(ctx, runID, resp.Raw)
	})
	return res, nil
}

func (p *logManagementProbe) csvContentTypeMatches(contentType string) bool {
	if p.opts.StrictCSVContentType {
		return contentType == contentTypeCSV
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == contentTypeCSV
}

// saveArtifact stores an export body. A failure is logged and does not change the step outcome.
func (p *logManagementProbe) saveArtifact(ctx context.Context, step Step, save func() (string, error)) {
	savedPath, err := save()
	if err != nil {
		loggers.Ctx(ctx).Warn().Err(err).Str(loggers.FieldStep, string(step)).Msg("failed to save export artifact")
		metricArtifactSavedTotal.WithLabelValues(string(step), "error").Inc()
		return
	}
	if savedPath == "" {
		return
	}
	metricArtifactSavedTotal.WithLabelValues(string(step), "saved").Inc()
	loggers.Ctx(ctx).Debug().Str(loggers.FieldStep, string(step)).Str("path", savedPath).Msg("export artifact saved")
}

func (p *logManagementProbe) record(ctx context.Context, report *Report, res StepResult) {
	report.Steps = append(report.Steps, res)
	metricStepTotal.WithLabelValues(string(res.Step), string(res.Outcome)).Inc()
	if res.Outcome != OutcomeSkipped {
		metricStepLatency.WithLabelValues(string(res.Step)).Observe(res.Duration.Seconds())
	}
	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldStep, string(res.Step)).
		Str(loggers.FieldOutcome, string(res.Outcome)).
		Int64(loggers.FieldDuration, res.Duration.Milliseconds()).
		Str("detail", res.Detail).
		Msg("step finished")
}

// abortErr returns err when the outcome ends the run.
func abortErr(outcome Outcome, err error) error {
	if outcome.aborts() {
		return err
	}
	return nil
}

func statusOf(err error) int {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.HttpStatusCode
	}
	return 0
}

func messageOf(err error) string {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.Message
	}
	return err.Error()
}
