package probes

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"log-admin-probe/internal/adminclient"
	"log-admin-probe/internal/adminclient/mocks"
	artifactmocks "log-admin-probe/internal/artifacts/mocks"
	"log-admin-probe/internal/models"
	"log-admin-probe/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testBaseURL = "http://localhost:8080"


func listing(ids ...models.LogID) *models.ListLogsResponse {
	logs := make([]models.LogEntry, 0, len(ids))
	for _, id := range ids {
		logs = append(logs, models.LogEntry{ID: id})
	}
	return &models.ListLogsResponse{Logs: logs}
}

type probeFixture struct {
	client *mocks.MockAdminClient
	store  *artifactmocks.MockExportStore
	out    *bytes.Buffer
	probe  LogManagementProbe
}

func newProbeFixture(t *testing.T, opts Options) *probeFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &probeFixture{
		client: mocks.NewMockAdminClient(ctrl),
		store:  artifactmocks.NewMockExportStore(ctrl),
		out:    &bytes.Buffer{},
	}
	if opts.BaseURL == "" {
		opts.BaseURL = testBaseURL
	}
	f.probe = NewLogManagementProbe(f.client, f.store, f.out, opts)
	return f
}

// expectExportsOK sets up successful CSV and JSON exports and artifact saves.
func (f *probeFixture) expectExportsOK() {
	f.client.EXPECT().ExportCSV(gomock.Any()).
		Return(&models.CSVExport{ContentType: "text/csv", Body: []byte("id\n1\n")}, nil)
	f.store.EXPECT().SaveCSV(gomock.Any(), gomock.Any(), []byte("id\n1\n")).Return("", nil)
	f.client.EXPECT().ExportJSON(gomock.Any()).
		Return(&models.ExportJSONResponse{Count: models.JSONValue("1"), Raw: []byte(`{"success":true,"count":1}`)}, nil)
	f.store.EXPECT().SaveJSON(gomock.Any(), gomock.Any(), []byte(`{"success":true,"count":1}`)).Return("", nil)
}

func outcomes(report *Report) map[Step]Outcome {
	out := make(map[Step]Outcome, len(report.Steps))
	for _, res := range report.Steps {
		out[res.Step] = res.Outcome
	}
	return out
}

func TestRun_NoLogs_StopsWithoutDeleting(t *testing.T) {
	t.Parallel()

	f := newProbeFixture(t, Options{StrictCSVContentType: true})
	f.client.EXPECT().ListLogs(gomock.Any()).Return(listing(), nil)

	var report *Report
	assert.NotPanics(t, func() { report = f.probe.Run(context.Background()) })

	assert.Equal(t, map[Step]Outcome{StepListLogs: OutcomeInconclusive}, outcomes(report))
	assert.False(t, report.Aborted)
	assert.False(t, report.Completed)
	assert.False(t, report.HasFailure())
	assert.Len(t, report.RunID, 26)

	output := f.out.String()
	assert.Contains(t, output, "fetched 0 logs")
	assert.Contains(t, output, "no log data, cannot test deletion")
	assert.NotContains(t, output, "2. Testing batch delete")
	assert.NotContains(t, output, "=== Check complete ===")
}

func TestRun_DeletesFirstTwoIDsInListingOrder(t *testing.T) {
	t.Parallel()

	f := newProbeFixture(t, Options{StrictCSVContentType: true})
	f.client.EXPECT().ListLogs(gomock.Any()).
		Return(listing(models.Int64LogID(30), models.StringLogID("b-7"), models.Int64LogID(10)), nil)
	f.client.EXPECT().BatchDeleteLogs(gomock.Any(), []models.LogID{models.Int64LogID(30), models.StringLogID("b-7")}).
		Return(&models.BatchDeleteResponse{DeletedCount: models.JSONValue("2")}, nil)
	f.expectExportsOK()

	report := f.probe.Run(context.Background())

	assert.True(t, report.Completed)
	assert.False(t, report.HasFailure())
	assert.Equal(t, map[Step]Outcome{
		StepListLogs:    OutcomeOK,
		StepBatchDelete: OutcomeOK,
		StepExportCSV:   OutcomeOK,
		StepExportJSON:  OutcomeOK,
	}, outcomes(report))

	output := f.out.String()
	assert.Contains(t, output, "fetched 3 logs")
	assert.Contains(t, output, "sample log ids: [30, \"b-7\", 10]")
	assert.Contains(t, output, "deleted 2 logs")
	assert.Contains(t, output, "exported CSV, size: 5 bytes")
	assert.Contains(t, output, "exported JSON with 1 records")
	assert.True(t, strings.HasSuffix(output, "=== Check complete ===\n"))
}

func TestRun_SingleLog_SkipsDeleteAndExports(t *testing.T) {
	t.Parallel()

	f := newProbeFixture(t, Options{StrictCSVContentType: true})
	f.client.EXPECT().ListLogs(gomock.Any()).Return(listing(models.Int64LogID(1)), nil)
	f.expectExportsOK()

	report := f.probe.Run(context.Background())

	res, ok := report.Step(StepBatchDelete)
	require.True(t, ok)
	assert.Equal(t, OutcomeSkipped, res.Outcome)
	assert.True(t, report.Completed)
	assert.NotContains(t, f.out.String(), "2. Testing batch delete")
}

func TestRun_CSVContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		strict      bool
		contentType string
		want        Outcome
		wantLine    string
	}{
		{name: "exact match", strict: true, contentType: "text/csv", want: OutcomeOK, wantLine: "exported CSV, size: 11 bytes"},
		{name: "charset rejected in strict mode", strict: true, contentType: "text/csv; charset=utf-8", want: OutcomeContentTypeMismatch, wantLine: "unexpected export format: text/csv; charset=utf-8"},
		{name: "charset accepted in lenient mode", strict: false, contentType: "text/csv; charset=utf-8", want: OutcomeOK, wantLine: "exported CSV, size: 11 bytes"},
		{name: "uppercase rejected in strict mode", strict: true, contentType: "TEXT/CSV", want: OutcomeContentTypeMismatch, wantLine: "unexpected export format: TEXT/CSV"},
		{name: "json rejected in lenient mode", strict: false, contentType: "application/json", want: OutcomeContentTypeMismatch, wantLine: "unexpected export format: application/json"},
		{name: "missing header", strict: true, contentType: "", want: OutcomeContentTypeMismatch, wantLine: "unexpected export format: <none>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newProbeFixture(t, Options{StrictCSVContentType: tt.strict})
			f.client.EXPECT().ListLogs(gomock.Any()).Return(listing(models.Int64LogID(1)), nil)
			f.client.EXPECT().ExportCSV(gomock.Any()).
				Return(&models.CSVExport{ContentType: tt.contentType, Body: []byte("id,model\n1\n")}, nil)
			if tt.want == OutcomeOK {
				f.store.EXPECT().SaveCSV(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)
			}
			f.client.EXPECT().ExportJSON(gomock.Any()).
				Return(&models.ExportJSONResponse{Count: models.JSONValue("1")}, nil)
			f.store.EXPECT().SaveJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)

			report := f.probe.Run(context.Background())

			res, ok := report.Step(StepExportCSV)
			require.True(t, ok)
			assert.Equal(t, tt.want, res.Outcome)
			assert.Contains(t, f.out.String(), tt.wantLine)
			assert.True(t, report.Completed, "CSV outcome must not stop the JSON export")
		})
	}
}

// newExportServer serves a one-entry listing, a CSV export and the given JSON export response.
func newExportServer(t *testing.T, jsonStatus int, jsonBody string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == adminclient.PathLogs:
			_, _ = io.WriteString(w, `{"success":true,"logs":[{"id":1}]}`)
		case r.URL.Query().Get("format") == adminclient.FormatCSV:
			w.Header().Set("Content-Type", "text/csv")
			_, _ = io.WriteString(w, "id\n")
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(jsonStatus)
			_, _ = io.WriteString(w, jsonBody)
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestRun_JSONExport_MalformedDistinctFromApplicationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		want     Outcome
		wantLine string
	}{
		{
			name:     "malformed json",
			status:   http.StatusOK,
			body:     `{"success":tru`,
			want:     OutcomeMalformedResponse,
			wantLine: "   malformed JSON\n",
		},
		{
			name:     "success=false",
			status:   http.StatusOK,
			body:     `{"success":false,"error":"export failed"}`,
			want:     OutcomeApplicationError,
			wantLine: "   JSON export failed: export failed\n",
		},
		{
			name:     "success=false with an object error",
			status:   http.StatusOK,
			body:     `{"success": false, "error": {"message": "export disabled"}}`,
			want:     OutcomeApplicationError,
			wantLine: "   JSON export failed: {\"message\":\"export disabled\"}\n",
		},
		{
			name:     "success=false without error",
			status:   http.StatusOK,
			body:     `{"success": false}`,
			want:     OutcomeApplicationError,
			wantLine: "   JSON export failed: <none>\n",
		},
		{
			name:     "float count",
			status:   http.StatusOK,
			body:     `{"success": true, "count": 3.0}`,
			want:     OutcomeOK,
			wantLine: "   exported JSON with 3.0 records\n",
		},
		{
			name:     "string count",
			status:   http.StatusOK,
			body:     `{"success": true, "count": "3"}`,
			want:     OutcomeOK,
			wantLine: "   exported JSON with 3 records\n",
		},
		{
			name:     "non-200",
			status:   http.StatusBadGateway,
			body:     `{"success":false}`,
			want:     OutcomeHttpStatus,
			wantLine: "   JSON export request failed: 502\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := newExportServer(t, tt.status, tt.body)
			store := artifactmocks.NewMockExportStore(gomock.NewController(t))
			store.EXPECT().SaveCSV(gomock.Any(), gomock.Any(), []byte("id\n")).Return("", nil)
			if tt.want == OutcomeOK {
				store.EXPECT().SaveJSON(gomock.Any(), gomock.Any(), []byte(tt.body)).Return("", nil)
			}
			out := &bytes.Buffer{}
			probe := NewLogManagementProbe(adminclient.New(ts.URL), store, out, Options{BaseURL: ts.URL, StrictCSVContentType: true})

			report := probe.Run(context.Background())

			res, ok := report.Step(StepExportJSON)
			require.True(t, ok)
			assert.Equal(t, tt.want, res.Outcome)
			assert.Contains(t, out.String(), tt.wantLine)
			assert.True(t, report.Completed)
			assert.Equal(t, tt.want != OutcomeOK, report.HasFailure())
		})
	}
}

func TestRun_UnreachableOnFirstCall(t *testing.T) {
	t.Parallel()

	f := newProbeFixture(t, Options{BaseURL: "http://localhost:8080", StrictCSVContentType: true})
	f.client.EXPECT().ListLogs(gomock.Any()).
		Return(nil, svcerrors.NewUnreachableError("PRB_1000", errors.New("connect: connection refused")))

	var report *Report
	assert.NotPanics(t, func() { report = f.probe.Run(context.Background()) })

	assert.True(t, report.Aborted)
	assert.False(t, report.Completed)
	assert.Equal(t, map[Step]Outcome{StepListLogs: OutcomeUnreachable}, outcomes(report))
	assert.True(t, strings.HasSuffix(f.out.String(),
		"error: cannot connect to server, make sure it is running at http://localhost:8080\n"))
}

func TestRun_UnreachableMidRun_Aborts(t *testing.T) {
	t.Parallel()

	f := newProbeFixture(t, Options{StrictCSVContentType: true})
	f.client.EXPECT().ListLogs(gomock.Any()).Return(listing(models.Int64LogID(1), models.Int64LogID(2)), nil)
	f.client.EXPECT().BatchDeleteLogs(gomock.Any(), gomock.Any()).
		Return(nil, svcerrors.NewUnreachableError("PRB_1000", errors.New("connection reset by peer")))

	report := f.probe.Run(context.Background())

	assert.True(t, report.Aborted)
	assert.Len(t, report.Steps, 2)
	assert.Contains(t, f.out.String(), "error: cannot connect to server")
	assert.NotContains(t, f.out.String(), "3. Testing CSV export")
}

func TestRun_ListingFailures_StopRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		want     Outcome
		wantLine string
	}{
		{
			name:     "non-200",
			err:      svcerrors.NewHttpStatusError("PRB_1001", http.StatusInternalServerError),
			want:     OutcomeHttpStatus,
			wantLine: "request failed: 500",
		},
		{
			name:     "success=false",
			err:      svcerrors.NewApplicationError("PRB_1003", "Request logger not available"),
			want:     OutcomeApplicationError,
			wantLine: "failed to fetch logs: Request logger not available",
		},
		{
			name:     "success=false without error text",
			err:      svcerrors.NewApplicationError("PRB_1003", ""),
			want:     OutcomeApplicationError,
			wantLine: "failed to fetch logs: <none>",
		},
		{
			name:     "malformed",
			err:      svcerrors.NewMalformedResponseError("PRB_1002", "response is not valid JSON", nil),
			want:     OutcomeMalformedResponse,
			wantLine: "malformed log list: response is not valid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newProbeFixture(t, Options{StrictCSVContentType: true})
			f.client.EXPECT().ListLogs(gomock.Any()).Return(nil, tt.err)

			report := f.probe.Run(context.Background())

			assert.Equal(t, map[Step]Outcome{StepListLogs: tt.want}, outcomes(report))
			assert.False(t, report.Aborted)
			assert.False(t, report.Completed)
			assert.Contains(t, f.out.String(), tt.wantLine)
		})
	}
}

func TestRun_DeleteFailure_ContinuesToExports(t *testing.T) {
	t.Parallel()

	f := newProbeFixture(t, Options{StrictCSVContentType: true})
	f.client.EXPECT().ListLogs(gomock.Any()).Return(listing(models.Int64LogID(1), models.Int64LogID(2)), nil)
	f.client.EXPECT().BatchDeleteLogs(gomock.Any(), gomock.Any()).
		Return(nil, svcerrors.NewApplicationError("PRB_1003", "Invalid request"))
	f.expectExportsOK()

	report := f.probe.Run(context.Background())

	assert.True(t, report.Completed)
	assert.Equal(t, OutcomeApplicationError, outcomes(report)[StepBatchDelete])
	assert.Contains(t, f.out.String(), "delete failed: Invalid request")
}

func TestRun_DeleteWithoutCount(t *testing.T) {
	t.Parallel()

	f := newProbeFixture(t, Options{StrictCSVContentType: true})
	f.client.EXPECT().ListLogs(gomock.Any()).Return(listing(models.Int64LogID(1), models.Int64LogID(2)), nil)
	f.client.EXPECT().BatchDeleteLogs(gomock.Any(), gomock.Any()).
		Return(&models.BatchDeleteResponse{}, nil)
	f.expectExportsOK()

	f.probe.Run(context.Background())
	assert.Contains(t, f.out.String(), "deleted <none> logs")
}

func TestRun_UnexpectedError_Aborts(t *testing.T) {
	t.Parallel()

	f := newProbeFixture(t, Options{StrictCSVContentType: true})
	f.client.EXPECT().ListLogs(gomock.Any()).Return(listing(models.Int64LogID(1)), nil)
	f.client.EXPECT().ExportCSV(gomock.Any()).Return(nil, errors.New("boom"))

	report := f.probe.Run(context.Background())

	assert.True(t, report.Aborted)
	assert.Equal(t, OutcomeUnexpected, outcomes(report)[StepExportCSV])
	assert.True(t, strings.HasSuffix(f.out.String(), "error during check: boom\n"))
}

func TestRun_ArtifactSaveFailure_KeepsOutcome(t *testing.T) {
	t.Parallel()

	f := newProbeFixture(t, Options{StrictCSVContentType: true})
	f.client.EXPECT().ListLogs(gomock.Any()).Return(listing(models.Int64LogID(1)), nil)
	f.client.EXPECT().ExportCSV(gomock.Any()).
		Return(&models.CSVExport{ContentType: "text/csv", Body: []byte("id\n")}, nil)
	f.store.EXPECT().SaveCSV(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("disk full"))
	f.client.EXPECT().ExportJSON(gomock.Any()).
		Return(&models.ExportJSONResponse{Count: models.JSONValue("0")}, nil)
	f.store.EXPECT().SaveJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return("/tmp/run/logs.json", nil)

	report := f.probe.Run(context.Background())

	assert.Equal(t, OutcomeOK, outcomes(report)[StepExportCSV])
	assert.False(t, report.HasFailure())
}

func TestRun_ArtifactsUseRunID(t *testing.T) {
	t.Parallel()

	f := newProbeFixture(t, Options{StrictCSVContentType: true})
	f.client.EXPECT().ListLogs(gomock.Any()).Return(listing(models.Int64LogID(1)), nil)

	var csvRunID, jsonRunID string
	f.client.EXPECT().ExportCSV(gomock.Any()).
		Return(&models.CSVExport{ContentType: "text/csv", Body: []byte("id\n")}, nil)
	f.store.EXPECT().SaveCSV(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, runID string, _ []byte) (string, error) {
			csvRunID = runID
			return "", nil
		})
	f.client.EXPECT().ExportJSON(gomock.Any()).
		Return(&models.ExportJSONResponse{}, nil)
	f.store.EXPECT().SaveJSON(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, runID string, _ []byte) (string, error) {
			jsonRunID = runID
			return "", nil
		})

	report := f.probe.Run(context.Background())

	assert.Equal(t, report.RunID, csvRunID)
	assert.Equal(t, report.RunID, jsonRunID)
	assert.Contains(t, f.out.String(), "exported JSON with <none> records")
}

func TestOutcome_IsFailure(t *testing.T) {
	t.Parallel()

	for _, o := range []Outcome{OutcomeOK, OutcomeSkipped, OutcomeInconclusive} {
		assert.False(t, o.IsFailure(), o)
	}
	for _, o := range []Outcome{OutcomeHttpStatus, OutcomeMalformedResponse, OutcomeApplicationError,
		OutcomeContentTypeMismatch, OutcomeUnreachable, OutcomeUnexpected} {
		assert.True(t, o.IsFailure(), o)
	}
}
