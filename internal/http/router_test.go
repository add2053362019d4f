package http

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"log-admin-probe/internal/models"
	"log-admin-probe/internal/shared/loggers"
	"log-admin-probe/internal/stores"
	storemocks "log-admin-probe/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var seedNow = time.Date(2025, 12, 28, 18, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T, seedCount int, faults Faults) (http.Handler, stores.RequestLogStore) {
	t.Helper()
	store := stores.NewRequestLogStore(stores.SeedRequestLogs(seedCount, seedNow))
	return NewRouter(store, faults, loggers.Nop()), store
}

func serve(router http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(headerContentType, contentTypeJSON)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func TestListLogs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		wantIDs []int64
	}{
		{name: "defaults", target: "/admin/logs", wantIDs: []int64{5, 4, 3, 2, 1}},
		{name: "trailing slash", target: "/admin/logs/", wantIDs: []int64{5, 4, 3, 2, 1}},
		{name: "limit and offset", target: "/admin/logs?limit=2&offset=1", wantIDs: []int64{4, 3}},
		{name: "invalid limit falls back", target: "/admin/logs?limit=abc", wantIDs: []int64{5, 4, 3, 2, 1}},
		{name: "zero limit falls back", target: "/admin/logs?limit=0", wantIDs: []int64{5, 4, 3, 2, 1}},
		{name: "negative offset falls back", target: "/admin/logs?offset=-3&limit=1", wantIDs: []int64{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, _ := newTestRouter(t, 5, Faults{})
			rr := serve(router, http.MethodGet, tt.target, nil)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, contentTypeJSON, rr.Header().Get(headerContentType))

			resp := decodeBody[listLogsResponse](t, rr)
			assert.True(t, resp.Success)
			assert.Equal(t, int64(5), resp.TotalCount)
			ids := make([]int64, 0, len(resp.Logs))
			for _, l := range resp.Logs {
				ids = append(ids, l.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestListLogs_EmptyStoreReturnsEmptyArray(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, 0, Faults{})
	rr := serve(router, http.MethodGet, "/admin/logs", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"logs":[],"total_count":0}`, rr.Body.String())
}

func TestListLogs_StoreFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := storemocks.NewMockRequestLogStore(ctrl)
	store.EXPECT().List(gomock.Any(), defaultListLimit, defaultListOffset).Return(nil, int64(0), assert.AnError)

	rr := serve(NewRouter(store, Faults{}, loggers.Nop()), http.MethodGet, "/admin/logs", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decodeBody[ErrorResponse](t, rr)
	assert.False(t, resp.Success)
	assert.Equal(t, errorCodeStoreFailure, resp.ErrorCode)
}

func TestBatchDeleteLogs(t *testing.T) {
	t.Parallel()

	router, store := newTestRouter(t, 5, Faults{})
	rr := serve(router, http.MethodDelete, "/admin/logs/batch", strings.NewReader(`{"ids":[5,"4",99]}`))

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody[batchDeleteResponse](t, rr)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(2), resp.DeletedCount)

	remaining, _, err := store.List(t.Context(), 50, 0)
	require.NoError(t, err)
	assert.Len(t, remaining, 3)
}

func TestBatchDeleteLogs_InvalidRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{name: "not json", body: `ids=1,2`, wantCode: errorCodeInvalidDeleteBody},
		{name: "empty ids", body: `{"ids":[]}`, wantCode: errorCodeEmptyIDs},
		{name: "missing ids", body: `{}`, wantCode: errorCodeEmptyIDs},
		{name: "non integer id", body: `{"ids":["abc"]}`, wantCode: errorCodeInvalidDeleteBody},
		{name: "object id", body: `{"ids":[{"id":1}]}`, wantCode: errorCodeInvalidDeleteBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, store := newTestRouter(t, 3, Faults{})
			rr := serve(router, http.MethodDelete, "/admin/logs/batch", strings.NewReader(tt.body))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			resp := decodeBody[ErrorResponse](t, rr)
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.ErrorCode)

			all, err := store.All(t.Context())
			require.NoError(t, err)
			assert.Len(t, all, 3, "nothing is deleted on a bad request")
		})
	}
}

func TestExportLogs_CSV(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, 3, Faults{})
	rr := serve(router, http.MethodGet, "/admin/logs/export?format=csv", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv", rr.Header().Get(headerContentType))
	assert.Contains(t, rr.Header().Get(headerContentDisposition), "attachment; filename=request_logs_")

	records, err := csv.NewReader(bytes.NewReader(rr.Body.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, models.RequestLogCSVHeader, records[0])
	assert.Equal(t, "3", records[1][0], "newest first")
	assert.Equal(t, "2025-12-28T18:00:00Z", records[1][len(records[1])-1])
}

func TestExportLogs_JSON(t *testing.T) {
	t.Parallel()

	for _, target := range []string{"/admin/logs/export?format=json", "/admin/logs/export"} {
		router, _ := newTestRouter(t, 3, Faults{})
		rr := serve(router, http.MethodGet, target, nil)

		require.Equal(t, http.StatusOK, rr.Code, target)
		resp := decodeBody[exportJSONResponse](t, rr)
		assert.True(t, resp.Success)
		assert.Equal(t, 3, resp.Count)
		assert.Len(t, resp.Logs, 3)
	}
}

func TestExportLogs_UnknownFormat(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, 3, Faults{})
	rr := serve(router, http.MethodGet, "/admin/logs/export?format=xlsx", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeBody[ErrorResponse](t, rr)
	assert.Equal(t, errorCodeUnknownExportFormat, resp.ErrorCode)
	assert.Equal(t, `unsupported export format "xlsx"`, resp.Error)
}

func TestFaults(t *testing.T) {
	t.Parallel()

	t.Run("forced status", func(t *testing.T) {
		t.Parallel()

		router, _ := newTestRouter(t, 3, Faults{Status: map[string]int{RouteExportLogs: http.StatusBadGateway}})

		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/admin/logs", nil).Code)
		rr := serve(router, http.MethodGet, "/admin/logs/export?format=csv", nil)
		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Equal(t, errorCodeInjectedStatus, decodeBody[ErrorResponse](t, rr).ErrorCode)
	})

	t.Run("logger unavailable", func(t *testing.T) {
		t.Parallel()

		router, _ := newTestRouter(t, 3, Faults{LoggerUnavailable: true})
		rr := serve(router, http.MethodGet, "/admin/logs", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, messageLoggerUnavailable, decodeBody[ErrorResponse](t, rr).Error)
	})

	t.Run("application error", func(t *testing.T) {
		t.Parallel()

		router, _ := newTestRouter(t, 3, Faults{ApplicationError: "database is locked"})
		rr := serve(router, http.MethodDelete, "/admin/logs/batch", strings.NewReader(`{"ids":[1]}`))

		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeBody[ErrorResponse](t, rr)
		assert.False(t, resp.Success)
		assert.Equal(t, "database is locked", resp.Error)
	})

	t.Run("csv content type", func(t *testing.T) {
		t.Parallel()

		router, _ := newTestRouter(t, 3, Faults{CSVContentType: "text/csv; charset=utf-8"})
		rr := serve(router, http.MethodGet, "/admin/logs/export?format=csv", nil)

		assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get(headerContentType))
	})

	t.Run("malformed json export", func(t *testing.T) {
		t.Parallel()

		router, _ := newTestRouter(t, 3, Faults{MalformedJSONExport: true})
		rr := serve(router, http.MethodGet, "/admin/logs/export?format=json", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.False(t, json.Valid(rr.Body.Bytes()))

		rr = serve(router, http.MethodGet, "/admin/logs/export?format=csv", nil)
		assert.Equal(t, http.StatusOK, rr.Code, "csv export is unaffected")
	})
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, 1, Faults{})
	serve(router, http.MethodGet, "/admin/logs", nil)

	rr := serve(router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "log_admin_fake_http_requests_total")
}
