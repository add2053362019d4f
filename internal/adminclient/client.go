package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"log-admin-probe/internal/models"
	"log-admin-probe/internal/shared/loggers"
	"log-admin-probe/internal/shared/metrics"
	"log-admin-probe/internal/shared/svcerrors"
	"log-admin-probe/internal/shared/ulid"
	"log-admin-probe/internal/shared/validators"
)

const (
	PathLogs       = "/admin/logs"
	PathLogsBatch  = "/admin/logs/batch"
	PathLogsExport = "/admin/logs/export"

	FormatCSV  = "csv"
	FormatJSON = "json"

	headerRequestID   = "x-request-id"
	headerContentType = "Content-Type"
	headerUserAgent   = "User-Agent"
)

// AdminClient calls the log management endpoints of the admin API. Every method performs one
// request without retry. Failures are *svcerrors.ServiceError values whose category tells a
// connection failure, a non-200 status, an undecodable body and a success=false envelope apart.
//
//go:generate mockgen -source=client.go -destination=./mocks/admin_client_mock.go -package=mocks
type AdminClient interface {
	ListLogs(ctx context.Context) (*models.ListLogsResponse, error)
	BatchDeleteLogs(ctx context.Context, ids []models.LogID) (*models.BatchDeleteResponse, error)
	ExportCSV(ctx context.Context) (*models.CSVExport, error)
	ExportJSON(ctx context.Context) (*models.ExportJSONResponse, error)
}

// Option configures a client.
type Option func(*client)

// WithTimeout sets the HTTP timeout. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

type client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	validate   *validators.Validate
}

// New creates a client for the admin API at baseURL. By default requests have no timeout.
func New(baseURL string, opts ...Option) AdminClient {
	c := &client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		validate:   validators.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) ListLogs(ctx context.Context) (*models.ListLogsResponse, error) {
	var out models.ListLogsResponse
	if _, err := c.doJSON(ctx, http.MethodGet, PathLogs, nil, nil, &out); err != nil {
		return nil, err
	}
	if err := c.validate.Struct(&out); err != nil {
		return nil, errInvalidPayload(err)
	}
	return &out, nil
}

func (c *client) BatchDeleteLogs(ctx context.Context, ids []models.LogID) (*models.BatchDeleteResponse, error) {
	body, err := json.Marshal(models.DeleteRequest{IDs: ids})
	if err != nil {
		return nil, errUnexpected(err)
	}

	var out models.BatchDeleteResponse
	if _, err := c.doJSON(ctx, http.MethodDelete, PathLogsBatch, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) ExportCSV(ctx context.Context) (*models.CSVExport, error) {
	resp, body, err := c.do(ctx, http.MethodGet, PathLogsExport, url.Values{"format": {FormatCSV}}, nil)
	if err != nil {
		return nil, err
	}
	return &models.CSVExport{
		ContentType: resp.Header.Get(headerContentType),
		Body:        body,
	}, nil
}

func (c *client) ExportJSON(ctx context.Context) (*models.ExportJSONResponse, error) {
	var out models.ExportJSONResponse
	body, err := c.doJSON(ctx, http.MethodGet, PathLogsExport, url.Values{"format": {FormatJSON}}, nil, &out)
	if err != nil {
		return nil, err
	}
	out.Raw = body
	return &out, nil
}

// envelope is the part of every admin response read before the payload. Both fields are kept
// verbatim so any valid JSON object reaches the success check.
type envelope struct {
	Success models.JSONValue `json:"success"`
	Error   models.JSONValue `json:"error"`
}

// doJSON performs the request, checks the envelope of a 200 body, decodes the payload of a
// successful response into out and returns the raw body. Only a body that is not valid JSON
// is reported as malformed.
func (c *client) doJSON(ctx context.Context, method, path string, query url.Values, reqBody []byte, out any) ([]byte, error) {
	_, body, err := c.do(ctx, method, path, query, reqBody)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, errMalformedResponse(errNotJSON)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errInvalidPayload(err)
	}
	if !env.Success.Truthy() {
		return nil, errApplicationFailed(env.Error.Text())
	}
	if err := json.Unmarshal(body, out); err != nil {
		return nil, errInvalidPayload(err)
	}
	return body, nil
}

// do performs one request and returns the response with its body fully read.
// Any status other than 200 is an error.
func (c *client) do(ctx context.Context, method, path string, query url.Values, reqBody []byte) (*http.Response, []byte, error) {
	logger := loggers.Ctx(ctx)

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if reqBody != nil {
		bodyReader = bytes.NewReader(reqBody)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, nil, errUnexpected(err)
	}

	requestID := ulid.NewULID()
	req.Header.Set(headerRequestID, requestID)
	if reqBody != nil {
		req.Header.Set(headerContentType, "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set(headerUserAgent, c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metricClientRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	if err != nil {
		svcErr := classifyTransportError(ctx, err)
		c.record(method, path, 0, svcErr)
		logger.Debug().
			Err(err).
			Str(loggers.FieldRequestID, requestID).
			Str(loggers.FieldHttpMethod, method).
			Str(loggers.FieldHttpPath, path).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("admin request failed")
		return nil, nil, svcErr
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		svcErr := classifyTransportError(ctx, err)
		c.record(method, path, resp.StatusCode, svcErr)
		return nil, nil, svcErr
	}

	logger.Debug().
		Str(loggers.FieldRequestID, requestID).
		Str(loggers.FieldHttpMethod, method).
		Str(loggers.FieldHttpPath, path).
		Int(loggers.FieldHttpStatus, resp.StatusCode).
		Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
		Msg("admin request completed")

	if resp.StatusCode != http.StatusOK {
		svcErr := errUnexpectedStatus(resp.StatusCode)
		c.record(method, path, resp.StatusCode, svcErr)
		return nil, nil, svcErr
	}

	c.record(method, path, resp.StatusCode, nil)
	return resp, body, nil
}

func (c *client) record(method, path string, status int, svcErr *svcerrors.ServiceError) {
	errorCode := metrics.ValueNoError
	if svcErr != nil {
		errorCode = svcErr.Code
	}
	metricClientRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status), errorCode).Inc()
}
