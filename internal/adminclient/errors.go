package adminclient

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"

	"log-admin-probe/internal/shared/svcerrors"
)

// AdminClient errors
const (
	codeServerUnreachable = "PRB_1000"
	codeUnexpectedStatus  = "PRB_1001"
	codeMalformedResponse = "PRB_1002"
	codeApplicationFailed = "PRB_1003"
	codeInvalidPayload    = "PRB_1004"

	codeUnexpected = "PRB_9000"
)

var errNotJSON = errors.New("body is not valid JSON")

func errServerUnreachable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnreachableError(codeServerUnreachable, cause)
}

func errUnexpectedStatus(status int) *svcerrors.ServiceError {
	return svcerrors.NewHttpStatusError(codeUnexpectedStatus, status)
}

func errMalformedResponse(cause error) *svcerrors.ServiceError {
	return svcerrors.NewMalformedResponseError(codeMalformedResponse, "response is not valid JSON", cause)
}

func errInvalidPayload(cause error) *svcerrors.ServiceError {
	return svcerrors.NewMalformedResponseError(codeInvalidPayload, fmt.Sprintf("response payload is invalid: %v", cause), cause)
}

// errApplicationFailed wraps the server-provided error text of a success=false response.
func errApplicationFailed(message string) *svcerrors.ServiceError {
	return svcerrors.NewApplicationError(codeApplicationFailed, message)
}

func errUnexpected(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnexpectedError(codeUnexpected, cause)
}

// classifyTransportError maps an error returned by http.Client.Do. Connection-level failures
// (refused, reset, DNS, closed before a response, TLS handshake and certificate errors) become
// unreachable; cancellation and client timeouts stay unexpected.
func classifyTransportError(ctx context.Context, err error) *svcerrors.ServiceError {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errUnexpected(ctxErr)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		var opErr *net.OpError
		if errors.As(err, &opErr) && opErr.Op == "dial" {
			return errServerUnreachable(err)
		}
		return errUnexpected(err)
	}

	if isTLSError(err) {
		return errServerUnreachable(err)
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	switch {
	case errors.As(err, &opErr),
		errors.As(err, &dnsErr),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return errServerUnreachable(err)
	}
	return errUnexpected(err)
}

func isTLSError(err error) bool {
	var (
		recordErr    tls.RecordHeaderError
		alertErr     tls.AlertError
		verifyErr    *tls.CertificateVerificationError
		authorityErr x509.UnknownAuthorityError
		hostnameErr  x509.HostnameError
		invalidErr   x509.CertificateInvalidError
	)
	return errors.Is(err, http.ErrSchemeMismatch) ||
		errors.As(err, &recordErr) ||
		errors.As(err, &alertErr) ||
		errors.As(err, &verifyErr) ||
		errors.As(err, &authorityErr) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &invalidErr)
}
