package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-basketball/internal/usecase"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) googleResponseEnvelope {
	t.Helper()

	var body googleResponseEnvelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, googleAPIVersion, body.APIVersion)
	return body
}

func TestWriteSuccess_Envelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, countDTO{Count: 3})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"apiVersion":"2.0","data":{"count":3}}`, rec.Body.String())
}

func TestWriteError_Envelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: week 4 is locked", usecase.ErrLineupLocked))

	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeEnvelope(t, rec)
	require.Nil(t, body.Data)
	require.NotNil(t, body.Error)
	require.Equal(t, http.StatusConflict, body.Error.Code)
	require.Equal(t, "FAILED_PRECONDITION", body.Error.Status)
	require.Len(t, body.Error.Errors, 1)
	require.Equal(t, errorDomain, body.Error.Errors[0].Domain)
	require.Equal(t, "lineupLocked", body.Error.Errors[0].Reason)
}

func TestMapError_Statuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		reason string
	}{
		{name: "invalid input", err: fmt.Errorf("%w: x", usecase.ErrInvalidInput), status: http.StatusBadRequest, reason: "invalidInput"},
		{name: "not found", err: fmt.Errorf("%w: x", usecase.ErrNotFound), status: http.StatusNotFound, reason: "notFound"},
		{name: "unauthorized", err: usecase.ErrUnauthorized, status: http.StatusUnauthorized, reason: "unauthorized"},
		{name: "dependency", err: usecase.ErrDependencyUnavailable, status: http.StatusServiceUnavailable, reason: "dependencyUnavailable"},
		{name: "locked", err: fmt.Errorf("%w: week 3", usecase.ErrLineupLocked), status: http.StatusConflict, reason: "lineupLocked"},
		{name: "uniqueness", err: usecase.ErrUniquenessExhausted, status: http.StatusConflict, reason: "uniquenessExhausted"},
		{name: "gateway", err: &usecase.GatewayError{Op: "auto-lineup", Message: "boom"}, status: http.StatusBadGateway, reason: "gatewayError"},
		{name: "deadline", err: fmt.Errorf("call: %w", context.DeadlineExceeded), status: http.StatusGatewayTimeout, reason: "deadlineExceeded"},
		{name: "unknown", err: fmt.Errorf("mystery"), status: http.StatusInternalServerError, reason: "internalError"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := mapError(context.Background(), tc.err)
			if got.HTTPStatus != tc.status || got.Reason != tc.reason {
				t.Fatalf("expected %d/%s, got %d/%s", tc.status, tc.reason, got.HTTPStatus, got.Reason)
			}
		})
	}
}
