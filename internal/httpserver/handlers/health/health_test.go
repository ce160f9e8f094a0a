package health_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers/health"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers/health/mocks"
)

func TestHealthHandler(t *testing.T) {
	cases := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   string
	}{
		{name: "Healthy", expectedStatus: http.StatusOK, expectedBody: `{"status":"ok"}`},
		{name: "Storage down", pingErr: errors.New("dial tcp: refused"), expectedStatus: http.StatusServiceUnavailable, expectedBody: `{"status":"unavailable"}`},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			pinger := mocks.NewPinger(t)
			pinger.On("Ping", mock.Anything).Return(tc.pingErr).Once()

			handler := health.New(slog.New(slog.NewTextHandler(io.Discard, nil)), pinger)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tc.expectedStatus, rr.Code)
			require.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
