package merge_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers/pull_requests/merge"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers/pull_requests/merge/mocks"
	"github.com/Deymos01/pr-reviewer-service/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMergePRHandler(t *testing.T) {
	type testCase struct {
		name           string
		body           string
		callsService   bool
		mockReturnPR   *domains.PullRequest
		mockError      error
		expectedStatus int
		expectedCode   string
	}

	mergedAt := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	merged := &domains.PullRequest{
		ID:        "pr-1",
		Name:      "Add search",
		AuthorID:  "u1",
		Status:    domains.StatusMerged,
		Reviewers: []string{"u2"},
		MergedAt:  &mergedAt,
	}

	cases := []testCase{
		{
			name:           "Success",
			body:           `{"pull_request_id":"pr-1"}`,
			callsService:   true,
			mockReturnPR:   merged,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid JSON",
			body:           `not json`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "BAD_REQUEST",
		},
		{
			name:           "Missing id",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "Not found",
			body:           `{"pull_request_id":"pr-1"}`,
			callsService:   true,
			mockError:      usecase.ErrPullRequestNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name:           "Storage failure",
			body:           `{"pull_request_id":"pr-1"}`,
			callsService:   true,
			mockError:      errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_ERROR",
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewPRService(t)

			if tc.callsService {
				svc.On("MergePullRequest", mock.Anything, "pr-1").
					Return(tc.mockReturnPR, tc.mockError).
					Once()
			}

			handler := merge.New(discardLogger(), svc)

			req := httptest.NewRequest(http.MethodPost, "/pullRequest/merge", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, tc.expectedStatus, rr.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			if tc.expectedCode != "" {
				errResp := resp["error"].(map[string]any)
				require.Equal(t, tc.expectedCode, errResp["code"])
				return
			}

			pr := resp["pr"].(map[string]any)
			require.Equal(t, "MERGED", pr["status"])
			require.Equal(t, "2025-11-01T12:00:00Z", pr["merged_at"])
		})
	}
}
