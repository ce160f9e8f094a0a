package reassign_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers/pull_requests/reassign"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers/pull_requests/reassign/mocks"
	"github.com/Deymos01/pr-reviewer-service/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReassignHandler(t *testing.T) {
	type testCase struct {
		name           string
		body           string
		callsService   bool
		mockReturnPR   *domains.PullRequest
		mockNewUserID  string
		mockError      error
		expectedStatus int
		expectedCode   string
	}

	validBody := `{"pull_request_id":"pr-1","old_reviewer_id":"u2"}`

	cases := []testCase{
		{
			name:         "Success",
			body:         validBody,
			callsService: true,
			mockReturnPR: &domains.PullRequest{
				ID:        "pr-1",
				Name:      "Add search",
				AuthorID:  "u1",
				Status:    domains.StatusOpen,
				Reviewers: []string{"u4", "u3"},
			},
			mockNewUserID:  "u4",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid JSON",
			body:           `{"pull_request_id":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "BAD_REQUEST",
		},
		{
			name:           "Missing old reviewer",
			body:           `{"pull_request_id":"pr-1"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "PR not found",
			body:           validBody,
			callsService:   true,
			mockError:      usecase.ErrPullRequestNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name:           "Merged",
			body:           validBody,
			callsService:   true,
			mockError:      usecase.ErrPRAlreadyMerged,
			expectedStatus: http.StatusConflict,
			expectedCode:   "PR_MERGED",
		},
		{
			name:           "Not assigned",
			body:           validBody,
			callsService:   true,
			mockError:      usecase.ErrUserNotAssigned,
			expectedStatus: http.StatusConflict,
			expectedCode:   "NOT_ASSIGNED",
		},
		{
			name:           "No candidate",
			body:           validBody,
			callsService:   true,
			mockError:      usecase.ErrNoAvailableReviewer,
			expectedStatus: http.StatusConflict,
			expectedCode:   "NO_CANDIDATE",
		},
		{
			name:           "Storage failure",
			body:           validBody,
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
				svc.On("ReassignReviewer", mock.Anything, "pr-1", "u2").
					Return(tc.mockReturnPR, tc.mockNewUserID, tc.mockError).
					Once()
			}

			handler := reassign.New(discardLogger(), svc)

			req := httptest.NewRequest(http.MethodPost, "/pullRequest/reassign", strings.NewReader(tc.body))
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

			require.Equal(t, "u4", resp["replaced_by"])
			pr := resp["pr"].(map[string]any)
			require.Equal(t, []any{"u4", "u3"}, pr["assigned_reviewers"])
		})
	}
}
