package get_review_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers/users/get_review"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers/users/get_review/mocks"
	"github.com/Deymos01/pr-reviewer-service/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGetReviewHandler(t *testing.T) {
	type testCase struct {
		name           string
		userID         string
		callsService   bool
		mockReturnPRs  []*domains.PullRequest
		mockError      error
		expectedStatus int
		expectedCode   string
	}

	cases := []testCase{
		{
			name:         "Success (one PR)",
			userID:       "u1",
			callsService: true,
			mockReturnPRs: []*domains.PullRequest{
				{
					ID:        "pr1",
					Name:      "Implement feature",
					Status:    domains.StatusOpen,
					AuthorID:  "author1",
					Reviewers: []string{"u1"},
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "No reviews",
			userID:         "u1",
			callsService:   true,
			mockReturnPRs:  []*domains.PullRequest{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "User not found",
			userID:         "missing",
			callsService:   true,
			mockError:      usecase.ErrUserNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name:           "Empty user_id",
			userID:         "",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "BAD_REQUEST",
		},
		{
			name:           "Storage failure",
			userID:         "u1",
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

			svc := mocks.NewUserService(t)

			if tc.callsService {
				svc.On(
					"GetUsersReview",
					mock.Anything,
					tc.userID,
				).Return(tc.mockReturnPRs, tc.mockError).Once()
			}

			handler := get_review.New(discardLogger(), svc)

			req := httptest.NewRequest(
				http.MethodGet,
				"/users/getReview?user_id="+tc.userID,
				nil,
			)

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

			require.Equal(t, tc.userID, resp["user_id"])

			prs := resp["pull_requests"].([]any)
			require.Len(t, prs, len(tc.mockReturnPRs))

			for i, raw := range prs {
				pr := raw.(map[string]any)
				require.Equal(t, tc.mockReturnPRs[i].ID, pr["pull_request_id"])
				require.Equal(t, tc.mockReturnPRs[i].Name, pr["pull_request_name"])
				require.Equal(t, tc.mockReturnPRs[i].AuthorID, pr["author_id"])
				require.Equal(t, string(tc.mockReturnPRs[i].Status), pr["status"])
				require.NotContains(t, pr, "assigned_reviewers")
			}
		})
	}
}
