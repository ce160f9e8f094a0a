package add_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers/teams/add"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers/teams/add/mocks"
	"github.com/Deymos01/pr-reviewer-service/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAddTeamHandler(t *testing.T) {
	type testCase struct {
		name           string
		body           string
		callsService   bool
		mockReturnTeam *domains.Team
		mockError      error
		expectedStatus int
		expectedCode   string
	}

	cases := []testCase{
		{
			name: "Success",
			body: `{
				"team_name":"team",
				"members":[
					{"user_id":"u1","username":"Alice","is_active":true},
					{"user_id":"u2","username":"Bob","is_active":false}
				]
			}`,
			callsService: true,
			mockReturnTeam: &domains.Team{
				Name: "team",
				Members: []*domains.User{
					{ID: "u1", Name: "Alice", TeamName: "team", IsActive: true},
					{ID: "u2", Name: "Bob", TeamName: "team", IsActive: false},
				},
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Invalid JSON",
			body:           `{"team_name":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "BAD_REQUEST",
		},
		{
			name:           "Missing team name",
			body:           `{"members":[]}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "Team name over 31 bytes",
			body:           fmt.Sprintf(`{"team_name":%q,"members":[]}`, strings.Repeat("t", 32)),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "Username over 63 bytes",
			body:           fmt.Sprintf(`{"team_name":"team","members":[{"user_id":"u1","username":%q,"is_active":true}]}`, strings.Repeat("u", 64)),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "Duplicate member ids",
			body:           `{"team_name":"team","members":[{"user_id":"u1","username":"A"},{"user_id":"u1","username":"B"}]}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "Team already exists",
			body:           `{"team_name":"team","members":[]}`,
			callsService:   true,
			mockError:      usecase.ErrTeamAlreadyExists,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "TEAM_EXISTS",
		},
		{
			name:           "Storage failure",
			body:           `{"team_name":"team","members":[]}`,
			callsService:   true,
			mockError:      errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_ERROR",
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewTeamService(t)

			if tc.callsService {
				svc.On(
					"AddTeam",
					mock.Anything,
					mock.AnythingOfType("*domains.Team")).
					Return(tc.mockReturnTeam, tc.mockError).
					Once()
			}

			handler := add.New(discardLogger(), svc)

			req := httptest.NewRequest(http.MethodPost, "/team/add", bytes.NewReader([]byte(tc.body)))
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

			team := resp["team"].(map[string]any)
			require.Equal(t, "team", team["team_name"])

			members := team["members"].([]any)
			require.Len(t, members, 2)
			require.Equal(t, "u1", members[0].(map[string]any)["user_id"])
			require.Equal(t, false, members[1].(map[string]any)["is_active"])
		})
	}
}

func TestAddTeamHandler_AcceptsLimits(t *testing.T) {
	teamName := strings.Repeat("t", 31)
	// 31 two-byte runes plus one ASCII byte: 63 bytes
	usernames := []string{strings.Repeat("u", 63), strings.Repeat("ю", 31) + "u"}

	svc := mocks.NewTeamService(t)
	svc.On("AddTeam", mock.Anything, mock.MatchedBy(func(team *domains.Team) bool {
		return team.Name == teamName &&
			len(team.Members) == 2 &&
			team.Members[0].Name == usernames[0] &&
			team.Members[1].Name == usernames[1]
	})).
		Return(func(_ context.Context, team *domains.Team) (*domains.Team, error) {
			return team, nil
		}).
		Once()

	body := fmt.Sprintf(`{"team_name":%q,"members":[
		{"user_id":"u1","username":%q,"is_active":true},
		{"user_id":"u2","username":%q,"is_active":true}
	]}`, teamName, usernames[0], usernames[1])

	req := httptest.NewRequest(http.MethodPost, "/team/add", strings.NewReader(body))
	rr := httptest.NewRecorder()

	add.New(discardLogger(), svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	team := resp["team"].(map[string]any)
	require.Equal(t, teamName, team["team_name"])
	require.Equal(t, usernames[1], team["members"].([]any)[1].(map[string]any)["username"])
}
