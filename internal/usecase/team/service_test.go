package team

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
	"github.com/Deymos01/pr-reviewer-service/internal/repository"
	"github.com/Deymos01/pr-reviewer-service/internal/repository/memory"
	"github.com/Deymos01/pr-reviewer-service/internal/usecase"
	"github.com/Deymos01/pr-reviewer-service/internal/usecase/team/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestService_AddTeam(t *testing.T) {
	newTeam := func() *domains.Team {
		return &domains.Team{
			Name: "team",
			Members: []*domains.User{
				{ID: "u1", Name: "user1", IsActive: true},
				{ID: "u2", Name: "user2", IsActive: false},
			},
		}
	}

	type testCase struct {
		name       string
		teamExists bool

		mockErrCreate error
		mockErrExist  error
		mockErrGet    error

		expectedErr error
	}

	cases := []testCase{
		{
			name:       "Success",
			teamExists: false,
		},
		{
			name:        "Team already exists",
			teamExists:  true,
			expectedErr: usecase.ErrTeamAlreadyExists,
		},
		{
			name:          "Concurrent create hits unique constraint",
			mockErrCreate: repository.ErrTeamExists,
			expectedErr:   usecase.ErrTeamAlreadyExists,
		},
		{
			name:         "TeamExists returns error",
			mockErrExist: errors.New("team exists error"),
			expectedErr:  errors.New("team exists error"),
		},
		{
			name:          "CreateTeam returns error",
			mockErrCreate: errors.New("create team error"),
			expectedErr:   errors.New("create team error"),
		},
		{
			name:        "GetTeamByName returns error",
			mockErrGet:  errors.New("get team error"),
			expectedErr: errors.New("get team error"),
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			team := newTeam()
			teamRepo := mocks.NewTeamRepository(t)

			teamRepo.
				On("TeamExists", mock.Anything, team.Name).
				Return(tc.teamExists, tc.mockErrExist).
				Once()

			if tc.mockErrExist == nil && !tc.teamExists {
				teamRepo.
					On("CreateTeam", mock.Anything, mock.AnythingOfType("*domains.Team")).
					Return(tc.mockErrCreate).
					Once()
			}

			if tc.mockErrExist == nil && tc.mockErrCreate == nil && !tc.teamExists {
				teamRepo.
					On("GetTeamByName", mock.Anything, team.Name).
					Return(team, tc.mockErrGet).
					Once()
			}

			svc := New(discardLogger(), passthroughTx{}, teamRepo)
			created, err := svc.AddTeam(context.Background(), team)

			if tc.expectedErr != nil {
				require.Error(t, err)
				if errors.Is(tc.expectedErr, usecase.ErrTeamAlreadyExists) {
					require.ErrorIs(t, err, usecase.ErrTeamAlreadyExists)
				} else {
					require.ErrorContains(t, err, tc.expectedErr.Error())
				}
				return
			}

			require.NoError(t, err)
			require.Equal(t, team.Name, created.Name)
			require.Len(t, created.Members, 2)
			for _, member := range created.Members {
				require.Equal(t, "team", member.TeamName)
			}
		})
	}
}

func TestService_AddTeam_Validation(t *testing.T) {
	cases := []struct {
		name string
		team *domains.Team
	}{
		{name: "empty name", team: &domains.Team{Name: ""}},
		{name: "name over 31 bytes", team: &domains.Team{Name: strings.Repeat("x", 32)}},
		{name: "empty user id", team: &domains.Team{Name: "t", Members: []*domains.User{{Name: "A"}}}},
		{name: "empty username", team: &domains.Team{Name: "t", Members: []*domains.User{{ID: "u1"}}}},
		{name: "username over 63 bytes", team: &domains.Team{Name: "t", Members: []*domains.User{{ID: "u1", Name: strings.Repeat("ю", 32)}}}},
		{name: "duplicate ids", team: &domains.Team{Name: "t", Members: []*domains.User{{ID: "u1", Name: "A"}, {ID: "u1", Name: "B"}}}},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// no repository call is expected before validation passes
			teamRepo := mocks.NewTeamRepository(t)

			_, err := New(discardLogger(), passthroughTx{}, teamRepo).AddTeam(context.Background(), tc.team)
			require.ErrorIs(t, err, usecase.ErrValidation)
		})
	}
}

func TestService_GetTeam(t *testing.T) {
	teamSample := &domains.Team{
		Name: "team",
		Members: []*domains.User{
			{Name: "user1"},
			{Name: "user2"},
		},
	}

	type testCase struct {
		name string
		team *domains.Team

		mockErrTeam error

		expectedErr error
	}

	cases := []testCase{
		{
			name: "Success",
			team: teamSample,
		},
		{
			name:        "Team not found",
			mockErrTeam: repository.ErrTeamNotFound,
			expectedErr: usecase.ErrTeamNotFound,
		},
		{
			name:        "GetTeamByName returns error",
			mockErrTeam: errors.New("get team error"),
			expectedErr: errors.New("get team error"),
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			teamRepo := mocks.NewTeamRepository(t)

			teamRepo.
				On("GetTeamByName", mock.Anything, "team").
				Return(tc.team, tc.mockErrTeam).
				Once()

			svc := New(discardLogger(), passthroughTx{}, teamRepo)
			team, err := svc.GetTeam(context.Background(), "team")

			if tc.expectedErr != nil {
				require.Error(t, err)
				require.ErrorContains(t, err, tc.expectedErr.Error())
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.team.Name, team.Name)
			require.Equal(t, len(tc.team.Members), len(team.Members))
			for i, member := range tc.team.Members {
				require.Equal(t, member.Name, team.Members[i].Name)
			}
		})
	}
}

func TestService_AddTeam_AcceptsLimits(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	team := &domains.Team{
		Name: strings.Repeat("t", domains.MaxTeamNameBytes),
		Members: []*domains.User{
			{ID: "u1", Name: strings.Repeat("u", domains.MaxUsernameBytes), IsActive: true},
			{ID: "u2", Name: strings.Repeat("ю", 31) + "u", IsActive: true},
		},
	}

	created, err := New(discardLogger(), store, store).AddTeam(ctx, team)
	require.NoError(t, err)
	require.Equal(t, team.Name, created.Name)
	require.Len(t, created.Members, 2)
	require.Equal(t, strings.Repeat("u", 63), created.Members[0].Name)
	require.Len(t, created.Members[1].Name, 63)
}
