package memory

import (
	"context"
	"slices"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
	"github.com/Deymos01/pr-reviewer-service/internal/repository"
)

// CreateTeam registers the team and upserts its members, moving users out of their previous team.
func (s *Storage) CreateTeam(ctx context.Context, team *domains.Team) error {
	defer s.lock(ctx)()

	if _, ok := s.teams[team.Name]; ok {
		return repository.ErrTeamExists
	}

	ids := make([]string, 0, len(team.Members))
	for _, m := range team.Members {
		if prev, ok := s.users[m.ID]; ok && prev.TeamName != team.Name {
			s.teams[prev.TeamName] = slices.DeleteFunc(s.teams[prev.TeamName], func(id string) bool {
				return id == m.ID
			})
		}

		s.users[m.ID] = domains.User{
			ID:       m.ID,
			Name:     m.Name,
			TeamName: team.Name,
			IsActive: m.IsActive,
		}
		ids = append(ids, m.ID)
	}
	s.teams[team.Name] = ids

	return nil
}

func (s *Storage) TeamExists(ctx context.Context, name string) (bool, error) {
	defer s.rlock(ctx)()

	_, ok := s.teams[name]
	return ok, nil
}

func (s *Storage) GetTeamByName(ctx context.Context, name string) (*domains.Team, error) {
	defer s.rlock(ctx)()

	return s.team(name)
}

func (s *Storage) TeamOfUser(ctx context.Context, userID string) (*domains.Team, error) {
	defer s.rlock(ctx)()

	u, ok := s.users[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return s.team(u.TeamName)
}

func (s *Storage) team(name string) (*domains.Team, error) {
	ids, ok := s.teams[name]
	if !ok {
		return nil, repository.ErrTeamNotFound
	}

	team := &domains.Team{Name: name, Members: make([]*domains.User, 0, len(ids))}
	for _, id := range ids {
		u := s.users[id]
		team.Members = append(team.Members, &u)
	}

	return team, nil
}
