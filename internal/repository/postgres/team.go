package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
	"github.com/Deymos01/pr-reviewer-service/internal/repository"
)

type userRow struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	TeamName string `db:"team_name"`
	IsActive bool   `db:"is_active"`
}

func (r userRow) toDomain() *domains.User {
	return &domains.User{ID: r.ID, Name: r.Name, TeamName: r.TeamName, IsActive: r.IsActive}
}

// CreateTeam inserts the team and upserts its members. Existing users move into the new team.
func (s *Storage) CreateTeam(ctx context.Context, team *domains.Team) error {
	const op = "repository.postgres.CreateTeam"

	conn := s.conn(ctx)

	if _, err := conn.ExecContext(ctx, `INSERT INTO teams (name) VALUES ($1)`, team.Name); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrTeamExists
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO users (id, name, team_name, position, is_active)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    team_name = EXCLUDED.team_name,
		    position = EXCLUDED.position,
		    is_active = EXCLUDED.is_active
	`
	for i, m := range team.Members {
		if _, err := conn.ExecContext(ctx, query, m.ID, m.Name, team.Name, i, m.IsActive); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

func (s *Storage) TeamExists(ctx context.Context, name string) (bool, error) {
	const op = "repository.postgres.TeamExists"

	var exists bool
	if err := s.conn(ctx).GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM teams WHERE name = $1)`, name); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func (s *Storage) GetTeamByName(ctx context.Context, name string) (*domains.Team, error) {
	const op = "repository.postgres.GetTeamByName"

	exists, err := s.TeamExists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return nil, repository.ErrTeamNotFound
	}

	query := `
		SELECT id, name, team_name, is_active
		FROM users
		WHERE team_name = $1
		ORDER BY position, id
	`
	var rows []userRow
	if err := s.conn(ctx).SelectContext(ctx, &rows, query, name); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	team := &domains.Team{Name: name, Members: make([]*domains.User, 0, len(rows))}
	for _, r := range rows {
		team.Members = append(team.Members, r.toDomain())
	}

	return team, nil
}

func (s *Storage) TeamOfUser(ctx context.Context, userID string) (*domains.Team, error) {
	const op = "repository.postgres.TeamOfUser"

	var teamName string
	err := s.conn(ctx).GetContext(ctx, &teamName, `SELECT team_name FROM users WHERE id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetTeamByName(ctx, teamName)
}
