package team

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
	"github.com/Deymos01/pr-reviewer-service/internal/lib/logger/sl"
	"github.com/Deymos01/pr-reviewer-service/internal/repository"
	"github.com/Deymos01/pr-reviewer-service/internal/usecase"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamRepository
type TeamRepository interface {
	CreateTeam(ctx context.Context, team *domains.Team) error
	TeamExists(ctx context.Context, name string) (bool, error)
	GetTeamByName(ctx context.Context, name string) (*domains.Team, error)
}

type Service struct {
	log  *slog.Logger
	trm  usecase.TxManager
	repo TeamRepository
}

func New(log *slog.Logger, trm usecase.TxManager, repo TeamRepository) *Service {
	return &Service{log: log, trm: trm, repo: repo}
}

// AddTeam creates the team and upserts its members. Members that already
// belong to another team are moved into this one.
func (s *Service) AddTeam(ctx context.Context, team *domains.Team) (*domains.Team, error) {
	const op = "usecase.team.AddTeam"

	log := s.log.With(slog.String("op", op), slog.String("team", team.Name))

	if err := validateTeam(team); err != nil {
		log.Warn("invalid team", sl.Err(err))
		return nil, err
	}

	for _, m := range team.Members {
		m.TeamName = team.Name
	}

	var created *domains.Team
	err := s.trm.Do(ctx, func(ctx context.Context) error {
		exists, err := s.repo.TeamExists(ctx, team.Name)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if exists {
			return usecase.ErrTeamAlreadyExists
		}

		if err := s.repo.CreateTeam(ctx, team); err != nil {
			if errors.Is(err, repository.ErrTeamExists) {
				return usecase.ErrTeamAlreadyExists
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		created, err = s.repo.GetTeamByName(ctx, team.Name)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, usecase.ErrTeamAlreadyExists) {
			log.Warn("team already exists")
		} else {
			log.Error("failed to create team", sl.Err(err))
		}
		return nil, err
	}

	log.Info("team successfully created", slog.Int("members", len(created.Members)))
	return created, nil
}

func (s *Service) GetTeam(ctx context.Context, teamName string) (*domains.Team, error) {
	const op = "usecase.team.GetTeam"

	team, err := s.repo.GetTeamByName(ctx, teamName)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			s.log.Warn("team not found", slog.String("team", teamName))
			return nil, usecase.ErrTeamNotFound
		}

		s.log.Error("failed to get team by name", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("team successfully retrieved", slog.String("team", teamName))
	return team, nil
}

func validateTeam(team *domains.Team) error {
	if team.Name == "" || len(team.Name) > domains.MaxTeamNameBytes {
		return fmt.Errorf("%w: team_name must be 1..%d bytes", usecase.ErrValidation, domains.MaxTeamNameBytes)
	}

	seen := make(map[string]struct{}, len(team.Members))
	for _, m := range team.Members {
		if m == nil || m.ID == "" {
			return fmt.Errorf("%w: user_id is required", usecase.ErrValidation)
		}
		if m.Name == "" || len(m.Name) > domains.MaxUsernameBytes {
			return fmt.Errorf("%w: username must be 1..%d bytes", usecase.ErrValidation, domains.MaxUsernameBytes)
		}
		if _, dup := seen[m.ID]; dup {
			return fmt.Errorf("%w: duplicate user_id %q", usecase.ErrValidation, m.ID)
		}
		seen[m.ID] = struct{}{}
	}

	return nil
}
