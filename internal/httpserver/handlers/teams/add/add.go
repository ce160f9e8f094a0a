package add

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers"
	"github.com/Deymos01/pr-reviewer-service/internal/lib/api/request"
	"github.com/Deymos01/pr-reviewer-service/internal/lib/api/response"
	"github.com/Deymos01/pr-reviewer-service/internal/lib/logger/sl"
	"github.com/Deymos01/pr-reviewer-service/internal/usecase"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamService
type TeamService interface {
	AddTeam(ctx context.Context, team *domains.Team) (*domains.Team, error)
}

type Member struct {
	UserID   string `json:"user_id" validate:"required"`
	Username string `json:"username" validate:"required,maxbytes=63"`
	IsActive bool   `json:"is_active"`
}

type Request struct {
	TeamName string   `json:"team_name" validate:"required,maxbytes=31"`
	Members  []Member `json:"members" validate:"unique=UserID,dive"`
}

type Team struct {
	Name    string   `json:"team_name"`
	Members []Member `json:"members"`
}

type Response struct {
	Team Team `json:"team"`
}

func New(
	log *slog.Logger,
	service TeamService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http.handlers.teams.add.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request
		if err := request.Decode(r, &req); err != nil {
			log.Warn("invalid request body", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.NewErrorResponse(handlers.BadRequest, "invalid JSON format"))
			return
		}

		if err := request.Validate(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Warn("invalid request", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(handlers.ValidationError, validateErr))
			return
		}

		members := make([]*domains.User, 0, len(req.Members))
		for _, m := range req.Members {
			members = append(members, &domains.User{
				ID:       m.UserID,
				Name:     m.Username,
				TeamName: req.TeamName,
				IsActive: m.IsActive,
			})
		}

		created, err := service.AddTeam(r.Context(), &domains.Team{Name: req.TeamName, Members: members})
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrValidation):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.NewErrorResponse(handlers.ValidationError, err.Error()))
			case errors.Is(err, usecase.ErrTeamAlreadyExists):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.NewErrorResponse(handlers.TeamExists, "team_name already exists"))
			default:
				log.Error("failed to create team", sl.Err(err))

				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.NewErrorResponse(handlers.InternalError, "internal server error"))
			}
			return
		}

		resp := Response{Team: Team{Name: created.Name, Members: make([]Member, 0, len(created.Members))}}
		for _, m := range created.Members {
			resp.Team.Members = append(resp.Team.Members, Member{
				UserID:   m.ID,
				Username: m.Name,
				IsActive: m.IsActive,
			})
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, resp)
	}
}
