package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers"
	"github.com/Deymos01/pr-reviewer-service/internal/lib/api/response"
	"github.com/Deymos01/pr-reviewer-service/internal/lib/logger/sl"
	"github.com/Deymos01/pr-reviewer-service/internal/usecase"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamService
type TeamService interface {
	GetTeam(ctx context.Context, teamName string) (*domains.Team, error)
}

type Member struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	IsActive bool   `json:"is_active"`
}

type Response struct {
	Name    string   `json:"team_name"`
	Members []Member `json:"members"`
}

func New(
	log *slog.Logger,
	service TeamService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http.handlers.teams.get.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		teamName := r.URL.Query().Get("team_name")
		if teamName == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.NewErrorResponse(handlers.BadRequest, "team_name is required"))
			return
		}

		team, err := service.GetTeam(r.Context(), teamName)
		if err != nil {
			if errors.Is(err, usecase.ErrTeamNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.NewErrorResponse(handlers.NotFound, "team not found"))
				return
			}

			log.Error("failed to get team", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.NewErrorResponse(handlers.InternalError, "internal server error"))
			return
		}

		resp := Response{Name: team.Name, Members: make([]Member, 0, len(team.Members))}
		for _, m := range team.Members {
			resp.Members = append(resp.Members, Member{
				UserID:   m.ID,
				Username: m.Name,
				IsActive: m.IsActive,
			})
		}

		render.JSON(w, r, resp)
	}
}
