package get

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/Deymos01/pr-reviewer-service/internal/domains"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers"
	"github.com/Deymos01/pr-reviewer-service/internal/lib/api/response"
	"github.com/Deymos01/pr-reviewer-service/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=StatisticsService
type StatisticsService interface {
	GetStatistics(ctx context.Context, order domains.SortOrder) (*domains.Statistics, error)
}

type PullRequestStats struct {
	Total  int `json:"pr_count"`
	Open   int `json:"open_pr_count"`
	Merged int `json:"merged_pr_count"`
}

type UserStats struct {
	UserID          string `json:"user_id"`
	Username        string `json:"username"`
	AssignmentCount int    `json:"assignment_count"`
}

type Response struct {
	Pr    PullRequestStats `json:"pr"`
	Users []UserStats      `json:"users"`
}

func New(
	log *slog.Logger,
	service StatisticsService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http.handlers.statistics.get.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		order, err := domains.ParseSortOrder(r.URL.Query().Get("sort"))
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.NewErrorResponse(handlers.BadRequest, err.Error()))
			return
		}

		stats, err := service.GetStatistics(r.Context(), order)
		if err != nil {
			log.Error("failed to get statistics", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.NewErrorResponse(handlers.InternalError, "internal server error"))
			return
		}

		resp := Response{
			Pr: PullRequestStats{
				Total:  stats.PullRequests.Total,
				Open:   stats.PullRequests.Open,
				Merged: stats.PullRequests.Merged,
			},
			Users: make([]UserStats, 0, len(stats.Users)),
		}
		for _, u := range stats.Users {
			resp.Users = append(resp.Users, UserStats(u))
		}

		render.JSON(w, r, resp)
	}
}
