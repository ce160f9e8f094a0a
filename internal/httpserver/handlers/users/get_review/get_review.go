package get_review

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

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserService
type UserService interface {
	GetUsersReview(ctx context.Context, userID string) ([]*domains.PullRequest, error)
}

type Response struct {
	UserID       string                      `json:"user_id"`
	PullRequests []response.PullRequestShort `json:"pull_requests"`
}

func New(
	log *slog.Logger,
	service UserService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http.handlers.users.get_review.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.NewErrorResponse(handlers.BadRequest, "user_id is required"))
			return
		}

		prs, err := service.GetUsersReview(r.Context(), userID)
		if err != nil {
			if errors.Is(err, usecase.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.NewErrorResponse(handlers.NotFound, "user not found"))
				return
			}

			log.Error("failed to get user reviews", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.NewErrorResponse(handlers.InternalError, "internal server error"))
			return
		}

		resp := Response{UserID: userID, PullRequests: make([]response.PullRequestShort, 0, len(prs))}
		for _, pr := range prs {
			resp.PullRequests = append(resp.PullRequests, response.NewPullRequestShort(pr))
		}

		render.JSON(w, r, resp)
	}
}
