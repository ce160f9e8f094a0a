package reassign

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

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PRService
type PRService interface {
	ReassignReviewer(ctx context.Context, prID, oldReviewerID string) (*domains.PullRequest, string, error)
}

type Request struct {
	PrID      string `json:"pull_request_id" validate:"required"`
	OldUserID string `json:"old_reviewer_id" validate:"required"`
}

type Response struct {
	Pr        response.PullRequest `json:"pr"`
	NewUserID string               `json:"replaced_by"`
}

func New(
	log *slog.Logger,
	prService PRService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http.handlers.pull_requests.reassign.New"

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

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(handlers.ValidationError, validateErr))
			return
		}

		pr, newUserID, err := prService.ReassignReviewer(r.Context(), req.PrID, req.OldUserID)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrPullRequestNotFound), errors.Is(err, usecase.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.NewErrorResponse(handlers.NotFound, "resource not found"))
			case errors.Is(err, usecase.ErrPRAlreadyMerged):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.NewErrorResponse(handlers.PrMerged, "cannot reassign on merged PR"))
			case errors.Is(err, usecase.ErrUserNotAssigned):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.NewErrorResponse(handlers.NotAssigned, "reviewer is not assigned to this PR"))
			case errors.Is(err, usecase.ErrNoAvailableReviewer):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.NewErrorResponse(handlers.NoCandidate, "no active replacement candidate in team"))
			case errors.Is(err, usecase.ErrValidation):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.NewErrorResponse(handlers.ValidationError, err.Error()))
			default:
				log.Error("failed to reassign reviewer", sl.Err(err))

				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.NewErrorResponse(handlers.InternalError, "internal server error"))
			}
			return
		}

		render.JSON(w, r, Response{Pr: response.NewPullRequest(pr), NewUserID: newUserID})
	}
}
