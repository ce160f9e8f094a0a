package set_is_active

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

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserService
type UserService interface {
	SetIsActive(ctx context.Context, userID string, isActive bool) (*domains.User, error)
}

type Request struct {
	UserID   string `json:"user_id" validate:"required"`
	IsActive *bool  `json:"is_active" validate:"required"`
}

type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	TeamName string `json:"team_name"`
	IsActive bool   `json:"is_active"`
}

type Response struct {
	User User `json:"user"`
}

func New(
	log *slog.Logger,
	service UserService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http.handlers.users.set_is_active.New"

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

		user, err := service.SetIsActive(r.Context(), req.UserID, *req.IsActive)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.NewErrorResponse(handlers.NotFound, "user not found"))
			case errors.Is(err, usecase.ErrValidation):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.NewErrorResponse(handlers.ValidationError, err.Error()))
			default:
				log.Error("failed to set is_active", sl.Err(err))

				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.NewErrorResponse(handlers.InternalError, "internal server error"))
			}
			return
		}

		render.JSON(w, r, Response{User: User{
			UserID:   user.ID,
			Username: user.Name,
			TeamName: user.TeamName,
			IsActive: user.IsActive,
		}})
	}
}
