package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Deymos01/pr-reviewer-service/internal/auth"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers/health"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers/pull_requests/create"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers/pull_requests/merge"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers/pull_requests/reassign"
	statsget "github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers/statistics/get"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers/teams/add"
	teamget "github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers/teams/get"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers/users/get_review"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers/users/set_is_active"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/middlewares"
)

type TeamService interface {
	add.TeamService
	teamget.TeamService
}

type UserService interface {
	set_is_active.UserService
	get_review.UserService
}

type PRService interface {
	create.PRService
	merge.PRService
	reassign.PRService
}

type Deps struct {
	Log        *slog.Logger
	Verifier   middlewares.TokenVerifier
	Teams      TeamService
	Users      UserService
	PRs        PRService
	Statistics statsget.StatisticsService
	Storage    health.Pinger
}

func NewRouter(d Deps) http.Handler {
	log := d.Log

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middlewares.Logger(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	anyRole := middlewares.RequireAccess(log, d.Verifier, auth.AnyRole)
	adminOnly := middlewares.RequireAccess(log, d.Verifier, auth.AdminOnly)

	router.Get("/health", health.New(log, d.Storage))

	router.Route("/team", func(r chi.Router) {
		r.Post("/add", add.New(log, d.Teams))
		r.With(anyRole).Get("/get", teamget.New(log, d.Teams))
	})

	router.Route("/users", func(r chi.Router) {
		r.With(adminOnly).Post("/setIsActive", set_is_active.New(log, d.Users))
		r.With(anyRole).Get("/getReview", get_review.New(log, d.Users))
	})

	router.Route("/pullRequest", func(r chi.Router) {
		r.Use(adminOnly)
		r.Post("/create", create.New(log, d.PRs))
		r.Post("/merge", merge.New(log, d.PRs))
		r.Post("/reassign", reassign.New(log, d.PRs))
	})

	router.With(anyRole).Get("/statistics", statsget.New(log, d.Statistics))

	return router
}
