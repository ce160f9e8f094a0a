package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/Deymos01/pr-reviewer-service/internal/lib/logger/sl"
)

const pingTimeout = time.Second

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Pinger
type Pinger interface {
	Ping(ctx context.Context) error
}

type Response struct {
	Status string `json:"status"`
}

func New(log *slog.Logger, storage Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http.handlers.health.New"

		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := storage.Ping(ctx); err != nil {
			log.Error("storage is unavailable", slog.String("op", op), sl.Err(err))

			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, Response{Status: "unavailable"})
			return
		}

		render.JSON(w, r, Response{Status: "ok"})
	}
}
