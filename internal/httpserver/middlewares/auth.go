package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/Deymos01/pr-reviewer-service/internal/auth"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver/handlers"
	"github.com/Deymos01/pr-reviewer-service/internal/lib/api/response"
	"github.com/Deymos01/pr-reviewer-service/internal/lib/logger/sl"
)

type roleKey struct{}

type TokenVerifier interface {
	Verify(token string) (auth.Role, error)
}

// RequireAccess rejects requests whose bearer token does not grant level with 401
// before the wrapped handler runs. The verified role is stored in the request context.
func RequireAccess(log *slog.Logger, verifier TokenVerifier, level auth.Level) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if level == auth.Public {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "http.middlewares.RequireAccess"

			role, err := verifier.Verify(bearerToken(r))
			if err != nil || !level.Allows(role) {
				attrs := []any{
					slog.String("op", op),
					slog.String("path", r.URL.Path),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				}
				if err != nil {
					attrs = append(attrs, sl.Err(err))
				} else {
					attrs = append(attrs, slog.String("role", string(role)))
				}
				log.Warn("unauthorized request", attrs...)

				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.NewErrorResponse(handlers.Unauthorized, "unauthorized"))
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), roleKey{}, role)))
		})
	}
}

func RoleFromContext(ctx context.Context) (auth.Role, bool) {
	role, ok := ctx.Value(roleKey{}).(auth.Role)
	return role, ok
}

// bearerToken returns the token of an "Authorization: Bearer <token>" header, or "".
func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
