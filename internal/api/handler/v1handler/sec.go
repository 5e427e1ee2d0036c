package v1handler

import (
	"context"
	"net/http"
	"plotmarket/internal/auth"
	"plotmarket/pkg/domain"
	"plotmarket/pkg/logger"
	"plotmarket/pkg/serrors"
	"strings"

	"go.uber.org/zap"
)

type ctxKey string

// UserKey is the context key under which the authenticated user is stored.
const UserKey ctxKey = "User"

// UserFromContext returns the user stored by Authenticate.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(UserKey).(domain.User)

	return user, ok
}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}

	return strings.TrimSpace(token), true
}

// Authenticate resolves the bearer token to a user and stores it in the
// request context. Requests without a valid token are rejected with 401.
func (h Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "not authenticated"))

			return
		}

		user, err := h.deps.Users.Authenticate(r.Context(), token)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		ctx := logger.WithFields(r.Context(), zap.String("userID", user.ID.String()))
		next.ServeHTTP(w, r.WithContext(WithUser(ctx, *user)))
	})
}

// Require returns a middleware admitting only users allowed at tier. It must
// run after Authenticate.
func (h Handler) Require(tier auth.Tier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "not authenticated"))

				return
			}

			if err := auth.Authorize(user, tier); err != nil {
				h.writeError(w, r, err)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
