package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

type ctxKeyProfile struct{}

// ProfileFromContext returns the profile AuthGate attached to the request.
func ProfileFromContext(ctx context.Context) (domain.Profile, bool) {
	p, ok := ctx.Value(ctxKeyProfile{}).(domain.Profile)
	return p, ok
}

// AuthGate admits a request only if it carries a valid session cookie for a
// user that still exists. Admitted requests get the user's profile and id
// attached to their context; rejected ones never reach next.
func AuthGate(sessions *service.SessionService, credentials *service.CredentialService, dev bool) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			// 1. No token
			cookie, err := r.Cookie(service.SessionCookieName)
			if err != nil || cookie.Value == "" {
				writeError(w, r, service.ErrNoToken, dev)
				return
			}

			// 2. Verify signature and expiry
			userID, err := sessions.Verify(cookie.Value)
			if err != nil {
				log.Warn("session verify failed", slog.Any("error", err))
				writeError(w, r, service.ErrInvalidToken, dev)
				return
			}

			// 3. Resolve the user
			u, err := credentials.FindByID(ctx, userID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					log.Warn("session for unknown user", slog.String("user_id", userID))
					writeError(w, r, service.ErrInvalidToken, dev)
					return
				}
				writeError(w, r, err, dev)
				return
			}

			// 4. Admit
			ctx = httpx.WithUserID(ctx, u.ID)
			ctx = context.WithValue(ctx, ctxKeyProfile{}, u.Profile())
			ctx = slogx.WithContext(ctx, log.With("user_id", u.ID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
