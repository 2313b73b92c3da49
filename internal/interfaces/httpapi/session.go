package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/riskibarqy/sportsboard/internal/platform/logging"
	"github.com/riskibarqy/sportsboard/internal/usecase"
)

const sessionCookieName = "sb_session"

// SessionResolver maps a session cookie value to the viewer's provider.
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (usecase.Session, error)
}

type SessionCookieOptions struct {
	TTL    time.Duration
	Secure bool
}

// WithSession resolves the viewer session from the sb_session cookie and
// refreshes the cookie on every response.
func WithSession(resolver SessionResolver, opts SessionCookieOptions, logger *logging.Logger, next http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.WithSession")
		defer span.End()

		raw := ""
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			raw = cookie.Value
		}

		session, err := resolver.Resolve(ctx, raw)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		if session.Created {
			logger.InfoContext(ctx, "viewer session created",
				"session_id", session.ID,
				"client_ip", resolveClientIP(r),
				"selected_sport", session.Provider.Snapshot().SelectedSport,
			)
		}

		cookie := &http.Cookie{
			Name:     sessionCookieName,
			Value:    session.ID,
			Path:     "/",
			HttpOnly: true,
			Secure:   opts.Secure,
			SameSite: http.SameSiteLaxMode,
		}
		if opts.TTL > 0 {
			cookie.MaxAge = int(opts.TTL / time.Second)
		}
		http.SetCookie(w, cookie)

		next.ServeHTTP(w, r.WithContext(withSession(ctx, session)))
	})
}
