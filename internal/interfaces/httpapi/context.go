package httpapi

import (
	"context"

	"github.com/riskibarqy/sportsboard/internal/usecase"
)

type contextKey string

const sessionContextKey contextKey = "viewer_session"

func withSession(ctx context.Context, s usecase.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

func sessionFromContext(ctx context.Context) (usecase.Session, bool) {
	s, ok := ctx.Value(sessionContextKey).(usecase.Session)
	return s, ok && s.Provider != nil
}
