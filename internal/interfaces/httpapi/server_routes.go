package httpapi

import (
	"net/http"

	"github.com/riskibarqy/sportsboard/internal/platform/logging"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/sports", handler.ListSports)
	mux.HandleFunc("GET /v1/news", handler.ListNews)
	mux.HandleFunc("GET /v1/compare/players", handler.ComparePlayers)
	mux.HandleFunc("GET /v1/compare/teams", handler.CompareTeams)
	mux.HandleFunc("POST /v1/contact", handler.SubmitContact)
}

func registerSessionRoutes(mux *http.ServeMux, handler *Handler, sessions SessionResolver, cookie SessionCookieOptions, logger *logging.Logger) {
	withSession := func(fn http.HandlerFunc) http.Handler {
		return WithSession(sessions, cookie, logger, fn)
	}

	mux.Handle("GET /v1/state", withSession(handler.GetState))
	mux.Handle("POST /v1/state/sport", withSession(handler.SelectSport))
	mux.Handle("POST /v1/state/teams/load", withSession(handler.LoadTeams))
	mux.Handle("POST /v1/state/players/load", withSession(handler.LoadPlayers))
	mux.Handle("GET /v1/players/cards", withSession(handler.ListPlayerCards))
}
