package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/sportsboard/internal/usecase"
)

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (usecase.Session, bool) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		writeError(r.Context(), w, fmt.Errorf("%w: viewer session is missing from request context", usecase.ErrDependencyUnavailable))
		return usecase.Session{}, false
	}
	return session, true
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetState")
	defer span.End()

	session, ok := h.session(w, r)
	if !ok {
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stateToDTO(session.Provider.Snapshot()))
}

func (h *Handler) SelectSport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectSport")
	defer span.End()

	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req selectSportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := session.Provider.SelectSport(ctx, req.Sport)
	if err != nil {
		h.logger.WarnContext(ctx, "select sport failed", "session_id", session.ID, "sport", req.Sport, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stateToDTO(state))
}

func (h *Handler) LoadTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LoadTeams")
	defer span.End()

	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req loadTeamsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stateToDTO(session.Provider.LoadTeams(ctx, req.Sport)))
}

func (h *Handler) LoadPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LoadPlayers")
	defer span.End()

	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req loadPlayersRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stateToDTO(session.Provider.LoadPlayers(ctx, req.Team)))
}

func (h *Handler) ListPlayerCards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerCards")
	defer span.End()

	session, ok := h.session(w, r)
	if !ok {
		return
	}

	players := session.Provider.Snapshot().Players
	items := make([]playerCardDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerCardToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
