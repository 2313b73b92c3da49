package httpapi

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) ListSports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSports")
	defer span.End()

	sports, err := h.catalogService.ListSports(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list sports failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]sportDTO, 0, len(sports))
	for _, s := range sports {
		items = append(items, sportToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNews")
	defer span.End()

	articles, err := h.catalogService.ListNews(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list news failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]newsDTO, 0, len(articles))
	for _, a := range articles {
		items = append(items, newsToDTO(a))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparePlayers", attribute.String("sport", r.URL.Query().Get("sport")))
	defer span.End()

	sportName := strings.TrimSpace(r.URL.Query().Get("sport"))
	leftID, err := parseIDParam(r, "left")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	rightID, err := parseIDParam(r, "right")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.comparisonService.ComparePlayers(ctx, sportName, leftID, rightID)
	if err != nil {
		h.logger.WarnContext(ctx, "compare players failed", "sport", sportName, "left_id", leftID, "right_id", rightID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerComparisonDTO{
		Left:      playerToDTO(result.Left),
		Right:     playerToDTO(result.Right),
		Rows:      comparisonRowsToDTO(result.Rows),
		LeftWins:  result.LeftWins,
		RightWins: result.RightWins,
	})
}

func (h *Handler) CompareTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompareTeams", attribute.String("sport", r.URL.Query().Get("sport")))
	defer span.End()

	sportName := strings.TrimSpace(r.URL.Query().Get("sport"))
	leftID, err := parseIDParam(r, "left")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	rightID, err := parseIDParam(r, "right")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.comparisonService.CompareTeams(ctx, sportName, leftID, rightID)
	if err != nil {
		h.logger.WarnContext(ctx, "compare teams failed", "sport", sportName, "left_id", leftID, "right_id", rightID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamComparisonDTO{
		Left:      teamToDTO(result.Left),
		Right:     teamToDTO(result.Right),
		Rows:      comparisonRowsToDTO(result.Rows),
		LeftWins:  result.LeftWins,
		RightWins: result.RightWins,
	})
}
