package httpapi

import (
	"net/http"

	"github.com/riskibarqy/sportsboard/internal/usecase"
)

func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitContact")
	defer span.End()

	var req contactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	clientKey := contactClientKey(r)
	receipt, err := h.contactService.Submit(ctx, clientKey, usecase.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit contact failed", "client_ip", clientKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, contactReceiptToDTO(receipt))
}

// contactClientKey scopes the contact budget to the caller's address. The
// session cookie is client controlled and dropping it must not reset the
// budget. Requests without a resolvable address share one budget.
func contactClientKey(r *http.Request) string {
	if ip := resolveClientIP(r); ip != "" {
		return ip
	}
	return "unknown"
}
