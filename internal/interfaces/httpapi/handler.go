package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
	"github.com/riskibarqy/sportsboard/internal/usecase"
)

const maxRequestBodyBytes = 64 << 10

var strictJSON = sonic.Config{DisallowUnknownFields: true}.Froze()

type Handler struct {
	catalogService    *usecase.CatalogService
	comparisonService *usecase.ComparisonService
	contactService    *usecase.ContactService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	catalogService *usecase.CatalogService,
	comparisonService *usecase.ComparisonService,
	contactService *usecase.ContactService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		catalogService:    catalogService,
		comparisonService: comparisonService,
		contactService:    contactService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := strictJSON.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, fmt.Errorf("%w: query parameter %s is required", usecase.ErrInvalidInput, name)
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: query parameter %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}
