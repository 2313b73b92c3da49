package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/sportsboard/internal/usecase"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v (body=%s)", err, rec.Body.String())
	}
	return body
}

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type: %q", got)
	}

	body := decodeEnvelope(t, rec)
	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input", err: fmt.Errorf("%w: x", usecase.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "unknown sport", err: fmt.Errorf("%w: curling", usecase.ErrUnknownSport), want: http.StatusNotFound},
		{name: "rate limited", err: fmt.Errorf("%w: slow down", usecase.ErrRateLimited), want: http.StatusTooManyRequests},
		{name: "dependency", err: fmt.Errorf("%w: circuit open", usecase.ErrDependencyUnavailable), want: http.StatusServiceUnavailable},
		{name: "deadline", err: fmt.Errorf("submit: %w", context.DeadlineExceeded), want: http.StatusGatewayTimeout},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapError(context.Background(), tt.err).HTTPStatus; got != tt.want {
				t.Fatalf("mapError(%v)=%d want=%d", tt.err, got, tt.want)
			}
		})
	}
}

func TestWriteError_InternalErrorHidesCause(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.New("pq: password authentication failed"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	errorObj, _ := body["error"].(map[string]any)
	if got, _ := errorObj["message"].(string); got != "internal server error" {
		t.Fatalf("internal cause leaked: %q", got)
	}
}

func TestWriteError_ValidationFieldsBecomeErrorItems(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, &usecase.ValidationError{Fields: []usecase.FieldError{
		{Field: "email", Message: "Please enter a valid email address"},
		{Field: "message", Message: "Message must be at least 20 characters long"},
	}})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	errorObj, _ := body["error"].(map[string]any)
	items, _ := errorObj["errors"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 error items, got %v", errorObj["errors"])
	}
	first, _ := items[0].(map[string]any)
	if first["location"] != "email" || first["reason"] != "invalidField" {
		t.Fatalf("unexpected first error item: %v", first)
	}
}
