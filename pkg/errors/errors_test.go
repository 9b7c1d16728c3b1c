package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeConflict, "already exists", http.StatusConflict)

	if err.Code != CodeConflict {
		t.Errorf("expected code %s, got %s", CodeConflict, err.Code)
	}
	if err.Message != "already exists" {
		t.Errorf("expected message %q, got %q", "already exists", err.Message)
	}
	if err.StatusCode() != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, err.StatusCode())
	}
}

func TestError_Format(t *testing.T) {
	plain := New(CodeNotFound, "missing", http.StatusNotFound)
	if got := plain.Error(); got != "NOT_FOUND: missing" {
		t.Errorf("unexpected error string: %s", got)
	}

	cause := errors.New("connection reset")
	wrapped := Wrap(cause, CodeInternal, "lookup failed", http.StatusInternalServerError)
	want := "INTERNAL_ERROR: lookup failed (caused by: connection reset)"
	if got := wrapped.Error(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	wrapped := Wrap(cause, CodeInternal, "lookup failed", http.StatusInternalServerError)

	if !errors.Is(wrapped, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
	if New(CodeNotFound, "missing", http.StatusNotFound).Unwrap() != nil {
		t.Error("expected nil cause for unwrapped error")
	}
}

func TestNotFoundWithID(t *testing.T) {
	err := NotFoundWithID("Booking", "1")

	want := "Booking with ID 1 not found."
	if err.Message != want {
		t.Errorf("expected message %q, got %q", want, err.Message)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", err.HTTPStatus)
	}
	if err.Details["resource"] != "Booking" || err.Details["id"] != "1" {
		t.Errorf("unexpected details: %v", err.Details)
	}
}

func TestConstructorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"not found", NotFound("missing"), CodeNotFound, http.StatusNotFound},
		{"validation", Validation("bad shape", nil), CodeValidation, http.StatusBadRequest},
		{"invalid input", InvalidInput("bad value"), CodeInvalidInput, http.StatusBadRequest},
		{"conflict", Conflict("taken"), CodeConflict, http.StatusConflict},
		{"internal", Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
		{"timeout", Timeout("too slow"), CodeTimeout, http.StatusGatewayTimeout},
		{"unavailable", Unavailable("mongo"), CodeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, tt.err.Code)
			}
			if tt.err.HTTPStatus != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, tt.err.HTTPStatus)
			}
		})
	}
}

func TestWithDetails(t *testing.T) {
	err := Conflict("taken").WithDetails(map[string]any{"slot": "09:00-10:00"})
	if err.Details["slot"] != "09:00-10:00" {
		t.Errorf("unexpected details: %v", err.Details)
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(NotFound("missing")) {
		t.Error("expected IsAppError to be true for *AppError")
	}
	if IsAppError(errors.New("plain")) {
		t.Error("expected IsAppError to be false for plain error")
	}
}

func TestAsAppError(t *testing.T) {
	original := Conflict("taken")
	if got := AsAppError(original); got != original {
		t.Error("expected the same *AppError back")
	}

	plain := errors.New("boom")
	converted := AsAppError(plain)
	if converted.Code != CodeInternal {
		t.Errorf("expected code %s, got %s", CodeInternal, converted.Code)
	}
	if !errors.Is(converted, plain) {
		t.Error("expected the plain error to be preserved as cause")
	}
}
