package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("disk full")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: disk full" {
		t.Fatalf("unexpected error string: %q", e.Error())
	}
	if got := e.ToHTTPError(); got.Error != "" || got.Code != "INTERNAL_ERROR" {
		t.Fatalf("cause must not leak: %+v", got)
	}
	if got := e.ToHTTPErrorWithCause(); got.Error != "disk full" {
		t.Fatalf("expected raw cause, got %+v", got)
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	if simple.Error() != "NOT_FOUND: Not found" || simple.Unwrap() != nil {
		t.Fatalf("unexpected simple error: %v", simple)
	}
}
