package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb: throttled")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if appErr.Error() != "INTERNAL_ERROR: An internal error occurred: dynamodb: throttled" {
		t.Fatalf("unexpected message: %s", appErr.Error())
	}

	httpErr := appErr.ToHTTPError()
	if httpErr.Code != "INTERNAL_ERROR" || httpErr.Message != "An internal error occurred" {
		t.Fatalf("unexpected http error: %+v", httpErr)
	}
}

func TestNewDomainErrorSimple(t *testing.T) {
	appErr := NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	if appErr.Err != nil || appErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected app error: %+v", appErr)
	}
	if appErr.Error() != "QUOTE_NOT_FOUND: Quote not found" {
		t.Fatalf("unexpected message: %s", appErr.Error())
	}
}
