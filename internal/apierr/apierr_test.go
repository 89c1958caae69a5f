package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAs_FindsWrappedError(t *testing.T) {
	base := NotFound("thing_not_found", errors.New("no row"))
	wrapped := fmt.Errorf("load thing: %w", base)

	apiErr, ok := As(wrapped)
	if !ok {
		t.Fatalf("expected to find the api error in the chain")
	}
	if apiErr.Code != "thing_not_found" || apiErr.Status != http.StatusNotFound {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestStatusOf(t *testing.T) {
	if got := StatusOf(Forbidden("nope", nil)); got != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", got)
	}
	if got := StatusOf(Conflict("dup", nil)); got != http.StatusConflict {
		t.Fatalf("expected 409, got %d", got)
	}
	if got := StatusOf(errors.New("plain")); got != http.StatusInternalServerError {
		t.Fatalf("plain errors map to 500, got %d", got)
	}
	if got := StatusOf(nil); got != http.StatusInternalServerError {
		t.Fatalf("nil maps to 500, got %d", got)
	}
}

func TestError_MessageFallbacks(t *testing.T) {
	withErr := New(http.StatusConflict, "dup", errors.New("duplicate row"))
	if withErr.Error() != "duplicate row" {
		t.Fatalf("expected the wrapped message, got %q", withErr.Error())
	}

	codeOnly := New(http.StatusConflict, "dup", nil)
	if codeOnly.Error() != "dup" {
		t.Fatalf("expected the code, got %q", codeOnly.Error())
	}
}
