package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	err := NotFound(PhaseExec, "function", "main")
	got := err.Error()
	if !strings.Contains(got, "[exec]") {
		t.Fatalf("missing phase in %q", got)
	}
	if !strings.Contains(got, "not_found") {
		t.Fatalf("missing kind in %q", got)
	}
	if !strings.Contains(got, `function "main" not found`) {
		t.Fatalf("missing detail in %q", got)
	}
}

func TestErrorCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Load("instantiate module", cause)

	if !strings.Contains(err.Error(), "caused by: boom") {
		t.Fatalf("cause not rendered: %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("errors.Is should match the cause")
	}
}

func TestErrorIs(t *testing.T) {
	err := AlreadyInitialized("current-thread lookup")

	if !stderrors.Is(err, &Error{Phase: PhaseInit, Kind: KindAlreadyInitialized}) {
		t.Fatal("expected phase+kind match")
	}
	if stderrors.Is(err, &Error{Phase: PhaseExec, Kind: KindAlreadyInitialized}) {
		t.Fatal("phase mismatch should not match")
	}
}
