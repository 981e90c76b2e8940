package apperr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestKindSurvivesWrapping(t *testing.T) {
	base := Validationf("index %d out of range", 7)
	wrapped := fmt.Errorf("select video: %w", base)

	if got := KindOf(wrapped); got != KindValidation {
		t.Fatalf("expected validation kind, got %s", got)
	}
	if !Is(wrapped, KindValidation) {
		t.Fatalf("Is should report validation for wrapped error")
	}
	if Is(nil, KindValidation) {
		t.Fatalf("nil error should not match any kind")
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{errors.New("boom"), 1},
		{Validationf("bad"), 2},
		{Configf(nil, "missing"), 3},
		{Operation("ffmpeg failed", "", errors.New("exit status 1")), 4},
	}
	for _, tc := range cases {
		if got := ExitCode(tc.err); got != tc.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestOperationErrorCarriesDiagnostics(t *testing.T) {
	err := Operation("ffmpeg failed", "Invalid data found when processing input", errors.New("exit status 1"))
	msg := err.Error()
	if !strings.Contains(msg, "exit status 1") || !strings.Contains(msg, "Invalid data found") {
		t.Fatalf("unexpected message: %q", msg)
	}
	if !errors.Is(err, errors.Unwrap(err)) {
		t.Fatalf("unwrap should expose the cause")
	}
}
