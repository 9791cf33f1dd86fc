package defcore

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatErrorUnwrap(t *testing.T) {
	err := &FormatError{Input: "bad input", Err: ErrMissingSeparator}

	if !errors.Is(err, ErrMissingSeparator) {
		t.Error("errors.Is(err, ErrMissingSeparator) = false")
	}
	if errors.Is(err, ErrUnknownCategory) {
		t.Error("errors.Is(err, ErrUnknownCategory) = true for a separator error")
	}
	if unwrapped := errors.Unwrap(err); unwrapped != ErrMissingSeparator {
		t.Errorf("Unwrap() = %v, want ErrMissingSeparator", unwrapped)
	}
}

func TestFormatErrorMessage(t *testing.T) {
	err := &FormatError{Input: "Ore", Err: ErrMissingSeparator}

	msg := err.Error()
	if !strings.Contains(msg, `"Ore"`) {
		t.Errorf("Error() = %q, want the offending input quoted", msg)
	}
	if !strings.Contains(msg, ErrMissingSeparator.Error()) {
		t.Errorf("Error() = %q, want the cause included", msg)
	}
}
