package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	e := New("A secret message")
	got := e.Error()
	want := "A secret message"
	if got != want {
		t.Errorf("Received: %v, Expected: %v", got, want)
	}
}

func TestErr_Error(t *testing.T) {
	e := ErrToolExec("genhtml", errors.New("exit status 1"))
	got := e.Error()
	want := "ERR::TOOL::EXEC : genhtml failed: exit status 1 "
	if got != want {
		t.Errorf("Received: %v, Expected: %v", got, want)
	}
}

func TestStatusFailed(t *testing.T) {
	var err error = &StatusFailed{Remark: "The code coverage is too low: 75. Expected at least 80."}
	wrapped := fmt.Errorf("run: %w", err)

	var sf *StatusFailed
	if !errors.As(wrapped, &sf) {
		t.Fatalf("expected StatusFailed in chain, got %v", wrapped)
	}
	if sf.Remark != err.Error() {
		t.Errorf("Received: %v, Expected: %v", sf.Remark, err.Error())
	}
}

func TestSentinelsWrap(t *testing.T) {
	err := fmt.Errorf("lcov --list: %w", ErrUnexpectedToolOutput)
	if !errors.Is(err, ErrUnexpectedToolOutput) {
		t.Errorf("expected errors.Is to match ErrUnexpectedToolOutput")
	}
}
