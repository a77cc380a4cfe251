package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := New("L001", CategoryHost, "something failed")
	if got, want := err.Error(), "[L001] something failed"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapIncludesCause(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := Wrap(cause, "L002", CategoryConfig, "cannot load")

	if got, want := err.Error(), "[L002] cannot load: disk on fire"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is does not find the wrapped cause")
	}
}

func TestWithDetail(t *testing.T) {
	err := New("L003", CategoryProtocol, "bad frame").WithDetail("node field missing")
	if err.Detail != "node field missing" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestErrorAs(t *testing.T) {
	var err error = Wrap(fmt.Errorf("x"), "L004", CategoryHost, "boom")

	var e *Error
	if !stderrors.As(err, &e) {
		t.Fatal("errors.As failed")
	}
	if e.Code != "L004" || e.Category != CategoryHost {
		t.Errorf("Code, Category = %q, %q; want L004, host", e.Code, e.Category)
	}
}
