package app

import (
	"errors"
	"testing"
)

func TestInitError(t *testing.T) {
	cause := errors.New("boom")
	err := &InitError{Component: "config", Err: cause}

	if err.Error() != "init config: boom" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected InitError to unwrap to its cause")
	}
}

func TestOperationError(t *testing.T) {
	cause := errors.New("denied")

	tests := []struct {
		err  *OperationError
		want string
	}{
		{NewOperationError("open", "/a.txt", cause), "open /a.txt: denied"},
		{NewOperationError("open", "", cause), "open: denied"},
		{NewOperationError("open", "/a.txt", nil), "open /a.txt"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}

	if !errors.Is(NewOperationError("open", "x", cause), cause) {
		t.Error("expected OperationError to unwrap to its cause")
	}

	var nilErr *OperationError
	if nilErr.Error() != "" || nilErr.Unwrap() != nil {
		t.Error("nil OperationError should be empty")
	}
}

func TestErrorList(t *testing.T) {
	var list ErrorList
	if list.AsError() != nil {
		t.Error("empty list should not be an error")
	}

	first := errors.New("first")
	list.Add(nil)
	list.Add(first)
	if list.Len() != 1 || list.Error() != "first" {
		t.Errorf("unexpected list %d %q", list.Len(), list.Error())
	}

	list.Add(errors.New("second"))
	if list.Error() != "2 errors: first: first" {
		t.Errorf("unexpected message %q", list.Error())
	}
	if !errors.Is(list.AsError(), first) {
		t.Error("expected errors.Is to find a collected error")
	}
}
