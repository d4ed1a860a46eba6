package topo

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorPredicates(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{NewInvalidArgument("bad"), ErrCodeInvalidArgument},
		{NewInvalidHandle("vertex", 7), ErrCodeInvalidArgument},
		{NewNotFound("edge", 3), ErrCodeNotFound},
		{NewInconsistent("broken", "face", 2), ErrCodeInconsistent},
		{NewCorrupted("walk ran away", "vertex", 1, 12), ErrCodeCorrupted},
	}
	for _, c := range cases {
		if got := IsInvalidArgument(c.err); got != (c.code == ErrCodeInvalidArgument) {
			t.Errorf("IsInvalidArgument(%v) = %v", c.err, got)
		}
		if got := IsNotFound(c.err); got != (c.code == ErrCodeNotFound) {
			t.Errorf("IsNotFound(%v) = %v", c.err, got)
		}
		if got := IsInconsistent(c.err); got != (c.code == ErrCodeInconsistent) {
			t.Errorf("IsInconsistent(%v) = %v", c.err, got)
		}
		if got := IsCorrupted(c.err); got != (c.code == ErrCodeCorrupted) {
			t.Errorf("IsCorrupted(%v) = %v", c.err, got)
		}
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("build plane: %w", NewInvalidArgument("too few vertices"))
	if !IsInvalidArgument(err) {
		t.Errorf("wrapped error not recognized: %v", err)
	}
	if IsInvalidArgument(errors.New("plain")) {
		t.Error("plain error misclassified as Invalid-Argument")
	}
	if IsNotFound(nil) {
		t.Error("nil misclassified as Not-Found")
	}
}

func TestErrorStringCarriesCodeAndSubject(t *testing.T) {
	err := NewNotFound("edge", 42)
	s := err.Error()
	if !strings.Contains(s, string(ErrCodeNotFound)) {
		t.Errorf("error string %q does not carry the code", s)
	}
	if !strings.Contains(s, "edge") || !strings.Contains(s, "42") {
		t.Errorf("error string %q does not name the subject", s)
	}
}
