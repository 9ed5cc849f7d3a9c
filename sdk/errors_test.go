package bonsai

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFoundMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "missing entity message",
			err:      &APIError{StatusCode: 400, Message: "assessment a1 not found in workspace"},
			expected: true,
		},
		{
			name:     "match is case sensitive",
			err:      &APIError{StatusCode: 400, Message: "assessment a1 Not Found"},
			expected: false,
		},
		{
			name:     "unrelated message",
			err:      &APIError{StatusCode: 400, Message: "bad request"},
			expected: false,
		},
		{
			name:     "wrapped server error",
			err:      fmt.Errorf("request failed: %w", &APIError{StatusCode: 400, Message: "brain b not found"}),
			expected: true,
		},
		{
			name:     "non-server error",
			err:      errors.New("assessment not found"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundMessage(tt.err); got != tt.expected {
				t.Errorf("IsNotFoundMessage = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestIsConflictMessage(t *testing.T) {
	conflict := &APIError{StatusCode: 400, Message: "Unique index constraint violation on name"}
	if !IsConflictMessage(conflict) {
		t.Error("expected conflict match")
	}
	if IsConflictMessage(&APIError{StatusCode: 400, Message: "unique index constraint violation"}) {
		t.Error("expected case-sensitive match to fail")
	}
	if IsConflictMessage(errors.New("Unique index constraint violation")) {
		t.Error("expected non-server error to fail")
	}
}

func TestIsStatusNotFound(t *testing.T) {
	if !IsStatusNotFound(&APIError{StatusCode: 404, Message: "gone"}) {
		t.Error("expected 404 match")
	}
	if IsStatusNotFound(&APIError{StatusCode: 400, Message: "not found"}) {
		t.Error("expected 400 to fail regardless of message")
	}
	if IsStatusNotFound(errors.New("404")) {
		t.Error("expected plain error to fail")
	}
}

func TestNotFoundErrorUnwrap(t *testing.T) {
	inner := &APIError{StatusCode: 400, Message: "assessment a1 not found"}
	err := &NotFoundError{Kind: "Assessment", Name: "a1", Err: inner}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatal("expected unwrap to reach the server error")
	}
	if apiErr != inner {
		t.Error("expected the original server error")
	}
}

func TestErrorStrings(t *testing.T) {
	apiErr := &APIError{StatusCode: 500, Message: "boom", RequestID: "req-1"}
	if apiErr.Error() != "brain server error (status 500, request_id: req-1): boom" {
		t.Errorf("unexpected error string: %s", apiErr.Error())
	}

	notFound := &NotFoundError{Kind: "Simulator package", Name: "sim", Err: errors.New("gone")}
	if notFound.Error() != "Simulator package 'sim' not found: gone" {
		t.Errorf("unexpected error string: %s", notFound.Error())
	}

	valErr := &ValidationError{Field: "brain-name", Message: "required"}
	if valErr.Error() != "validation error on 'brain-name': required" {
		t.Errorf("unexpected error string: %s", valErr.Error())
	}
}
