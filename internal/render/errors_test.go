package render

import (
	"errors"
	"testing"
)

func TestUnsupportedOperationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      UnsupportedOperationError
		expected string
	}{
		{
			name: "without detail",
			err: UnsupportedOperationError{
				Platform:  "couchbase",
				Operation: "not expression",
			},
			expected: "couchbase: not expression is not supported",
		},
		{
			name: "with detail",
			err: UnsupportedOperationError{
				Platform:  "couchbase",
				Operation: "locate expression",
				Detail:    "start offset argument",
			},
			expected: "couchbase: locate expression is not supported: start offset argument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewUnsupportedOperationError(t *testing.T) {
	t.Run("without detail", func(t *testing.T) {
		err := NewUnsupportedOperationError("couchbase", "md5 expression")
		var uoErr UnsupportedOperationError
		if !errors.As(err, &uoErr) {
			t.Fatal("expected UnsupportedOperationError")
		}
		if uoErr.Platform != "couchbase" {
			t.Errorf("Platform = %q, want %q", uoErr.Platform, "couchbase")
		}
		if uoErr.Operation != "md5 expression" {
			t.Errorf("Operation = %q, want %q", uoErr.Operation, "md5 expression")
		}
		if uoErr.Detail != "" {
			t.Errorf("Detail = %q, want empty", uoErr.Detail)
		}
	})

	t.Run("with detail", func(t *testing.T) {
		err := NewUnsupportedOperationError("couchbase", "create index", "index flags")
		var uoErr UnsupportedOperationError
		if !errors.As(err, &uoErr) {
			t.Fatal("expected UnsupportedOperationError")
		}
		if uoErr.Detail != "index flags" {
			t.Errorf("Detail = %q, want %q", uoErr.Detail, "index flags")
		}
	})
}

func TestInvalidArgumentError_Error(t *testing.T) {
	err := InvalidArgumentError{
		Platform:  "couchbase",
		Operation: "drop index",
		Reason:    "owning table is required",
	}
	expected := "couchbase: drop index: owning table is required"
	if got := err.Error(); got != expected {
		t.Errorf("Error() = %q, want %q", got, expected)
	}
}

func TestNewInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgumentError("couchbase", "create index", "primary index cannot declare columns")
	var iaErr InvalidArgumentError
	if !errors.As(err, &iaErr) {
		t.Fatal("expected InvalidArgumentError")
	}
	if iaErr.Operation != "create index" {
		t.Errorf("Operation = %q, want %q", iaErr.Operation, "create index")
	}
	if iaErr.Reason != "primary index cannot declare columns" {
		t.Errorf("Reason = %q, want %q", iaErr.Reason, "primary index cannot declare columns")
	}
}
