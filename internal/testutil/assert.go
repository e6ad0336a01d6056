// Package testutil provides shared assertion helpers for tests.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
func AssertEqual(t *testing.T, got, want interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// AssertError fails if err is nil when an error was expected.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("expected error but got nil")
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Errorf("assertion failed: %s", msg)
	}
}
