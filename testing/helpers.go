// Package testing provides test utilities for dialect.
package testing

import (
	"errors"
	"strings"
	"testing"

	"github.com/querial/dialect"
	"github.com/zoobzio/dbml"
)

// TestSchema creates a fully-featured Schema for testing. Includes travel,
// users, and orders tables.
func TestSchema(t *testing.T) *dialect.Schema {
	t.Helper()

	project := dbml.NewProject("test")

	// Travel keyspace
	travel := dbml.NewTable("travel")
	travel.AddColumn(dbml.NewColumn("id", "varchar"))
	travel.AddColumn(dbml.NewColumn("city", "varchar"))
	travel.AddColumn(dbml.NewColumn("country", "varchar"))
	travel.AddColumn(dbml.NewColumn("airline", "varchar"))
	travel.AddColumn(dbml.NewColumn("departure_millis", "bigint"))
	project.AddTable(travel)

	// Users keyspace
	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "varchar"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(users)

	// Orders keyspace
	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "varchar"))
	orders.AddColumn(dbml.NewColumn("user_id", "varchar"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	orders.AddColumn(dbml.NewColumn("status", "varchar"))
	project.AddTable(orders)

	schema, err := dialect.NewSchema(project)
	if err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}
	return schema
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertUnsupported checks that err is an UnsupportedOperationError for the
// given operation.
func AssertUnsupported(t *testing.T, err error, operation string) {
	t.Helper()
	var uoErr dialect.UnsupportedOperationError
	if !errors.As(err, &uoErr) {
		t.Fatalf("Expected UnsupportedOperationError, got: %v", err)
	}
	if uoErr.Operation != operation {
		t.Errorf("Expected operation %q, got %q", operation, uoErr.Operation)
	}
}

// AssertPanics verifies that a function panics.
func AssertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic but function completed normally")
		}
	}()
	fn()
}

// AssertPanicsWithMessage verifies that a function panics with a specific message.
func AssertPanicsWithMessage(t *testing.T, fn func(), substr string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("Expected panic containing %q but function completed normally", substr)
			return
		}
		var msg string
		switch v := r.(type) {
		case error:
			msg = v.Error()
		case string:
			msg = v
		default:
			t.Errorf("Panic value is not string or error: %T", r)
			return
		}
		if !strings.Contains(msg, substr) {
			t.Errorf("Expected panic containing %q, got: %s", substr, msg)
		}
	}()
	fn()
}
