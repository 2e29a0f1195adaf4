package dialect_test

import (
	"testing"

	"github.com/querial/dialect"
	"github.com/zoobzio/dbml"
)

func createTestSchema(t *testing.T) *dialect.Schema {
	t.Helper()

	project := dbml.NewProject("test_db")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	project.AddTable(users)

	travel := dbml.NewTable("travel")
	travel.AddColumn(dbml.NewColumn("city", "varchar"))
	travel.AddColumn(dbml.NewColumn("country", "varchar"))
	project.AddTable(travel)

	schema, err := dialect.NewSchema(project)
	if err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	return schema
}

func TestNewSchema(t *testing.T) {
	project := dbml.NewProject("test")
	table := dbml.NewTable("users")
	table.AddColumn(dbml.NewColumn("id", "bigint"))
	project.AddTable(table)

	schema, err := dialect.NewSchema(project)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if schema == nil {
		t.Fatal("Expected schema, got nil")
	}
}

func TestNewSchema_NilProject(t *testing.T) {
	_, err := dialect.NewSchema(nil)
	if err == nil {
		t.Fatal("Expected error for nil project")
	}
}

func TestTryT_ValidTable(t *testing.T) {
	schema := createTestSchema(t)

	table, err := schema.TryT("users")
	if err != nil {
		t.Fatalf("Expected no error for valid table, got: %v", err)
	}
	if table.Name != "users" {
		t.Errorf("Expected table name 'users', got '%s'", table.Name)
	}
}

func TestTryT_InvalidTable(t *testing.T) {
	schema := createTestSchema(t)

	_, err := schema.TryT("nonexistent")
	if err == nil {
		t.Fatal("Expected error for invalid table")
	}
}

func TestT_InvalidTable_Panics(t *testing.T) {
	schema := createTestSchema(t)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for invalid table")
		}
	}()

	schema.T("nonexistent")
}

func TestTryCol_ValidColumn(t *testing.T) {
	schema := createTestSchema(t)

	col, err := schema.TryCol("users", "username")
	if err != nil {
		t.Fatalf("Expected no error for valid column, got: %v", err)
	}
	if col.Name != "username" {
		t.Errorf("Expected column name 'username', got '%s'", col.Name)
	}
}

func TestTryCol_InvalidColumn(t *testing.T) {
	schema := createTestSchema(t)

	_, err := schema.TryCol("users", "nonexistent")
	if err == nil {
		t.Fatal("Expected error for invalid column")
	}
}

func TestTryCol_InvalidTable(t *testing.T) {
	schema := createTestSchema(t)

	_, err := schema.TryCol("nonexistent", "id")
	if err == nil {
		t.Fatal("Expected error for unknown table")
	}
}

func TestCol_InvalidColumn_Panics(t *testing.T) {
	schema := createTestSchema(t)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for invalid column")
		}
	}()

	schema.Col("users", "nonexistent")
}

func TestTryIdx_Valid(t *testing.T) {
	schema := createTestSchema(t)

	idx, err := schema.TryIdx("travel", "idx_city", "city", "country")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if idx.Name != "idx_city" {
		t.Errorf("Expected index name 'idx_city', got '%s'", idx.Name)
	}
	if idx.Table != "travel" {
		t.Errorf("Expected table 'travel', got '%s'", idx.Table)
	}
	if len(idx.Columns) != 2 {
		t.Errorf("Expected 2 columns, got %d", len(idx.Columns))
	}
	if idx.Primary {
		t.Error("Expected secondary index, got primary")
	}
}

func TestTryIdx_NoColumns(t *testing.T) {
	schema := createTestSchema(t)

	_, err := schema.TryIdx("travel", "idx_empty")
	if err == nil {
		t.Fatal("Expected error for index without columns")
	}
}

func TestTryIdx_UnknownColumn(t *testing.T) {
	schema := createTestSchema(t)

	_, err := schema.TryIdx("travel", "idx_bad", "city", "nonexistent")
	if err == nil {
		t.Fatal("Expected error for unknown column")
	}
}

func TestTryIdx_UnknownTable(t *testing.T) {
	schema := createTestSchema(t)

	_, err := schema.TryIdx("nonexistent", "idx", "city")
	if err == nil {
		t.Fatal("Expected error for unknown table")
	}
}

func TestIdx_Invalid_Panics(t *testing.T) {
	schema := createTestSchema(t)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for invalid index")
		}
	}()

	schema.Idx("travel", "idx_bad", "nonexistent")
}

func TestTryPrimaryIdx(t *testing.T) {
	schema := createTestSchema(t)

	idx, err := schema.TryPrimaryIdx("travel", "#primary")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !idx.Primary {
		t.Error("Expected primary index")
	}
	if len(idx.Columns) != 0 {
		t.Errorf("Expected no columns on primary index, got %v", idx.Columns)
	}
}

func TestTryPrimaryIdx_UnknownTable(t *testing.T) {
	schema := createTestSchema(t)

	_, err := schema.TryPrimaryIdx("nonexistent", "#primary")
	if err == nil {
		t.Fatal("Expected error for unknown table")
	}
}

func TestPrimaryIdx_Invalid_Panics(t *testing.T) {
	schema := createTestSchema(t)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for unknown table")
		}
	}()

	schema.PrimaryIdx("nonexistent", "#primary")
}
