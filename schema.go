package dialect

import (
	"fmt"

	"github.com/querial/dialect/internal/types"
	"github.com/zoobzio/dbml"
)

// Schema builds descriptors validated against a DBML project, so that
// misspelled tables and columns fail before any text is rendered.
type Schema struct {
	project *dbml.Project
	// Internal indexes for fast validation
	tables  map[string]*dbml.Table
	columns map[string]map[string]*dbml.Column // table -> column
}

// NewSchema creates a Schema from a DBML project.
func NewSchema(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Schema{
		project: project,
		tables:  make(map[string]*dbml.Table),
		columns: make(map[string]map[string]*dbml.Column),
	}

	// Build indexes for fast validation
	for _, table := range project.Tables {
		s.tables[table.Name] = table
		s.columns[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			s.columns[table.Name][col.Name] = col
		}
	}

	return s, nil
}

// validateTable checks if a table exists in the schema.
func (s *Schema) validateTable(name string) error {
	if _, ok := s.tables[name]; !ok {
		return fmt.Errorf("table '%s' not found in schema", name)
	}
	return nil
}

// validateColumn checks if a column exists on a table in the schema.
func (s *Schema) validateColumn(table, name string) error {
	cols, ok := s.columns[table]
	if !ok {
		return fmt.Errorf("table '%s' not found in schema", table)
	}
	if _, ok := cols[name]; !ok {
		return fmt.Errorf("column '%s' not found on table '%s'", name, table)
	}
	return nil
}

// TryT creates a validated table descriptor, returning an error if invalid.
func (s *Schema) TryT(name string) (Table, error) {
	if err := s.validateTable(name); err != nil {
		return Table{}, fmt.Errorf("invalid table: %w", err)
	}
	return types.Table{Name: name}, nil
}

// T creates a validated table descriptor.
func (s *Schema) T(name string) Table {
	t, err := s.TryT(name)
	if err != nil {
		panic(err)
	}
	return t
}

// TryCol creates a validated column descriptor, returning an error if
// invalid.
func (s *Schema) TryCol(table, name string) (Column, error) {
	if err := s.validateColumn(table, name); err != nil {
		return Column{}, fmt.Errorf("invalid column: %w", err)
	}
	return types.Column{Name: name}, nil
}

// Col creates a validated column descriptor.
func (s *Schema) Col(table, name string) Column {
	c, err := s.TryCol(table, name)
	if err != nil {
		panic(err)
	}
	return c
}

// TryIdx creates a validated secondary-index descriptor over the given
// columns, returning an error if the table or any column is unknown.
func (s *Schema) TryIdx(table, name string, columns ...string) (IndexDescriptor, error) {
	if err := s.validateTable(table); err != nil {
		return IndexDescriptor{}, fmt.Errorf("invalid index: %w", err)
	}
	if len(columns) == 0 {
		return IndexDescriptor{}, fmt.Errorf("invalid index: at least one column is required")
	}
	for _, col := range columns {
		if err := s.validateColumn(table, col); err != nil {
			return IndexDescriptor{}, fmt.Errorf("invalid index: %w", err)
		}
	}
	return types.IndexDescriptor{
		Name:    name,
		Table:   table,
		Columns: columns,
	}, nil
}

// Idx creates a validated secondary-index descriptor.
func (s *Schema) Idx(table, name string, columns ...string) IndexDescriptor {
	idx, err := s.TryIdx(table, name, columns...)
	if err != nil {
		panic(err)
	}
	return idx
}

// TryPrimaryIdx creates a validated primary-index descriptor. Primary
// indexes carry no columns.
func (s *Schema) TryPrimaryIdx(table, name string) (IndexDescriptor, error) {
	if err := s.validateTable(table); err != nil {
		return IndexDescriptor{}, fmt.Errorf("invalid index: %w", err)
	}
	return types.IndexDescriptor{
		Name:    name,
		Table:   table,
		Primary: true,
	}, nil
}

// PrimaryIdx creates a validated primary-index descriptor.
func (s *Schema) PrimaryIdx(table, name string) IndexDescriptor {
	idx, err := s.TryPrimaryIdx(table, name)
	if err != nil {
		panic(err)
	}
	return idx
}
