package types

// TypeDescriptor carries the declared properties of a column type. Platforms
// read from it when rendering type-declaration clauses; a schemaless platform
// may reject every declaration regardless of contents.
type TypeDescriptor struct {
	Default   string
	Length    int
	Precision int
	Scale     int
	NotNull   bool
	Fixed     bool
	Unsigned  bool
}

// Table represents a validated table reference.
type Table struct {
	Name string
}

// GetName returns the table name.
func (t Table) GetName() string {
	return t.Name
}

// QuotedName returns the table name wrapped in the platform's quote
// characters.
func (t Table) QuotedName(q Quoter) string {
	return q.QuoteIdentifier(t.Name)
}

// Column represents a validated column reference.
type Column struct {
	Name string
}

// GetName returns the column name.
func (c Column) GetName() string {
	return c.Name
}

// QuotedName returns the column name wrapped in the platform's quote
// characters.
func (c Column) QuotedName(q Quoter) string {
	return q.QuoteIdentifier(c.Name)
}
