package types

// Quoter wraps a raw identifier in a platform's quote characters.
// Implemented by every platform; descriptors call back into it so the
// platform stays the single owner of the quoting rule.
type Quoter interface {
	QuoteIdentifier(name string) string
}

// Identifier represents a named schema asset (table, column, index,
// constraint). It carries the raw name; the quoted form is always derived
// through a Quoter, never stored.
// This is exported from the internal package so platform packages can use it,
// but external users import the alias from the root package.
type Identifier struct {
	Name string
}

// GetName returns the raw identifier name.
func (i Identifier) GetName() string {
	return i.Name
}

// QuotedName returns the identifier wrapped in the platform's quote
// characters.
func (i Identifier) QuotedName(q Quoter) string {
	return q.QuoteIdentifier(i.Name)
}
