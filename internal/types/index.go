package types

// IndexDescriptor describes an index to be created or dropped. Columns keeps
// caller order. Predicate is already-rendered filter text for a partial
// index; platforms splice it verbatim.
// Flags carries storage/USING clauses requested for creation; platforms that
// have not implemented them must reject rather than ignore.
type IndexDescriptor struct {
	Name      string
	Table     string
	Predicate string
	Columns   []string
	Flags     []string
	Primary   bool
}

// GetName returns the index name.
func (i IndexDescriptor) GetName() string {
	return i.Name
}

// QuotedName returns the index name wrapped in the platform's quote
// characters.
func (i IndexDescriptor) QuotedName(q Quoter) string {
	return q.QuoteIdentifier(i.Name)
}

// IsPartial reports whether the index carries a filter predicate.
func (i IndexDescriptor) IsPartial() bool {
	return i.Predicate != ""
}
