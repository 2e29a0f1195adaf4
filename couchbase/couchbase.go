// Package couchbase provides the Couchbase N1QL dialect platform.
//
// Couchbase stores schemaless documents: there is no column-type DDL, no
// transactions at the query-text level, and no locking surface. The platform
// renders the index and expression syntax N1QL does have, and rejects
// everything else with a typed error instead of emitting wrong text.
package couchbase

import (
	"github.com/querial/dialect"
	"github.com/querial/dialect/internal/render"
)

// PlatformName is the stable registry key for this platform.
const PlatformName = "couchbase"

// iso8601Format is the single temporal layout Couchbase stores and compares
// dates in. All four format operations return it.
const iso8601Format = "2006-01-02T15:04:05.999Z07:00"

// DateDiffer renders a date difference expression. The generic translation
// layer may supply its own; errors from it propagate unchanged.
type DateDiffer interface {
	DateDiffExpression(date1, date2 dialect.DateValue) (string, error)
}

// Platform implements the Couchbase N1QL dialect. It is stateless and safe
// for concurrent use.
type Platform struct {
	dateDiff DateDiffer
}

// Option configures a Platform.
type Option func(*Platform)

// WithDateDiffer overrides the date-difference delegate.
func WithDateDiffer(d DateDiffer) Option {
	return func(p *Platform) {
		p.dateDiff = d
	}
}

// New creates a new Couchbase platform.
func New(opts ...Option) *Platform {
	p := &Platform{dateDiff: tagDateDiff{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func init() {
	dialect.Register(New())
}

var _ dialect.Platform = (*Platform)(nil)

// Name returns the fixed platform name.
func (p *Platform) Name() string {
	return PlatformName
}

// Capabilities reports the fixed feature set of the backend: secondary and
// partial indexing only.
func (p *Platform) Capabilities() dialect.Capabilities {
	return dialect.Capabilities{
		Transactions:          false,
		Savepoints:            false,
		ForeignKeys:           false,
		AlterTable:            false,
		PrimaryKeyConstraints: false,
		InlineColumnComments:  false,
		CreateDropDatabase:    false,
		AffectedRows:          false,
		PartialIndexes:        true,
	}
}

// QuoteCharacter returns the identifier quote character.
func (p *Platform) QuoteCharacter() string {
	return "`"
}

// QuoteIdentifier wraps a raw identifier in backticks.
func (p *Platform) QuoteIdentifier(name string) string {
	return "`" + name + "`"
}

// CommentStart returns the inline comment start marker.
func (p *Platform) CommentStart() string {
	return "/*"
}

// CommentEnd returns the inline comment end marker.
func (p *Platform) CommentEnd() string {
	return "*/"
}

// InlineComment wraps text in the platform's comment markers.
func (p *Platform) InlineComment(comment string) string {
	return p.CommentStart() + " " + comment + " " + p.CommentEnd()
}

// DateFormat returns the layout for date values.
func (p *Platform) DateFormat() string {
	return iso8601Format
}

// TimeFormat returns the layout for time values.
func (p *Platform) TimeFormat() string {
	return iso8601Format
}

// DateTimeFormat returns the layout for datetime values.
func (p *Platform) DateTimeFormat() string {
	return iso8601Format
}

// DateTimeTzFormat returns the layout for timezone-aware datetime values.
func (p *Platform) DateTimeTzFormat() string {
	return iso8601Format
}

// unsupported builds the platform's unsupported-operation error.
func (p *Platform) unsupported(operation string, detail ...string) error {
	return render.NewUnsupportedOperationError(PlatformName, operation, detail...)
}

// invalidArgument builds the platform's invalid-argument error.
func (p *Platform) invalidArgument(operation, reason string) error {
	return render.NewInvalidArgumentError(PlatformName, operation, reason)
}
