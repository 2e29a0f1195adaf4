// Package dialect defines the contract between a generic schema/query layer
// and backend-specific dialect platforms, plus a registry to select a
// platform by name.
//
// A Platform is a pure mapping from (operation, typed arguments) to literal
// query text. Platforms hold no state, perform no I/O, and are safe for
// concurrent use. Operations a backend cannot express fail loudly with an
// UnsupportedOperationError instead of emitting wrong text.
//
// # Basic Usage
//
// Importing a platform package registers it; the registry hands it back by
// its stable name:
//
//	import (
//		"github.com/querial/dialect"
//		_ "github.com/querial/dialect/couchbase"
//	)
//
//	p, ok := dialect.Get("couchbase")
//	sql, err := p.CreateIndexSQL(idx, p.QuoteIdentifier("travel"))
//
// # Schema-Validated Usage
//
// Descriptors can be built against a DBML schema so that unknown tables and
// columns are rejected before any text is rendered:
//
//	schema, err := dialect.NewSchema(project)
//	idx := schema.Idx("travel", "idx_city", "city")
//
// # Error Taxonomy
//
// UnsupportedOperationError: the operation has no representation in the
// dialect. InvalidArgumentError: the operation is valid but the arguments
// violate its preconditions. Both are matched with errors.As.
package dialect

import (
	"strconv"

	"github.com/querial/dialect/internal/render"
	"github.com/querial/dialect/internal/types"
)

// Capabilities describes the schema and transaction features a platform
// supports.
type Capabilities = render.Capabilities

// UnsupportedOperationError indicates a translation the platform cannot
// express at all.
type UnsupportedOperationError = render.UnsupportedOperationError

// InvalidArgumentError indicates arguments violating an operation's
// documented preconditions.
type InvalidArgumentError = render.InvalidArgumentError

// Quoter wraps a raw identifier in a platform's quote characters.
type Quoter = types.Quoter

// Identifier represents a named schema asset.
type Identifier = types.Identifier

// Table represents a validated table reference.
type Table = types.Table

// Column represents a validated column reference.
type Column = types.Column

// TypeDescriptor carries the declared properties of a column type.
type TypeDescriptor = types.TypeDescriptor

// IndexDescriptor describes an index to be created or dropped.
type IndexDescriptor = types.IndexDescriptor

// TrimMode selects which side of a string a trim expression strips.
type TrimMode = types.TrimMode

// Re-export trim mode constants for the public API.
const (
	TrimUnspecified = types.TrimUnspecified
	TrimLeading     = types.TrimLeading
	TrimTrailing    = types.TrimTrailing
	TrimBoth        = types.TrimBoth
)

// TimeKind selects the representation returned by a current-timestamp
// expression.
type TimeKind = types.TimeKind

// Re-export time kind constants for the public API.
const (
	TimeTimestamp = types.TimeTimestamp
	TimeLocal     = types.TimeLocal
	TimeMillis    = types.TimeMillis
)

// DateOp selects the direction of a date arithmetic expression.
type DateOp = types.DateOp

// Re-export date operation constants for the public API.
const (
	DateAdd = types.DateAdd
	DateSub = types.DateSub
)

// IntervalUnit names the unit of a date interval.
type IntervalUnit = types.IntervalUnit

// Re-export interval unit constants for the public API.
const (
	UnitMillisecond = types.UnitMillisecond
	UnitSecond      = types.UnitSecond
	UnitMinute      = types.UnitMinute
	UnitHour        = types.UnitHour
	UnitDay         = types.UnitDay
	UnitWeek        = types.UnitWeek
	UnitMonth       = types.UnitMonth
	UnitQuarter     = types.UnitQuarter
	UnitYear        = types.UnitYear
)

// DateValue is a tagged date argument: an absolute millisecond count or a
// formatted date string.
type DateValue = types.DateValue

// DateValueKind tags the representation a DateValue carries.
type DateValueKind = types.DateValueKind

// Re-export date value kind constants for the public API.
const (
	DateMillis    = types.DateMillis
	DateFormatted = types.DateFormatted
)

// Millis builds a DateValue carrying an absolute millisecond count.
func Millis(ms int64) DateValue {
	return types.NewDateValue(types.DateMillis, strconv.FormatInt(ms, 10))
}

// FormattedDate builds a DateValue carrying an already-formatted date string.
func FormattedDate(s string) DateValue {
	return types.NewDateValue(types.DateFormatted, s)
}

// ClassifyDate tags a raw date literal for callers migrating off untyped
// arguments: strings composed entirely of decimal digits are treated as
// millisecond counts, anything else as a formatted date. The literal is
// preserved unchanged either way.
func ClassifyDate(raw string) DateValue {
	if isDigits(raw) {
		return types.NewDateValue(types.DateMillis, raw)
	}
	return types.NewDateValue(types.DateFormatted, raw)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
