package types

// DateOp selects the direction of a date arithmetic expression.
type DateOp string

// Date arithmetic directions.
const (
	DateAdd DateOp = "+"
	DateSub DateOp = "-"
)

// IntervalUnit names the unit of a date interval (day, month, year, ...).
// Platforms normalize the case themselves.
type IntervalUnit string

// Common interval units.
const (
	UnitMillisecond IntervalUnit = "millisecond"
	UnitSecond      IntervalUnit = "second"
	UnitMinute      IntervalUnit = "minute"
	UnitHour        IntervalUnit = "hour"
	UnitDay         IntervalUnit = "day"
	UnitWeek        IntervalUnit = "week"
	UnitMonth       IntervalUnit = "month"
	UnitQuarter     IntervalUnit = "quarter"
	UnitYear        IntervalUnit = "year"
)

// DateValueKind tags the representation a DateValue carries.
type DateValueKind int

// Date representations.
const (
	// DateMillis is an absolute millisecond count.
	DateMillis DateValueKind = iota
	// DateFormatted is an already-formatted date string.
	DateFormatted
)

// DateValue is a tagged date argument: either an absolute millisecond count
// or a formatted date string. The tag is supplied by the caller, so platforms
// never have to sniff the representation out of the raw text. The original
// literal is preserved and spliced into expressions unchanged.
type DateValue struct {
	raw  string
	kind DateValueKind
}

// NewDateValue builds a DateValue from an explicit kind and literal.
func NewDateValue(kind DateValueKind, raw string) DateValue {
	return DateValue{raw: raw, kind: kind}
}

// Kind returns the representation tag.
func (v DateValue) Kind() DateValueKind {
	return v.kind
}

// Raw returns the original literal.
func (v DateValue) Raw() string {
	return v.raw
}
