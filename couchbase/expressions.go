package couchbase

import (
	"fmt"
	"strings"

	"github.com/querial/dialect/internal/render"
	"github.com/querial/dialect/internal/types"
)

// RegexpExpression renders a regular-expression match over two fragments.
func (p *Platform) RegexpExpression(subject, pattern string) (string, error) {
	return fmt.Sprintf("REGEXP_LIKE(%s, %s)", subject, pattern), nil
}

// GUIDExpression renders the UUID generation call. The call text is
// returned, never a generated value.
func (p *Platform) GUIDExpression() (string, error) {
	return "UUID()", nil
}

// TrimExpression renders a trim call selected by mode. The comma and space
// placement is a literal contract with the engine; the optional trim
// character rides in a second comma slot.
func (p *Platform) TrimExpression(expr string, mode types.TrimMode, trimChar string) (string, error) {
	fn := "TRIM"
	switch mode {
	case types.TrimLeading:
		fn = "LTRIM"
	case types.TrimTrailing:
		fn = "RTRIM"
	}
	tail := ""
	if trimChar != "" {
		tail = ", " + trimChar
	}
	return fn + "(" + expr + ", " + tail + ")", nil
}

// LocateExpression renders a substring position call. N1QL's POSITION takes
// no start offset, so a non-zero start cannot be translated.
func (p *Platform) LocateExpression(expr, substr string, start int) (string, error) {
	if start != 0 {
		return "", p.unsupported("locate expression", "start offset argument")
	}
	return fmt.Sprintf("POSITION(%s, %s)", expr, substr), nil
}

// NowExpression renders a current-timestamp call for the requested
// representation. Unrecognized kinds fall back to UTC.
func (p *Platform) NowExpression(kind types.TimeKind) (string, error) {
	switch kind {
	case types.TimeTimestamp:
		return "NOW_TZ()", nil
	case types.TimeLocal:
		return "NOW_LOCAL()", nil
	case types.TimeMillis:
		return "NOW_MILLIS()", nil
	default:
		return "NOW_UTC()", nil
	}
}

// SubstringExpression renders a substring call; length is optional and an
// empty fragment omits the third argument.
func (p *Platform) SubstringExpression(expr, start, length string) (string, error) {
	if length == "" {
		return fmt.Sprintf("SUBSTR(%s, %s)", expr, start), nil
	}
	return fmt.Sprintf("SUBSTR(%s, %s, %s)", expr, start, length), nil
}

// NotExpression is not representable in N1QL at the expression level.
func (p *Platform) NotExpression(expr string) (string, error) {
	return "", p.unsupported("not expression")
}

// DateDiffExpression delegates to the configured date differ.
func (p *Platform) DateDiffExpression(date1, date2 types.DateValue) (string, error) {
	return p.dateDiff.DateDiffExpression(date1, date2)
}

// tagDateDiff is the default date differ. It resolves the millisecond vs
// formatted-string split through the DateValue tag.
type tagDateDiff struct{}

func (tagDateDiff) DateDiffExpression(date1, date2 types.DateValue) (string, error) {
	if date1.Kind() != date2.Kind() {
		return "", render.NewInvalidArgumentError(PlatformName, "date diff expression",
			"mixed millisecond and formatted date arguments")
	}
	if date1.Kind() == types.DateMillis {
		return fmt.Sprintf("DATE_DIFF_MILLIS(%s, %s, 'day')", date1.Raw(), date2.Raw()), nil
	}
	return fmt.Sprintf("DATE_DIFF_STR(\"%s\", \"%s\", 'day')", date1.Raw(), date2.Raw()), nil
}

// DateArithmeticExpression renders interval arithmetic over a date. The
// leading comma is part of the fragment contract: callers splice the result
// directly after the preceding argument of an enclosing call. Millisecond
// dates use DATE_ADD_MILLIS and are spliced bare; formatted dates use
// DATE_ADD_STR and are double-quoted.
func (p *Platform) DateArithmeticExpression(date types.DateValue, op types.DateOp, interval int64, unit types.IntervalUnit) (string, error) {
	if op == types.DateSub {
		interval = -interval
	}
	u := strings.ToLower(string(unit))
	if date.Kind() == types.DateMillis {
		return fmt.Sprintf(",DATE_ADD_MILLIS(%s,%d%s)", date.Raw(), interval, u), nil
	}
	return fmt.Sprintf(",DATE_ADD_STR(\"%s\",%d%s)", date.Raw(), interval, u), nil
}

// BitAndExpression renders a bitwise AND call.
func (p *Platform) BitAndExpression(left, right string) (string, error) {
	return fmt.Sprintf("BITAND(%s, %s)", left, right), nil
}

// BitOrExpression renders a bitwise OR call.
func (p *Platform) BitOrExpression(left, right string) (string, error) {
	return fmt.Sprintf("BITOR(%s, %s)", left, right), nil
}

// IsMissingExpression renders the schemaless absent-field check.
func (p *Platform) IsMissingExpression(expr string) (string, error) {
	return expr + " IS MISSING", nil
}

// IsNotMissingExpression renders the schemaless present-field check.
func (p *Platform) IsNotMissingExpression(expr string) (string, error) {
	return expr + " IS NOT MISSING", nil
}

// MD5Expression is not representable in N1QL.
func (p *Platform) MD5Expression(expr string) (string, error) {
	return "", p.unsupported("md5 expression")
}

// ModExpression is not representable in N1QL.
func (p *Platform) ModExpression(dividend, divisor string) (string, error) {
	return "", p.unsupported("modulo expression")
}
