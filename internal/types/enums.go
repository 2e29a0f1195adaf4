package types

// TrimMode selects which side of a string a trim expression strips.
type TrimMode int

// Trim modes. TrimUnspecified is the zero value and falls back to the
// platform's default (both sides).
const (
	TrimUnspecified TrimMode = iota
	TrimLeading
	TrimTrailing
	TrimBoth
)

// TimeKind selects the representation returned by a current-timestamp
// expression.
type TimeKind string

// Time representations. Unrecognized values fall back to the platform's UTC
// default.
const (
	TimeTimestamp TimeKind = "timestamp"
	TimeLocal     TimeKind = "local"
	TimeMillis    TimeKind = "millis"
)
