package render

import "fmt"

// UnsupportedOperationError indicates a translation the platform cannot
// express at all. Operation is a stable name callers and tests assert on.
type UnsupportedOperationError struct {
	Platform  string
	Operation string
	Detail    string
}

func (e UnsupportedOperationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Platform, e.Operation, e.Detail)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Platform, e.Operation)
}

// NewUnsupportedOperationError creates a new unsupported operation error.
func NewUnsupportedOperationError(platform, operation string, detail ...string) error {
	err := UnsupportedOperationError{Platform: platform, Operation: operation}
	if len(detail) > 0 {
		err.Detail = detail[0]
	}
	return err
}

// InvalidArgumentError indicates that an operation the platform does support
// was called with arguments violating its documented preconditions.
type InvalidArgumentError struct {
	Platform  string
	Operation string
	Reason    string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Platform, e.Operation, e.Reason)
}

// NewInvalidArgumentError creates a new invalid argument error.
func NewInvalidArgumentError(platform, operation, reason string) error {
	return InvalidArgumentError{Platform: platform, Operation: operation, Reason: reason}
}
