package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK               Code = "OK"
	CodeCanceled         Code = "CANCELED"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeInvalidState     Code = "INVALID_STATE"
	CodeInternal         Code = "INTERNAL"
	CodeUnavailable      Code = "UNAVAILABLE"
	CodeUnauthenticated  Code = "UNAUTHENTICATED"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsClientVisible reports whether the message of an error with this code can be
// shown to API callers as-is.
func (c Code) IsClientVisible() bool {
	switch c {
	case CodeInternal, CodeUnavailable, CodeOK:
		return false
	default:
		return true
	}
}
