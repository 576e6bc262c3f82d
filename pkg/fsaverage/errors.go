package fsaverage

// Error kinds reported by Load. Match them with errors.Is.
var (
	ErrNotFound          = &Error{Code: "not_found", Message: "file does not exist"}
	ErrOpenFailed        = &Error{Code: "open_failed", Message: "file could not be opened"}
	ErrUnsupportedFormat = &Error{Code: "unsupported_format", Message: "unsupported extension, only .mesh, .label and .lut are supported"}
	ErrTruncated         = &Error{Code: "truncated_data", Message: "data ended before a declared field was complete"}
	ErrTooLarge          = &Error{Code: "too_large", Message: "declared count exceeds the configured limit"}
	ErrReadFailed        = &Error{Code: "read_failed", Message: "read failed"}
)

// Error represents a load failure for one file
type Error struct {
	Code    string
	Message string
	Path    string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// newError returns a copy of kind bound to path and cause
func newError(kind *Error, path string, cause error) *Error {
	return &Error{
		Code:    kind.Code,
		Message: kind.Message,
		Path:    path,
		Cause:   cause,
	}
}
