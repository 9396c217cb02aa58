package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to test for them.
var (
	ErrFileNotFound = errors.New("file not found")
	ErrNetwork      = errors.New("network error")
	ErrInvalidInput = errors.New("invalid input")
)

// Error is an upload failure with the operation and target that failed.
type Error struct {
	// Op is the step that failed (e.g. "open", "send", "read").
	Op string

	// Code classifies the failure.
	Code ErrorCode

	// Path is the local file path (if applicable).
	Path string

	// URL is the remote endpoint (if applicable).
	URL string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.URL != "":
		return fmt.Sprintf("upload.%s %s -> %s: %v", e.Op, e.Path, e.URL, e.Err)
	case e.Path != "":
		return fmt.Sprintf("upload.%s %s: %v", e.Op, e.Path, e.Err)
	case e.URL != "":
		return fmt.Sprintf("upload.%s %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("upload.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithPath adds local file context.
func (e *Error) WithPath(path string) *Error {
	e.Path = path
	return e
}

// WithURL adds endpoint context.
func (e *Error) WithURL(url string) *Error {
	e.URL = url
	return e
}

// New creates an Error with the given operation, code and cause.
func New(op string, code ErrorCode, err error) *Error {
	return &Error{
		Op:   op,
		Code: code,
		Err:  err,
	}
}

// NotFound reports a missing or unreadable local file. The result wraps
// both ErrFileNotFound and cause.
func NotFound(op, path string, cause error) *Error {
	return New(op, CodeNotFound, join(ErrFileNotFound, cause)).WithPath(path)
}

// Network reports a failed HTTP exchange. The result wraps both ErrNetwork
// and cause.
func Network(op, url string, cause error) *Error {
	return New(op, CodeNetwork, join(ErrNetwork, cause)).WithURL(url)
}

// Timeout reports an exchange cut short by its deadline. It is also a
// network error.
func Timeout(op, url string, cause error) *Error {
	return New(op, CodeTimeout, join(ErrNetwork, cause)).WithURL(url)
}

// InvalidInput reports a malformed request.
func InvalidInput(op, msg string) *Error {
	return New(op, CodeInvalidInput, fmt.Errorf("%w: %s", ErrInvalidInput, msg))
}

// CodeOf returns the code of the first *Error in err's chain, or
// CodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

func join(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, cause)
}
