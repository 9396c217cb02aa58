// Package errors defines the error taxonomy of the upload client.
// Codes are strings so they read well in logs and map cleanly to exit codes.
package errors

// ErrorCode classifies a failure.
type ErrorCode string

const (
	// CodeNotFound indicates the local file does not exist or cannot be read.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeInvalidInput indicates a malformed upload request.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the upload.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// CodeNetwork indicates the HTTP exchange could not be established or completed.
	CodeNetwork ErrorCode = "NETWORK_ERROR"

	// CodeTimeout indicates the exchange exceeded the configured deadline.
	CodeTimeout ErrorCode = "TIMEOUT"

	// CodeInternal indicates an unexpected failure.
	CodeInternal ErrorCode = "INTERNAL_ERROR"
)

// String returns the code value.
func (c ErrorCode) String() string {
	return string(c)
}
