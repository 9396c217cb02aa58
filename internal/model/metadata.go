package model

// PartMetadata describes the single file part of a multipart/form-data body.
type PartMetadata struct {
	FieldName   string
	FileName    string
	ContentType string
}

// ResponseMode controls how the response body is turned into text.
type ResponseMode string

// ResponseMode values.
const (
	// ResponseModeLines strips line terminators and joins lines with no separator.
	ResponseModeLines ResponseMode = "lines"
	// ResponseModeRaw keeps the body verbatim.
	ResponseModeRaw ResponseMode = "raw"
)

// Valid reports whether m is a known mode.
func (m ResponseMode) Valid() bool {
	return m == ResponseModeLines || m == ResponseModeRaw
}
