package model

import "encoding/json"

// UploadResult is the status code and body text returned by the server.
type UploadResult struct {
	StatusCode int
	Body       string
}

// ExtractionResponse is the JSON document returned by POST /extract-id-data/.
type ExtractionResponse struct {
	Status        string   `json:"status"`
	RawText       string   `json:"raw_text,omitempty"`
	ExtractedData []string `json:"extracted_data,omitempty"`
	Message       string   `json:"message,omitempty"`
}

// Extraction status values.
const (
	ExtractionSuccess = "success"
	ExtractionError   = "error"
)

// Extraction decodes the body as an ExtractionResponse.
func (r UploadResult) Extraction() (*ExtractionResponse, error) {
	var out ExtractionResponse
	if err := json.Unmarshal([]byte(r.Body), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Succeeded reports whether the server completed the extraction.
func (e *ExtractionResponse) Succeeded() bool {
	return e != nil && e.Status == ExtractionSuccess
}
