package model

// UploadRequest describes one multipart upload of a local file.
type UploadRequest struct {
	TargetURL     string
	FilePath      string
	FormFieldName string
	// Boundary is generated by the client when empty. Never reuse one.
	Boundary string
}
