package model

// Domain constants shared across the upload client, config and CLI packages.
const (
	ContentTypeJPEG  = "image/jpeg"
	DefaultFieldName = "id_card"
	DefaultFilePath  = "Id.jpg"
	DefaultTargetURL = "http://127.0.0.1:8000/extract-id-data/"
)
