// Package upload sends a local file to an HTTP endpoint as a single-part
// multipart/form-data POST and relays the server's status code and body.
//
// The body is streamed in three segments: the part header, the raw file
// bytes and the closing boundary. File bytes are copied verbatim.
//
// Basic usage:
//
//	client := upload.New(upload.WithLogger(logger))
//	result, err := client.Upload(ctx, model.UploadRequest{
//	    TargetURL:     "http://127.0.0.1:8000/extract-id-data/",
//	    FilePath:      "Id.jpg",
//	    FormFieldName: "id_card",
//	})
//
// A missing file fails with errors.ErrFileNotFound before any network
// activity. Transport failures wrap errors.ErrNetwork. Non-200 responses are
// not errors; their status and body are returned like any other.
package upload
