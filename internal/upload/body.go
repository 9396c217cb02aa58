package upload

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/itsShrizon/kyc-verification-service/internal/model"
)

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// NewBoundary returns a fresh random boundary token.
func NewBoundary() string {
	return uuid.NewString()
}

// PartHeader returns the opening boundary and part headers, up to and
// including the blank line that precedes the file bytes.
func PartHeader(boundary, field, filename, contentType string) string {
	return fmt.Sprintf(
		"--%s\r\nContent-Disposition: form-data; name=\"%s\"; filename=\"%s\"\r\nContent-Type: %s\r\n\r\n",
		boundary, quoteEscaper.Replace(field), quoteEscaper.Replace(filename), contentType,
	)
}

// PartFooter returns the line break ending the file bytes and the closing
// boundary.
func PartFooter(boundary string) string {
	return "\r\n--" + boundary + "--\r\n"
}

// FormDataContentType returns the request Content-Type for boundary.
func FormDataContentType(boundary string) string {
	return "multipart/form-data; boundary=" + boundary
}

// NewBody returns a reader producing header, the bytes of r unchanged, then
// footer.
func NewBody(boundary, field, filename, contentType string, r io.Reader) io.Reader {
	return io.MultiReader(
		strings.NewReader(PartHeader(boundary, field, filename, contentType)),
		r,
		strings.NewReader(PartFooter(boundary)),
	)
}

// requestBody is the outgoing stream. Closing it releases the file; it is
// safe to close more than once since both net/http and Upload close it.
type requestBody struct {
	io.Reader
	file io.Closer

	once sync.Once
	err  error
}

func newRequestBody(boundary string, part model.PartMetadata, file io.ReadCloser) *requestBody {
	return &requestBody{
		Reader: NewBody(boundary, part.FieldName, part.FileName, part.ContentType, file),
		file:   file,
	}
}

func (b *requestBody) Close() error {
	b.once.Do(func() {
		b.err = b.file.Close()
	})
	return b.err
}
