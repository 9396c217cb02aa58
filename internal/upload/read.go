package upload

import (
	"io"
	"strings"

	"github.com/itsShrizon/kyc-verification-service/internal/model"
)

// Line terminators recognised when joining: "\r\n", "\n" and a lone "\r".
// Dropping every CR and LF is the same as reading line by line and
// concatenating the lines.
var lineJoiner = strings.NewReplacer("\r", "", "\n", "")

// ReadBody drains r and returns it as text. In ResponseModeLines the lines
// are concatenated with no separator; ResponseModeRaw keeps the body as is.
func ReadBody(r io.Reader, mode model.ResponseMode) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if mode == model.ResponseModeRaw {
		return string(data), nil
	}
	return lineJoiner.Replace(string(data)), nil
}
