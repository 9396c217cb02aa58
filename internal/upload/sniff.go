package upload

import (
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/h2non/filetype"
)

// sniffLen covers mimetype's default read limit.
const sniffLen = 3072

const octetStream = "application/octet-stream"

// sniff reads the head of f and rewinds it. ok is false when f could not be
// rewound, in which case f must not be used further.
func sniff(f io.ReadSeeker) (head []byte, ok bool) {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, false
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, false
	}
	return buf[:n], true
}

// detectContentType returns the sniffed MIME type of head, or fallback when
// nothing more specific than a generic binary type is found.
func detectContentType(head []byte, fallback string) string {
	if len(head) == 0 {
		return fallback
	}
	mt := mimetype.Detect(head)
	if mt == nil || mt.Is(octetStream) {
		return fallback
	}
	return mt.String()
}

func looksLikeImage(head []byte) bool {
	return filetype.IsImage(head)
}
