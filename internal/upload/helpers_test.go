package upload

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"github.com/itsShrizon/kyc-verification-service/internal/model"
)

func testPart() model.PartMetadata {
	return model.PartMetadata{FieldName: "id_card", FileName: "Id.jpg", ContentType: "image/jpeg"}
}

type countingCloser struct {
	io.ReadCloser
	closes int
}

func (c *countingCloser) Close() error {
	c.closes++
	return c.ReadCloser.Close()
}

// trackingFS records how many files were opened and closed.
type trackingFS struct {
	billy.Filesystem

	// failAfter makes reads fail once this many bytes were read from a
	// file. Zero disables it.
	failAfter int

	mu     sync.Mutex
	opens  int
	closes int
}

var errDiskRead = errors.New("input/output error")

func newTrackingFS(t *testing.T, files map[string][]byte) *trackingFS {
	t.Helper()
	fs := memfs.New()
	for name, data := range files {
		require.NoError(t, util.WriteFile(fs, name, data, 0o644))
	}
	return &trackingFS{Filesystem: fs}
}

func (fs *trackingFS) Open(filename string) (billy.File, error) {
	f, err := fs.Filesystem.Open(filename)
	if err != nil {
		return nil, err
	}
	fs.mu.Lock()
	fs.opens++
	fs.mu.Unlock()
	return &trackingFile{File: f, fs: fs}, nil
}

func (fs *trackingFS) counts() (opens, closes int) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.opens, fs.closes
}

type trackingFile struct {
	billy.File
	fs   *trackingFS
	once sync.Once
	read int
}

func (f *trackingFile) Read(p []byte) (int, error) {
	if limit := f.fs.failAfter; limit > 0 {
		remaining := limit - f.read
		if remaining <= 0 {
			return 0, errDiskRead
		}
		if len(p) > remaining {
			p = p[:remaining]
		}
	}
	n, err := f.File.Read(p)
	f.read += n
	return n, err
}

func (f *trackingFile) Close() error {
	f.once.Do(func() {
		f.fs.mu.Lock()
		f.fs.closes++
		f.fs.mu.Unlock()
	})
	return f.File.Close()
}

// fakeHTTP captures the outgoing request and returns a canned response.
type fakeHTTP struct {
	calls   int
	req     *http.Request
	body    []byte
	respond func() (*http.Response, error)
}

func (f *fakeHTTP) Do(req *http.Request) (*http.Response, error) {
	f.calls++
	f.req = req
	data, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, err
	}
	f.body = data
	return f.respond()
}

func respondWith(status int, body string) (func() (*http.Response, error), *responseBody) {
	rb := &responseBody{Reader: strings.NewReader(body)}
	return func() (*http.Response, error) {
		return &http.Response{StatusCode: status, Body: rb, Header: http.Header{}}, nil
	}, rb
}

func respondError(err error) func() (*http.Response, error) {
	return func() (*http.Response, error) { return nil, err }
}

type responseBody struct {
	io.Reader
	closed bool
}

func (b *responseBody) Close() error {
	b.closed = true
	return nil
}

func jpegBytes(extra string) []byte {
	return append(append([]byte{}, jpegHead...), bytes.NewBufferString(extra).Bytes()...)
}
