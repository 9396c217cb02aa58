package upload

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"

	uperrors "github.com/itsShrizon/kyc-verification-service/internal/errors"
	"github.com/itsShrizon/kyc-verification-service/internal/model"
)

// Client uploads files. It keeps no state between uploads apart from the
// State of the most recent one; concurrent Upload calls are not supported.
type Client struct {
	http        HTTPClient
	fs          billy.Filesystem
	logger      *zap.Logger
	timeout     time.Duration
	mode        model.ResponseMode
	contentType string
	detect      bool
	newBoundary func() string

	state atomic.Int32
}

// New creates a Client.
func New(opts ...Option) *Client {
	c := &Client{
		http:        http.DefaultClient,
		fs:          &nativeFS{},
		logger:      zap.NewNop(),
		mode:        model.ResponseModeLines,
		contentType: model.ContentTypeJPEG,
		newBoundary: NewBoundary,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the state of the most recent upload.
func (c *Client) State() State {
	return State(c.state.Load())
}

func (c *Client) setState(s State) {
	c.state.Store(int32(s))
}

// Upload posts the file at req.FilePath to req.TargetURL under
// req.FormFieldName and returns the response status and body.
//
// The file is checked before anything is sent; a missing file yields an
// error wrapping errors.ErrFileNotFound and the transport is never called.
// The file handle and the request body are released on every return path.
func (c *Client) Upload(ctx context.Context, req model.UploadRequest) (result *model.UploadResult, err error) {
	c.setState(StateNotStarted)
	defer func() {
		if err != nil {
			c.setState(StateFailed)
		}
	}()

	if err := validate(req); err != nil {
		return nil, err
	}

	info, err := c.fs.Stat(req.FilePath)
	if err != nil {
		return nil, uperrors.NotFound("stat", req.FilePath, err)
	}
	if !info.Mode().IsRegular() {
		return nil, uperrors.NotFound("stat", req.FilePath, fmt.Errorf("not a regular file"))
	}

	file, err := c.fs.Open(req.FilePath)
	if err != nil {
		return nil, uperrors.NotFound("open", req.FilePath, err)
	}

	file, contentType, err := c.prepare(req.FilePath, file)
	if err != nil {
		return nil, err
	}

	boundary := req.Boundary
	if boundary == "" {
		boundary = c.newBoundary()
	}
	part := model.PartMetadata{
		FieldName:   req.FormFieldName,
		FileName:    filepath.Base(req.FilePath),
		ContentType: contentType,
	}
	body := newRequestBody(boundary, part, file)
	defer body.Close()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.TargetURL, body)
	if err != nil {
		return nil, uperrors.InvalidInput("request", err.Error())
	}
	httpReq.Header.Set("Content-Type", FormDataContentType(boundary))
	httpReq.ContentLength = int64(len(PartHeader(boundary, part.FieldName, part.FileName, part.ContentType))) +
		info.Size() + int64(len(PartFooter(boundary)))

	c.logger.Debug("sending upload",
		zap.String("url", req.TargetURL),
		zap.String("file", req.FilePath),
		zap.String("field", part.FieldName),
		zap.String("content_type", part.ContentType),
		zap.String("boundary", boundary),
		zap.Int64("content_length", httpReq.ContentLength),
	)

	c.setState(StateSending)
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, transportError("send", req, err)
	}
	defer resp.Body.Close()

	c.setState(StateAwaitingResponse)
	text, err := ReadBody(resp.Body, c.mode)
	if err != nil {
		return nil, transportError("read", req, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("server returned non-OK status",
			zap.String("url", req.TargetURL),
			zap.Int("status", resp.StatusCode),
		)
	} else {
		c.logger.Debug("upload complete", zap.Int("status", resp.StatusCode))
	}

	c.setState(StateDone)
	return &model.UploadResult{StatusCode: resp.StatusCode, Body: text}, nil
}

// prepare sniffs the head of file for the part Content-Type and an image
// check. The returned file is positioned at its start.
func (c *Client) prepare(path string, file billy.File) (billy.File, string, error) {
	head, ok := sniff(file)
	if !ok {
		// Could not rewind; start again from a fresh handle.
		_ = file.Close()
		var err error
		if file, err = c.fs.Open(path); err != nil {
			return nil, "", uperrors.NotFound("open", path, err)
		}
		return file, c.contentType, nil
	}

	if len(head) > 0 && !looksLikeImage(head) {
		c.logger.Warn("file does not look like an image", zap.String("file", path))
	}

	if !c.detect {
		return file, c.contentType, nil
	}
	return file, detectContentType(head, c.contentType), nil
}

func validate(req model.UploadRequest) error {
	switch {
	case req.FilePath == "":
		return uperrors.InvalidInput("validate", "file path is empty")
	case req.FormFieldName == "":
		return uperrors.InvalidInput("validate", "form field name is empty")
	case req.TargetURL == "":
		return uperrors.InvalidInput("validate", "target URL is empty")
	}
	u, err := url.Parse(req.TargetURL)
	if err != nil {
		return uperrors.InvalidInput("validate", err.Error())
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return uperrors.InvalidInput("validate", fmt.Sprintf("unsupported URL scheme %q", u.Scheme))
	}
	return nil
}

func transportError(op string, req model.UploadRequest, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return uperrors.Timeout(op, req.TargetURL, err).WithPath(req.FilePath)
	}
	return uperrors.Network(op, req.TargetURL, err).WithPath(req.FilePath)
}
