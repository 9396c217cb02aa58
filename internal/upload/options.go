package upload

import (
	"net/http"
	"time"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"

	"github.com/itsShrizon/kyc-verification-service/internal/model"
)

// HTTPClient abstracts HTTP operations for dependency injection.
// The standard *http.Client satisfies this interface.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the transport. Default is http.DefaultClient.
func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithFilesystem sets the filesystem files are read from. Default is the
// native filesystem.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(c *Client) {
		if fs != nil {
			c.fs = fs
		}
	}
}

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout bounds the whole exchange. Zero, the default, means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout >= 0 {
			c.timeout = timeout
		}
	}
}

// WithResponseMode sets how the response body is read. Default is
// model.ResponseModeLines.
func WithResponseMode(mode model.ResponseMode) Option {
	return func(c *Client) {
		if mode.Valid() {
			c.mode = mode
		}
	}
}

// WithContentType sets the Content-Type of the file part. Default is
// image/jpeg.
func WithContentType(contentType string) Option {
	return func(c *Client) {
		if contentType != "" {
			c.contentType = contentType
		}
	}
}

// WithContentTypeDetection sniffs the file part's Content-Type from its
// content, falling back to the configured type.
func WithContentTypeDetection(enabled bool) Option {
	return func(c *Client) {
		c.detect = enabled
	}
}

// WithBoundaryGenerator replaces NewBoundary. Intended for tests.
func WithBoundaryGenerator(gen func() string) Option {
	return func(c *Client) {
		if gen != nil {
			c.newBoundary = gen
		}
	}
}
