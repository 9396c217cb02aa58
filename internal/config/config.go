// Package config holds the process-wide settings of the upload client.
// Settings are read once at startup from IDCLIENT_* environment variables
// and passed explicitly to the code that needs them.
package config

import (
	"fmt"
	"mime"
	"net/url"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	uperrors "github.com/itsShrizon/kyc-verification-service/internal/errors"
	"github.com/itsShrizon/kyc-verification-service/internal/model"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "IDCLIENT"

// Config is the upload client configuration. A zero Timeout leaves the
// exchange unbounded.
type Config struct {
	TargetURL         string             `envconfig:"URL" default:"http://127.0.0.1:8000/extract-id-data/"`
	FilePath          string             `envconfig:"FILE" default:"Id.jpg"`
	FieldName         string             `envconfig:"FIELD" default:"id_card"`
	ContentType       string             `envconfig:"CONTENT_TYPE" default:"image/jpeg"`
	DetectContentType bool               `envconfig:"DETECT_CONTENT_TYPE" default:"false"`
	Timeout           time.Duration      `envconfig:"TIMEOUT" default:"0s"`
	ResponseMode      model.ResponseMode `envconfig:"RESPONSE_MODE" default:"lines"`
	LogLevel          string             `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat         string             `envconfig:"LOG_FORMAT" default:"console"`
}

// Default returns the built-in configuration without reading the environment.
func Default() *Config {
	return &Config{
		TargetURL:    model.DefaultTargetURL,
		FilePath:     model.DefaultFilePath,
		FieldName:    model.DefaultFieldName,
		ContentType:  model.ContentTypeJPEG,
		ResponseMode: model.ResponseModeLines,
		LogLevel:     "warn",
		LogFormat:    "console",
	}
}

// Process reads the configuration from the environment without validating
// it, so callers can apply overrides before calling Validate.
func Process() (*Config, error) {
	var c Config
	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return nil, uperrors.New("config", uperrors.CodeInvalidConfig, err)
	}
	return &c, nil
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	c, err := Process()
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.TargetURL == "" {
		result = multierror.Append(result, fmt.Errorf("target URL is required"))
	} else if u, err := url.Parse(c.TargetURL); err != nil {
		result = multierror.Append(result, fmt.Errorf("target URL: %w", err))
	} else if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		result = multierror.Append(result, fmt.Errorf("target URL %q must be an absolute http(s) URL", c.TargetURL))
	}
	if c.FilePath == "" {
		result = multierror.Append(result, fmt.Errorf("file path is required"))
	}
	if c.FieldName == "" {
		result = multierror.Append(result, fmt.Errorf("form field name is required"))
	}
	if _, _, err := mime.ParseMediaType(c.ContentType); err != nil {
		result = multierror.Append(result, fmt.Errorf("content type %q: %w", c.ContentType, err))
	}
	if c.Timeout < 0 {
		result = multierror.Append(result, fmt.Errorf("timeout must not be negative, got %s", c.Timeout))
	}
	if !c.ResponseMode.Valid() {
		result = multierror.Append(result, fmt.Errorf("unknown response mode %q", c.ResponseMode))
	}
	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("log level: %w", err))
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		result = multierror.Append(result, fmt.Errorf("unknown log format %q", c.LogFormat))
	}

	if err := result.ErrorOrNil(); err != nil {
		return uperrors.New("config", uperrors.CodeInvalidConfig, err)
	}
	return nil
}

// Request returns the upload request described by c.
func (c *Config) Request() model.UploadRequest {
	return model.UploadRequest{
		TargetURL:     c.TargetURL,
		FilePath:      c.FilePath,
		FormFieldName: c.FieldName,
	}
}
