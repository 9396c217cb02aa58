// Package cli implements the idclient command: one upload per invocation.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/itsShrizon/kyc-verification-service/internal/config"
	uperrors "github.com/itsShrizon/kyc-verification-service/internal/errors"
	"github.com/itsShrizon/kyc-verification-service/internal/logging"
	"github.com/itsShrizon/kyc-verification-service/internal/model"
	"github.com/itsShrizon/kyc-verification-service/internal/upload"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitFileNotFound = 1
	ExitNetwork      = 2
	ExitInvalid      = 3
	ExitInternal     = 4
)

const banner = "--- IdentityGuard Go Client ---"

type flags struct {
	file        string
	url         string
	field       string
	contentType string
	timeout     time.Duration
	raw         bool
	detect      bool
	logLevel    string
	logFormat   string
}

// Execute runs the root command against the process environment and
// returns the exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return ExitCode(NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx))
}

// NewRootCommand builds the idclient command. Extra options are applied to
// the upload client after the ones derived from configuration.
func NewRootCommand(stdout, stderr io.Writer, opts ...upload.Option) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "idclient [file]",
		Short: "Upload an identity card image for data extraction",
		Long: `Send a local image as a multipart/form-data POST to the extraction
endpoint and print the server's status code and response.

Defaults come from IDCLIENT_* environment variables; flags override them.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return uperrors.InvalidInput("args", err.Error())
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f, args)
			if err != nil {
				fmt.Fprintf(stderr, "ERROR: %v\n", err)
				return err
			}
			return run(cmd.Context(), cfg, stdout, stderr, opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return uperrors.InvalidInput("flags", err.Error())
	})

	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "image to upload (env IDCLIENT_FILE)")
	fl.StringVarP(&f.url, "url", "u", "", "extraction endpoint (env IDCLIENT_URL)")
	fl.StringVar(&f.field, "field", "", "form field name of the file part (env IDCLIENT_FIELD)")
	fl.StringVar(&f.contentType, "content-type", "", "Content-Type of the file part (env IDCLIENT_CONTENT_TYPE)")
	fl.DurationVar(&f.timeout, "timeout", 0, "bound on the whole exchange, 0 for none (env IDCLIENT_TIMEOUT)")
	fl.BoolVar(&f.raw, "raw", false, "print the response body verbatim instead of joining its lines")
	fl.BoolVar(&f.detect, "detect-content-type", false, "sniff the file part's Content-Type from its bytes")
	fl.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (env IDCLIENT_LOG_LEVEL)")
	fl.StringVar(&f.logFormat, "log-format", "", "console or json (env IDCLIENT_LOG_FORMAT)")

	return cmd
}

func resolveConfig(cmd *cobra.Command, f flags, args []string) (*config.Config, error) {
	cfg, err := config.Process()
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("file") {
		cfg.FilePath = f.file
	}
	if len(args) == 1 {
		cfg.FilePath = args[0]
	}
	if changed("url") {
		cfg.TargetURL = f.url
	}
	if changed("field") {
		cfg.FieldName = f.field
	}
	if changed("content-type") {
		cfg.ContentType = f.contentType
	}
	if changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if changed("raw") && f.raw {
		cfg.ResponseMode = model.ResponseModeRaw
	}
	if changed("detect-content-type") {
		cfg.DetectContentType = f.detect
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("log-format") {
		cfg.LogFormat = f.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer, extra []upload.Option) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return uperrors.New("logging", uperrors.CodeInvalidConfig, err)
	}
	defer func() { _ = logger.Sync() }()

	fmt.Fprintln(stdout, banner)

	opts := []upload.Option{
		upload.WithLogger(logger.Named("upload")),
		upload.WithTimeout(cfg.Timeout),
		upload.WithResponseMode(cfg.ResponseMode),
		upload.WithContentType(cfg.ContentType),
		upload.WithContentTypeDetection(cfg.DetectContentType),
	}
	client := upload.New(append(opts, extra...)...)

	result, err := client.Upload(ctx, cfg.Request())
	if err != nil {
		report(stderr, logger, cfg, err)
		return err
	}

	printResult(stdout, result)
	return nil
}

func report(stderr io.Writer, logger *zap.Logger, cfg *config.Config, err error) {
	switch {
	case errors.Is(err, uperrors.ErrFileNotFound):
		fmt.Fprintf(stderr, "ERROR: File not found at %s\n", cfg.FilePath)
		fmt.Fprintln(stderr, "Pass the image with --file or set IDCLIENT_FILE.")
	case errors.Is(err, uperrors.ErrNetwork):
		fmt.Fprintf(stderr, "ERROR: could not reach %s: %v\n", cfg.TargetURL, err)
	default:
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
	}

	code := uperrors.CodeOf(err)
	if code == uperrors.CodeInternal {
		printChain(stderr, err)
		logger.Error("upload failed",
			zap.String("code", code.String()),
			zap.Error(err),
			zap.Stack("stacktrace"),
		)
		return
	}
	logger.Error("upload failed",
		zap.String("code", code.String()),
		zap.Error(err),
	)
}

// printChain writes every wrapped cause of err, outermost first.
func printChain(w io.Writer, err error) {
	for depth, cause := 0, errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		depth++
		fmt.Fprintf(w, "%*scaused by (%T): %v\n", depth*2, "", cause, cause)
	}
}

func printResult(w io.Writer, result *model.UploadResult) {
	fmt.Fprintf(w, "Server Response Code: %d\n", result.StatusCode)
	fmt.Fprintf(w, "AI Output: %s\n", result.Body)

	extraction, err := result.Extraction()
	if err != nil || !extraction.Succeeded() || len(extraction.ExtractedData) == 0 {
		return
	}
	fmt.Fprintln(w, "Extracted lines:")
	for _, line := range extraction.ExtractedData {
		fmt.Fprintf(w, "  %s\n", line)
	}
}

// ExitCode maps the error returned by the command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch uperrors.CodeOf(err) {
	case uperrors.CodeNotFound:
		return ExitFileNotFound
	case uperrors.CodeNetwork, uperrors.CodeTimeout:
		return ExitNetwork
	case uperrors.CodeInvalidInput, uperrors.CodeInvalidConfig:
		return ExitInvalid
	}
	return ExitInternal
}
