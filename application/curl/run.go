package curl

import (
	"context"
	"io"
	"log/slog"

	"cc-curl/application/curl/output"
	"cc-curl/application/http"
	"cc-curl/application/http/actor/client"
	"cc-curl/application/util/uri"
	"cc-curl/transport"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// App holds what a single invocation talks to.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	Env         LookupEnv
	Dialer      transport.ConnDialer
	Clock       clock.Clock
	NewS3Client output.S3ClientFunc
}

// Run performs one request described by args, which excludes the program name.
func (a *App) Run(ctx context.Context, args []string) error {
	cfg, err := LoadConfig(args, a.Env)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			_, err := io.WriteString(a.Stdout, Usage())
			return err
		}
		return &Error{Kind: KindUsage, Err: err}
	}

	logger := slog.New(slog.NewTextHandler(a.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})).
		With("request_id", uuid.NewString())

	return a.run(ctx, cfg, logger)
}

func (a *App) run(ctx context.Context, cfg Config, logger *slog.Logger) error {
	u, err := uri.Parse(cfg.URL)
	if err != nil {
		return errors.Wrap(err, "parsing url")
	}

	method := cfg.RequestMethod()
	if !method.IsToken() {
		logger.Warn("method is not a valid token, sending it as is", "method", method.String())
	}

	request, err := http.NewRequest(method, &u)
	if err != nil {
		return errors.Wrapf(err, "building request for %s", cfg.URL)
	}

	for _, h := range cfg.Headers {
		if !request.ParseHeader(h) {
			logger.Warn("ignoring malformed header", "header", h)
		}
	}
	for _, d := range cfg.Data {
		request.AddData([]byte(d))
	}

	// Resolve the sink first, so that a bad target fails before anything is sent.
	sink, err := output.Open(ctx, cfg.Output, a.Stdout, a.NewS3Client)
	if err != nil {
		return &Error{Kind: KindOutput, Err: err}
	}

	v := verbose{w: a.Stderr}

	opts := client.Options{
		Receive: client.ReceiveOptions{MaxResponseSize: cfg.MaxResponseSize},
		Timeout: client.TimeoutOptions{Total: cfg.MaxTime},
	}
	if cfg.Verbose {
		opts.Trace.Request = v.request
	}

	c := client.New(a.Dialer, logger, a.Clock, opts)
	if cfg.MetricsFile != "" {
		defer func() {
			if err := c.Metrics().WriteToTextfile(cfg.MetricsFile); err != nil {
				logger.Warn("failed to write metrics", "path", cfg.MetricsFile, "error", err)
			}
		}()
	}

	if cfg.Verbose {
		v.info("Connecting to %s port %d", request.Host(), request.Port())
	}

	frame, err := c.Send(ctx, request)
	if err != nil {
		var ferr *http.FramingError
		if cfg.Verbose && errors.As(err, &ferr) {
			v.rawResponse(ferr.Raw)
		}
		return errors.Wrap(err, "sending request")
	}

	if cfg.Verbose {
		v.responseHeader(frame)
	}

	if cfg.Fail {
		if sl, err := frame.Status(); err == nil && sl.StatusCode >= 400 {
			return &Error{
				Kind: KindHTTPStatus,
				Err:  errors.Errorf("the requested url returned error: %d", sl.StatusCode),
			}
		}
	}

	out := frame.Body
	if cfg.Include {
		out = append(append([]byte{}, frame.Header...), frame.Body...)
	}

	if err := sink.Put(ctx, out); err != nil {
		return &Error{Kind: KindOutput, Err: err}
	}

	return nil
}
