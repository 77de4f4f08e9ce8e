package curl

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"cc-curl/application/http"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const (
	EnvLogLevel        = "CC_CURL_LOG_LEVEL"
	EnvMaxTime         = "CC_CURL_MAX_TIME"
	EnvMaxResponseSize = "CC_CURL_MAX_RESPONSE_SIZE"
	EnvMetricsFile     = "CC_CURL_METRICS_FILE"
)

type Config struct {
	URL string

	// Method is the verb given with --request, see [Config.RequestMethod].
	Method string
	// MethodSet tells an explicitly empty --request apart from an absent one.
	MethodSet bool

	Headers []string
	Data    []string

	Verbose bool
	Include bool
	Fail    bool

	// Output is a file path or an s3://bucket/key target. Empty or "-" means stdout.
	Output string

	MaxTime         time.Duration
	MaxResponseSize uint
	MetricsFile     string
	LogLevel        slog.Level
}

func DefaultConfig() Config {
	return Config{LogLevel: slog.LevelWarn}
}

// LookupEnv looks a variable up, reporting whether it was present.
type LookupEnv func(key string) (string, bool)

// LoadEnv returns a lookup over the process environment, falling back to the
// variables of dotenvPath. A missing dotenv file is not an error.
// The process environment itself is left untouched.
func LoadEnv(dotenvPath string) (LookupEnv, error) {
	dotenv := map[string]string{}
	if _, err := os.Stat(dotenvPath); err == nil {
		dotenv, err = godotenv.Read(dotenvPath)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", dotenvPath)
		}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}, nil
}

// LoadConfig builds the config from defaults, then env, then args.
// It returns [pflag.ErrHelp] when help was asked for.
func LoadConfig(args []string, env LookupEnv) (Config, error) {
	cfg := DefaultConfig()

	if err := cfg.applyEnv(env); err != nil {
		return Config{}, errors.Wrap(err, "reading environment")
	}

	logLevel := cfg.LogLevel.String()
	fs := newFlagSet(&cfg, &logLevel)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, errors.Wrap(err, "parsing --log-level")
	}
	cfg.MethodSet = fs.Changed("request")

	switch positional := fs.Args(); len(positional) {
	case 0:
	case 1:
		cfg.URL = positional[0]
	default:
		return Config{}, errors.Errorf("expected a single url, got %d arguments", len(positional))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Usage describes the command line.
func Usage() string {
	cfg := DefaultConfig()
	logLevel := cfg.LogLevel.String()
	return "Usage: cc-curl [flags] <url>\n\nFlags:\n" + newFlagSet(&cfg, &logLevel).FlagUsages()
}

func newFlagSet(cfg *Config, logLevel *string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("cc-curl", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringVarP(&cfg.Method, "request", "X", cfg.Method, "request method, GET unless --data is given")
	fs.StringArrayVarP(&cfg.Headers, "header", "H", cfg.Headers, `extra header, "Key: Value" or "Key;" for an empty value`)
	fs.StringArrayVarP(&cfg.Data, "data", "d", cfg.Data, "data appended to the request body")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "print the request and response headers to stderr")
	fs.BoolVarP(&cfg.Include, "include", "i", cfg.Include, "include response headers in the output")
	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output, "write output to a file or s3://bucket/key instead of stdout")
	fs.BoolVarP(&cfg.Fail, "fail", "f", cfg.Fail, "fail without output on status 400 and above")
	fs.DurationVarP(&cfg.MaxTime, "max-time", "m", cfg.MaxTime, "maximum time for the whole exchange, 0 for none")
	fs.UintVar(&cfg.MaxResponseSize, "max-response-size", cfg.MaxResponseSize, "maximum bytes of response to read, 0 for none")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write prometheus metrics to this file")
	fs.StringVar(logLevel, "log-level", *logLevel, "log level: debug, info, warn or error")

	return fs
}

func (c *Config) applyEnv(env LookupEnv) error {
	if v, ok := env(EnvLogLevel); ok {
		if err := c.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return errors.Wrapf(err, "parsing %s", EnvLogLevel)
		}
	}

	if v, ok := env(EnvMaxTime); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "parsing %s", EnvMaxTime)
		}
		c.MaxTime = d
	}

	if v, ok := env(EnvMaxResponseSize); ok {
		n, err := strconv.ParseUint(v, 10, 0)
		if err != nil {
			return errors.Wrapf(err, "parsing %s", EnvMaxResponseSize)
		}
		c.MaxResponseSize = uint(n)
	}

	if v, ok := env(EnvMetricsFile); ok {
		c.MetricsFile = v
	}

	return nil
}

func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.New("url is required")
	}
	if c.MaxTime < 0 {
		return errors.Errorf("max time should not be negative: %s", c.MaxTime)
	}
	return nil
}

// RequestMethod returns the method to send. A given --request is sent as is,
// even when empty. Without it the method is POST when there is data to send, GET otherwise.
func (c *Config) RequestMethod() http.Method {
	switch {
	case c.MethodSet || c.Method != "":
		return http.ParseMethod(c.Method)
	case len(c.Data) > 0:
		return http.MethodPost
	default:
		return http.MethodGet
	}
}
