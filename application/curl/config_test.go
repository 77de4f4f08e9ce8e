package curl

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cc-curl/application/http"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapEnv(m map[string]string) LookupEnv {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestLoadConfig(t *testing.T) {
	testcases := []struct {
		desc     string
		args     []string
		env      map[string]string
		expected Config
	}{
		{
			desc: "defaults",
			args: []string{"http://example.com"},
			expected: Config{
				URL:      "http://example.com",
				LogLevel: slog.LevelWarn,
			},
		},
		{
			desc: "short flags",
			args: []string{
				"-X", "PUT", "-H", "X-A: 1", "-H", "X-B;", "-d", "a", "-d", "b,c",
				"-v", "-i", "-f", "-o", "out.txt", "-m", "3s", "http://example.com",
			},
			expected: Config{
				URL:       "http://example.com",
				Method:    "PUT",
				MethodSet: true,
				Headers:   []string{"X-A: 1", "X-B;"},
				Data:      []string{"a", "b,c"},
				Verbose:   true,
				Include:   true,
				Fail:      true,
				Output:    "out.txt",
				MaxTime:   3 * time.Second,
				LogLevel:  slog.LevelWarn,
			},
		},
		{
			desc: "long flags",
			args: []string{
				"--request=DELETE", "--header", "Accept: text/html", "--max-time", "1m",
				"--max-response-size", "1024", "--metrics-file", "m.prom", "--log-level", "debug",
				"http://example.com",
			},
			expected: Config{
				URL:             "http://example.com",
				Method:          "DELETE",
				MethodSet:       true,
				Headers:         []string{"Accept: text/html"},
				MaxTime:         time.Minute,
				MaxResponseSize: 1024,
				MetricsFile:     "m.prom",
				LogLevel:        slog.LevelDebug,
			},
		},
		{
			desc: "explicitly empty method",
			args: []string{"-X", "", "http://example.com"},
			expected: Config{
				URL:       "http://example.com",
				MethodSet: true,
				LogLevel:  slog.LevelWarn,
			},
		},
		{
			desc: "env",
			args: []string{"http://example.com"},
			env: map[string]string{
				EnvLogLevel:        "info",
				EnvMaxTime:         "2s",
				EnvMaxResponseSize: "10",
				EnvMetricsFile:     "env.prom",
			},
			expected: Config{
				URL:             "http://example.com",
				MaxTime:         2 * time.Second,
				MaxResponseSize: 10,
				MetricsFile:     "env.prom",
				LogLevel:        slog.LevelInfo,
			},
		},
		{
			desc: "flags override env",
			args: []string{"--log-level", "error", "-m", "5s", "http://example.com"},
			env: map[string]string{
				EnvLogLevel: "info",
				EnvMaxTime:  "2s",
			},
			expected: Config{
				URL:      "http://example.com",
				MaxTime:  5 * time.Second,
				LogLevel: slog.LevelError,
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			cfg, err := LoadConfig(tc.args, mapEnv(tc.env))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg)
		})
	}
}

func TestLoadConfigError(t *testing.T) {
	testcases := []struct {
		desc string
		args []string
		env  map[string]string
	}{
		{desc: "no url", args: []string{"-v"}},
		{desc: "two urls", args: []string{"http://a", "http://b"}},
		{desc: "unknown flag", args: []string{"--nope", "http://a"}},
		{desc: "negative max time", args: []string{"--max-time=-1s", "http://a"}},
		{desc: "bad log level flag", args: []string{"--log-level", "loud", "http://a"}},
		{desc: "bad log level env", args: []string{"http://a"}, env: map[string]string{EnvLogLevel: "loud"}},
		{desc: "bad max time env", args: []string{"http://a"}, env: map[string]string{EnvMaxTime: "soon"}},
		{desc: "bad size env", args: []string{"http://a"}, env: map[string]string{EnvMaxResponseSize: "-1"}},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := LoadConfig(tc.args, mapEnv(tc.env))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigHelp(t *testing.T) {
	_, err := LoadConfig([]string{"--help"}, mapEnv(nil))
	assert.ErrorIs(t, err, pflag.ErrHelp)

	usage := Usage()
	assert.Contains(t, usage, "Usage: cc-curl")
	assert.Contains(t, usage, "--request")
	assert.Contains(t, usage, "--max-time")
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CC_CURL_TEST_FROM_FILE=file\nCC_CURL_TEST_BOTH=file\n"), 0o644))
	t.Setenv("CC_CURL_TEST_BOTH", "process")

	env, err := LoadEnv(path)
	require.NoError(t, err)

	v, ok := env("CC_CURL_TEST_FROM_FILE")
	assert.True(t, ok)
	assert.Equal(t, "file", v)

	v, ok = env("CC_CURL_TEST_BOTH")
	assert.True(t, ok)
	assert.Equal(t, "process", v)

	_, ok = env("CC_CURL_TEST_NOWHERE")
	assert.False(t, ok)

	// The process environment isn't modified.
	_, ok = os.LookupEnv("CC_CURL_TEST_FROM_FILE")
	assert.False(t, ok)
}

func TestLoadEnvMissingFile(t *testing.T) {
	env, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.NotNil(t, env)
}

func TestRequestMethod(t *testing.T) {
	testcases := []struct {
		desc     string
		cfg      Config
		expected http.Method
	}{
		{desc: "default", cfg: Config{}, expected: http.MethodGet},
		{desc: "data implies POST", cfg: Config{Data: []string{"a"}}, expected: http.MethodPost},
		{desc: "explicit wins over data", cfg: Config{Method: "PUT", Data: []string{"a"}}, expected: http.MethodPut},
		{desc: "custom", cfg: Config{Method: "PURGE"}, expected: http.CustomMethod("PURGE")},
		{desc: "explicitly empty", cfg: Config{MethodSet: true, Data: []string{"a"}}, expected: http.CustomMethod("")},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.cfg.RequestMethod())
		})
	}
}
