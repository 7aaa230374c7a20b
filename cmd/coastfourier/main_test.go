package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-contour/internal/config"
)

// execute runs a fresh root command with args and returns the configuration
// it resolved.
func execute(t *testing.T, args ...string) config.Config {
	t.Helper()
	var got config.Config
	called := false
	cmd := newRootCmd(func(_ *cobra.Command, cfg config.Config) error {
		got, called = cfg, true
		return nil
	})
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	require.True(t, called)
	return got
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coast.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFlagsWithoutConfigFile(t *testing.T) {
	cfg := execute(t)
	assert.Equal(t, config.Default(), cfg)

	cfg = execute(t, "--terms", "7", "--report-terms", "3", "--samples", "64",
		"--timeout", "2s", "--output", "out.svg", "--no-window", "--url", "http://example.invalid/x.json")
	assert.Equal(t, 7, cfg.Terms)
	assert.Equal(t, 3, cfg.ReportTerms)
	assert.Equal(t, 64, cfg.FallbackPoints)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, "out.svg", cfg.Plot.Output)
	assert.True(t, cfg.Plot.NoWindow)
	assert.Equal(t, "http://example.invalid/x.json", cfg.URL)
}

func TestConfigFileKeepsUnsetKeys(t *testing.T) {
	path := writeConfig(t, `
terms: 12
report_terms: 20
fallback_points: 90
timeout: 4s
plot:
  output: file.png
`)

	cfg := execute(t, "--config", path)
	assert.Equal(t, 12, cfg.Terms)
	assert.Equal(t, 20, cfg.ReportTerms)
	assert.Equal(t, 90, cfg.FallbackPoints)
	assert.Equal(t, 4*time.Second, cfg.Timeout)
	assert.Equal(t, "file.png", cfg.Plot.Output)
	assert.False(t, cfg.Plot.NoWindow)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := writeConfig(t, `
terms: 12
report_terms: 20
fallback_points: 90
timeout: 4s
plot:
  output: file.png
`)

	cfg := execute(t, "--config", path, "--terms", "7", "--no-window")
	assert.Equal(t, 7, cfg.Terms)
	assert.True(t, cfg.Plot.NoWindow)
	assert.Equal(t, 20, cfg.ReportTerms)
	assert.Equal(t, 90, cfg.FallbackPoints)
	assert.Equal(t, 4*time.Second, cfg.Timeout)
	assert.Equal(t, "file.png", cfg.Plot.Output)

	cfg = execute(t, "--config", path, "--samples", "33", "--report-terms", "5",
		"--timeout", "1s", "--output", "flag.pdf", "--url", "http://example.invalid/y.json")
	assert.Equal(t, 33, cfg.FallbackPoints)
	assert.Equal(t, 5, cfg.ReportTerms)
	assert.Equal(t, time.Second, cfg.Timeout)
	assert.Equal(t, "flag.pdf", cfg.Plot.Output)
	assert.Equal(t, "http://example.invalid/y.json", cfg.URL)
	assert.Equal(t, 12, cfg.Terms)
}

func TestMissingConfigFile(t *testing.T) {
	cmd := newRootCmd(func(*cobra.Command, config.Config) error {
		t.Fatal("run must not be called")
		return nil
	})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, cmd.Execute())
}

func TestLoggerConfigLevels(t *testing.T) {
	assert.Equal(t, zapcore.InfoLevel, loggerConfig(false).Level.Level())
	assert.Equal(t, zapcore.DebugLevel, loggerConfig(true).Level.Level())
	assert.Equal(t, []string{"stderr"}, loggerConfig(false).OutputPaths)
}
