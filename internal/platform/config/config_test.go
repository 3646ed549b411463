package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_DefaultValues tests that hardcoded defaults are applied correctly.
// This test doesn't depend on YAML files - it only tests the defaults() function.
func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "quiz-generator", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "pretty", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Empty(t, cfg.Metrics.TextfilePath)
}

// TestLoad_EnvVarOverrides tests that environment variables override defaults.
func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("QUIZ_LOG_LEVEL", "debug")
	t.Setenv("QUIZ_LOG_FORMAT", "json")
	t.Setenv("QUIZ_APP_ENVIRONMENT", "test")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "test", cfg.App.Environment)
}

// TestLoad_UnderscoredKeys tests that keys containing underscores survive the env mapping.
func TestLoad_UnderscoredKeys(t *testing.T) {
	t.Setenv("QUIZ_METRICS_TEXTFILE_PATH", "/tmp/quiz.prom")
	t.Setenv("QUIZ_TELEMETRY_SAMPLING_RATE", "0.5")
	t.Setenv("QUIZ_LOG_FILE_MAX_BACKUPS", "7")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/quiz.prom", cfg.Metrics.TextfilePath)
	assert.Equal(t, 0.5, cfg.Telemetry.SamplingRate)
	assert.Equal(t, 7, cfg.Log.File.MaxBackups)
}

// TestLoad_NonExistentProfile tests that a missing profile file doesn't cause errors.
func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "quiz-generator", cfg.App.Name)
}

// TestLoad_ProfileFile tests that profile YAML overrides base YAML and defaults.
func TestLoad_ProfileFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "base.yaml"),
		[]byte("log:\n  level: info\n  format: text\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "qa.yaml"),
		[]byte("log:\n  level: error\n"), 0o600))

	t.Chdir(dir)

	cfg, err := Load("qa")
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

// TestLoad_BrokenYAML tests that unparsable files are reported.
func TestLoad_BrokenYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "base.yaml"),
		[]byte("log: [unterminated"), 0o600))

	t.Chdir(dir)

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading base config")
}

// TestLoad_BoolEnvVar tests that boolean environment variables are parsed correctly.
func TestLoad_BoolEnvVar(t *testing.T) {
	t.Setenv("QUIZ_TELEMETRY_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Telemetry.Enabled)
}

// TestLoad_LogFileDefaults tests that log file defaults are set correctly.
func TestLoad_LogFileDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, "./logs/quiz.log", cfg.Log.File.Path)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, DefaultLogFileMaxAgeDays, cfg.Log.File.MaxAgeDays)
	assert.True(t, cfg.Log.File.Compress)
}

// TestLoad_TelemetryDefaults tests that telemetry defaults are set correctly.
func TestLoad_TelemetryDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "quiz-generator", cfg.Telemetry.ServiceName)
	assert.Equal(t, 1.0, cfg.Telemetry.SamplingRate)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"QUIZ_LOG_LEVEL", "log.level"},
		{"QUIZ_APP_NAME", "app.name"},
		{"QUIZ_LOG_FILE_ENABLED", "log.file.enabled"},
		{"QUIZ_LOG_FILE_MAX_SIZE", "log.file.max_size"},
		{"QUIZ_TELEMETRY_SERVICE_NAME", "telemetry.service_name"},
		{"QUIZ_METRICS_TEXTFILE_PATH", "metrics.textfile_path"},
		{"QUIZ_DEBUG", "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, envKey(tt.input))
		})
	}
}

// TestDefaults tests that the defaults map contains expected values.
func TestDefaults(t *testing.T) {
	d := defaults()

	assert.Equal(t, "quiz-generator", d["app.name"])
	assert.Equal(t, "dev", d["app.version"])
	assert.Equal(t, "local", d["app.environment"])
	assert.Equal(t, "warn", d["log.level"])
	assert.Equal(t, "stderr", d["log.output"])
	assert.Equal(t, false, d["telemetry.enabled"])
}
