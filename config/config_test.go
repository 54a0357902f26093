package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
server:
  port: 8080
network:
  source: csv
  lines: /data/lines.csv
  stepFree: /data/step_free.csv
logging:
  level: debug
  json: true
output:
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "/data/lines.csv", cfg.Network.LinesPath)
	assert.Equal(t, "/data/step_free.csv", cfg.Network.StepFreePath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.JSON)
	assert.Equal(t, "json", cfg.Output.Format)
}

// TestLoad_MissingFile tests error handling for an explicit path that does not exist
func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

// TestLoad_InvalidYAML tests error handling for invalid YAML
func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "invalid: yaml: content: [[[")
	_, err := Load(path)
	assert.Error(t, err)
}

// TestLoad_EmptyFile tests that an empty file keeps every default
func TestLoad_EmptyFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_NoFileInSearchPath(t *testing.T) {
	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	require.NoError(t, os.Chdir(t.TempDir()))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 16181, cfg.Server.Port)
	assert.Equal(t, SourceCSV, cfg.Network.Source)
}

func TestLoad_SearchPathFound(t *testing.T) {
	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	dir := t.TempDir()
	writeConfig(t, dir, "server:\n  port: 9999\n")
	require.NoError(t, os.Chdir(dir))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WMR_PORT", "9001")
	t.Setenv("WMR_LINES", "/env/lines.csv")
	t.Setenv("WMR_LOG_LEVEL", "warn")

	path := writeConfig(t, t.TempDir(), "server:\n  port: 8080\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9001, cfg.Server.Port)
	assert.Equal(t, "/env/lines.csv", cfg.Network.LinesPath)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_BadEnvPort(t *testing.T) {
	t.Setenv("WMR_PORT", "eighty")
	_, err := Load(writeConfig(t, t.TempDir(), ""))
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*AppConfig) {}},
		{name: "port zero", mutate: func(c *AppConfig) { c.Server.Port = 0 }, wantErr: true},
		{name: "port too large", mutate: func(c *AppConfig) { c.Server.Port = 70000 }, wantErr: true},
		{name: "unknown source", mutate: func(c *AppConfig) { c.Network.Source = "xml" }, wantErr: true},
		{name: "csv without lines", mutate: func(c *AppConfig) { c.Network.LinesPath = "" }, wantErr: true},
		{name: "gtfs without zip", mutate: func(c *AppConfig) { c.Network.Source = SourceGTFS }, wantErr: true},
		{name: "gtfs with zip", mutate: func(c *AppConfig) {
			c.Network.Source = SourceGTFS
			c.Network.GTFSPath = "feed.zip"
		}},
		{name: "bad level", mutate: func(c *AppConfig) { c.Logging.Level = "loud" }, wantErr: true},
		{name: "bad format", mutate: func(c *AppConfig) { c.Output.Format = "yaml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadAppConfig_SetsGlobal(t *testing.T) {
	orig := Config
	defer func() { Config = orig }()

	require.NoError(t, LoadAppConfig(writeConfig(t, t.TempDir(), "server:\n  port: 7000\n")))
	assert.Equal(t, 7000, Config.Server.Port)
}
