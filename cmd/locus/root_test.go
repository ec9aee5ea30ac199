package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/reglet-dev/locus/internal/application/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	require.NoError(t, loadConfig(v, ""))

	assert.Equal(t, "table", v.GetString("format"))
	assert.Equal(t, 4, v.GetInt("concurrency"))
	assert.Empty(t, v.ConfigFileUsed())
}

func TestLoadConfig_UserConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "locus"), 0o700))
	writeScene(t, filepath.Join(dir, "locus"), "config.yaml", "format: json\nconcurrency: 8\n")

	v := viper.New()
	require.NoError(t, loadConfig(v, ""))

	assert.Equal(t, "json", v.GetString("format"))
	assert.Equal(t, 8, v.GetInt("concurrency"))
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeScene(t, t.TempDir(), "locus.yaml", "format: json\n")
	t.Setenv("LOCUS_FORMAT", "yaml")
	t.Setenv("LOCUS_LOG_FORMAT", "json")

	v := viper.New()
	require.NoError(t, loadConfig(v, path))

	assert.Equal(t, "yaml", v.GetString("format"))
	assert.Equal(t, "json", v.GetString("log-format"))
	assert.Equal(t, path, v.ConfigFileUsed())
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))

	var cfgErr *apperrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "config", cfgErr.Aspect)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, false, "json")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("scene checked", "path", "a.yaml")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "scene checked", line["msg"])
	assert.Equal(t, "a.yaml", line["path"])

	buf.Reset()
	logger, err = newLogger(&buf, true, "text")
	require.NoError(t, err)
	logger.Debug("shown")
	assert.Contains(t, buf.String(), "level=DEBUG msg=shown")

	_, err = newLogger(&buf, false, "xml")
	var cfgErr *apperrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "log-format", cfgErr.Aspect)
}
