package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"api_key": "sk-test-key",
		"model": "gemini-2.5-pro",
		"output": "letter.txt",
		"job_url": "https://example.com/job",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "sk-test-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, "letter.txt", cfg.Output)
	assert.Equal(t, "https://example.com/job", cfg.JobURL)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{ invalid json }`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_UnknownFieldRejectedBySchema(t *testing.T) {
	path := writeConfig(t, `{"api_keyy": "typo"}`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config error")
}

func TestLoadConfig_WrongTypeRejectedBySchema(t *testing.T) {
	path := writeConfig(t, `{"verbose": "yes"}`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_InvalidJobURL(t *testing.T) {
	cfg := &Config{JobURL: "not a url"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		APIKey: "sk-test-key",
		Model:  "gemini-2.5-flash",
		JobURL: "https://example.com/job",
	}

	assert.NoError(t, cfg.Validate())
}

func TestValidate_CacheDirMustBeDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	cfg := &Config{CacheDir: file}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
