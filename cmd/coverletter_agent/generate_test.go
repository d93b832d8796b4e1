package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCommand_MissingConfigFile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "generate",
		"--config", "/nonexistent/config.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to load config")
}

func TestGenerateCommand_InvalidConfigJSON(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.json")
	_ = os.WriteFile(configFile, []byte(`{invalid json`), 0644)

	cmd := exec.Command(binaryPath, "generate",
		"--config", configFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to load config")
}

func TestGenerateCommand_UnknownConfigField(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.json")
	_ = os.WriteFile(configFile, []byte(`{"api_keyy": "typo"}`), 0644)

	cmd := exec.Command(binaryPath, "generate",
		"--config", configFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "config error")
}
