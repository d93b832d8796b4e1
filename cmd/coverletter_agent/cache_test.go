package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheListCommand_EmptyCache(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	cmd := exec.Command(binaryPath, "cache", "list", "--cache-dir", tmpDir)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command should succeed: %s", string(output))
	assert.Contains(t, string(output), "Resume")
	assert.Contains(t, string(output), "API key")
	assert.NotContains(t, string(output), "yes")
}

func TestCacheListCommand_ShowsCachedCategories(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	_ = os.WriteFile(filepath.Join(tmpDir, "Resume.txt"), []byte("resume text"), 0600)

	cmd := exec.Command(binaryPath, "cache", "list", "--cache-dir", tmpDir)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command should succeed: %s", string(output))
	assert.Contains(t, string(output), "yes")
}

func TestCacheClearCommand_UnknownCategory(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	cmd := exec.Command(binaryPath, "cache", "clear",
		"--cache-dir", tmpDir,
		"--category", "Nonsense")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "unknown category")
}

func TestCacheClearCommand_ClearsAll(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	_ = os.WriteFile(filepath.Join(tmpDir, "Resume.txt"), []byte("resume text"), 0600)
	_ = os.WriteFile(filepath.Join(tmpDir, "API_key.txt"), []byte("key"), 0600)

	cmd := exec.Command(binaryPath, "cache", "clear", "--cache-dir", tmpDir)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command should succeed: %s", string(output))
	assert.Contains(t, string(output), "Cleared all cached inputs.")

	_, statErr := os.Stat(filepath.Join(tmpDir, "Resume.txt"))
	assert.True(t, os.IsNotExist(statErr))
}
