// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/arcmenu/internal/logging"
)

// CaptureLogs points the logger at a file in a temporary directory for the
// duration of the test and returns its path.
func CaptureLogs(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arcmenu.log")
	logging.Configure(path)
	t.Cleanup(func() { logging.Configure("") })
	return path
}

// WriteFile writes content to name inside dir, creating parent directories,
// and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadLog returns the contents of the log file at path, or "" when it does
// not exist yet.
func ReadLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatalf("read log %s: %v", path, err)
	}
	return string(data)
}
