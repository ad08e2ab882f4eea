package sysinfo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestHostnameReadsFile(t *testing.T) {
	orig := hostnameFile
	hostnameFile = writeFile(t, t.TempDir(), "hostname", "puppypc\n")
	t.Cleanup(func() { hostnameFile = orig })
	if got := Hostname(); got != "puppypc" {
		t.Fatalf("expected puppypc, got %q", got)
	}
}

func TestHostnameBlankFileFallsBack(t *testing.T) {
	orig := hostnameFile
	hostnameFile = writeFile(t, t.TempDir(), "hostname", "   \n")
	t.Cleanup(func() { hostnameFile = orig })
	if got := Hostname(); got == "" {
		t.Fatalf("expected a non-empty hostname")
	}
}

func TestOSNamePrefersPrettyName(t *testing.T) {
	dir := t.TempDir()
	orig := osReleaseFiles
	osReleaseFiles = []string{
		filepath.Join(dir, "missing"),
		writeFile(t, dir, "os-release", "# comment\nNAME=\"Debian GNU/Linux\"\nPRETTY_NAME=\"Trixiepup64 Wayland 11\"\nID=debian\n"),
	}
	t.Cleanup(func() { osReleaseFiles = orig })
	if got := OSName(); got != "Trixiepup64 Wayland 11" {
		t.Fatalf("unexpected OS name %q", got)
	}
}

func TestOSNameFallbacks(t *testing.T) {
	dir := t.TempDir()
	orig := osReleaseFiles
	t.Cleanup(func() { osReleaseFiles = orig })

	osReleaseFiles = []string{writeFile(t, dir, "os-release", "NAME='Alpine Linux'\n")}
	if got := OSName(); got != "Alpine Linux" {
		t.Fatalf("expected NAME fallback, got %q", got)
	}
	osReleaseFiles = []string{filepath.Join(dir, "missing")}
	if got := OSName(); got != "Linux" {
		t.Fatalf("expected Linux placeholder, got %q", got)
	}
}

func TestKernel(t *testing.T) {
	orig := uname
	t.Cleanup(func() { uname = orig })

	uname = func(uts *unix.Utsname) error {
		copy(uts.Release[:], "6.1.0-13-amd64")
		return nil
	}
	if got := Kernel(); got != "6.1.0-13-amd64" {
		t.Fatalf("unexpected kernel %q", got)
	}
	uname = func(*unix.Utsname) error { return errors.New("boom") }
	if got := Kernel(); got != "unknown" {
		t.Fatalf("expected unknown kernel, got %q", got)
	}
}
