// Package sysinfo gathers the host details shown in the launcher header.
package sysinfo

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// UnknownHost is shown when the hostname cannot be read.
const UnknownHost = "Unknown Host"

// Info describes the running system.
type Info struct {
	Hostname string
	OS       string
	Kernel   string
}

var (
	hostnameFile   = "/etc/hostname"
	osReleaseFiles = []string{"/etc/os-release", "/usr/lib/os-release"}
	uname          = unix.Uname
)

// Collect reads the hostname, the distribution's pretty name and the kernel
// release. Missing sources yield placeholder values rather than errors.
func Collect() Info {
	return Info{
		Hostname: Hostname(),
		OS:       OSName(),
		Kernel:   Kernel(),
	}
}

// Hostname reads /etc/hostname, falling back to the kernel's node name.
func Hostname() string {
	if data, err := os.ReadFile(hostnameFile); err == nil {
		if name := strings.TrimSpace(string(data)); name != "" {
			return name
		}
	}
	if name, err := os.Hostname(); err == nil && strings.TrimSpace(name) != "" {
		return strings.TrimSpace(name)
	}
	return UnknownHost
}

// OSName returns PRETTY_NAME (or NAME) from os-release.
func OSName() string {
	for _, path := range osReleaseFiles {
		fields, err := readOSRelease(path)
		if err != nil {
			continue
		}
		if name := fields["PRETTY_NAME"]; name != "" {
			return name
		}
		if name := fields["NAME"]; name != "" {
			return name
		}
	}
	return "Linux"
}

// Kernel returns the kernel release, e.g. "6.1.0-13-amd64".
func Kernel() string {
	var uts unix.Utsname
	if err := uname(&uts); err != nil {
		return "unknown"
	}
	return unix.ByteSliceToString(uts.Release[:])
}

func readOSRelease(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fields := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.Trim(strings.TrimSpace(value), `"'`)
	}
	return fields, scanner.Err()
}
