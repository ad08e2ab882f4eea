package icon

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultSearchPaths are scanned, in order, before any configured paths.
var DefaultSearchPaths = []string{
	"/usr/share/pixmaps",
	"/usr/share/icons/hicolor/48x48/apps",
	"/usr/share/icons/hicolor/32x32/apps",
	"/usr/share/icons/hicolor/64x64/apps",
	"/usr/local/lib/X11/pixmaps",
	"/usr/share/pixmaps/puppy",
}

// DefaultThemeBases hold icon themes laid out as <base>/<theme>/<size>/apps.
var DefaultThemeBases = []string{"/usr/share/icons"}

// FallbackName is looked up when an entry's own icon cannot be found.
const FallbackName = "application-x-executable"

var searchExtensions = []string{".png", ".svg", ".xpm", ".ico", ".jpg", ".jpeg", ".gif", ""}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".svg":  true,
	".xpm":  true,
	".ico":  true,
	".tiff": true,
	".tif":  true,
	".webp": true,
}

// isImageFile reports whether path is a regular file that looks like an
// image, either by extension or by its leading magic bytes.
func isImageFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if imageExtensions[strings.ToLower(filepath.Ext(path))] {
		return true
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	header := make([]byte, 16)
	n, _ := io.ReadFull(f, header)
	return hasImageMagic(header[:n])
}

func hasImageMagic(header []byte) bool {
	lower := bytes.ToLower(header)
	switch {
	case bytes.HasPrefix(header, []byte("\x89PNG")),
		bytes.HasPrefix(header, []byte("\xff\xd8\xff")),
		bytes.HasPrefix(header, []byte("GIF87a")),
		bytes.HasPrefix(header, []byte("GIF89a")),
		bytes.HasPrefix(header, []byte("BM")),
		bytes.HasPrefix(header, []byte("<?xml")),
		bytes.Contains(lower, []byte("<svg")),
		bytes.Contains(header, []byte("XPM")):
		return true
	}
	return false
}

// findInDirs looks for name in each directory: first the exact name with
// every known extension, then any file whose name starts with name.
func findInDirs(dirs []string, name string) (string, bool) {
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		for _, ext := range searchExtensions {
			candidate := filepath.Join(dir, name+ext)
			if isImageFile(candidate) {
				return candidate, true
			}
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			if strings.HasPrefix(entry.Name(), name) {
				names = append(names, entry.Name())
			}
		}
		sort.Strings(names)
		for _, n := range names {
			candidate := filepath.Join(dir, n)
			if isImageFile(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

// findInThemes looks for name in the sized and scalable app directories of
// each theme.
func findInThemes(bases, themes []string, name string, size int) (string, bool) {
	dim := strconv.Itoa(size)
	for _, base := range bases {
		for _, theme := range themes {
			if theme == "" {
				continue
			}
			candidates := []string{
				filepath.Join(base, theme, dim+"x"+dim, "apps", name+".png"),
				filepath.Join(base, theme, "scalable", "apps", name+".svg"),
			}
			for _, candidate := range candidates {
				if isImageFile(candidate) {
					return candidate, true
				}
			}
		}
	}
	return "", false
}

// candidateNames lists the spellings tried for an icon name: the bare stem,
// its lowercase form, and the name as written.
func candidateNames(name string) []string {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	out := make([]string, 0, 3)
	seen := make(map[string]bool, 3)
	for _, n := range []string{stem, strings.ToLower(stem), name} {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
