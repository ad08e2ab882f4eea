// Package icon finds application icons on disk and renders them as
// terminal cells.
package icon

import (
	"image"
	"path/filepath"
	"strings"
	"sync"

	"github.com/atomicstack/arcmenu/internal/logging/events"
)

// Icon is a resolved, rendered icon.
type Icon struct {
	Name     string
	Path     string
	Size     int
	Rows     []string
	Fallback bool
}

// Width is the number of terminal columns the icon occupies.
func (i *Icon) Width() int {
	if i == nil {
		return 0
	}
	cols, _ := CellSize(i.Size)
	return cols
}

// Options configures a Resolver.
type Options struct {
	// Paths are searched after DefaultSearchPaths.
	Paths []string
	// Theme is consulted before hicolor.
	Theme string
	// ThemeBases overrides DefaultThemeBases.
	ThemeBases []string
	// Scaler is "magick" to rasterize through ImageMagick, anything else to
	// scale in process only.
	Scaler string
}

type cacheKey struct {
	name string
	size int
}

// Resolver looks icons up by name and size and caches the result, misses
// included. It is safe for concurrent use.
type Resolver struct {
	dirs       []string
	themes     []string
	themeBases []string
	external   bool

	mu    sync.RWMutex
	cache map[cacheKey]*Icon
}

// NewResolver builds a Resolver from opts.
func NewResolver(opts Options) *Resolver {
	dirs := make([]string, 0, len(DefaultSearchPaths)+len(opts.Paths))
	seen := make(map[string]bool)
	for _, dir := range append(append([]string(nil), DefaultSearchPaths...), opts.Paths...) {
		dir = strings.TrimSpace(dir)
		if dir == "" || seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	themes := []string{"hicolor"}
	if theme := strings.TrimSpace(opts.Theme); theme != "" && theme != "hicolor" {
		themes = []string{theme, "hicolor"}
	}
	bases := opts.ThemeBases
	if len(bases) == 0 {
		bases = DefaultThemeBases
	}
	return &Resolver{
		dirs:       dirs,
		themes:     themes,
		themeBases: append([]string(nil), bases...),
		external:   strings.EqualFold(strings.TrimSpace(opts.Scaler), ScalerMagick),
		cache:      make(map[cacheKey]*Icon),
	}
}

// Reconfigured returns an empty-cached Resolver built from opts. Theme bases
// carry over from r unless opts sets them.
func (r *Resolver) Reconfigured(opts Options) *Resolver {
	if r == nil {
		return nil
	}
	if len(opts.ThemeBases) == 0 {
		opts.ThemeBases = r.themeBases
	}
	return NewResolver(opts)
}

// Find returns the file that would be used for name at size.
func (r *Resolver) Find(name string, size int) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	if filepath.IsAbs(name) {
		if isImageFile(name) {
			return name, true
		}
		return "", false
	}
	candidates := candidateNames(name)
	for _, candidate := range candidates {
		if path, ok := findInThemes(r.themeBases, r.themes, candidate, size); ok {
			return path, true
		}
	}
	return findInDirs(r.dirs, name)
}

// Resolve returns the icon for name at size, rendering and caching it on
// first use. A miss falls back to the generic executable icon and then to a
// lettered placeholder; the result is never nil.
func (r *Resolver) Resolve(name string, size int) *Icon {
	key := cacheKey{name: name, size: size}
	r.mu.RLock()
	cached, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return cached
	}

	ic := r.load(name, size)
	r.mu.Lock()
	if existing, ok := r.cache[key]; ok {
		ic = existing
	} else {
		r.cache[key] = ic
	}
	r.mu.Unlock()
	return ic
}

// Forget drops every cached size of name so the next Resolve rereads it.
func (r *Resolver) Forget(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.cache {
		if key.name == name {
			delete(r.cache, key)
		}
	}
}

// Len reports the number of cached icons.
func (r *Resolver) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}

func (r *Resolver) load(name string, size int) *Icon {
	cols, rows := CellSize(size)
	ic := &Icon{Name: name, Size: size}
	if cols == 0 {
		ic.Fallback = true
		return ic
	}
	for _, lookup := range []string{name, FallbackName} {
		path, ok := r.Find(lookup, size)
		if !ok {
			events.Icon.Miss(lookup, size)
			continue
		}
		img, ok := r.rasterize(path, size)
		if !ok {
			continue
		}
		events.Icon.Resolved(lookup, size, path)
		ic.Path = path
		ic.Fallback = lookup != name
		ic.Rows = renderHalfBlocks(scale(img, cols, rows*2), cols, rows)
		return ic
	}
	ic.Fallback = true
	ic.Rows = placeholder(name, cols, rows)
	return ic
}

// rasterize decodes path. Vector formats and icons above 32 px go through
// ImageMagick when enabled; a missing or failing helper falls back to the
// in-process decoders.
func (r *Resolver) rasterize(path string, size int) (image.Image, bool) {
	if r.external && (size > 32 || needsExternal(path)) {
		img, err := rasterizeExternal(path, size)
		if err == nil {
			return img, true
		}
		events.Icon.ScaleFallback(path, err)
	}
	img, err := decodeFile(path)
	if err != nil {
		return nil, false
	}
	return img, true
}
