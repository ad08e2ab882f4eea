package menu

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Entry represents a launchable application parsed from the menu source.
type Entry struct {
	Name     string
	Exec     string
	Icon     string
	Comment  string
	Terminal bool
	Category string
}

// Key identifies an entry independent of the category it was listed under.
func (e Entry) Key() string {
	return e.Name + "\x00" + e.Exec
}

// CategoryMap maps category names to their entries, preserving the order in
// which categories were first seen. A category only exists while it holds at
// least one entry.
type CategoryMap struct {
	m *orderedmap.OrderedMap[string, []Entry]
}

// NewCategoryMap returns an empty map.
func NewCategoryMap() *CategoryMap {
	return &CategoryMap{m: orderedmap.New[string, []Entry]()}
}

// Add appends entry to the named category, creating it when missing.
func (c *CategoryMap) Add(category string, entry Entry) {
	category = strings.TrimSpace(category)
	if category == "" {
		return
	}
	entry.Category = category
	existing, _ := c.m.Get(category)
	c.m.Set(category, append(existing, entry))
}

// Replace swaps the entries of a category in place. An empty slice removes
// the category.
func (c *CategoryMap) Replace(category string, entries []Entry) {
	if len(entries) == 0 {
		c.m.Delete(category)
		return
	}
	dup := make([]Entry, len(entries))
	for i, entry := range entries {
		entry.Category = category
		dup[i] = entry
	}
	c.m.Set(category, dup)
}

// Get returns a copy of the entries for category.
func (c *CategoryMap) Get(category string) ([]Entry, bool) {
	if c == nil || c.m == nil {
		return nil, false
	}
	entries, ok := c.m.Get(category)
	if !ok {
		return nil, false
	}
	return CloneEntries(entries), true
}

// Has reports whether the category exists.
func (c *CategoryMap) Has(category string) bool {
	if c == nil || c.m == nil {
		return false
	}
	_, ok := c.m.Get(category)
	return ok
}

// Len returns the number of categories.
func (c *CategoryMap) Len() int {
	if c == nil || c.m == nil {
		return 0
	}
	return c.m.Len()
}

// Names lists the categories in insertion order.
func (c *CategoryMap) Names() []string {
	if c == nil || c.m == nil {
		return nil
	}
	names := make([]string, 0, c.m.Len())
	for pair := c.m.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// All returns every entry across categories in insertion order.
func (c *CategoryMap) All() []Entry {
	if c == nil || c.m == nil {
		return nil
	}
	var out []Entry
	for pair := c.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value...)
	}
	return out
}

// Total returns the number of entries across all categories.
func (c *CategoryMap) Total() int {
	total := 0
	if c == nil || c.m == nil {
		return total
	}
	for pair := c.m.Oldest(); pair != nil; pair = pair.Next() {
		total += len(pair.Value)
	}
	return total
}

// CloneEntries produces a shallow copy of the provided entries.
func CloneEntries(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}

// Fallback returns the built-in category map used when the menu source is
// missing, unreadable or empty.
func Fallback() *CategoryMap {
	c := NewCategoryMap()
	c.Add("System", Entry{Name: "Terminal", Exec: "lxterminal", Icon: "terminal", Comment: "Terminal emulator"})
	c.Add("System", Entry{Name: "File Manager", Exec: "spacefm", Icon: "spacefm", Comment: "File manager"})
	c.Add("Internet", Entry{Name: "Firefox", Exec: "firefox", Icon: "firefox", Comment: "Web browser"})
	return c
}

func isTerminalCommand(command string) bool {
	lower := strings.ToLower(command)
	return strings.Contains(lower, "terminal") || strings.Contains(lower, "urxvt")
}
