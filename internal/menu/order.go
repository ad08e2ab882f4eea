package menu

import "sort"

// PreferredOrder lists the categories that lead the sidebar, in display order.
var PreferredOrder = []string{
	"Desktop",
	"System",
	"Setup",
	"Utility",
	"Filesystem",
	"Graphic",
	"Document",
	"Business",
	"Personal",
	"Network",
	"Internet",
	"Multimedia",
	"Fun",
	"Help",
	"Leave",
}

const defaultCategoryIcon = "applications-other"

var categoryIcons = map[string]string{
	"Desktop":    "preferences-desktop",
	"System":     "applications-system",
	"Setup":      "preferences-system",
	"Utility":    "applications-utilities",
	"Filesystem": "folder",
	"Graphic":    "applications-graphics",
	"Document":   "x-office-document",
	"Business":   "x-office-spreadsheet",
	"Personal":   "x-office-calendar",
	"Network":    "applications-internet",
	"Internet":   "applications-internet",
	"Multimedia": "applications-multimedia",
	"Fun":        "applications-games",
	"Help":       "help-browser",
	"Leave":      "system-shutdown",
	"Recent":     "document-open-recent",
}

// CategoryIcon returns the theme icon name for a category.
func CategoryIcon(category string) string {
	if name, ok := categoryIcons[category]; ok {
		return name
	}
	return defaultCategoryIcon
}

// OrderedCategories returns the sidebar order: preferred categories first,
// then any remaining categories alphabetically. Excluded names are skipped.
func OrderedCategories(c *CategoryMap, excluded []string) []string {
	if c == nil {
		return nil
	}
	skip := make(map[string]struct{}, len(excluded))
	for _, name := range excluded {
		skip[name] = struct{}{}
	}
	added := make(map[string]struct{}, c.Len())
	ordered := make([]string, 0, c.Len())
	for _, name := range PreferredOrder {
		if _, ok := skip[name]; ok {
			continue
		}
		if c.Has(name) {
			ordered = append(ordered, name)
			added[name] = struct{}{}
		}
	}
	rest := make([]string, 0, c.Len())
	for _, name := range c.Names() {
		if _, ok := added[name]; ok {
			continue
		}
		if _, ok := skip[name]; ok {
			continue
		}
		rest = append(rest, name)
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}
