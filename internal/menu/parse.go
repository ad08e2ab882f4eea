package menu

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atomicstack/arcmenu/internal/logging"
	"github.com/atomicstack/arcmenu/internal/logging/events"
)

// DefaultPath is the labwc menu consulted when no override is configured.
const DefaultPath = "/root/.config/labwc/menu.xml"

const rootMenuID = "root-menu"

// ErrNoCategories reports a menu source that parsed but produced nothing.
var ErrNoCategories = errors.New("menu source contains no launchable entries")

type xmlDocument struct {
	Menus []xmlMenu `xml:"menu"`
	Items []xmlItem `xml:"item"`
}

type xmlMenu struct {
	ID    string    `xml:"id,attr"`
	Label string    `xml:"label,attr"`
	Items []xmlItem `xml:"item"`
	Menus []xmlMenu `xml:"menu"`
}

type xmlItem struct {
	Label   string      `xml:"label,attr"`
	Icon    string      `xml:"icon,attr"`
	Actions []xmlAction `xml:"action"`
}

type xmlAction struct {
	Name    string `xml:"name,attr"`
	Command string `xml:"command"`
}

// Parse decodes an Openbox/labwc menu definition. Every labelled menu at any
// depth becomes a category holding its direct items; items of the root menu
// whose label mentions Help or Leave are additionally grouped under those
// names.
func Parse(r io.Reader) (*CategoryMap, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	categories := NewCategoryMap()
	var root *xmlMenu
	walkMenus(doc.Menus, func(m *xmlMenu) {
		if m.ID == rootMenuID && root == nil {
			root = m
		}
		label := strings.TrimSpace(m.Label)
		if label == "" {
			return
		}
		if entries := entriesFromItems(m.Items); len(entries) > 0 {
			categories.Replace(label, entries)
		}
	})
	if root != nil {
		for _, entry := range entriesFromItems(root.Items) {
			switch {
			case strings.Contains(entry.Name, "Help"):
				categories.Add("Help", entry)
			case strings.Contains(entry.Name, "Leave"):
				categories.Add("Leave", entry)
			}
		}
	}
	if categories.Len() == 0 {
		return nil, ErrNoCategories
	}
	return categories, nil
}

// Load reads the menu at path, falling back to the built-in set whenever the
// source is missing, malformed or empty. The returned error describes why the
// fallback was used and is informational only.
func Load(path string) (*CategoryMap, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("open menu %s: %w", path, err)
		logging.Error(err)
		events.Menu.Fallback(path, err)
		return Fallback(), err
	}
	defer f.Close()
	categories, err := Parse(f)
	if err != nil {
		err = fmt.Errorf("parse menu %s: %w", path, err)
		logging.Error(err)
		events.Menu.Fallback(path, err)
		return Fallback(), err
	}
	events.Menu.Loaded(path, categories.Names(), categories.Total())
	return categories, nil
}

func walkMenus(menus []xmlMenu, visit func(*xmlMenu)) {
	for i := range menus {
		visit(&menus[i])
		walkMenus(menus[i].Menus, visit)
	}
}

func entriesFromItems(items []xmlItem) []Entry {
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		label := item.Label
		command := itemCommand(item)
		if label == "" || command == "" {
			continue
		}
		entries = append(entries, Entry{
			Name:     label,
			Exec:     command,
			Icon:     item.Icon,
			Comment:  label,
			Terminal: isTerminalCommand(command),
		})
	}
	return entries
}

func itemCommand(item xmlItem) string {
	for _, action := range item.Actions {
		if command := strings.TrimSpace(action.Command); command != "" {
			return command
		}
	}
	return ""
}
