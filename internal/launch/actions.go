package launch

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/atomicstack/arcmenu/internal/menu"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Context carries runtime data needed by actions.
type Context struct {
	Launcher       *Launcher
	ProfileManager string
	ConfigTool     string
	ShutdownCmd    string
	WebSearchURL   string
	Query          string
	Copy           func(string) error
}

// Action performs work for an entry (or for the launcher itself when the
// entry is zero) and reports an ActionResult.
type Action func(Context, menu.Entry) tea.Cmd

// ActionResult communicates the outcome of executing an action.
type ActionResult struct {
	ID    string
	Info  string
	Err   error
	Entry menu.Entry
}

// LaunchAction starts the entry as described by its Terminal flag.
func LaunchAction(ctx Context, entry menu.Entry) tea.Cmd {
	return func() tea.Msg {
		if ctx.Launcher == nil {
			return ActionResult{ID: "entry:launch", Entry: entry, Err: errors.New("launcher unavailable")}
		}
		res, err := ctx.Launcher.Launch(entry)
		if err != nil {
			return ActionResult{ID: "entry:launch", Entry: entry, Err: err}
		}
		info := fmt.Sprintf("Launched %s", entry.Name)
		if res.Tmux {
			info = fmt.Sprintf("Opened %s in a new tmux window", entry.Name)
		}
		return ActionResult{ID: "entry:launch", Entry: entry, Info: info}
	}
}

// TerminalAction starts the entry inside a terminal regardless of its flag.
func TerminalAction(ctx Context, entry menu.Entry) tea.Cmd {
	entry.Terminal = true
	cmd := LaunchAction(ctx, entry)
	return func() tea.Msg {
		res, _ := cmd().(ActionResult)
		res.ID = "entry:terminal"
		return res
	}
}

// CopyAction places the entry's command line on the clipboard.
func CopyAction(ctx Context, entry menu.Entry) tea.Cmd {
	copyFn := ctx.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	return func() tea.Msg {
		if err := copyFn(entry.Exec); err != nil {
			return ActionResult{ID: "entry:copy", Entry: entry, Err: fmt.Errorf("copy command: %w", err)}
		}
		return ActionResult{ID: "entry:copy", Entry: entry, Info: fmt.Sprintf("Copied %q", entry.Exec)}
	}
}

// WebSearchAction opens the configured search engine for the current query.
// An empty query does nothing.
func WebSearchAction(ctx Context, _ menu.Entry) tea.Cmd {
	query := strings.TrimSpace(ctx.Query)
	if query == "" {
		return nil
	}
	target := SearchURL(ctx.WebSearchURL, query)
	return runCmd(ctx, "button:search", "Web search", []string{"xdg-open", target})
}

// ProfileManagerAction starts the profile manager helper.
func ProfileManagerAction(ctx Context, _ menu.Entry) tea.Cmd {
	return scriptCmd(ctx, "button:profile", "Profile manager", ctx.ProfileManager)
}

// ConfigToolAction starts the configuration tool.
func ConfigToolAction(ctx Context, _ menu.Entry) tea.Cmd {
	return scriptCmd(ctx, "button:config", "Configuration tool", ctx.ConfigTool)
}

// ShutdownAction starts the shutdown helper.
func ShutdownAction(ctx Context, _ menu.Entry) tea.Cmd {
	return scriptCmd(ctx, "button:shutdown", "Shutdown", ctx.ShutdownCmd)
}

// SearchURL substitutes the escaped query into template (at %s, or appended
// when the template has no placeholder).
func SearchURL(template, query string) string {
	if strings.TrimSpace(template) == "" {
		template = "https://www.google.com/search?q=%s"
	}
	escaped := url.QueryEscape(query)
	if strings.Contains(template, "%s") {
		return strings.Replace(template, "%s", escaped, 1)
	}
	return template + escaped
}

// ScriptArgv runs path directly when it exists and through python3 otherwise.
func ScriptArgv(path string) ([]string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrEmptyCommand
	}
	if _, err := os.Stat(path); err == nil {
		return []string{path}, nil
	}
	return []string{"python3", path}, nil
}

func scriptCmd(ctx Context, id, label, path string) tea.Cmd {
	argv, err := ScriptArgv(path)
	if err != nil {
		return func() tea.Msg {
			return ActionResult{ID: id, Err: fmt.Errorf("%s is not configured", strings.ToLower(label))}
		}
	}
	return runCmd(ctx, id, label, argv)
}

func runCmd(ctx Context, id, label string, argv []string) tea.Cmd {
	return func() tea.Msg {
		if ctx.Launcher == nil {
			return ActionResult{ID: id, Err: errors.New("launcher unavailable")}
		}
		if err := ctx.Launcher.Run(label, argv); err != nil {
			return ActionResult{ID: id, Err: err}
		}
		return ActionResult{ID: id, Info: fmt.Sprintf("Started %s", strings.ToLower(label))}
	}
}
