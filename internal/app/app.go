package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/arcmenu/internal/backend"
	"github.com/atomicstack/arcmenu/internal/history"
	"github.com/atomicstack/arcmenu/internal/icon"
	"github.com/atomicstack/arcmenu/internal/launch"
	"github.com/atomicstack/arcmenu/internal/logging"
	"github.com/atomicstack/arcmenu/internal/menu"
	"github.com/atomicstack/arcmenu/internal/settings"
	"github.com/atomicstack/arcmenu/internal/sysinfo"
	"github.com/atomicstack/arcmenu/internal/tmux"
	"github.com/atomicstack/arcmenu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	MenuFile     string
	SettingsPath string
	SocketPath   string
	Width        int
	Height       int
	IconSize     int
	NoIcons      bool
	BatchSize    int
	ShowFooter   bool
	Verbose      bool
	Watch        bool
}

// ResolveSettingsPath returns the explicit settings path or the default one.
func ResolveSettingsPath(cfg Config) (string, error) {
	if path := strings.TrimSpace(cfg.SettingsPath); path != "" {
		return path, nil
	}
	return settings.DefaultPath()
}

// LoadSettings reads the settings file and applies the command-line
// overrides. Load errors are logged; the returned settings are always usable.
func LoadSettings(cfg Config, path string) settings.Config {
	s, err := settings.Load(path)
	if err != nil {
		logging.Error(err)
	}
	applyOverrides(cfg, s)
	return s
}

func applyOverrides(cfg Config, s settings.Config) {
	if cfg.IconSize > 0 {
		s.Set("window", "icon_size", cfg.IconSize)
	}
	if cfg.BatchSize > 0 {
		s.Set("behavior", "batch_size", cfg.BatchSize)
	}
}

// MenuPath picks the menu source: the flag, then the settings file, then the
// built-in default.
func MenuPath(cfg Config, s settings.Config) string {
	if path := strings.TrimSpace(cfg.MenuFile); path != "" {
		return path
	}
	if path := strings.TrimSpace(s.Paths().MenuFile); path != "" {
		return path
	}
	return menu.DefaultPath
}

// LoadMenu reads the menu source. A missing or broken source yields the
// fallback categories.
func LoadMenu(cfg Config, s settings.Config) *menu.CategoryMap {
	categories, _ := menu.Load(MenuPath(cfg, s))
	return categories
}

// WatchTargets lists the files whose changes trigger a reload.
func WatchTargets(cfg Config, s settings.Config, settingsPath string) []backend.Target {
	return []backend.Target{
		{Kind: backend.KindMenu, Path: MenuPath(cfg, s)},
		{Kind: backend.KindSettings, Path: settingsPath},
		{Kind: backend.KindProfile, Path: s.Paths().ProfilePic},
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	settingsPath, err := ResolveSettingsPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve settings path: %w", err)
	}
	s := LoadSettings(cfg, settingsPath)
	categories := LoadMenu(cfg, s)

	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		// terminal entries still start through the wrapper
		logging.Error(fmt.Errorf("resolve tmux socket: %w", err))
	}
	launchOpts := s.Launch()
	launcher := launch.New(launch.Options{
		Terminal:     launchOpts.Terminal,
		TerminalMode: launchOpts.TerminalMode,
		Environ:      os.Environ(),
		SocketPath:   socketPath,
	})

	var resolver *icon.Resolver
	if !cfg.NoIcons {
		iconOpts := s.Icons()
		resolver = icon.NewResolver(icon.Options{
			Paths:  iconOpts.Paths,
			Theme:  iconOpts.Theme,
			Scaler: iconOpts.Scaler,
		})
	}

	store := openHistory(s, settingsPath)
	if store != nil {
		defer store.Close()
	}

	var watcher *backend.Watcher
	if cfg.Watch {
		watcher, err = backend.NewWatcher(WatchTargets(cfg, s, settingsPath), backend.DefaultDebounce)
		if err != nil {
			logging.Error(err)
			watcher = nil
		} else {
			defer watcher.Stop()
		}
	}

	reload := func() (ui.Reloaded, error) {
		next, err := settings.Load(settingsPath)
		if err != nil {
			return ui.Reloaded{}, err
		}
		applyOverrides(cfg, next)
		return ui.Reloaded{
			Settings:   next,
			Categories: LoadMenu(cfg, next),
			Targets:    WatchTargets(cfg, next, settingsPath),
		}, nil
	}

	model := ui.NewModel(ui.Options{
		Settings:   s,
		Categories: categories,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Watcher:    watcher,
		Resolver:   resolver,
		Launcher:   launcher,
		History:    store,
		Host:       sysinfo.Collect(),
		Reload:     reload,
	})
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func openHistory(s settings.Config, settingsPath string) *history.Store {
	opts := s.History()
	if !opts.Enabled {
		return nil
	}
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		path = history.DefaultPath(settingsPath)
	}
	store, err := history.Open(path)
	if err != nil {
		logging.Error(err)
		return nil
	}
	return store
}
