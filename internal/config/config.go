package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/arcmenu/internal/app"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
	Watch   bool
}

const (
	envMenuFile   = "ARCMENU_MENU_FILE"
	envSettings   = "ARCMENU_CONFIG"
	envSocketPath = "ARCMENU_TMUX_SOCKET"
	envWidth      = "ARCMENU_WIDTH"
	envHeight     = "ARCMENU_HEIGHT"
	envIconSize   = "ARCMENU_ICON_SIZE"
	envNoIcons    = "ARCMENU_NO_ICONS"
	envBatchSize  = "ARCMENU_BATCH_SIZE"
	envShowFooter = "ARCMENU_FOOTER"
	envNoWatch    = "ARCMENU_NO_WATCH"
	envVerbose    = "ARCMENU_VERBOSE"
	envTrace      = "ARCMENU_TRACE"
	envLogFile    = "ARCMENU_LOG_FILE"
)

// IconSizes lists the accepted icon sizes; 0 keeps the configured size.
var IconSizes = []int{0, 16, 24, 32, 40, 48}

// Builder assembles a Config from a flag set once it has been parsed.
type Builder func(args []string) Config

// NewFlagSet registers the launcher flags, with defaults taken from the
// environment, and returns the set with a Builder for the parsed values.
func NewFlagSet(name string, environ []string) (*pflag.FlagSet, Builder) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	menuFile := fs.String("menu-file", envOrDefault(env, envMenuFile, ""), "path to the window-manager menu XML (overrides the settings file)")
	settingsPath := fs.String("config", envOrDefault(env, envSettings, ""), "path to the settings JSON file")
	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket used for terminal entries")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	iconSize := fs.Int("icon-size", envOrInt(env, envIconSize, 0), "icon size in pixels (0 uses the settings file)")
	noIcons := fs.Bool("no-icons", envOrBool(env, envNoIcons, false), "render tiles without icons")
	batchSize := fs.Int("batch-size", envOrInt(env, envBatchSize, 0), "tiles added per population step (0 uses the settings file)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	noWatch := fs.Bool("no-watch", envOrBool(env, envNoWatch, false), "do not reload when the menu or settings change")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	build := func(args []string) Config {
		return Config{
			App: app.Config{
				MenuFile:     *menuFile,
				SettingsPath: *settingsPath,
				SocketPath:   *socket,
				Width:        *width,
				Height:       *height,
				IconSize:     *iconSize,
				NoIcons:      *noIcons,
				BatchSize:    *batchSize,
				ShowFooter:   *footer,
				Verbose:      *verbose,
				Watch:        !*noWatch,
			},
			Logging: Logging{
				FilePath: *logFile,
				Trace:    *trace,
			},
			Features: Features{
				Verbose: *verbose,
				Watch:   !*noWatch,
			},
			Flags: map[string]string{
				"menuFile":  *menuFile,
				"config":    *settingsPath,
				"socket":    *socket,
				"width":     strconv.Itoa(*width),
				"height":    strconv.Itoa(*height),
				"iconSize":  strconv.Itoa(*iconSize),
				"noIcons":   strconv.FormatBool(*noIcons),
				"batchSize": strconv.Itoa(*batchSize),
				"footer":    strconv.FormatBool(*footer),
				"noWatch":   strconv.FormatBool(*noWatch),
				"trace":     strconv.FormatBool(*trace),
				"verbose":   strconv.FormatBool(*verbose),
				"logFile":   *logFile,
			},
			Args: append([]string(nil), args...),
		}
	}
	return fs, build
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs, build := NewFlagSet("arcmenu", environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg := build(args)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects sizes the UI cannot lay out.
func Validate(cfg Config) error {
	a := cfg.App
	if a.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", a.Width)
	}
	if a.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", a.Height)
	}
	if a.BatchSize < 0 {
		return fmt.Errorf("batch size must be >= 0 (got %d)", a.BatchSize)
	}
	for _, size := range IconSizes {
		if a.IconSize == size {
			return nil
		}
	}
	return fmt.Errorf("icon size must be one of %v (got %d)", IconSizes, a.IconSize)
}
