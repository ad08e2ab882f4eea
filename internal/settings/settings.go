// Package settings persists the user-facing launcher preferences as a JSON
// document of named sections. Missing sections and keys are filled from the
// built-in defaults and written back so the file always documents every knob.
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/arcmenu/internal/logging"
	"github.com/atomicstack/arcmenu/internal/logging/events"
)

const fileName = "arcmenu.json"

// Config holds every section keyed by name.
type Config map[string]interface{}

// Section holds the key/value pairs of one section.
type Section map[string]interface{}

// DefaultPath returns the configuration file under the user config directory.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "arcmenu", fileName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "arcmenu", fileName), nil
}

// Load reads the configuration at path (DefaultPath when empty).
//
// A missing file is created from the defaults. A readable file gains any
// missing sections or keys and is rewritten when something was added. A
// corrupt or unreadable file yields the defaults in memory and is left
// untouched. The returned error is informational; the Config is always usable.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		resolved, err := DefaultPath()
		if err != nil {
			logging.Error(err)
			return Defaults(), err
		}
		path = resolved
	}

	cfg, exists, err := readConfig(path)
	if err != nil {
		err = fmt.Errorf("read settings %s: %w", path, err)
		logging.Error(err)
		events.Settings.Defaults(path, err)
		return Defaults(), err
	}

	if !exists {
		cfg = Defaults()
		if werr := writeConfig(path, cfg); werr != nil {
			werr = fmt.Errorf("write default settings %s: %w", path, werr)
			logging.Error(werr)
			return cfg, werr
		}
		events.Settings.Loaded(path, true)
		return cfg, nil
	}

	if !applyDefaults(cfg) {
		events.Settings.Loaded(path, false)
		return cfg, nil
	}
	if werr := writeConfig(path, cfg); werr != nil {
		werr = fmt.Errorf("persist merged settings %s: %w", path, werr)
		logging.Error(werr)
		return cfg, werr
	}
	events.Settings.Loaded(path, true)
	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	if strings.TrimSpace(path) == "" {
		resolved, err := DefaultPath()
		if err != nil {
			return err
		}
		path = resolved
	}
	return writeConfig(path, cfg)
}

// Clone returns a copy of the config and its sections.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	clone := make(Config, len(cfg))
	for name, raw := range cfg {
		switch v := raw.(type) {
		case Section:
			clone[name] = cloneSection(v)
		case map[string]interface{}:
			clone[name] = cloneSection(Section(v))
		default:
			clone[name] = v
		}
	}
	return clone
}

// JSON renders the config the same way it is persisted.
func (c Config) JSON() ([]byte, error) {
	if c == nil {
		c = make(Config)
	}
	return json.MarshalIndent(c, "", "  ")
}

func cloneSection(section Section) Section {
	out := make(Section, len(section))
	for key, value := range section {
		out[key] = value
	}
	return out
}

func readConfig(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return make(Config), true, nil
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, true, err
	}
	if cfg == nil {
		cfg = make(Config)
	}
	return cfg, true, nil
}

func writeConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := cfg.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
