package settings

// Defaults returns a fresh copy of the built-in configuration.
func Defaults() Config {
	cfg := make(Config, len(defaultSections))
	applyDefaults(cfg)
	return cfg
}

var defaultSections = map[string]Section{
	"window": {
		"width":            700,
		"height":           850,
		"halign":           "center",
		"icon_size":        32,
		"profile_pic_size": 128,
	},
	"font": {
		"family":          "sans-serif",
		"size_categories": 15000,
		"size_names":      10000,
		"size_header":     16000,
	},
	"colors": {
		"background_opacity":       0.7,
		"background":               "rgba(0, 0, 0, 0.7)",
		"border":                   "rgba(255, 255, 255, 0.1)",
		"text_normal":              "#D8DEE9",
		"text_header_os":           "#D8DEE9",
		"text_header_kernel":       "#D0883A",
		"text_header_hostname":     "#88C0D0",
		"hover_background":         "rgba(255, 255, 255, 0.1)",
		"selected_background":      "rgba(255, 255, 255, 0.2)",
		"selected_text":            "#ECEFF4",
		"button_normal_background": "rgba(0,0,0,0.6)",
		"button_text":              "#ECEFF4",
		"categories_background":    "rgba(0,0,0,0.4)",
	},
	"paths": {
		"menu_file":       "",
		"profile_pic":     "/root/.face",
		"profile_manager": "/usr/local/bin/ProfileManager.py",
		"shutdown_cmd":    "/usr/local/bin/apagado-avatar.py",
		"config_tool":     "/usr/local/bin/arcmenu-config",
	},
	"behavior": {
		"hover_delay_ms":   150,
		"restore_delay_ms": 150,
		"batch_size":       10,
		"launch_close_ms":  50,
		"action_close_ms":  100,
		"close_on_blur":    true,
	},
	"launch": {
		"terminal":      []interface{}{"lxterminal", "-e"},
		"terminal_mode": "auto",
	},
	"icons": {
		"paths":  []interface{}{},
		"theme":  "hicolor",
		"scaler": "magick",
	},
	"categories": {
		"exclude": []interface{}{},
	},
	"search": {
		"web_url": "https://www.google.com/search?q=%s",
	},
	"history": {
		"enabled": true,
		"limit":   12,
		"path":    "",
	},
}

// applyDefaults fills missing sections and keys and reports whether anything
// was added.
func applyDefaults(cfg Config) bool {
	added := false
	for name, defaults := range defaultSections {
		if cfg.RegisterDefaults(name, defaults) {
			added = true
		}
	}
	return added
}
