package settings

import "time"

// Window describes the popup geometry.
type Window struct {
	Width          int
	Height         int
	HAlign         string
	IconSize       int
	ProfilePicSize int
}

// Font holds the font family and the Pango sizes (points times 1024) kept
// for the companion configuration tool.
type Font struct {
	Family         string
	SizeCategories int
	SizeNames      int
	SizeHeader     int
}

// Colors holds the palette as written by the user (hex or rgba()).
type Colors struct {
	BackgroundOpacity    float64
	Background           string
	Border               string
	TextNormal           string
	TextHeaderOS         string
	TextHeaderKernel     string
	TextHeaderHostname   string
	HoverBackground      string
	SelectedBackground   string
	SelectedText         string
	ButtonBackground     string
	ButtonText           string
	CategoriesBackground string
}

// Paths lists the files and helper programs the launcher refers to.
type Paths struct {
	MenuFile       string
	ProfilePic     string
	ProfileManager string
	ShutdownCmd    string
	ConfigTool     string
}

// Behavior holds the interaction timings.
type Behavior struct {
	HoverDelay   time.Duration
	RestoreDelay time.Duration
	LaunchClose  time.Duration
	ActionClose  time.Duration
	BatchSize    int
	CloseOnBlur  bool
}

// Launch configures how terminal entries are started.
type Launch struct {
	Terminal     []string
	TerminalMode string
}

// Icons configures icon lookup.
type Icons struct {
	Paths  []string
	Theme  string
	Scaler string
}

// History configures the recently launched category.
type History struct {
	Enabled bool
	Limit   int
	Path    string
}

func (c Config) Window() Window {
	return Window{
		Width:          c.GetInt("window", "width", 700),
		Height:         c.GetInt("window", "height", 850),
		HAlign:         c.GetString("window", "halign", "center"),
		IconSize:       c.GetInt("window", "icon_size", 32),
		ProfilePicSize: c.GetInt("window", "profile_pic_size", 128),
	}
}

func (c Config) Font() Font {
	return Font{
		Family:         c.GetString("font", "family", "sans-serif"),
		SizeCategories: c.GetInt("font", "size_categories", 15000),
		SizeNames:      c.GetInt("font", "size_names", 10000),
		SizeHeader:     c.GetInt("font", "size_header", 16000),
	}
}

func (c Config) Colors() Colors {
	return Colors{
		BackgroundOpacity:    c.GetFloat("colors", "background_opacity", 0.7),
		Background:           c.GetString("colors", "background", "rgba(0, 0, 0, 0.7)"),
		Border:               c.GetString("colors", "border", "rgba(255, 255, 255, 0.1)"),
		TextNormal:           c.GetString("colors", "text_normal", "#D8DEE9"),
		TextHeaderOS:         c.GetString("colors", "text_header_os", "#D8DEE9"),
		TextHeaderKernel:     c.GetString("colors", "text_header_kernel", "#D0883A"),
		TextHeaderHostname:   c.GetString("colors", "text_header_hostname", "#88C0D0"),
		HoverBackground:      c.GetString("colors", "hover_background", "rgba(255, 255, 255, 0.1)"),
		SelectedBackground:   c.GetString("colors", "selected_background", "rgba(255, 255, 255, 0.2)"),
		SelectedText:         c.GetString("colors", "selected_text", "#ECEFF4"),
		ButtonBackground:     c.GetString("colors", "button_normal_background", "rgba(0,0,0,0.6)"),
		ButtonText:           c.GetString("colors", "button_text", "#ECEFF4"),
		CategoriesBackground: c.GetString("colors", "categories_background", "rgba(0,0,0,0.4)"),
	}
}

func (c Config) Paths() Paths {
	return Paths{
		MenuFile:       c.GetString("paths", "menu_file", ""),
		ProfilePic:     c.GetString("paths", "profile_pic", "/root/.face"),
		ProfileManager: c.GetString("paths", "profile_manager", ""),
		ShutdownCmd:    c.GetString("paths", "shutdown_cmd", ""),
		ConfigTool:     c.GetString("paths", "config_tool", ""),
	}
}

func (c Config) Behavior() Behavior {
	batch := c.GetInt("behavior", "batch_size", 10)
	if batch <= 0 {
		batch = 10
	}
	return Behavior{
		HoverDelay:   millis(c.GetInt("behavior", "hover_delay_ms", 150)),
		RestoreDelay: millis(c.GetInt("behavior", "restore_delay_ms", 150)),
		LaunchClose:  millis(c.GetInt("behavior", "launch_close_ms", 50)),
		ActionClose:  millis(c.GetInt("behavior", "action_close_ms", 100)),
		BatchSize:    batch,
		CloseOnBlur:  c.GetBool("behavior", "close_on_blur", true),
	}
}

func (c Config) Launch() Launch {
	terminal := c.GetStrings("launch", "terminal", nil)
	if len(terminal) == 0 {
		terminal = []string{"lxterminal", "-e"}
	}
	return Launch{
		Terminal:     terminal,
		TerminalMode: c.GetString("launch", "terminal_mode", "auto"),
	}
}

func (c Config) Icons() Icons {
	return Icons{
		Paths:  c.GetStrings("icons", "paths", nil),
		Theme:  c.GetString("icons", "theme", "hicolor"),
		Scaler: c.GetString("icons", "scaler", "magick"),
	}
}

func (c Config) ExcludedCategories() []string {
	return c.GetStrings("categories", "exclude", nil)
}

func (c Config) WebSearchURL() string {
	return c.GetString("search", "web_url", "https://www.google.com/search?q=%s")
}

func (c Config) History() History {
	return History{
		Enabled: c.GetBool("history", "enabled", true),
		Limit:   c.GetInt("history", "limit", 12),
		Path:    c.GetString("history", "path", ""),
	}
}

func millis(n int) time.Duration {
	if n < 0 {
		n = 0
	}
	return time.Duration(n) * time.Millisecond
}
