package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/atomicstack/arcmenu/internal/app"
	"github.com/atomicstack/arcmenu/internal/config"
	"github.com/atomicstack/arcmenu/internal/format/table"
	"github.com/atomicstack/arcmenu/internal/logging"
	"github.com/atomicstack/arcmenu/internal/logging/events"
	"github.com/atomicstack/arcmenu/internal/menu"
	"github.com/atomicstack/arcmenu/internal/settings"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// configError marks failures that should exit with status 2.
type configError struct{ err error }

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }

func main() {
	if err := newRootCmd(os.Args[1:], os.Environ()).Execute(); err != nil {
		var cfgErr configError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
			os.Exit(2)
		}
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(argv, environ []string) *cobra.Command {
	fs, build := config.NewFlagSet("arcmenu", environ)

	load := func() (config.Config, error) {
		cfg := build(argv)
		if err := config.Validate(cfg); err != nil {
			return config.Config{}, configError{err}
		}
		logging.Configure(cfg.Logging.FilePath)
		logging.SetTraceEnabled(cfg.Logging.Trace)
		return cfg, nil
	}

	root := &cobra.Command{
		Use:           "arcmenu",
		Short:         "Categorized application launcher for the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			traceStartup(cfg)
			return app.Run(cfg.App)
		},
	}
	root.PersistentFlags().AddFlagSet(fs)
	root.SetArgs(argv)
	root.AddCommand(newCategoriesCmd(load), newConfigCmd(load))
	return root
}

func newCategoriesCmd(load func() (config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Print the categories parsed from the menu source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			entries, _ := cmd.Flags().GetBool("entries")
			s, _ := loadSettings(cfg)
			categories := app.LoadMenu(cfg.App, s)
			writeCategories(cmd.OutOrStdout(), categories, s.ExcludedCategories(), entries)
			return nil
		},
	}
	cmd.Flags().Bool("entries", false, "list every entry instead of per-category counts")
	return cmd
}

func newConfigCmd(load func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the merged settings as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			s, path := loadSettings(cfg)
			data, err := s.JSON()
			if err != nil {
				return fmt.Errorf("encode settings: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "# %s\n", path)
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func loadSettings(cfg config.Config) (settings.Config, string) {
	path, err := app.ResolveSettingsPath(cfg.App)
	if err != nil {
		logging.Error(err)
		return settings.Defaults(), ""
	}
	return app.LoadSettings(cfg.App, path), path
}

func writeCategories(w io.Writer, categories *menu.CategoryMap, excluded []string, entries bool) {
	names := menu.OrderedCategories(categories, excluded)
	if entries {
		rows := make([][]string, 0, categories.Total())
		for _, name := range names {
			list, _ := categories.Get(name)
			for _, entry := range list {
				rows = append(rows, []string{name, entry.Name, strconv.FormatBool(entry.Terminal), entry.Exec})
			}
		}
		for _, line := range table.WithHeader([]string{"CATEGORY", "NAME", "TERMINAL", "EXEC"}, rows, nil) {
			fmt.Fprintln(w, line)
		}
		return
	}
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		list, _ := categories.Get(name)
		rows = append(rows, []string{name, strconv.Itoa(len(list)), menu.CategoryIcon(name)})
	}
	alignments := []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft}
	for _, line := range table.WithHeader([]string{"CATEGORY", "APPS", "ICON"}, rows, alignments) {
		fmt.Fprintln(w, line)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
