package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 || cfg.App.IconSize != 0 {
		t.Fatalf("expected zero sizes, got %+v", cfg.App)
	}
	if !cfg.App.Watch || !cfg.Features.Watch {
		t.Fatal("expected watching enabled by default")
	}
	if cfg.App.ShowFooter || cfg.Logging.Trace {
		t.Fatalf("expected footer and trace off, got %+v", cfg)
	}
}

func TestLoadArgsEnvironmentFallbacks(t *testing.T) {
	env := []string{
		envMenuFile + "=/etc/xdg/labwc/menu.xml",
		envWidth + "=100",
		envIconSize + "=24",
		envNoWatch + "=true",
		envTrace + "=1",
		envLogFile + "=/tmp/arcmenu.log",
		"MALFORMED",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.MenuFile != "/etc/xdg/labwc/menu.xml" {
		t.Fatalf("unexpected menu file %q", cfg.App.MenuFile)
	}
	if cfg.App.Width != 100 || cfg.App.IconSize != 24 {
		t.Fatalf("unexpected sizes %+v", cfg.App)
	}
	if cfg.App.Watch {
		t.Fatal("expected watching disabled")
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/arcmenu.log" {
		t.Fatalf("unexpected logging %+v", cfg.Logging)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	env := []string{envWidth + "=100", envShowFooter + "=false"}
	args := []string{"--width", "90", "--footer", "--menu-file=/tmp/menu.xml"}
	cfg, err := LoadArgs(args, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 90 || !cfg.App.ShowFooter || cfg.App.MenuFile != "/tmp/menu.xml" {
		t.Fatalf("unexpected config %+v", cfg.App)
	}
	if cfg.Flags["width"] != "90" {
		t.Fatalf("expected width flag recorded, got %q", cfg.Flags["width"])
	}
	if diff := cmp.Diff(args, cfg.Args); diff != "" {
		t.Fatalf("expected args preserved (-want +got):\n%s", diff)
	}
}

func TestInvalidEnvironmentValuesFallBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envHeight + "=tall", envVerbose + "=maybe"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Height != 0 || cfg.App.Verbose {
		t.Fatalf("expected defaults for unparsable values, got %+v", cfg.App)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"--width", "-1"}, "width"},
		{[]string{"--height", "-5"}, "height"},
		{[]string{"--batch-size", "-2"}, "batch size"},
		{[]string{"--icon-size", "20"}, "icon size"},
	}
	for _, tc := range cases {
		_, err := LoadArgs(tc.args, nil)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%v: expected %q error, got %v", tc.args, tc.want, err)
		}
	}
}

func TestUnknownFlagIsAnError(t *testing.T) {
	if _, err := LoadArgs([]string{"--bogus"}, nil); err == nil {
		t.Fatal("expected unknown flag error")
	}
}
