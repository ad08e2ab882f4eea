package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/arcmenu/internal/app"
	"github.com/atomicstack/arcmenu/internal/config"
	"github.com/atomicstack/arcmenu/internal/logging"
	"github.com/atomicstack/arcmenu/internal/testutil"
)

const testMenu = `<?xml version="1.0"?>
<openbox_menu xmlns="http://openbox.org/3.4/menu">
  <menu id="root-menu" label="">
    <menu id="system-menu" label="System">
      <item label="Htop"><action name="Execute"><command>urxvt -e htop</command></action></item>
      <item label="Firewall"><action name="Execute"><command>gufw</command></action></item>
    </menu>
    <menu id="fun-menu" label="Fun">
      <item label="Mines"><action name="Execute"><command>gnomine</command></action></item>
    </menu>
  </menu>
</openbox_menu>
`

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			MenuFile:   "/tmp/menu.xml",
			Width:      80,
			Height:     24,
			ShowFooter: true,
			Verbose:    true,
			Watch:      true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"menuFile": "/tmp/menu.xml",
			"width":    "80",
			"height":   "24",
			"footer":   "true",
			"verbose":  "true",
		},
		Args: []string{"--menu-file", "/tmp/menu.xml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["menuFile"] != "/tmp/menu.xml" {
		t.Fatalf("expected menu file flag %q, got %v", "/tmp/menu.xml", flagsValue["menuFile"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	menuPath := testutil.WriteFile(t, dir, "menu.xml", testMenu)
	t.Cleanup(func() { logging.Configure("") })
	argv := append(args,
		"--menu-file", menuPath,
		"--config", filepath.Join(dir, "settings.json"),
		"--log-file", filepath.Join(dir, "arcmenu.log"),
	)
	root := newRootCmd(argv, nil)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(new(bytes.Buffer))
	err := root.Execute()
	return out.String(), err
}

func TestCategoriesCommandPrintsCounts(t *testing.T) {
	out, err := runRoot(t, "categories")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, rule and two rows, got:\n%s", out)
	}
	if !strings.HasPrefix(lines[2], "System") || !strings.Contains(lines[2], "2") {
		t.Fatalf("unexpected System row %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "Fun") {
		t.Fatalf("unexpected Fun row %q", lines[3])
	}
}

func TestCategoriesCommandListsEntries(t *testing.T) {
	out, err := runRoot(t, "categories", "--entries")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if !strings.Contains(out, "urxvt -e htop") || !strings.Contains(out, "true") {
		t.Fatalf("expected terminal entry listed, got:\n%s", out)
	}
}

func TestConfigCommandPrintsMergedSettings(t *testing.T) {
	out, err := runRoot(t, "config", "--batch-size", "5")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, `"batch_size": 5`) {
		t.Fatalf("expected batch size override in output:\n%s", out)
	}
	if !strings.Contains(out, `"hover_delay_ms": 150`) {
		t.Fatalf("expected defaults merged in output:\n%s", out)
	}
}

func TestInvalidFlagsAreConfigErrors(t *testing.T) {
	_, err := runRoot(t, "config", "--icon-size", "17")
	var cfgErr configError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
