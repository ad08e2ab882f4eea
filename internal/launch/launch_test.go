package launch

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/arcmenu/internal/menu"
	"github.com/atomicstack/arcmenu/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

type recorder struct {
	started [][]string
	windows [][]string
	labels  []string
	err     error
}

func (r *recorder) start(argv []string) error {
	r.started = append(r.started, append([]string(nil), argv...))
	return r.err
}

func (r *recorder) open(label string, argv []string) error {
	r.labels = append(r.labels, label)
	r.windows = append(r.windows, append([]string(nil), argv...))
	return r.err
}

func newTestLauncher(rec *recorder, mode string, environ []string) *Launcher {
	return New(Options{
		TerminalMode: mode,
		Environ:      environ,
		Start:        rec.start,
		OpenWindow:   rec.open,
	})
}

func TestArgvStripsFieldCodes(t *testing.T) {
	got, err := Argv("app %U --flag")
	if err != nil {
		t.Fatalf("Argv: %v", err)
	}
	if diff := cmp.Diff([]string{"app", "--flag"}, got); diff != "" {
		t.Fatalf("unexpected argv (-want +got):\n%s", diff)
	}
}

func TestArgvHonoursQuotes(t *testing.T) {
	got, err := Argv(`app "two words"`)
	if err != nil {
		t.Fatalf("Argv: %v", err)
	}
	if diff := cmp.Diff([]string{"app", "two words"}, got); diff != "" {
		t.Fatalf("unexpected argv (-want +got):\n%s", diff)
	}
}

func TestArgvFallsBackOnUnbalancedQuotes(t *testing.T) {
	got, err := Argv(`app "broken %f`)
	if err != nil {
		t.Fatalf("Argv: %v", err)
	}
	if diff := cmp.Diff([]string{"app", `"broken`}, got); diff != "" {
		t.Fatalf("unexpected argv (-want +got):\n%s", diff)
	}
}

func TestArgvEmptyAfterStripping(t *testing.T) {
	for _, command := range []string{"", "   ", "%F %u"} {
		if _, err := Argv(command); !errors.Is(err, ErrEmptyCommand) {
			t.Fatalf("Argv(%q): expected ErrEmptyCommand, got %v", command, err)
		}
	}
}

func TestLaunchPlainEntry(t *testing.T) {
	rec := &recorder{}
	l := newTestLauncher(rec, ModeAuto, nil)
	res, err := l.Launch(menu.Entry{Name: "Firefox", Exec: "firefox %u"})
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if res.Tmux {
		t.Fatalf("plain entries never use tmux")
	}
	if diff := cmp.Diff([][]string{{"firefox"}}, rec.started); diff != "" {
		t.Fatalf("unexpected starts (-want +got):\n%s", diff)
	}
}

func TestLaunchTerminalEntryUsesWrapperOutsideTmux(t *testing.T) {
	rec := &recorder{}
	l := newTestLauncher(rec, ModeAuto, []string{"HOME=/root"})
	if _, err := l.Launch(menu.Entry{Name: "Htop", Exec: "htop", Terminal: true}); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if diff := cmp.Diff([][]string{{"lxterminal", "-e", "htop"}}, rec.started); diff != "" {
		t.Fatalf("unexpected starts (-want +got):\n%s", diff)
	}
	if len(rec.windows) != 0 {
		t.Fatalf("expected no tmux windows, got %v", rec.windows)
	}
}

func TestLaunchTerminalEntryOpensTmuxWindowInsideTmux(t *testing.T) {
	rec := &recorder{}
	l := newTestLauncher(rec, ModeAuto, []string{"TMUX=/tmp/tmux-0/default,1,0"})
	res, err := l.Launch(menu.Entry{Name: "Htop", Exec: "htop -d 5", Terminal: true})
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if !res.Tmux {
		t.Fatalf("expected tmux launch")
	}
	if diff := cmp.Diff([][]string{{"htop", "-d", "5"}}, rec.windows); diff != "" {
		t.Fatalf("unexpected windows (-want +got):\n%s", diff)
	}
	if rec.labels[0] != "Htop" {
		t.Fatalf("expected window label Htop, got %q", rec.labels[0])
	}
	if len(rec.started) != 0 {
		t.Fatalf("expected no direct starts, got %v", rec.started)
	}
}

func TestLaunchWrapperModeIgnoresTmux(t *testing.T) {
	rec := &recorder{}
	l := New(Options{
		Terminal:     []string{"foot", "-e"},
		TerminalMode: ModeWrapper,
		Environ:      []string{"TMUX=/tmp/tmux-0/default,1,0"},
		Start:        rec.start,
		OpenWindow:   rec.open,
	})
	if _, err := l.Launch(menu.Entry{Name: "Top", Exec: "top", Terminal: true}); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if diff := cmp.Diff([][]string{{"foot", "-e", "top"}}, rec.started); diff != "" {
		t.Fatalf("unexpected starts (-want +got):\n%s", diff)
	}
}

func TestReconfiguredSwapsTerminalAndKeepsHooks(t *testing.T) {
	rec := &recorder{}
	l := newTestLauncher(rec, ModeAuto, []string{"TMUX=/tmp/tmux-0/default,1,0"})
	next := l.Reconfigured([]string{"foot", "-e"}, "WRAPPER")
	if _, err := next.Launch(menu.Entry{Name: "Top", Exec: "top", Terminal: true}); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if diff := cmp.Diff([][]string{{"foot", "-e", "top"}}, rec.started); diff != "" {
		t.Fatalf("unexpected starts (-want +got):\n%s", diff)
	}
	if _, err := l.Launch(menu.Entry{Name: "Top", Exec: "top", Terminal: true}); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if len(rec.windows) != 1 {
		t.Fatalf("expected the original launcher to keep its tmux mode, got %v", rec.windows)
	}
	if fallback := l.Reconfigured(nil, "bogus"); fallback.mode != ModeAuto || fallback.terminal[0] != "lxterminal" {
		t.Fatalf("expected defaults for empty settings, got %q %v", fallback.mode, fallback.terminal)
	}
}

func TestLaunchReportsFailures(t *testing.T) {
	logPath := testutil.CaptureLogs(t)
	rec := &recorder{err: errors.New("exec: not found")}
	l := newTestLauncher(rec, ModeAuto, nil)
	if _, err := l.Launch(menu.Entry{Name: "Ghost", Exec: "ghost"}); err == nil {
		t.Fatalf("expected start failure to surface")
	}
	if _, err := l.Launch(menu.Entry{Name: "Nothing", Exec: "%U"}); !errors.Is(err, ErrEmptyCommand) {
		t.Fatalf("expected ErrEmptyCommand, got %v", err)
	}
	if len(rec.started) != 1 {
		t.Fatalf("expected empty command never to start, got %v", rec.started)
	}
	if logged := testutil.ReadLog(t, logPath); !strings.Contains(logged, "launch Ghost: exec: not found") {
		t.Fatalf("expected failure logged, got %q", logged)
	}
}

func TestStartDetachedRejectsEmptyArgv(t *testing.T) {
	if err := StartDetached(nil); !errors.Is(err, ErrEmptyCommand) {
		t.Fatalf("expected ErrEmptyCommand, got %v", err)
	}
}

func TestStartDetachedRunsProcess(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "started")
	if err := StartDetached([]string{"/bin/sh", "-c", "touch " + marker}); err != nil {
		t.Skipf("unable to start /bin/sh: %v", err)
	}
	waitFor(t, func() bool {
		_, err := os.Stat(marker)
		return err == nil
	})
}
