package tmux

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestInSession(t *testing.T) {
	if InSession([]string{"HOME=/root", "TERM=xterm"}) {
		t.Fatalf("expected no tmux session without TMUX")
	}
	if InSession([]string{"TMUX="}) {
		t.Fatalf("expected empty TMUX to be ignored")
	}
	if !InSession([]string{"TMUX=/tmp/tmux-0/default,123,0"}) {
		t.Fatalf("expected tmux session detected")
	}
}

func TestResolveSocketPathPrecedence(t *testing.T) {
	t.Setenv(envSocketPath, "")
	t.Setenv("TMUX", "/tmp/tmux-1000/work,42,0")
	if got, _ := ResolveSocketPath("/explicit"); got != "/explicit" {
		t.Fatalf("expected explicit path, got %q", got)
	}
	if got, _ := ResolveSocketPath(""); got != "/tmp/tmux-1000/work" {
		t.Fatalf("expected socket from TMUX, got %q", got)
	}
	t.Setenv(envSocketPath, "/override")
	if got, _ := ResolveSocketPath(""); got != "/override" {
		t.Fatalf("expected override, got %q", got)
	}
}

func TestResolveSocketPathDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envSocketPath, "")
	t.Setenv("TMUX", "")
	t.Setenv("TMUX_TMPDIR", dir)
	got, err := ResolveSocketPath("")
	if err != nil {
		t.Fatalf("ResolveSocketPath: %v", err)
	}
	if filepath.Dir(filepath.Dir(got)) != dir || filepath.Base(got) != "default" {
		t.Fatalf("unexpected default socket %q", got)
	}
}

func TestWindowName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "arcmenu"},
		{"Htop", "htop"},
		{"  Midnight  Commander ", "midnight-commander"},
		{"A Very Long Application Name Indeed", "a-very-long-application-"},
	}
	for _, tc := range cases {
		if got := WindowName(tc.in); got != tc.want {
			t.Fatalf("WindowName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewWindowQuotesArgv(t *testing.T) {
	var gotName, gotCommand string
	orig := newWindow
	newWindow = func(socketPath, name, command string) error {
		gotName, gotCommand = name, command
		return nil
	}
	t.Cleanup(func() { newWindow = orig })

	if err := NewWindow("", "Editor", []string{"vim", "my file.txt"}); err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	if gotName != "editor" {
		t.Fatalf("expected window name editor, got %q", gotName)
	}
	if gotCommand != "vim 'my file.txt'" {
		t.Fatalf("expected quoted command, got %q", gotCommand)
	}
	if err := NewWindow("", "Editor", nil); !errors.Is(err, ErrNoCommand) {
		t.Fatalf("expected ErrNoCommand, got %v", err)
	}
}
