// Package tmux runs terminal applications in a new window of the tmux server
// that hosts the launcher, so popup invocations keep their output visible.
package tmux

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
	"github.com/kballard/go-shellquote"
)

const envSocketPath = "ARCMENU_TMUX_SOCKET"

// ErrNoCommand is returned when NewWindow receives an empty argv.
var ErrNoCommand = errors.New("tmux: no command to run")

// InSession reports whether environ describes a process running under tmux.
func InSession(environ []string) bool {
	for _, entry := range environ {
		if value, ok := strings.CutPrefix(entry, "TMUX="); ok {
			return strings.TrimSpace(value) != ""
		}
	}
	return false
}

// ResolveSocketPath picks the tmux socket: an explicit value, the
// ARCMENU_TMUX_SOCKET override, the socket named in $TMUX, or the default
// per-user socket.
func ResolveSocketPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if envSocket := os.Getenv(envSocketPath); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}

// WindowName derives a tmux window name from an application label.
func WindowName(label string) string {
	name := strings.Join(strings.Fields(label), "-")
	if name == "" {
		return "arcmenu"
	}
	if runes := []rune(name); len(runes) > 24 {
		name = string(runes[:24])
	}
	return strings.ToLower(name)
}

// NewWindow opens a tmux window named after label running argv.
func NewWindow(socketPath, label string, argv []string) error {
	if len(argv) == 0 {
		return ErrNoCommand
	}
	return newWindow(socketPath, WindowName(label), shellquote.Join(argv...))
}

var newWindow = func(socketPath, name, command string) error {
	client, err := newTmux(socketPath)
	if err != nil {
		return fmt.Errorf("connect to tmux: %w", err)
	}
	defer client.Close()
	if _, err := client.Command("new-window", "-n", name, command); err != nil {
		return fmt.Errorf("tmux new-window: %w", err)
	}
	return nil
}

func newTmux(socketPath string) (*gotmux.Tmux, error) {
	if socketPath != "" {
		return gotmux.NewTmux(socketPath)
	}
	return gotmux.DefaultTmux()
}
