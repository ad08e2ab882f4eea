// Package launch turns menu entries into detached processes.
package launch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/arcmenu/internal/logging"
	"github.com/atomicstack/arcmenu/internal/logging/events"
	"github.com/atomicstack/arcmenu/internal/menu"
	"github.com/atomicstack/arcmenu/internal/tmux"
	"github.com/kballard/go-shellquote"
)

// ErrEmptyCommand is returned when nothing executable remains after the
// command line has been split and stripped of field codes.
var ErrEmptyCommand = errors.New("no executable command")

// fieldCodes are desktop-entry placeholders the launcher never substitutes.
var fieldCodes = []string{"%f", "%F", "%u", "%U", "%i", "%c"}

// Terminal modes decide how terminal entries are hosted.
const (
	ModeAuto    = "auto"
	ModeTmux    = "tmux"
	ModeWrapper = "wrapper"
)

// DefaultTerminal wraps terminal entries when no tmux session is used.
var DefaultTerminal = []string{"lxterminal", "-e"}

// Argv splits command with shell-word rules (falling back to whitespace
// splitting on unbalanced quotes) and drops field-code tokens.
func Argv(command string) ([]string, error) {
	parts, err := shellquote.Split(command)
	if err != nil {
		parts = strings.Fields(command)
	}
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		if isFieldCode(part) {
			continue
		}
		cleaned = append(cleaned, part)
	}
	if len(cleaned) == 0 {
		return nil, ErrEmptyCommand
	}
	return cleaned, nil
}

func isFieldCode(token string) bool {
	for _, code := range fieldCodes {
		if strings.HasPrefix(token, code) {
			return true
		}
	}
	return false
}

// Starter starts argv without waiting for it.
type Starter func(argv []string) error

// WindowOpener runs argv in a new tmux window labelled label.
type WindowOpener func(label string, argv []string) error

// Options configures a Launcher.
type Options struct {
	Terminal     []string
	TerminalMode string
	Environ      []string
	SocketPath   string
	Start        Starter
	OpenWindow   WindowOpener
}

// Launcher starts entries, wrapping terminal programs as configured.
type Launcher struct {
	terminal   []string
	mode       string
	inTmux     bool
	start      Starter
	openWindow WindowOpener
}

// Result describes how an entry was started.
type Result struct {
	Argv []string
	Tmux bool
}

// New builds a Launcher from opts, filling unset hooks with the real
// process and tmux implementations.
func New(opts Options) *Launcher {
	l := &Launcher{
		terminal:   append([]string(nil), opts.Terminal...),
		mode:       strings.ToLower(strings.TrimSpace(opts.TerminalMode)),
		inTmux:     tmux.InSession(opts.Environ),
		start:      opts.Start,
		openWindow: opts.OpenWindow,
	}
	if len(l.terminal) == 0 {
		l.terminal = append([]string(nil), DefaultTerminal...)
	}
	switch l.mode {
	case ModeTmux, ModeWrapper:
	default:
		l.mode = ModeAuto
	}
	if l.start == nil {
		l.start = StartDetached
	}
	if l.openWindow == nil {
		socket := opts.SocketPath
		l.openWindow = func(label string, argv []string) error {
			return tmux.NewWindow(socket, label, argv)
		}
	}
	return l
}

// Reconfigured returns a copy of l that hosts terminal entries with the
// given wrapper and mode. The process and tmux hooks are shared.
func (l *Launcher) Reconfigured(terminal []string, mode string) *Launcher {
	if l == nil {
		return nil
	}
	next := *l
	next.terminal = append([]string(nil), terminal...)
	if len(next.terminal) == 0 {
		next.terminal = append([]string(nil), DefaultTerminal...)
	}
	next.mode = strings.ToLower(strings.TrimSpace(mode))
	switch next.mode {
	case ModeTmux, ModeWrapper:
	default:
		next.mode = ModeAuto
	}
	return &next
}

// Launch starts entry. Terminal entries run in a new tmux window when the
// launcher lives inside tmux (or tmux mode is forced); otherwise they are
// prefixed with the terminal wrapper.
func (l *Launcher) Launch(entry menu.Entry) (Result, error) {
	argv, err := Argv(entry.Exec)
	if err != nil {
		err = fmt.Errorf("launch %s: %w", entry.Name, err)
		events.Launch.Error(entry.Name, err)
		logging.Error(err)
		return Result{}, err
	}
	if entry.Terminal && l.useTmux() {
		events.Launch.Tmux(entry.Name, argv)
		if err := l.openWindow(entry.Name, argv); err != nil {
			err = fmt.Errorf("launch %s: %w", entry.Name, err)
			events.Launch.Error(entry.Name, err)
			logging.Error(err)
			return Result{Argv: argv, Tmux: true}, err
		}
		return Result{Argv: argv, Tmux: true}, nil
	}
	if entry.Terminal {
		wrapped := make([]string, 0, len(l.terminal)+len(argv))
		wrapped = append(wrapped, l.terminal...)
		argv = append(wrapped, argv...)
	}
	return Result{Argv: argv}, l.Run(entry.Name, argv)
}

// Run starts argv detached, logging failures under name.
func (l *Launcher) Run(name string, argv []string) error {
	if len(argv) == 0 {
		return ErrEmptyCommand
	}
	events.Launch.Start(name, argv)
	if err := l.start(argv); err != nil {
		err = fmt.Errorf("launch %s: %w", name, err)
		events.Launch.Error(name, err)
		logging.Error(err)
		return err
	}
	return nil
}

func (l *Launcher) useTmux() bool {
	switch l.mode {
	case ModeTmux:
		return true
	case ModeWrapper:
		return false
	}
	return l.inTmux
}
