package launch

import (
	"os/exec"

	"golang.org/x/sys/unix"
)

// StartDetached starts argv in its own session with the standard streams
// bound to the null device, then releases the process so it is never waited
// on.
func StartDetached(argv []string) error {
	if len(argv) == 0 {
		return ErrEmptyCommand
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = &unix.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
