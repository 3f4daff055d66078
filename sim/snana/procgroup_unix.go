//go:build unix

package snana

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// killProcessGroup starts the simulator in its own process group and makes
// context cancellation kill the whole group, so wrapper scripts take their
// children down with them.
func killProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		if errors.Is(err, syscall.ESRCH) {
			return os.ErrProcessDone
		}
		return err
	}
}
