//go:build unix

package adapter

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// useProcessGroup starts the command in its own process group and kills the
// whole group when the command's context is done while the shell still runs.
func useProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if err := killProcessGroup(cmd); err != nil {
			return err
		}

		return os.ErrProcessDone
	}
}

// killProcessGroup SIGKILLs every process left in the command's group. The
// group outlives the shell as long as one grandchild does, so this also
// reaches processes the shell put in the background. A group that is already
// gone is not an error.
func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}

	err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	if errors.Is(err, syscall.ESRCH) {
		return nil
	}

	return err
}
