//go:build !unix

package adapter

import (
	"errors"
	"os"
	"os/exec"
)

// useProcessGroup relies on the default exec.Cmd cancellation, which kills
// only the direct child.
func useProcessGroup(*exec.Cmd) {}

// killProcessGroup kills the direct child if it still runs.
func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}

	err := cmd.Process.Kill()
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}

	return err
}
