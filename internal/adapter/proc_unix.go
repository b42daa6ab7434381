//go:build unix

package adapter

import (
	"errors"
	"os/exec"
	"syscall"
	"time"
)

const processWaitDelay = 5 * time.Second

// configureProcess starts the engine in its own process group so that
// cancelling the context also kills the test binaries go test spawned.
func configureProcess(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}

		err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		if errors.Is(err, syscall.ESRCH) {
			return nil
		}

		return err
	}
	cmd.WaitDelay = processWaitDelay
}
