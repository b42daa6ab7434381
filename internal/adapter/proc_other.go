//go:build !unix

package adapter

import (
	"os/exec"
	"time"
)

const processWaitDelay = 5 * time.Second

// configureProcess bounds how long Wait may block after cancellation. Without
// process groups only the direct child is killed.
func configureProcess(cmd *exec.Cmd) {
	cmd.WaitDelay = processWaitDelay
}
