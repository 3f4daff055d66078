//go:build !unix

package snana

import "os/exec"

// killProcessGroup is a no-op where process groups are unavailable; the
// default cancellation kills the direct child and WaitDelay releases Run.
func killProcessGroup(cmd *exec.Cmd) {}
