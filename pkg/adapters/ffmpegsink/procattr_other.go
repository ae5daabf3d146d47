//go:build !unix

package ffmpegsink

import "os/exec"

func detachFromTerminal(cmd *exec.Cmd) {}
