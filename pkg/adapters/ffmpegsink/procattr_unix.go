//go:build unix

package ffmpegsink

import (
	"os/exec"
	"syscall"
)

// detachFromTerminal puts ffmpeg in its own process group so a terminal
// Ctrl-C reaches only frame2video, which then closes stdin and lets ffmpeg
// finalize the file.
func detachFromTerminal(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
