//go:build windows

package build

import (
	"os/exec"
	"syscall"
)

// cmd.exe does its own argument parsing, so the command line is passed
// verbatim instead of being re-quoted by os/exec.
func shellCommand(command, dir string) *exec.Cmd {
	cmd := exec.Command("cmd.exe")
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: `cmd.exe /S /C "` + command + `"`,
	}
	cmd.Dir = dir
	return cmd
}
