//go:build !windows

package build

import "os/exec"

func shellCommand(command, dir string) *exec.Cmd {
	cmd := exec.Command("sh", "-c", command)
	cmd.Dir = dir
	return cmd
}
