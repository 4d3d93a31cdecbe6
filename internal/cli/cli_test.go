package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyinstaller-builder/internal/config"
	"pyinstaller-builder/internal/logger"
)

func execute(t *testing.T, launch Launcher, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PYBUILDER_LOG_LEVEL", "error")

	root := RootCmd(launch)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.py")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRoot_LaunchesGUIWithConfig(t *testing.T) {
	t.Setenv("PYBUILDER_TOOL", "pyinstaller-custom")

	var got *config.Config
	_, err := execute(t, func(cfg *config.Config, log logger.Logger) error {
		got = cfg
		assert.NotNil(t, log)
		return nil
	})

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "pyinstaller-custom", got.Tool)
	assert.True(t, filepath.IsAbs(got.DistDir))
}

func TestCompose(t *testing.T) {
	out, err := execute(t, nil, "--tool", "pyinstaller", "compose", "app.py",
		"--onefile", "--noconsole", "--collect-all", "numpy,requests",
		"--icon", "app.ico", "--distpath", "out", "--add-data", "a.txt")
	require.NoError(t, err)

	sep := string(os.PathListSeparator)
	want := `pyinstaller --onefile --noconsole --collect-all numpy --collect-all requests ` +
		`--icon="app.ico" --distpath "out" --add-data "a.txt` + sep + `." "app.py"`
	assert.Equal(t, want, strings.TrimSpace(out))
}

func TestCompose_DefaultDistDir(t *testing.T) {
	dist := t.TempDir()
	out, err := execute(t, nil, "--dist-dir", dist, "compose", "app.py")
	require.NoError(t, err)

	assert.Equal(t, `pyinstaller --distpath "`+dist+`" "app.py"`, strings.TrimSpace(out))
}

func TestScan(t *testing.T) {
	script := writeScript(t, "import sys, os\nfrom collections import deque\nimport numpy as np\n")

	out, err := execute(t, nil, "scan", script)
	require.NoError(t, err)

	assert.Equal(t, "collections\nnumpy\nos\nsys\n", out)
}

func TestScan_SyntaxErrorPrintsNothing(t *testing.T) {
	script := writeScript(t, "import (\n")

	out, err := execute(t, nil, "scan", script)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestBuild_StreamsOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	script := writeScript(t, "print('hi')\n")

	out, err := execute(t, nil, "build", script, "--command", "echo one; echo two")
	require.NoError(t, err)

	assert.Contains(t, out, "one\ntwo\n")
	assert.Contains(t, out, "Build completed successfully.")
}

func TestBuild_FailureExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	script := writeScript(t, "print('hi')\n")

	out, err := execute(t, nil, "build", script, "--command", "exit 3")

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.Code)
	assert.Contains(t, out, "Build error. Check logs for details.")
}

func TestBuild_RejectsMissingScript(t *testing.T) {
	_, err := execute(t, nil, "build", filepath.Join(t.TempDir(), "nope.py"))
	assert.ErrorContains(t, err, "not a valid .py file")
}
