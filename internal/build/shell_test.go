package build

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutableName(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{`pyinstaller --onefile "app.py"`, "pyinstaller"},
		{`  pyinstaller "app.py"`, "pyinstaller"},
		{`"C:\Program Files\Python\Scripts\pyinstaller.exe" "app.py"`, `C:\Program Files\Python\Scripts\pyinstaller.exe`},
		{`'/opt/py tools/pyinstaller' app.py`, "/opt/py tools/pyinstaller"},
		{`./venv/bin/pyinstaller app.py`, "./venv/bin/pyinstaller"},
		{`echo hi`, ""},
		{`cd src && pyinstaller app.py`, ""},
		{`PYTHONOPTIMIZE=1 pyinstaller app.py`, ""},
		{`$TOOL app.py`, ""},
		{`"unterminated app.py`, ""},
		{`case x in x) echo hi;; esac`, ""},
		{`command -v sh`, ""},
		{`trap '' INT; echo hi`, ""},
		{`time pyinstaller app.py`, ""},
		{`local x=1`, ""},
		{`wait`, ""},
		{`hash -r`, ""},
		{`rmdir /s /q build && pyinstaller app.py`, ""},
		{`RD /S /Q build`, ""},
		{`copy a.txt b.txt`, ""},
		{`pushd src`, ""},
		{`pyinstaller app.py | tee build.log`, ""},
		{`pyinstaller app.py > build.log`, ""},
		{`$(which pyinstaller) app.py`, ""},
		{``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			assert.Equal(t, tt.want, executableName(tt.command))
		})
	}
}

func TestResolveRelative(t *testing.T) {
	assert.Equal(t, "pyinstaller", resolveRelative("pyinstaller", "/work"))
	assert.Equal(t, filepath.Join("/work", "venv/bin/pyinstaller"), resolveRelative("venv/bin/pyinstaller", "/work"))

	abs, err := filepath.Abs("tool")
	require.NoError(t, err)
	assert.Equal(t, abs, resolveRelative(abs, "/work"))
}

func TestReadLines(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	input := "first\r\n" + long + "\n\nlast"

	var got []string
	err := readLines(strings.NewReader(input), func(l string) { got = append(got, l) })

	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "first", got[0])
	assert.Equal(t, long, got[1])
	assert.Equal(t, "", got[2])
	assert.Equal(t, "last", got[3])
}

func TestReadLines_ReplacesInvalidUTF8(t *testing.T) {
	var got []string
	err := readLines(strings.NewReader("ok\xff\n"), func(l string) { got = append(got, l) })

	require.NoError(t, err)
	assert.Equal(t, []string{"ok\uFFFD"}, got)
}
