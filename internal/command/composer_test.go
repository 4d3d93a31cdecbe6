package command

import (
	"strings"
	"testing"

	"pyinstaller-builder/internal/models"

	"github.com/stretchr/testify/assert"
)

func unixComposer() Composer {
	return Composer{Tool: DefaultTool, DataSeparator: ":"}
}

func TestCompose_EmptyScriptYieldsEmptyCommand(t *testing.T) {
	tests := []models.BuildOptions{
		{},
		{OneFile: true, NoConsole: true},
		{Icon: "x.ico", OutputDir: "out", ExtraFiles: []string{"a.wav"}, ForcedModules: []string{"numpy"}},
	}

	for _, opts := range tests {
		assert.Equal(t, "", unixComposer().Compose(opts))
		assert.Equal(t, "", Compose(opts))
	}
}

func TestCompose_MinimalCommand(t *testing.T) {
	got := unixComposer().Compose(models.BuildOptions{MainScript: "app.py"})
	assert.Equal(t, `pyinstaller "app.py"`, got)
}

func TestCompose_FlagOrder(t *testing.T) {
	opts := models.BuildOptions{
		MainScript:    "app.py",
		Icon:          "x.ico",
		OutputDir:     "out",
		OneFile:       true,
		NoConsole:     true,
		ExtraFiles:    []string{"a.wav"},
		ForcedModules: []string{"numpy", "requests"},
	}

	got := unixComposer().Compose(opts)

	want := `pyinstaller --onefile --noconsole --collect-all numpy --collect-all requests ` +
		`--icon="x.ico" --distpath "out" --add-data "a.wav:." "app.py"`
	assert.Equal(t, want, got)

	order := []string{"--onefile", "--noconsole", "--collect-all numpy", "--collect-all requests",
		"--icon=", "--distpath", "--add-data", `"app.py"`}
	last := -1
	for _, token := range order {
		idx := strings.Index(got, token)
		assert.Greater(t, idx, last, token)
		last = idx
	}
}

func TestCompose_Deterministic(t *testing.T) {
	opts := models.BuildOptions{
		MainScript:    "/src/main.py",
		OutputDir:     "/build/dist",
		ExtraFiles:    []string{"/a/one.wav", "/a/two.png"},
		ForcedModules: []string{"pygame"},
	}
	c := unixComposer()

	assert.Equal(t, c.Compose(opts), c.Compose(opts))
}

func TestCompose_RepeatsPerEntryFlags(t *testing.T) {
	opts := models.BuildOptions{
		MainScript: "app.py",
		ExtraFiles: []string{"a.wav", "b.wav", "c.png"},
	}

	got := unixComposer().Compose(opts)

	assert.Equal(t, 3, strings.Count(got, "--add-data"))
	assert.Contains(t, got, `--add-data "a.wav:." --add-data "b.wav:." --add-data "c.png:."`)
}

func TestCompose_WindowsSeparatorAndPathsUnescaped(t *testing.T) {
	c := Composer{Tool: "pyinstaller.exe", DataSeparator: ";"}
	opts := models.BuildOptions{
		MainScript: `C:\proj\main.py`,
		Icon:       `C:\proj\app.ico`,
		ExtraFiles: []string{`C:\proj\beep.wav`},
	}

	got := c.Compose(opts)

	assert.Equal(t, `pyinstaller.exe --icon="C:\proj\app.ico" --add-data "C:\proj\beep.wav;." "C:\proj\main.py"`, got)
}

func TestCompose_OmitsEmptyOptionalGroups(t *testing.T) {
	got := unixComposer().Compose(models.BuildOptions{MainScript: "app.py", OutputDir: "dist"})

	assert.Equal(t, `pyinstaller --distpath "dist" "app.py"`, got)
	assert.NotContains(t, got, "  ")
}

func TestNewComposer_DefaultsTool(t *testing.T) {
	c := NewComposer("")
	assert.Equal(t, DefaultTool, c.Tool)
	assert.NotEmpty(t, c.DataSeparator)

	c = NewComposer("python -m PyInstaller")
	assert.True(t, strings.HasPrefix(c.Compose(models.BuildOptions{MainScript: "a.py"}), "python -m PyInstaller "))
}
