package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathRow_SetTextIsSilent(t *testing.T) {
	test.NewTempApp(t)

	row := NewPathRow("Main script")
	var changes []string
	row.SetChangeHandler(func(s string) { changes = append(changes, s) })

	row.SetText("/tmp/app.py")
	assert.Equal(t, "/tmp/app.py", row.Text())
	assert.Empty(t, changes)

	row.Entry.SetText("/tmp/other.py")
	assert.NotEmpty(t, changes)
}

func TestPathRow_SetEnabled(t *testing.T) {
	test.NewTempApp(t)

	row := NewPathRow("Icon")
	button := row.AddButton("Browse", nil, func() {})

	row.SetEnabled(false)
	assert.True(t, row.Entry.Disabled())
	assert.True(t, button.Disabled())

	row.SetEnabled(true)
	assert.False(t, row.Entry.Disabled())
	assert.False(t, button.Disabled())
}

func TestOptionsPanel(t *testing.T) {
	test.NewTempApp(t)

	p := NewOptionsPanel()
	type change struct {
		opt     Option
		checked bool
	}
	var got []change
	p.SetChangeHandler(func(o Option, c bool) { got = append(got, change{o, c}) })

	test.Tap(p.OneFile)
	test.Tap(p.NoConsole)
	require.Equal(t, []change{{OptionOneFile, true}, {OptionNoConsole, true}}, got)

	p.SetChecked(OptionCollectAll, true)
	assert.True(t, p.CollectAll.Checked)
	assert.Len(t, got, 2)
}

func TestCommandPreview_EditHandler(t *testing.T) {
	test.NewTempApp(t)

	p := NewCommandPreview()
	var edits int
	p.SetEditHandler(func(string) { edits++ })

	p.SetCommand(`pyinstaller "a.py"`)
	assert.Equal(t, `pyinstaller "a.py"`, p.Command())
	assert.Zero(t, edits)

	p.Entry.SetText(`pyinstaller --clean "a.py"`)
	assert.Positive(t, edits)
}

func TestExtraFilesPanel(t *testing.T) {
	test.NewTempApp(t)

	var removed string
	cleared := false
	p := NewExtraFilesPanel(func() {})
	p.SetRemoveHandler(func(f string) { removed = f })
	p.SetClearHandler(func() { cleared = true })

	p.SetFiles([]string{"/data/a.wav", "/data/b.txt"})
	assert.Equal(t, "a.wav, b.txt", p.summary.Text)
	assert.Equal(t, []string{"/data/a.wav", "/data/b.txt"}, p.Files())
	assert.True(t, p.remove.Disabled())

	p.list.Select(1)
	assert.False(t, p.remove.Disabled())
	test.Tap(p.remove)
	assert.Equal(t, "/data/b.txt", removed)

	test.Tap(p.clear)
	assert.True(t, cleared)
}

func TestLogView_AppendAndClear(t *testing.T) {
	test.NewTempApp(t)

	v := NewLogView()
	for _, l := range []string{"one", "two", "three"} {
		v.Append(l)
	}
	v.Flush()
	assert.Equal(t, []string{"one", "two", "three"}, v.Lines())

	v.Clear()
	assert.Empty(t, v.Lines())
}

func TestStatusBar(t *testing.T) {
	test.NewTempApp(t)

	sb := NewStatusBar()
	assert.Equal(t, "Ready", sb.Status())
	assert.False(t, sb.Busy())

	sb.SetBusy(true)
	sb.SetStatus("Building...")
	assert.True(t, sb.Busy())
	assert.Equal(t, "Building...", sb.Status())

	sb.SetBusy(false)
	assert.False(t, sb.Busy())
}

func TestModuleSelector(t *testing.T) {
	test.NewTempApp(t)

	s := NewModuleSelector([]string{"numpy", "os", "requests"}, []string{"requests"})
	assert.Equal(t, []string{"requests"}, s.Selected())

	test.Tap(s.checks[0])
	assert.Equal(t, []string{"numpy", "requests"}, s.Selected())

	empty := NewModuleSelector(nil, nil)
	assert.Empty(t, empty.Selected())
}

func TestToolbar_BuildHandler(t *testing.T) {
	test.NewTempApp(t)

	tb := NewToolbar()
	pressed := 0
	tb.SetBuildHandler(func() { pressed++ })

	test.Tap(tb.BuildButton)
	tb.SetEnabled(false)
	test.Tap(tb.BuildButton)

	assert.Equal(t, 1, pressed)
}
