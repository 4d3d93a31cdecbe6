package gui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"pyinstaller-builder/internal/gui/components"
	"pyinstaller-builder/internal/logger"
)

func newTestManager(t *testing.T) (*Manager, *[][]string) {
	t.Helper()
	test.NewTempApp(t)

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	m := NewManager(w, logger.NoOpLogger{})
	var drops [][]string
	m.SetDropHandler(func(paths []string) { drops = append(drops, paths) })
	return m, &drops
}

func TestManager_DropPassesLocalFiles(t *testing.T) {
	m, drops := newTestManager(t)

	script := storage.NewFileURI("/work/app.py")
	remote, err := storage.ParseURI("https://example.com/x.ico")
	assert.NoError(t, err)

	m.onDropped(fyne.NewPos(0, 0), []fyne.URI{script, remote})

	assert.Equal(t, [][]string{{"/work/app.py"}}, *drops)
}

func TestManager_DropIgnoredWhileBuilding(t *testing.T) {
	m, drops := newTestManager(t)
	uris := []fyne.URI{storage.NewFileURI("/work/app.py")}

	m.SetBuilding(true)
	m.onDropped(fyne.NewPos(0, 0), uris)
	assert.Empty(t, *drops)
	assert.Equal(t, components.BuildingHint, m.dropArea.Hint())
	assert.True(t, m.toolbar.BuildButton.Disabled())

	m.SetBuilding(false)
	m.onDropped(fyne.NewPos(0, 0), uris)
	assert.Len(t, *drops, 1)
	assert.Equal(t, components.DropHint, m.dropArea.Hint())
	assert.False(t, m.toolbar.BuildButton.Disabled())
}
