package components

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	guilayout "pyinstaller-builder/internal/gui/layout"
)

// ExtraFilesPanel lists the files bundled with --add-data
type ExtraFilesPanel struct {
	container *fyne.Container
	summary   *widget.Entry
	list      *widget.List
	row       *PathRow
	remove    *widget.Button
	clear     *widget.Button

	files    []string
	selected int

	removeHandler func(string)
	clearHandler  func()
}

func NewExtraFilesPanel(addHandler func()) *ExtraFilesPanel {
	p := &ExtraFilesPanel{selected: -1}

	p.row = NewPathRow("Selected extra files")
	p.summary = p.row.Entry
	p.summary.Disable()
	p.row.AddButton("Add extra files", theme.ContentAddIcon(), addHandler)

	p.list = widget.NewList(
		func() int { return len(p.files) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= 0 && id < len(p.files) {
				obj.(*widget.Label).SetText(p.files[id])
			}
		},
	)
	p.list.OnSelected = func(id widget.ListItemID) {
		p.selected = id
		p.remove.Enable()
	}
	p.list.OnUnselected = func(widget.ListItemID) {
		p.selected = -1
		p.remove.Disable()
	}

	p.remove = widget.NewButtonWithIcon("Remove", theme.DeleteIcon(), p.onRemove)
	p.remove.Disable()
	p.clear = widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), p.onClear)

	sizedList := container.NewBorder(nil, nil, nil,
		container.NewVBox(p.remove, p.clear),
		container.NewVScroll(p.list),
	)

	p.container = container.NewVBox(
		p.row.GetContainer(),
		guilayout.MinHeight(sizedList, ExtraListHeight),
	)
	return p
}

func (p *ExtraFilesPanel) GetContainer() *fyne.Container {
	return p.container
}

func (p *ExtraFilesPanel) SetRemoveHandler(handler func(string)) {
	p.removeHandler = handler
}

func (p *ExtraFilesPanel) SetClearHandler(handler func()) {
	p.clearHandler = handler
}

// SetFiles replaces the displayed list and the comma separated summary
func (p *ExtraFilesPanel) SetFiles(files []string) {
	p.files = append([]string(nil), files...)

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}
	p.summary.SetText(strings.Join(names, ", "))

	p.list.UnselectAll()
	p.selected = -1
	p.remove.Disable()
	p.list.Refresh()
}

func (p *ExtraFilesPanel) Files() []string {
	return append([]string(nil), p.files...)
}

func (p *ExtraFilesPanel) SetEnabled(enabled bool) {
	p.row.SetEnabled(enabled)
	p.summary.Disable()
	setEnabled(enabled, p.clear)
	setEnabled(enabled && p.selected >= 0, p.remove)
}

func (p *ExtraFilesPanel) onRemove() {
	if p.selected < 0 || p.selected >= len(p.files) || p.removeHandler == nil {
		return
	}
	p.removeHandler(p.files[p.selected])
}

func (p *ExtraFilesPanel) onClear() {
	if p.clearHandler != nil {
		p.clearHandler()
	}
}
