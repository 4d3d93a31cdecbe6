package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	guilayout "pyinstaller-builder/internal/gui/layout"
)

// PathRow is an entry followed by one or more fixed-width buttons
type PathRow struct {
	container *fyne.Container
	Entry     *widget.Entry
	buttons   *fyne.Container
	buttonSet []*widget.Button

	changeHandler func(string)
	silent        bool
}

func NewPathRow(placeholder string) *PathRow {
	row := &PathRow{
		Entry:   widget.NewEntry(),
		buttons: container.NewHBox(),
	}
	row.Entry.SetPlaceHolder(placeholder)
	row.Entry.OnChanged = row.onChanged
	row.container = container.NewBorder(nil, nil, nil, row.buttons, row.Entry)
	return row
}

// AddButton appends a button sized like the other rows' buttons
func (r *PathRow) AddButton(label string, icon fyne.Resource, handler func()) *widget.Button {
	button := widget.NewButtonWithIcon(label, icon, handler)
	r.buttons.Add(guilayout.FixedWidth(button, ButtonWidth))
	r.buttonSet = append(r.buttonSet, button)
	return button
}

func (r *PathRow) GetContainer() *fyne.Container {
	return r.container
}

func (r *PathRow) SetChangeHandler(handler func(string)) {
	r.changeHandler = handler
}

// SetText updates the entry without notifying the change handler
func (r *PathRow) SetText(text string) {
	r.silent = true
	defer func() { r.silent = false }()
	r.Entry.SetText(text)
}

func (r *PathRow) Text() string {
	return r.Entry.Text
}

func (r *PathRow) SetEnabled(enabled bool) {
	setEnabled(enabled, r.Entry)
	for _, b := range r.buttonSet {
		setEnabled(enabled, b)
	}
}

func (r *PathRow) onChanged(text string) {
	if r.silent || r.changeHandler == nil {
		return
	}
	r.changeHandler(text)
}

func setEnabled(enabled bool, items ...fyne.Disableable) {
	for _, item := range items {
		if enabled {
			item.Enable()
		} else {
			item.Disable()
		}
	}
}
