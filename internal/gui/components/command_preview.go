package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// CommandPreview shows the composed command and lets the user edit it
type CommandPreview struct {
	container *fyne.Container
	Entry     *widget.Entry

	editHandler func(string)
	silent      bool
}

func NewCommandPreview() *CommandPreview {
	p := &CommandPreview{Entry: widget.NewEntry()}
	p.Entry.SetPlaceHolder("Select a main .py file to compose the command")
	p.Entry.OnChanged = func(text string) {
		if p.silent || p.editHandler == nil {
			return
		}
		p.editHandler(text)
	}

	p.container = container.NewVBox(
		widget.NewLabel("Command to run (editable):"),
		p.Entry,
	)
	return p
}

func (p *CommandPreview) GetContainer() *fyne.Container {
	return p.container
}

func (p *CommandPreview) SetEditHandler(handler func(string)) {
	p.editHandler = handler
}

// SetCommand replaces the text without reporting it as a manual edit
func (p *CommandPreview) SetCommand(command string) {
	p.silent = true
	defer func() { p.silent = false }()
	p.Entry.SetText(command)
}

func (p *CommandPreview) Command() string {
	return p.Entry.Text
}

func (p *CommandPreview) SetEnabled(enabled bool) {
	setEnabled(enabled, p.Entry)
}
