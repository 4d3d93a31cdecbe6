package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar is the bottom action bar with the Build button
type Toolbar struct {
	container   *fyne.Container
	BuildButton *widget.Button

	buildHandler func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.setupToolbar()
	return toolbar
}

func (t *Toolbar) setupToolbar() {
	background := canvas.NewRectangle(color.RGBA{R: 250, G: 249, B: 245, A: 255})
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeWidth = 1.0
	border.StrokeColor = color.RGBA{R: 231, G: 231, B: 231, A: 255}

	t.BuildButton = widget.NewButtonWithIcon("Build", theme.MediaPlayIcon(), t.onBuild)
	t.BuildButton.Importance = widget.HighImportance

	content := container.NewPadded(container.NewHBox(
		layout.NewSpacer(),
		t.BuildButton,
		layout.NewSpacer(),
	))

	t.container = container.NewStack(background, border, content)
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetBuildHandler(handler func()) {
	t.buildHandler = handler
}

func (t *Toolbar) SetEnabled(enabled bool) {
	setEnabled(enabled, t.BuildButton)
}

func (t *Toolbar) onBuild() {
	if t.buildHandler != nil {
		t.buildHandler()
	}
}
