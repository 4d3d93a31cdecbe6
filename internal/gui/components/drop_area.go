package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	DropHint     = "Drag and drop .py, .ico, and extra files here"
	BuildingHint = "Building... drops are disabled"
)

// DropArea is the visual drop target. Drops are received by the window,
// which accepts files anywhere in its bounds.
type DropArea struct {
	container *fyne.Container
	label     *widget.Label
}

func NewDropArea() *DropArea {
	border := canvas.NewRectangle(color.RGBA{R: 249, G: 249, B: 249, A: 255})
	border.StrokeColor = color.RGBA{R: 136, G: 136, B: 136, A: 255}
	border.StrokeWidth = 2
	border.CornerRadius = 14
	border.SetMinSize(fyne.NewSize(0, 70))

	label := widget.NewLabelWithStyle(DropHint, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	icon := widget.NewIcon(theme.UploadIcon())

	return &DropArea{
		container: container.NewStack(border, container.NewCenter(container.NewHBox(icon, label))),
		label:     label,
	}
}

func (d *DropArea) GetContainer() *fyne.Container {
	return d.container
}

func (d *DropArea) SetHint(text string) {
	d.label.SetText(text)
}

func (d *DropArea) Hint() string {
	return d.label.Text
}
