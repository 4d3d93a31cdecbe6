package layout

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// MinSizeLayout stacks its objects and never reports less than the given
// size on either axis; a zero axis falls back to the content.
type MinSizeLayout struct {
	minWidth  float32
	minHeight float32
}

func NewMinSizeLayout(minWidth, minHeight float32) *MinSizeLayout {
	return &MinSizeLayout{minWidth: minWidth, minHeight: minHeight}
}

func (l *MinSizeLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	for _, obj := range objects {
		obj.Resize(containerSize)
		obj.Move(fyne.NewPos(0, 0))
	}
}

func (l *MinSizeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	size := fyne.NewSize(0, 0)
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		size = size.Max(obj.MinSize())
	}

	if size.Width < l.minWidth {
		size.Width = l.minWidth
	}
	if size.Height < l.minHeight {
		size.Height = l.minHeight
	}
	return size
}

// FixedWidth keeps obj at least width wide, used for the column of row buttons
func FixedWidth(obj fyne.CanvasObject, width float32) *fyne.Container {
	return container.New(NewMinSizeLayout(width, 0), obj)
}

// MinHeight keeps obj at least height tall
func MinHeight(obj fyne.CanvasObject, height float32) *fyne.Container {
	return container.New(NewMinSizeLayout(0, height), obj)
}
