package layout

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestMinSizeLayout_MinSize(t *testing.T) {
	test.NewTempApp(t)

	small := canvas.NewRectangle(nil)
	small.SetMinSize(fyne.NewSize(10, 10))
	big := canvas.NewRectangle(nil)
	big.SetMinSize(fyne.NewSize(300, 5))

	l := NewMinSizeLayout(100, 80)

	assert.Equal(t, fyne.NewSize(100, 80), l.MinSize([]fyne.CanvasObject{small}))
	assert.Equal(t, fyne.NewSize(300, 80), l.MinSize([]fyne.CanvasObject{small, big}))
}

func TestMinSizeLayout_LayoutFillsContainer(t *testing.T) {
	test.NewTempApp(t)

	obj := canvas.NewRectangle(nil)
	l := NewMinSizeLayout(0, 50)

	l.Layout([]fyne.CanvasObject{obj}, fyne.NewSize(200, 120))

	assert.Equal(t, fyne.NewSize(200, 120), obj.Size())
	assert.Equal(t, fyne.NewPos(0, 0), obj.Position())
}

func TestHelpers(t *testing.T) {
	test.NewTempApp(t)

	obj := canvas.NewRectangle(nil)

	assert.Equal(t, float32(160), FixedWidth(obj, 160).MinSize().Width)
	assert.Equal(t, float32(80), MinHeight(obj, 80).MinSize().Height)
}
