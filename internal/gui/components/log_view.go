package components

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/time/rate"

	guilayout "pyinstaller-builder/internal/gui/layout"
)

const logRefreshInterval = 100 * time.Millisecond

// LogView is an append-only, auto-scrolling list of build output lines.
// It must only be used from the UI goroutine, except for the deferred
// refresh it schedules itself through fyne.Do.
type LogView struct {
	container *fyne.Container
	list      *widget.List
	lines     []string

	refresh  rate.Sometimes
	timerMu  sync.Mutex
	trailing *time.Timer
}

func NewLogView() *LogView {
	v := &LogView{refresh: rate.Sometimes{Interval: logRefreshInterval}}

	v.list = widget.NewList(
		func() int { return len(v.lines) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.TextStyle = fyne.TextStyle{Monospace: true}
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= 0 && id < len(v.lines) {
				obj.(*widget.Label).SetText(v.lines[id])
			}
		},
	)

	v.container = container.NewBorder(
		widget.NewLabel("Build log:"), nil, nil, nil,
		guilayout.MinHeight(v.list, LogMinHeight),
	)
	return v
}

func (v *LogView) GetContainer() *fyne.Container {
	return v.container
}

// Append adds a line. Rendering is throttled; a trailing refresh makes sure
// the last lines of a burst become visible.
func (v *LogView) Append(line string) {
	v.lines = append(v.lines, line)

	ran := false
	v.refresh.Do(func() {
		ran = true
		v.scroll()
	})
	if !ran {
		v.scheduleTrailing()
	}
}

// Flush renders pending lines and scrolls to the end
func (v *LogView) Flush() {
	v.timerMu.Lock()
	if v.trailing != nil {
		v.trailing.Stop()
		v.trailing = nil
	}
	v.timerMu.Unlock()
	v.scroll()
}

func (v *LogView) Clear() {
	v.lines = nil
	v.Flush()
}

func (v *LogView) Lines() []string {
	return append([]string(nil), v.lines...)
}

func (v *LogView) scroll() {
	v.list.Refresh()
	if len(v.lines) > 0 {
		v.list.ScrollToBottom()
	}
}

func (v *LogView) scheduleTrailing() {
	v.timerMu.Lock()
	defer v.timerMu.Unlock()
	if v.trailing != nil {
		return
	}
	v.trailing = time.AfterFunc(logRefreshInterval, func() {
		fyne.Do(v.Flush)
	})
}
