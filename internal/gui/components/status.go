package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	progress    *widget.ProgressBarInfinite
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	progress := widget.NewProgressBarInfinite()
	progress.Stop()
	progress.Hide()

	mainContainer := container.NewVBox(
		progress,
		statusLabel,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		progress:    progress,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

// SetBusy shows the indeterminate progress bar while a build runs
func (sb *StatusBar) SetBusy(busy bool) {
	if busy {
		sb.progress.Show()
		sb.progress.Start()
		return
	}
	sb.progress.Stop()
	sb.progress.Hide()
}

func (sb *StatusBar) Busy() bool {
	return sb.progress.Visible()
}
