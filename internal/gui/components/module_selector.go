package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ModuleSelector is a scrollable list of checkboxes, one per module
type ModuleSelector struct {
	container *fyne.Container
	modules   []string
	checks    []*widget.Check
}

// NewModuleSelector pre-checks modules found in selected
func NewModuleSelector(modules, selected []string) *ModuleSelector {
	s := &ModuleSelector{modules: append([]string(nil), modules...)}

	checked := make(map[string]bool, len(selected))
	for _, m := range selected {
		checked[m] = true
	}

	box := container.NewVBox()
	if len(s.modules) == 0 {
		box.Add(widget.NewLabel("No imports found in the main script."))
	}
	for _, m := range s.modules {
		check := widget.NewCheck(m, nil)
		check.SetChecked(checked[m])
		s.checks = append(s.checks, check)
		box.Add(check)
	}

	s.container = container.NewStack(container.NewVScroll(box))
	return s
}

func (s *ModuleSelector) GetContainer() *fyne.Container {
	return s.container
}

// Selected returns the checked modules in list order
func (s *ModuleSelector) Selected() []string {
	var out []string
	for i, check := range s.checks {
		if check.Checked {
			out = append(out, s.modules[i])
		}
	}
	return out
}

// ShowModuleDialog asks the user which modules to force-collect. The callback
// receives ok=false when the dialog is dismissed.
func ShowModuleDialog(win fyne.Window, modules, selected []string, callback func([]string, bool)) {
	selector := NewModuleSelector(modules, selected)
	d := dialog.NewCustomConfirm("Select modules to collect", "OK", "Cancel",
		selector.GetContainer(), func(ok bool) {
			if callback == nil {
				return
			}
			if !ok {
				callback(nil, false)
				return
			}
			callback(selector.Selected(), true)
		}, win)
	d.Resize(fyne.NewSize(ModuleDialogWidth, ModuleDialogHeight))
	d.Show()
}
