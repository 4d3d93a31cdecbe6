package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// OptionsPanel holds the boolean PyInstaller switches
type OptionsPanel struct {
	container  *fyne.Container
	OneFile    *widget.Check
	NoConsole  *widget.Check
	CollectAll *widget.Check

	changeHandler func(Option, bool)
	silent        bool
}

func NewOptionsPanel() *OptionsPanel {
	p := &OptionsPanel{}
	p.OneFile = widget.NewCheck("One file bundle (--onefile)", p.notify(OptionOneFile))
	p.NoConsole = widget.NewCheck("Hide console (--noconsole)", p.notify(OptionNoConsole))
	p.CollectAll = widget.NewCheck("Collect module (--collect-all)", p.notify(OptionCollectAll))

	p.container = container.NewHBox(p.OneFile, p.NoConsole, p.CollectAll)
	return p
}

func (p *OptionsPanel) GetContainer() *fyne.Container {
	return p.container
}

func (p *OptionsPanel) SetChangeHandler(handler func(Option, bool)) {
	p.changeHandler = handler
}

// SetChecked changes a switch without notifying the change handler
func (p *OptionsPanel) SetChecked(opt Option, checked bool) {
	p.silent = true
	defer func() { p.silent = false }()

	switch opt {
	case OptionOneFile:
		p.OneFile.SetChecked(checked)
	case OptionNoConsole:
		p.NoConsole.SetChecked(checked)
	case OptionCollectAll:
		p.CollectAll.SetChecked(checked)
	}
}

func (p *OptionsPanel) SetEnabled(enabled bool) {
	setEnabled(enabled, p.OneFile, p.NoConsole, p.CollectAll)
}

func (p *OptionsPanel) notify(opt Option) func(bool) {
	return func(checked bool) {
		if p.silent || p.changeHandler == nil {
			return
		}
		p.changeHandler(opt, checked)
	}
}
