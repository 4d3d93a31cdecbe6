package components

// Option identifies a boolean build switch on the form
type Option int

const (
	OptionOneFile Option = iota
	OptionNoConsole
	OptionCollectAll
)

func (o Option) String() string {
	switch o {
	case OptionOneFile:
		return "onefile"
	case OptionNoConsole:
		return "noconsole"
	case OptionCollectAll:
		return "collect-all"
	default:
		return "unknown"
	}
}

const (
	ButtonWidth        = 160
	ExtraListHeight    = 80
	LogMinHeight       = 200
	ModuleDialogWidth  = 350
	ModuleDialogHeight = 400
)
