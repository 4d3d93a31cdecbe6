package models

import "slices"

// Form owns the editable build configuration of one window session.
// It is not safe for concurrent use; the UI goroutine is its only writer.
type Form struct {
	MainScript string
	Icon       string
	OutputDir  string
	OneFile    bool
	NoConsole  bool
	CollectAll bool

	extraFiles      []string
	selectedModules []string

	generated  string
	command    string
	overridden bool
}

// DropResult describes what a drop changed
type DropResult struct {
	Script string
	Icon   string
	Extras []string
}

func (d DropResult) Empty() bool {
	return d.Script == "" && d.Icon == "" && len(d.Extras) == 0
}

func NewForm(outputDir string) *Form {
	return &Form{OutputDir: outputDir}
}

// Options snapshots the form. Selected modules only count while CollectAll is on.
func (f *Form) Options() BuildOptions {
	opts := BuildOptions{
		MainScript: f.MainScript,
		Icon:       f.Icon,
		OutputDir:  f.OutputDir,
		OneFile:    f.OneFile,
		NoConsole:  f.NoConsole,
		ExtraFiles: slices.Clone(f.extraFiles),
	}
	if f.CollectAll {
		opts.ForcedModules = slices.Clone(f.selectedModules)
	}
	return opts
}

func (f *Form) ExtraFiles() []string {
	return slices.Clone(f.extraFiles)
}

// AddExtraFiles appends paths not already present and returns the ones added
func (f *Form) AddExtraFiles(paths ...string) []string {
	var added []string
	for _, p := range paths {
		if p == "" || slices.Contains(f.extraFiles, p) {
			continue
		}
		f.extraFiles = append(f.extraFiles, p)
		added = append(added, p)
	}
	return added
}

func (f *Form) RemoveExtraFile(path string) bool {
	i := slices.Index(f.extraFiles, path)
	if i < 0 {
		return false
	}
	f.extraFiles = slices.Delete(f.extraFiles, i, i+1)
	return true
}

func (f *Form) ClearExtraFiles() {
	f.extraFiles = nil
}

func (f *Form) SelectedModules() []string {
	return slices.Clone(f.selectedModules)
}

func (f *Form) SetSelectedModules(modules []string) {
	f.selectedModules = slices.Clone(modules)
}

// ApplyDrop routes each path by its kind. The last script or icon wins.
func (f *Form) ApplyDrop(paths []string) DropResult {
	var res DropResult
	for _, p := range paths {
		switch ClassifyFile(p) {
		case KindScript:
			f.MainScript = p
			res.Script = p
		case KindIcon:
			f.Icon = p
			res.Icon = p
		default:
			res.Extras = append(res.Extras, f.AddExtraFiles(p)...)
		}
	}
	return res
}

// Regenerate recomputes the command from the current options. A manual
// override, if any, is discarded and reported.
func (f *Form) Regenerate(compose func(BuildOptions) string) (command string, discarded bool) {
	discarded = f.overridden
	f.generated = compose(f.Options())
	f.command = f.generated
	f.overridden = false
	return f.command, discarded
}

// Override records a manual edit of the command
func (f *Form) Override(text string) {
	f.command = text
	f.overridden = text != f.generated
}

func (f *Form) Command() string {
	return f.command
}

func (f *Form) Overridden() bool {
	return f.overridden
}
