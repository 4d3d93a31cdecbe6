package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"pyinstaller-builder/internal/build"
	"pyinstaller-builder/internal/command"
	"pyinstaller-builder/internal/gui/components"
	"pyinstaller-builder/internal/logger"
	"pyinstaller-builder/internal/models"
)

const handlersComponent = "Handlers"

const (
	msgInvalidScript       = "Please select a valid .py file."
	msgInvalidScriptModule = "Please select a valid .py file before selecting modules!"
	msgMissingFolder       = "Folder does not exist."
)

// View is the part of the window the handlers drive
type View interface {
	SetScript(path string)
	SetIcon(path string)
	SetOutputDir(path string)
	SetExtraFiles(files []string)
	SetOption(opt components.Option, checked bool)
	SetCommand(command string)
	Command() string
	SetBuilding(building bool)
	SetWindowIcon(path string)
	AppendLog(line string)
	ClearLog()
	FlushLog()
	UpdateStatus(status string)
	ShowError(title string, err error)
	ShowInfo(title, message string)
	ShowWarning(title, message string)
	ShowModuleDialog(modules, selected []string, callback func([]string, bool))
	PickFile(extensions []string, callback func(string))
	PickFolder(callback func(string))
}

type BuildRunner interface {
	Run(command, workingDir string, onLine func(string), onDone func(models.BuildOutcome)) error
}

type ModuleScanner interface {
	Scan(ctx context.Context, scriptPath string) []string
}

// Handlers translates UI events into form changes, scans and builds.
// Every exported method runs on the UI goroutine.
type Handlers struct {
	form     *models.Form
	composer command.Composer
	scanner  ModuleScanner
	runner   BuildRunner
	view     View
	logger   logger.Logger

	ctx        context.Context
	dispatch   build.Dispatcher
	background func(func())
	openFolder func(string) error
}

func NewHandlers(ctx context.Context, form *models.Form, composer command.Composer, scanner ModuleScanner,
	runner BuildRunner, view View, log logger.Logger, dispatch build.Dispatcher, openFolder func(string) error) *Handlers {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Handlers{
		form:       form,
		composer:   composer,
		scanner:    scanner,
		runner:     runner,
		view:       view,
		logger:     log,
		ctx:        ctx,
		dispatch:   dispatch,
		background: func(f func()) { go f() },
		openFolder: openFolder,
	}
}

// Refresh pushes the whole form into the view and recomputes the command
func (h *Handlers) Refresh() {
	h.view.SetScript(h.form.MainScript)
	h.view.SetIcon(h.form.Icon)
	h.view.SetOutputDir(h.form.OutputDir)
	h.view.SetExtraFiles(h.form.ExtraFiles())
	h.view.SetOption(components.OptionOneFile, h.form.OneFile)
	h.view.SetOption(components.OptionNoConsole, h.form.NoConsole)
	h.view.SetOption(components.OptionCollectAll, h.form.CollectAll)
	h.recompute()
}

// ApplyDefaultIcon sets the window icon from path when the file exists
func (h *Handlers) ApplyDefaultIcon(path string) bool {
	if !isFile(path) {
		return false
	}
	h.view.SetWindowIcon(path)
	return true
}

func (h *Handlers) HandleScriptChange(path string) {
	h.form.MainScript = path
	h.recompute()
}

func (h *Handlers) HandleIconChange(path string) {
	h.form.Icon = path
	if isFile(path) {
		h.view.SetWindowIcon(path)
	}
	h.recompute()
}

func (h *Handlers) HandleOutputChange(path string) {
	h.form.OutputDir = path
	h.recompute()
}

func (h *Handlers) HandleOptionChange(opt components.Option, checked bool) {
	switch opt {
	case components.OptionOneFile:
		h.form.OneFile = checked
	case components.OptionNoConsole:
		h.form.NoConsole = checked
	case components.OptionCollectAll:
		h.handleCollectAll(checked)
		return
	}
	h.recompute()
}

func (h *Handlers) HandleCommandEdit(text string) {
	h.form.Override(text)
}

func (h *Handlers) HandleBrowseScript() {
	h.view.PickFile([]string{".py"}, func(path string) {
		h.view.SetScript(path)
		h.HandleScriptChange(path)
	})
}

func (h *Handlers) HandleBrowseIcon() {
	h.view.PickFile([]string{".ico"}, func(path string) {
		h.view.SetIcon(path)
		h.HandleIconChange(path)
	})
}

func (h *Handlers) HandleBrowseOutput() {
	h.view.PickFolder(func(path string) {
		h.view.SetOutputDir(path)
		h.HandleOutputChange(path)
	})
}

func (h *Handlers) HandleAddExtra() {
	h.view.PickFile(nil, func(path string) {
		if len(h.form.AddExtraFiles(path)) == 0 {
			return
		}
		h.view.SetExtraFiles(h.form.ExtraFiles())
		h.recompute()
	})
}

func (h *Handlers) HandleRemoveExtra(path string) {
	if !h.form.RemoveExtraFile(path) {
		return
	}
	h.view.SetExtraFiles(h.form.ExtraFiles())
	h.recompute()
}

func (h *Handlers) HandleClearExtras() {
	h.form.ClearExtraFiles()
	h.view.SetExtraFiles(nil)
	h.recompute()
}

func (h *Handlers) HandleOpenOutput() {
	dir := h.form.OutputDir
	if !isDir(dir) {
		h.view.ShowWarning("Error", msgMissingFolder)
		return
	}
	if err := h.openFolder(dir); err != nil {
		h.view.ShowError("Open folder", errors.Wrapf(err, "open %s", dir))
	}
}

func (h *Handlers) HandleDrop(paths []string) {
	res := h.form.ApplyDrop(paths)
	if res.Empty() {
		return
	}

	if res.Script != "" {
		h.view.SetScript(h.form.MainScript)
	}
	if res.Icon != "" {
		h.view.SetIcon(h.form.Icon)
		if isFile(h.form.Icon) {
			h.view.SetWindowIcon(h.form.Icon)
		}
	}
	if len(res.Extras) > 0 {
		h.view.SetExtraFiles(h.form.ExtraFiles())
	}

	h.logger.Debug(handlersComponent, "drop applied", map[string]interface{}{
		"script": res.Script,
		"icon":   res.Icon,
		"extras": len(res.Extras),
	})
	h.recompute()
}

// HandleBuild runs whatever the command preview holds, in the script's directory
func (h *Handlers) HandleBuild() {
	script := h.form.MainScript
	if script == "" || !isFile(script) {
		h.view.ShowWarning("Error", msgInvalidScript)
		return
	}

	cmd := h.view.Command()
	h.view.ClearLog()
	h.view.UpdateStatus("Building...")
	h.view.SetBuilding(true)

	err := h.runner.Run(cmd, filepath.Dir(script), h.view.AppendLog, h.onBuildFinished)
	if err != nil {
		h.view.SetBuilding(false)
		h.view.UpdateStatus("Ready")
		h.view.ShowError("Build", err)
		return
	}

	h.logger.Info(handlersComponent, "build started", map[string]interface{}{
		"command": cmd,
		"dir":     filepath.Dir(script),
	})
}

func (h *Handlers) onBuildFinished(outcome models.BuildOutcome) {
	h.view.FlushLog()
	h.view.SetBuilding(false)

	if outcome.Succeeded {
		h.view.UpdateStatus("Build completed.")
		h.view.AppendLog("")
		h.view.AppendLog("=== Build completed ===")
		h.view.FlushLog()
		h.view.ShowInfo("Notification", outcome.Message)
		return
	}

	h.view.UpdateStatus("Build error!")
	h.view.AppendLog("")
	h.view.AppendLog("=== Build error ===")
	h.view.FlushLog()
	h.view.ShowWarning("Error", outcome.Message)
}

func (h *Handlers) handleCollectAll(checked bool) {
	h.form.CollectAll = checked
	if !checked {
		h.form.SetSelectedModules(nil)
		h.recompute()
		return
	}

	script := h.form.MainScript
	if !isFile(script) {
		h.cancelCollectAll()
		h.view.ShowWarning("Error", msgInvalidScriptModule)
		return
	}

	h.view.UpdateStatus("Scanning imports...")
	h.background(func() {
		modules := h.scanner.Scan(h.ctx, script)
		h.dispatch(func() {
			h.view.UpdateStatus("Ready")
			h.chooseModules(modules)
		})
	})
}

func (h *Handlers) chooseModules(modules []string) {
	h.logger.Debug(handlersComponent, "imports scanned", map[string]interface{}{
		"modules": len(modules),
	})

	h.view.ShowModuleDialog(modules, h.form.SelectedModules(), func(selected []string, ok bool) {
		if !ok {
			h.cancelCollectAll()
			return
		}
		h.form.SetSelectedModules(selected)
		h.recompute()
	})
}

func (h *Handlers) cancelCollectAll() {
	h.form.CollectAll = false
	h.form.SetSelectedModules(nil)
	h.view.SetOption(components.OptionCollectAll, false)
	h.recompute()
}

func (h *Handlers) recompute() {
	cmd, discarded := h.form.Regenerate(h.composer.Compose)
	if discarded {
		h.logger.Debug(handlersComponent, "manual command edit discarded", nil)
	}
	h.view.SetCommand(cmd)
}

func isFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
