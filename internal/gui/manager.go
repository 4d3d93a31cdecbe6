package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"

	"pyinstaller-builder/internal/gui/components"
	"pyinstaller-builder/internal/logger"
)

const component = "GUIManager"

// Manager owns the window content. Unless stated otherwise its methods must
// be called on the UI goroutine.
type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool
	building   bool

	dropArea   *components.DropArea
	scriptRow  *components.PathRow
	iconRow    *components.PathRow
	outputRow  *components.PathRow
	extraFiles *components.ExtraFilesPanel
	options    *components.OptionsPanel
	preview    *components.CommandPreview
	logView    *components.LogView
	status     *components.StatusBar
	toolbar    *components.Toolbar

	browseScriptHandler func()
	browseIconHandler   func()
	browseOutputHandler func()
	openOutputHandler   func()
	addExtraHandler     func()
	dropHandler         func([]string)
}

func NewManager(window fyne.Window, log logger.Logger) *Manager {
	m := &Manager{
		window:   window,
		logger:   log,
		dropArea: components.NewDropArea(),
		options:  components.NewOptionsPanel(),
		preview:  components.NewCommandPreview(),
		logView:  components.NewLogView(),
		status:   components.NewStatusBar(),
		toolbar:  components.NewToolbar(),
	}

	m.scriptRow = components.NewPathRow("Main .py file")
	m.scriptRow.AddButton("Select main .py", theme.FileIcon(), func() { call(m.browseScriptHandler) })

	m.iconRow = components.NewPathRow("Icon (.ico)")
	m.iconRow.AddButton("Select icon", theme.FileImageIcon(), func() { call(m.browseIconHandler) })

	m.outputRow = components.NewPathRow("Output folder")
	m.outputRow.AddButton("Select folder", theme.FolderIcon(), func() { call(m.browseOutputHandler) })
	m.outputRow.AddButton("Open EXE folder", theme.FolderOpenIcon(), func() { call(m.openOutputHandler) })

	m.extraFiles = components.NewExtraFilesPanel(func() { call(m.addExtraHandler) })

	window.SetOnDropped(m.onDropped)

	log.Info(component, "initialized", map[string]interface{}{
		"window_width":  window.Canvas().Size().Width,
		"window_height": window.Canvas().Size().Height,
	})

	return m
}

func (m *Manager) GetMainContainer() fyne.CanvasObject {
	form := container.NewVBox(
		m.dropArea.GetContainer(),
		m.scriptRow.GetContainer(),
		m.iconRow.GetContainer(),
		m.extraFiles.GetContainer(),
		m.outputRow.GetContainer(),
		m.options.GetContainer(),
		m.preview.GetContainer(),
	)

	bottom := container.NewVBox(
		m.status.GetContainer(),
		m.toolbar.GetContainer(),
	)

	return container.NewPadded(container.NewBorder(form, bottom, nil, nil, m.logView.GetContainer()))
}

func (m *Manager) SetScriptChangeHandler(handler func(string)) {
	m.scriptRow.SetChangeHandler(handler)
}

func (m *Manager) SetIconChangeHandler(handler func(string)) {
	m.iconRow.SetChangeHandler(handler)
}

func (m *Manager) SetOutputChangeHandler(handler func(string)) {
	m.outputRow.SetChangeHandler(handler)
}

func (m *Manager) SetOptionChangeHandler(handler func(components.Option, bool)) {
	m.options.SetChangeHandler(func(opt components.Option, checked bool) {
		m.logger.Debug(component, "option changed", map[string]interface{}{
			"option":  opt.String(),
			"checked": checked,
		})
		handler(opt, checked)
	})
}

func (m *Manager) SetBrowseScriptHandler(handler func()) {
	m.browseScriptHandler = handler
}

func (m *Manager) SetBrowseIconHandler(handler func()) {
	m.browseIconHandler = handler
}

func (m *Manager) SetBrowseOutputHandler(handler func()) {
	m.browseOutputHandler = handler
}

func (m *Manager) SetOpenOutputHandler(handler func()) {
	m.openOutputHandler = handler
}

func (m *Manager) SetAddExtraHandler(handler func()) {
	m.addExtraHandler = handler
}

func (m *Manager) SetRemoveExtraHandler(handler func(string)) {
	m.extraFiles.SetRemoveHandler(handler)
}

func (m *Manager) SetClearExtrasHandler(handler func()) {
	m.extraFiles.SetClearHandler(handler)
}

func (m *Manager) SetCommandEditHandler(handler func(string)) {
	m.preview.SetEditHandler(handler)
}

func (m *Manager) SetDropHandler(handler func([]string)) {
	m.dropHandler = handler
}

func (m *Manager) SetBuildHandler(handler func()) {
	m.toolbar.SetBuildHandler(func() {
		m.logger.Info(component, "build requested", nil)
		handler()
	})
}

// Field setters below never trigger the corresponding change handlers.

func (m *Manager) SetScript(path string) {
	m.scriptRow.SetText(path)
}

func (m *Manager) SetIcon(path string) {
	m.iconRow.SetText(path)
}

func (m *Manager) SetOutputDir(path string) {
	m.outputRow.SetText(path)
}

func (m *Manager) SetExtraFiles(files []string) {
	m.extraFiles.SetFiles(files)
}

func (m *Manager) SetOption(opt components.Option, checked bool) {
	m.options.SetChecked(opt, checked)
}

func (m *Manager) SetCommand(command string) {
	m.preview.SetCommand(command)
}

func (m *Manager) Command() string {
	return m.preview.Command()
}

// SetBuilding locks the form, drops included, while a build is running
func (m *Manager) SetBuilding(building bool) {
	m.building = building
	if building {
		m.dropArea.SetHint(components.BuildingHint)
	} else {
		m.dropArea.SetHint(components.DropHint)
	}

	enabled := !building
	m.scriptRow.SetEnabled(enabled)
	m.iconRow.SetEnabled(enabled)
	m.outputRow.SetEnabled(enabled)
	m.extraFiles.SetEnabled(enabled)
	m.options.SetEnabled(enabled)
	m.preview.SetEnabled(enabled)
	m.toolbar.SetEnabled(enabled)
	m.status.SetBusy(building)
}

func (m *Manager) AppendLog(line string) {
	m.logView.Append(line)
}

func (m *Manager) ClearLog() {
	m.logView.Clear()
}

func (m *Manager) FlushLog() {
	m.logView.Flush()
}

func (m *Manager) UpdateStatus(status string) {
	m.status.SetStatus(status)
	m.logger.Debug(component, "status updated", map[string]interface{}{
		"status": status,
	})
}

// SetWindowIcon uses the selected .ico as the window icon, if it loads
func (m *Manager) SetWindowIcon(path string) {
	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		m.logger.Debug(component, "window icon not loaded", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return
	}
	m.window.SetIcon(res)
}

// ShowError may be called from any goroutine
func (m *Manager) ShowError(title string, err error) {
	m.logger.Error(component, err, map[string]interface{}{
		"title": title,
	})

	fyne.Do(func() {
		dialog.ShowError(err, m.window)
	})
}

func (m *Manager) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, m.window)
}

func (m *Manager) ShowWarning(title, message string) {
	m.logger.Warning(component, message, map[string]interface{}{
		"title": title,
	})
	dialog.ShowInformation(title, message, m.window)
}

func (m *Manager) ShowModuleDialog(modules, selected []string, callback func([]string, bool)) {
	components.ShowModuleDialog(m.window, modules, selected, callback)
}

// PickFile shows an open dialog limited to the given extensions (none means
// any file) and passes the chosen local path to callback.
func (m *Manager) PickFile(extensions []string, callback func(string)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			m.ShowError("Open file", err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		callback(path)
	}, m.window)

	if len(extensions) > 0 {
		d.SetFilter(storage.NewExtensionFileFilter(extensions))
	}
	d.Resize(m.window.Canvas().Size())
	d.Show()
}

func (m *Manager) PickFolder(callback func(string)) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			m.ShowError("Select folder", err)
			return
		}
		if uri == nil {
			return
		}
		callback(uri.Path())
	}, m.window)
}

func (m *Manager) onDropped(_ fyne.Position, uris []fyne.URI) {
	if m.building {
		m.logger.Debug(component, "drop ignored during build", map[string]interface{}{
			"count": len(uris),
		})
		return
	}

	paths := make([]string, 0, len(uris))
	for _, u := range uris {
		if u.Scheme() != "file" {
			continue
		}
		paths = append(paths, u.Path())
	}

	m.logger.Debug(component, "files dropped", map[string]interface{}{
		"count": len(paths),
	})

	if len(paths) == 0 || m.dropHandler == nil {
		return
	}
	m.dropHandler(paths)
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info(component, "shutdown initiated", nil)
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}
