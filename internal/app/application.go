package app

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/storage"

	"pyinstaller-builder/internal/build"
	"pyinstaller-builder/internal/command"
	"pyinstaller-builder/internal/config"
	"pyinstaller-builder/internal/gui"
	"pyinstaller-builder/internal/imports"
	"pyinstaller-builder/internal/logger"
	"pyinstaller-builder/internal/models"
	"pyinstaller-builder/internal/shutdown"
)

const (
	AppName    = "PyInstaller EXE Builder"
	AppID      = "com.pyinstallerbuilder.app"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	runner     *build.Runner
	handlers   *Handlers
	shutdown   *shutdown.Manager
	logger     logger.Logger
}

func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)

	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.SetFixedSize(false)
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"tool":          cfg.Tool,
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
	})

	shutdownMgr := shutdown.NewManager(log)
	guiManager := gui.NewManager(window, log)
	runner := build.NewRunner(&build.Options{
		Dispatch: fyne.Do,
		Logger:   log,
	})
	scanner := imports.NewScanner(cfg.ScanTimeout, log)

	shutdownMgr.Register("gui", guiManager)
	shutdownMgr.Register("runner", runner)

	handlers := NewHandlers(
		shutdownMgr.Context(),
		models.NewForm(cfg.DistDir),
		command.NewComposer(cfg.Tool),
		scanner,
		runner,
		guiManager,
		log,
		fyne.Do,
		func(dir string) error { return openFolder(fyneApp, dir) },
	)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		runner:     runner,
		handlers:   handlers,
		shutdown:   shutdownMgr,
		logger:     log,
	}

	application.setupHandlers()
	if handlers.ApplyDefaultIcon(cfg.WindowIcon) {
		log.Debug("Application", "default window icon set", map[string]interface{}{
			"path": cfg.WindowIcon,
		})
	}

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	h := a.handlers

	a.guiManager.SetScriptChangeHandler(h.HandleScriptChange)
	a.guiManager.SetIconChangeHandler(h.HandleIconChange)
	a.guiManager.SetOutputChangeHandler(h.HandleOutputChange)
	a.guiManager.SetOptionChangeHandler(h.HandleOptionChange)
	a.guiManager.SetCommandEditHandler(h.HandleCommandEdit)
	a.guiManager.SetBrowseScriptHandler(h.HandleBrowseScript)
	a.guiManager.SetBrowseIconHandler(h.HandleBrowseIcon)
	a.guiManager.SetBrowseOutputHandler(h.HandleBrowseOutput)
	a.guiManager.SetOpenOutputHandler(h.HandleOpenOutput)
	a.guiManager.SetAddExtraHandler(h.HandleAddExtra)
	a.guiManager.SetRemoveExtraHandler(h.HandleRemoveExtra)
	a.guiManager.SetClearExtrasHandler(h.HandleClearExtras)
	a.guiManager.SetDropHandler(h.HandleDrop)
	a.guiManager.SetBuildHandler(h.HandleBuild)

	h.Refresh()
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.shutdown.Shutdown()
		a.window.Close()
	})

	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	return nil
}

func openFolder(fyneApp fyne.App, dir string) error {
	u, err := url.Parse(storage.NewFileURI(dir).String())
	if err != nil {
		return err
	}
	return fyneApp.OpenURL(u)
}
