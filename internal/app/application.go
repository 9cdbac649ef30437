package app

import (
	"runtime"

	"dataplot/internal/config"
	"dataplot/internal/controllers"
	"dataplot/internal/logger"
	"dataplot/internal/models"
	"dataplot/internal/services"
	"dataplot/internal/shutdown"
	"dataplot/internal/views"

	"fyne.io/fyne/v2"
)

const (
	AppName    = "Data plot"
	AppID      = "org.ismeralda.dataplot"
	AppVersion = "v0.0.1"
)

// Application wires the window, view and controller together and owns their
// lifecycle.
type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       *views.MainView
	controller *controllers.MainController
	shutdown   *shutdown.Manager
	logger     *logger.ZerologAdapter
}

// NewApplication builds the main window on fyneApp.
func NewApplication(fyneApp fyne.App, cfg *config.Config, log *logger.ZerologAdapter) *Application {
	window := fyneApp.NewWindow(AppName + " " + AppVersion)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	plots := services.NewPlotService(log.WithComponent("plot"))
	view := views.NewMainView(window, plots, log.WithComponent("view"))

	a := &Application{
		fyneApp:  fyneApp,
		window:   window,
		view:     view,
		shutdown: shutdown.NewManager(log.WithComponent("shutdown")),
		logger:   log.WithComponent("app"),
	}

	a.controller = controllers.NewMainController(
		view,
		services.NewCSVService(log.WithComponent("csv")),
		plots,
		log.WithComponent("controller"),
		controllers.Options{
			Version:   AppVersion,
			Workspace: models.NewWorkspace(cfg.WorkDir),
			Quit:      a.Shutdown,
		},
	)
	a.controller.AddEditListener(controllers.EditListenerFunc(func() {
		a.logger.Debug("edit cut", nil)
	}))

	// registered first so it runs last
	a.shutdown.Register(shutdown.Func(func() {
		fyne.Do(a.fyneApp.Quit)
	}))
	a.shutdown.Register(a.controller)

	if cfg.Demo {
		a.controller.ShowDemo()
	}

	a.setupWindowEvents()

	a.logger.Info("application initialized", map[string]interface{}{
		"version":    AppVersion,
		"workdir":    cfg.WorkDir,
		"go_version": runtime.Version(),
		"demo":       cfg.Demo,
	})
	return a
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("window close requested", nil)
		a.Shutdown()
	})
	a.window.SetOnClosed(func() {
		a.logger.Debug("window closed", nil)
	})
}

// Run shows the window and blocks until the application quits.
func (a *Application) Run() {
	a.shutdown.Listen()
	a.view.Show()
	a.fyneApp.Run()
	a.logger.Info("application terminated", nil)
}

// Shutdown stops the controller and quits the event loop. Safe to call more
// than once.
func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}

func (a *Application) Controller() *controllers.MainController {
	return a.controller
}

func (a *Application) View() *views.MainView {
	return a.view
}
