package controllers

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"dataplot/internal/commands"
	"dataplot/internal/logger"
	"dataplot/internal/models"
	"dataplot/internal/services"
	"dataplot/internal/views/components"
)

const aboutDescription = "is a very simple data plotting framework."

var csvExtensions = []string{".csv"}

// View is the part of the main window the controller drives.
type View interface {
	SetCommandHandler(handler func(commands.Command))
	SetDropHandler(handler func(components.DropPayload))
	AddPlotTab(ds *models.Dataset, label string) (int, error)
	TabCount() int
	CurrentDataset() *models.Dataset
	UpdateStatus(status string)
	SetWorkingDirectory(dir string)
	ShowError(title string, err error)
	ShowInfo(title, message string)
	ShowAbout(title, version, description string)
	ShowOpenDialog(dir string, extensions []string, onChosen func(path string))
	ShowSaveDialog(dir, fileName string, extensions []string, onChosen func(path string))
	Close()
}

// Loader reads a dataset from a file.
type Loader interface {
	Load(path string) (*models.Dataset, error)
}

// Exporter writes a dataset to a file.
type Exporter interface {
	Export(ds *models.Dataset, path string) error
}

// EditListener is notified of edit commands.
type EditListener interface {
	EditCut()
}

// EditListenerFunc adapts a function to EditListener.
type EditListenerFunc func()

func (f EditListenerFunc) EditCut() { f() }

// Options configures a MainController.
type Options struct {
	Version   string
	Workspace models.Workspace
	// Quit ends the application. Defaults to closing the view.
	Quit func()
	// Now is used for default file names. Defaults to time.Now.
	Now func() time.Time
}

// MainController dispatches window commands and owns the workspace.
type MainController struct {
	view     View
	loader   Loader
	exporter Exporter
	logger   logger.Logger

	version   string
	workspace models.Workspace
	quit      func()
	now       func() time.Time

	handlers      map[commands.Command]func()
	editListeners []EditListener
}

func NewMainController(view View, loader Loader, exporter Exporter, log logger.Logger, opts Options) *MainController {
	if log == nil {
		log = logger.Nop{}
	}
	mc := &MainController{
		view:      view,
		loader:    loader,
		exporter:  exporter,
		logger:    log,
		version:   opts.Version,
		workspace: opts.Workspace,
		quit:      opts.Quit,
		now:       opts.Now,
	}
	if mc.quit == nil {
		mc.quit = view.Close
	}
	if mc.now == nil {
		mc.now = time.Now
	}

	mc.initializeHandlers()
	mc.setupViewEventHandlers()
	view.SetWorkingDirectory(mc.workspace.Dir)
	return mc
}

func (mc *MainController) initializeHandlers() {
	mc.handlers = map[commands.Command]func(){
		commands.Exit:    mc.exit,
		commands.New:     mc.newDataDialog,
		commands.Open:    mc.openDialog,
		commands.Export:  mc.exportDialog,
		commands.Cut:     mc.editCut,
		commands.Copy:    mc.defaultAction,
		commands.Paste:   mc.defaultAction,
		commands.ZoomIn:  mc.zoomIn,
		commands.ZoomOut: mc.zoomOut,
		commands.About:   mc.about,
	}
}

func (mc *MainController) setupViewEventHandlers() {
	mc.view.SetCommandHandler(mc.Dispatch)
	mc.view.SetDropHandler(mc.handleEmptyDrop)
}

// Dispatch runs the handler registered for cmd.
func (mc *MainController) Dispatch(cmd commands.Command) {
	handler, ok := mc.handlers[cmd]
	if !ok {
		mc.logger.Warning("no handler for command", map[string]interface{}{"command": int(cmd)})
		return
	}
	handler()
}

// Workspace returns the current dialog workspace.
func (mc *MainController) Workspace() models.Workspace {
	return mc.workspace
}

// AddEditListener registers l for edit commands.
func (mc *MainController) AddEditListener(l EditListener) {
	mc.editListeners = append(mc.editListeners, l)
}

// LoadCSV loads path and shows it in a new tab labelled with the file name.
// On failure nothing changes and the error is reported to the user.
func (mc *MainController) LoadCSV(path string) error {
	mc.logger.Debug("opening csv", map[string]interface{}{"path": path})

	ds, err := mc.loader.Load(path)
	if err != nil {
		mc.handleError("Could not load "+filepath.Base(path), err)
		return err
	}

	label := filepath.Base(path)
	if _, err := mc.view.AddPlotTab(ds, label); err != nil {
		mc.handleError("Could not show "+label, err)
		return err
	}

	mc.setWorkspace(mc.workspace.WithFile(path))
	mc.view.UpdateStatus(fmt.Sprintf("Loaded %s (%d points)", label, ds.Len()))
	mc.logger.Info("csv plotted", map[string]interface{}{
		"path":   path,
		"points": ds.Len(),
	})
	return nil
}

// NewData sets up an empty data target at path: the workspace moves to its
// folder and a placeholder tab labelled with the file name is added. The
// file itself is not written.
func (mc *MainController) NewData(path string) error {
	if path == "" {
		return errors.New("new data: empty path")
	}
	label := filepath.Base(path)
	if _, err := mc.view.AddPlotTab(nil, label); err != nil {
		mc.handleError("Could not create "+label, err)
		return err
	}

	mc.setWorkspace(mc.workspace.WithFile(path))
	mc.view.UpdateStatus("New data target " + label)
	mc.logger.Debug("creating new file", map[string]interface{}{"path": path})
	return nil
}

// ExportPlot writes the dataset of the current tab to path.
func (mc *MainController) ExportPlot(path string) error {
	ds := mc.view.CurrentDataset()
	if ds == nil {
		err := errors.New("the current tab has no data to export")
		mc.view.ShowInfo("Nothing to export", err.Error())
		return err
	}
	if err := mc.exporter.Export(ds, path); err != nil {
		mc.handleError("Export failed", err)
		return err
	}
	mc.view.UpdateStatus("Exported " + filepath.Base(path))
	return nil
}

// ShowDemo adds the sample plots.
func (mc *MainController) ShowDemo() {
	demos := []struct {
		label string
		ds    *models.Dataset
	}{
		{"Sin Plot", models.SineDataset()},
		{"Random Number Plot", models.RandomDataset(25, rand.New(rand.NewPCG(uint64(mc.now().UnixNano()), 0)))},
		{"XY", models.SampleDataset()},
	}
	for _, d := range demos {
		if _, err := mc.view.AddPlotTab(d.ds, d.label); err != nil {
			mc.logger.Error("demo tab failed", err, map[string]interface{}{"label": d.label})
		}
	}
}

// Shutdown logs the final state. It satisfies shutdown.Shutdownable.
func (mc *MainController) Shutdown() {
	mc.logger.Info("controller shutdown", map[string]interface{}{
		"tabs":      mc.view.TabCount(),
		"workspace": mc.workspace.Dir,
	})
}

func (mc *MainController) exit() {
	mc.logger.Info("exit requested", nil)
	mc.quit()
}

func (mc *MainController) openDialog() {
	mc.view.ShowOpenDialog(mc.workspace.Dir, csvExtensions, func(path string) {
		_ = mc.LoadCSV(path)
	})
}

func (mc *MainController) newDataDialog() {
	name := fmt.Sprintf("%s_process.csv", mc.now().Format("060102_150405"))
	mc.view.ShowSaveDialog(mc.workspace.Dir, name, csvExtensions, func(path string) {
		_ = mc.NewData(path)
	})
}

func (mc *MainController) exportDialog() {
	ds := mc.view.CurrentDataset()
	if ds == nil {
		mc.view.ShowInfo("Nothing to export", "Open a CSV file first.")
		return
	}
	name := strings.TrimSuffix(ds.Title(), filepath.Ext(ds.Title()))
	if name == "" {
		name = "plot"
	}
	mc.view.ShowSaveDialog(mc.workspace.Dir, name+".png", services.ExportFormats, func(path string) {
		_ = mc.ExportPlot(path)
	})
}

func (mc *MainController) handleEmptyDrop(p components.DropPayload) {
	mc.logger.Debug("data dropped on empty tab area", map[string]interface{}{"uris": len(p.URIs)})
	path := p.FirstPath()
	if path == "" {
		path = filepath.Join(mc.workspace.Dir, fmt.Sprintf("%s_process.csv", mc.now().Format("060102_150405")))
	}
	_ = mc.NewData(path)
}

func (mc *MainController) editCut() {
	for _, l := range mc.editListeners {
		l.EditCut()
	}
}

func (mc *MainController) defaultAction() {
	mc.logger.Debug("default action", nil)
}

// TODO: scale the current plot view once PlotView supports a zoom factor.
func (mc *MainController) zoomIn() {
	mc.logger.Debug("zoom in not implemented", nil)
}

func (mc *MainController) zoomOut() {
	mc.logger.Debug("zoom out not implemented", nil)
}

func (mc *MainController) about() {
	mc.view.ShowAbout("About data plot", mc.version, aboutDescription)
}

func (mc *MainController) setWorkspace(ws models.Workspace) {
	mc.workspace = ws
	mc.view.SetWorkingDirectory(ws.Dir)
}

// handleError reports an error without changing application state.
func (mc *MainController) handleError(title string, err error) {
	fields := map[string]interface{}{"kind": errorKind(err)}
	mc.logger.Error(title, err, fields)
	mc.view.UpdateStatus(title)
	mc.view.ShowError(title, err)
}

func errorKind(err error) string {
	var (
		access *models.FileAccessError
		parse  *models.ParseError
		shape  *models.ShapeMismatchError
	)
	switch {
	case errors.As(err, &access):
		return "file_access"
	case errors.As(err, &parse):
		return "parse"
	case errors.As(err, &shape):
		return "shape_mismatch"
	}
	return "other"
}
