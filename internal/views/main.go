package views

import (
	"fmt"

	"dataplot/internal/commands"
	"dataplot/internal/logger"
	"dataplot/internal/models"
	"dataplot/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// Menu layout of the main window.
var menuLayout = []struct {
	title string
	items []commands.Command
}{
	{"File", []commands.Command{commands.Open, commands.New, commands.Export, commands.Exit}},
	{"Item", []commands.Command{commands.Cut, commands.Copy, commands.Paste}},
	{"View", []commands.Command{commands.ZoomIn, commands.ZoomOut}},
	{"Help", []commands.Command{commands.About}},
}

// MainView is the main window: menus, toolbar, tabbed plot area and status
// bar. It turns user input into commands and leaves acting on them to the
// controller.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	tabs          *components.TabContainer
	statusBar     *components.StatusBar
	renderer      components.Renderer
	logger        logger.Logger

	commandHandler func(commands.Command)
}

// NewMainView builds the window content. Plot views created through the view
// are drawn with renderer.
func NewMainView(window fyne.Window, renderer components.Renderer, log logger.Logger) *MainView {
	if log == nil {
		log = logger.Nop{}
	}
	view := &MainView{
		window:   window,
		renderer: renderer,
		logger:   log,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupMenus()
	view.setupShortcuts()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.toolbar = components.NewToolbar(mv.dispatch)
	mv.tabs = components.NewTabContainer(mv.logger)
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),
		mv.statusBar.GetContainer(),
		nil,
		nil,
		mv.tabs.GetContainer(),
	)
	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupMenus() {
	menus := make([]*fyne.Menu, 0, len(menuLayout))
	for _, m := range menuLayout {
		items := make([]*fyne.MenuItem, 0, len(m.items))
		for _, cmd := range m.items {
			action, ok := commands.Lookup(cmd)
			if !ok {
				continue
			}
			item := fyne.NewMenuItem(action.Label, func() { mv.dispatch(cmd) })
			item.Icon = action.Icon
			item.Shortcut = action.Shortcut
			items = append(items, item)
		}
		menus = append(menus, fyne.NewMenu(m.title, items...))
	}
	mv.window.SetMainMenu(fyne.NewMainMenu(menus...))
}

func (mv *MainView) setupShortcuts() {
	for _, cmd := range commands.All {
		action, ok := commands.Lookup(cmd)
		if !ok || action.Shortcut == nil {
			continue
		}
		mv.window.Canvas().AddShortcut(action.Shortcut, func(fyne.Shortcut) { mv.dispatch(cmd) })
	}
}

func (mv *MainView) setupEventHandlers() {
	mv.tabs.SetChangeHandler(func() {
		mv.statusBar.SetTabCount(mv.tabs.Count())
	})
	mv.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		mv.HandleDrop(components.PayloadFromURIs(uris))
	})
}

func (mv *MainView) dispatch(cmd commands.Command) {
	mv.logger.Debug("command triggered", map[string]interface{}{"command": cmd.String()})
	if mv.commandHandler != nil {
		mv.commandHandler(cmd)
	}
}

// SetCommandHandler sets the handler every menu, toolbar and shortcut
// command is routed to.
func (mv *MainView) SetCommandHandler(handler func(commands.Command)) {
	mv.commandHandler = handler
}

// SetDropHandler sets the handler for data dropped on an empty tab area.
func (mv *MainView) SetDropHandler(handler func(components.DropPayload)) {
	mv.tabs.SetEmptyDropHandler(handler)
}

// HandleDrop passes a drop to the tab container and reports whether it was
// accepted.
func (mv *MainView) HandleDrop(p components.DropPayload) bool {
	return mv.tabs.HandleDrop(p)
}

// AddPlotTab creates a new plot view for ds and appends it as a tab. A nil
// dataset yields an empty placeholder plot.
func (mv *MainView) AddPlotTab(ds *models.Dataset, label string) (int, error) {
	return mv.tabs.AddTab(components.NewPlotView(ds, mv.renderer), label)
}

func (mv *MainView) TabCount() int {
	return mv.tabs.Count()
}

// CurrentDataset returns the dataset of the selected tab, nil when there is
// no tab or the tab is a placeholder.
func (mv *MainView) CurrentDataset() *models.Dataset {
	view, _ := mv.tabs.CurrentTab()
	if view == nil {
		return nil
	}
	return view.Dataset()
}

func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MainView) SetWorkingDirectory(dir string) {
	mv.statusBar.SetDirectory(dir)
}

// ShowError displays a non-fatal error dialog
func (mv *MainView) ShowError(title string, err error) {
	d := dialog.NewError(err, mv.window)
	d.Show()
	mv.logger.Debug("error shown", map[string]interface{}{"title": title})
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowAbout displays application information
func (mv *MainView) ShowAbout(title, version, description string) {
	content := container.NewVBox(
		widget.NewRichTextFromMarkdown(fmt.Sprintf("**Data plot %s** %s", version, description)),
	)
	dialog.ShowCustom(title, "Close", content, mv.window)
}

// ShowOpenDialog asks for a file to open, starting in dir. onChosen only runs
// when the user picked a file.
func (mv *MainView) ShowOpenDialog(dir string, extensions []string, onChosen func(path string)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mv.ShowError("File selection error", err)
			return
		}
		if reader == nil {
			mv.logger.Debug("open dialog cancelled", nil)
			return
		}
		path := reader.URI().Path()
		reader.Close()
		onChosen(path)
	}, mv.window)
	mv.prepareFileDialog(d, dir, extensions)
	d.Show()
}

// ShowSaveDialog asks for a target file, pre-filled with fileName in dir.
func (mv *MainView) ShowSaveDialog(dir, fileName string, extensions []string, onChosen func(path string)) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mv.ShowError("File selection error", err)
			return
		}
		if writer == nil {
			mv.logger.Debug("save dialog cancelled", nil)
			return
		}
		path := writer.URI().Path()
		writer.Close()
		onChosen(path)
	}, mv.window)
	d.SetFileName(fileName)
	mv.prepareFileDialog(d, dir, extensions)
	d.Show()
}

func (mv *MainView) prepareFileDialog(d *dialog.FileDialog, dir string, extensions []string) {
	if len(extensions) > 0 {
		d.SetFilter(storage.NewExtensionFileFilter(extensions))
	}
	if dir == "" {
		return
	}
	if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
		d.SetLocation(lister)
	} else {
		mv.logger.Debug("dialog location unavailable", map[string]interface{}{"dir": dir, "error": err.Error()})
	}
	d.Resize(fyne.NewSize(800, 560))
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// Tabs returns the tab container
func (mv *MainView) Tabs() *components.TabContainer {
	return mv.tabs
}

func (mv *MainView) Toolbar() *components.Toolbar {
	return mv.toolbar
}

func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}

// Close closes the view
func (mv *MainView) Close() {
	mv.window.Close()
}
