package components

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"dataplot/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// DataItemFormat marks a drop payload carrying plottable data.
const DataItemFormat = "application/dp-dnditemdata"

const uriListFormat = "text/uri-list"

var (
	ErrTabIndex  = errors.New("tab index out of range")
	ErrViewInUse = errors.New("plot view already hosted by a tab")
)

// DropPayload is what arrives when something is dropped on the window.
type DropPayload struct {
	Format string
	URIs   []fyne.URI
}

// PayloadFromURIs classifies dropped URIs. Drops that include a CSV file are
// data items; everything else is a plain URI list.
func PayloadFromURIs(uris []fyne.URI) DropPayload {
	p := DropPayload{Format: uriListFormat, URIs: uris}
	for _, u := range uris {
		if strings.EqualFold(u.Extension(), ".csv") {
			p.Format = DataItemFormat
			break
		}
	}
	return p
}

// FirstPath returns the local path of the first CSV URI, or of the first URI
// when none is a CSV file.
func (p DropPayload) FirstPath() string {
	for _, u := range p.URIs {
		if strings.EqualFold(u.Extension(), ".csv") {
			return u.Path()
		}
	}
	if len(p.URIs) > 0 {
		return p.URIs[0].Path()
	}
	return ""
}

// TabContainer holds one PlotView per closable tab, in insertion order.
type TabContainer struct {
	tabs   *container.DocTabs
	logger logger.Logger

	onEmptyDrop func(DropPayload)
	onChanged   func()
}

func NewTabContainer(log logger.Logger) *TabContainer {
	if log == nil {
		log = logger.Nop{}
	}
	tc := &TabContainer{
		tabs:   container.NewDocTabs(),
		logger: log,
	}
	tc.tabs.OnClosed = func(item *container.TabItem) {
		tc.logger.Debug("tab closed", map[string]interface{}{"label": item.Text})
		tc.changed()
	}
	return tc
}

// AddTab appends view under label, selects it and returns its index.
func (tc *TabContainer) AddTab(view *PlotView, label string) (int, error) {
	if view == nil {
		return -1, fmt.Errorf("add tab %q: nil plot view", label)
	}
	for _, item := range tc.tabs.Items {
		if item.Content == view {
			return -1, fmt.Errorf("add tab %q: %w", label, ErrViewInUse)
		}
	}

	item := container.NewTabItem(label, view)
	tc.tabs.Append(item)
	tc.tabs.Select(item)
	tc.changed()
	return len(tc.tabs.Items) - 1, nil
}

// CurrentTab returns the selected view and its index, or nil and -1.
func (tc *TabContainer) CurrentTab() (*PlotView, int) {
	index := tc.tabs.SelectedIndex()
	if index < 0 || index >= len(tc.tabs.Items) {
		return nil, -1
	}
	return tc.tabs.Items[index].Content.(*PlotView), index
}

func (tc *TabContainer) RemoveTab(index int) error {
	if index < 0 || index >= len(tc.tabs.Items) {
		return fmt.Errorf("remove tab %d: %w", index, ErrTabIndex)
	}
	tc.tabs.RemoveIndex(index)
	tc.changed()
	return nil
}

// Tab returns the view and label at index.
func (tc *TabContainer) Tab(index int) (*PlotView, string, error) {
	if index < 0 || index >= len(tc.tabs.Items) {
		return nil, "", fmt.Errorf("tab %d: %w", index, ErrTabIndex)
	}
	item := tc.tabs.Items[index]
	return item.Content.(*PlotView), item.Text, nil
}

func (tc *TabContainer) Count() int {
	return len(tc.tabs.Items)
}

func (tc *TabContainer) Labels() []string {
	labels := make([]string, len(tc.tabs.Items))
	for i, item := range tc.tabs.Items {
		labels[i] = item.Text
	}
	return labels
}

// SetEmptyDropHandler registers the callback used when data is dropped on an
// empty container.
func (tc *TabContainer) SetEmptyDropHandler(handler func(DropPayload)) {
	tc.onEmptyDrop = handler
}

// SetChangeHandler registers a callback run after tabs are added or removed.
func (tc *TabContainer) SetChangeHandler(handler func()) {
	tc.onChanged = handler
}

// HandleDrop reports whether the drop was accepted. Only data items are
// recognised, and only an empty container accepts them; existing tabs are
// never overwritten.
func (tc *TabContainer) HandleDrop(p DropPayload) bool {
	if p.Format != DataItemFormat {
		tc.logger.Debug("drop ignored: unrecognised payload", map[string]interface{}{"format": p.Format})
		return false
	}
	if tc.Count() > 0 {
		tc.logger.Info("central tab widget: new data exists", map[string]interface{}{
			"tabs": tc.Count(),
			"file": filepath.Base(p.FirstPath()),
		})
		return false
	}
	if tc.onEmptyDrop == nil {
		return false
	}
	tc.onEmptyDrop(p)
	return true
}

// GetContainer returns the tab widget for layout.
func (tc *TabContainer) GetContainer() fyne.CanvasObject {
	return tc.tabs
}

func (tc *TabContainer) changed() {
	if tc.onChanged != nil {
		tc.onChanged()
	}
}
