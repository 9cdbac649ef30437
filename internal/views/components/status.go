package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const DefaultStatus = "Please select a CSV to load"

// StatusBar displays the current status message, the number of open plots
// and the directory dialogs start in.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	tabInfo     *widget.Label
	dirInfo     *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel(DefaultStatus)
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis
	sb.tabInfo = widget.NewLabel("No plots")
	sb.dirInfo = widget.NewLabel("")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(nil, nil, nil,
		container.NewHBox(widget.NewSeparator(), sb.tabInfo, widget.NewSeparator(), sb.dirInfo),
		sb.statusLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) SetTabCount(n int) {
	switch n {
	case 0:
		sb.tabInfo.SetText("No plots")
	case 1:
		sb.tabInfo.SetText("1 plot")
	default:
		sb.tabInfo.SetText(fmt.Sprintf("%d plots", n))
	}
}

// GetTabInfo returns the open plot count text
func (sb *StatusBar) GetTabInfo() string {
	return sb.tabInfo.Text
}

func (sb *StatusBar) SetDirectory(dir string) {
	sb.dirInfo.SetText(dir)
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText(DefaultStatus)
	sb.tabInfo.SetText("No plots")
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
