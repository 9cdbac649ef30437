package components

import (
	"dataplot/internal/commands"

	"fyne.io/fyne/v2/widget"
)

// Toolbar groups are separated in the order given.
var toolbarGroups = [][]commands.Command{
	{commands.Exit, commands.Open},
	{commands.ZoomIn, commands.ZoomOut},
}

// Toolbar is the main window toolbar. Every item forwards its command to
// the dispatch function.
type Toolbar struct {
	toolbar  *widget.Toolbar
	dispatch func(commands.Command)
	items    map[commands.Command]*widget.ToolbarAction
}

func NewToolbar(dispatch func(commands.Command)) *Toolbar {
	t := &Toolbar{
		toolbar:  widget.NewToolbar(),
		dispatch: dispatch,
		items:    make(map[commands.Command]*widget.ToolbarAction),
	}
	t.buildLayout()
	return t
}

func (t *Toolbar) buildLayout() {
	for i, group := range toolbarGroups {
		if i > 0 {
			t.toolbar.Append(widget.NewToolbarSeparator())
		}
		for _, cmd := range group {
			action, ok := commands.Lookup(cmd)
			if !ok {
				continue
			}
			item := widget.NewToolbarAction(action.Icon, func() {
				if t.dispatch != nil {
					t.dispatch(cmd)
				}
			})
			t.items[cmd] = item
			t.toolbar.Append(item)
		}
	}
}

// Trigger activates the toolbar item bound to cmd, as a tap would.
func (t *Toolbar) Trigger(cmd commands.Command) bool {
	item, ok := t.items[cmd]
	if !ok || item.OnActivated == nil {
		return false
	}
	item.OnActivated()
	return true
}

// GetContainer returns the toolbar widget
func (t *Toolbar) GetContainer() *widget.Toolbar {
	return t.toolbar
}
