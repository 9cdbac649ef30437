// Package commands enumerates the user-triggered actions of the main window
// together with the metadata menus and toolbars are built from.
package commands

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

type Command int

const (
	Exit Command = iota
	New
	Open
	Export
	Cut
	Copy
	Paste
	ZoomIn
	ZoomOut
	About
)

// All lists every command in declaration order.
var All = []Command{Exit, New, Open, Export, Cut, Copy, Paste, ZoomIn, ZoomOut, About}

// Action describes how a command is presented.
type Action struct {
	Label     string
	StatusTip string
	Shortcut  fyne.Shortcut
	Icon      fyne.Resource
}

func shortcut(key fyne.KeyName, mod fyne.KeyModifier) fyne.Shortcut {
	return &desktop.CustomShortcut{KeyName: key, Modifier: mod}
}

type entry struct {
	Label     string
	StatusTip string
	Shortcut  fyne.Shortcut
	icon      func() fyne.Resource
}

var actions = map[Command]entry{
	Exit: {
		Label:     "Exit",
		StatusTip: "Quit data plot",
		Shortcut:  shortcut(fyne.KeyQ, fyne.KeyModifierShortcutDefault),
		icon:      theme.CancelIcon,
	},
	New: {
		Label:     "New CSV file",
		StatusTip: "New CSV file for saving data to",
		Shortcut:  shortcut(fyne.KeyN, fyne.KeyModifierShortcutDefault),
		icon:      theme.DocumentCreateIcon,
	},
	Open: {
		Label:     "Open",
		StatusTip: "Open CSV file",
		Shortcut:  shortcut(fyne.KeyO, fyne.KeyModifierShortcutDefault),
		icon:      theme.FolderOpenIcon,
	},
	Export: {
		Label:     "Export plot",
		StatusTip: "Save the current plot as PNG, SVG or PDF",
		Shortcut:  shortcut(fyne.KeyE, fyne.KeyModifierShortcutDefault),
		icon:      theme.DocumentSaveIcon,
	},
	Cut: {
		Label:     "Cut",
		StatusTip: "cut item",
		Shortcut:  shortcut(fyne.KeyX, fyne.KeyModifierShortcutDefault),
		icon:      theme.ContentCutIcon,
	},
	Copy: {
		Label:     "Copy",
		StatusTip: "copy item",
		Shortcut:  shortcut(fyne.KeyC, fyne.KeyModifierShortcutDefault),
		icon:      theme.ContentCopyIcon,
	},
	Paste: {
		Label:     "Paste",
		StatusTip: "paste item",
		Shortcut:  shortcut(fyne.KeyV, fyne.KeyModifierShortcutDefault),
		icon:      theme.ContentPasteIcon,
	},
	ZoomIn: {
		Label:     "Zoom in",
		StatusTip: "zoom in",
		Shortcut:  shortcut(fyne.KeyEqual, fyne.KeyModifierShortcutDefault),
		icon:      theme.ZoomInIcon,
	},
	ZoomOut: {
		Label:     "Zoom out",
		StatusTip: "zoom out",
		Shortcut:  shortcut(fyne.KeyMinus, fyne.KeyModifierShortcutDefault),
		icon:      theme.ZoomOutIcon,
	},
	About: {
		Label:    "About",
		Shortcut: shortcut(fyne.KeyF1, 0),
		icon:     theme.InfoIcon,
	},
}

// Lookup returns the presentation metadata of c.
func Lookup(c Command) (Action, bool) {
	e, ok := actions[c]
	if !ok {
		return Action{}, false
	}
	return Action{
		Label:     e.Label,
		StatusTip: e.StatusTip,
		Shortcut:  e.Shortcut,
		Icon:      e.icon(),
	}, true
}

func (c Command) String() string {
	if e, ok := actions[c]; ok {
		return e.Label
	}
	return fmt.Sprintf("Command(%d)", int(c))
}
