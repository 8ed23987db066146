package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/geowars/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	FireUp    key.Binding
	FireDown  key.Binding
	FireLeft  key.Binding
	FireRight key.Binding
	Fire      key.Binding
	Confirm   key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.FireUp, k.Fire, k.Pause, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.FireUp, k.FireDown, k.FireLeft, k.FireRight, k.Fire},
		{k.Confirm, k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: WASD moves, arrows fire.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("w", "W"), key.WithHelp("wasd", "move")),
		Down:      key.NewBinding(key.WithKeys("s", "S"), key.WithHelp("s", "move down")),
		Left:      key.NewBinding(key.WithKeys("a", "A"), key.WithHelp("a", "move left")),
		Right:     key.NewBinding(key.WithKeys("d", "D"), key.WithHelp("d", "move right")),
		FireUp:    key.NewBinding(key.WithKeys("up", "i"), key.WithHelp("arrows", "fire")),
		FireDown:  key.NewBinding(key.WithKeys("down", "k"), key.WithHelp("down", "fire down")),
		FireLeft:  key.NewBinding(key.WithKeys("left", "j"), key.WithHelp("left", "fire left")),
		FireRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right", "fire right")),
		Fire:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space/mouse", "fire at pointer")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Pause:     key.NewBinding(key.WithKeys("p", "P"), key.WithHelp("p", "pause")),
		Restart:   key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "restart")),
		Back:      key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	bindings := []struct {
		b key.Binding
		a core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.FireUp, core.ActionFireUp},
		{k.FireDown, core.ActionFireDown},
		{k.FireLeft, core.ActionFireLeft},
		{k.FireRight, core.ActionFireRight},
		{k.Fire, core.ActionFire},
		{k.Confirm, core.ActionConfirm},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
		{k.Back, core.ActionBack},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.b) {
			return b.a, b.a == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// Holdable reports whether an action is continuous (movement and fire)
// rather than a one-shot press.
func Holdable(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionFireUp, core.ActionFireDown, core.ActionFireLeft, core.ActionFireRight,
		core.ActionFire:
		return true
	default:
		return false
	}
}

// HeldKeys emulates key-up events, which terminals do not report. A press
// keeps its action active for a number of ticks; autorepeat refreshes it.
type HeldKeys struct {
	ticks map[core.Action]int
	hold  int
}

// NewHeldKeys holds each press for the given number of ticks (at least 1).
func NewHeldKeys(hold int) *HeldKeys {
	return &HeldKeys{ticks: make(map[core.Action]int), hold: max(hold, 1)}
}

// Press starts or refreshes a held action. Pressing a direction releases
// its opposite so reversing is immediate.
func (h *HeldKeys) Press(a core.Action) {
	if opp, ok := opposite[a]; ok {
		delete(h.ticks, opp)
	}
	h.ticks[a] = h.hold
}

// Release drops every held action.
func (h *HeldKeys) Release() {
	clear(h.ticks)
}

// Apply sets held actions on the frame and ages them by one tick.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	for a, n := range h.ticks {
		frame.Set(a)
		if n <= 1 {
			delete(h.ticks, a)
		} else {
			h.ticks[a] = n - 1
		}
	}
}

var opposite = map[core.Action]core.Action{
	core.ActionUp:        core.ActionDown,
	core.ActionDown:      core.ActionUp,
	core.ActionLeft:      core.ActionRight,
	core.ActionRight:     core.ActionLeft,
	core.ActionFireUp:    core.ActionFireDown,
	core.ActionFireDown:  core.ActionFireUp,
	core.ActionFireLeft:  core.ActionFireRight,
	core.ActionFireRight: core.ActionFireLeft,
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
