package keymap

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/andyrewlee/gridsel/internal/config"
)

// Action identifies a configurable keybinding.
type Action string

const (
	ActionCursorLeft  Action = "cursor_left"
	ActionCursorRight Action = "cursor_right"
	ActionCursorUp    Action = "cursor_up"
	ActionCursorDown  Action = "cursor_down"

	ActionToggle    Action = "toggle"
	ActionSelectAll Action = "select_all"
	ActionClear     Action = "clear"
	ActionCopy      Action = "copy"

	ActionLimitUp   Action = "limit_up"
	ActionLimitDown Action = "limit_down"

	ActionThemeNext   Action = "theme_next"
	ActionToggleHints Action = "toggle_hints"
	ActionQuit        Action = "quit"
)

type bindingDef struct {
	action Action
	keys   []string
	desc   string
}

// KeyMap defines all keybindings for the application.
type KeyMap struct {
	CursorLeft  key.Binding
	CursorRight key.Binding
	CursorUp    key.Binding
	CursorDown  key.Binding

	Toggle    key.Binding
	SelectAll key.Binding
	Clear     key.Binding
	Copy      key.Binding

	LimitUp   key.Binding
	LimitDown key.Binding

	ThemeNext   key.Binding
	ToggleHints key.Binding
	Quit        key.Binding
}

// New builds a keymap from defaults, applying any user overrides.
func New(cfg config.KeyMapConfig) KeyMap {
	return KeyMap{
		CursorLeft: bindingFromDef(cfg, bindingDef{
			action: ActionCursorLeft,
			keys:   []string{"h", "left"},
			desc:   "left",
		}),
		CursorRight: bindingFromDef(cfg, bindingDef{
			action: ActionCursorRight,
			keys:   []string{"l", "right"},
			desc:   "right",
		}),
		CursorUp: bindingFromDef(cfg, bindingDef{
			action: ActionCursorUp,
			keys:   []string{"k", "up"},
			desc:   "up",
		}),
		CursorDown: bindingFromDef(cfg, bindingDef{
			action: ActionCursorDown,
			keys:   []string{"j", "down"},
			desc:   "down",
		}),

		Toggle: bindingFromDef(cfg, bindingDef{
			action: ActionToggle,
			keys:   []string{"space", "enter"},
			desc:   "toggle",
		}),
		SelectAll: bindingFromDef(cfg, bindingDef{
			action: ActionSelectAll,
			keys:   []string{"a"},
			desc:   "select all",
		}),
		Clear: bindingFromDef(cfg, bindingDef{
			action: ActionClear,
			keys:   []string{"x", "esc"},
			desc:   "clear",
		}),
		Copy: bindingFromDef(cfg, bindingDef{
			action: ActionCopy,
			keys:   []string{"y"},
			desc:   "copy",
		}),

		LimitUp: bindingFromDef(cfg, bindingDef{
			action: ActionLimitUp,
			keys:   []string{"+", "="},
			desc:   "raise cap",
		}),
		LimitDown: bindingFromDef(cfg, bindingDef{
			action: ActionLimitDown,
			keys:   []string{"-"},
			desc:   "lower cap",
		}),

		ThemeNext: bindingFromDef(cfg, bindingDef{
			action: ActionThemeNext,
			keys:   []string{"t"},
			desc:   "theme",
		}),
		ToggleHints: bindingFromDef(cfg, bindingDef{
			action: ActionToggleHints,
			keys:   []string{"?"},
			desc:   "hints",
		}),
		Quit: bindingFromDef(cfg, bindingDef{
			action: ActionQuit,
			keys:   []string{"q", "ctrl+c"},
			desc:   "quit",
		}),
	}
}

func bindingFromDef(cfg config.KeyMapConfig, def bindingDef) key.Binding {
	keys, ok := cfg.BindingFor(string(def.action))
	if !ok {
		keys = def.keys
	}
	helpKey := strings.Join(keys, "/")
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKey, def.desc),
	)
}

// Binding returns the binding for an action.
func (km KeyMap) Binding(action Action) key.Binding {
	switch action {
	case ActionCursorLeft:
		return km.CursorLeft
	case ActionCursorRight:
		return km.CursorRight
	case ActionCursorUp:
		return km.CursorUp
	case ActionCursorDown:
		return km.CursorDown
	case ActionToggle:
		return km.Toggle
	case ActionSelectAll:
		return km.SelectAll
	case ActionClear:
		return km.Clear
	case ActionCopy:
		return km.Copy
	case ActionLimitUp:
		return km.LimitUp
	case ActionLimitDown:
		return km.LimitDown
	case ActionThemeNext:
		return km.ThemeNext
	case ActionToggleHints:
		return km.ToggleHints
	case ActionQuit:
		return km.Quit
	default:
		return key.Binding{}
	}
}
