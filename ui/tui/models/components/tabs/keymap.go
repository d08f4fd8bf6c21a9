// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package tabs

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/blockbatch/settings/internal/i18n"
)

type KeyMap struct {
	Next key.Binding
	Prev key.Binding
	Jump key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Prev, km.Next}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Prev, km.Next, km.Jump}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// DefaultKeyMap is active while no text input has focus.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("ctrl+right", "]"),
			key.WithHelp("]", i18n.T("key.next_tab")),
		),
		Prev: key.NewBinding(
			key.WithKeys("ctrl+left", "["),
			key.WithHelp("[", i18n.T("key.prev_tab")),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", i18n.T("key.jump_tab")),
		),
	}
}

// TextKeyMap leaves printable keys to the focused input.
func TextKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("ctrl+right"),
			key.WithHelp("ctrl+→", i18n.T("key.next_tab")),
		),
		Prev: key.NewBinding(
			key.WithKeys("ctrl+left"),
			key.WithHelp("ctrl+←", i18n.T("key.prev_tab")),
		),
		Jump: key.NewBinding(key.WithDisabled()),
	}
}
