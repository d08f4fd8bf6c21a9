// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package root

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/blockbatch/settings/internal/i18n"
)

type KeyMap struct {
	Quit key.Binding
	Help key.Binding
}

// short help stays small so the focused panel's keys fit next to it
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Help}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Help, km.Quit}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", i18n.T("key.quit")),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", i18n.T("key.help")),
		),
	}
}

// TypingKeyMap leaves printable keys to the focused input.
func TypingKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", i18n.T("key.quit")),
		),
		Help: key.NewBinding(key.WithDisabled()),
	}
}
