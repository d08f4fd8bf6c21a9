// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package wallets

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/blockbatch/settings/internal/i18n"
)

type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Copy       key.Binding
	QR         key.Binding
	Add        key.Binding
	Edit       key.Binding
	SetDefault key.Binding
	Delete     key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Copy, km.QR, km.Add}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down},
		{km.Copy, km.QR, km.Add},
		{km.Edit, km.SetDefault, km.Delete},
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", i18n.T("key.up")),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", i18n.T("key.down")),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", i18n.T("key.copy")),
		),
		QR: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", i18n.T("key.qr")),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", i18n.T("key.add")),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", i18n.T("key.edit")),
		),
		SetDefault: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", i18n.T("key.set_default")),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", i18n.T("key.delete")),
		),
	}
}
