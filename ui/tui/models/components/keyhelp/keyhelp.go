// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders the key map announced by the focused model.
package keyhelp

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockbatch/settings/ui/tui/util"
)

type Model struct {
	KeyMap   help.KeyMap
	Expanded bool

	size util.Size
	help help.Model
}

func New() *Model {
	return &Model{
		help: help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.help.Width = m.size.Width
		return nil
	}

	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		m.KeyMap = msg.KeyMap
	}
	return nil
}

func (m Model) View() string {
	if m.KeyMap == nil {
		return ""
	}
	if m.Expanded {
		return FullHelpView(m.help, m.KeyMap.FullHelp())
	}
	return ShortHelpView(m.help, m.KeyMap.ShortHelp())
}

// keyhelp never takes input.
func (m *Model) Focus(help.KeyMap) tea.Cmd { return nil }
func (m *Model) Blur()                     {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.Expanded = !m.Expanded
}
