// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package footer shows the key help for whatever holds focus.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blockbatch/settings/ui/tui/models/components/keyhelp"
	"github.com/blockbatch/settings/ui/tui/styles"
	"github.com/blockbatch/settings/ui/tui/util"
)

var borderColor = styles.ColorBorder

type Model struct {
	size util.Size
	help *keyhelp.Model
}

func New() *Model {
	return &Model{
		help: keyhelp.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return m.help.Update(msg)
}

func (m Model) view() string {
	return m.help.View()
}

func (m Model) View() string {
	hPos := lipgloss.Left
	if m.help.Expanded {
		hPos = lipgloss.Center
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		BorderTop(true).
		Render(lipgloss.Place(
			m.size.Width, max(m.size.Height-1, 0),
			hPos, lipgloss.Top,
			m.view(),
		))
}

// the footer only displays what others announce
func (m *Model) Focus(help.KeyMap) tea.Cmd { return nil }
func (m *Model) Blur()                     {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}
