// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package placeholder is shown for tabs without a panel of their own.
package placeholder

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blockbatch/settings/internal/i18n"
	"github.com/blockbatch/settings/ui/tui/styles"
	"github.com/blockbatch/settings/ui/tui/util"
)

var textStyle = styles.Muted.
	Italic(true)

type Model struct {
	size util.Size
}

func New() *Model {
	return &Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) View() string {
	return lipgloss.Place(
		m.size.Width, m.size.Height,
		lipgloss.Center, lipgloss.Center,
		textStyle.Render(i18n.T("placeholder.coming_soon")),
	)
}

func (m *Model) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	return util.AnnounceKeyMapCmd(baseKeyMap)
}

func (m *Model) Blur() {}

func (m *Model) CapturesText() bool { return false }

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
