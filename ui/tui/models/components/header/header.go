// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package header renders the page title block.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blockbatch/settings/ui/tui/styles"
	"github.com/blockbatch/settings/ui/tui/util"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(styles.ColorAccent)
	subtitleStyle = styles.Muted
	versionStyle  = lipgloss.NewStyle().Faint(true)
)

type Model struct {
	Title    string
	Subtitle string
	Version  string

	size util.Size
}

func New(title, subtitle, version string) *Model {
	return &Model{
		Title:    title,
		Subtitle: subtitle,
		Version:  version,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) view() string {
	title := titleStyle.Render(m.Title)
	if m.Version != "" {
		version := versionStyle.Render(m.Version)
		gap := max(m.size.Width-lipgloss.Width(title)-lipgloss.Width(version)-2, 1)
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, lipgloss.NewStyle().Width(gap).Render(""), version)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitleStyle.Render(m.Subtitle))
}

func (m Model) View() string {
	return lipgloss.
		NewStyle().
		Padding(0, 1).
		MaxWidth(max(m.size.Width, 1)).
		Render(m.view())
}

func (m *Model) Focus(help.KeyMap) tea.Cmd { return nil }
func (m *Model) Blur()                     {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
