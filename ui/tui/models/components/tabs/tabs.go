// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tabs renders a horizontal tab bar and turns tab keys into
// Selected messages.
package tabs

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blockbatch/settings/ui/tui/styles"
	"github.com/blockbatch/settings/ui/tui/util"
	"github.com/blockbatch/settings/util/slicest"
)

var (
	activeColor   = styles.ColorAccent
	inactiveColor = styles.ColorMuted
)

type Item struct {
	Id    string
	Label string
}

func WithItem(id, label string) Item {
	return Item{Id: id, Label: label}
}

// Selected is emitted whenever a key changes the active tab.
type Selected struct {
	Index int
	Id    string
}

type Model struct {
	Items []Item

	active   int
	textMode bool
	size     util.Size
}

func New(items ...Item) *Model {
	return &Model{Items: items}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update only tracks the size. Keys arrive through HandleKey so the parent
// decides when tab switching is allowed.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

// HandleKey switches tabs for a matching key and reports whether it
// consumed msg.
func (m *Model) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	km := m.KeyMap()
	switch {
	case key.Matches(msg, km.Next):
		return m.move(1), true
	case key.Matches(msg, km.Prev):
		return m.move(-1), true
	case key.Matches(msg, km.Jump):
		i := int(msg.Runes[0] - '1')
		if i >= len(m.Items) {
			return nil, false
		}
		return m.selectCmd(i), true
	}
	return nil, false
}

func (m *Model) move(delta int) tea.Cmd {
	return m.selectCmd(util.Wrap(m.active, delta, len(m.Items)))
}

func (m *Model) selectCmd(i int) tea.Cmd {
	if len(m.Items) == 0 {
		return nil
	}
	m.active = util.Clamp(0, i, len(m.Items)-1)
	sel := Selected{Index: m.active, Id: m.Items[m.active].Id}
	return func() tea.Msg { return sel }
}

// SetActive moves the highlight without emitting Selected.
func (m *Model) SetActive(i int) {
	m.active = util.Clamp(0, i, max(len(m.Items)-1, 0))
}

func (m Model) Active() int {
	return m.active
}

// SetTextMode restricts the bindings to ones a text input never consumes.
func (m *Model) SetTextMode(on bool) {
	m.textMode = on
}

func (m Model) KeyMap() KeyMap {
	if m.textMode {
		return TextKeyMap()
	}
	return DefaultKeyMap()
}

func (m Model) View() string {
	bar := lipgloss.JoinHorizontal(lipgloss.Bottom,
		slicest.MapI(m.Items, func(i int, item Item) string {
			return item.view(i == m.active)
		})...,
	)
	return lipgloss.
		NewStyle().
		MaxWidth(max(m.size.Width, 1)).
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		BorderForeground(inactiveColor).
		Width(max(m.size.Width, lipgloss.Width(bar))).
		Render(bar)
}

func (i Item) view(active bool) string {
	style := lipgloss.NewStyle().Padding(0, 2).Foreground(inactiveColor)
	if active {
		style = style.
			Bold(true).
			Underline(true).
			Foreground(activeColor)
	}
	return style.Render(i.Label)
}

// tabs are driven through HandleKey and never hold focus themselves.
func (m *Model) Focus(help.KeyMap) tea.Cmd { return nil }
func (m *Model) Blur()                     {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
