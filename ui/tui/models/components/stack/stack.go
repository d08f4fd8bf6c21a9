// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package stack lays out child models in a row or a column and divides the
// available space between them according to their SizeConfig.
package stack

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blockbatch/settings/ui/tui/util"
	"github.com/blockbatch/settings/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int
	MsgFilters  []MsgFilter

	items         []Item
	size          util.Size
	focussedIndex Focus
}

type Item struct {
	Model      *util.Model
	SizeConfig SizeConfig
	MsgFilters []MsgFilter
	size       int
	oldSize    int
}

func (s Model) Init() tea.Cmd {
	return tea.Batch(slicest.Map(s.items, func(item Item) tea.Cmd {
		return (*item.Model).Init()
	})...)
}

func (s *Model) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if s.size.Update(msg) {
		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(true)...)
	} else {
		cmds = append(cmds, slicest.Map(s.items, func(item Item) tea.Cmd {
			itemMsg := applyMessageFilters(*item.Model, msg, item.MsgFilters)
			itemMsg = applyMessageFilters(*item.Model, itemMsg, s.MsgFilters)
			if itemMsg == nil {
				return nil
			}
			return (*item.Model).Update(itemMsg)
		})...)

		// content driven sizes may have changed
		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(false)...)
	}

	return tea.Batch(cmds...)
}

func (s Model) View() string {
	var joiner func(pos lipgloss.Position, strs ...string) string
	var styler func(size int, margin int) lipgloss.Style
	switch s.Orientation {
	case Vertical:
		joiner = lipgloss.JoinVertical
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(s.size.Width).
				Height(size).
				MaxWidth(s.size.Width).
				MaxHeight(size + margin).
				MarginTop(margin)
		}
	case Horizontal:
		joiner = lipgloss.JoinHorizontal
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(size).
				Height(s.size.Height).
				MaxWidth(size + margin).
				MaxHeight(s.size.Height).
				MarginLeft(margin)
		}
	}

	var views []string
	for i, item := range s.items {
		if item.size == 0 {
			continue
		}
		// no gap before the first item
		margin := s.Gap * min(i, 1)
		views = append(views, styler(item.size, margin).Render((*item.Model).View()))
	}
	return joiner(s.Align, views...)
}

func (m *Model) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}
	if m.focussedIndex == FocusAll() {
		return tea.Batch(slicest.Map(m.items, func(item Item) tea.Cmd {
			return (*item.Model).Focus(baseKeyMap)
		})...)
	}
	return (*m.items[m.focussedIndex].Model).Focus(baseKeyMap)
}

func (m *Model) Blur() {
	if len(m.items) == 0 {
		return
	}
	if m.focussedIndex == FocusAll() {
		for _, item := range m.items {
			(*item.Model).Blur()
		}
		return
	}
	(*m.items[m.focussedIndex].Model).Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

// SetFocus moves focus to another item and focuses it with baseKeyMap.
func (m *Model) SetFocus(focus Focus, baseKeyMap help.KeyMap) tea.Cmd {
	m.Blur()
	m.focussedIndex = util.Clamp(FocusAll(), focus, Focus(len(m.items)-1))
	return m.Focus(baseKeyMap)
}

// Sizes returns the size assigned to each item along the stack axis.
func (s *Model) Sizes() []int {
	return slicest.Map(s.items, func(item Item) int { return item.size })
}
