// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package switcher shows exactly one of several models and moves focus
// along when the active one changes.
package switcher

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockbatch/settings/ui/tui/util"
	"github.com/blockbatch/settings/util/slicest"
)

type Model struct {
	models     []*util.Model
	active     int
	size       util.Size
	focused    bool
	baseKeyMap help.KeyMap
}

func New(models ...*util.Model) *Model {
	return &Model{models: models}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(slicest.Map(m.models, func(model *util.Model) tea.Cmd {
		return (*model).Init()
	})...)
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if len(m.models) == 0 {
		return nil
	}
	if m.size.Update(msg) {
		// inactive models are sized too so switching renders at once
		return tea.Batch(slicest.Map(m.models, func(model *util.Model) tea.Cmd {
			return (*model).Update(msg)
		})...)
	}
	return (*m.activeModel()).Update(msg)
}

func (m Model) View() string {
	if len(m.models) == 0 {
		return ""
	}
	return (*m.activeModel()).View()
}

func (m *Model) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	m.focused, m.baseKeyMap = true, baseKeyMap
	if len(m.models) == 0 {
		return util.AnnounceKeyMapCmd(baseKeyMap)
	}
	return (*m.activeModel()).Focus(baseKeyMap)
}

func (m *Model) Blur() {
	m.focused = false
	if len(m.models) > 0 {
		(*m.activeModel()).Blur()
	}
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// Select activates model i. The previous model is blurred and the new one
// focused if the switcher holds focus.
func (m *Model) Select(i int) tea.Cmd {
	if len(m.models) == 0 {
		return nil
	}
	i = util.Clamp(0, i, len(m.models)-1)
	if i == m.active {
		return nil
	}
	(*m.activeModel()).Blur()
	m.active = i
	if !m.focused {
		return nil
	}
	return (*m.activeModel()).Focus(m.baseKeyMap)
}

func (m Model) Active() int {
	return m.active
}

// ActiveModel returns the model on display.
func (m *Model) ActiveModel() *util.Model {
	if len(m.models) == 0 {
		return nil
	}
	return m.activeModel()
}

func (m *Model) activeModel() *util.Model {
	return m.models[m.active]
}
