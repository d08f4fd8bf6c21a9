// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package stack

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockbatch/settings/ui/tui/util"
	"github.com/blockbatch/settings/util/slicest"
)

// MsgFilter may rewrite msg before it reaches model. Returning nil drops it.
type MsgFilter = func(model util.Model, msg tea.Msg) tea.Msg

func applyMessageFilters(model util.Model, msg tea.Msg, msgFilters []MsgFilter) tea.Msg {
	return slicest.ReduceD(msgFilters, msg, func(msgFilter MsgFilter, msg tea.Msg) tea.Msg {
		if msg == nil {
			return nil
		}
		return msgFilter(model, msg)
	})
}

// DropKeys keeps key and mouse input away from display only items.
func DropKeys(_ util.Model, msg tea.Msg) tea.Msg {
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		return nil
	}
	return msg
}
