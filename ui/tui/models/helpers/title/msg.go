// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set asks the handler to show title after the base title.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}
