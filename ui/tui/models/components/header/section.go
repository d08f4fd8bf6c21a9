// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package header

import "github.com/charmbracelet/lipgloss"

var sectionStyle = lipgloss.NewStyle().MarginBottom(1)

// Section renders the title block on top of a panel.
func Section(title, subtitle string) string {
	return sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		subtitleStyle.Render(subtitle),
	))
}
