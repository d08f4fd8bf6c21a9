// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package forminput holds the inputs that can be placed in a form.Form.
package forminput

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/blockbatch/settings/ui/tui/styles"
)

var (
	accentColor = styles.ColorAccent
	mutedColor  = styles.ColorSubtle

	labelStyle        = lipgloss.NewStyle().Foreground(mutedColor)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	descriptionStyle  = lipgloss.NewStyle().Foreground(mutedColor).Faint(true)
	headingStyle      = lipgloss.NewStyle().Bold(true).Underline(true).MarginTop(1)
)

func renderLabel(label string, focused bool, width int) string {
	if focused {
		return focusedLabelStyle.MaxWidth(max(width, 1)).Render(label)
	}
	return labelStyle.MaxWidth(max(width, 1)).Render(label)
}
