// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package styles holds the colors shared by the TUI components so panels,
// popups and the status line look alike.
package styles

import "github.com/charmbracelet/lipgloss"

const (
	ColorAccent  = lipgloss.Color("#8655B1") // Brand purple
	ColorSuccess = lipgloss.Color("#10B981")
	ColorWarning = lipgloss.Color("#F59E0B")
	ColorError   = lipgloss.Color("#EF4444")
	ColorSubtle  = lipgloss.Color("240") // Muted gray
	ColorWhite   = lipgloss.Color("#FFFFFF")
)

var (
	// ColorMuted is used for secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	// ColorBorder is used for rules and table header lines.
	ColorBorder = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
)

var (
	Error   = lipgloss.NewStyle().Foreground(ColorError)
	Success = lipgloss.NewStyle().Foreground(ColorSuccess)
	Muted   = lipgloss.NewStyle().Foreground(ColorMuted)
)
