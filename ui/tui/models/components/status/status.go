// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package status shows a single line with the outcome of the last action.
package status

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blockbatch/settings/ui/tui/models/components/stack"
	"github.com/blockbatch/settings/ui/tui/styles"
	"github.com/blockbatch/settings/ui/tui/util"
)

type Kind int

const (
	KindInfo Kind = iota
	KindNotice
	KindError
)

var kindStyles = map[Kind]lipgloss.Style{
	KindInfo:   styles.Success,
	KindNotice: lipgloss.NewStyle().Foreground(styles.ColorWarning),
	KindError:  styles.Error.Bold(true),
}

var icons = map[Kind]string{
	KindInfo:   "✓ ",
	KindNotice: "i ",
	KindError:  "✗ ",
}

// Msg replaces the status line.
type Msg struct {
	Kind Kind
	Text string
}

func Set(kind Kind, text string) tea.Cmd {
	return func() tea.Msg { return Msg{Kind: kind, Text: text} }
}

func Notice(text string) tea.Cmd { return Set(KindNotice, text) }
func Error(text string) tea.Cmd { return Set(KindError, text) }

type clearMsg struct{}

// Clear empties the status line.
func Clear() tea.Cmd {
	return func() tea.Msg { return clearMsg{} }
}

type Model struct {
	current *Msg
	size    util.Size
}

func New() *Model {
	return &Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}
	switch msg := msg.(type) {
	case Msg:
		m.current = &msg
	case clearMsg:
		m.current = nil
	}
	return nil
}

func (m Model) View() string {
	if m.current == nil {
		return ""
	}
	return kindStyles[m.current.Kind].
		MaxWidth(max(m.size.Width, 1)).
		Padding(0, 1).
		Render(icons[m.current.Kind] + m.current.Text)
}

// Current returns the message on display, if any.
func (m Model) Current() (Msg, bool) {
	if m.current == nil {
		return Msg{}, false
	}
	return *m.current, true
}

func (m *Model) Focus(help.KeyMap) tea.Cmd { return nil }
func (m *Model) Blur()                     {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

var SizeConfig = stack.StaticSize(1)
