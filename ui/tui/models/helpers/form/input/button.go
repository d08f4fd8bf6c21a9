// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package forminput

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blockbatch/settings/ui/tui/models/helpers/form"
	"github.com/blockbatch/settings/ui/tui/util"
)

type Button struct {
	Label    string
	Disabled bool
	// Action is reported to the form on click, ActionSubmit by default.
	Action form.Action
	KeyMap ButtonKeyMap

	DisabledStyle lipgloss.Style
	BlurredStyle  lipgloss.Style
	FocusedStyle  lipgloss.Style

	focused bool
}

type ButtonKeyMap struct {
	Click key.Binding
}

func (k ButtonKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Click} }
func (k ButtonKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Click}} }

func NewButton(label string, disabled bool) *Button {
	base := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(mutedColor).
		Foreground(mutedColor)
	return &Button{
		Label:    label,
		Disabled: disabled,
		Action:   form.ActionSubmit,
		KeyMap: ButtonKeyMap{
			Click: key.NewBinding(
				key.WithKeys("enter", " "),
				key.WithHelp("enter", strings.ToLower(label)),
			),
		},
		DisabledStyle: base.Faint(true),
		BlurredStyle:  base,
		FocusedStyle: base.
			BorderForeground(accentColor).
			Foreground(accentColor).
			Bold(true),
	}
}

// NewCancelButton reports ActionCancel when clicked.
func NewCancelButton(label string) *Button {
	b := NewButton(label, false)
	b.Action = form.ActionCancel
	return b
}

func (b *Button) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	b.focused = true
	return util.AnnounceKeyMapCmd(baseKeyMap, b.KeyMap)
}

func (b *Button) Blur() {
	b.focused = false
}

func (b *Button) Skip() bool { return b.Disabled }

func (b *Button) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && !b.Disabled && key.Matches(msg, b.KeyMap.Click) {
		return nil, b.Action
	}
	return nil, form.ActionNone
}

func (b *Button) View(width int) string {
	style := b.BlurredStyle
	switch {
	case b.Disabled:
		style = b.DisabledStyle
	case b.focused:
		style = b.FocusedStyle
	}
	return style.MaxWidth(max(width, 1)).Render(b.Label)
}

// buttons carry no value
func (b *Button) Get() any      { return nil }
func (b *Button) Init() tea.Cmd { return nil }
func (b *Button) Reset()        {}
func (b *Button) Set(any)       {}

var _ form.FormInput = (*Button)(nil)
var _ form.Skippable = (*Button)(nil)
