// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blockbatch/settings/internal/i18n"
	"github.com/blockbatch/settings/ui/tui/models/helpers/form"
	"github.com/blockbatch/settings/ui/tui/styles"
	"github.com/blockbatch/settings/ui/tui/util"
)

var (
	switchOn  = styles.Success.Render("━━●")
	switchOff = lipgloss.NewStyle().Foreground(mutedColor).Render("○━━")
)

// Toggle is an on/off switch with a label and an optional description.
type Toggle struct {
	Label       string
	Description string
	KeyMap      ToggleKeyMap

	value   bool
	focused bool
}

type ToggleKeyMap struct {
	Toggle key.Binding
}

func (k ToggleKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Toggle} }
func (k ToggleKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Toggle}} }

func NewToggle(label, description string) *Toggle {
	return &Toggle{
		Label:       label,
		Description: description,
		KeyMap: ToggleKeyMap{
			Toggle: key.NewBinding(
				key.WithKeys(" ", "enter"),
				key.WithHelp("space", i18n.T("key.toggle")),
			),
		},
	}
}

func (t *Toggle) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	t.focused = true
	return util.AnnounceKeyMapCmd(baseKeyMap, t.KeyMap)
}

func (t *Toggle) Blur() {
	t.focused = false
}

func (t *Toggle) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, t.KeyMap.Toggle) {
		t.value = !t.value
	}
	return nil, form.ActionNone
}

func (t *Toggle) View(width int) string {
	sw := switchOff
	if t.value {
		sw = switchOn
	}
	textWidth := max(width-lipgloss.Width(sw)-2, 1)
	text := renderLabel(t.Label, t.focused, textWidth)
	if t.Description != "" {
		text = lipgloss.JoinVertical(lipgloss.Left, text,
			descriptionStyle.Width(textWidth).Render(t.Description))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, sw, "  ", text)
}

func (t *Toggle) Get() any      { return t.value }
func (t *Toggle) Init() tea.Cmd { return nil }
func (t *Toggle) Reset()        { t.value = false }

func (t *Toggle) Set(value any) {
	if value, ok := value.(bool); ok {
		t.value = value
	}
}

var _ form.FormInput = (*Toggle)(nil)
