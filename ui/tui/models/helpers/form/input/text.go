// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blockbatch/settings/internal/i18n"
	"github.com/blockbatch/settings/ui/tui/models/helpers/form"
	"github.com/blockbatch/settings/ui/tui/util"
)

type Text struct {
	Label       string
	Placeholder string
	// Hint, when set, renders a line below the input for the current value.
	Hint   func(value string) string
	KeyMap TextKeyMap

	input   textinput.Model
	focused bool
}

type TextKeyMap struct {
	Next key.Binding
}

func (k TextKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Next} }
func (k TextKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Next}} }

func NewText(label, placeholder string) *Text {
	input := textinput.New()
	input.Prompt = "> "
	return &Text{
		Label:       label,
		Placeholder: placeholder,
		KeyMap: TextKeyMap{
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("key.next")),
			),
		},
		input: input,
	}
}

func (t *Text) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *Text) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	t.focused = true
	return tea.Batch(t.input.Focus(), util.AnnounceKeyMapCmd(baseKeyMap, t.KeyMap))
}

func (t *Text) CapturesText() bool { return t.focused }

func (t *Text) Get() any {
	return t.input.Value()
}

func (t *Text) Init() tea.Cmd {
	return nil
}

func (t *Text) Reset() {
	t.input.SetValue("")
}

func (t *Text) Set(value any) {
	if value, ok := value.(string); ok {
		t.input.SetValue(value)
	}
}

func (t *Text) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, t.KeyMap.Next) {
		return nil, form.ActionNext
	}
	return util.UpdateTeaModelInplace(msg, &t.input), form.ActionNone
}

func (t *Text) View(width int) string {
	t.input.Width = max(width-lipgloss.Width(t.input.Prompt)-2, 1)
	t.input.Placeholder = t.Placeholder

	parts := []string{renderLabel(t.Label, t.focused, width), t.input.View()}
	if t.Hint != nil {
		if hint := t.Hint(t.input.Value()); hint != "" {
			parts = append(parts, descriptionStyle.MaxWidth(max(width, 1)).Render(hint))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

var _ form.FormInput = (*Text)(nil)
var _ form.TextCapturer = (*Text)(nil)
