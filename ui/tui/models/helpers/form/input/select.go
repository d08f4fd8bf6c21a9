// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package forminput

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blockbatch/settings/internal/i18n"
	"github.com/blockbatch/settings/ui/tui/models/helpers/form"
	"github.com/blockbatch/settings/ui/tui/util"
)

type Option struct {
	Value string
	Label string
}

// Select holds exactly one of its options; left and right cycle through
// them.
type Select struct {
	Label   string
	Options []Option
	KeyMap  SelectKeyMap

	index   int
	focused bool
}

type SelectKeyMap struct {
	Prev key.Binding
	Next key.Binding
}

func (k SelectKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Prev, k.Next} }
func (k SelectKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Prev, k.Next}} }

func NewSelect(label string, options ...Option) *Select {
	return &Select{
		Label:   label,
		Options: options,
		KeyMap: SelectKeyMap{
			Prev: key.NewBinding(
				key.WithKeys("left", "h"),
				key.WithHelp("←/→", i18n.T("key.change")),
			),
			Next: key.NewBinding(
				key.WithKeys("right", "l", " "),
			),
		},
	}
}

func (s *Select) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	s.focused = true
	return util.AnnounceKeyMapCmd(baseKeyMap, s.KeyMap)
}

func (s *Select) Blur() {
	s.focused = false
}

func (s *Select) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, s.KeyMap.Prev):
			s.index = util.Wrap(s.index, -1, len(s.Options))
		case key.Matches(msg, s.KeyMap.Next):
			s.index = util.Wrap(s.index, 1, len(s.Options))
		}
	}
	return nil, form.ActionNone
}

func (s *Select) View(width int) string {
	var current string
	if len(s.Options) > 0 {
		current = s.Options[s.index].Label
	}
	value := lipgloss.NewStyle().MaxWidth(max(width, 1))
	if s.focused {
		value = value.Foreground(accentColor).Bold(true)
		current = "‹ " + current + " ›"
	} else {
		current = "  " + current
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		renderLabel(s.Label, s.focused, width),
		value.Render(current),
	)
}

func (s *Select) Get() any {
	if len(s.Options) == 0 {
		return ""
	}
	return s.Options[s.index].Value
}

func (s *Select) Init() tea.Cmd { return nil }
func (s *Select) Reset()        { s.index = 0 }

// Set accepts any value whose string form matches an option value.
func (s *Select) Set(value any) {
	v := fmt.Sprint(value)
	if i := slices.IndexFunc(s.Options, func(o Option) bool { return o.Value == v }); i >= 0 {
		s.index = i
	}
}

var _ form.FormInput = (*Select)(nil)
