// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package form arranges inputs in rows, moves focus between them and maps
// their values onto a struct with mapstructure.
package form

import (
	"reflect"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"

	"github.com/blockbatch/settings/ui/tui/util"
	"github.com/blockbatch/settings/util/slicest"
)

type FormInput interface {
	util.Focusable
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

// Skippable inputs are passed over when focus moves.
type Skippable interface {
	Skip() bool
}

// TextCapturer inputs consume printable keys while focused.
type TextCapturer interface {
	CapturesText() bool
}

type formItem struct {
	id    string
	input FormInput
}

type formRow struct {
	items []int
}

type Form[T any] struct {
	OnSubmit         func(result T, err error) tea.Cmd
	OnCancel         func() tea.Cmd
	OnChange         func(id string, value any) tea.Cmd
	ResetAfterSubmit bool

	items       []formItem
	rows        []formRow
	activeIndex int
	focused     bool
	keyMap      KeyMap
	baseKeyMap  help.KeyMap
	size        util.Size
}

func (f Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f Form[T]) Update(msg tea.Msg) (Form[T], tea.Cmd) {
	if f.size.Update(msg) || !f.focused || len(f.items) == 0 {
		return f, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, f.keyMap.Next):
			return f, f.changeActiveIndex(1)
		case key.Matches(kmsg, f.keyMap.Prev):
			return f, f.changeActiveIndex(-1)
		}
	}

	return f, f.updateActiveInput(msg)
}

func (f Form[T]) View() string {
	rows := slicest.Map(f.rows, func(row formRow) string {
		width := f.size.Width / max(len(row.items), 1)
		return lipgloss.JoinHorizontal(
			lipgloss.Top,
			slicest.Map(row.items, func(itemIndex int) string {
				return lipgloss.NewStyle().Width(width).Render(f.items[itemIndex].input.View(width))
			})...,
		)
	})

	view := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if f.size.Height <= 0 || lipgloss.Height(view) <= f.size.Height {
		return view
	}

	// scroll so the row holding the active input stays visible
	var bottom int
	for i, row := range rows {
		bottom += lipgloss.Height(row)
		if i == f.activeRow() {
			break
		}
	}
	lines := strings.Split(view, "\n")
	start := util.Clamp(0, bottom-f.size.Height, len(lines)-f.size.Height)
	return strings.Join(lines[start:start+f.size.Height], "\n")
}

func (f *Form[T]) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	f.focused, f.baseKeyMap = true, baseKeyMap
	if len(f.items) == 0 {
		return util.AnnounceKeyMapCmd(baseKeyMap, f.keyMap)
	}
	return f.focusActive()
}

func (f *Form[T]) Blur() {
	f.focused = false
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

// *Form implements util.Focusable
var _ util.Focusable = (*Form[any])(nil)

func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}
	if len(f.items) == 0 {
		return nil
	}
	f.items[f.activeIndex].input.Blur()
	f.activeIndex = f.nextFocusable(-1, 1)
	if !f.focused {
		return nil
	}
	return f.focusActive()
}

func (f *Form[T]) Submit() tea.Cmd {
	data, err := f.Get()
	var resetCmd tea.Cmd
	if f.ResetAfterSubmit {
		resetCmd = f.Reset()
	}
	if f.OnSubmit == nil {
		return resetCmd
	}
	return tea.Batch(resetCmd, f.OnSubmit(data, err))
}

// ActiveId returns the id of the focused input.
func (f Form[T]) ActiveId() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.activeIndex].id
}

// CapturesText reports whether the focused input takes printable keys.
func (f Form[T]) CapturesText() bool {
	if !f.focused || len(f.items) == 0 {
		return false
	}
	c, ok := f.items[f.activeIndex].input.(TextCapturer)
	return ok && c.CapturesText()
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	item := f.items[f.activeIndex]
	before := item.input.Get()

	updateCmd, action := item.input.Update(msg)

	var changeCmd tea.Cmd
	if after := item.input.Get(); item.id != "" && f.OnChange != nil && !reflect.DeepEqual(before, after) {
		changeCmd = f.OnChange(item.id, after)
	}

	var actionCmd tea.Cmd
	switch action {
	case ActionNone:
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionPrev:
		actionCmd = f.changeActiveIndex(-1)
	case ActionSubmit:
		actionCmd = f.Submit()
	case ActionCancel:
		if f.OnCancel != nil {
			actionCmd = f.OnCancel()
		}
	}

	return tea.Batch(updateCmd, changeCmd, actionCmd)
}

func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	next := f.nextFocusable(f.activeIndex, delta)
	if next == f.activeIndex {
		return nil
	}
	f.items[f.activeIndex].input.Blur()
	f.activeIndex = next
	return f.focusActive()
}

func (f *Form[T]) focusActive() tea.Cmd {
	return f.items[f.activeIndex].input.Focus(util.MergeKeyMaps(f.baseKeyMap, f.keyMap))
}

// nextFocusable walks from index in direction delta, wrapping around, and
// returns the first input that is not skipped. With nothing focusable it
// returns index unchanged (or 0 when index is out of range).
func (f *Form[T]) nextFocusable(index, delta int) int {
	n := len(f.items)
	if n == 0 {
		return 0
	}
	i := index
	for range n {
		i = util.Wrap(i, delta, n)
		if s, ok := f.items[i].input.(Skippable); !ok || !s.Skip() {
			return i
		}
	}
	return util.Clamp(0, index, n-1)
}

func (f Form[T]) activeRow() int {
	for r, row := range f.rows {
		for _, i := range row.items {
			if i == f.activeIndex {
				return r
			}
		}
	}
	return 0
}

func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		if item.id != "" {
			values[item.id] = item.input.Get()
		}
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}

func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		if value, ok := values[f.items[i].id]; ok && f.items[i].id != "" {
			f.items[i].input.Set(value)
		}
	}

	return nil
}
