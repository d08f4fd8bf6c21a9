// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package stack

import (
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockbatch/settings/ui/tui/util"
)

type fakeModel struct {
	name    string
	size    util.Size
	focused bool
	keys    int
}

func (f *fakeModel) Init() tea.Cmd { return nil }
func (f *fakeModel) Update(msg tea.Msg) tea.Cmd {
	if f.size.Update(msg) {
		return nil
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		f.keys++
	}
	return nil
}
func (f *fakeModel) View() string              { return f.name }
func (f *fakeModel) Focus(help.KeyMap) tea.Cmd { f.focused = true; return nil }
func (f *fakeModel) Blur()                     { f.focused = false }

func TestStack_VerticalSizes(t *testing.T) {
	header, body, footer := &fakeModel{name: "header"}, &fakeModel{name: "body"}, &fakeModel{name: "footer"}
	s := New(
		WithOrientation(Vertical),
		WithItem(util.ModelPointer(header), StaticSize(1)),
		WithItem(util.ModelPointer(body), VariableSize(1)),
		WithItem(util.ModelPointer(footer), StaticSize(2)),
	)
	s.Update(tea.WindowSizeMsg{Width: 30, Height: 10})

	if got := s.Sizes(); !slices.Equal(got, []int{1, 7, 2}) {
		t.Fatalf("unexpected sizes %v", got)
	}
	if body.size.Height != 7 || body.size.Width != 30 {
		t.Fatalf("body got %+v", body.size)
	}
	view := s.View()
	if !strings.Contains(view, "header") || !strings.Contains(view, "footer") {
		t.Fatalf("unexpected view:\n%s", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines != 10 {
		t.Fatalf("expected 10 lines, got %d", lines)
	}
}

func TestStack_WeightsAndGap(t *testing.T) {
	a, b := &fakeModel{name: "a"}, &fakeModel{name: "b"}
	s := New(
		WithGap(1),
		WithItem(util.ModelPointer(a), VariableSize(1)),
		WithItem(util.ModelPointer(b), VariableSize(2)),
	)
	s.Update(tea.WindowSizeMsg{Width: 31, Height: 3})
	if got := s.Sizes(); !slices.Equal(got, []int{10, 20}) {
		t.Fatalf("unexpected sizes %v", got)
	}
}

func TestStack_FocusAndFilters(t *testing.T) {
	tabs, content := &fakeModel{name: "tabs"}, &fakeModel{name: "content"}
	s := New(
		WithOrientation(Vertical),
		WithItem(util.ModelPointer(tabs), StaticSize(1), DropKeys),
		WithFocusNext(),
		WithItem(util.ModelPointer(content), VariableSize(1)),
	)
	s.Focus(nil)
	if tabs.focused || !content.focused {
		t.Fatalf("expected only content focused: tabs=%v content=%v", tabs.focused, content.focused)
	}

	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	if tabs.keys != 0 || content.keys != 1 {
		t.Fatalf("key filter failed: tabs=%d content=%d", tabs.keys, content.keys)
	}

	s.SetFocus(FocusAll(), nil)
	if !tabs.focused || !content.focused {
		t.Fatalf("FocusAll should focus every item")
	}
	s.SetFocus(FocusIndex(0), nil)
	if !tabs.focused || content.focused {
		t.Fatalf("expected only tabs focused")
	}
}
