// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package switcher

import (
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

func TestSwitcher_Select(t *testing.T) {
	a, b := &fakeModel{name: "a"}, &fakeModel{name: "b"}
	m := New(util.ModelPointer(a), util.ModelPointer(b))
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if a.size.Width != 40 || b.size.Width != 40 {
		t.Fatalf("every model should be sized")
	}

	m.Focus(nil)
	if !a.focused || b.focused {
		t.Fatalf("first model should hold focus")
	}

	m.Select(1)
	if a.focused || !b.focused || m.View() != "b" || m.Active() != 1 {
		t.Fatalf("select did not move focus: a=%v b=%v view=%q", a.focused, b.focused, m.View())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if a.keys != 0 || b.keys != 1 {
		t.Fatalf("keys should reach the active model only")
	}

	m.Blur()
	m.Select(0)
	if a.focused {
		t.Fatalf("select must not focus while blurred")
	}
}
