// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockbatch/settings/internal/i18n"
	"github.com/blockbatch/settings/ui/tui/util"
)

type fakeModel struct {
	view    string
	focused bool
	keys    []string
}

func (f *fakeModel) Init() tea.Cmd { return nil }
func (f *fakeModel) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		f.keys = append(f.keys, k.String())
	}
	return nil
}
func (f *fakeModel) View() string              { return f.view }
func (f *fakeModel) Focus(help.KeyMap) tea.Cmd { f.focused = true; return nil }
func (f *fakeModel) Blur()                     { f.focused = false }

func TestInjector_OpenRoutesKeysToPopup(t *testing.T) {
	i18n.Init("en")
	child := &fakeModel{view: strings.Repeat(strings.Repeat(".", 20)+"\n", 9) + strings.Repeat(".", 20)}
	inj := NewInjector(util.ModelPointer(child))
	inj.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	inj.Focus(nil)
	if !child.focused {
		t.Fatalf("child should be focused without popups")
	}

	pop := &fakeModel{view: "HELLO"}
	inj.Update(Open(util.ModelPointer(pop))())
	if !inj.Open() || !pop.focused || child.focused {
		t.Fatalf("popup should hold focus: open=%v popup=%v child=%v", inj.Open(), pop.focused, child.focused)
	}

	inj.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if len(pop.keys) != 1 || len(child.keys) != 0 {
		t.Fatalf("key went to wrong model: popup=%v child=%v", pop.keys, child.keys)
	}
	if !strings.Contains(inj.View(), "HELLO") {
		t.Fatalf("popup not rendered:\n%s", inj.View())
	}

	inj.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if inj.Open() || !child.focused {
		t.Fatalf("esc should close the popup and refocus the child")
	}
}

func TestInjector_OnCloseCallback(t *testing.T) {
	i18n.Init("en")
	inj := NewInjector(util.ModelPointer(&fakeModel{view: "child"}))
	inj.Focus(nil)

	called := false
	inj.Update(OpenWithCallback(util.ModelPointer(&fakeModel{}), func(*util.Model) tea.Cmd {
		called = true
		return nil
	})())
	inj.Update(Close()())
	if !called {
		t.Fatalf("expected close callback")
	}
	if inj.Update(Close()()) != nil {
		t.Fatalf("closing without popups should be a no-op")
	}
}

func TestOverlay_CentersForeground(t *testing.T) {
	bg := strings.Join([]string{"aaaaa", "aaaaa", "aaaaa"}, "\n")
	got := strings.Split(overlay(bg, "X"), "\n")
	if got[1] != "aaXaa" {
		t.Fatalf("expected centered overlay, got %q", got)
	}
	if got[0] != "aaaaa" || got[2] != "aaaaa" {
		t.Fatalf("rows around the overlay changed: %q", got)
	}
}
