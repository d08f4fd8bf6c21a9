// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package keyhelp

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockbatch/settings/ui/tui/util"
)

type keyMap []key.Binding

func (k keyMap) ShortHelp() []key.Binding  { return k }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func bindings() keyMap {
	disabled := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"))
	disabled.SetEnabled(false)
	return keyMap{
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy address")),
		disabled,
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	}
}

func TestShortHelpView_SkipsDisabled(t *testing.T) {
	m := help.New()
	m.Width = 200
	view := ShortHelpView(m, bindings())
	if !strings.Contains(view, "copy address") || !strings.Contains(view, "delete") {
		t.Fatalf("expected enabled bindings in view, got %q", view)
	}
	if strings.Contains(view, "hidden") {
		t.Fatalf("disabled binding rendered: %q", view)
	}
}

func TestShortHelpView_Truncates(t *testing.T) {
	m := help.New()
	m.Width = 16
	view := ShortHelpView(m, bindings())
	if strings.Contains(view, "delete") {
		t.Fatalf("expected trailing binding to be cut, got %q", view)
	}
	if !strings.Contains(view, m.Ellipsis) {
		t.Fatalf("expected ellipsis, got %q", view)
	}
}

func TestModel_AnnouncedKeyMap(t *testing.T) {
	m := New()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 1})
	if m.View() != "" {
		t.Fatalf("expected empty view before any key map is announced")
	}
	m.Update(util.AnnounceKeyMapMsg{KeyMap: bindings()})
	if !strings.Contains(m.View(), "copy address") {
		t.Fatalf("expected announced binding in view, got %q", m.View())
	}
	m.ToggleExpanded()
	if !strings.Contains(m.View(), "delete") {
		t.Fatalf("expected full help to list delete, got %q", m.View())
	}
}
