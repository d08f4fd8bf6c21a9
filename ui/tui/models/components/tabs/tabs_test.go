// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package tabs

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockbatch/settings/internal/i18n"
)

func newTabs() *Model {
	return New(
		WithItem("profile", "Profile"),
		WithItem("notifications", "Notifications"),
		WithItem("wallets", "Wallets"),
		WithItem("api", "API Keys"),
	)
}

func selected(t *testing.T, cmd tea.Cmd) Selected {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	sel, ok := cmd().(Selected)
	if !ok {
		t.Fatalf("expected Selected message")
	}
	return sel
}

func TestHandleKey_CyclesTabs(t *testing.T) {
	i18n.Init("en")
	m := newTabs()

	cmd, ok := m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	if !ok || selected(t, cmd).Id != "notifications" {
		t.Fatalf("']' should select notifications")
	}
	cmd, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlLeft})
	cmd, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlLeft})
	if sel := selected(t, cmd); sel.Index != 3 || sel.Id != "api" {
		t.Fatalf("prev should wrap to the last tab, got %+v", sel)
	}
	cmd, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlRight})
	if selected(t, cmd).Index != 0 {
		t.Fatalf("next should wrap to the first tab")
	}
}

func TestHandleKey_Jump(t *testing.T) {
	i18n.Init("en")
	m := newTabs()

	cmd, ok := m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	if !ok || selected(t, cmd).Id != "wallets" || m.Active() != 2 {
		t.Fatalf("'3' should select wallets")
	}
	if _, ok := m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'7'}}); ok {
		t.Fatalf("jump past the last tab must not be consumed")
	}
	if m.Active() != 2 {
		t.Fatalf("active tab changed on invalid jump")
	}
}

func TestHandleKey_TextMode(t *testing.T) {
	i18n.Init("en")
	m := newTabs()
	m.SetTextMode(true)

	for _, r := range []rune{'[', ']', '2'} {
		if _, ok := m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}); ok {
			t.Fatalf("%q must reach the text input in text mode", r)
		}
	}
	if _, ok := m.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlRight}); !ok {
		t.Fatalf("ctrl+right should still switch tabs")
	}
}

func TestView_ShowsLabels(t *testing.T) {
	m := newTabs()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 2})
	view := m.View()
	for _, label := range []string{"Profile", "Notifications", "Wallets", "API Keys"} {
		if !strings.Contains(view, label) {
			t.Fatalf("missing %q in %q", label, view)
		}
	}
}
