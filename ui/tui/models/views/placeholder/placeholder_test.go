// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package placeholder

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockbatch/settings/internal/i18n"
	"github.com/blockbatch/settings/internal/testutil"
	"github.com/blockbatch/settings/ui/tui/util"
)

func TestPlaceholder(t *testing.T) {
	i18n.Init("en")
	m := New()
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 5})

	view := m.View()
	if !strings.Contains(view, "Coming soon") {
		t.Fatalf("missing placeholder text:\n%s", view)
	}
	if got := strings.Count(view, "\n") + 1; got != 5 {
		t.Fatalf("expected the text centered in 5 rows, got %d", got)
	}

	if _, ok := testutil.Find[util.AnnounceKeyMapMsg](m.Focus(nil)); !ok {
		t.Fatalf("focus should announce the parent key map")
	}
}
