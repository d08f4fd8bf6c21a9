// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockbatch/settings/internal/i18n"
)

func headless(input io.Reader) []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithInput(input),
		tea.WithOutput(io.Discard),
	}
}

func TestRun_QuitKey(t *testing.T) {
	i18n.Init("en")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Run(ctx, Options{ProgramOptions: headless(strings.NewReader("q"))}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatalf("q did not quit before the deadline")
	}
}

func TestRun_CancelledContext(t *testing.T) {
	i18n.Init("en")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Run(ctx, Options{ProgramOptions: headless(nil)}); err != nil {
		t.Fatalf("cancellation should not be an error: %v", err)
	}
}
