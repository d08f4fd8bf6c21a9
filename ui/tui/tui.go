// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockbatch/settings/internal/logging"
	"github.com/blockbatch/settings/internal/settings"
	"github.com/blockbatch/settings/ui/tui/models/views/root"
)

// Options configures a TUI run.
type Options struct {
	// Page is the state the program edits. A fresh page is used when nil.
	Page *settings.Page
	// ProgramOptions are appended after the defaults.
	ProgramOptions []tea.ProgramOption
}

// Run blocks until the user quits or ctx is cancelled. Cancellation is not
// reported as an error.
func Run(ctx context.Context, opts Options) error {
	page := opts.Page
	if page == nil {
		page = settings.New()
	}

	programOpts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, opts.ProgramOptions...)

	logging.Debugf("tui: starting on tab %s", page.ActiveTab())
	_, err := tea.NewProgram(root.New(ctx, page), programOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		logging.Infof("tui: stopped: %v", context.Cause(ctx))
		return nil
	}
	return err
}
