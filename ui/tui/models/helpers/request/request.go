// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package request runs settings requests off the update loop and reports
// their outcome on the status line.
package request

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockbatch/settings/internal/i18n"
	"github.com/blockbatch/settings/internal/logging"
	"github.com/blockbatch/settings/internal/settings"
	"github.com/blockbatch/settings/ui/tui/models/components/status"
)

type sendMsg struct {
	req    settings.Request
	done   string
	failed string
}

// Send hands req to the Handler. done is shown when it succeeds. failed is a
// format with one %s for the error; empty values fall back to generic
// messages.
func Send(req settings.Request, done, failed string) tea.Cmd {
	return func() tea.Msg { return sendMsg{req: req, done: done, failed: failed} }
}

type Handler struct {
	ctx context.Context
}

func NewHandler(ctx context.Context) *Handler {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Handler{ctx: ctx}
}

// Handle returns a command running the request for messages from Send and
// nil for anything else.
func (h *Handler) Handle(msg tea.Msg) tea.Cmd {
	m, ok := msg.(sendMsg)
	if !ok || m.req == nil {
		return nil
	}
	ctx := h.ctx
	return func() tea.Msg {
		return Outcome(m.req(ctx), m.done, m.failed)
	}
}

// Outcome maps a request error to a status message.
func Outcome(err error, done, failed string) tea.Msg {
	switch {
	case err == nil:
		if done == "" {
			done = i18n.T("status.sent")
		}
		return status.Msg{Kind: status.KindInfo, Text: done}
	case errors.Is(err, settings.ErrNoBackend):
		return status.Msg{Kind: status.KindNotice, Text: i18n.T("status.no_backend")}
	default:
		logging.Warnf("request failed: %v", err)
		if failed == "" {
			return status.Msg{Kind: status.KindError, Text: i18n.T("status.failed", err)}
		}
		return status.Msg{Kind: status.KindError, Text: fmt.Sprintf(failed, err)}
	}
}
