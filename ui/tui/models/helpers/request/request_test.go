// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package request

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockbatch/settings/internal/i18n"
	"github.com/blockbatch/settings/internal/settings"
	"github.com/blockbatch/settings/ui/tui/models/components/status"
)

func run(t *testing.T, h *Handler, req settings.Request) status.Msg {
	t.Helper()
	cmd := h.Handle(Send(req, "", "")())
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	msg, ok := cmd().(status.Msg)
	if !ok {
		t.Fatalf("expected status message")
	}
	return msg
}

func TestHandler_Outcomes(t *testing.T) {
	i18n.Init("en")
	h := NewHandler(context.Background())

	msg := run(t, h, settings.New().SaveProfile())
	if msg.Kind != status.KindNotice || msg.Text != "No backend configured; nothing was sent." {
		t.Fatalf("unexpected outcome for missing backend: %+v", msg)
	}

	msg = run(t, h, func(context.Context) error { return nil })
	if msg.Kind != status.KindInfo {
		t.Fatalf("expected info outcome, got %+v", msg)
	}

	msg = run(t, h, func(context.Context) error { return errors.New("timeout") })
	if msg.Kind != status.KindError || msg.Text != "Request failed: timeout" {
		t.Fatalf("unexpected error outcome: %+v", msg)
	}
}

func TestHandler_CustomMessages(t *testing.T) {
	i18n.Init("en")
	h := NewHandler(context.Background())

	cmd := h.Handle(Send(func(context.Context) error { return nil }, "Saved", "")())
	if msg := cmd().(status.Msg); msg.Text != "Saved" {
		t.Fatalf("expected custom success text, got %q", msg.Text)
	}

	cmd = h.Handle(Send(func(context.Context) error { return errors.New("locked") }, "", "Copy failed: %s")())
	if msg := cmd().(status.Msg); msg.Kind != status.KindError || msg.Text != "Copy failed: locked" {
		t.Fatalf("unexpected custom failure: %+v", msg)
	}
}

func TestHandler_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "program")
	h := NewHandler(ctx)

	var got any
	run(t, h, func(ctx context.Context) error {
		got = ctx.Value(key{})
		return nil
	})
	if got != "program" {
		t.Fatalf("request did not get the handler context")
	}
}

func TestHandler_IgnoresOtherMessages(t *testing.T) {
	if NewHandler(nil).Handle(tea.KeyMsg{}) != nil {
		t.Fatalf("expected nil for unrelated message")
	}
}
