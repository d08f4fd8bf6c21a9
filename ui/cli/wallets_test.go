// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/blockbatch/settings/internal/settings"
)

func TestWallets_PrintsTable(t *testing.T) {
	h := newHarness(t)

	if err := h.run("wallets"); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := h.out.String()
	for _, want := range []string{"Name", "Address", "Main Wallet", "0x1234567890abcdef1234567890abcdef12345678", "Arbitrum", "Default", "Connected"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q:\n%s", want, out)
		}
	}
	if len(h.runs) != 0 {
		t.Fatalf("wallets must not start the TUI")
	}
}

func TestWallets_NarrowTerminalShortensAddresses(t *testing.T) {
	h := newHarness(t)
	h.app.env.width = func() int { return 80 }

	if err := h.run("wallets"); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := h.out.String()
	if !strings.Contains(out, "0x1234...5678") || strings.Contains(out, "0x1234567890abcdef") {
		t.Fatalf("expected shortened addresses:\n%s", out)
	}
}

func TestWallets_Copy(t *testing.T) {
	h := newHarness(t)

	if err := h.run("wallets", "--copy", "trading wallet"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if h.clipboard.Text != "0xabcdef1234567890abcdef1234567890abcdef12" {
		t.Fatalf("clipboard got %q", h.clipboard.Text)
	}
	if !strings.Contains(h.out.String(), "Copied address of Trading Wallet") {
		t.Fatalf("unexpected output:\n%s", h.out.String())
	}
}

func TestWallets_CopyUnknown(t *testing.T) {
	h := newHarness(t)

	err := h.run("wallets", "--copy", "Cold Storage")
	if !errors.Is(err, settings.ErrNoSuchWallet) {
		t.Fatalf("expected ErrNoSuchWallet, got %v", err)
	}
	if h.clipboard.Writes != 0 {
		t.Fatalf("clipboard written for unknown wallet")
	}
}

func TestWallets_CopyFailure(t *testing.T) {
	h := newHarness(t)
	h.clipboard.Err = errors.New("no display")

	err := h.run("wallets", "--copy", "Main Wallet")
	if err == nil || !strings.Contains(err.Error(), "no display") {
		t.Fatalf("expected clipboard error, got %v", err)
	}
}
