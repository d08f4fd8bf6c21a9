// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/blockbatch/settings/internal/model"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func TestNew_Defaults(t *testing.T) {
	p := New()
	if p.ActiveTab() != model.TabNotifications {
		t.Fatalf("expected notifications as default tab, got %s", p.ActiveTab())
	}
	if p.Notifications() != model.DefaultNotificationPreferences() {
		t.Fatalf("unexpected initial preferences: %+v", p.Notifications())
	}
	if p.Profile() != (model.ProfileFields{}) {
		t.Fatalf("expected empty profile, got %+v", p.Profile())
	}
}

func TestSelect_ActivePanel(t *testing.T) {
	want := map[model.Tab]Panel{
		model.TabProfile:       PanelProfile,
		model.TabNotifications: PanelNotifications,
		model.TabWallets:       PanelWallets,
		model.TabAPIKeys:       PanelPlaceholder,
		model.Tab("billing"):   PanelPlaceholder,
	}
	p := New()
	for tab, panel := range want {
		p.Select(tab)
		if p.ActiveTab() != tab {
			t.Fatalf("Select(%s) left %s selected", tab, p.ActiveTab())
		}
		if got := p.ActivePanel(); got != panel {
			t.Fatalf("tab %s: panel %s, want %s", tab, got, panel)
		}
	}
}

func TestWithTab(t *testing.T) {
	p := New(WithTab(model.TabProfile))
	if p.ActivePanel() != PanelProfile {
		t.Fatalf("expected profile panel, got %s", p.ActivePanel())
	}
}

func TestToggles_DoubleToggleRestores(t *testing.T) {
	p := New()
	before := p.Notifications()
	for _, pref := range model.EmailPrefs {
		if err := p.ToggleEmail(pref); err != nil {
			t.Fatalf("ToggleEmail(%s): %v", pref, err)
		}
		if err := p.ToggleEmail(pref); err != nil {
			t.Fatalf("ToggleEmail(%s): %v", pref, err)
		}
	}
	for _, pref := range model.PushPrefs {
		if err := p.TogglePush(pref); err != nil {
			t.Fatalf("TogglePush(%s): %v", pref, err)
		}
		if err := p.TogglePush(pref); err != nil {
			t.Fatalf("TogglePush(%s): %v", pref, err)
		}
	}
	if p.Notifications() != before {
		t.Fatalf("double toggle changed state: %+v -> %+v", before, p.Notifications())
	}

	p.ToggleTwoFactor()
	p.ToggleTwoFactor()
	p.ToggleSessionTimeout()
	p.ToggleSessionTimeout()
	if p.Profile().TwoFactor || p.Profile().SessionTimeout {
		t.Fatalf("double toggle changed security toggles: %+v", p.Profile())
	}
}

func TestToggleEmail_BatchCreatedLeavesSiblings(t *testing.T) {
	p := New()
	p.Select(model.TabNotifications)
	if p.Notifications().BatchCreated {
		t.Fatalf("batchCreated should start false")
	}
	if err := p.ToggleEmail(model.EmailBatchCreated); err != nil {
		t.Fatalf("ToggleEmail: %v", err)
	}
	n := p.Notifications()
	if !n.BatchCreated {
		t.Fatalf("batchCreated should be true after one toggle")
	}
	if n.BatchProcessed {
		t.Fatalf("batchProcessed must stay false")
	}
}

func TestSetFrequency(t *testing.T) {
	for _, f := range model.Frequencies {
		p := New()
		before := p.Notifications()
		if err := p.SetFrequency(f); err != nil {
			t.Fatalf("SetFrequency(%s): %v", f, err)
		}
		after := p.Notifications()
		if after.Frequency != f {
			t.Fatalf("frequency = %s, want %s", after.Frequency, f)
		}
		after.Frequency = before.Frequency
		if after != before {
			t.Fatalf("SetFrequency(%s) changed other fields: %+v", f, after)
		}
	}

	p := New()
	if err := p.SetFrequency("monthly"); !errors.Is(err, model.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
	if p.Notifications().Frequency != model.FrequencyImmediate {
		t.Fatalf("invalid frequency must not be stored")
	}
}

func TestSetQuietHours(t *testing.T) {
	p := New()
	if err := p.SetQuietHours(model.QuietHoursNight); err != nil {
		t.Fatalf("SetQuietHours: %v", err)
	}
	if p.Notifications().QuietHours != model.QuietHoursNight {
		t.Fatalf("quiet hours not applied")
	}
	if p.Notifications().Frequency != model.FrequencyImmediate {
		t.Fatalf("quiet hours changed frequency")
	}
	if err := p.SetQuietHours("weekends"); !errors.Is(err, model.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

func TestSetNotificationValue(t *testing.T) {
	p := New()
	if err := p.SetNotificationValue("critical_alerts", true); err != nil {
		t.Fatalf("SetNotificationValue: %v", err)
	}
	if err := p.SetNotificationValue("weekly_summary", true); err != nil {
		t.Fatalf("SetNotificationValue: %v", err)
	}
	if err := p.SetNotificationValue("frequency", model.FrequencyDaily); err != nil {
		t.Fatalf("SetNotificationValue frequency: %v", err)
	}
	if err := p.SetNotificationValue("quiet_hours", "custom"); err != nil {
		t.Fatalf("SetNotificationValue quiet_hours: %v", err)
	}
	n := p.Notifications()
	if !n.CriticalAlerts || !n.WeeklySummary || n.Frequency != model.FrequencyDaily || n.QuietHours != model.QuietHoursCustom {
		t.Fatalf("unexpected preferences: %+v", n)
	}
	if err := p.SetNotificationValue("batch_failed", "yes"); !errors.Is(err, model.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption for non-bool flag value, got %v", err)
	}
	if err := p.SetNotificationValue("carrier_pigeon", true); !errors.Is(err, model.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption for unknown flag, got %v", err)
	}
}

func TestSetProfileField_CompanyName(t *testing.T) {
	p := New()
	if err := p.SetProfileField(model.FieldName, "Jane Doe"); err != nil {
		t.Fatalf("SetProfileField: %v", err)
	}
	if err := p.SetProfileField(model.FieldCompanyName, "Acme Inc."); err != nil {
		t.Fatalf("SetProfileField: %v", err)
	}
	if got := p.Profile().CompanyName; got != "Acme Inc." {
		t.Fatalf("company name = %q, want %q", got, "Acme Inc.")
	}
	if got := p.Profile().Name; got != "Jane Doe" {
		t.Fatalf("sibling field changed: %q", got)
	}
	if err := p.SetProfileField("nickname", "x"); !errors.Is(err, model.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestSetProfileValue(t *testing.T) {
	p := New()
	if err := p.SetProfileValue(model.ToggleTwoFactor, true); err != nil {
		t.Fatalf("two_factor: %v", err)
	}
	if err := p.SetProfileValue("website", "https://acme.example"); err != nil {
		t.Fatalf("website: %v", err)
	}
	got := p.Profile()
	if !got.TwoFactor || got.SessionTimeout || got.Website != "https://acme.example" {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if err := p.SetProfileValue(model.ToggleSessionTimeout, "on"); !errors.Is(err, model.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
	if err := p.SetProfileValue("email", 42); !errors.Is(err, model.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

func TestWallets_SampleList(t *testing.T) {
	p := New()
	wallets := p.Wallets()
	if len(wallets) != 3 {
		t.Fatalf("expected 3 wallets, got %d", len(wallets))
	}
	defaults := 0
	for _, w := range wallets {
		if w.Status == model.WalletDefault {
			defaults++
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one Default wallet, got %d", defaults)
	}

	// callers get a copy
	wallets[0].Name = "changed"
	if p.Wallets()[0].Name == "changed" {
		t.Fatalf("Wallets must return a copy")
	}
}

func TestCopyAddress(t *testing.T) {
	cb := &fakeClipboard{}
	p := New(WithClipboard(cb))

	w, err := p.CopyAddress(1)
	if err != nil {
		t.Fatalf("CopyAddress: %v", err)
	}
	if cb.text != w.Address || cb.text != p.Wallets()[1].Address {
		t.Fatalf("clipboard holds %q, want %q", cb.text, w.Address)
	}

	if _, err := p.CopyAddress(3); !errors.Is(err, ErrNoSuchWallet) {
		t.Fatalf("expected ErrNoSuchWallet, got %v", err)
	}

	boom := errors.New("no xclip")
	p = New(WithClipboard(&fakeClipboard{err: boom}))
	if _, err := p.CopyAddress(0); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped clipboard error, got %v", err)
	}
}

func TestCopyAddressRequest(t *testing.T) {
	cb := &fakeClipboard{}
	p := New(WithClipboard(cb))

	req, w, err := p.CopyAddressRequest(0)
	if err != nil {
		t.Fatalf("CopyAddressRequest: %v", err)
	}
	if cb.text != "" {
		t.Fatalf("clipboard written before the request ran")
	}
	if err := req(context.Background()); err != nil {
		t.Fatalf("run request: %v", err)
	}
	if cb.text != w.Address {
		t.Fatalf("clipboard holds %q, want %q", cb.text, w.Address)
	}
	if _, _, err := p.CopyAddressRequest(7); !errors.Is(err, ErrNoSuchWallet) {
		t.Fatalf("expected ErrNoSuchWallet, got %v", err)
	}
}
