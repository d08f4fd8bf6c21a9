// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"errors"
	"strconv"
	"testing"
)

func TestParseTab(t *testing.T) {
	cases := map[string]Tab{
		"profile":       TabProfile,
		"Notifications": TabNotifications,
		" wallets ":     TabWallets,
		"api":           TabAPIKeys,
		"API-Keys":      TabAPIKeys,
		"apikeys":       TabAPIKeys,
	}
	for in, want := range cases {
		got, err := ParseTab(in)
		if err != nil {
			t.Fatalf("ParseTab(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseTab(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := ParseTab("billing"); !errors.Is(err, ErrUnknownTab) {
		t.Fatalf("expected ErrUnknownTab, got %v", err)
	}
}

func TestTabIndexFollowsDisplayOrder(t *testing.T) {
	for i, tab := range Tabs {
		if tab.Index() != i {
			t.Fatalf("%s.Index() = %d, want %d", tab, tab.Index(), i)
		}
	}
	if Tab("nope").Index() != -1 {
		t.Fatalf("unknown tab should have index -1")
	}
}

func TestNotificationDefaults(t *testing.T) {
	p := DefaultNotificationPreferences()
	for _, pref := range EmailPrefs {
		if v, _ := p.Email(pref); v {
			t.Fatalf("email %s should default to false", pref)
		}
	}
	for _, pref := range PushPrefs {
		if v, _ := p.Push(pref); v {
			t.Fatalf("push %s should default to false", pref)
		}
	}
	if p.Frequency != FrequencyImmediate || p.QuietHours != QuietHoursNone {
		t.Fatalf("unexpected selector defaults: %+v", p)
	}
}

func TestSetEmailTouchesOnlyOneFlag(t *testing.T) {
	for _, pref := range EmailPrefs {
		p := DefaultNotificationPreferences()
		if err := p.SetEmail(pref, true); err != nil {
			t.Fatalf("SetEmail(%s): %v", pref, err)
		}
		for _, other := range EmailPrefs {
			v, _ := p.Email(other)
			if v != (other == pref) {
				t.Fatalf("after setting %s, %s = %v", pref, other, v)
			}
		}
		if p.StatusChanges || p.CriticalAlerts {
			t.Fatalf("email toggle leaked into push flags: %+v", p)
		}
	}

	p := DefaultNotificationPreferences()
	if err := p.SetEmail("unsubscribe_all", true); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
	if err := p.SetPush("sms", true); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

func TestEnumValidity(t *testing.T) {
	for _, f := range Frequencies {
		if !f.Valid() {
			t.Fatalf("%s should be valid", f)
		}
	}
	if Frequency("monthly").Valid() {
		t.Fatalf("monthly is not a frequency option")
	}
	for _, q := range QuietHoursOptions {
		if !q.Valid() {
			t.Fatalf("%s should be valid", q)
		}
	}
	if QuietHours("weekends").Valid() {
		t.Fatalf("weekends is not a quiet hours option")
	}
}

func TestProfileFieldSetIsIndependent(t *testing.T) {
	var p ProfileFields
	if err := p.Set(FieldName, "Ada"); err != nil {
		t.Fatalf("Set name: %v", err)
	}
	if err := p.Set(FieldCompanyName, "Acme Inc."); err != nil {
		t.Fatalf("Set company: %v", err)
	}
	if got, _ := p.Get(FieldCompanyName); got != "Acme Inc." {
		t.Fatalf("company = %q", got)
	}
	if got, _ := p.Get(FieldName); got != "Ada" {
		t.Fatalf("name changed to %q", got)
	}
	if _, err := p.Get("nickname"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestSampleWallets(t *testing.T) {
	n := 0
	wallets := SampleWallets(func() string { n++; return strconv.Itoa(n) })
	if len(wallets) != 3 {
		t.Fatalf("expected 3 sample wallets, got %d", len(wallets))
	}
	defaults := 0
	for _, w := range wallets {
		if w.IsDefault() {
			defaults++
		}
		if w.ID == "" || w.Address == "" {
			t.Fatalf("incomplete record: %+v", w)
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default wallet, got %d", defaults)
	}
	if n != 3 {
		t.Fatalf("expected one id per record, got %d calls", n)
	}
}

func TestShortAddress(t *testing.T) {
	if got := ShortAddress("0x1234567890abcdef1234567890abcdef12345678"); got != "0x1234...5678" {
		t.Fatalf("ShortAddress = %q", got)
	}
	if got := ShortAddress("0xabc"); got != "0xabc" {
		t.Fatalf("short input should be kept, got %q", got)
	}
}
