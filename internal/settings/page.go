// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/blockbatch/settings/internal/logging"
	"github.com/blockbatch/settings/internal/model"
)

// ErrNoSuchWallet is returned for a wallet index outside the list.
var ErrNoSuchWallet = errors.New("no such wallet")

// Panel is what the page renders for the selected tab.
type Panel int

const (
	PanelPlaceholder Panel = iota
	PanelProfile
	PanelNotifications
	PanelWallets
)

func (p Panel) String() string {
	switch p {
	case PanelProfile:
		return "profile"
	case PanelNotifications:
		return "notifications"
	case PanelWallets:
		return "wallets"
	}
	return "placeholder"
}

// Page is the state of one settings page session.
type Page struct {
	tab           model.Tab
	profile       model.ProfileFields
	notifications model.NotificationPreferences
	wallets       []model.WalletRecord

	clipboard Clipboard
	actions   Actions
}

// Option configures a Page.
type Option func(*Page)

// WithTab sets the initially selected tab.
func WithTab(tab model.Tab) Option {
	return func(p *Page) { p.tab = tab }
}

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(p *Page) { p.clipboard = c }
}

// WithActions replaces the NoopActions extension point.
func WithActions(a Actions) Option {
	return func(p *Page) { p.actions = a }
}

// WithProfile seeds the profile form.
func WithProfile(fields model.ProfileFields) Option {
	return func(p *Page) { p.profile = fields }
}

// New creates a page with the default tab, default preferences and the
// sample wallet list.
func New(opts ...Option) *Page {
	p := &Page{
		tab:           model.DefaultTab,
		notifications: model.DefaultNotificationPreferences(),
		wallets:       model.SampleWallets(uuid.NewString),
		clipboard:     SystemClipboard{},
		actions:       NoopActions{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Tab controller

// Select replaces the selected tab unconditionally.
func (p *Page) Select(tab model.Tab) {
	logging.Debugf("settings: select tab %s", tab)
	p.tab = tab
}

// ActiveTab returns the selected tab.
func (p *Page) ActiveTab() model.Tab {
	return p.tab
}

// ActivePanel returns the panel for the selected tab, falling back to the
// placeholder for tabs without one.
func (p *Page) ActivePanel() Panel {
	return PanelFor(p.tab)
}

// PanelFor returns the panel rendered for tab.
func PanelFor(tab model.Tab) Panel {
	switch tab {
	case model.TabProfile:
		return PanelProfile
	case model.TabNotifications:
		return PanelNotifications
	case model.TabWallets:
		return PanelWallets
	}
	return PanelPlaceholder
}

// Profile

// Profile returns a copy of the profile fields.
func (p *Page) Profile() model.ProfileFields {
	return p.profile
}

// SetProfileField replaces one text field.
func (p *Page) SetProfileField(field model.ProfileField, value string) error {
	return p.profile.Set(field, value)
}

// ToggleTwoFactor flips the two-factor authentication toggle.
func (p *Page) ToggleTwoFactor() {
	p.profile.TwoFactor = !p.profile.TwoFactor
}

// ToggleSessionTimeout flips the session timeout toggle.
func (p *Page) ToggleSessionTimeout() {
	p.profile.SessionTimeout = !p.profile.SessionTimeout
}

// SetProfileValue applies a form change by field id. Text fields take a
// string, the two security toggles take a bool.
func (p *Page) SetProfileValue(id string, value any) error {
	switch id {
	case model.ToggleTwoFactor, model.ToggleSessionTimeout:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %s expects a bool, got %T", model.ErrInvalidOption, id, value)
		}
		if id == model.ToggleTwoFactor {
			p.profile.TwoFactor = b
		} else {
			p.profile.SessionTimeout = b
		}
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %s expects a string, got %T", model.ErrInvalidOption, id, value)
	}
	return p.SetProfileField(model.ProfileField(id), s)
}

// Notifications

// Notifications returns a copy of the notification preferences.
func (p *Page) Notifications() model.NotificationPreferences {
	return p.notifications
}

// ToggleEmail flips one email flag.
func (p *Page) ToggleEmail(pref model.EmailPref) error {
	v, err := p.notifications.Email(pref)
	if err != nil {
		return err
	}
	return p.notifications.SetEmail(pref, !v)
}

// TogglePush flips one push flag.
func (p *Page) TogglePush(pref model.PushPref) error {
	v, err := p.notifications.Push(pref)
	if err != nil {
		return err
	}
	return p.notifications.SetPush(pref, !v)
}

// SetFrequency selects the email delivery frequency.
func (p *Page) SetFrequency(f model.Frequency) error {
	if !f.Valid() {
		return fmt.Errorf("%w: frequency %q", model.ErrInvalidOption, f)
	}
	p.notifications.Frequency = f
	return nil
}

// SetQuietHours selects the quiet hours schedule.
func (p *Page) SetQuietHours(q model.QuietHours) error {
	if !q.Valid() {
		return fmt.Errorf("%w: quiet hours %q", model.ErrInvalidOption, q)
	}
	p.notifications.QuietHours = q
	return nil
}

// SetNotificationValue applies a form change by field id.
func (p *Page) SetNotificationValue(id string, value any) error {
	switch id {
	case "frequency":
		return p.SetFrequency(model.Frequency(fmt.Sprint(value)))
	case "quiet_hours":
		return p.SetQuietHours(model.QuietHours(fmt.Sprint(value)))
	}
	b, ok := value.(bool)
	if !ok {
		return fmt.Errorf("%w: %s expects a bool, got %T", model.ErrInvalidOption, id, value)
	}
	if slices.Contains(model.EmailPrefs, model.EmailPref(id)) {
		return p.notifications.SetEmail(model.EmailPref(id), b)
	}
	return p.notifications.SetPush(model.PushPref(id), b)
}

// Wallets

// Wallets returns a copy of the wallet list.
func (p *Page) Wallets() []model.WalletRecord {
	return slices.Clone(p.wallets)
}

// Wallet returns the record at index i.
func (p *Page) Wallet(i int) (model.WalletRecord, error) {
	if i < 0 || i >= len(p.wallets) {
		return model.WalletRecord{}, fmt.Errorf("%w: index %d", ErrNoSuchWallet, i)
	}
	return p.wallets[i], nil
}

// CopyAddress writes the literal address of wallet i to the clipboard.
func (p *Page) CopyAddress(i int) (model.WalletRecord, error) {
	w, err := p.Wallet(i)
	if err != nil {
		return w, err
	}
	return w, copyAddress(p.clipboard, w)
}

// CopyAddressRequest binds the clipboard write for wallet i so it can run
// outside the update loop.
func (p *Page) CopyAddressRequest(i int) (Request, model.WalletRecord, error) {
	w, err := p.Wallet(i)
	if err != nil {
		return nil, w, err
	}
	cb := p.clipboard
	return func(context.Context) error {
		return copyAddress(cb, w)
	}, w, nil
}

func copyAddress(cb Clipboard, w model.WalletRecord) error {
	if err := cb.WriteAll(w.Address); err != nil {
		return fmt.Errorf("could not copy address of %s: %w", w.Name, err)
	}
	logging.Debugf("settings: copied address of %s", w.Name)
	return nil
}
