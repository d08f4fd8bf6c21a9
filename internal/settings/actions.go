// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"context"
	"errors"

	"github.com/blockbatch/settings/internal/logging"
	"github.com/blockbatch/settings/internal/model"
)

// ErrNoBackend is returned by NoopActions: the request was accepted by the
// page but there is nowhere to send it.
var ErrNoBackend = errors.New("no backend configured")

// Actions receives every save, add, edit and delete request made on the
// page. Implementations get copies and must not assume the page changes as
// a result.
type Actions interface {
	SaveProfile(ctx context.Context, fields model.ProfileFields) error
	SaveNotifications(ctx context.Context, prefs model.NotificationPreferences) error
	AddWallet(ctx context.Context, draft model.WalletDraft) error
	EditWallet(ctx context.Context, wallet model.WalletRecord) error
	SetDefaultWallet(ctx context.Context, wallet model.WalletRecord) error
	DeleteWallet(ctx context.Context, wallet model.WalletRecord) error
}

// NoopActions logs each request and returns ErrNoBackend.
type NoopActions struct{}

func (NoopActions) SaveProfile(_ context.Context, fields model.ProfileFields) error {
	logging.Infof("save profile requested for %q; no backend configured", fields.Email)
	return ErrNoBackend
}

func (NoopActions) SaveNotifications(_ context.Context, prefs model.NotificationPreferences) error {
	logging.Infof("save notification preferences requested (frequency=%s, quiet_hours=%s); no backend configured",
		prefs.Frequency, prefs.QuietHours)
	return ErrNoBackend
}

func (NoopActions) AddWallet(_ context.Context, draft model.WalletDraft) error {
	logging.Infof("add wallet %q on %q requested; no backend configured", draft.Name, draft.Network)
	return ErrNoBackend
}

func (NoopActions) EditWallet(_ context.Context, wallet model.WalletRecord) error {
	logging.Infof("edit wallet %q requested; no backend configured", wallet.Name)
	return ErrNoBackend
}

func (NoopActions) SetDefaultWallet(_ context.Context, wallet model.WalletRecord) error {
	logging.Infof("set default wallet %q requested; no backend configured", wallet.Name)
	return ErrNoBackend
}

func (NoopActions) DeleteWallet(_ context.Context, wallet model.WalletRecord) error {
	logging.Infof("delete wallet %q requested; no backend configured", wallet.Name)
	return ErrNoBackend
}

// Request is an action call bound to a snapshot of the page. It is safe to
// run off the UI update loop.
type Request func(ctx context.Context) error

// SaveProfile snapshots the profile for Actions.SaveProfile.
func (p *Page) SaveProfile() Request {
	fields, actions := p.profile, p.actions
	return func(ctx context.Context) error {
		return actions.SaveProfile(ctx, fields)
	}
}

// SaveNotifications snapshots the preferences for Actions.SaveNotifications.
func (p *Page) SaveNotifications() Request {
	prefs, actions := p.notifications, p.actions
	return func(ctx context.Context) error {
		return actions.SaveNotifications(ctx, prefs)
	}
}

// AddWallet binds draft to Actions.AddWallet. The wallet list is not changed.
func (p *Page) AddWallet(draft model.WalletDraft) Request {
	actions := p.actions
	return func(ctx context.Context) error {
		return actions.AddWallet(ctx, draft)
	}
}

// EditWallet binds wallet i to Actions.EditWallet.
func (p *Page) EditWallet(i int) (Request, error) {
	return p.walletRequest(i, p.actions.EditWallet)
}

// SetDefaultWallet binds wallet i to Actions.SetDefaultWallet.
func (p *Page) SetDefaultWallet(i int) (Request, error) {
	return p.walletRequest(i, p.actions.SetDefaultWallet)
}

// DeleteWallet binds wallet i to Actions.DeleteWallet.
func (p *Page) DeleteWallet(i int) (Request, error) {
	return p.walletRequest(i, p.actions.DeleteWallet)
}

func (p *Page) walletRequest(i int, fn func(context.Context, model.WalletRecord) error) (Request, error) {
	w, err := p.Wallet(i)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context) error {
		return fn(ctx, w)
	}, nil
}
