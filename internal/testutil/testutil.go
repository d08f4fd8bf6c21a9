// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package testutil holds test doubles and helpers for driving Bubble Tea
// models in tests.
package testutil

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockbatch/settings/internal/model"
)

// Messages runs cmd and returns every message it produces, expanding
// batches depth first.
func Messages(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, Messages(c)...)
	}
	return out
}

// Find returns the first message of type T produced by cmd.
func Find[T any](cmd tea.Cmd) (T, bool) {
	for _, msg := range Messages(cmd) {
		if t, ok := msg.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Resolve runs cmd like Messages and passes each message to handle. When
// handle returns a command, that command's messages replace the message.
func Resolve(cmd tea.Cmd, handle func(tea.Msg) tea.Cmd) []tea.Msg {
	var out []tea.Msg
	for _, msg := range Messages(cmd) {
		if next := handle(msg); next != nil {
			out = append(out, Resolve(next, handle)...)
			continue
		}
		out = append(out, msg)
	}
	return out
}

// Runes is a key press typing s.
func Runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// Key is a key press of a special key.
func Key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// Clipboard records what was written to it.
type Clipboard struct {
	Text   string
	Writes int
	Err    error
}

func (c *Clipboard) WriteAll(text string) error {
	if c.Err != nil {
		return c.Err
	}
	c.Text = text
	c.Writes++
	return nil
}

// Actions records every call and returns Err from each of them.
type Actions struct {
	Err error

	Profiles      []model.ProfileFields
	Notifications []model.NotificationPreferences
	Drafts        []model.WalletDraft
	Edited        []model.WalletRecord
	Defaults      []model.WalletRecord
	Deleted       []model.WalletRecord
}

func (a *Actions) SaveProfile(_ context.Context, fields model.ProfileFields) error {
	a.Profiles = append(a.Profiles, fields)
	return a.Err
}

func (a *Actions) SaveNotifications(_ context.Context, prefs model.NotificationPreferences) error {
	a.Notifications = append(a.Notifications, prefs)
	return a.Err
}

func (a *Actions) AddWallet(_ context.Context, draft model.WalletDraft) error {
	a.Drafts = append(a.Drafts, draft)
	return a.Err
}

func (a *Actions) EditWallet(_ context.Context, w model.WalletRecord) error {
	a.Edited = append(a.Edited, w)
	return a.Err
}

func (a *Actions) SetDefaultWallet(_ context.Context, w model.WalletRecord) error {
	a.Defaults = append(a.Defaults, w)
	return a.Err
}

func (a *Actions) DeleteWallet(_ context.Context, w model.WalletRecord) error {
	a.Deleted = append(a.Deleted, w)
	return a.Err
}
