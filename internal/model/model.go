// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the data shown and edited on the settings page:
// tabs, profile fields, notification preferences and wallet records.
package model // import "github.com/blockbatch/settings/internal/model"

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTab is returned when a tab id cannot be resolved.
var ErrUnknownTab = errors.New("unknown tab")

// ErrInvalidOption is returned when a value is outside an enumeration.
var ErrInvalidOption = errors.New("invalid option")

// Tab identifies one section of the settings page.
type Tab string

const (
	TabProfile       Tab = "profile"
	TabNotifications Tab = "notifications"
	TabWallets       Tab = "wallets"
	TabAPIKeys       Tab = "api"
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabProfile, TabNotifications, TabWallets, TabAPIKeys}

// DefaultTab is the tab shown when nothing else is configured.
const DefaultTab = TabNotifications

// ParseTab resolves a tab id case-insensitively. "apikeys" and "api-keys"
// are accepted as aliases of "api".
func ParseTab(s string) (Tab, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "profile":
		return TabProfile, nil
	case "notifications":
		return TabNotifications, nil
	case "wallets":
		return TabWallets, nil
	case "api", "apikeys", "api-keys", "api_keys":
		return TabAPIKeys, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// Index returns the display position of t, or -1.
func (t Tab) Index() int {
	for i, tab := range Tabs {
		if tab == t {
			return i
		}
	}
	return -1
}

// LabelID is the i18n message id of the tab label.
func (t Tab) LabelID() string {
	return "tab." + string(t)
}
