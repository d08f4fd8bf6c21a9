// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package model

// WalletStatus is the display status of a wallet record.
type WalletStatus string

const (
	WalletDefault   WalletStatus = "Default"
	WalletConnected WalletStatus = "Connected"
)

// WalletRecord is one row of the wallet table. The address is shown and
// copied as is and never interpreted.
type WalletRecord struct {
	ID      string       // Session-scoped identifier.
	Name    string       // Display name.
	Address string       // Hex-like address string.
	Network string       // Network label, e.g. "Ethereum".
	Status  WalletStatus // Default or Connected.
}

// IsDefault reports whether w is the default wallet.
func (w WalletRecord) IsDefault() bool {
	return w.Status == WalletDefault
}

// WalletDraft is what the add-wallet form collects. Nothing is validated.
type WalletDraft struct {
	Name    string `mapstructure:"name"`
	Address string `mapstructure:"address"`
	Network string `mapstructure:"network"`
}

// SampleWallets returns the fixed wallet list shown on the page. newID is
// called once per record.
func SampleWallets(newID func() string) []WalletRecord {
	return []WalletRecord{
		{
			ID:      newID(),
			Name:    "Main Wallet",
			Address: "0x1234567890abcdef1234567890abcdef12345678",
			Network: "Ethereum",
			Status:  WalletDefault,
		},
		{
			ID:      newID(),
			Name:    "Trading Wallet",
			Address: "0xabcdef1234567890abcdef1234567890abcdef12",
			Network: "Polygon",
			Status:  WalletConnected,
		},
		{
			ID:      newID(),
			Name:    "Savings Wallet",
			Address: "0x7890abcdef1234567890abcdef1234567890abcd",
			Network: "Arbitrum",
			Status:  WalletConnected,
		},
	}
}

// ShortAddress abbreviates long addresses to "0x1234...5678".
func ShortAddress(addr string) string {
	const head, tail = 6, 4
	if len(addr) <= head+tail+3 {
		return addr
	}
	return addr[:head] + "..." + addr[len(addr)-tail:]
}
