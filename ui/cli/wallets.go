// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/blockbatch/settings/internal/i18n"
	"github.com/blockbatch/settings/internal/model"
	"github.com/blockbatch/settings/internal/settings"
)

// fullAddressWidth is the narrowest terminal that gets untruncated
// addresses.
const fullAddressWidth = 100

func (a *app) walletsCmd() *cobra.Command {
	var copyName string
	cmd := &cobra.Command{
		Use:   "wallets",
		Short: i18n.T("cli.wallets.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page := settings.New(settings.WithClipboard(a.env.clipboard))
			if copyName != "" {
				return copyWallet(cmd.OutOrStdout(), page, copyName)
			}
			return printWallets(cmd.OutOrStdout(), page.Wallets(), a.env.width())
		},
	}
	cmd.Flags().StringVar(&copyName, "copy", "", i18n.T("cli.flag.copy"))
	return cmd
}

// findWallet matches name case-insensitively.
func findWallet(wallets []model.WalletRecord, name string) (int, error) {
	for i, w := range wallets {
		if strings.EqualFold(w.Name, strings.TrimSpace(name)) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", settings.ErrNoSuchWallet, name)
}

func copyWallet(out io.Writer, page *settings.Page, name string) error {
	i, err := findWallet(page.Wallets(), name)
	if err != nil {
		return err
	}
	w, err := page.CopyAddress(i)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, i18n.T("cli.copied", w.Name))
	return nil
}

// printWallets writes the wallet table. Addresses are shortened when the
// terminal is known to be narrow.
func printWallets(out io.Writer, wallets []model.WalletRecord, width int) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		i18n.T("wallets.col.name"),
		i18n.T("wallets.col.address"),
		i18n.T("wallets.col.network"),
		i18n.T("wallets.col.status"),
	)
	for _, wallet := range wallets {
		addr := wallet.Address
		if width > 0 && width < fullAddressWidth {
			addr = model.ShortAddress(addr)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", wallet.Name, addr, wallet.Network, statusLabel(wallet.Status))
	}
	return w.Flush()
}

func statusLabel(s model.WalletStatus) string {
	if s == model.WalletDefault {
		return i18n.T("wallets.status.default")
	}
	return i18n.T("wallets.status.connected")
}
