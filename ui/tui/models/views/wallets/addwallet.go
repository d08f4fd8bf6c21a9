// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package wallets

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blockbatch/settings/internal/i18n"
	"github.com/blockbatch/settings/internal/model"
	"github.com/blockbatch/settings/internal/settings"
	"github.com/blockbatch/settings/ui/tui/models/components/popup"
	"github.com/blockbatch/settings/ui/tui/models/components/status"
	"github.com/blockbatch/settings/ui/tui/models/helpers/form"
	forminput "github.com/blockbatch/settings/ui/tui/models/helpers/form/input"
	"github.com/blockbatch/settings/ui/tui/models/helpers/request"
	"github.com/blockbatch/settings/ui/tui/util"
)

const addWalletWidth int = 56

var popupTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor).MarginBottom(1)

// addWallet is the popup collecting a WalletDraft. The fields are not
// validated. The draft survives a cancel and is cleared after a save.
type addWallet struct {
	page *settings.Page
	form form.Form[model.WalletDraft]
}

func newAddWallet(page *settings.Page) *addWallet {
	a := &addWallet{page: page}
	a.form = form.New(
		form.WithInput[model.WalletDraft]("name", forminput.NewText(i18n.T("wallets.field.name"), "Payroll Wallet")),
		form.WithInput[model.WalletDraft]("address", forminput.NewText(i18n.T("wallets.field.address"), "0x...")),
		form.WithInput[model.WalletDraft]("network", forminput.NewText(i18n.T("wallets.field.network"), "Ethereum")),
		form.WithRow[model.WalletDraft](
			form.Field{Input: forminput.NewButton(i18n.T("wallets.save"), false)},
			form.Field{Input: forminput.NewCancelButton(i18n.T("wallets.cancel"))},
		),
		form.WithOnSubmit(a.onSubmit),
		form.WithOnCancel[model.WalletDraft](popup.Close),
		form.WithResetAfterSubmit[model.WalletDraft](),
	)
	return a
}

func (a *addWallet) onSubmit(draft model.WalletDraft, err error) tea.Cmd {
	if err != nil {
		return status.Error(err.Error())
	}
	return tea.Batch(popup.Close(), request.Send(a.page.AddWallet(draft), "", ""))
}

// hasDraft reports whether any field holds text.
func (a *addWallet) hasDraft() bool {
	draft, err := a.form.Get()
	return err == nil && draft != (model.WalletDraft{})
}

func (a *addWallet) Init() tea.Cmd {
	return a.form.Init()
}

func (a *addWallet) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		title := lipgloss.Height(popupTitleStyle.Render(i18n.T("wallets.add.title")))
		return util.UpdateTeaModelInplace(tea.WindowSizeMsg{
			Width:  min(msg.Width, addWalletWidth),
			Height: max(msg.Height-title, 0),
		}, &a.form)
	}
	return util.UpdateTeaModelInplace(msg, &a.form)
}

func (a *addWallet) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		popupTitleStyle.Render(i18n.T("wallets.add.title")),
		a.form.View(),
	)
}

func (a *addWallet) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	return a.form.Focus(baseKeyMap)
}

func (a *addWallet) Blur() {
	a.form.Blur()
}

// *addWallet implements util.Model
var _ util.Model = (*addWallet)(nil)
