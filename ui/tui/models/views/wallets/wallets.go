// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package wallets is the panel listing the connected wallets. Copying an
// address goes to the clipboard; edit, set default, delete and add are
// handed to the page's Actions.
package wallets

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blockbatch/settings/internal/i18n"
	"github.com/blockbatch/settings/internal/model"
	"github.com/blockbatch/settings/internal/settings"
	"github.com/blockbatch/settings/ui/tui/models/components/header"
	"github.com/blockbatch/settings/ui/tui/models/components/popup"
	"github.com/blockbatch/settings/ui/tui/models/components/status"
	"github.com/blockbatch/settings/ui/tui/models/helpers/request"
	"github.com/blockbatch/settings/ui/tui/styles"
	"github.com/blockbatch/settings/ui/tui/util"
	"github.com/blockbatch/settings/util/slicest"
)

var (
	accentColor = styles.ColorAccent
	subtleColor = styles.ColorBorder

	panelStyle   = lipgloss.NewStyle().Padding(0, 1)
	defaultStyle = styles.Success
)

type Model struct {
	page   *settings.Page
	table  table.Model
	add    *addWallet
	keyMap KeyMap
	size   util.Size
}

func New(page *settings.Page) *Model {
	columns := []table.Column{
		{Title: i18n.T("wallets.col.name"), Width: 18},
		{Title: i18n.T("wallets.col.address"), Width: 15},
		{Title: i18n.T("wallets.col.network"), Width: 12},
		{Title: i18n.T("wallets.col.status"), Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(len(page.Wallets())+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(subtleColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(styles.ColorWhite).
		Background(accentColor).
		Bold(false)
	t.SetStyles(s)

	m := &Model{
		page:   page,
		table:  t,
		add:    newAddWallet(page),
		keyMap: DefaultKeyMap(),
	}
	m.rebuildRows()
	return m
}

func (m *Model) rebuildRows() {
	m.table.SetRows(slicest.Map(m.page.Wallets(), func(w model.WalletRecord) table.Row {
		return table.Row{w.Name, model.ShortAddress(w.Address), w.Network, statusLabel(w.Status)}
	}))
}

func statusLabel(s model.WalletStatus) string {
	if s == model.WalletDefault {
		return i18n.T("wallets.status.default")
	}
	return i18n.T("wallets.status.connected")
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.table.SetWidth(max(m.size.Width-panelStyle.GetHorizontalFrameSize(), 0))
		m.table.SetHeight(max(min(len(m.page.Wallets())+2, m.size.Height-lipgloss.Height(m.heading())), 1))
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keyMap.Copy):
			return m.copyAddress()
		case key.Matches(msg, m.keyMap.QR):
			return m.showQRCode()
		case key.Matches(msg, m.keyMap.Add):
			return popup.OpenWithCallback(util.ModelPointer(m.add), m.addClosed)
		case key.Matches(msg, m.keyMap.Edit):
			return m.send(m.page.EditWallet)
		case key.Matches(msg, m.keyMap.SetDefault):
			return m.send(m.page.SetDefaultWallet)
		case key.Matches(msg, m.keyMap.Delete):
			return m.send(m.page.DeleteWallet)
		}
	}

	return util.UpdateTeaModelInplace(msg, &m.table)
}

func (m *Model) addClosed(*util.Model) tea.Cmd {
	if m.add.hasDraft() {
		return status.Notice(i18n.T("wallets.draft_kept"))
	}
	return nil
}

func (m *Model) copyAddress() tea.Cmd {
	req, w, err := m.page.CopyAddressRequest(m.table.Cursor())
	if err != nil {
		return status.Error(err.Error())
	}
	return request.Send(req, i18n.T("status.copied", w.Name), i18n.T("status.copy_failed"))
}

func (m *Model) showQRCode() tea.Cmd {
	w, err := m.page.Wallet(m.table.Cursor())
	if err != nil {
		return status.Error(err.Error())
	}
	return popup.Open(util.ModelPointer(newQRCode(w)))
}

func (m *Model) send(bind func(int) (settings.Request, error)) tea.Cmd {
	req, err := bind(m.table.Cursor())
	if err != nil {
		return status.Error(err.Error())
	}
	return request.Send(req, "", "")
}

func (m Model) heading() string {
	return header.Section(i18n.T("wallets.title"), i18n.T("wallets.subtitle"))
}

func (m Model) View() string {
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.heading(),
		m.table.View(),
		"",
		m.legend(),
	))
}

// legend spells out the full address of the selected wallet, which the
// table shortens.
func (m Model) legend() string {
	w, err := m.page.Wallet(m.table.Cursor())
	if err != nil {
		return ""
	}
	line := w.Address
	if w.IsDefault() {
		line += "  " + defaultStyle.Render("● "+statusLabel(w.Status))
	}
	return line
}

func (m *Model) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	m.table.Focus()
	return util.AnnounceKeyMapCmd(baseKeyMap, m.keyMap)
}

func (m *Model) Blur() {
	m.table.Blur()
}

// the table takes no text input
func (m *Model) CapturesText() bool { return false }

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
