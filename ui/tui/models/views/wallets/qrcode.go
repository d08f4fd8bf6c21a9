// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package wallets

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/blockbatch/settings/internal/i18n"
	"github.com/blockbatch/settings/internal/logging"
	"github.com/blockbatch/settings/internal/model"
	"github.com/blockbatch/settings/ui/tui/styles"
	"github.com/blockbatch/settings/ui/tui/util"
)

// qrCode is the popup showing a wallet address as a scannable code.
type qrCode struct {
	wallet model.WalletRecord
	code   string
	err    error
}

func newQRCode(w model.WalletRecord) *qrCode {
	q := &qrCode{wallet: w}
	qr, err := qrcode.New(w.Address, qrcode.Medium)
	if err != nil {
		logging.Warnf("wallets: qr code for %s: %v", w.Name, err)
		q.err = err
		return q
	}
	q.code = renderHalfBlocks(qr.Bitmap())
	return q
}

// renderHalfBlocks draws two bitmap rows per text line. Light modules are
// drawn filled so the code reads on dark terminals, as qrencode -t UTF8
// does.
func renderHalfBlocks(bitmap [][]bool) string {
	var b strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range bitmap[y] {
			top := !bitmap[y][x]
			bottom := y+1 < len(bitmap) && !bitmap[y+1][x]
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
	}
	return b.String()
}

func (q *qrCode) Init() tea.Cmd         { return nil }
func (q *qrCode) Update(tea.Msg) tea.Cmd { return nil }
func (q *qrCode) Blur()                  {}

func (q *qrCode) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	return util.AnnounceKeyMapCmd(baseKeyMap)
}

func (q *qrCode) View() string {
	body := q.code
	if q.err != nil {
		body = styles.Error.Render(i18n.T("wallets.qr.error", q.err))
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		popupTitleStyle.Render(i18n.T("wallets.qr.title", q.wallet.Name)),
		body,
		q.wallet.Address,
	)
}

// *qrCode implements util.Model
var _ util.Model = (*qrCode)(nil)
