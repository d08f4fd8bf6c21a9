// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root assembles the settings page: header, tab bar, the panel of
// the selected tab, the status line and the key help footer.
package root

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockbatch/settings/buildvars"
	"github.com/blockbatch/settings/internal/i18n"
	"github.com/blockbatch/settings/internal/model"
	"github.com/blockbatch/settings/internal/settings"
	"github.com/blockbatch/settings/ui/tui/models/components/header"
	"github.com/blockbatch/settings/ui/tui/models/components/popup"
	"github.com/blockbatch/settings/ui/tui/models/components/stack"
	"github.com/blockbatch/settings/ui/tui/models/components/status"
	"github.com/blockbatch/settings/ui/tui/models/components/switcher"
	"github.com/blockbatch/settings/ui/tui/models/components/tabs"
	"github.com/blockbatch/settings/ui/tui/models/helpers/request"
	windowtitle "github.com/blockbatch/settings/ui/tui/models/helpers/title"
	"github.com/blockbatch/settings/ui/tui/models/views/footer"
	"github.com/blockbatch/settings/ui/tui/models/views/notifications"
	"github.com/blockbatch/settings/ui/tui/models/views/placeholder"
	"github.com/blockbatch/settings/ui/tui/models/views/profile"
	"github.com/blockbatch/settings/ui/tui/models/views/wallets"
	"github.com/blockbatch/settings/ui/tui/util"
	"github.com/blockbatch/settings/util/slicest"
)

const title string = "BlockBatch"

type textCapturer interface {
	CapturesText() bool
}

type Model struct {
	page *settings.Page

	stack    *stack.Model
	tabs     *tabs.Model
	switcher *switcher.Model
	injector *popup.Injector
	status   *status.Model
	footer   *util.Model

	defaultKeys KeyMap
	typingKeys  KeyMap
	// typing is set while printable keys belong to an input, modal while a
	// popup is open.
	typing bool
	modal  bool

	size         util.Size
	titleHandler *windowtitle.TitleHandler
	requests     *request.Handler
}

func New(ctx context.Context, page *settings.Page) *Model {
	m := &Model{
		page:        page,
		defaultKeys: DefaultKeyMap(),
		typingKeys:  TypingKeyMap(),
		status:      status.New(),
		footer:      util.ModelPointer(footer.New()),
		requests:    request.NewHandler(ctx),
		titleHandler: windowtitle.NewHandler(
			fmt.Sprintf("%s %s", title, buildvars.VersionOrDefault("dev")),
			" | ",
		),
	}

	m.tabs = tabs.New(slicest.Map(model.Tabs, func(tab model.Tab) tabs.Item {
		return tabs.WithItem(string(tab), i18n.T(tab.LabelID()))
	})...)
	m.switcher = switcher.New(slicest.Map(model.Tabs, func(tab model.Tab) *util.Model {
		return newPanel(settings.PanelFor(tab), page)
	})...)
	m.injector = popup.NewInjector(util.ModelPointer(m.switcher))

	if i := page.ActiveTab().Index(); i >= 0 {
		m.tabs.SetActive(i)
		m.switcher.Select(i)
	}

	m.stack = stack.New(
		stack.WithOrientation(stack.Vertical),
		stack.WithItem(util.ModelPointer(header.New(
			i18n.T("app.title"),
			i18n.T("app.subtitle"),
			buildvars.Version,
		)), header.SizeConfig, stack.DropKeys),
		stack.WithItem(util.ModelPointer(m.tabs), tabs.SizeConfig, stack.DropKeys),
		stack.WithFocusNext(),
		stack.WithItem(util.ModelPointer(m.injector), stack.VariableSize(1)),
		stack.WithItem(util.ModelPointer(m.status), status.SizeConfig, stack.DropKeys),
		stack.WithItem(m.footer, footer.SizeConfig, stack.DropKeys),
	)
	return m
}

func newPanel(panel settings.Panel, page *settings.Page) *util.Model {
	switch panel {
	case settings.PanelProfile:
		return util.ModelPointer(profile.New(page))
	case settings.PanelNotifications:
		return util.ModelPointer(notifications.New(page))
	case settings.PanelWallets:
		return util.ModelPointer(wallets.New(page))
	}
	return util.ModelPointer(placeholder.New())
}

func (m *Model) Init() tea.Cmd {
	return tea.Sequence(
		m.titleHandler.Init(),
		m.stack.Init(),
		m.stack.Focus(baseKeyMap{m}),
		windowtitle.Set(i18n.T(m.page.ActiveTab().LabelID())),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size.Update(msg)
		cmd = m.stack.Update(msg)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tabs.Selected:
		cmd = m.selectTab(msg.Index)
	default:
		cmd = m.titleHandler.Handle(msg)
		if cmd == nil {
			cmd = m.requests.Handle(msg)
		}
		if cmd == nil {
			cmd = m.stack.Update(msg)
		}
	}
	m.syncMode()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	keys := m.keyMap()
	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.Help):
		util.BorrowModelFunc(m.footer, func(f *footer.Model) {
			f.ToggleExpanded()
		})
		// the footer height changed
		return m.stack.Update(m.size.ToMsg())
	}

	if !m.modal {
		if cmd, ok := m.tabs.HandleKey(msg); ok {
			return cmd
		}
	}
	return m.stack.Update(msg)
}

func (m *Model) selectTab(i int) tea.Cmd {
	if i < 0 || i >= len(model.Tabs) {
		return nil
	}
	tab := model.Tabs[i]
	m.page.Select(tab)
	m.tabs.SetActive(i)
	return tea.Batch(
		m.switcher.Select(i),
		windowtitle.Set(i18n.T(tab.LabelID())),
		status.Clear(),
	)
}

// syncMode reads whether the active panel or a popup owns printable keys.
func (m *Model) syncMode() {
	m.modal = m.injector.Open()
	m.typing = m.modal
	if panel, ok := (*m.switcher.ActiveModel()).(textCapturer); ok && panel.CapturesText() {
		m.typing = true
	}
	m.tabs.SetTextMode(m.typing)
}

func (m *Model) keyMap() KeyMap {
	if m.typing {
		return m.typingKeys
	}
	return m.defaultKeys
}

func (m *Model) View() string {
	return m.stack.View()
}

// Page returns the page state behind the view.
func (m *Model) Page() *settings.Page {
	return m.page
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)

// baseKeyMap is handed down as the parent key map of every focused model.
// It is evaluated when the footer renders, so it follows mode changes
// without refocusing.
type baseKeyMap struct {
	m *Model
}

func (b baseKeyMap) current() help.KeyMap {
	if b.m.modal {
		return b.m.keyMap()
	}
	return util.MergeKeyMaps(b.m.keyMap(), b.m.tabs.KeyMap())
}

func (b baseKeyMap) ShortHelp() []key.Binding  { return b.current().ShortHelp() }
func (b baseKeyMap) FullHelp() [][]key.Binding { return b.current().FullHelp() }
