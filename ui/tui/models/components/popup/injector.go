// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package popup overlays modal models on top of a child view.
package popup

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/blockbatch/settings/internal/i18n"
	"github.com/blockbatch/settings/ui/tui/styles"
	"github.com/blockbatch/settings/ui/tui/util"
)

const (
	reservedHeight int = 2
	reservedWidth  int = 6
)

type KeyMap struct {
	Close key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding  { return []key.Binding{km.Close} }
func (km KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{km.Close}} }

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", i18n.T("key.close")),
		),
	}
}

type popup struct {
	model   *util.Model
	onClose func(*util.Model) tea.Cmd
}

// Injector renders its child and, while popups are open, the topmost popup
// centered above a dimmed copy of it. Input goes to the topmost popup only.
type Injector struct {
	child      *util.Model
	popups     []popup
	size       util.Size
	keyMap     KeyMap
	baseKeyMap help.KeyMap
	focused    bool
}

func NewInjector(child *util.Model) *Injector {
	return &Injector{
		child:  child,
		keyMap: DefaultKeyMap(),
	}
}

func (m Injector) Init() tea.Cmd {
	return (*m.child).Init()
}

func (m *Injector) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		if len(m.popups) > 0 {
			return tea.Batch(
				(*m.activeModel()).Update(m.popupSize()),
				(*m.child).Update(msg),
			)
		}
		return (*m.child).Update(msg)
	}

	switch msg := msg.(type) {
	case openMsg:
		return m.open(popup{
			model:   msg.Model,
			onClose: msg.OnClose,
		})
	case closeMsg:
		return m.close()
	case tea.KeyMsg:
		if len(m.popups) > 0 && key.Matches(msg, m.keyMap.Close) {
			return m.close()
		}
		return (*m.activeModel()).Update(msg)
	}

	// non input messages reach the child even below a popup
	if len(m.popups) > 0 {
		return tea.Batch(
			(*m.activeModel()).Update(msg),
			(*m.child).Update(msg),
		)
	}
	return (*m.child).Update(msg)
}

func (m Injector) View() string {
	childView := (*m.child).View()
	if len(m.popups) == 0 {
		return childView
	}

	popupView := lipgloss.
		NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.ColorAccent).
		Margin(0, 1).
		Render((*m.activeModel()).View())

	childView = lipgloss.
		NewStyle().
		Foreground(lipgloss.AdaptiveColor{
			Light: "#DDDADA",
			Dark:  "#3C3C3C",
		}).
		Render(ansi.Strip(childView))

	return overlay(childView, popupView)
}

func (m *Injector) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	m.focused, m.baseKeyMap = true, baseKeyMap
	return m.focusActiveModel()
}

func (m *Injector) Blur() {
	m.focused = false
	(*m.activeModel()).Blur()
}

// *Injector implements util.Model
var _ util.Model = (*Injector)(nil)

// Open reports whether a popup is shown.
func (m *Injector) Open() bool {
	return len(m.popups) > 0
}

func (m *Injector) open(p popup) tea.Cmd {
	(*m.activeModel()).Blur()
	m.popups = append(m.popups, p)
	return tea.Batch(
		(*p.model).Init(),
		(*p.model).Update(m.popupSize()),
		m.focusActiveModel(),
	)
}

func (m *Injector) close() tea.Cmd {
	if len(m.popups) == 0 {
		return nil
	}
	top := m.popups[len(m.popups)-1]
	(*top.model).Blur()
	m.popups = m.popups[:len(m.popups)-1]

	var onCloseCmd tea.Cmd
	if top.onClose != nil {
		onCloseCmd = top.onClose(top.model)
	}
	return tea.Batch(m.focusActiveModel(), onCloseCmd)
}

func (m *Injector) activeModel() *util.Model {
	if len(m.popups) > 0 {
		return m.popups[len(m.popups)-1].model
	}
	return m.child
}

func (m *Injector) focusActiveModel() tea.Cmd {
	if !m.focused {
		return nil
	}
	if len(m.popups) > 0 {
		return (*m.activeModel()).Focus(util.MergeKeyMaps(m.baseKeyMap, m.keyMap))
	}
	return (*m.child).Focus(m.baseKeyMap)
}

func (m *Injector) popupSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  max(m.size.Width-reservedWidth, 0),
		Height: max(m.size.Height-reservedHeight, 0),
	}
}

// overlay draws fg centered on top of bg, line by line.
func overlay(bg, fg string) string {
	bgWidth, bgHeight := lipgloss.Size(bg)
	fg = lipgloss.NewStyle().MaxWidth(bgWidth).MaxHeight(bgHeight).Render(fg)
	fgWidth, _ := lipgloss.Size(fg)

	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	offsetLeft := (bgWidth - fgWidth) / 2
	offsetTop := (bgHeight - len(fgLines)) / 2

	for i, line := range fgLines {
		row := i + offsetTop
		if row < 0 || row >= len(bgLines) {
			continue
		}
		left := ansi.Truncate(bgLines[row], offsetLeft, "")
		right := ansi.TruncateLeft(bgLines[row], offsetLeft+fgWidth, "")
		// pad short background lines so the popup keeps its column
		if pad := offsetLeft - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		bgLines[row] = left + line + right
	}

	return strings.Join(bgLines, "\n")
}
