// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package profile is the panel for personal and company details and the
// two security toggles.
package profile

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blockbatch/settings/internal/i18n"
	"github.com/blockbatch/settings/internal/logging"
	"github.com/blockbatch/settings/internal/model"
	"github.com/blockbatch/settings/internal/settings"
	"github.com/blockbatch/settings/ui/tui/models/components/header"
	"github.com/blockbatch/settings/ui/tui/models/components/status"
	"github.com/blockbatch/settings/ui/tui/models/helpers/form"
	forminput "github.com/blockbatch/settings/ui/tui/models/helpers/form/input"
	"github.com/blockbatch/settings/ui/tui/models/helpers/request"
	"github.com/blockbatch/settings/ui/tui/util"
	"github.com/blockbatch/settings/util/slicest"
)

const suggestionCount = 3

var panelStyle = lipgloss.NewStyle().Padding(0, 1)

type Model struct {
	page *settings.Page
	form form.Form[model.ProfileFields]
	size util.Size
}

func New(page *settings.Page) *Model {
	m := &Model{page: page}

	opts := append(textRows(),
		form.WithInput[model.ProfileFields]("", forminput.NewHeading(i18n.T("profile.security"))),
		form.WithInput[model.ProfileFields](model.ToggleTwoFactor, forminput.NewToggle(
			i18n.T("profile.two_factor"),
			i18n.T("profile.two_factor.desc"),
		)),
		form.WithInput[model.ProfileFields](model.ToggleSessionTimeout, forminput.NewToggle(
			i18n.T("profile.session_timeout"),
			i18n.T("profile.session_timeout.desc"),
		)),
		form.WithInput[model.ProfileFields]("", forminput.NewButton(i18n.T("profile.save"), false)),
		form.WithOnChange[model.ProfileFields](m.onChange),
		form.WithOnSubmit(m.onSubmit),
	)
	m.form = form.New(opts...)
	if err := m.form.Set(page.Profile()); err != nil {
		logging.Warnf("profile: could not fill form: %v", err)
	}
	return m
}

var placeholders = map[model.ProfileField]string{
	model.FieldName:        "Jane Doe",
	model.FieldEmail:       "jane@example.com",
	model.FieldPhone:       "+1 555 0100",
	model.FieldTimezone:    "Europe/Berlin",
	model.FieldCompanyName: "BlockBatch Ltd.",
	model.FieldWebsite:     "https://example.com",
}

// textRows lays out the text fields two per row in display order.
func textRows() []form.NewOpt[model.ProfileFields] {
	var rows []form.NewOpt[model.ProfileFields]
	for chunk := range slices.Chunk(model.ProfileFieldsOrder, 2) {
		rows = append(rows, form.WithRow[model.ProfileFields](slicest.Map(chunk, textField)...))
	}
	return rows
}

func textField(field model.ProfileField) form.Field {
	input := forminput.NewText(i18n.T("profile.field."+string(field)), placeholders[field])
	if field == model.FieldTimezone {
		input.Hint = timezoneHint
	}
	return form.Field{Id: string(field), Input: input}
}

func timezoneHint(value string) string {
	suggestions := settings.SuggestTimezones(value, suggestionCount)
	if len(suggestions) == 0 {
		return ""
	}
	return i18n.T("profile.timezone_hint", strings.Join(suggestions, ", "))
}

func (m *Model) onChange(id string, value any) tea.Cmd {
	if err := m.page.SetProfileValue(id, value); err != nil {
		logging.Warnf("profile: %v", err)
		return status.Error(err.Error())
	}
	return nil
}

func (m *Model) onSubmit(_ model.ProfileFields, err error) tea.Cmd {
	if err != nil {
		return status.Error(err.Error())
	}
	return request.Send(m.page.SaveProfile(), "", "")
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return util.UpdateTeaModelInplace(m.formSize(), &m.form)
	}
	return util.UpdateTeaModelInplace(msg, &m.form)
}

func (m Model) heading() string {
	return header.Section(i18n.T("profile.title"), i18n.T("profile.subtitle"))
}

func (m Model) formSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  max(m.size.Width-panelStyle.GetHorizontalFrameSize(), 0),
		Height: max(m.size.Height-lipgloss.Height(m.heading()), 0),
	}
}

func (m Model) View() string {
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, m.heading(), m.form.View()))
}

func (m *Model) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	return m.form.Focus(baseKeyMap)
}

func (m *Model) Blur() {
	m.form.Blur()
}

// CapturesText reports whether a text field is being edited.
func (m *Model) CapturesText() bool {
	return m.form.CapturesText()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
