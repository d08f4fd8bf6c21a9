// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package notifications is the panel for email and push preferences and
// their delivery schedule.
package notifications

import (
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

var panelStyle = lipgloss.NewStyle().Padding(0, 1)

type Model struct {
	page *settings.Page
	form form.Form[model.NotificationPreferences]
	size util.Size
}

type opt = form.NewOpt[model.NotificationPreferences]

func New(page *settings.Page) *Model {
	m := &Model{page: page}

	opts := []opt{form.WithInput[model.NotificationPreferences]("", forminput.NewHeading(i18n.T("notifications.email")))}
	opts = append(opts, slicest.Map(model.EmailPrefs, func(p model.EmailPref) opt {
		return toggle(string(p))
	})...)
	opts = append(opts, form.WithInput[model.NotificationPreferences]("", forminput.NewHeading(i18n.T("notifications.push"))))
	opts = append(opts, slicest.Map(model.PushPrefs, func(p model.PushPref) opt {
		return toggle(string(p))
	})...)
	opts = append(opts,
		form.WithInput[model.NotificationPreferences]("", forminput.NewHeading(i18n.T("notifications.delivery"))),
		form.WithRow[model.NotificationPreferences](
			form.Field{Id: "frequency", Input: forminput.NewSelect(i18n.T("notifications.frequency"),
				slicest.Map(model.Frequencies, func(f model.Frequency) forminput.Option {
					return forminput.Option{Value: string(f), Label: i18n.T("notifications.frequency." + string(f))}
				})...,
			)},
			form.Field{Id: "quiet_hours", Input: forminput.NewSelect(i18n.T("notifications.quiet_hours"),
				slicest.Map(model.QuietHoursOptions, func(q model.QuietHours) forminput.Option {
					return forminput.Option{Value: string(q), Label: i18n.T("notifications.quiet_hours." + string(q))}
				})...,
			)},
		),
		form.WithInput[model.NotificationPreferences]("", forminput.NewButton(i18n.T("notifications.save"), false)),
		form.WithOnChange[model.NotificationPreferences](m.onChange),
		form.WithOnSubmit(m.onSubmit),
	)

	m.form = form.New(opts...)
	if err := m.form.Set(page.Notifications()); err != nil {
		logging.Warnf("notifications: could not fill form: %v", err)
	}
	return m
}

func toggle(id string) opt {
	return form.WithInput[model.NotificationPreferences](id, forminput.NewToggle(
		i18n.T("notifications."+id),
		i18n.T("notifications."+id+".desc"),
	))
}

func (m *Model) onChange(id string, value any) tea.Cmd {
	if err := m.page.SetNotificationValue(id, value); err != nil {
		logging.Warnf("notifications: %v", err)
		return status.Error(err.Error())
	}
	return nil
}

func (m *Model) onSubmit(_ model.NotificationPreferences, err error) tea.Cmd {
	if err != nil {
		return status.Error(err.Error())
	}
	return request.Send(m.page.SaveNotifications(), "", "")
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		heading := lipgloss.Height(m.heading())
		return util.UpdateTeaModelInplace(tea.WindowSizeMsg{
			Width:  max(m.size.Width-panelStyle.GetHorizontalFrameSize(), 0),
			Height: max(m.size.Height-heading, 0),
		}, &m.form)
	}
	return util.UpdateTeaModelInplace(msg, &m.form)
}

func (m Model) heading() string {
	return header.Section(i18n.T("notifications.title"), i18n.T("notifications.subtitle"))
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

// the panel has no text fields
func (m *Model) CapturesText() bool { return false }

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
