// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockbatch/settings/ui/tui/models/helpers/form"
)

// Heading is a section title inside a form. Focus never lands on it.
type Heading struct {
	Title string
}

func NewHeading(title string) *Heading {
	return &Heading{Title: title}
}

func (h *Heading) View(width int) string {
	return headingStyle.MaxWidth(max(width, 1)).Render(h.Title)
}

func (h *Heading) Skip() bool                            { return true }
func (h *Heading) Focus(help.KeyMap) tea.Cmd             { return nil }
func (h *Heading) Blur()                                 {}
func (h *Heading) Update(tea.Msg) (tea.Cmd, form.Action) { return nil, form.ActionNone }
func (h *Heading) Get() any                              { return nil }
func (h *Heading) Set(any)                               {}
func (h *Heading) Init() tea.Cmd                         { return nil }
func (h *Heading) Reset()                                {}

var _ form.FormInput = (*Heading)(nil)
var _ form.Skippable = (*Heading)(nil)
