// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package keyhelp

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ShortHelpView renders bindings on one line and replaces whatever does not
// fit into m.Width with an ellipsis. Unlike help.Model.ShortHelpView it does
// not emit separators for disabled bindings.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)

	var items []string
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		var sep string
		if len(items) > 0 {
			sep = separator
		}
		items = append(items, sep+
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)+" "+
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc))
	}

	return strings.Join(fit(items, m.Width, ellipsis(m)), "")
}

// FullHelpView renders one column per binding group, clipped to m.Width.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	var cols []string
	for _, group := range groups {
		if !slices.ContainsFunc(group, key.Binding.Enabled) {
			continue
		}
		var keys, descs []string
		for _, binding := range group {
			if binding.Enabled() {
				keys = append(keys, binding.Help().Key)
				descs = append(descs, binding.Help().Desc)
			}
		}
		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descs...)),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, fit(cols, m.Width, ellipsis(m))...)
}

func ellipsis(m help.Model) string {
	return " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
}

// fit keeps the leading parts that fit into width. When something had to be
// dropped, tail is appended if there is still room for it.
func fit(parts []string, width int, tail string) []string {
	if width <= 0 {
		return parts
	}
	tailLen := lipgloss.Width(tail)
	used := 0
	var out []string
	for i, part := range parts {
		w := lipgloss.Width(part)
		last := i == len(parts)-1
		if (last && used+w <= width) || (!last && used+w+tailLen <= width) {
			out = append(out, part)
			used += w
			continue
		}
		if used+tailLen <= width {
			out = append(out, tail)
		}
		break
	}
	return out
}
