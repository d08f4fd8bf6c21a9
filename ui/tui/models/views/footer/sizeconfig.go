// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package footer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/blockbatch/settings/ui/tui/models/components/stack"
	"github.com/blockbatch/settings/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 20 }

// help lines plus the top border
func (s *sizeConfig) Calculate(model util.Model, _ int, _ int) int {
	if footer, ok := model.(*Model); ok {
		return max(lipgloss.Height(footer.view()), 1) + 1
	}
	return 2
}
