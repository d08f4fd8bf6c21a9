// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package header

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/blockbatch/settings/ui/tui/models/components/stack"
	"github.com/blockbatch/settings/ui/tui/util"
)

// below this terminal height the header gives its rows to the content
const minTotalHeight int = 16

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

func (s *sizeConfig) Calculate(model util.Model, _ int, totalSize int) int {
	if totalSize < minTotalHeight {
		return 0
	}
	if header, ok := model.(*Model); ok {
		return lipgloss.Height(header.view())
	}
	return 2
}
