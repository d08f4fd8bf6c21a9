// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package tabs

import (
	"github.com/blockbatch/settings/ui/tui/models/components/stack"
	"github.com/blockbatch/settings/ui/tui/util"
)

// label row plus bottom border
const height int = 2

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

func (s *sizeConfig) Calculate(_ util.Model, remainingSize int, _ int) int {
	return min(height, remainingSize)
}
