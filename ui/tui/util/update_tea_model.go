// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package util

import (
	tea "github.com/charmbracelet/bubbletea"
)

// UpdateTeaModelInplace updates a bubbles style model, one whose Update
// returns a new copy of itself, and stores the result back into model.
func UpdateTeaModelInplace[M any](msg tea.Msg, model *M) tea.Cmd {
	var modelAny any = *model

	if modelUpdatable, ok := modelAny.(updatableSelf[M]); ok {
		modelUpdated, cmd := modelUpdatable.Update(msg)
		*model = modelUpdated
		return cmd
	}

	if modelUpdatable, ok := modelAny.(updatableTea); ok {
		modelUpdated, cmd := modelUpdatable.Update(msg)
		if modelUpdated, ok := modelUpdated.(M); ok {
			*model = modelUpdated
		}
		return cmd
	}

	// no supported update method
	return nil
}

type updatableTea interface {
	Update(tea.Msg) (tea.Model, tea.Cmd)
}
type updatableSelf[T any] interface {
	Update(tea.Msg) (T, tea.Cmd)
}
