// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	tea "github.com/charmbracelet/bubbletea"
)

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) Form[T] {
	form := Form[T]{keyMap: DefaultKeyMap()}
	for _, opt := range opts {
		opt(&form)
	}
	form.activeIndex = form.nextFocusable(-1, 1)
	return form
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

func WithOnCancel[T any](fn func() tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnCancel = fn
	}
}

// WithOnChange calls fn with the field id and new value whenever an input
// changes its value.
func WithOnChange[T any](fn func(id string, value any) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnChange = fn
	}
}

func WithResetAfterSubmit[T any]() NewOpt[T] {
	return func(form *Form[T]) {
		form.ResetAfterSubmit = true
	}
}

// Field pairs an input with the mapstructure key it reads and writes. An
// empty id keeps the input out of Get and Set.
type Field struct {
	Id    string
	Input FormInput
}

func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return WithRow[T](Field{Id: id, Input: input})
}

// WithRow places several inputs side by side.
func WithRow[T any](fields ...Field) NewOpt[T] {
	return func(form *Form[T]) {
		var row formRow
		for _, f := range fields {
			row.items = append(row.items, len(form.items))
			form.items = append(form.items, formItem{id: f.Id, input: f.Input})
		}
		form.rows = append(form.rows, row)
	}
}
