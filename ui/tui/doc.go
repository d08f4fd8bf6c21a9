// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs the settings page as a Bubble Tea program. Presentation
// and input handling live here; page state and actions are provided by
// internal/settings.
package tui
