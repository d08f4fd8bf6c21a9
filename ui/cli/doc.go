// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the blockbatch command line using Cobra. The root
// command loads configuration, sets up logging and i18n and launches the
// TUI; subcommands print version and wallet information.
package cli
