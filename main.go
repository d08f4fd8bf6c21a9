// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for BlockBatch settings.
//
// Usage:
//
//	go run . [flags]
//	./blockbatch [flags]
//
// This launches the settings TUI. See --help for options.
package main

import (
	"os"

	"github.com/blockbatch/settings/internal/logging"
	"github.com/blockbatch/settings/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("blockbatch error: %v", err)
		os.Exit(1)
	}
}
