// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/blockbatch/settings/buildvars"
	"github.com/blockbatch/settings/internal/i18n"
)

const modulePath = "github.com/blockbatch/settings"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("cli.version.short"),
		Args:  cobra.NoArgs,
		// version must work with a broken config
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion(v, commit, date string) string {
	if commit != "" && commit != "dev" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " built: " + date
	}
	return v
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (version, commit, date string) {
	version = buildvars.VersionOrDefault("dev")
	commit = buildvars.Commit
	date = buildvars.BuildDate
	if commit == "" {
		commit = "dev"
	}

	if info == nil {
		info, _ = debug.ReadBuildInfo()
	}

	if info != nil {
		if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		// Some build paths only record the module as a dependency.
		if version == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					version = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" && commit == "dev" {
					commit = s.Value
				}
			case "vcs.time":
				if s.Value != "" && date == "" {
					date = s.Value
				}
			}
		}
	}

	if version == "dev" && commit != "dev" {
		version = commit
	}
	return version, commit, date
}
