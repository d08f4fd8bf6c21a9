// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time.
package buildvars

// Version is set at link time via `-ldflags -X github.com/blockbatch/settings/buildvars.Version=...`.
// It will be empty for local or development builds.
var Version string

// Commit and BuildDate are set the same way. The version command falls back
// to the VCS stamp of the binary when they are empty.
var (
	Commit    string
	BuildDate string
)

// VersionOrDefault returns `Version` if set, otherwise returns the provided default.
func VersionOrDefault(def string) string {
	if len(Version) > 0 {
		return Version
	}
	return def
}
