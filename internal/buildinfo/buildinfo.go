// Package buildinfo carries the version stamped in by the release build:
//
//	go build -ldflags "-X mathgraph/internal/buildinfo.Version=v1.2.0 -X mathgraph/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "fmt"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title and status bar.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns the full build description for the startup log.
func String() string {
	return fmt.Sprintf("mathgraph %s (commit %s, built %s)", orUnknown(Version), orUnknown(Commit), orUnknown(Date))
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
