// Package misc keeps small program-wide helpers which do not belong anywhere else.
package misc

import (
	"runtime/debug"
)

const appName = "pbc"

// GetAppName returns short program name used in logs, reports and temporary files.
func GetAppName() string {
	return appName
}

// GetVersion returns module version recorded by the Go toolchain, "devel" when
// built from a working tree.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "devel"
}

// GetGitHash returns VCS revision the binary was built from, if stamped.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				if len(s.Value) > 12 {
					return s.Value[:12]
				}
				return s.Value
			}
		}
	}
	return "unknown"
}
