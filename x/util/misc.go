// Package util has small helpers shared by the binaries
package util

import (
	"runtime/debug"
)

// GetGitHash returns the git hash of the current build.
func GetGitHash() string {
	hash := "unknown"
	if info, available := debug.ReadBuildInfo(); available {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				hash = setting.Value
				break
			}
		}
	}
	return hash
}

// GetGitShortHash returns at most the first seven characters of the git hash.
func GetGitShortHash() string {
	return shorten(GetGitHash())
}

// GetVersion returns override when the build stamped one through ldflags,
// the module version otherwise.
func GetVersion(override string) string {
	if override != "" && override != "unknown" {
		return override
	}

	version := "unknown"
	if info, available := debug.ReadBuildInfo(); available && info.Main.Version != "" {
		version = info.Main.Version
	}
	return version
}

// GetFullVersion returns version and short hash, e.g. v1.2.0-1a2b3c4
func GetFullVersion(override string) string {
	return GetVersion(override) + "-" + GetGitShortHash()
}

func shorten(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
