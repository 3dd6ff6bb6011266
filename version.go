package main

import (
	"fmt"
	"runtime/debug"
)

// version is set at link time for releases.
var version string

// versionString returns the version, falling back to the vcs revision.
func versionString() string {
	if version != "" {
		return "snestor " + version
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "snestor (local)"
	}
	var revision string
	modified := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if revision == "" {
		return fmt.Sprintf("snestor (unreleased, %s)", info.GoVersion)
	}
	if modified {
		revision += "+dirty"
	}
	return fmt.Sprintf("snestor (unreleased, %s, %s)", revision, info.GoVersion)
}
