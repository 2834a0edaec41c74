// Package misc holds small helpers describing the program itself.
package misc

import "runtime/debug"

const appName = "hdoc"

// GetAppName returns program name to be used in logs, reports and generated
// file names.
func GetAppName() string {
	return appName
}

// GetVersion returns program version as recorded by the build system.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns VCS revision the program was built from.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
