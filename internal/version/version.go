/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build-time variables (populated via -ldflags during build). When left at
// their defaults they are filled from the module build info where possible.
var (
	// Version is the semantic version of simplecdk (e.g., "v1.0.0" or "1.0.0+a1b2c3d")
	Version = "dev"

	// GitCommit is the short git commit hash (e.g., "a1b2c3d")
	GitCommit = "unknown"

	// BuildDate is when the binary was built (e.g., "2025-01-27 14:30:45 UTC")
	BuildDate = "unknown"
)

// Runtime variables (determined at runtime)
var (
	GoVersion = runtime.Version()
	Platform  = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)

// cdkModule is the CDK library synthesized templates are produced with
const cdkModule = "github.com/aws/aws-cdk-go/awscdk/v2"

// BuildInfo describes the running binary
type BuildInfo struct {
	Version    string
	GitCommit  string
	BuildDate  string
	GoVersion  string
	Platform   string
	CDKVersion string
}

// Current returns the build information of the running binary
func Current() BuildInfo {
	bi, _ := debug.ReadBuildInfo()
	return fromBuildInfo(bi)
}

func fromBuildInfo(bi *debug.BuildInfo) BuildInfo {
	info := BuildInfo{
		Version:    Version,
		GitCommit:  GitCommit,
		BuildDate:  BuildDate,
		GoVersion:  GoVersion,
		Platform:   Platform,
		CDKVersion: "unknown",
	}
	if bi == nil {
		return info
	}

	// go install records the module version; local builds report "(devel)"
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" && setting.Value != "" {
				info.GitCommit = shortRevision(setting.Value)
			}
		case "vcs.time":
			if info.BuildDate == "unknown" && setting.Value != "" {
				info.BuildDate = setting.Value
			}
		}
	}

	for _, dep := range bi.Deps {
		if dep.Path != cdkModule {
			continue
		}
		info.CDKVersion = dep.Version
		if dep.Replace != nil && dep.Replace.Version != "" {
			info.CDKVersion = dep.Replace.Version
		}
	}

	return info
}

func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// String formats the build information for display to users
func (b BuildInfo) String() string {
	return fmt.Sprintf(`simplecdk %s
  Git commit:  %s
  Build date:  %s
  Go version:  %s
  Platform:    %s
  AWS CDK lib: %s`, b.Version, b.GitCommit, b.BuildDate, b.GoVersion, b.Platform, b.CDKVersion)
}

// Info returns formatted version information for display to users
func Info() string {
	return Current().String()
}

// Short returns just the version string without additional metadata
func Short() string {
	return Current().Version
}

// Generator identifies this build in synthesized manifests, e.g. "simplecdk/v1.0.0"
func Generator() string {
	return "simplecdk/" + Short()
}
