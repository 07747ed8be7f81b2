/*
Copyright © 2026 imonlyfourteen

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package version provides build and version information for the totp CLI.
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables, set via -ldflags.
var (
	Version   = "dev"
	GitCommit = ""
	BuildDate = ""
)

// Short returns a compact version string suitable for single-line output.
func Short() string {
	if Version != "dev" {
		return Version
	}
	if GitCommit == "" {
		return Version
	}
	commit := GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return Version + "-" + commit
}

// BuildInfo returns the full human-readable version description.
func BuildInfo() string {
	info := fmt.Sprintf("totp %s (%s/%s)", Short(), runtime.GOOS, runtime.GOARCH)
	if BuildDate != "" {
		info += " built " + BuildDate
	}
	return info
}
