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
package cmd

import (
	"os"
	"strings"

	apperrors "github.com/imonlyfourteen/TOTP/pkg/errors"
)

// CLI argument bounds. The engine accepts any positive period; the command
// line keeps the stricter historical range so typos like --period 3 don't
// silently produce codes nothing will accept.
const (
	minPeriod = 30
	maxPeriod = 86400
)

// validateSecretsFilePath requires an explicit --file value to contain a
// directory separator. A bare filename would resolve against whatever the
// current directory happens to be and fragment secrets across invocations.
func validateSecretsFilePath(path string) error {
	if !strings.ContainsAny(path, string(os.PathSeparator)+"/") {
		return apperrors.NewInvalidParameterError("file", "path must contain a directory separator")
	}
	return nil
}

// validateGenerationParams checks the --period and --digits arguments.
func validateGenerationParams(period, digits int) error {
	if period < minPeriod || period > maxPeriod {
		return apperrors.NewInvalidParameterError("period", "must be in the 30..86400 range")
	}
	if digits < 6 || digits > 8 {
		return apperrors.NewInvalidParameterError("digits", "must be in the 6..8 range")
	}
	return nil
}
