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
package otp

import (
	"encoding/base32"
	"strings"

	apperrors "github.com/imonlyfourteen/TOTP/pkg/errors"
)

// DecodeBase32 decodes a Base32-encoded secret the way enrollment tools
// hand them out: case is normalized, internal whitespace is ignored, and
// missing padding is restored. Input that contains characters outside the
// RFC 4648 alphabet, or whose length cannot correspond to a whole number of
// bytes, fails with InvalidEncodingError.
func DecodeBase32(text string) ([]byte, error) {
	clean := strings.ToUpper(strings.Join(strings.Fields(text), ""))
	clean = strings.TrimRight(clean, "=")
	if clean == "" {
		return nil, apperrors.NewInvalidEncodingError("secret is empty", nil)
	}
	if n := len(clean) % 8; n != 0 {
		clean += "========"[:8-n]
	}

	secret, err := base32.StdEncoding.DecodeString(clean)
	if err != nil {
		return nil, apperrors.NewInvalidEncodingError(err.Error(), err)
	}
	return secret, nil
}
