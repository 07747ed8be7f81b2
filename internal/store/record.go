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
package store

import (
	"encoding/base32"
	"strings"
	"time"

	"github.com/imonlyfourteen/TOTP/internal/otp"
	apperrors "github.com/imonlyfourteen/TOTP/pkg/errors"
)

// SecretMaterial is the tagged variant holding a record's secret: either
// Base32 text that still needs decoding, or raw bytes that are already
// decoded. The distinction is resolved once, at read time.
type SecretMaterial struct {
	text    string
	decoded []byte
}

// SecretFromBase32 wraps enrollment-style Base32 text. The text is
// normalized to its canonical form (whitespace stripped, upper case) so the
// persisted line format can never be split by characters the decoder would
// tolerate. It is not decoded until the secret is used; Validate catches
// undecodable text before it is ever stored.
func SecretFromBase32(text string) SecretMaterial {
	canonical := strings.ToUpper(strings.Join(strings.Fields(text), ""))
	return SecretMaterial{text: canonical}
}

// SecretFromBytes wraps already-decoded raw secret bytes.
func SecretFromBytes(raw []byte) SecretMaterial {
	return SecretMaterial{decoded: raw}
}

// Bytes resolves the material to raw secret bytes.
func (m SecretMaterial) Bytes() ([]byte, error) {
	if m.decoded != nil {
		return m.decoded, nil
	}
	return otp.DecodeBase32(m.text)
}

// Text returns the Base32 representation used for persistence. Raw material
// is encoded without padding, matching the form enrollment tools emit.
func (m SecretMaterial) Text() string {
	if m.decoded != nil {
		return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(m.decoded)
	}
	return m.text
}

func (m SecretMaterial) isZero() bool {
	return m.text == "" && m.decoded == nil
}

// SecretRecord is one enrolled service: its secret plus the parameters
// needed to generate codes for it.
type SecretRecord struct {
	Service   string
	Secret    SecretMaterial
	Algorithm otp.Algorithm
	Period    int
	Digits    int
}

// NewRecord builds a record with the common authenticator defaults
// (sha1, 30-second period, 6 digits).
func NewRecord(service string, secret SecretMaterial) SecretRecord {
	return SecretRecord{
		Service:   service,
		Secret:    secret,
		Algorithm: otp.AlgorithmSHA1,
		Period:    otp.DefaultPeriod,
		Digits:    otp.DefaultDigits,
	}
}

// Validate enforces the record invariants before storage. Service names are
// exact-match and case-sensitive; no trimming is applied.
func (r SecretRecord) Validate() error {
	if r.Service == "" {
		return apperrors.NewValidationError("service", "name cannot be empty")
	}
	if strings.Contains(r.Service, FieldSeparator) {
		return apperrors.NewValidationError("service", "name cannot contain "+FieldSeparator)
	}
	for _, c := range r.Service {
		if c < 32 || c == 127 {
			return apperrors.NewValidationError("service", "name cannot contain control characters")
		}
	}

	if r.Secret.isZero() {
		return apperrors.NewValidationError("secret", "cannot be empty")
	}
	raw, err := r.Secret.Bytes()
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return apperrors.NewValidationError("secret", "decodes to zero bytes")
	}

	switch r.Algorithm {
	case otp.AlgorithmSHA1, otp.AlgorithmSHA256, otp.AlgorithmSHA512:
	default:
		return apperrors.NewValidationError("algorithm", "must be sha1, sha256 or sha512")
	}

	if r.Period <= 0 {
		return apperrors.NewValidationError("period", "must be a positive number of seconds")
	}
	if r.Digits < otp.MinDigits || r.Digits > otp.MaxDigits {
		return apperrors.NewValidationError("digits", "must be 6, 7 or 8")
	}

	return nil
}

// Code generates the record's one-time password at time t.
func (r SecretRecord) Code(t time.Time) (string, error) {
	raw, err := r.Secret.Bytes()
	if err != nil {
		return "", err
	}
	return otp.TOTP(raw, t, r.Period, r.Digits, r.Algorithm)
}
