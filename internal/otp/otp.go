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

// Package otp implements the HOTP (RFC 4226) and TOTP (RFC 6238) one-time
// password algorithms, plus the tolerant Base32 secret decoding used by
// authenticator enrollment strings.
package otp

import (
	"crypto/hmac"
	"encoding/binary"
	"fmt"
	"time"

	apperrors "github.com/imonlyfourteen/TOTP/pkg/errors"
)

const (
	// MinDigits and MaxDigits bound the supported code widths.
	MinDigits = 6
	MaxDigits = 8

	// DefaultDigits and DefaultPeriod match the common authenticator
	// defaults.
	DefaultDigits = 6
	DefaultPeriod = 30
)

var pow10 = [...]uint32{
	MinDigits: 1e6,
	7:         1e7,
	MaxDigits: 1e8,
}

// HOTP computes the RFC 4226 counter-based one-time password. The result is
// always exactly digits characters long, zero-padded on the left.
func HOTP(secret []byte, counter uint64, digits int, algo Algorithm) (string, error) {
	if digits < MinDigits || digits > MaxDigits {
		return "", apperrors.NewUnsupportedDigitsError(digits)
	}
	newHash, err := algo.hashFunc()
	if err != nil {
		return "", err
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(newHash, secret)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	// Dynamic truncation: the last nibble selects a 4-byte window, whose
	// top bit is cleared to avoid signedness ambiguity.
	offset := sum[len(sum)-1] & 0x0f
	code := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	return fmt.Sprintf("%0*d", digits, code%pow10[digits]), nil
}

// TOTP computes the RFC 6238 time-based one-time password, deriving the
// counter as the number of whole periods elapsed at t since the Unix epoch.
func TOTP(secret []byte, t time.Time, period, digits int, algo Algorithm) (string, error) {
	if period <= 0 {
		return "", apperrors.NewInvalidParameterError("period", "must be a positive number of seconds")
	}
	if t.Unix() < 0 {
		return "", apperrors.NewInvalidParameterError("time", "must not be before the Unix epoch")
	}
	counter := uint64(t.Unix()) / uint64(period)
	return HOTP(secret, counter, digits, algo)
}

// TOTPNow is TOTP at the current wall-clock time, read once.
func TOTPNow(secret []byte, period, digits int, algo Algorithm) (string, error) {
	return TOTP(secret, time.Now(), period, digits, algo)
}

// TOTPFromBase32 decodes a Base32-encoded secret and computes its TOTP.
// Decoding failures are propagated unchanged.
func TOTPFromBase32(encoded string, t time.Time, period, digits int, algo Algorithm) (string, error) {
	secret, err := DecodeBase32(encoded)
	if err != nil {
		return "", err
	}
	return TOTP(secret, t, period, digits, algo)
}
