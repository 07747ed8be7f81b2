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
	"errors"
	"regexp"
	"testing"
	"time"

	apperrors "github.com/imonlyfourteen/TOTP/pkg/errors"
)

// RFC 4226 Appendix D reference secret.
var rfc4226Secret = []byte("12345678901234567890")

// RFC 6238 Appendix B reference secrets, sized to the hash.
var (
	rfc6238SecretSHA1   = []byte("12345678901234567890")
	rfc6238SecretSHA256 = []byte("12345678901234567890123456789012")
	rfc6238SecretSHA512 = []byte("1234567890123456789012345678901234567890123456789012345678901234")
)

func TestHOTPReferenceVectors(t *testing.T) {
	// RFC 4226 Appendix D, counters 0..9.
	want := []string{
		"755224", "287082", "359152", "969429", "338314",
		"254676", "287922", "162583", "399871", "520489",
	}

	for counter, expected := range want {
		got, err := HOTP(rfc4226Secret, uint64(counter), 6, AlgorithmSHA1)
		if err != nil {
			t.Fatalf("HOTP(counter=%d) failed: %v", counter, err)
		}
		if got != expected {
			t.Errorf("HOTP(counter=%d) = %s, want %s", counter, got, expected)
		}
	}
}

func TestTOTPReferenceVectors(t *testing.T) {
	// RFC 6238 Appendix B, 8 digits, 30-second period.
	tests := []struct {
		time   int64
		algo   Algorithm
		secret []byte
		want   string
	}{
		{59, AlgorithmSHA1, rfc6238SecretSHA1, "94287082"},
		{59, AlgorithmSHA256, rfc6238SecretSHA256, "46119246"},
		{59, AlgorithmSHA512, rfc6238SecretSHA512, "90693936"},
		{1111111109, AlgorithmSHA1, rfc6238SecretSHA1, "07081804"},
		{1111111109, AlgorithmSHA256, rfc6238SecretSHA256, "68084774"},
		{1111111109, AlgorithmSHA512, rfc6238SecretSHA512, "25091201"},
		{1111111111, AlgorithmSHA1, rfc6238SecretSHA1, "14050471"},
		{1234567890, AlgorithmSHA1, rfc6238SecretSHA1, "89005924"},
		{2000000000, AlgorithmSHA1, rfc6238SecretSHA1, "69279037"},
		{20000000000, AlgorithmSHA1, rfc6238SecretSHA1, "65353130"},
		{20000000000, AlgorithmSHA256, rfc6238SecretSHA256, "77737706"},
		{20000000000, AlgorithmSHA512, rfc6238SecretSHA512, "47863826"},
	}

	for _, tt := range tests {
		got, err := TOTP(tt.secret, time.Unix(tt.time, 0), 30, 8, tt.algo)
		if err != nil {
			t.Fatalf("TOTP(t=%d, %s) failed: %v", tt.time, tt.algo, err)
		}
		if got != tt.want {
			t.Errorf("TOTP(t=%d, %s) = %s, want %s", tt.time, tt.algo, got, tt.want)
		}
	}
}

func TestHOTPOutputShape(t *testing.T) {
	numeric := regexp.MustCompile(`^[0-9]+$`)

	for _, algo := range []Algorithm{AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512} {
		for digits := MinDigits; digits <= MaxDigits; digits++ {
			for counter := uint64(0); counter < 50; counter++ {
				code, err := HOTP(rfc4226Secret, counter, digits, algo)
				if err != nil {
					t.Fatalf("HOTP(%s, digits=%d) failed: %v", algo, digits, err)
				}
				if len(code) != digits {
					t.Fatalf("HOTP(%s, digits=%d, counter=%d) length = %d, want %d",
						algo, digits, counter, len(code), digits)
				}
				if !numeric.MatchString(code) {
					t.Fatalf("HOTP produced non-numeric code %q", code)
				}
			}
		}
	}
}

func TestHOTPRejectsBadArguments(t *testing.T) {
	tests := []struct {
		name   string
		digits int
		algo   Algorithm
		want   any
	}{
		{"five digits", 5, AlgorithmSHA1, new(*apperrors.UnsupportedDigitsError)},
		{"nine digits", 9, AlgorithmSHA1, new(*apperrors.UnsupportedDigitsError)},
		{"zero digits", 0, AlgorithmSHA1, new(*apperrors.UnsupportedDigitsError)},
		{"md5", 6, Algorithm("md5"), new(*apperrors.UnsupportedAlgorithmError)},
		{"empty algorithm", 6, Algorithm(""), new(*apperrors.UnsupportedAlgorithmError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HOTP(rfc4226Secret, 0, tt.digits, tt.algo)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.As(err, tt.want) {
				t.Errorf("error %v has wrong type %T", err, err)
			}
		})
	}
}

func TestTOTPRejectsBadParameters(t *testing.T) {
	var invalid *apperrors.InvalidParameterError

	_, err := TOTP(rfc4226Secret, time.Unix(59, 0), 0, 6, AlgorithmSHA1)
	if !errors.As(err, &invalid) {
		t.Errorf("zero period: got %v, want InvalidParameterError", err)
	}

	_, err = TOTP(rfc4226Secret, time.Unix(59, 0), -30, 6, AlgorithmSHA1)
	if !errors.As(err, &invalid) {
		t.Errorf("negative period: got %v, want InvalidParameterError", err)
	}

	_, err = TOTP(rfc4226Secret, time.Unix(-1, 0), 30, 6, AlgorithmSHA1)
	if !errors.As(err, &invalid) {
		t.Errorf("pre-epoch time: got %v, want InvalidParameterError", err)
	}
}

func TestTOTPCounterDerivation(t *testing.T) {
	// Every second within one period maps to the same counter, so the code
	// must be stable across the window and change at its edge.
	start, err := TOTP(rfc4226Secret, time.Unix(60, 0), 30, 6, AlgorithmSHA1)
	if err != nil {
		t.Fatal(err)
	}
	end, err := TOTP(rfc4226Secret, time.Unix(89, 0), 30, 6, AlgorithmSHA1)
	if err != nil {
		t.Fatal(err)
	}
	next, err := TOTP(rfc4226Secret, time.Unix(90, 0), 30, 6, AlgorithmSHA1)
	if err != nil {
		t.Fatal(err)
	}

	if start != end {
		t.Errorf("code changed within one period: %s vs %s", start, end)
	}
	if end == next {
		t.Error("code did not change at the period boundary")
	}

	// Counter 2 at times 60..89 means TOTP must agree with HOTP(2).
	direct, err := HOTP(rfc4226Secret, 2, 6, AlgorithmSHA1)
	if err != nil {
		t.Fatal(err)
	}
	if start != direct {
		t.Errorf("TOTP(t=60) = %s, want HOTP(counter=2) = %s", start, direct)
	}
}

func TestTOTPNowShape(t *testing.T) {
	code, err := TOTPNow(rfc4226Secret, 30, 6, AlgorithmSHA1)
	if err != nil {
		t.Fatalf("TOTPNow failed: %v", err)
	}
	if len(code) != 6 {
		t.Errorf("TOTPNow code %q should be 6 digits", code)
	}
}

func TestTOTPFromBase32MatchesManualDecode(t *testing.T) {
	const encoded = "JBSWY3DPEHPK3PXP"
	at := time.Unix(1111111109, 0)

	viaHelper, err := TOTPFromBase32(encoded, at, 30, 6, AlgorithmSHA1)
	if err != nil {
		t.Fatalf("TOTPFromBase32 failed: %v", err)
	}

	secret, err := DecodeBase32(encoded)
	if err != nil {
		t.Fatalf("DecodeBase32 failed: %v", err)
	}
	viaManual, err := TOTP(secret, at, 30, 6, AlgorithmSHA1)
	if err != nil {
		t.Fatalf("TOTP failed: %v", err)
	}

	if viaHelper != viaManual {
		t.Errorf("TOTPFromBase32 = %s, manual decode = %s", viaHelper, viaManual)
	}
}

func TestTOTPFromBase32PropagatesEncodingErrors(t *testing.T) {
	var encErr *apperrors.InvalidEncodingError

	_, err := TOTPFromBase32("not!base32", time.Unix(59, 0), 30, 6, AlgorithmSHA1)
	if !errors.As(err, &encErr) {
		t.Errorf("got %v, want InvalidEncodingError", err)
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input   string
		want    Algorithm
		wantErr bool
	}{
		{"sha1", AlgorithmSHA1, false},
		{"SHA1", AlgorithmSHA1, false},
		{"sha256", AlgorithmSHA256, false},
		{"Sha512", AlgorithmSHA512, false},
		{"md5", "", true},
		{"", "", true},
		{"sha-1", "", true},
	}

	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseAlgorithm(%q) should fail", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAlgorithm(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAlgorithm(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}
