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
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"strings"

	apperrors "github.com/imonlyfourteen/TOTP/pkg/errors"
)

// Algorithm selects the HMAC hash used for code generation.
type Algorithm string

const (
	AlgorithmSHA1   Algorithm = "sha1"
	AlgorithmSHA256 Algorithm = "sha256"
	AlgorithmSHA512 Algorithm = "sha512"
)

// ParseAlgorithm maps user input to a supported Algorithm,
// case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(s)); a {
	case AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512:
		return a, nil
	}
	return "", apperrors.NewUnsupportedAlgorithmError(s)
}

func (a Algorithm) String() string { return string(a) }

func (a Algorithm) hashFunc() (func() hash.Hash, error) {
	switch a {
	case AlgorithmSHA1:
		return sha1.New, nil
	case AlgorithmSHA256:
		return sha256.New, nil
	case AlgorithmSHA512:
		return sha512.New, nil
	}
	return nil, apperrors.NewUnsupportedAlgorithmError(string(a))
}
