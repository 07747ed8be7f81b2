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

// Package errors defines the error taxonomy shared by the OTP engine, the
// secret store and the CLI boundary. The engine and store return these
// errors unmasked; only the CLI converts them into user-facing messages
// and exit codes.
package errors

import "fmt"

// InvalidEncodingError reports secret text that is not valid Base32.
type InvalidEncodingError struct {
	Message string
	Err     error
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid base32 secret: %s", e.Message)
}

func (e *InvalidEncodingError) Unwrap() error { return e.Err }

// UnsupportedAlgorithmError reports an HMAC algorithm outside the supported
// sha1/sha256/sha512 set.
type UnsupportedAlgorithmError struct {
	Algorithm string
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported algorithm %q (want sha1, sha256 or sha512)", e.Algorithm)
}

// UnsupportedDigitsError reports a code width outside the 6..8 range.
type UnsupportedDigitsError struct {
	Digits int
}

func (e *UnsupportedDigitsError) Error() string {
	return fmt.Sprintf("unsupported digit count %d (want 6, 7 or 8)", e.Digits)
}

// InvalidParameterError reports a bad OTP engine or CLI argument that is not
// covered by a more specific error.
type InvalidParameterError struct {
	Parameter string
	Message   string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Parameter, e.Message)
}

// ValidationError reports a secret record that violates its invariants.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// DuplicateServiceError reports an add for a service name that is already
// enrolled.
type DuplicateServiceError struct {
	Service string
}

func (e *DuplicateServiceError) Error() string {
	return fmt.Sprintf("service %q already exists", e.Service)
}

// NotFoundError reports a lookup for a service name that is not enrolled.
type NotFoundError struct {
	Service string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("service %q not found", e.Service)
}

// StoreCorruptError reports a secrets file that exists but cannot be read or
// parsed. Line is 1-based and zero when the failure cannot be attributed to
// a single line. The file is never deleted or rewritten on this error;
// recovery is the user's decision.
type StoreCorruptError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

func (e *StoreCorruptError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("secrets file %s: line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("secrets file %s: %s", e.Path, e.Message)
}

func (e *StoreCorruptError) Unwrap() error { return e.Err }

// Helper constructors for common cases
func NewInvalidEncodingError(message string, err error) *InvalidEncodingError {
	return &InvalidEncodingError{Message: message, Err: err}
}

func NewUnsupportedAlgorithmError(algorithm string) *UnsupportedAlgorithmError {
	return &UnsupportedAlgorithmError{Algorithm: algorithm}
}

func NewUnsupportedDigitsError(digits int) *UnsupportedDigitsError {
	return &UnsupportedDigitsError{Digits: digits}
}

func NewInvalidParameterError(parameter, message string) *InvalidParameterError {
	return &InvalidParameterError{Parameter: parameter, Message: message}
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func NewDuplicateServiceError(service string) *DuplicateServiceError {
	return &DuplicateServiceError{Service: service}
}

func NewNotFoundError(service string) *NotFoundError {
	return &NotFoundError{Service: service}
}

func NewStoreCorruptError(path string, line int, message string, err error) *StoreCorruptError {
	return &StoreCorruptError{Path: path, Line: line, Message: message, Err: err}
}
