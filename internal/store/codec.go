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
	"fmt"
	"strconv"
	"strings"

	"github.com/imonlyfourteen/TOTP/internal/otp"
	apperrors "github.com/imonlyfourteen/TOTP/pkg/errors"
)

// FieldSeparator delimits the fields of a persisted record:
//
//	service:secret:algorithm:period:digits
//
// one record per line. Service names containing the separator are rejected
// at Add time, so the format never needs escaping. The Base32 alphabet
// cannot produce the separator either.
const FieldSeparator = ":"

const fieldCount = 5

// marshalRecords renders records in the line format, one per record, in the
// given order.
func marshalRecords(records []SecretRecord) []byte {
	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, "%s%s%s%s%s%s%d%s%d\n",
			r.Service, FieldSeparator,
			r.Secret.Text(), FieldSeparator,
			r.Algorithm, FieldSeparator,
			r.Period, FieldSeparator,
			r.Digits)
	}
	return []byte(b.String())
}

// parseRecords parses a whole secrets file. Blank lines are skipped; any
// other irregularity fails with a StoreCorruptError naming the offending
// 1-based line number. Records are returned in file order.
func parseRecords(path string, data []byte) ([]SecretRecord, error) {
	var records []SecretRecord
	seen := make(map[string]bool)

	for i, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		lineno := i + 1

		rec, err := parseLine(path, lineno, line)
		if err != nil {
			return nil, err
		}
		if seen[rec.Service] {
			return nil, apperrors.NewStoreCorruptError(path, lineno,
				fmt.Sprintf("duplicate service %q", rec.Service), nil)
		}
		seen[rec.Service] = true
		records = append(records, rec)
	}

	return records, nil
}

// parseLine parses a single record line. Trailing fields are not tolerated;
// the format carries exactly five fields.
func parseLine(path string, lineno int, line string) (SecretRecord, error) {
	corrupt := func(format string, args ...any) error {
		return apperrors.NewStoreCorruptError(path, lineno, fmt.Sprintf(format, args...), nil)
	}

	fields := strings.Split(line, FieldSeparator)
	if len(fields) != fieldCount {
		return SecretRecord{}, corrupt("expected %d fields, found %d", fieldCount, len(fields))
	}

	service, secret, algoText, periodText, digitsText := fields[0], fields[1], fields[2], fields[3], fields[4]
	if service == "" {
		return SecretRecord{}, corrupt("empty service name")
	}
	if secret == "" {
		return SecretRecord{}, corrupt("empty secret for service %q", service)
	}

	algo, err := otp.ParseAlgorithm(algoText)
	if err != nil {
		return SecretRecord{}, corrupt("unknown algorithm %q", algoText)
	}

	period, err := strconv.Atoi(periodText)
	if err != nil || period <= 0 {
		return SecretRecord{}, corrupt("invalid period %q", periodText)
	}

	digits, err := strconv.Atoi(digitsText)
	if err != nil || digits < otp.MinDigits || digits > otp.MaxDigits {
		return SecretRecord{}, corrupt("invalid digit count %q", digitsText)
	}

	return SecretRecord{
		Service:   service,
		Secret:    SecretFromBase32(secret),
		Algorithm: algo,
		Period:    period,
		Digits:    digits,
	}, nil
}
