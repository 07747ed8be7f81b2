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

// Package store persists named secret records in a line-oriented flat file.
//
// A Store owns its file for the duration of a single invocation: it is
// loaded fully into memory, mutated, and flushed back atomically. No
// inter-process locking is provided; concurrent invocations against the
// same file race, which is an accepted limitation of the single-user local
// file model.
package store

import (
	"errors"
	"io/fs"
	"os"
	"sort"
	"time"

	"github.com/imonlyfourteen/TOTP/internal/otp"
	apperrors "github.com/imonlyfourteen/TOTP/pkg/errors"
)

const secretsFileMode = 0o600 // owner read/write only

// Store is the in-memory mapping of service name to secret record, bound to
// the file it was loaded from.
type Store struct {
	path    string
	records map[string]SecretRecord
}

// Load reads the secrets file at path. A missing file is the first-run
// case and yields an empty store, not an error. A file that exists but
// cannot be read or parsed fails with StoreCorruptError; the file is left
// untouched for the user to recover.
func Load(path string) (*Store, error) {
	s := &Store{
		path:    path,
		records: make(map[string]SecretRecord),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, apperrors.NewStoreCorruptError(path, 0, err.Error(), err)
	}

	records, err := parseRecords(path, data)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		s.records[r.Service] = r
	}
	return s, nil
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string { return s.path }

// Len returns the number of enrolled services.
func (s *Store) Len() int { return len(s.records) }

// Add enrolls a new record and persists the store. Existing names are
// never silently overwritten. On a flush failure the in-memory mapping is
// restored, so memory and file always agree.
func (s *Store) Add(rec SecretRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if _, exists := s.records[rec.Service]; exists {
		return apperrors.NewDuplicateServiceError(rec.Service)
	}

	s.records[rec.Service] = rec
	if err := s.flush(); err != nil {
		delete(s.records, rec.Service)
		return err
	}
	return nil
}

// Remove deletes an enrolled record and persists the store.
func (s *Store) Remove(service string) error {
	rec, exists := s.records[service]
	if !exists {
		return apperrors.NewNotFoundError(service)
	}

	delete(s.records, service)
	if err := s.flush(); err != nil {
		s.records[service] = rec
		return err
	}
	return nil
}

// Get returns the record for a service. Pure read, no mutation.
func (s *Store) Get(service string) (SecretRecord, error) {
	rec, exists := s.records[service]
	if !exists {
		return SecretRecord{}, apperrors.NewNotFoundError(service)
	}
	return rec, nil
}

// Code generates the current one-time password for an enrolled service.
func (s *Store) Code(service string, t time.Time) (string, error) {
	rec, err := s.Get(service)
	if err != nil {
		return "", err
	}
	return rec.Code(t)
}

// ListEntry is the display-safe view of a record. Secret material is
// deliberately absent; listing must never leak it.
type ListEntry struct {
	Service   string
	Algorithm otp.Algorithm
	Period    int
	Digits    int
}

// List returns entries for all enrolled services, sorted by name for
// deterministic output.
func (s *Store) List() []ListEntry {
	entries := make([]ListEntry, 0, len(s.records))
	for _, r := range s.records {
		entries = append(entries, ListEntry{
			Service:   r.Service,
			Algorithm: r.Algorithm,
			Period:    r.Period,
			Digits:    r.Digits,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Service < entries[j].Service
	})
	return entries
}

// flush writes the full mapping back to the file. The write is atomic, so
// an interrupted flush leaves either the old or the new complete content.
func (s *Store) flush() error {
	records := make([]SecretRecord, 0, len(s.records))
	for _, r := range s.records {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Service < records[j].Service
	})

	return atomicWriteFile(s.path, marshalRecords(records), secretsFileMode)
}
