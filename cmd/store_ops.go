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
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/atotto/clipboard"

	"github.com/imonlyfourteen/TOTP/internal/otp"
	"github.com/imonlyfourteen/TOTP/internal/store"
	"github.com/imonlyfourteen/TOTP/pkg/config"
	apperrors "github.com/imonlyfourteen/TOTP/pkg/errors"
)

// maskedSecret stands in for secret material in listing output. Secrets are
// never shown back; this is a confidentiality contract of the store.
const maskedSecret = "****"

// resolveSecretsPath picks the effective secrets file: an explicit --file
// wins, otherwise the environment/config-directory defaulting applies.
func resolveSecretsPath() (string, error) {
	if fileFlag != "" {
		if err := validateSecretsFilePath(fileFlag); err != nil {
			return "", err
		}
		return fileFlag, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.SecretsPath()
}

func openStore() (*store.Store, error) {
	path, err := resolveSecretsPath()
	if err != nil {
		return nil, err
	}
	return store.Load(path)
}

// setService enrolls a new named secret. The secret itself arrives as the
// positional argument, Base32-encoded.
func setService(name string, args []string) error {
	if len(args) != 1 {
		return apperrors.NewInvalidParameterError("secret", "a base32 secret argument is required with --set")
	}
	if err := validateGenerationParams(periodFlag, digitsFlag); err != nil {
		return err
	}
	algo, err := otp.ParseAlgorithm(algoFlag)
	if err != nil {
		return err
	}

	path, err := resolveSecretsPath()
	if err != nil {
		return err
	}
	if err := config.EnsureParentDirectory(path); err != nil {
		return fmt.Errorf("failed to create secrets directory: %w", err)
	}

	st, err := store.Load(path)
	if err != nil {
		return err
	}

	rec := store.SecretRecord{
		Service:   name,
		Secret:    store.SecretFromBase32(args[0]),
		Algorithm: algo,
		Period:    periodFlag,
		Digits:    digitsFlag,
	}
	if err := st.Add(rec); err != nil {
		return err
	}

	fmt.Printf("Service %q saved to %s.\n", name, path)
	return nil
}

func getService(name string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	code, err := st.Code(name, time.Now())
	if err != nil {
		return err
	}
	return emitCode(code)
}

func removeService(name string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	if err := st.Remove(name); err != nil {
		return err
	}

	fmt.Printf("Service %q removed from %s.\n", name, st.Path())
	return nil
}

func listServices() error {
	st, err := openStore()
	if err != nil {
		return err
	}

	entries := st.List()
	if len(entries) == 0 {
		fmt.Println("(no services)")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "SERVICE\tSECRET\tALGO\tPERIOD\tDIGITS")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", e.Service, maskedSecret, e.Algorithm, e.Period, e.Digits)
	}
	return w.Flush()
}

// emitCode delivers a generated code to the user: stdout by default, the
// clipboard on request. Silencing stdout without the clipboard would
// discard the code entirely, so the pairing is enforced.
func emitCode(code string) error {
	if silentFlag && !clipFlag {
		return apperrors.NewInvalidParameterError("silent", "requires --clipboard")
	}
	if clipFlag {
		if err := clipboard.WriteAll(code); err != nil {
			return fmt.Errorf("failed to copy code to clipboard: %w", err)
		}
	}
	if !silentFlag {
		fmt.Println(code)
	}
	return nil
}
