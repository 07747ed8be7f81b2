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

// Package cmd implements the totp command-line interface. It is the only
// layer that turns engine and store errors into user-facing messages and
// exit codes.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/imonlyfourteen/TOTP/internal/otp"
	apperrors "github.com/imonlyfourteen/TOTP/pkg/errors"
	"github.com/imonlyfourteen/TOTP/pkg/version"
)

var (
	algoFlag    string
	periodFlag  int
	digitsFlag  int
	setFlag     string
	removeFlag  string
	getFlag     string
	listFlag    bool
	fileFlag    string
	clipFlag    bool
	silentFlag  bool
	versionFlag bool
)

// rootCmd is the whole command surface: direct generation from a positional
// secret, or one of the mutually exclusive store-management flags.
var rootCmd = &cobra.Command{
	Use:   "totp [SECRET]",
	Short: "Generate RFC 6238 time-based one-time passwords.",
	Long: `totp generates time-based one-time passwords (RFC 6238) from a
Base32-encoded secret, and can keep named secrets in a local file so codes
for enrolled services can be generated without re-entering the secret.

Direct mode takes the secret as a positional argument. Store mode is
selected with exactly one of --set, --get, --remove or --list, operating on
the secrets file (override with --file).`,
	Example: `  totp JBSWY3DPEHPK3PXP
  totp JBSWY3DPEHPK3PXP --algo sha256 --digits 8
  totp --set github JBSWY3DPEHPK3PXP
  totp --get github
  totp --get github --clipboard --silent
  totp --list
  totp --remove github --file ./secrets`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runRoot,
}

// Execute runs the CLI. Cobra has already printed the error to stderr by
// the time a non-nil error reaches us; the process just exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if versionFlag {
		fmt.Println(version.BuildInfo())
		return nil
	}

	switch {
	case setFlag != "":
		return setService(setFlag, args)
	case removeFlag != "":
		if err := rejectPositional(args); err != nil {
			return err
		}
		return removeService(removeFlag)
	case getFlag != "":
		if err := rejectPositional(args); err != nil {
			return err
		}
		return getService(getFlag)
	case listFlag:
		if err := rejectPositional(args); err != nil {
			return err
		}
		return listServices()
	}

	if len(args) == 0 {
		return cmd.Help()
	}
	return generateDirect(args[0])
}

// rejectPositional guards the store modes that take no secret argument; a
// stray positional there is a mistake, not input to ignore.
func rejectPositional(args []string) error {
	if len(args) > 0 {
		return apperrors.NewInvalidParameterError("arguments", fmt.Sprintf("unexpected argument %q", args[0]))
	}
	return nil
}

// generateDirect is the stateless mode: one secret in, one code out.
func generateDirect(secret string) error {
	if err := validateGenerationParams(periodFlag, digitsFlag); err != nil {
		return err
	}
	algo, err := otp.ParseAlgorithm(algoFlag)
	if err != nil {
		return err
	}

	code, err := otp.TOTPFromBase32(secret, time.Now(), periodFlag, digitsFlag, algo)
	if err != nil {
		return err
	}
	return emitCode(code)
}

func init() {
	f := rootCmd.Flags()

	f.StringVarP(&algoFlag, "algo", "a", otp.AlgorithmSHA1.String(), "HMAC algorithm: sha1, sha256 or sha512")
	f.IntVarP(&periodFlag, "period", "p", otp.DefaultPeriod, "time step in seconds (30..86400)")
	f.IntVarP(&digitsFlag, "digits", "d", otp.DefaultDigits, "code width (6..8)")

	f.StringVar(&setFlag, "set", "", "enroll NAME with the positional secret")
	f.StringVar(&getFlag, "get", "", "print the current code for enrolled service NAME")
	f.StringVar(&removeFlag, "remove", "", "remove enrolled service NAME")
	f.BoolVar(&listFlag, "list", false, "list enrolled services")
	f.StringVar(&fileFlag, "file", "", "secrets file path, must contain a directory separator (default: user config dir)")

	f.BoolVarP(&clipFlag, "clipboard", "c", false, "copy the generated code to the clipboard")
	f.BoolVarP(&silentFlag, "silent", "s", false, "do not print the code (requires --clipboard)")
	f.BoolVarP(&versionFlag, "version", "v", false, "show version information")

	rootCmd.MarkFlagsMutuallyExclusive("set", "get", "remove", "list")
}
