package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X github.com/cwygoda/passgen/cmd.version=...".
var version = "0.1.1"

var rootCmd = &cobra.Command{
	Use:   "passgen [flags]",
	Short: "Bulk generation of pseudo random passwords",
	Long: `Passgen generates pseudo random passwords from one or more alphabets.

Every password contains at least one symbol of each alphabet. The remaining
positions are filled from all alphabets combined, and the result is shuffled.
Symbols that appear in several alphabets (or several times in one) are drawn
more often.

Alphabets can be given as literal strings (--abc), by name (--preset), via the
PASSGEN_ALPHABETS environment variable, or in .passgen.toml:

  [defaults]
  length = 16
  number = 5
  alphabets = ["abcdefghijklmnopqrstuvwxyz", "0123456789"]
  presets = ["special"]

  [alphabets]
  vowels = "aeiou"

Flags take precedence over the environment, which takes precedence over the
config file.

Examples:
  # One 8-character password of lowercase letters and digits
  passgen -a abcdefghijklmnopqrstuvwxyz -a 0123456789

  # Ten 20-character passwords using built-in alphabets
  passgen -l 20 -n 10 -p lower -p upper -p digits -p special

  # Reproducible output
  passgen --seed 42 -p hex -n 3`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE:    runGenerate,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
