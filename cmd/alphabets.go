package cmd

import (
	"fmt"
	"io"
	"math"
	"sort"
	"text/tabwriter"

	"github.com/cwygoda/passgen/internal/config"
	"github.com/cwygoda/passgen/internal/pwgen"
	"github.com/spf13/cobra"
)

var alphabetsCmd = &cobra.Command{
	Use:   "alphabets",
	Short: "List named alphabets",
	Long: `List the alphabets that can be used with --preset.

Built-in alphabets are always available. Alphabets defined in the [alphabets]
table of the config file are listed too and take precedence over built-ins of
the same name.

The bits column is the entropy each symbol of a password drawn only from that
alphabet contributes.`,
	Args: cobra.NoArgs,
	RunE: runAlphabets,
}

func init() {
	rootCmd.AddCommand(alphabetsCmd)
}

func runAlphabets(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(genConfig)
	if err != nil {
		return err
	}
	return listAlphabets(cmd.OutOrStdout(), cfg.Alphabets)
}

func listAlphabets(w io.Writer, custom map[string]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSOURCE\tSIZE\tBITS\tSYMBOLS")

	for _, name := range pwgen.PresetNames() {
		if _, shadowed := customPreset(name, custom); shadowed {
			continue
		}
		abc, _ := pwgen.Preset(name)
		writeAlphabetRow(tw, name, "built-in", abc)
	}

	names := make([]string, 0, len(custom))
	for name := range custom {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		writeAlphabetRow(tw, name, "config", pwgen.NewAlphabet(custom[name]))
	}

	return tw.Flush()
}

func writeAlphabetRow(w io.Writer, name, source string, abc pwgen.Alphabet) {
	bits := pwgen.Entropy(1, []pwgen.Alphabet{abc})
	fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%s\n", name, source, abc.Len(), math.Round(bits*100)/100, abc)
}
