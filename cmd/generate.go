package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cwygoda/passgen/internal/clip"
	"github.com/cwygoda/passgen/internal/config"
	"github.com/cwygoda/passgen/internal/logging"
	"github.com/cwygoda/passgen/internal/output"
	"github.com/cwygoda/passgen/internal/pwgen"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	defaultLength = 8
	defaultNumber = 1
)

var errNoAlphabets = errors.New("at least one alphabet is required (use --abc, --preset, " + config.EnvAlphabets + " or " + config.DefaultFileName + ")")

var (
	genAlphabets []string
	genPresets   []string
	genLength    int
	genNumber    int
	genSeed      uint64
	genClip      bool
	genColumns   bool
	genConfig    string
	genVerbose   bool
	genSave      bool
)

func init() {
	f := rootCmd.Flags()
	f.StringArrayVarP(&genAlphabets, "abc", "a", nil, "Alphabet as a literal string of symbols (repeatable)")
	f.StringArrayVarP(&genPresets, "preset", "p", nil, "Named alphabet, built-in or from the config file (repeatable)")
	f.IntVarP(&genLength, "length", "l", defaultLength, "Password length")
	f.IntVarP(&genNumber, "number", "n", defaultNumber, "Number of passwords to generate")
	f.Uint64Var(&genSeed, "seed", 0, "Seed for reproducible output (not for real secrets)")
	f.BoolVar(&genClip, "clip", false, "Copy the last password to the clipboard")
	f.BoolVar(&genColumns, "columns", false, "Print passwords in columns when writing to a terminal")
	f.BoolVarP(&genVerbose, "verbose", "v", false, "Log details to stderr")
	f.BoolVar(&genSave, "save", false, "Write the resolved length, number and alphabets to the config file")

	rootCmd.PersistentFlags().StringVar(&genConfig, "config", config.DefaultFileName, "Config file")
}

// genOptions holds fully resolved settings for one run.
type genOptions struct {
	length    int
	number    int
	alphabets []pwgen.Alphabet
	rand      pwgen.Rand
	columns   bool
	// clipboard receives the last password when set.
	clipboard func(string) error
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := logging.New(genVerbose)
	defer logger.Sync()

	cfg, err := config.Load(genConfig)
	if err != nil {
		return err
	}

	env, err := config.EnvAlphabetList()
	if err != nil {
		return err
	}

	alphabets, err := resolveAlphabets(genAlphabets, genPresets, env, cfg)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	opts := genOptions{
		length:    resolveInt(flags.Changed("length"), genLength, cfg.Defaults.Length, defaultLength),
		number:    resolveInt(flags.Changed("number"), genNumber, cfg.Defaults.Number, defaultNumber),
		alphabets: alphabets,
		rand:      pwgen.NewCryptoRand(),
		columns:   genColumns,
	}
	if genClip {
		opts.clipboard = clip.Copy
	}
	if flags.Changed("seed") {
		opts.rand = pwgen.NewSeededRand(genSeed)
		logger.Debug("using seeded source", zap.Uint64("seed", genSeed))
	}

	if err := generate(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, logger); err != nil {
		return err
	}

	if genSave {
		if err := saveDefaults(genConfig, cfg, opts); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved defaults to %s\n", genConfig)
	}

	return nil
}

// saveDefaults stores the resolved settings in the [defaults] table of path.
// Presets are expanded to their symbols, so the saved file does not depend on
// preset definitions.
func saveDefaults(path string, cfg *config.Config, opts genOptions) error {
	literals := make([]string, 0, len(opts.alphabets))
	for _, abc := range opts.alphabets {
		literals = append(literals, abc.String())
	}

	cfg.Defaults = config.Defaults{
		Length:    opts.length,
		Number:    opts.number,
		Alphabets: literals,
	}
	return config.Save(path, cfg)
}

// generate writes opts.number passwords to out.
func generate(out, errOut io.Writer, opts genOptions, logger *zap.Logger) error {
	if opts.number < 0 {
		return fmt.Errorf("invalid number %d: must not be negative", opts.number)
	}

	factory, err := pwgen.NewFactory(opts.rand, opts.length, opts.alphabets)
	if err != nil {
		return err
	}

	alphabets := factory.Alphabets()
	logger.Debug("generating passwords",
		zap.Int("length", factory.Length()),
		zap.Int("number", opts.number),
		zap.Int("alphabets", len(alphabets)),
		zap.Float64("entropy_bits", pwgen.Entropy(factory.Length(), alphabets)),
	)

	passwords := factory.ProduceN(opts.number)

	columns := 1
	if opts.columns {
		if f, ok := out.(*os.File); ok {
			columns = output.TerminalColumns(f, output.CellWidth(passwords))
		}
	}
	if err := output.Write(out, passwords, columns); err != nil {
		return fmt.Errorf("failed to write passwords: %w", err)
	}

	if opts.clipboard != nil && len(passwords) > 0 {
		if err := opts.clipboard(passwords[len(passwords)-1]); err != nil {
			return err
		}
		fmt.Fprintln(errOut, "Copied last password to clipboard")
	}

	return nil
}

// resolveAlphabets picks alphabets from flags, then the environment, then the
// config file. Sources are not merged: the first non-empty one wins.
func resolveAlphabets(literals, presets, env []string, cfg *config.Config) ([]pwgen.Alphabet, error) {
	switch {
	case len(literals) > 0 || len(presets) > 0:
		return buildAlphabets(literals, presets, cfg.Alphabets)
	case len(env) > 0:
		return buildAlphabets(env, nil, cfg.Alphabets)
	case len(cfg.Defaults.Alphabets) > 0 || len(cfg.Defaults.Presets) > 0:
		return buildAlphabets(cfg.Defaults.Alphabets, cfg.Defaults.Presets, cfg.Alphabets)
	}
	return nil, errNoAlphabets
}

func buildAlphabets(literals, presets []string, custom map[string]string) ([]pwgen.Alphabet, error) {
	alphabets := pwgen.NewAlphabets(literals...)
	for _, name := range presets {
		abc, err := lookupPreset(name, custom)
		if err != nil {
			return nil, err
		}
		alphabets = append(alphabets, abc)
	}
	return alphabets, nil
}

// lookupPreset resolves a named alphabet, ignoring case and surrounding
// space. Config entries shadow built-ins.
func lookupPreset(name string, custom map[string]string) (pwgen.Alphabet, error) {
	if s, ok := customPreset(name, custom); ok {
		return pwgen.NewAlphabet(s), nil
	}
	if abc, ok := pwgen.Preset(name); ok {
		return abc, nil
	}

	names := pwgen.PresetNames()
	for n := range custom {
		names = append(names, n)
	}
	sort.Strings(names)

	return pwgen.Alphabet{}, fmt.Errorf("unknown preset '%s'. Available: %s", name, strings.Join(names, ", "))
}

func customPreset(name string, custom map[string]string) (string, bool) {
	key := normalizeName(name)
	for n, s := range custom {
		if normalizeName(n) == key {
			return s, true
		}
	}
	return "", false
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// resolveInt returns the flag value if it was set, else the config value if
// positive, else the built-in default.
func resolveInt(flagSet bool, flagValue, configValue, fallback int) int {
	if flagSet {
		return flagValue
	}
	if configValue > 0 {
		return configValue
	}
	return fallback
}
