package cli

import (
	"cmp"
	"io"
	"os"
	"strconv"

	"github.com/rprtr258/fun"
	"github.com/rprtr258/scuf"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rprtr258/mng/internal/config"
	"github.com/rprtr258/mng/internal/core"
	"github.com/rprtr258/mng/internal/core/namegen"
	"github.com/rprtr258/mng/internal/errors"
	"github.com/rprtr258/mng/internal/export"
)

var _usageFlagFormat = scuf.NewString(func(b scuf.Buffer) {
	b.
		String("Output format: ").
		Iter(func(yield func(func(scuf.Buffer)) bool) bool {
			for _, format := range export.Formats {
				yield(func(b scuf.Buffer) {
					b.String(format, scuf.FgYellow).String(", ")
				})
			}
			return false
		}).
		String("any other string is rendered as Go template with ").
		String("core.Pair", scuf.FgGreen).
		String(" struct (").
		String("{{.First}} {{.Last}}", scuf.FgYellow).
		String(")")
})

type generateFlags struct {
	male, female    bool
	noble, commoner bool
	uniqueLast      bool
	uniqueFull      bool
	seed            int64
	out, csv, json  string
	noStdout        bool
	interactive     bool
	format, preset  string
	seedSet         bool
}

// request merges preset, config defaults, positional count and flags, flags win
func (f generateFlags) request(args []string) (core.Request, config.Preset, error) {
	var preset config.Preset
	if f.preset != "" {
		var ok bool
		preset, ok = _cfg.Presets[f.preset]
		if !ok {
			return fun.Zero[core.Request](), fun.Zero[config.Preset](), errors.Newf("unknown preset %q", f.preset)
		}
	}

	request, err := preset.Request(_cfg.Count)
	if err != nil {
		return fun.Zero[core.Request](), fun.Zero[config.Preset](), errors.Wrapf(err, "preset %q", f.preset)
	}

	if len(args) > 0 {
		count, errParse := strconv.Atoi(args[0])
		if errParse != nil {
			return fun.Zero[core.Request](), fun.Zero[config.Preset](), errors.Wrapf(errParse, "parse count %q", args[0])
		}
		request.Count = count
	}

	switch {
	case f.male:
		request.Gender = core.GenderMale
	case f.female:
		request.Gender = core.GenderFemale
	}

	switch {
	case f.noble:
		request.Class = core.ClassNoble
	case f.commoner:
		request.Class = core.ClassCommoner
	}

	request.UniqueLast = request.UniqueLast || f.uniqueLast
	request.UniqueFull = request.UniqueFull || f.uniqueFull
	if f.seedSet {
		request.Seed = fun.Valid(f.seed)
	}

	return request, preset, request.Validate()
}

func generate(f generateFlags, args []string) error {
	request, preset, err := f.request(args)
	if err != nil {
		return err
	}

	seed, ok := request.Seed.Unpack()
	if !ok {
		seed, err = namegen.NewSeed()
		if err != nil {
			return errors.Wrap(err, "new seed")
		}
		// logged to allow reproducing unseeded run with --seed
		log.Debug().Int64("seed", seed).Msg("random seed")
	}

	pairs, err := namegen.NewSeeded(seed).Generate(request)
	if err != nil {
		return err
	}

	if err := saveTargets(f.interactive,
		target{
			filename: cmp.Or(f.out, preset.Out),
			write:    func(w io.Writer) error { return export.WriteText(w, pairs) },
		},
		target{
			filename: cmp.Or(f.csv, preset.CSV),
			write:    func(w io.Writer) error { return export.WriteCSV(w, pairs) },
		},
		target{
			filename: cmp.Or(f.json, preset.JSON),
			write:    func(w io.Writer) error { return export.WriteJSON(w, pairs) },
		},
	); err != nil {
		return err
	}

	if f.noStdout {
		return nil
	}

	write, err := export.ParseFormat(cmp.Or(f.format, _cfg.Format), terminalWidth())
	if err != nil {
		return errors.Wrap(err, "unmarshal flag format")
	}

	return write(os.Stdout, pairs)
}

func _cmdGenerate() *cobra.Command {
	var flags generateFlags
	cmd := &cobra.Command{
		Use:   "mng [count]",
		Short: "generate Old/Middle English character names",
		Long: "Generate Old/Middle English character names by combining a given name with a surname.\n" +
			"Count defaults to 5, or to count from config file.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.seedSet = cmd.Flags().Changed("seed")
			return generate(flags, args)
		},
	}

	cmd.Flags().BoolVar(&flags.male, "male", false, "use male given names only")
	cmd.Flags().BoolVar(&flags.female, "female", false, "use female given names only")
	cmd.Flags().BoolVar(&flags.noble, "noble", false, "use noble surnames only")
	cmd.Flags().BoolVar(&flags.commoner, "commoner", false, "use commoner surnames only")
	cmd.MarkFlagsMutuallyExclusive("male", "female")
	cmd.MarkFlagsMutuallyExclusive("noble", "commoner")

	cmd.Flags().BoolVar(&flags.uniqueLast, "unique-last", false, "no surname repeats in the batch")
	cmd.Flags().BoolVar(&flags.uniqueFull, "unique-full", false, "no exact full name repeats in the batch")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "random seed for reproducible output")

	cmd.Flags().StringVar(&flags.out, "out", "", "write newline-separated full names to this text file")
	cmd.Flags().StringVar(&flags.csv, "csv", "", "write first/last columns to this CSV file")
	cmd.Flags().StringVar(&flags.json, "json", "", "write names to this JSON file")
	cmd.Flags().BoolVar(&flags.noStdout, "no-stdout", false, "do not print names to stdout (only write files)")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "prompt before overwriting existing files")

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", _usageFlagFormat)
	registerFlagCompletionFunc(cmd, "format", completeFlagFormat)
	cmd.Flags().StringVarP(&flags.preset, "preset", "p", "", "named request from config file")
	registerFlagCompletionFunc(cmd, "preset", completeFlagPreset)

	return cmd
}
