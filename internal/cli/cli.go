// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/gbrandomizer/internal/options"
)

// ParseFlags parses command line flags and returns program and randomization options
func ParseFlags() (options.Program, options.Randomization, error) {
	return parseArgs(os.Args[0], os.Args[1:])
}

func parseArgs(name string, arguments []string) (options.Program, options.Randomization, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var opts options.Program
	readOptionFlags(flags, &opts)
	readFeatureFlags(flags, &opts.Features)

	if err := flags.Parse(arguments); err != nil {
		usageErr := &UsageError{flags: flags}
		if !errors.Is(err, flag.ErrHelp) {
			usageErr.msg = err.Error()
		}
		return opts, options.Randomization{}, usageErr
	}

	args := flags.Args()
	if len(args) == 0 && opts.Input == "" && opts.Batch == "" {
		return opts, options.Randomization{}, &UsageError{flags: flags}
	}

	if err := validateArgs(opts, args); err != nil {
		return opts, options.Randomization{}, err
	}

	if opts.Batch == "" && opts.Input == "" {
		opts.Input = args[0]
	}

	if err := validateOptionCombinations(opts); err != nil {
		return opts, options.Randomization{}, err
	}

	cfg, err := opts.Randomization()
	if err != nil {
		return opts, options.Randomization{}, fmt.Errorf("parsing randomization options: %w", err)
	}
	return opts, cfg, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: gbrandomizer [options] <ROM file to randomize>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order and that the input
// is given only once
func validateArgs(opts options.Program, args []string) error {
	if len(args) > 0 && (opts.Input != "" || opts.Batch != "") {
		return &UsageError{
			msg: fmt.Sprintf("File %s given in addition to the -i or -batch option, please pass the input only once", args[0]),
		}
	}

	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to randomize, please pass the file to randomize as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptionCombinations checks for options that can not be used together
func validateOptionCombinations(opts options.Program) error {
	if opts.Batch != "" && opts.Output != "" {
		return &UsageError{
			msg: "Output file can not be set in batch mode, output names are generated from the input names",
		}
	}
	if opts.NoItemSafeguard && !opts.Items {
		return &UsageError{
			msg: "Progression item safeguard can only be disabled together with item randomization",
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the output ROM file, <input>.randomized<ext> if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically output file naming, for example *.gbc")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readFeatureFlags(flags *flag.FlagSet, opts *options.Features) {
	flags.StringVar(&opts.Seed, "seed", "", "random seed, numbers or arbitrary strings are accepted, generated if not given")
	flags.BoolVar(&opts.AllowLegendaries, "allow-legendaries", false, "permit legendary species in randomized slots")
	flags.BoolVar(&opts.NoWild, "no-wild", false, "do not randomize wild encounters")
	flags.BoolVar(&opts.Trainers, "trainers", false, "randomize trainer parties")
	flags.StringVar(&opts.TrainerTheme, "trainer-theme", string(options.ThemeOff), "trainer party theme (off/monotype)")
	flags.BoolVar(&opts.Starters, "starters", false, "randomize starters")
	flags.BoolVar(&opts.Statics, "static", false, "randomize static encounters")
	flags.BoolVar(&opts.Items, "items", false, "randomize items and shop inventories")
	flags.BoolVar(&opts.NoItemSafeguard, "unsafe-items", false, "allow progression items to be randomized")
	flags.BoolVar(&opts.Movesets, "movesets", false, "randomize movesets")
	flags.BoolVar(&opts.Typings, "typings", false, "randomize species typings")
	flags.BoolVar(&opts.Evolutions, "evolutions", false, "randomize evolution targets")
	flags.BoolVar(&opts.EvolutionConsists, "evolution-consistency", false, "never evolve into a species with a lower base stat total")
	flags.BoolVar(&opts.TMHM, "tmhm", false, "randomize TM/HM compatibility")
	flags.BoolVar(&opts.BaseStats, "stats", false, "randomize base stats while keeping their totals")
	flags.StringVar(&opts.MinBST, "min-bst", "", "minimum base stat total of the species pool")
	flags.StringVar(&opts.MaxBST, "max-bst", "", "maximum base stat total of the species pool")
}
