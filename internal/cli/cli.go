// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/options"
)

// Limits of the instructions per second option.
const (
	minInstructionsPerSec = 1
	maxInstructionsPerSec = 100000
)

// ParseFlags parses the emulator command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags, usage: "retrochip8 [options] <ROM file>"}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}
	return opts, nil
}

// ParseListingFlags parses the listing tool command line flags and returns the program options
func ParseListingFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readListingFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags, usage: "chip8disasm [options] <ROM file>"}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	if err := normalizeDialect(&opts); err != nil {
		return opts, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	usage string
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	if e.flags == nil {
		return
	}
	fmt.Printf("usage: %s\n\n", e.usage)
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if err := normalizeDialect(opts); err != nil {
		return err
	}

	if opts.InstructionsPerSec < minInstructionsPerSec || opts.InstructionsPerSec > maxInstructionsPerSec {
		return fmt.Errorf("unsupported instructions per second %d, valid range is %d-%d",
			opts.InstructionsPerSec, minInstructionsPerSec, maxInstructionsPerSec)
	}

	// tracing is logged at debug level
	if opts.Trace {
		opts.Debug = true
		opts.Quiet = false
	}
	return nil
}

func normalizeDialect(opts *options.Program) error {
	dialect, err := cpu.ParseDialect(opts.Dialect)
	if err != nil {
		return fmt.Errorf("%w. Valid options: superchip, cosmac", err)
	}
	opts.Dialect = dialect.String()
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Dialect, "dialect", options.DefaultDialect, "interpreter dialect for shift, jump and register store instructions (superchip/cosmac)")
	flags.IntVar(&opts.InstructionsPerSec, "ips", options.DefaultInstructionsPerSec, "instructions to execute per second")
	flags.Int64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 uses the current time")
	flags.BoolVar(&opts.Paused, "paused", false, "start the machine paused")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.StatsView, "statsview", false, "launch the runtime statistics viewer web server")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readListingFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Dialect, "dialect", options.DefaultDialect, "interpreter dialect used to format jump with offset instructions (superchip/cosmac)")
	flags.StringVar(&opts.Output, "o", "", "name of the output .asm file, printed on console if no name given")
	flags.BoolVar(&opts.NoHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in comments")
	flags.BoolVar(&opts.NoOffsets, "nooffsets", false, "do not output addresses in comments")
	flags.BoolVar(&opts.ZeroBytes, "z", false, "output the trailing zero bytes of the ROM")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
