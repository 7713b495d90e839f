// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses the command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args)
}

func parseArgs(args []string) (options.Program, error) {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	flags.Usage = func() {}
	opts := options.NewProgram()
	readOptionFlags(flags, &opts)

	err := flags.Parse(args[1:])
	positional := flags.Args()
	if err != nil || len(positional) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(positional); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Input = positional[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	if e.msg == "" {
		return "invalid usage"
	}
	return e.msg
}

// ShowUsage prints the usage text and the flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <rom file>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks that exactly one ROM file is passed as last argument.
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{msg: fmt.Sprintf("expected a single ROM file, got %d arguments", len(args))}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	if opts.Trace {
		opts.Debug = true
	}

	if opts.Speed < 1 {
		return fmt.Errorf("invalid speed %d: must be at least 1 instruction per second", opts.Speed)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("invalid scale %d: must be at least 1", opts.Scale)
	}

	validFrontends := []string{options.FrontendWindow, options.FrontendTerminal, options.FrontendHeadless}
	for _, valid := range validFrontends {
		if opts.Frontend == valid {
			return nil
		}
	}

	return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
		opts.Frontend, strings.Join(validFrontends, ", "))
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Frontend, "frontend", opts.Frontend, "frontend to run the ROM in (window/terminal/headless)")
	flags.IntVar(&opts.Speed, "speed", opts.Speed, "emulated instructions per second")
	flags.IntVar(&opts.Scale, "scale", opts.Scale, "window pixel scale")
	flags.Uint64Var(&opts.Frames, "frames", opts.Frames, "number of frames to run in headless mode, 0 runs until interrupted")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 seeds from the current time")
	flags.BoolVar(&opts.Mute, "mute", false, "disable the sound output")
	flags.BoolVar(&opts.Realtime, "realtime", false, "pace headless mode to 60 frames per second")
	flags.BoolVar(&opts.Disasm, "disasm", false, "print a disassembly listing of the ROM and exit")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.BoolVar(&opts.ShiftUsesVY, "shift-vy", false, "shift instructions 8xy6/8xyE shift Vy into Vx (COSMAC VIP behavior)")
	flags.BoolVar(&opts.LoadStoreIncrementsI, "loadstore-inc", false, "Fx55/Fx65 increment the index register (COSMAC VIP behavior)")
	flags.BoolVar(&opts.LogicResetsVF, "logic-vf", false, "8xy1/8xy2/8xy3 reset VF (COSMAC VIP behavior)")
}
