// Package cli parses the command line surface:
//
//	stockinfo <stock_id> <start_date> [end_date] [--output FILENAME]
package cli

import (
	"flag"
	"fmt"
)

// Args holds one invocation's parsed arguments.
type Args struct {
	// StockID is the upstream ticker/security code, e.g. "0050".
	StockID string
	// StartDate is the first day of the window, YYYY-MM-DD. Not validated;
	// the upstream API owns the format.
	StartDate string
	// EndDate is the last day of the window. Empty means "today", resolved
	// later by the usecase.
	EndDate string
	// Output is the CSV file path.
	Output string
}

// Parse reads positional and flag arguments. The --output flag is accepted
// before, between, or after the positionals. A missing required positional
// or an unknown flag yields an error after the usage text is printed.
func Parse(name string, arguments []string, defaultOutput string) (*Args, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	output := fs.String("output", defaultOutput, "output CSV file name")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s <stock_id> <start_date> [end_date] [--output FILENAME]\n", name)
		fs.PrintDefaults()
	}

	// flag stops at the first positional, so re-parse the remainder after
	// collecting each one. This keeps trailing flags working.
	var positionals []string
	for {
		if err := fs.Parse(arguments); err != nil {
			return nil, err
		}
		arguments = fs.Args()
		if len(arguments) == 0 {
			break
		}
		positionals = append(positionals, arguments[0])
		arguments = arguments[1:]
	}

	if len(positionals) < 2 {
		fs.Usage()
		return nil, fmt.Errorf("%s: stock_id and start_date are required", name)
	}
	if len(positionals) > 3 {
		fs.Usage()
		return nil, fmt.Errorf("%s: too many arguments", name)
	}

	args := &Args{
		StockID:   positionals[0],
		StartDate: positionals[1],
		Output:    *output,
	}
	if len(positionals) == 3 {
		args.EndDate = positionals[2]
	}
	return args, nil
}
