// Package cli parses command-line arguments against a static, declarative command tree and
// dispatches to the command they select.
//
// A tree is made of [Command] nodes. Each declares the [Flag] switches and [Parameter] options it
// accepts, its subcommands, and optionally an Exec function. Flags and parameters write into
// caller-owned [FlagValue] and [ParameterValue] stores, so the program reads parsed values from
// its own variables:
//
//	var verbose cli.FlagValue
//	var output cli.ParameterValue
//
//	root := &cli.Command[error]{
//	    Name:       "app",
//	    Flags:      []*cli.Flag{{ShortName: "v", LongName: "verbose", Value: &verbose}},
//	    Parameters: []*cli.Parameter{{ShortName: "o", LongName: "output", Value: &output}},
//	    Exec:       func() error { return build(verbose.Value(), output.String()) },
//	}
//	err := cli.Run(root, nil)
//
// The grammar is deliberately small: -f and --flag for flags, -p value and --param=value for
// parameters, and bare words for subcommands. There is no flag bundling, no prefix matching and
// no -- terminator. A subcommand name hands every remaining argument to that subcommand.
package cli
