package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// RunOptions specifies options for executing a command tree.
type RunOptions struct {
	// Stdout receives help text and Stderr receives error diagnostics. If either is nil, the
	// default stream ([os.Stdout] or [os.Stderr], respectively) is used.
	Stdout, Stderr io.Writer

	// Exit terminates the process from [Run]. Defaults to [os.Exit].
	Exit func(code int)
}

// Run executes root with the process arguments, [os.Args] minus the program path, and returns
// the result of the selected Exec function.
//
// Run is intended to be the last call in main. If help was requested it exits with status 0; on
// any other error it prints the error to Stderr and exits with status 1.
func Run[R any](root *Command[R], options *RunOptions) R {
	options = checkAndSetRunOptions(options)
	result, err := Execute(root, os.Args[1:], options)
	if err != nil {
		if errors.Is(err, ErrHelp) {
			options.Exit(0)
			return result
		}
		if cliErr := (*Error)(nil); !errors.As(err, &cliErr) || !cliErr.reported {
			fmt.Fprintf(options.Stderr, "error: %v\n", err)
		}
		options.Exit(1)
	}
	return result
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	} else {
		c := *opt
		opt = &c
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Exit == nil {
		opt.Exit = os.Exit
	}
	return opt
}
