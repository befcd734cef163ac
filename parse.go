package cli

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// helpKeyword is the bare token that prints help on commands with HelpEnabled.
const helpKeyword = "help"

// Execute walks args against the command tree rooted at root, binding flags and parameters along
// the way, and invokes the Exec function of the command where the arguments end. It returns the
// value produced by that Exec function.
//
// Flags and parameters may appear in any order, but only before the next subcommand name: a bare
// token always selects a subcommand of the current command, and everything after it belongs to
// that subcommand. Parsing stops at the first malformed token with an [*Error]; stores bound by
// earlier tokens are left as they are.
//
// The tree is validated first and a [*ValidationError] is returned without consuming anything.
// Execute must not be called concurrently on trees sharing stores. The options parameter may be
// nil, see [RunOptions].
func Execute[R any](root *Command[R], args []string, options *RunOptions) (R, error) {
	return ExecuteSeq(root, slices.Values(args), options)
}

// ExecuteSeq is like [Execute] but pulls tokens from seq one at a time. Tokens after the one that
// completes or fails the dispatch are never requested.
func ExecuteSeq[R any](root *Command[R], seq iter.Seq[string], options *RunOptions) (R, error) {
	var zero R
	if err := Validate(root); err != nil {
		return zero, err
	}
	next, stop := iter.Pull(seq)
	defer stop()

	d := &dispatcher[R]{
		next:    next,
		options: checkAndSetRunOptions(options),
	}
	return d.dispatch(root)
}

type dispatcher[R any] struct {
	next    func() (string, bool)
	options *RunOptions
	path    []*Command[R]
}

// dispatch consumes tokens on behalf of c until they run out or a subcommand takes over the rest
// of the stream.
func (d *dispatcher[R]) dispatch(c *Command[R]) (R, error) {
	var zero R
	d.path = append(d.path, c)

	for {
		arg, ok := d.next()
		if !ok {
			break
		}
		switch {
		case strings.HasPrefix(arg, "--"):
			if err := d.long(c, arg); err != nil {
				return zero, err
			}
		case strings.HasPrefix(arg, "-"):
			if err := d.short(c, arg); err != nil {
				return zero, err
			}
		default:
			if sub := c.findSubCommand(arg); sub != nil {
				return d.dispatch(sub)
			}
			if c.HelpEnabled && arg == helpKeyword {
				fmt.Fprintln(d.options.Stdout, usage(c, d.path))
				return zero, ErrHelp
			}
			return zero, d.fail(c, c.unknownCommandError(arg))
		}
	}

	if c.Exec == nil {
		return zero, &Error{Code: ExpectedSubcommand}
	}
	return c.Exec(), nil
}

// long handles --name and --name=value.
func (d *dispatcher[R]) long(c *Command[R], arg string) error {
	name, value, isParam := strings.Cut(arg[2:], "=")
	if isParam {
		p := findParameter(c.Parameters, name, longName)
		if p == nil {
			return d.fail(c, c.unknownArgumentError(UnexpectedParameter, arg))
		}
		p.Value.bind(value)
		return nil
	}
	f := findFlag(c.Flags, name, longName)
	if f == nil {
		return d.fail(c, c.unknownArgumentError(UnknownArgument, arg))
	}
	f.Value.mark()
	return nil
}

// short handles -f and -p <value>. Flags win over parameters sharing a short name.
func (d *dispatcher[R]) short(c *Command[R], arg string) error {
	name := arg[1:]
	if f := findFlag(c.Flags, name, shortName); f != nil {
		f.Value.mark()
		return nil
	}
	p := findParameter(c.Parameters, name, shortName)
	if p == nil {
		return d.fail(c, c.unknownArgumentError(UnknownArgument, arg))
	}
	value, ok := d.next()
	if !ok {
		return &Error{Code: ExpectedValue, Token: arg}
	}
	p.Value.bind(value)
	return nil
}

func (d *dispatcher[R]) fail(c *Command[R], err *Error) error {
	if c.HelpEnabled {
		fmt.Fprintf(d.options.Stderr, "error: %v\n", err)
		err.reported = true
	}
	return err
}
