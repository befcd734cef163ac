package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// ErrHelp is returned when a help-enabled command receives the "help" keyword. The help text has
// already been written; callers should treat it as a successful early exit.
var ErrHelp = flag.ErrHelp

// Sentinels matched by [Error] through errors.Is, one per [ErrorCode].
var (
	ErrUnknownArgument     = errors.New("unknown argument")
	ErrUnexpectedParameter = errors.New("unexpected parameter")
	ErrUnknownCommand      = errors.New("unknown command")
	ErrExpectedValue       = errors.New("expected value")
	ErrExpectedSubcommand  = errors.New("expected subcommand")
)

// ErrorCode identifies the kind of malformed input that stopped a dispatch.
type ErrorCode int

const (
	// UnknownArgument: a -x or --name token matching neither a flag nor a parameter.
	UnknownArgument ErrorCode = iota + 1
	// UnexpectedParameter: a --name=value token whose name is not a declared parameter.
	UnexpectedParameter
	// UnknownCommand: a bare token matching no subcommand.
	UnknownCommand
	// ExpectedValue: a short parameter token with nothing after it.
	ExpectedValue
	// ExpectedSubcommand: arguments ran out at a command that has no Exec.
	ExpectedSubcommand
)

func (c ErrorCode) String() string {
	return convertErrorCode(c)
}

func convertErrorCode(code ErrorCode) string {
	switch code {
	case UnknownArgument:
		return "unknown argument"
	case UnexpectedParameter:
		return "unexpected parameter"
	case UnknownCommand:
		return "unknown command"
	case ExpectedValue:
		return "expected value for argument"
	case ExpectedSubcommand:
		return "expected subcommand"
	default:
		return "unknown error"
	}
}

// Error describes the first malformed token of a dispatch. Stores mutated by tokens before it keep
// their values.
type Error struct {
	Code ErrorCode

	// Token is the offending token exactly as it was supplied. Empty for ExpectedSubcommand.
	Token string

	// Suggestions lists similarly named declarations for unknown commands and arguments.
	Suggestions []string

	// reported is set once the error has been echoed to the error stream.
	reported bool
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := convertErrorCode(e.Code)
	if e.Code != ExpectedSubcommand {
		msg = fmt.Sprintf("%s %q", msg, e.Token)
	}
	if len(e.Suggestions) > 0 {
		msg += ". Did you mean one of these?\n\t" + strings.Join(e.Suggestions, "\n\t")
	}
	return msg
}

func (e *Error) Is(target error) bool {
	switch e.Code {
	case UnknownArgument:
		return target == ErrUnknownArgument
	case UnexpectedParameter:
		return target == ErrUnexpectedParameter
	case UnknownCommand:
		return target == ErrUnknownCommand
	case ExpectedValue:
		return target == ErrExpectedValue
	case ExpectedSubcommand:
		return target == ErrExpectedSubcommand
	}
	return false
}

// Construction errors wrapped by [ValidationError].
var (
	ErrNilCommand  = errors.New("command is nil")
	ErrNilArgument = errors.New("argument is nil")
	ErrNoName      = errors.New("no name")
	ErrInvalidName = errors.New("name contains whitespace")
	ErrNoExec      = errors.New("no execution function and no subcommands")
	ErrNoValue     = errors.New("no value to bind")
)

// ValidationError is returned when a command tree violates a construction invariant. It is
// reported before any argument is consumed.
type ValidationError struct {
	// Path is the space-separated command path of the offending node.
	Path string
	// Subject names the offending declaration, e.g. "flag -v" or "subcommand 2". Empty when the
	// command itself is at fault.
	Subject string
	Err     error
}

func (e *ValidationError) Error() string {
	where := fmt.Sprintf("command %q", e.Path)
	if e.Subject != "" {
		where += ": " + e.Subject
	}
	return fmt.Sprintf("invalid %s: %v", where, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
