package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jacobrgreen/cli/pkg/suggest"
)

// maxSuggestions bounds the "did you mean" list attached to unknown names.
const maxSuggestions = 3

// Command represents the application root or a subcommand within the command hierarchy. R is the
// type returned by the command's execution function and, in turn, by [Execute].
//
// A command tree is assembled once, validated, and then only read: dispatch mutates the
// [FlagValue] and [ParameterValue] stores it references, never the tree itself.
type Command[R any] struct {
	// Name is always a single word. For subcommands it is the token that selects the command on
	// the command line and must not be empty. For the root it is only used in help text.
	Name string

	// Description is a short sentence describing the command. It is displayed in help text.
	Description string

	// Usage optionally overrides the usage line in help text.
	//
	// Example: "todo add [flags] <command>"
	Usage string

	// UsageFunc is an optional function that replaces the whole help text of the command.
	UsageFunc func(*Command[R]) string

	// Flags and Parameters are the arguments accepted by this command. They are not inherited by
	// subcommands.
	Flags      []*Flag
	Parameters []*Parameter

	// SubCommands is a list of nested commands that exist under this command.
	SubCommands []*Command[R]

	// Exec is invoked, at most once per dispatch, when the arguments end at this command. Its
	// return value becomes the result of [Execute]. A command without Exec must have at least
	// one subcommand.
	Exec func() R

	// HelpEnabled makes the bare token "help" print this command's help text, and echoes unknown
	// argument and command errors to the error stream.
	HelpEnabled bool
}

// findSubCommand searches for a subcommand by exact name and returns it if found. Returns nil if
// no subcommand with the given name exists.
func (c *Command[R]) findSubCommand(name string) *Command[R] {
	for _, sub := range c.SubCommands {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

func (c *Command[R]) unknownCommandError(token string) *Error {
	var known []string
	for _, sub := range c.SubCommands {
		known = append(known, sub.Name)
	}
	return &Error{
		Code:        UnknownCommand,
		Token:       token,
		Suggestions: suggest.FindSimilar(token, known, maxSuggestions),
	}
}

// unknownArgumentError suggests declared names spelled the same way as token, so "--verbos"
// only suggests long names.
func (c *Command[R]) unknownArgumentError(code ErrorCode, token string) *Error {
	prefix, kind := "-", shortName
	if strings.HasPrefix(token, "--") {
		prefix, kind = "--", longName
	}
	var known []string
	if code == UnknownArgument {
		for _, f := range c.Flags {
			if name := kind.of(f.ShortName, f.LongName); name != "" {
				known = append(known, prefix+name)
			}
		}
	}
	for _, p := range c.Parameters {
		if name := kind.of(p.ShortName, p.LongName); name != "" {
			known = append(known, prefix+name)
		}
	}
	target := token
	if code == UnexpectedParameter {
		target, _, _ = strings.Cut(token, "=")
	}
	return &Error{
		Code:        code,
		Token:       token,
		Suggestions: suggest.FindSimilar(target, known, maxSuggestions),
	}
}

// Validate checks the construction invariants of a command tree:
//
//   - every subcommand has a single-word name
//   - every command has an Exec function or at least one subcommand
//   - every flag and parameter has a short or long name and a value to bind
//
// The returned error is a [*ValidationError]. [Execute] calls Validate before consuming any
// argument.
func Validate[R any](root *Command[R]) error {
	if root == nil {
		return &ValidationError{Err: ErrNilCommand}
	}
	return validateCommands(root, nil)
}

func validateCommands[R any](c *Command[R], path []string) error {
	if len(path) > 0 && c.Name == "" {
		return &ValidationError{Path: strings.Join(path, " "), Subject: "subcommand", Err: ErrNoName}
	}
	if strings.IndexFunc(c.Name, unicode.IsSpace) >= 0 {
		return &ValidationError{Path: strings.Join(append(path, c.Name), " "), Err: ErrInvalidName}
	}

	// Add current command to path for nested validation
	currentPath := append(path[:len(path):len(path)], c.Name)
	where := strings.Join(currentPath, " ")

	if c.Exec == nil && len(c.SubCommands) == 0 {
		return &ValidationError{Path: where, Err: ErrNoExec}
	}
	for i, f := range c.Flags {
		if f == nil {
			return &ValidationError{Path: where, Subject: fmt.Sprintf("flag %d", i), Err: ErrNilArgument}
		}
		if err := validateArgument("flag", f.ShortName, f.LongName, f.Value == nil); err != nil {
			err.Path = where
			return err
		}
	}
	for i, p := range c.Parameters {
		if p == nil {
			return &ValidationError{Path: where, Subject: fmt.Sprintf("parameter %d", i), Err: ErrNilArgument}
		}
		if err := validateArgument("parameter", p.ShortName, p.LongName, p.Value == nil); err != nil {
			err.Path = where
			return err
		}
	}
	for i, sub := range c.SubCommands {
		if sub == nil {
			return &ValidationError{Path: where, Subject: fmt.Sprintf("subcommand %d", i), Err: ErrNilCommand}
		}
		if err := validateCommands(sub, currentPath); err != nil {
			return err
		}
	}
	return nil
}

func validateArgument(kind, short, long string, noValue bool) *ValidationError {
	if short == "" && long == "" {
		return &ValidationError{Subject: kind, Err: ErrNoName}
	}
	subject := kind + " " + displayName(short, long)
	if strings.IndexFunc(short+long, unicode.IsSpace) >= 0 {
		return &ValidationError{Subject: subject, Err: ErrInvalidName}
	}
	if noValue {
		return &ValidationError{Subject: subject, Err: ErrNoValue}
	}
	return nil
}

func getCommandPath[R any](commands []*Command[R]) string {
	var commandPath []string
	for _, c := range commands {
		commandPath = append(commandPath, c.Name)
	}
	return strings.Join(commandPath, " ")
}
