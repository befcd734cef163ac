package cli

import (
	"fmt"
	"strings"

	"github.com/jacobrgreen/cli/pkg/textutil"
)

const (
	consoleWidth = 80
	nameWidth    = 20
)

// DefaultUsage renders the help text of c: its description, usage line, and the flags,
// parameters and subcommands it accepts, in declaration order. If c has a UsageFunc, its result
// is returned instead.
func DefaultUsage[R any](c *Command[R]) string {
	if c == nil {
		return ""
	}
	return usage(c, []*Command[R]{c})
}

// usage renders c as reached through path, which ends with c.
func usage[R any](c *Command[R], path []*Command[R]) string {
	if c.UsageFunc != nil {
		return c.UsageFunc(c)
	}

	var b strings.Builder

	if c.Description != "" {
		for _, line := range textutil.Wrap(c.Description, consoleWidth) {
			b.WriteString(line)
			b.WriteRune('\n')
		}
		b.WriteRune('\n')
	}

	b.WriteString("Usage:\n")
	if c.Usage != "" {
		b.WriteString("  " + c.Usage + "\n")
	} else {
		line := getCommandPath(path)
		if len(c.Flags) > 0 || len(c.Parameters) > 0 {
			line += " [flags]"
		}
		if len(c.SubCommands) > 0 {
			line += " <command>"
		}
		b.WriteString("  " + strings.TrimSpace(line) + "\n")
	}
	b.WriteRune('\n')

	if len(c.Flags) > 0 {
		b.WriteString("Flags:\n")
		for _, f := range c.Flags {
			writeEntry(&b, displayName(f.ShortName, f.LongName), f.Description)
		}
		b.WriteRune('\n')
	}

	if len(c.Parameters) > 0 {
		b.WriteString("Parameters:\n")
		for _, p := range c.Parameters {
			name := displayName(p.ShortName, p.LongName)
			if p.LongName != "" {
				name += "=<value>"
			} else {
				name += " <value>"
			}
			writeEntry(&b, name, p.Description)
		}
		b.WriteRune('\n')
	}

	if len(c.SubCommands) > 0 {
		b.WriteString("Commands:\n")
		helpful := false
		for _, sub := range c.SubCommands {
			writeEntry(&b, sub.Name, sub.Description)
			helpful = helpful || sub.HelpEnabled
		}
		b.WriteRune('\n')

		if helpful {
			fmt.Fprintf(&b, "Use \"%s <command> %s\" for more information about a command.\n",
				strings.TrimSpace(getCommandPath(path)), helpKeyword)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// writeEntry writes one indented name/description row of a help section.
func writeEntry(b *strings.Builder, name, description string) {
	row := textutil.Columns("  "+name, description, nameWidth, consoleWidth)
	b.WriteString(row)
	b.WriteRune('\n')
}
