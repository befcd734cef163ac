package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultUsage(t *testing.T) {
	t.Parallel()

	t.Run("root", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		want := strings.Join([]string{
			"Usage:",
			"  todo [flags] <command>",
			"",
			"Flags:",
			"  -v, --verbose     enable verbose mode",
			"  --version         show version",
			"",
			"Parameters:",
			"  -o, --output=<value>  output file",
			"",
			"Commands:",
			"  add               add an item",
			"  nested",
		}, "\n")
		assert.Equal(t, want, DefaultUsage(s.root))
	})
	t.Run("description and short parameter", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		want := strings.Join([]string{
			"add an item",
			"",
			"Usage:",
			"  add [flags]",
			"",
			"Flags:",
			"  -n, --dry-run     enable dry-run mode",
			"",
			"Parameters:",
			"  -t <value>        tag the item",
		}, "\n")
		assert.Equal(t, want, DefaultUsage(s.add))
	})
	t.Run("custom usage line", func(t *testing.T) {
		t.Parallel()
		s := newTestState()
		s.leaf.Usage = "leaf [nothing]"

		assert.Equal(t, "Usage:\n  leaf [nothing]", DefaultUsage(s.leaf))
	})
	t.Run("usage func", func(t *testing.T) {
		t.Parallel()
		s := newTestState()
		s.leaf.UsageFunc = func(c *Command[string]) string { return "custom " + c.Name }

		assert.Equal(t, "custom leaf", DefaultUsage(s.leaf))
	})
	t.Run("help hint", func(t *testing.T) {
		t.Parallel()
		s := newTestState()
		s.sub.HelpEnabled = true

		got := DefaultUsage(s.nested)
		assert.True(t, strings.HasSuffix(got,
			`Use "nested <command> help" for more information about a command.`), got)
	})
	t.Run("long description wraps", func(t *testing.T) {
		t.Parallel()
		s := newTestState()
		s.add.Description = strings.Repeat("word ", 30)

		got := DefaultUsage(s.root)
		for _, line := range strings.Split(got, "\n") {
			assert.LessOrEqual(t, len(line), consoleWidth, line)
		}
		assert.Contains(t, got, "\n"+strings.Repeat(" ", nameWidth)+"word")
	})
	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, DefaultUsage[int](nil))
	})
	t.Run("printed by help keyword with full path", func(t *testing.T) {
		t.Parallel()
		s := newTestState()
		s.sub.HelpEnabled = true
		stdout := bytes.NewBuffer(nil)

		_, err := Execute(s.root, []string{"nested", "sub", "help"}, &RunOptions{Stdout: stdout})
		require.ErrorIs(t, err, ErrHelp)
		assert.True(t, strings.HasPrefix(stdout.String(), "Usage:\n  todo nested sub [flags]\n"), stdout.String())
		assert.Contains(t, stdout.String(), "  --echo=<value>    echo the message")
	})
}
