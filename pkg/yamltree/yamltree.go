// Package yamltree builds a command tree from a YAML document.
//
// The document mirrors [cli.Command]. Execution functions cannot be written in YAML, so each
// command names one with exec, and the name is looked up in a [Registry] supplied by the program:
//
//	name: task
//	description: keep a task list
//	help: true
//	parameters:
//	  - short: f
//	    long: file
//	    description: path of the task file
//	commands:
//	  - name: add
//	    exec: add
//	    flags:
//	      - short: d
//	        long: done
//
// Stores for every flag and parameter are created by [Load] and found again with [Tree.Flag] and
// [Tree.Parameter].
package yamltree

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jacobrgreen/cli"
)

// Registry maps the exec names used in a document to execution functions.
type Registry[R any] map[string]func() R

type argumentDoc struct {
	Short       string `yaml:"short"`
	Long        string `yaml:"long"`
	Description string `yaml:"description"`
}

type commandDoc struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Usage       string        `yaml:"usage"`
	Help        bool          `yaml:"help"`
	Exec        string        `yaml:"exec"`
	Flags       []argumentDoc `yaml:"flags"`
	Parameters  []argumentDoc `yaml:"parameters"`
	Commands    []commandDoc  `yaml:"commands"`
}

// Tree is a command tree loaded from YAML together with the stores bound to its arguments.
type Tree[R any] struct {
	Root *cli.Command[R]

	flags  map[string]*cli.FlagValue
	params map[string]*cli.ParameterValue
}

// Load decodes data and assembles a validated command tree. Unknown fields, exec names missing
// from registry, and trees rejected by [cli.Validate] are errors.
func Load[R any](data []byte, registry Registry[R]) (*Tree[R], error) {
	var doc commandDoc
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("failed to decode command tree: %w", err)
	}
	t := &Tree[R]{
		flags:  make(map[string]*cli.FlagValue),
		params: make(map[string]*cli.ParameterValue),
	}
	root, err := t.build(doc, nil, nil, registry)
	if err != nil {
		return nil, err
	}
	if err := cli.Validate(root); err != nil {
		return nil, err
	}
	t.Root = root
	return t, nil
}

// LoadFile reads the document at path and calls [Load].
func LoadFile[R any](path string, registry Registry[R]) (*Tree[R], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read command tree: %w", err)
	}
	return Load(data, registry)
}

// ErrUnregistered is returned for an exec name that is not in the registry.
var ErrUnregistered = errors.New("exec function not registered")

// build converts doc, reached through the command names in path. below is path without the root.
func (t *Tree[R]) build(doc commandDoc, path, below []string, registry Registry[R]) (*cli.Command[R], error) {
	cmd := &cli.Command[R]{
		Name:        doc.Name,
		Description: doc.Description,
		Usage:       doc.Usage,
		HelpEnabled: doc.Help,
	}
	here := append(path[:len(path):len(path)], doc.Name)
	if doc.Exec != "" {
		fn, ok := registry[doc.Exec]
		if !ok {
			return nil, fmt.Errorf("command %q: %w: %q", strings.Join(here, " "), ErrUnregistered, doc.Exec)
		}
		cmd.Exec = fn
	}

	// Stores are keyed by the subcommand names below the root.
	scope := strings.Join(below, " ")

	for _, a := range doc.Flags {
		v := &cli.FlagValue{}
		cmd.Flags = append(cmd.Flags, &cli.Flag{
			ShortName:   a.Short,
			LongName:    a.Long,
			Description: a.Description,
			Value:       v,
		})
		for _, name := range []string{a.Short, a.Long} {
			if name != "" {
				t.flags[key(scope, name)] = v
			}
		}
	}
	for _, a := range doc.Parameters {
		v := &cli.ParameterValue{}
		cmd.Parameters = append(cmd.Parameters, &cli.Parameter{
			ShortName:   a.Short,
			LongName:    a.Long,
			Description: a.Description,
			Value:       v,
		})
		for _, name := range []string{a.Short, a.Long} {
			if name != "" {
				t.params[key(scope, name)] = v
			}
		}
	}

	for _, sub := range doc.Commands {
		child, err := t.build(sub, here, append(below[:len(below):len(below)], sub.Name), registry)
		if err != nil {
			return nil, err
		}
		cmd.SubCommands = append(cmd.SubCommands, child)
	}
	return cmd, nil
}

func key(scope, name string) string {
	return scope + "\x00" + name
}

// Flag returns the store of a flag. The last element of path is the flag's short or long name,
// without dashes; the elements before it are the subcommand names leading to the command that
// declares it. Flag returns nil if there is no such flag.
//
//	verbose := tree.Flag("verbose")      // declared on the root
//	done := tree.Flag("add", "done")     // declared on "add"
func (t *Tree[R]) Flag(path ...string) *cli.FlagValue {
	if len(path) == 0 {
		return nil
	}
	return t.flags[key(strings.Join(path[:len(path)-1], " "), path[len(path)-1])]
}

// Parameter is the parameter counterpart of [Tree.Flag].
func (t *Tree[R]) Parameter(path ...string) *cli.ParameterValue {
	if len(path) == 0 {
		return nil
	}
	return t.params[key(strings.Join(path[:len(path)-1], " "), path[len(path)-1])]
}
