package cli

// Flag declares a boolean switch, spelled -{ShortName} or --{LongName} on the command line. At
// least one of the names must be set.
type Flag struct {
	ShortName   string
	LongName    string
	Description string

	// Value receives the mark when the flag is present. Required.
	Value *FlagValue
}

// Parameter declares a named option carrying a string value, spelled -{ShortName} <value> or
// --{LongName}=<value> on the command line. At least one of the names must be set.
type Parameter struct {
	ShortName   string
	LongName    string
	Description string

	// Value receives the bound string. Required.
	Value *ParameterValue
}

type nameKind int

const (
	shortName nameKind = iota
	longName
)

func (k nameKind) of(short, long string) string {
	if k == shortName {
		return short
	}
	return long
}

// findFlag returns the first flag, in declaration order, whose name of the given kind equals name.
// An empty name never matches, so a flag declared without a short name cannot be reached by a
// bare "-".
func findFlag(flags []*Flag, name string, kind nameKind) *Flag {
	if name == "" {
		return nil
	}
	for _, f := range flags {
		if kind.of(f.ShortName, f.LongName) == name {
			return f
		}
	}
	return nil
}

// findParameter is the parameter counterpart of findFlag.
func findParameter(params []*Parameter, name string, kind nameKind) *Parameter {
	if name == "" {
		return nil
	}
	for _, p := range params {
		if kind.of(p.ShortName, p.LongName) == name {
			return p
		}
	}
	return nil
}

// displayName renders an argument the way it is spelled on the command line, e.g. "-f, --flag".
func displayName(short, long string) string {
	switch {
	case short != "" && long != "":
		return "-" + short + ", --" + long
	case short != "":
		return "-" + short
	default:
		return "--" + long
	}
}
