package cli

// FlagValue holds the state bound to a [Flag]. The zero value is an unmarked flag, ready to use.
//
// A FlagValue is owned by the caller and outlives any number of dispatches. Once marked it stays
// marked: the library never resets it, so replaying a command tree against a second set of
// arguments observes the marks left by the first.
type FlagValue struct {
	marked bool
}

// Value reports whether the flag was present on the command line.
func (v *FlagValue) Value() bool {
	return v.marked
}

func (v *FlagValue) mark() {
	v.marked = true
}

// ParameterValue holds the state bound to a [Parameter]. The zero value is an unset parameter,
// ready to use. Like [FlagValue], it is never reset by the library.
type ParameterValue struct {
	value string
	set   bool
}

// Value returns the bound value and whether one was bound at all. The value is stored verbatim:
// no trimming, no conversion.
func (v *ParameterValue) Value() (string, bool) {
	return v.value, v.set
}

// IsSet reports whether a value was bound.
func (v *ParameterValue) IsSet() bool {
	return v.set
}

// String returns the bound value, or the empty string if none was bound.
func (v *ParameterValue) String() string {
	return v.value
}

// bind overwrites any previously bound value.
func (v *ParameterValue) bind(value string) {
	v.value = value
	v.set = true
}
