// Package docmodel holds the data types that flow between the doc
// compiler stages: option records, resolved argv options, positionals
// and the variable-to-condition map. These are plain value types over
// text.Range views into the doc source; nothing here owns the source.
package docmodel

import (
	"github.com/dzonerzy/go-usagedoc/internal/intern"
	"github.com/dzonerzy/go-usagedoc/internal/text"
)

// Separator describes how an option binds to its value.
type Separator int

const (
	// SepSpace is the default/placeholder separator, and the one used
	// when there is a value but it follows whitespace: "-f <bar>".
	SepSpace Separator = iota
	// SepEquals is used when a variable follows an '=': "--foo=<bar>".
	SepEquals
	// SepNone means the value is concatenated directly onto the option,
	// e.g. the FOO in "-DFOO".
	SepNone
)

func (s Separator) String() string {
	switch s {
	case SepSpace:
		return "space"
	case SepEquals:
		return "equals"
	case SepNone:
		return "none"
	default:
		return "unknown"
	}
}

// DashForm classifies an option by its leading-dash shape.
type DashForm int

const (
	// Short is a single-dash, single-character option: -f.
	Short DashForm = iota
	// SingleLong is a single-dash, multi-character option: -std.
	SingleLong
	// DoubleLong is a double-dash option: --foo.
	DoubleLong
)

// Option is a single option specification parsed out of a doc: a name,
// an optional value placeholder, the dash form and separator it uses,
// and the description/default text and alias linkage that accompany it.
type Option struct {
	Name                  text.Range
	Value                 text.Range
	DashCount             int
	Separator             Separator
	Description           text.Range
	DefaultValue          text.Range
	CorrespondingLongName text.Range
}

// Form returns the option's dash-form class.
func (o Option) Form() DashForm {
	switch {
	case o.DashCount >= 2:
		return DoubleLong
	case o.Name.Length == 1:
		return Short
	default:
		return SingleLong
	}
}

// HasValue reports whether the option takes a value.
func (o Option) HasValue() bool { return !o.Value.Empty() }

// SameName reports whether a and b are "the same" option per spec: equal
// name text in src and the same dash-form class.
func SameName(a, b Option, src string) bool {
	return a.Form() == b.Form() && a.Name.EqualsString(src, b.Name.Slice(src))
}

// LongestNameAsString returns the display key used in result maps: the
// corresponding long name (with "--" prefix) when one exists, else the
// option's own name with its native dash prefix.
func LongestNameAsString(o Option, src string, interner *intern.StringInterner) string {
	if !o.CorrespondingLongName.Empty() {
		return internDashed(interner, "--"+o.CorrespondingLongName.Slice(src))
	}
	return NameAsString(o, src, interner)
}

// NameAsString returns the option's own dash-prefixed name, ignoring any
// corresponding long name.
func NameAsString(o Option, src string, interner *intern.StringInterner) string {
	prefix := "-"
	if o.DashCount >= 2 {
		prefix = "--"
	}
	return internDashed(interner, prefix+o.Name.Slice(src))
}

func internDashed(interner *intern.StringInterner, s string) string {
	if interner == nil {
		return s
	}
	return interner.Intern(s)
}
