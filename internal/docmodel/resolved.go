package docmodel

import "github.com/dzonerzy/go-usagedoc/internal/text"

// NoIndex marks the absence of an argv value index (docopt_fish.cpp's npos).
const NoIndex = -1

// ResolvedOption is one successfully tokenized use of an option in argv.
type ResolvedOption struct {
	Option        Option
	NameIdxInArgv int
	ValueIdxInArgv int // NoIndex when the option carried no value
	ValueRangeInArg text.Range
}

// HasValueIdx reports whether ValueIdxInArgv points at a real argv slot.
func (r ResolvedOption) HasValueIdx() bool { return r.ValueIdxInArgv != NoIndex }

// Positional is an argv index classified as non-option.
type Positional struct {
	IdxInArgv int
}

// ConditionMap maps a variable's display text (including angle brackets)
// to the doc range holding its free-form condition text.
type ConditionMap map[string]text.Range
