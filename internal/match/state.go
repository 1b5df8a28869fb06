// Package match implements the non-deterministic tree walk that binds a
// tokenized argv against a compiled usage AST. It is grounded on
// docopt_fish.cpp's match_state/match_context machinery, expressed
// against this module's own ast.Tree shape and threaded with plain Go
// value types instead of the reference's mutable C++ vectors.
package match

import (
	"github.com/dzonerzy/go-usagedoc/internal/docmodel"
	"github.com/dzonerzy/go-usagedoc/internal/intern"
)

// Accumulator is the bound value for one option/variable/command key: how
// many times it occurred plus the ordered values seen for it.
type Accumulator struct {
	Count  int
	Values []string
}

// clone returns a value-independent copy of a.
func (a Accumulator) clone() Accumulator {
	values := make([]string, len(a.Values))
	copy(values, a.Values)
	return Accumulator{Count: a.Count, Values: values}
}

// State is one frontier element of the tree walk.
type State struct {
	Accum          map[string]Accumulator
	NextPositional int
	Consumed       []bool
	Suggested      map[string]struct{}
}

// NewState returns an initial state for a match run against numResolved
// resolved options.
func NewState(numResolved int) State {
	return State{
		Accum:     make(map[string]Accumulator),
		Consumed:  make([]bool, numResolved),
		Suggested: make(map[string]struct{}),
	}
}

// Clone returns a deep, independent copy of s. Call this only at true
// branching points; single-branch chains should thread s by value, since
// Go already copies the struct header on each call — only the
// referenced map/slice contents need deliberate duplication when two
// branches might mutate them independently.
func (s State) Clone() State {
	accum := make(map[string]Accumulator, len(s.Accum))
	for k, v := range s.Accum {
		accum[k] = v.clone()
	}
	consumed := make([]bool, len(s.Consumed))
	copy(consumed, s.Consumed)
	suggested := make(map[string]struct{}, len(s.Suggested))
	for k := range s.Suggested {
		suggested[k] = struct{}{}
	}
	return State{Accum: accum, NextPositional: s.NextPositional, Consumed: consumed, Suggested: suggested}
}

// Progress is the monotonic scalar used to detect ellipsis fixed points.
func (s State) Progress() int {
	consumed := 0
	for _, c := range s.Consumed {
		if c {
			consumed++
		}
	}
	return s.NextPositional + consumed + len(s.Suggested)
}

func (s *State) record(key string, value string, hasValue bool) {
	acc := s.Accum[key]
	acc.Count++
	if hasValue {
		acc.Values = append(acc.Values, value)
	}
	s.Accum[key] = acc
}

// Context is the read-only (aside from InSquareBrackets) environment
// shared across one whole match run.
type Context struct {
	Src                  string
	Argv                 []string
	Positionals          []docmodel.Positional
	Resolved             []docmodel.ResolvedOption
	GenerateSuggestions  bool
	MatchAllowIncomplete bool
	InSquareBrackets     bool
	// Interner canonicalizes option display keys ("--foo"/"-f") so the
	// many State clones a match run produces share one backing string
	// per key instead of re-slicing Src on every Accum/Suggested write.
	// May be nil, in which case display-key construction just skips
	// interning.
	Interner *intern.StringInterner
}

func (c *Context) nextPositionalText(state State) (string, bool) {
	if state.NextPositional >= len(c.Positionals) {
		return "", false
	}
	idx := c.Positionals[state.NextPositional].IdxInArgv
	return c.Argv[idx], true
}
