// Package finalize turns a match frontier (the set of states a tree walk
// produced) into a single winning result: the accumulator map with the
// fewest unused argv indices, its suggestion set, and, optionally, empty
// entries for every option/variable/word the doc mentions so callers
// never need a "was this key even present" check. Grounded on
// docopt_fish.cpp's match_context_t::unused_arguments, match_argv's
// best-state selection loop and finalize_option_map.
package finalize

import (
	"sort"

	"github.com/dzonerzy/go-usagedoc/ast"
	"github.com/dzonerzy/go-usagedoc/internal/docmodel"
	"github.com/dzonerzy/go-usagedoc/internal/intern"
	"github.com/dzonerzy/go-usagedoc/internal/match"
)

// Outcome is the result of picking a winning state (or the empty state,
// if the frontier was empty) out of a match run.
type Outcome struct {
	Values      map[string]match.Accumulator
	Unused      []int
	Suggestions []string
}

// Select picks the frontier state with the fewest unused argv indices,
// breaking ties by earliest occurrence in the frontier (the reference's
// "first seen wins ties" rule, since it only replaces best on a strict
// improvement).
func Select(frontier []match.State, argvLen int, ctx *match.Context) Outcome {
	if len(frontier) == 0 {
		all := make([]int, argvLen)
		for i := range all {
			all[i] = i
		}
		return Outcome{Values: map[string]match.Accumulator{}, Unused: all}
	}

	unusedByState := make([][]int, len(frontier))
	bestIdx := 0
	for i, state := range frontier {
		unusedByState[i] = UnusedArgvIndices(state, argvLen, ctx)
		if len(unusedByState[i]) < len(unusedByState[bestIdx]) {
			bestIdx = i
		}
	}

	suggestions := make(map[string]struct{})
	for i, state := range frontier {
		if len(unusedByState[i]) == len(unusedByState[bestIdx]) {
			for k := range state.Suggested {
				suggestions[k] = struct{}{}
			}
		}
	}

	return Outcome{
		Values:      frontier[bestIdx].Accum,
		Unused:      unusedByState[bestIdx],
		Suggestions: sortedSuggestions(suggestions),
	}
}

// UnusedArgvIndices computes, for one state, which argv indices were
// never consumed: unconsumed positionals, options resolved but not
// matched during tree descent, and (subtracted back out) any argv index
// that both did and didn't get consumed because a clustered short
// option was only partially absorbed.
func UnusedArgvIndices(state match.State, argvLen int, ctx *match.Context) []int {
	used := make([]bool, argvLen)

	for i := 0; i < state.NextPositional && i < len(ctx.Positionals); i++ {
		used[ctx.Positionals[i].IdxInArgv] = true
	}

	for i, consumed := range state.Consumed {
		if !consumed {
			continue
		}
		r := ctx.Resolved[i]
		used[r.NameIdxInArgv] = true
		if r.HasValueIdx() {
			used[r.ValueIdxInArgv] = true
		}
	}

	for i, consumed := range state.Consumed {
		if consumed {
			continue
		}
		used[ctx.Resolved[i].NameIdxInArgv] = false
	}

	var unused []int
	for i, u := range used {
		if !u {
			unused = append(unused, i)
		}
	}
	return unused
}

// FillEmpty inserts a zero-value accumulator for every option, variable
// and fixed word the doc mentions that the winning state didn't already
// bind, and applies each option's [default: ...] value when it went
// unmatched. Only invoked when the caller requested generate-empty-args.
// interner may be nil, in which case the display keys it builds are
// just left uninterned.
func FillEmpty(src string, values map[string]match.Accumulator, allOptions []docmodel.Option, tree *ast.Tree, interner *intern.StringInterner) map[string]match.Accumulator {
	result := make(map[string]match.Accumulator, len(values))
	for k, v := range values {
		result[k] = v
	}

	for _, opt := range allOptions {
		key := docmodel.LongestNameAsString(opt, src, interner)
		acc := result[key]
		if !opt.DefaultValue.Empty() && len(acc.Values) == 0 {
			acc.Values = append(acc.Values, opt.DefaultValue.Slice(src))
		}
		result[key] = acc
	}

	for _, v := range tree.Variables {
		key := v.Slice(src)
		if _, ok := result[key]; !ok {
			result[key] = match.Accumulator{}
		}
	}
	for _, w := range tree.Words {
		if w.Empty() {
			continue
		}
		key := w.Slice(src)
		if _, ok := result[key]; !ok {
			result[key] = match.Accumulator{}
		}
	}

	return result
}

func sortedSuggestions(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
