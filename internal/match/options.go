package match

import "github.com/dzonerzy/go-usagedoc/internal/docmodel"

// matchOptions runs the shared options sub-matcher against candidates,
// which is either the full shortcut-options list (for "[options]") or a
// single-element list (for one option clause in a usage pattern).
func matchOptions(candidates []docmodel.Option, state State, ctx *Context) []State {
	next := state.Clone()

	matchedAny := false
	suggestedAny := false
	seenLongNames := make(map[string]bool)

	type potential struct {
		key            string
		correspondingLongName string
	}
	var potentials []potential

	for _, candidate := range candidates {
		longKey := docmodel.LongestNameAsString(candidate, ctx.Src, ctx.Interner)
		ownKey := docmodel.NameAsString(candidate, ctx.Src, ctx.Interner)
		if !candidate.CorrespondingLongName.Empty() {
			ln := candidate.CorrespondingLongName.Slice(ctx.Src)
			if seenLongNames[ln] {
				continue
			}
		}

		resolvedIdx := -1
		for i, r := range ctx.Resolved {
			if next.Consumed[i] {
				continue
			}
			if docmodel.SameName(r.Option, candidate, ctx.Src) {
				resolvedIdx = i
				break
			}
		}

		if resolvedIdx >= 0 {
			next.Consumed[resolvedIdx] = true
			r := ctx.Resolved[resolvedIdx]
			next.record(longKey, valueText(ctx, r), r.HasValueIdx())
			matchedAny = true
			if !candidate.CorrespondingLongName.Empty() {
				seenLongNames[candidate.CorrespondingLongName.Slice(ctx.Src)] = true
			}
			continue
		}

		if ctx.GenerateSuggestions {
			ln := ""
			if !candidate.CorrespondingLongName.Empty() {
				ln = candidate.CorrespondingLongName.Slice(ctx.Src)
			}
			potentials = append(potentials, potential{key: ownKey, correspondingLongName: ln})
		}
	}

	for _, p := range potentials {
		if p.correspondingLongName != "" && seenLongNames[p.correspondingLongName] {
			continue
		}
		if _, ok := next.Suggested[p.key]; !ok {
			next.Suggested[p.key] = struct{}{}
			suggestedAny = true
		}
	}

	if !matchedAny && !suggestedAny {
		return nil
	}
	return []State{next}
}

func valueText(ctx *Context, r docmodel.ResolvedOption) string {
	if !r.HasValueIdx() {
		return ""
	}
	arg := ctx.Argv[r.ValueIdxInArgv]
	return r.ValueRangeInArg.Slice(arg)
}
