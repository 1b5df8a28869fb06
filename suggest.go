package usagedoc

import (
	"fmt"

	"github.com/xrash/smetrics"

	"github.com/dzonerzy/go-usagedoc/internal/docmodel"
	"github.com/dzonerzy/go-usagedoc/internal/errs"
	"github.com/dzonerzy/go-usagedoc/internal/fuzzy"
	"github.com/dzonerzy/go-usagedoc/internal/intern"
)

// jaroWinklerBoost and jaroWinklerPrefixSize are the constants the reference
// smetrics example uses for JaroWinkler; they favor shared prefixes,
// which suits option names ("--forse" vs "--force") better than a plain
// edit-distance score alone.
const (
	jaroWinklerBoost      = 0.7
	jaroWinklerPrefixSize = 4
)

// enrichTokenErrors appends a "did you mean" hint to every unknown_option
// and ambiguous_prefix_match diagnostic in errsIn, scoring the offending
// argv token against every known option's display name with
// bestSuggestion: smetrics's Jaro-Winkler pick when it scores at least
// 0.75, otherwise internal/fuzzy's Levenshtein matcher's top pick.
func enrichTokenErrors(errsIn []errs.Error, argv []string, allOptions []docmodel.Option, src string, interner *intern.StringInterner) []errs.Error {
	if len(allOptions) == 0 {
		return errsIn
	}
	names := make([]string, 0, len(allOptions)*2)
	for _, opt := range allOptions {
		names = append(names, docmodel.NameAsString(opt, src, interner))
		if !opt.CorrespondingLongName.Empty() {
			names = append(names, docmodel.LongestNameAsString(opt, src, interner))
		}
	}

	out := make([]errs.Error, len(errsIn))
	for i, e := range errsIn {
		out[i] = e
		if e.Code != errs.UnknownOption && e.Code != errs.AmbiguousPrefixMatch {
			continue
		}
		if e.ArgIndex == errs.NoPos || e.ArgIndex >= len(argv) {
			continue
		}
		if best, ok := bestSuggestion(argv[e.ArgIndex], names); ok {
			out[i].Message = fmt.Sprintf("%s (did you mean '%s'?)", e.Message, best)
		}
	}
	return out
}

// bestSuggestion blends internal/fuzzy's edit-distance ranking with
// smetrics's Jaro-Winkler similarity, preferring the Jaro-Winkler
// candidate when it beats a similarity threshold and falling back to the
// fuzzy matcher's top pick otherwise.
func bestSuggestion(input string, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	bestName := ""
	bestScore := 0.0
	for _, c := range candidates {
		score := smetrics.JaroWinkler(input, c, jaroWinklerBoost, jaroWinklerPrefixSize)
		if score > bestScore {
			bestScore = score
			bestName = c
		}
	}
	if bestScore >= 0.75 {
		return bestName, true
	}

	matcher := fuzzy.NewMatcher(3)
	if fallback := matcher.FindBest(input, candidates); fallback != "" {
		return fallback, true
	}
	return "", false
}
