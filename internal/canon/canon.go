// Package canon canonicalizes an option list once it has been parsed out
// of a doc: it collapses duplicate aliases down to the best-described
// copy and, once a usage grammar has been walked, excises any [options]
// shortcut entry that the grammar also mentions explicitly. It is a
// direct port of docopt_fish.cpp's uniqueize_options and the shortcut
// subtraction step at the end of Parser::set_doc.
package canon

import (
	"github.com/dzonerzy/go-usagedoc/internal/docmodel"
	"github.com/dzonerzy/go-usagedoc/internal/errs"
)

// Uniqueize removes duplicate options (same name and dash form) from
// options, keeping the one with the longest description. When
// errorOnDuplicates is true, every duplicate found is also reported
// through errsOut (used for the Options: section itself; the merge of
// shortcut and usage-derived options tolerates duplicates silently).
func Uniqueize(src string, options []docmodel.Option, errorOnDuplicates bool, errsOut *[]errs.Error) []docmodel.Option {
	result := make([]docmodel.Option, 0, len(options))
	used := make([]bool, len(options))

	for i := range options {
		if used[i] {
			continue
		}
		best := i
		for j := i + 1; j < len(options); j++ {
			if used[j] || !docmodel.SameName(options[best], options[j], src) {
				continue
			}
			used[j] = true
			if errorOnDuplicates {
				*errsOut = append(*errsOut, errs.Doc(options[j].Name.Start,
					errs.OptionDuplicatedInOptions, "Option specified more than once"))
			}
			if options[j].Description.Length > options[best].Description.Length {
				best = j
			}
		}
		used[best] = true
		result = append(result, options[best])
	}
	return result
}

// SubtractUsageMentions removes any shortcutOptions entry that also
// appears, by name, among usageOptions: once an option is spelled out
// explicitly in a usage pattern it is no longer eligible to be satisfied
// implicitly via the [options] shortcut.
func SubtractUsageMentions(src string, shortcutOptions, usageOptions []docmodel.Option) []docmodel.Option {
	result := make([]docmodel.Option, 0, len(shortcutOptions))
	for _, shortcut := range shortcutOptions {
		mentioned := false
		for _, usageOpt := range usageOptions {
			if docmodel.SameName(shortcut, usageOpt, src) {
				mentioned = true
				break
			}
		}
		if !mentioned {
			result = append(result, shortcut)
		}
	}
	return result
}
