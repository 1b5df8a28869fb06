package tokenize

import (
	"github.com/dzonerzy/go-usagedoc/internal/docmodel"
	"github.com/dzonerzy/go-usagedoc/internal/errs"
	"github.com/dzonerzy/go-usagedoc/internal/text"
)

// parseUnseparatedShort tries the "-DNDEBUG" glued-value shape: a single
// value-taking short option immediately followed by its value with no
// separator, ported from docopt_fish.cpp's parse_unseparated_short. Only
// the character at cluster offset 1 is considered a candidate; with
// StrictSeparators set, only options whose own separator is SepNone
// qualify, matching the reference's short_options_strict_separators gate.
func (t *tokenizer) parseUnseparatedShort(idx int, arg string) (ok bool, resolved docmodel.ResolvedOption, localErrs []errs.Error) {
	ch := arg[1]
	opt, found := t.findValueShort(ch)
	if !found {
		return false, docmodel.ResolvedOption{}, nil
	}
	if len(arg) <= 2 {
		return false, docmodel.ResolvedOption{}, []errs.Error{errs.Argv(idx, errs.OptionHasMissingArgument,
			"Option '-"+string(ch)+"' requires an argument")}
	}
	return true, docmodel.ResolvedOption{
		Option: opt, NameIdxInArgv: idx, ValueIdxInArgv: idx,
		ValueRangeInArg: text.Range{Start: 2, Length: len(arg) - 2},
	}, nil
}

func (t *tokenizer) findValueShort(ch byte) (docmodel.Option, bool) {
	for _, opt := range t.options {
		if opt.Form() != docmodel.Short || !opt.HasValue() {
			continue
		}
		if t.opts.StrictSeparators && opt.Separator != docmodel.SepNone {
			continue
		}
		if name := opt.Name.Slice(t.docSrc); len(name) == 1 && name[0] == ch {
			return opt, true
		}
	}
	return docmodel.Option{}, false
}

// parseShort walks a "-abc" cluster one character at a time, ported from
// docopt_fish.cpp's parse_short. Every character but (optionally) the
// last must name a boolean short option; a value-taking option that
// isn't last in the cluster is an error rather than a silent glued
// value, since that shape belongs to parseUnseparatedShort. The whole
// cluster commits atomically: any error means no options are resolved
// out of it at all, matching the reference's all-or-nothing behavior.
func (t *tokenizer) parseShort(i *int, idx int, arg string) (ok bool, resolved []docmodel.ResolvedOption, localErrs []errs.Error) {
	optionsForArg := make([]docmodel.Option, 0, len(arg)-1)
	for pos := 1; pos < len(arg); pos++ {
		opt, found := t.findShort(arg[pos])
		if !found {
			return false, nil, []errs.Error{errs.Argv(idx, errs.UnknownOption,
				"Unknown option '-"+string(arg[pos])+"'", pos)}
		}
		optionsForArg = append(optionsForArg, opt)
	}

	lastHasValue := false
	for pos, opt := range optionsForArg {
		if !opt.HasValue() {
			continue
		}
		if pos == len(optionsForArg)-1 {
			lastHasValue = true
			continue
		}
		localErrs = append(localErrs, errs.Argv(idx, errs.OptionUnexpectedArgument,
			"Option may not have a value unless it is the last option", pos+1))
	}
	if len(localErrs) > 0 {
		return false, nil, localErrs
	}

	nameIdx := idx
	valueIdx := docmodel.NoIndex
	var valueRange text.Range
	advance := 0
	if lastHasValue {
		nextArgIdx := idx + 1
		if nextArgIdx >= len(t.argv) {
			return false, nil, []errs.Error{errs.Argv(idx, errs.OptionHasMissingArgument,
				"Option '-"+string(arg[len(arg)-1])+"' requires an argument")}
		}
		valueIdx = nextArgIdx
		valueRange = text.Range{Start: 0, Length: len(t.argv[nextArgIdx])}
		advance = 1
	}

	resolved = make([]docmodel.ResolvedOption, len(optionsForArg))
	for pos, opt := range optionsForArg {
		r := docmodel.ResolvedOption{Option: opt, NameIdxInArgv: nameIdx, ValueIdxInArgv: docmodel.NoIndex}
		if lastHasValue && pos == len(optionsForArg)-1 {
			r.ValueIdxInArgv = valueIdx
			r.ValueRangeInArg = valueRange
		}
		resolved[pos] = r
	}
	*i += advance
	return true, resolved, nil
}

func (t *tokenizer) findShort(ch byte) (docmodel.Option, bool) {
	for _, opt := range t.options {
		if opt.Form() != docmodel.Short {
			continue
		}
		if name := opt.Name.Slice(t.docSrc); len(name) == 1 && name[0] == ch {
			return opt, true
		}
	}
	return docmodel.Option{}, false
}
