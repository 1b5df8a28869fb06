// Package tokenize turns a raw argv slice into resolved option uses and
// positional indices, against a known option table compiled from a doc.
// It is a direct port of docopt_fish.cpp's parse_long, parse_short,
// parse_unseparated_short and separate_argv_into_options_and_positionals.
package tokenize

import (
	"strings"

	"github.com/dzonerzy/go-usagedoc/internal/docmodel"
	"github.com/dzonerzy/go-usagedoc/internal/errs"
	"github.com/dzonerzy/go-usagedoc/internal/text"
)

// Result is everything the tokenizer produces from one argv vector: every
// resolved option use, every argv index classified as a bare positional,
// and any errors encountered along the way. An index appears in at most
// one of Options (as NameIdxInArgv or ValueIdxInArgv) or Positionals. It
// appears in neither when it was skipped as the "--" terminator itself or
// when it is a single-dash token whose short-cluster parse failed (that
// failure is reported in Errors only).
type Result struct {
	Options     []docmodel.ResolvedOption
	Positionals []docmodel.Positional
	Errors      []errs.Error
}

// Options toggles the argv-tokenizer's caller-facing behaviors.
type Options struct {
	// ResolveUnambiguousPrefixes lets "--fo" match "--foo" when it is the
	// only long option with that prefix.
	ResolveUnambiguousPrefixes bool
	// StrictSeparators reports errs.WrongSeparator when a long option's
	// argv separator (= vs space) disagrees with its spec separator (the
	// option is still bound), and limits glued short values ("-DFOO") to
	// options whose spec separator is none.
	StrictSeparators bool
}

// Tokenize classifies every entry of argv against the option table
// compiled from docSrc.
func Tokenize(docSrc string, options []docmodel.Option, argv []string, opts Options) Result {
	t := &tokenizer{docSrc: docSrc, options: options, argv: argv, opts: opts}
	return t.run()
}

type tokenizer struct {
	docSrc  string
	options []docmodel.Option
	argv    []string
	opts    Options
	result  Result
}

func (t *tokenizer) run() Result {
	terminated := false
	for i := 0; i < len(t.argv); i++ {
		arg := t.argv[i]
		switch {
		case !terminated && arg == "--":
			terminated = true
		case terminated:
			t.result.Positionals = append(t.result.Positionals, docmodel.Positional{IdxInArgv: i})
		case isLongOption(arg):
			t.parseLong(&i)
		case isShortOption(arg):
			t.parseShortLike(&i)
		default:
			t.result.Positionals = append(t.result.Positionals, docmodel.Positional{IdxInArgv: i})
		}
	}
	return t.result
}

func isLongOption(arg string) bool {
	return len(arg) > 2 && arg[0] == '-' && arg[1] == '-'
}

func isShortOption(arg string) bool {
	return len(arg) >= 2 && arg[0] == '-' && arg[1] != '-'
}

// parseLong handles a "--name" or "--name=value" token, advancing *i past
// an extra argv slot if the value is space separated.
func (t *tokenizer) parseLong(i *int) {
	idx := *i
	arg := t.argv[idx]
	body := arg[2:]
	name, hasEq, value := splitNameValue(body, 2)

	matches := t.resolveLongCandidates(name, docmodel.DoubleLong)
	switch len(matches) {
	case 0:
		t.result.Errors = append(t.result.Errors, errs.Argv(idx, errs.UnknownOption,
			"Unknown option '"+arg+"'"))
		t.result.Positionals = append(t.result.Positionals, docmodel.Positional{IdxInArgv: idx})
		return
	case 1:
		t.bindLongMatch(idx, arg, matches[0], hasEq, value, i)
		return
	default:
		t.result.Errors = append(t.result.Errors, errs.Argv(idx, errs.AmbiguousPrefixMatch,
			"Option '"+arg+"' is ambiguous and could match multiple options"))
		t.result.Positionals = append(t.result.Positionals, docmodel.Positional{IdxInArgv: idx})
	}
}

// parseShortLike handles single-dash tokens, ported from
// docopt_fish.cpp's separate_argv_into_options_and_positionals: every
// single-dash token, regardless of length, is first tried as an
// unambiguous single-long match — a two-character token like "-x" is
// still a valid prefix of a longer single-long option such as "-xyz",
// so its length alone must not skip that attempt. Only on failure does
// it fall back to the unseparated-short glued-value shape, then the
// general short cluster.
func (t *tokenizer) parseShortLike(i *int) {
	idx := *i
	arg := t.argv[idx]

	body := arg[1:]
	name, hasEq, value := splitNameValue(body, 1)
	matches := t.resolveLongCandidates(name, docmodel.SingleLong)
	if len(matches) == 1 {
		t.bindLongMatch(idx, arg, matches[0], hasEq, value, i)
		return
	}
	if len(matches) > 1 {
		t.result.Errors = append(t.result.Errors, errs.Argv(idx, errs.AmbiguousPrefixMatch,
			"Option '"+arg+"' is ambiguous and could match multiple options"))
		t.result.Positionals = append(t.result.Positionals, docmodel.Positional{IdxInArgv: idx})
		return
	}

	if ok, resolved, _ := t.parseUnseparatedShort(idx, arg); ok {
		t.result.Options = append(t.result.Options, resolved)
		return
	}

	if ok, resolvedList, clusterErrs := t.parseShort(i, idx, arg); ok {
		t.result.Options = append(t.result.Options, resolvedList...)
	} else {
		t.result.Errors = append(t.result.Errors, clusterErrs...)
	}
}

// bindLongMatch finalizes a resolved long/single-long option once its
// candidate has been uniquely determined.
func (t *tokenizer) bindLongMatch(idx int, arg string, opt docmodel.Option, hasEq bool, value text.Range, i *int) {
	if !opt.HasValue() {
		if hasEq {
			t.result.Errors = append(t.result.Errors, errs.Argv(idx, errs.OptionUnexpectedArgument,
				"Option '"+arg+"' does not take an argument"))
		}
		t.result.Options = append(t.result.Options, docmodel.ResolvedOption{
			Option: opt, NameIdxInArgv: idx, ValueIdxInArgv: docmodel.NoIndex,
		})
		return
	}

	if hasEq {
		t.checkSeparator(idx, arg, opt, hasEq)
		t.result.Options = append(t.result.Options, docmodel.ResolvedOption{
			Option: opt, NameIdxInArgv: idx, ValueIdxInArgv: idx, ValueRangeInArg: value,
		})
		return
	}

	if *i+1 >= len(t.argv) {
		t.result.Errors = append(t.result.Errors, errs.Argv(idx, errs.OptionHasMissingArgument,
			"Option '"+arg+"' requires an argument"))
		t.result.Options = append(t.result.Options, docmodel.ResolvedOption{
			Option: opt, NameIdxInArgv: idx, ValueIdxInArgv: docmodel.NoIndex,
		})
		return
	}
	t.checkSeparator(idx, arg, opt, false)
	*i++
	valueIdx := *i
	t.result.Options = append(t.result.Options, docmodel.ResolvedOption{
		Option: opt, NameIdxInArgv: idx, ValueIdxInArgv: valueIdx,
		ValueRangeInArg: text.Range{Start: 0, Length: len(t.argv[valueIdx])},
	})
}

// resolveLongCandidates finds every option of the given form whose name
// exactly equals needle, or, absent an exact match and only when
// ResolveUnambiguousPrefixes is set, every option whose name has needle
// as a proper prefix. More than one result means the prefix is ambiguous;
// the caller decides what to do with that.
func (t *tokenizer) resolveLongCandidates(needle string, form docmodel.DashForm) []docmodel.Option {
	var exact, prefix []docmodel.Option
	for _, opt := range t.options {
		if opt.Form() != form {
			continue
		}
		name := opt.Name.Slice(t.docSrc)
		if name == needle {
			exact = append(exact, opt)
		} else if t.opts.ResolveUnambiguousPrefixes && len(needle) > 0 && len(name) > len(needle) && strings.HasPrefix(name, needle) {
			prefix = append(prefix, opt)
		}
	}
	if len(exact) > 0 {
		return exact[:1]
	}
	return prefix
}

// checkSeparator reports a wrong_separator error when StrictSeparators is
// set and the argv token's separator disagrees with the option's spec
// separator.
func (t *tokenizer) checkSeparator(idx int, arg string, opt docmodel.Option, hasEq bool) {
	if !t.opts.StrictSeparators || !opt.HasValue() {
		return
	}
	argSep := docmodel.SepSpace
	if hasEq {
		argSep = docmodel.SepEquals
	}
	if argSep != opt.Separator && opt.Separator != docmodel.SepNone {
		t.result.Errors = append(t.result.Errors, errs.Argv(idx, errs.WrongSeparator,
			"Option '"+arg+"' uses the wrong separator"))
	}
}

func splitNameValue(body string, offset int) (name string, hasEq bool, value text.Range) {
	eq := strings.IndexByte(body, '=')
	if eq < 0 {
		return body, false, text.Range{}
	}
	return body[:eq], true, text.Range{Start: offset + eq + 1, Length: len(body) - eq - 1}
}
