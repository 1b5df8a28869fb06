// Package usagedoc compiles a free-form usage document into a parser
// that binds argument vectors against it. It re-exports the pieces a
// caller needs (Flags, Result, Error, ErrorCode) and wires the internal
// compile/match/finalize pipeline behind a single Parser type.
package usagedoc

import (
	"fmt"
	"runtime"
	"sort"

	"github.com/dzonerzy/go-usagedoc/ast"
	"github.com/dzonerzy/go-usagedoc/diag"
	"github.com/dzonerzy/go-usagedoc/grammar"
	"github.com/dzonerzy/go-usagedoc/internal/canon"
	"github.com/dzonerzy/go-usagedoc/internal/docmodel"
	"github.com/dzonerzy/go-usagedoc/internal/errs"
	"github.com/dzonerzy/go-usagedoc/internal/finalize"
	"github.com/dzonerzy/go-usagedoc/internal/intern"
	"github.com/dzonerzy/go-usagedoc/internal/match"
	"github.com/dzonerzy/go-usagedoc/internal/section"
	"github.com/dzonerzy/go-usagedoc/internal/specparse"
	"github.com/dzonerzy/go-usagedoc/internal/tokenize"
)

// Flags is the bitset every Parse/Suggest/ValidateArguments call takes.
type Flags uint8

const (
	// ResolveUnambiguousPrefixes lets an unambiguous prefix of a long
	// option's name stand in for the whole thing: "--fo" for "--foo".
	ResolveUnambiguousPrefixes Flags = 1 << iota
	// ShortOptionsStrictSeparators rejects an argv separator that
	// disagrees with the option's spec separator.
	ShortOptionsStrictSeparators
	// GenerateSuggestions populates suggestion sets during matching.
	GenerateSuggestions
	// MatchAllowIncomplete treats missing positionals and unmatched
	// single-option clauses as non-fatal instead of dropping the branch.
	MatchAllowIncomplete
	// GenerateEmptyArgs finalizes the result map with defaults and empty
	// slots for every option/variable/word the doc mentions.
	GenerateEmptyArgs
)

// ErrorCode identifies a doc-compile or argv-parse diagnostic.
type ErrorCode = errs.Code

// Doc/argv error codes, re-exported from the internal catalog.
const (
	ExcessiveDashes               = errs.ExcessiveDashes
	ExcessiveEqualSigns           = errs.ExcessiveEqualSigns
	BadOptionSeparator            = errs.BadOptionSeparator
	InvalidOptionName             = errs.InvalidOptionName
	InvalidVariableName           = errs.InvalidVariableName
	MissingCloseBracketInDefault  = errs.MissingCloseBracketInDefault
	OptionDuplicatedInOptions     = errs.OptionDuplicatedInOptions
	OneVariableMultipleConditions = errs.OneVariableMultipleConditions
	MissingUsageSection           = errs.MissingUsageSection
	ExcessiveUsageSections        = errs.ExcessiveUsageSections
	UnknownOption                 = errs.UnknownOption
	OptionHasMissingArgument      = errs.OptionHasMissingArgument
	OptionUnexpectedArgument      = errs.OptionUnexpectedArgument
	AmbiguousPrefixMatch          = errs.AmbiguousPrefixMatch
	WrongSeparator                = errs.WrongSeparator
	InternalError                 = errs.InternalError
)

// Error is one doc-compile or argv-parse diagnostic.
type Error = errs.Error

// Value is the accumulator bound to one option/variable/word key: how
// many times it occurred and its ordered values.
type Value struct {
	Count  int
	Values []string
}

// Result is the outcome of Parse: the bound values, the argv indices
// left unused, and any errors encountered along the way.
type Result struct {
	Values map[string]Value
	Unused []int
	Errors []Error
}

// compiledDoc holds everything derived from a successful SetDoc call.
type compiledDoc struct {
	src             string
	tree            *ast.Tree
	shortcutOptions []docmodel.Option
	allOptions      []docmodel.Option
	conditions      docmodel.ConditionMap
	// interner canonicalizes this doc's option display keys. It is
	// scoped to the compiled doc rather than shared globally: every
	// state in a match frontier looks up the same handful of "--foo"
	// keys, so one map per doc is enough to collapse the repeat
	// allocations without mixing keys across unrelated Parser instances.
	interner *intern.StringInterner
}

// Parser compiles one doc at a time and answers Parse/Suggest/introspection
// queries against it. The zero value is not ready to use; construct with
// New. A Parser is safe for concurrent reads once SetDoc has returned
// successfully, since compiled state is read-only afterward; SetDoc
// itself must not race with any other method.
type Parser struct {
	compiler ast.Compiler
	sink     diag.Sink
	compiled *compiledDoc
}

// New returns a Parser using the bundled grammar compiler and a
// discarding diagnostic sink.
func New() *Parser {
	return &Parser{compiler: grammar.New(), sink: diag.NullSink{}}
}

// SetSink installs a diagnostic sink. Passing nil restores the default,
// discarding sink.
func (p *Parser) SetSink(sink diag.Sink) {
	if sink == nil {
		sink = diag.NullSink{}
	}
	p.sink = sink
}

// SetCompiler swaps the grammar compiler used by the next SetDoc/Preflight
// call. Passing nil restores the bundled default.
func (p *Parser) SetCompiler(c ast.Compiler) {
	if c == nil {
		c = grammar.New()
	}
	p.compiler = c
}

// SetDoc compiles doc and, on success, replaces any previously held
// compiled state. A fatal error (missing/excessive Usage sections, or a
// grammar failure) leaves prior state untouched; non-fatal errors are
// still returned even though compilation succeeds.
func (p *Parser) SetDoc(docText string) (errsOut []Error) {
	defer p.recoverInto(&errsOut, "SetDoc")

	compiled, allErrs := p.compile(docText)
	fatal := false
	for _, e := range allErrs {
		if errs.Fatal(e.Code) {
			fatal = true
			break
		}
	}
	if fatal || compiled == nil {
		return allErrs
	}
	p.compiled = compiled
	p.sink.Emit(diag.Event{Kind: diag.DocCompiled, Detail: fmt.Sprintf("%d option(s), %d error(s)", len(compiled.allOptions), len(allErrs))})
	return allErrs
}

// Preflight compiles doc without replacing any existing state, returning
// only whether it would succeed and what it would report.
func (p *Parser) Preflight(docText string) []Error {
	_, allErrs := p.compile(docText)
	return allErrs
}

func (p *Parser) compile(docText string) (*compiledDoc, []Error) {
	var allErrs []errs.Error

	usageRanges := section.Extract(docText, "Usage:", false)
	switch {
	case len(usageRanges) == 0:
		return nil, []Error{errs.Doc(errs.NoPos, errs.MissingUsageSection, "Missing Usage: section")}
	case len(usageRanges) > 1:
		return nil, []Error{errs.Doc(errs.NoPos, errs.ExcessiveUsageSections, "More than one Usage: section")}
	}

	shortcutOptions, optErrs := specparse.ParseOptionsSpec(docText)
	allErrs = append(allErrs, optErrs...)
	shortcutOptions = canon.Uniqueize(docText, shortcutOptions, true, &allErrs)

	conditions, condErrs := specparse.ParseConditionsSpec(docText)
	allErrs = append(allErrs, condErrs...)

	tree, treeErrs := p.compiler.Compile(docText, usageRanges[0], shortcutOptions)
	for _, e := range treeErrs {
		if boxed, ok := e.(errs.Error); ok {
			allErrs = append(allErrs, boxed)
		} else {
			allErrs = append(allErrs, errs.Doc(errs.NoPos, errs.InvalidOptionName, e.Error()))
		}
	}
	if tree == nil {
		return nil, allErrs
	}

	usageOptions := tree.Options
	allOptions := make([]docmodel.Option, 0, len(usageOptions)+len(shortcutOptions))
	allOptions = append(allOptions, usageOptions...)
	allOptions = append(allOptions, shortcutOptions...)
	allOptions = canon.Uniqueize(docText, allOptions, false, &allErrs)

	shortcutOptions = canon.SubtractUsageMentions(docText, shortcutOptions, usageOptions)

	interner := intern.NewStringInterner(len(allOptions) * 2)
	displayNames := make([]string, 0, len(allOptions)*2)
	for _, opt := range allOptions {
		displayNames = append(displayNames, docmodel.NameAsString(opt, docText, nil))
		if !opt.CorrespondingLongName.Empty() {
			displayNames = append(displayNames, docmodel.LongestNameAsString(opt, docText, nil))
		}
	}
	interner.PreIntern(displayNames)

	return &compiledDoc{
		src:             docText,
		tree:            tree,
		shortcutOptions: shortcutOptions,
		allOptions:      allOptions,
		conditions:      conditions,
		interner:        interner,
	}, allErrs
}

// Parse binds argv against the compiled doc, returning the fewest-unused
// match and every diagnostic collected along the way.
func (p *Parser) Parse(argv []string, flags Flags) (result Result) {
	defer p.recoverInto(&result.Errors, "Parse")

	if p.compiled == nil {
		return Result{Errors: []Error{errs.Doc(errs.NoPos, errs.InternalError, "SetDoc must succeed before Parse")}}
	}
	c := p.compiled

	tokOpts := tokenize.Options{
		ResolveUnambiguousPrefixes: flags&ResolveUnambiguousPrefixes != 0,
		StrictSeparators:           flags&ShortOptionsStrictSeparators != 0,
	}
	tok := tokenize.Tokenize(c.src, c.allOptions, argv, tokOpts)
	p.sink.Emit(diag.Event{Kind: diag.ArgvTokenized, Detail: fmt.Sprintf("%d option use(s), %d positional(s)", len(tok.Options), len(tok.Positionals))})

	ctx := &match.Context{
		Src:                  c.src,
		Argv:                 argv,
		Positionals:          tok.Positionals,
		Resolved:             tok.Options,
		GenerateSuggestions:  flags&GenerateSuggestions != 0,
		MatchAllowIncomplete: flags&MatchAllowIncomplete != 0,
		Interner:             c.interner,
	}
	init := match.NewState(len(tok.Options))
	frontier := match.Run(c.tree.Root, ctx, c.shortcutOptions, init)
	p.sink.Emit(diag.Event{Kind: diag.MatchFrontier, Detail: fmt.Sprintf("%d state(s)", len(frontier))})

	outcome := finalize.Select(frontier, len(argv), ctx)
	values := outcome.Values
	if flags&GenerateEmptyArgs != 0 {
		values = finalize.FillEmpty(c.src, values, c.allOptions, c.tree, c.interner)
	}

	return Result{
		Values: toValueMap(values),
		Unused: outcome.Unused,
		Errors: enrichTokenErrors(tok.Errors, argv, c.allOptions, c.src, c.interner),
	}
}

// Suggest returns a sorted, deduplicated list of display names that
// would extend argv toward a valid invocation.
func (p *Parser) Suggest(argv []string, flags Flags) []string {
	flags |= GenerateSuggestions | MatchAllowIncomplete
	if p.compiled == nil {
		return nil
	}
	c := p.compiled
	tok := tokenize.Tokenize(c.src, c.allOptions, argv, tokenize.Options{
		ResolveUnambiguousPrefixes: flags&ResolveUnambiguousPrefixes != 0,
		StrictSeparators:           flags&ShortOptionsStrictSeparators != 0,
	})
	p.sink.Emit(diag.Event{Kind: diag.ArgvTokenized, Detail: fmt.Sprintf("%d option use(s), %d positional(s)", len(tok.Options), len(tok.Positionals))})
	ctx := &match.Context{
		Src: c.src, Argv: argv, Positionals: tok.Positionals, Resolved: tok.Options,
		GenerateSuggestions: true, MatchAllowIncomplete: true,
		Interner: c.interner,
	}
	frontier := match.Run(c.tree.Root, ctx, c.shortcutOptions, match.NewState(len(tok.Options)))
	p.sink.Emit(diag.Event{Kind: diag.MatchFrontier, Detail: fmt.Sprintf("%d state(s)", len(frontier))})
	outcome := finalize.Select(frontier, len(argv), ctx)
	return outcome.Suggestions
}

// ValidateArguments reports, per argv index, whether it was consumed by
// the best match.
func (p *Parser) ValidateArguments(argv []string, flags Flags) []bool {
	result := p.Parse(argv, flags)
	valid := make([]bool, len(argv))
	for i := range valid {
		valid[i] = true
	}
	for _, u := range result.Unused {
		if u >= 0 && u < len(valid) {
			valid[u] = false
		}
	}
	return valid
}

// ConditionsForVariable looks up the free-form condition text for a
// <variable> (angle brackets included).
func (p *Parser) ConditionsForVariable(name string) (string, bool) {
	if p.compiled == nil {
		return "", false
	}
	r, ok := p.compiled.conditions[name]
	if !ok {
		return "", false
	}
	return r.Slice(p.compiled.src), true
}

// DescriptionForOption returns the description text for an option named
// with its dashes, e.g. "-f" or "--foo". A single-dash name matches
// short and single-long options; a double-dash name matches double-long
// only.
func (p *Parser) DescriptionForOption(nameWithDashes string) (string, bool) {
	if p.compiled == nil {
		return "", false
	}
	dashCount, name := splitDashes(nameWithDashes)
	for _, opt := range p.compiled.allOptions {
		if !optionNameMatches(opt, p.compiled.src, dashCount, name) {
			continue
		}
		return opt.Description.Slice(p.compiled.src), true
	}
	return "", false
}

// GetCommandNames returns every program-name token across the Usage
// continuation chain, in first-occurrence order.
func (p *Parser) GetCommandNames() []string {
	if p.compiled == nil {
		return nil
	}
	var names []string
	for u := p.compiled.tree.Root; u != nil && !u.ProgramName.Empty(); u = u.Next {
		names = append(names, u.ProgramName.Slice(p.compiled.src))
	}
	return names
}

// GetVariables returns the sorted, deduplicated union of variables
// mentioned in the Usage AST and variable placeholders from option
// specs.
func (p *Parser) GetVariables() []string {
	if p.compiled == nil {
		return nil
	}
	seen := make(map[string]struct{})
	for _, v := range p.compiled.tree.Variables {
		seen[v.Slice(p.compiled.src)] = struct{}{}
	}
	for _, opt := range p.compiled.allOptions {
		if opt.HasValue() {
			seen[opt.Value.Slice(p.compiled.src)] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func toValueMap(src map[string]match.Accumulator) map[string]Value {
	out := make(map[string]Value, len(src))
	for k, v := range src {
		out[k] = Value{Count: v.Count, Values: v.Values}
	}
	return out
}

func splitDashes(s string) (dashCount int, name string) {
	for dashCount < len(s) && s[dashCount] == '-' {
		dashCount++
	}
	return dashCount, s[dashCount:]
}

func optionNameMatches(opt docmodel.Option, src string, dashCount int, name string) bool {
	optName := opt.Name.Slice(src)
	if dashCount >= 2 {
		return opt.Form() == docmodel.DoubleLong && optName == name
	}
	return opt.Form() != docmodel.DoubleLong && optName == name
}

// recoverInto turns a panic during a Parser method into an InternalError
// diagnostic instead of crashing the caller's process.
func (p *Parser) recoverInto(target *[]Error, method string) {
	r := recover()
	if r == nil {
		return
	}
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	p.sink.Emit(diag.Event{Kind: diag.PanicRecovered, Detail: fmt.Sprintf("%s: %v\n%s", method, r, buf[:n])})
	*target = append(*target, errs.Doc(errs.NoPos, errs.InternalError, fmt.Sprintf("internal error in %s: %v", method, r)))
}
