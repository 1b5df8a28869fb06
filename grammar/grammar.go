// Package grammar is the default ast.Compiler: a recursive-descent parser
// that reads the free-form pattern lines of a Usage: section and builds
// the tree internal/match walks. It is a supplement, not a port: the
// upstream reference treats this stage as an opaque dependency, so its
// shape here is grounded on spec.md's own AST description plus the
// tokenizing conventions (text.Cursor, text.Range) used everywhere else
// in this module.
package grammar

import (
	"github.com/dzonerzy/go-usagedoc/ast"
	"github.com/dzonerzy/go-usagedoc/internal/docmodel"
	"github.com/dzonerzy/go-usagedoc/internal/errs"
	"github.com/dzonerzy/go-usagedoc/internal/specparse"
	"github.com/dzonerzy/go-usagedoc/internal/text"
)

// Compiler is the default ast.Compiler implementation.
type Compiler struct{}

// New returns a ready-to-use Compiler.
func New() *Compiler { return &Compiler{} }

// Compile parses every "prog ..." line within usageSection into an
// ast.Tree, chained through ast.Usage.Next in source order.
func (Compiler) Compile(src string, usageSection text.Range, knownOptions []docmodel.Option) (*ast.Tree, []error) {
	p := &parser{src: src, known: knownOptions}

	lines := text.NewLineIterator(src, usageSection.End())
	lines.SkipTo(usageSection.Start)

	var programLines []text.Range
	for {
		lineRange, ok := lines.Next()
		if !ok {
			break
		}
		trimmed := text.TrimWhitespace(lineRange, src)
		if trimmed.Empty() {
			continue
		}
		programLines = append(programLines, trimmed)
	}

	var head *ast.Usage
	var tail *ast.Usage
	for _, lineRange := range programLines {
		usage, errsOut := p.parseUsageLine(lineRange)
		p.errors = append(p.errors, errsOut...)
		if usage == nil {
			continue
		}
		if head == nil {
			head = usage
			tail = usage
		} else {
			tail.Next = usage
			tail = usage
		}
	}
	if tail != nil {
		tail.Next = &ast.Usage{} // terminal sentinel: empty ProgramName, nil Next
	} else {
		head = &ast.Usage{}
	}

	tree := &ast.Tree{
		Root:      head,
		Options:   p.options,
		Variables: p.variables,
		Words:     p.words,
	}

	boxed := make([]error, 0, len(p.errors))
	for _, e := range p.errors {
		boxed = append(boxed, e)
	}
	return tree, boxed
}

type parser struct {
	src   string
	known []docmodel.Option

	errors    []errs.Error
	options   []docmodel.Option
	variables []text.Range
	words     []text.Range
}

// parseUsageLine parses one full pattern line: the leading program-name
// word, then the remainder as an alternation list.
func (p *parser) parseUsageLine(line text.Range) (*ast.Usage, []errs.Error) {
	cur := &text.Cursor{Src: p.src, Remaining: line}
	programName := cur.ScanWhile(text.ValidInParameter)
	if programName.Empty() {
		return nil, nil
	}
	cur.ScanWhile(text.IsSpace)

	if cur.Empty() {
		return &ast.Usage{ProgramName: programName}, nil
	}

	alt, errsOut := p.parseAlternationList(cur, 0)
	return &ast.Usage{ProgramName: programName, Alternations: alt}, errsOut
}

// parseAlternationList parses "expr expr | expr | expr" up to depth's
// closing delimiter (a ')' , ']' or end of input at depth 0).
func (p *parser) parseAlternationList(cur *text.Cursor, depth int) (*ast.AlternationList, []errs.Error) {
	var errsOut []errs.Error

	branch, branchErrs := p.parseExpressionList(cur, depth)
	errsOut = append(errsOut, branchErrs...)

	result := &ast.AlternationList{Branch: *branch}
	node := result

	for {
		cur.ScanWhile(text.IsSpace)
		if b, ok := cur.Peek(); !ok || b != '|' {
			break
		}
		cur.ScanChar('|')
		cur.ScanWhile(text.IsSpace)
		next, nextErrs := p.parseExpressionList(cur, depth)
		errsOut = append(errsOut, nextErrs...)
		node.Or = &ast.AlternationList{Branch: *next}
		node = node.Or
	}

	return result, errsOut
}

func atClose(b byte, ok bool) bool {
	return !ok || b == ')' || b == ']' || b == '|'
}

// parseExpressionList parses a run of expressions until a closing
// delimiter, alternation bar, or end of input.
func (p *parser) parseExpressionList(cur *text.Cursor, depth int) (*ast.ExpressionList, []errs.Error) {
	var errsOut []errs.Error
	cur.ScanWhile(text.IsSpace)

	b, ok := cur.Peek()
	if atClose(b, ok) {
		return &ast.ExpressionList{}, nil
	}

	head, headErrs := p.parseExpression(cur, depth)
	errsOut = append(errsOut, headErrs...)
	result := &ast.ExpressionList{Head: *head}

	cur.ScanWhile(text.IsSpace)
	if b, ok := cur.Peek(); !atClose(b, ok) {
		tail, tailErrs := p.parseExpressionList(cur, depth)
		errsOut = append(errsOut, tailErrs...)
		result.Tail = tail
	}
	return result, errsOut
}

// parseExpression parses one production (a simple clause, a
// parenthesized group, a square-bracketed group, or the literal
// "[options]" shortcut), then an optional trailing ellipsis.
func (p *parser) parseExpression(cur *text.Cursor, depth int) (*ast.Expression, []errs.Error) {
	var errsOut []errs.Error
	expr := &ast.Expression{}

	b, _ := cur.Peek()
	switch b {
	case '(':
		cur.ScanChar('(')
		nested, nestedErrs := p.parseAlternationList(cur, depth+1)
		errsOut = append(errsOut, nestedErrs...)
		cur.ScanWhile(text.IsSpace)
		if closeParen := cur.ScanChar(')'); closeParen.Empty() {
			errsOut = append(errsOut, errs.Doc(cur.Remaining.Start, errs.InvalidOptionName, "Missing ')' to match this '('"))
		}
		expr.Production = ast.Parenthesized
		expr.Nested = nested
	case '[':
		if p.looksLikeOptionsShortcut(cur) {
			cur.ScanString("[options]")
			expr.Production = ast.OptionsShortcut
		} else {
			cur.ScanChar('[')
			nested, nestedErrs := p.parseAlternationList(cur, depth+1)
			errsOut = append(errsOut, nestedErrs...)
			cur.ScanWhile(text.IsSpace)
			if closeBracket := cur.ScanChar(']'); closeBracket.Empty() {
				errsOut = append(errsOut, errs.Doc(cur.Remaining.Start, errs.InvalidOptionName, "Missing ']' to match this '['"))
			}
			expr.Production = ast.SquareBracketed
			expr.Nested = nested
		}
	default:
		clause, clauseErrs := p.parseSimpleClause(cur)
		errsOut = append(errsOut, clauseErrs...)
		expr.Production = ast.Simple
		expr.Clause = clause
	}

	cur.ScanWhile(func(c byte) bool { return c == ' ' })
	if cur.ScanString("...").Length > 0 {
		expr.Ellipsis = true
	}

	return expr, errsOut
}

func (p *parser) looksLikeOptionsShortcut(cur *text.Cursor) bool {
	rest := cur.Remaining
	return rest.Length >= len("[options]") &&
		text.Range{Start: rest.Start, Length: len("[options]")}.EqualsString(p.src, "[options]")
}

// parseSimpleClause parses an option mention, a <variable>, or a fixed
// command word.
func (p *parser) parseSimpleClause(cur *text.Cursor) (ast.SimpleClause, []errs.Error) {
	if b, ok := cur.Peek(); ok && b == '-' {
		if opt, ok := p.matchGluedShort(cur); ok {
			p.options = append(p.options, opt)
			return ast.SimpleClause{Kind: ast.ClauseOption, Option: opt}, nil
		}
		opt, optErrs := specparse.ParseOptionFromString(p.src, &cur.Remaining)
		resolved := p.resolveAgainstKnown(opt)
		p.options = append(p.options, resolved)
		return ast.SimpleClause{Kind: ast.ClauseOption, Option: resolved}, optErrs
	}

	if b, ok := cur.Peek(); ok && b == '<' {
		start := cur.Remaining.Start
		cur.ScanChar('<')
		cur.ScanWhile(text.ValidInBracketedWord)
		cur.ScanChar('>')
		word := text.Range{Start: start, Length: cur.Remaining.Start - start}
		p.variables = append(p.variables, word)
		return ast.SimpleClause{Kind: ast.ClauseVariable, Word: word}, nil
	}

	word := cur.ScanWhile(text.ValidInParameter)
	p.words = append(p.words, word)
	return ast.SimpleClause{Kind: ast.ClauseFixedWord, Word: word}, nil
}

// matchGluedShort recognizes a usage-pattern token like "-DNDEBUG": a
// known no-separator short option ("-D<macro>") followed directly by an
// illustrative literal instead of the real value. Only options declared
// with Separator == SepNone glue this way; the trailing run is consumed
// and discarded, since it exists only to show the concatenated shape.
func (p *parser) matchGluedShort(cur *text.Cursor) (docmodel.Option, bool) {
	rest := cur.Remaining
	if rest.Length < 2 || p.src[rest.Start] != '-' || p.src[rest.Start+1] == '-' {
		return docmodel.Option{}, false
	}
	nameChar := p.src[rest.Start+1]

	var known docmodel.Option
	found := false
	for _, cand := range p.known {
		if cand.Form() == docmodel.Short && cand.Separator == docmodel.SepNone &&
			cand.Name.Length == 1 && p.src[cand.Name.Start] == nameChar {
			known = cand
			found = true
			break
		}
	}
	if !found {
		return docmodel.Option{}, false
	}

	cur.ScanChar('-')
	cur.ScanWhile(text.ValidInParameter)
	return known, true
}

// resolveAgainstKnown finds a description-bearing Options: entry for an
// option mentioned bare in the usage pattern (e.g. "--verbose" with no
// inline description), so downstream display/help text still works.
func (p *parser) resolveAgainstKnown(opt docmodel.Option) docmodel.Option {
	for _, known := range p.known {
		if docmodel.SameName(opt, known, p.src) {
			merged := opt
			merged.Description = known.Description
			merged.DefaultValue = known.DefaultValue
			merged.CorrespondingLongName = known.CorrespondingLongName
			if merged.Value.Empty() {
				merged.Value = known.Value
			}
			return merged
		}
	}
	return opt
}
