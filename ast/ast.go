// Package ast defines the usage-pattern grammar tree that a compiled doc
// exposes to the matcher, and the Compiler interface used to build one
// from a Usage: section's source text. The tree shape follows the
// production grammar: usage -> alternation_list -> expression_list ->
// expression -> simple_clause.
package ast

import (
	"github.com/dzonerzy/go-usagedoc/internal/docmodel"
	"github.com/dzonerzy/go-usagedoc/internal/text"
)

// Production tags the shape of one Expression node.
type Production int

const (
	// Simple wraps a single SimpleClause, optionally repeated (Ellipsis).
	Simple Production = iota
	// Parenthesized wraps a nested AlternationList: "(a b)".
	Parenthesized
	// SquareBracketed wraps a nested AlternationList that may be skipped
	// entirely: "[a b]".
	SquareBracketed
	// OptionsShortcut is the literal "[options]" token.
	OptionsShortcut
)

// ClauseKind tags the variant of a SimpleClause.
type ClauseKind int

const (
	// ClauseOption is a single option mention, e.g. "--verbose" or "-f <file>".
	ClauseOption ClauseKind = iota
	// ClauseFixedWord is a literal command word, e.g. "commit".
	ClauseFixedWord
	// ClauseVariable is a positional placeholder, e.g. "<file>".
	ClauseVariable
)

// SimpleClause is one leaf of the grammar: an option mention, a fixed
// command word, or a <variable> placeholder.
type SimpleClause struct {
	Kind ClauseKind

	// Option is populated when Kind == ClauseOption.
	Option docmodel.Option

	// Word is the literal text range when Kind == ClauseFixedWord, or the
	// full "<name>" range (brackets included) when Kind == ClauseVariable.
	Word text.Range
}

// Expression is one element of an ExpressionList: a production plus an
// optional trailing "...".
type Expression struct {
	Production Production
	Ellipsis   bool

	// Clause is populated when Production == Simple.
	Clause SimpleClause

	// Nested is populated when Production is Parenthesized or
	// SquareBracketed.
	Nested *AlternationList
}

// ExpressionList is a run of Expressions read left to right: "a b c".
type ExpressionList struct {
	Head Expression
	Tail *ExpressionList // nil terminates the list
}

// AlternationList is one or more ExpressionLists joined by "|": each
// branch is tried independently from the same starting state.
type AlternationList struct {
	Branch ExpressionList
	Or     *AlternationList // nil when this is the last branch
}

// Usage is one "prog ..." line of the Usage: section. Alternations is nil
// for a bare program name with no further pattern. Next chains to the
// following usage line; the final Usage in the chain has an empty
// ProgramName and nil Next, acting as the terminal sentinel the matcher
// checks for.
type Usage struct {
	ProgramName  text.Range
	Alternations *AlternationList
	Next         *Usage
}

// Tree is the compiled form of a Usage: section: its root Usage chain
// plus every option and variable mentioned anywhere within it, collected
// once at compile time so callers don't need to re-walk the tree.
type Tree struct {
	Root      *Usage
	Options   []docmodel.Option
	Variables []text.Range
	Words     []text.Range
}

// Compiler turns the raw text of a Usage: section into a Tree, resolving
// option mentions against the options already known from the Options:
// section (knownOptions). Implementations report any grammar errors
// through the returned error slice using internal/errs.Error values
// boxed as error; callers type-assert back to errs.Error when they need
// the structured form.
type Compiler interface {
	Compile(src string, usageSection text.Range, knownOptions []docmodel.Option) (*Tree, []error)
}
