package match

import (
	"github.com/dzonerzy/go-usagedoc/ast"
	"github.com/dzonerzy/go-usagedoc/internal/docmodel"
)

// ShortcutOptions is threaded alongside ast.Tree since the shortcut list
// (post [options]-subtraction) is a compile-time artifact separate from
// the tree's own Options field.
type ShortcutOptions = []docmodel.Option

// Run walks u against an initial state built for len(ctx.Resolved)
// resolved options, returning the resulting frontier.
func Run(u *ast.Usage, ctx *Context, shortcuts ShortcutOptions, initial State) []State {
	m := &matcher{ctx: ctx, shortcuts: shortcuts}
	return m.usage(u, initial)
}

type matcher struct {
	ctx       *Context
	shortcuts ShortcutOptions
}

// usage implements the "usage" node semantics from §4.5.
func (m *matcher) usage(u *ast.Usage, state State) []State {
	if u == nil || u.ProgramName.Empty() {
		return nil
	}
	if state.NextPositional >= len(m.ctx.Positionals) {
		return nil
	}

	consumed := state
	consumed.NextPositional++

	var altResults []State
	if u.Alternations != nil {
		altResults = m.alternationList(u.Alternations, consumed)
	} else {
		altResults = []State{consumed}
	}

	nextResults := m.usage(u.Next, state.Clone())

	return append(altResults, nextResults...)
}

func (m *matcher) alternationList(alt *ast.AlternationList, state State) []State {
	branch := m.expressionList(&alt.Branch, state.Clone())
	if alt.Or == nil {
		return branch
	}
	orResults := m.alternationList(alt.Or, state.Clone())
	return append(branch, orResults...)
}

func (m *matcher) expressionList(list *ast.ExpressionList, state State) []State {
	if isEmptyExpressionList(list) {
		return []State{state}
	}

	headResults := m.expression(&list.Head, state)
	if list.Tail == nil {
		return headResults
	}

	var results []State
	for _, s := range headResults {
		results = append(results, m.expressionList(list.Tail, s)...)
	}
	return results
}

func isEmptyExpressionList(list *ast.ExpressionList) bool {
	if list == nil {
		return true
	}
	h := list.Head
	return !h.Ellipsis && h.Production == ast.Simple && h.Clause.Kind == ast.ClauseFixedWord &&
		h.Clause.Word.Empty() && list.Tail == nil
}

func (m *matcher) expression(expr *ast.Expression, state State) []State {
	savedInBrackets := m.ctx.InSquareBrackets
	defer func() { m.ctx.InSquareBrackets = savedInBrackets }()

	var results []State
	switch expr.Production {
	case ast.Simple:
		results = m.simpleWithEllipsis(expr, state)
	case ast.Parenthesized:
		m.ctx.InSquareBrackets = false
		results = m.groupWithEllipsis(expr, state)
	case ast.SquareBracketed:
		m.ctx.InSquareBrackets = true
		matched := m.groupWithEllipsis(expr, state.Clone())
		results = append(matched, state)
	case ast.OptionsShortcut:
		matched := matchOptions(m.shortcuts, state, m.ctx)
		if len(matched) == 0 {
			s := state.Clone()
			if m.ctx.GenerateSuggestions {
				for _, opt := range m.shortcuts {
					key := docmodel.NameAsString(opt, m.ctx.Src, m.ctx.Interner)
					s.Suggested[key] = struct{}{}
				}
			}
			results = []State{s}
		} else {
			results = matched
		}
	}
	return results
}

func (m *matcher) simpleWithEllipsis(expr *ast.Expression, state State) []State {
	first := m.simpleClause(&expr.Clause, state)
	if !expr.Ellipsis {
		return first
	}

	all := append([]State{}, first...)
	frontier := first
	for len(frontier) > 0 {
		var next []State
		for _, parent := range frontier {
			progress := parent.Progress()
			for _, child := range m.simpleClause(&expr.Clause, parent.Clone()) {
				if child.Progress() > progress {
					next = append(next, child)
				}
			}
		}
		if len(next) == 0 {
			break
		}
		all = append(all, next...)
		frontier = next
	}
	return all
}

func (m *matcher) groupWithEllipsis(expr *ast.Expression, state State) []State {
	first := m.alternationList(expr.Nested, state)
	if !expr.Ellipsis {
		return first
	}

	all := append([]State{}, first...)
	frontier := first
	for len(frontier) > 0 {
		var next []State
		for _, parent := range frontier {
			progress := parent.Progress()
			for _, child := range m.alternationList(expr.Nested, parent.Clone()) {
				if child.Progress() > progress {
					next = append(next, child)
				}
			}
		}
		if len(next) == 0 {
			break
		}
		all = append(all, next...)
		frontier = next
	}
	return all
}

func (m *matcher) simpleClause(clause *ast.SimpleClause, state State) []State {
	switch clause.Kind {
	case ast.ClauseOption:
		return m.optionClause(clause, state)
	case ast.ClauseFixedWord:
		return m.fixedWordClause(clause, state)
	case ast.ClauseVariable:
		return m.variableClause(clause, state)
	default:
		return nil
	}
}

func (m *matcher) optionClause(clause *ast.SimpleClause, state State) []State {
	matched := matchOptions([]docmodel.Option{clause.Option}, state, m.ctx)
	if len(matched) > 0 {
		return matched
	}
	if !m.ctx.InSquareBrackets && !m.ctx.MatchAllowIncomplete {
		return nil
	}
	s := state.Clone()
	if m.ctx.GenerateSuggestions {
		key := docmodel.NameAsString(clause.Option, m.ctx.Src, m.ctx.Interner)
		s.Suggested[key] = struct{}{}
	}
	return []State{s}
}

func (m *matcher) fixedWordClause(clause *ast.SimpleClause, state State) []State {
	word := clause.Word.Slice(m.ctx.Src)
	if text, ok := m.ctx.nextPositionalText(state); ok && text == word {
		s := state.Clone()
		s.NextPositional++
		s.record(word, "", false)
		return []State{s}
	}
	return m.incompleteOrSuggest(word, state)
}

func (m *matcher) variableClause(clause *ast.SimpleClause, state State) []State {
	key := clause.Word.Slice(m.ctx.Src)
	if text, ok := m.ctx.nextPositionalText(state); ok {
		s := state.Clone()
		s.NextPositional++
		s.record(key, text, true)
		return []State{s}
	}
	return m.incompleteOrSuggest(key, state)
}

func (m *matcher) incompleteOrSuggest(key string, state State) []State {
	s := state.Clone()
	if m.ctx.GenerateSuggestions {
		s.Suggested[key] = struct{}{}
	}
	if m.ctx.MatchAllowIncomplete {
		return []State{s}
	}
	return nil
}
