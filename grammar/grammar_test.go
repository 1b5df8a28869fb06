package grammar

import (
	"testing"

	"github.com/dzonerzy/go-usagedoc/ast"
	"github.com/dzonerzy/go-usagedoc/internal/docmodel"
	"github.com/dzonerzy/go-usagedoc/internal/text"
)

func TestCompile_SimplePattern(t *testing.T) {
	src := "prog ship new <name>...\n"
	tree, errsOut := New().Compile(src, text.Range{Start: 0, Length: len(src)}, nil)
	if len(errsOut) != 0 {
		t.Fatalf("unexpected errors: %v", errsOut)
	}
	if tree.Root == nil || tree.Root.ProgramName.Slice(src) != "prog" {
		t.Fatalf("got root %+v", tree.Root)
	}
	if len(tree.Variables) != 1 || tree.Variables[0].Slice(src) != "<name>" {
		t.Fatalf("got variables %+v", tree.Variables)
	}
}

func TestCompile_GluedShortOptionConsumesIllustrativeSuffix(t *testing.T) {
	src := "prog -DNDEBUG...\n"
	// matchGluedShort compares bytes directly against p.src, so the known
	// option's Name range must point at the 'D' inside this same string.
	known := []docmodel.Option{
		{Name: text.Range{Start: 6, Length: 1}, DashCount: 1, Separator: docmodel.SepNone},
	}

	p := &parser{src: src, known: known}
	cur := &text.Cursor{Src: src, Remaining: text.Range{Start: 5, Length: len("-DNDEBUG")}}

	clause, errsOut := p.parseSimpleClause(cur)
	if len(errsOut) != 0 {
		t.Fatalf("unexpected errors: %v", errsOut)
	}
	if clause.Kind != ast.ClauseOption {
		t.Fatalf("expected an option clause, got %+v", clause)
	}
	if clause.Option.Form() != docmodel.Short || clause.Option.Separator != docmodel.SepNone {
		t.Fatalf("expected the known -D option to survive unchanged, got %+v", clause.Option)
	}
	// The whole glued run must be consumed, leaving nothing behind for "...".
	if cur.Remaining.Length != 0 {
		t.Fatalf("expected the glued literal to be fully consumed, %d bytes left", cur.Remaining.Length)
	}
}

func TestCompile_UnknownDashOptionParsesAsNewOption(t *testing.T) {
	src := "prog --verbose\n"
	tree, errsOut := New().Compile(src, text.Range{Start: 0, Length: len(src)}, nil)
	if len(errsOut) != 0 {
		t.Fatalf("unexpected errors: %v", errsOut)
	}
	if len(tree.Options) != 1 || tree.Options[0].Form() != docmodel.DoubleLong {
		t.Fatalf("got options %+v", tree.Options)
	}
}

func TestCompile_OptionsShortcutRecognized(t *testing.T) {
	src := "prog [options]\n"
	tree, errsOut := New().Compile(src, text.Range{Start: 0, Length: len(src)}, nil)
	if len(errsOut) != 0 {
		t.Fatalf("unexpected errors: %v", errsOut)
	}
	if tree.Root.Alternations.Branch.Head.Production != ast.OptionsShortcut {
		t.Fatalf("expected an options shortcut production, got %+v", tree.Root.Alternations.Branch.Head)
	}
}

func TestCompile_AlternationAndGrouping(t *testing.T) {
	src := "prog (add | remove) <item>\n"
	tree, errsOut := New().Compile(src, text.Range{Start: 0, Length: len(src)}, nil)
	if len(errsOut) != 0 {
		t.Fatalf("unexpected errors: %v", errsOut)
	}
	head := tree.Root.Alternations.Branch.Head
	if head.Production != ast.Parenthesized {
		t.Fatalf("expected a parenthesized group, got %+v", head)
	}
	if head.Nested.Or == nil {
		t.Fatalf("expected two alternation branches inside the group")
	}
}
