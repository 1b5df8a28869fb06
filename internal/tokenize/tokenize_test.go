package tokenize

import (
	"testing"

	"github.com/dzonerzy/go-usagedoc/internal/docmodel"
	"github.com/dzonerzy/go-usagedoc/internal/text"
)

func TestTokenizeLongOptionWithEquals(t *testing.T) {
	src := "--foo=<x>"
	foo := docmodel.Option{Name: text.Range{Start: 2, Length: 3}, Value: text.Range{Start: 7, Length: 1}, DashCount: 2}

	result := Tokenize(src, []docmodel.Option{foo}, []string{"prog", "--foo=bar"}, Options{})
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Options) != 1 {
		t.Fatalf("expected one resolved option, got %d", len(result.Options))
	}
	got := result.Options[0]
	if got.ValueIdxInArgv != 1 || got.ValueRangeInArg.Slice("--foo=bar") != "bar" {
		t.Fatalf("got %+v", got)
	}
	if len(result.Positionals) != 1 || result.Positionals[0].IdxInArgv != 0 {
		t.Fatalf("expected argv[0] classified as positional, got %+v", result.Positionals)
	}
}

func TestTokenizeUnknownLongOption(t *testing.T) {
	result := Tokenize("", nil, []string{"--nope"}, Options{})
	if len(result.Errors) != 1 {
		t.Fatalf("expected one error, got %v", result.Errors)
	}
	if len(result.Positionals) != 1 {
		t.Fatalf("an unknown option should still fall back to a positional")
	}
}

func TestTokenizeAmbiguousPrefix(t *testing.T) {
	src := "--foo --form"
	foo := docmodel.Option{Name: text.Range{Start: 2, Length: 3}, DashCount: 2}
	form := docmodel.Option{Name: text.Range{Start: 8, Length: 4}, DashCount: 2}

	result := Tokenize(src, []docmodel.Option{foo, form}, []string{"--fo"}, Options{ResolveUnambiguousPrefixes: true})
	if len(result.Errors) != 1 || result.Errors[0].Code == "" {
		t.Fatalf("expected an ambiguous_prefix_match error, got %v", result.Errors)
	}
}

func TestTokenizeDoubleDashTerminatesOptionParsing(t *testing.T) {
	result := Tokenize("", nil, []string{"--", "--looks-like-an-option"}, Options{})
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Positionals) != 1 || result.Positionals[0].IdxInArgv != 1 {
		t.Fatalf("expected argv[1] to be a positional after --, got %+v", result.Positionals)
	}
}

func TestTokenizeShortClusterOrderIndependent(t *testing.T) {
	src := "-a -b"
	a := docmodel.Option{Name: text.Range{Start: 1, Length: 1}, DashCount: 1}
	b := docmodel.Option{Name: text.Range{Start: 4, Length: 1}, DashCount: 1}

	for _, argv := range [][]string{{"-ab"}, {"-ba"}} {
		result := Tokenize(src, []docmodel.Option{a, b}, argv, Options{})
		if len(result.Errors) != 0 {
			t.Fatalf("%v: unexpected errors: %v", argv, result.Errors)
		}
		if len(result.Options) != 2 {
			t.Fatalf("%v: expected 2 resolved options, got %d", argv, len(result.Options))
		}
	}
}
