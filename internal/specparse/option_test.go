package specparse

import (
	"testing"

	"github.com/dzonerzy/go-usagedoc/internal/docmodel"
	"github.com/dzonerzy/go-usagedoc/internal/text"
)

func parseAll(src string) (docmodel.Option, text.Range) {
	r := text.Range{Start: 0, Length: len(src)}
	opt, _ := ParseOptionFromString(src, &r)
	return opt, r
}

func TestParseOptionFromString_LongWithEquals(t *testing.T) {
	opt, rest := parseAll("--foo=<bar>")
	if opt.Name.Slice("--foo=<bar>") != "foo" {
		t.Fatalf("got name %q", opt.Name.Slice("--foo=<bar>"))
	}
	if opt.Separator != docmodel.SepEquals {
		t.Fatalf("got separator %v, want equals", opt.Separator)
	}
	if !opt.Value.EqualsString("--foo=<bar>", "<bar>") {
		t.Fatalf("got value %q", opt.Value.Slice("--foo=<bar>"))
	}
	if rest.Length != 0 {
		t.Fatalf("expected the whole token consumed, %d bytes left", rest.Length)
	}
}

func TestParseOptionFromString_ShortWithSpaceSeparatedValue(t *testing.T) {
	src := "-f <file>"
	opt, _ := parseAll(src)
	if opt.Form() != docmodel.Short {
		t.Fatalf("expected a short option, got %v", opt.Form())
	}
	if opt.Separator != docmodel.SepSpace {
		t.Fatalf("got separator %v, want space", opt.Separator)
	}
}

func TestParseOptionFromString_UnseparatedShortValue(t *testing.T) {
	src := "-D<macro>"
	opt, _ := parseAll(src)
	if opt.Separator != docmodel.SepNone {
		t.Fatalf("got separator %v, want none", opt.Separator)
	}
}

func TestParseOptionFromString_TooManyDashesErrors(t *testing.T) {
	r := text.Range{Start: 0, Length: len("---foo")}
	_, gotErrs := ParseOptionFromString("---foo", &r)
	if len(gotErrs) == 0 {
		t.Fatalf("expected an excessive_dashes error")
	}
}

func TestParseOneOptionSpec_AliasGroupSharesLongName(t *testing.T) {
	src := "-m, --message <text>  the commit message [default: none]"
	specs, errsOut := ParseOneOptionSpec(src, text.Range{Start: 0, Length: len(src)})
	if len(errsOut) != 0 {
		t.Fatalf("unexpected errors: %v", errsOut)
	}
	if len(specs) != 2 {
		t.Fatalf("expected 2 aliased options, got %d", len(specs))
	}
	for _, o := range specs {
		if o.CorrespondingLongName.Slice(src) != "message" {
			t.Fatalf("expected corresponding long name 'message', got %q", o.CorrespondingLongName.Slice(src))
		}
		if o.DefaultValue.Slice(src) != "none" {
			t.Fatalf("expected default 'none', got %q", o.DefaultValue.Slice(src))
		}
	}
}

func TestParseOneOptionSpec_NoDefaultLeavesEmptyRange(t *testing.T) {
	src := "-v, --verbose  print more output"
	specs, errsOut := ParseOneOptionSpec(src, text.Range{Start: 0, Length: len(src)})
	if len(errsOut) != 0 {
		t.Fatalf("unexpected errors: %v", errsOut)
	}
	for _, o := range specs {
		if !o.DefaultValue.Empty() {
			t.Fatalf("expected no default value, got %q", o.DefaultValue.Slice(src))
		}
	}
}
