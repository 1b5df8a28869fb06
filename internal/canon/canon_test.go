package canon

import (
	"testing"

	"github.com/dzonerzy/go-usagedoc/internal/docmodel"
	"github.com/dzonerzy/go-usagedoc/internal/errs"
	"github.com/dzonerzy/go-usagedoc/internal/text"
)

func rng(start, length int) text.Range { return text.Range{Start: start, Length: length} }

func TestUniqueizeKeepsLongestDescription(t *testing.T) {
	src := "-f short\n-f longer description here\n"
	short := docmodel.Option{Name: rng(1, 1), Description: rng(3, 5)}
	longer := docmodel.Option{Name: rng(10, 1), Description: rng(12, 22)}

	var errsOut []errs.Error
	got := Uniqueize(src, []docmodel.Option{short, longer}, true, &errsOut)

	if len(got) != 1 {
		t.Fatalf("expected 1 option after dedup, got %d", len(got))
	}
	if got[0].Description != longer.Description {
		t.Fatalf("expected the longer description to survive, got %+v", got[0].Description)
	}
	if len(errsOut) != 1 || errsOut[0].Code != errs.OptionDuplicatedInOptions {
		t.Fatalf("expected one option_duplicated_in_options_section error, got %v", errsOut)
	}
}

func TestUniqueizeSilentWhenNotErroring(t *testing.T) {
	src := "-f -f"
	a := docmodel.Option{Name: rng(1, 1)}
	b := docmodel.Option{Name: rng(4, 1)}

	var errsOut []errs.Error
	got := Uniqueize(src, []docmodel.Option{a, b}, false, &errsOut)

	if len(got) != 1 {
		t.Fatalf("expected 1 option after dedup, got %d", len(got))
	}
	if len(errsOut) != 0 {
		t.Fatalf("expected no errors, got %v", errsOut)
	}
}

func TestSubtractUsageMentions(t *testing.T) {
	src := "-a -b"
	a := docmodel.Option{Name: rng(1, 1)}
	b := docmodel.Option{Name: rng(4, 1)}

	got := SubtractUsageMentions(src, []docmodel.Option{a, b}, []docmodel.Option{a})

	if len(got) != 1 || !docmodel.SameName(got[0], b, src) {
		t.Fatalf("expected only -b to remain, got %+v", got)
	}
}
