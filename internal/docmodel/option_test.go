package docmodel

import (
	"testing"

	"github.com/dzonerzy/go-usagedoc/internal/text"
)

func TestForm(t *testing.T) {
	cases := []struct {
		name string
		opt  Option
		want DashForm
	}{
		{"short", Option{Name: text.Range{Length: 1}, DashCount: 1}, Short},
		{"single-long", Option{Name: text.Range{Length: 3}, DashCount: 1}, SingleLong},
		{"double-long", Option{Name: text.Range{Length: 3}, DashCount: 2}, DoubleLong},
	}
	for _, c := range cases {
		if got := c.opt.Form(); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestSameName(t *testing.T) {
	src := "-f -f --file"
	a := Option{Name: text.Range{Start: 1, Length: 1}, DashCount: 1}
	b := Option{Name: text.Range{Start: 4, Length: 1}, DashCount: 1}
	c := Option{Name: text.Range{Start: 8, Length: 4}, DashCount: 2}

	if !SameName(a, b, src) {
		t.Fatalf("expected -f and -f to be the same option")
	}
	if SameName(a, c, src) {
		t.Fatalf("expected -f and --file to differ (different dash form)")
	}
}

func TestLongestNameAsStringPrefersCorrespondingLongName(t *testing.T) {
	src := "-m --message"
	opt := Option{
		Name:                  text.Range{Start: 1, Length: 1},
		DashCount:             1,
		CorrespondingLongName: text.Range{Start: 5, Length: 7},
	}
	if got := LongestNameAsString(opt, src, nil); got != "--message" {
		t.Fatalf("got %q, want --message", got)
	}
	if got := NameAsString(opt, src, nil); got != "-m" {
		t.Fatalf("got %q, want -m", got)
	}
}

func TestHasValue(t *testing.T) {
	if (Option{}).HasValue() {
		t.Fatalf("expected no value by default")
	}
	if !(Option{Value: text.Range{Length: 4}}).HasValue() {
		t.Fatalf("expected a non-empty Value range to report HasValue")
	}
}
