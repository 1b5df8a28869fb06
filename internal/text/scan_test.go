package text

import "testing"

func TestRangeMerge(t *testing.T) {
	a := Range{Start: 3, Length: 4} // [3,7)
	b := Range{Start: 10, Length: 2} // [10,12)
	got := Merged(a, b)
	want := Range{Start: 3, Length: 9} // [3,12)
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestRangeMergeWithEmpty(t *testing.T) {
	a := Range{Start: 3, Length: 4}
	got := Merged(a, Range{})
	if got != a {
		t.Fatalf("merging with the empty range should be a no-op, got %+v", got)
	}
}

func TestCursorScanWhile(t *testing.T) {
	src := "--foo=<bar>"
	cur := &Cursor{Src: src, Remaining: Range{Start: 0, Length: len(src)}}

	dashes := cur.ScanWhile(func(b byte) bool { return b == '-' })
	if dashes.Slice(src) != "--" {
		t.Fatalf("got %q, want --", dashes.Slice(src))
	}
	name := cur.ScanWhile(ValidInParameter)
	if name.Slice(src) != "foo" {
		t.Fatalf("got %q, want foo", name.Slice(src))
	}
}

func TestLineIteratorPeekAndSkipTo(t *testing.T) {
	src := "one\ntwo\nthree\n"
	it := NewLineIterator(src, -1)

	first, ok := it.Peek()
	if !ok || first.Slice(src) != "one\n" {
		t.Fatalf("peek: got %q, ok=%v", first.Slice(src), ok)
	}
	// Peek must not consume.
	second, ok := it.Next()
	if !ok || second.Slice(src) != "one\n" {
		t.Fatalf("next after peek: got %q, ok=%v", second.Slice(src), ok)
	}

	it.SkipTo(second.End() + len("two\n"))
	third, ok := it.Next()
	if !ok || third.Slice(src) != "three\n" {
		t.Fatalf("next after SkipTo: got %q, ok=%v", third.Slice(src), ok)
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("expected iterator to be exhausted")
	}
}

func TestIndentOfTabsRoundUpToFour(t *testing.T) {
	src := "\tfoo"
	got := IndentOf(src, Range{Start: 0, Length: 1})
	if got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
}

func TestFindCaseInsensitive(t *testing.T) {
	src := "Options section [DEFAULT: 3]"
	idx := FindCaseInsensitive(src, "[default:", 0)
	if idx != 16 {
		t.Fatalf("got %d, want 16", idx)
	}
	if idx := FindCaseInsensitive(src, "nope", 0); idx != -1 {
		t.Fatalf("got %d, want -1", idx)
	}
}
