// Package text provides the range and scanning primitives that every
// doc-parsing stage builds on: a half-open view into the doc source, and
// the predicate-driven scan loop used to carve specs, sections and
// arguments out of it without copying.
package text

// Range is a half-open window [Start, Start+Length) into a doc source
// string. Zero value is the empty range at offset 0.
type Range struct {
	Start  int
	Length int
}

// End returns the index just past the range.
func (r Range) End() int { return r.Start + r.Length }

// Empty reports whether the range spans no characters.
func (r Range) Empty() bool { return r.Length == 0 }

// Slice returns the substring of src that this range covers.
func (r Range) Slice(src string) string { return src[r.Start:r.End()] }

// Merge grows r in place to the smallest range covering both r and other.
// Merging with an empty other is always a no-op; an empty r is replaced
// by other outright.
func (r *Range) Merge(other Range) {
	if other.Empty() {
		return
	}
	if r.Empty() {
		*r = other
		return
	}
	start := min(r.Start, other.Start)
	end := max(r.End(), other.End())
	r.Start = start
	r.Length = end - start
}

// Merged returns the smallest range covering both a and b without
// mutating either.
func Merged(a, b Range) Range {
	m := a
	m.Merge(b)
	return m
}

// EqualsString reports whether the range's text in src equals s.
func (r Range) EqualsString(src, s string) bool {
	return r.Length == len(s) && r.Slice(src) == s
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
