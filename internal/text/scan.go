package text

import "strings"

// IsSpace reports whether b is ASCII whitespace, matching the C isspace
// classification the reference scanner relies on.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// ValidInParameter reports whether b may appear in an option name or a
// fixed word: everything except ".|<>,=()[] \t\n".
func ValidInParameter(b byte) bool {
	switch b {
	case '.', '|', '<', '>', ',', '=', '(', ')', '[', ']', ' ', '\t', '\n':
		return false
	default:
		return true
	}
}

// ValidInBracketedWord reports whether b may appear inside a <variable>
// name: everything except "|()[]>\t\n".
func ValidInBracketedWord(b byte) bool {
	switch b {
	case '|', '(', ')', '[', ']', '>', '\t', '\n':
		return false
	default:
		return true
	}
}

// Cursor scans forward through a fixed source string, consuming from a
// shrinking "remaining" window. It mirrors docopt_fish.cpp's convention
// of mutating a range_t in place as characters are consumed.
type Cursor struct {
	Src       string
	Remaining Range
}

// NewCursor returns a cursor over r within src.
func NewCursor(src string, r Range) *Cursor {
	return &Cursor{Src: src, Remaining: r}
}

// Empty reports whether there is nothing left to scan.
func (c *Cursor) Empty() bool { return c.Remaining.Empty() }

// Peek returns the next unconsumed byte, if any.
func (c *Cursor) Peek() (byte, bool) {
	if c.Empty() {
		return 0, false
	}
	return c.Src[c.Remaining.Start], true
}

// ScanWhile consumes and returns the longest prefix of the remaining
// window for which pred holds.
func (c *Cursor) ScanWhile(pred func(byte) bool) Range {
	start := c.Remaining.Start
	length := 0
	for c.Remaining.Length > 0 && pred(c.Src[c.Remaining.Start]) {
		length++
		c.Remaining.Start++
		c.Remaining.Length--
	}
	return Range{Start: start, Length: length}
}

// ScanChar consumes a single occurrence of ch, if present next.
func (c *Cursor) ScanChar(ch byte) Range {
	result := Range{Start: c.Remaining.Start, Length: 0}
	if !c.Empty() && c.Src[c.Remaining.Start] == ch {
		result.Length = 1
		c.Remaining.Start++
		c.Remaining.Length--
	}
	return result
}

// ScanString consumes a case-insensitive literal match of needle at the
// current position, if present.
func (c *Cursor) ScanString(needle string) Range {
	result := Range{Start: c.Remaining.Start, Length: 0}
	if c.Remaining.Length >= len(needle) &&
		strings.EqualFold(c.Src[c.Remaining.Start:c.Remaining.Start+len(needle)], needle) {
		result.Length = len(needle)
		c.Remaining.Start += len(needle)
		c.Remaining.Length -= len(needle)
	}
	return result
}

// TrimWhitespace returns a new range with leading and trailing whitespace
// removed from r's view of src.
func TrimWhitespace(r Range, src string) Range {
	left, right := r.Start, r.End()
	for left < right && IsSpace(src[left]) {
		left++
	}
	for right > left && IsSpace(src[right-1]) {
		right--
	}
	return Range{Start: left, Length: right - left}
}

// IndentOf computes the indentation of r's text in src, treating tabs as
// rounding up to the next multiple of 4, matching docopt_fish.cpp's
// compute_indent.
func IndentOf(src string, r Range) int {
	const tabstop = 4
	result := 0
	for i := r.Start; i < r.End(); i++ {
		if src[i] != '\t' {
			result++
		} else {
			result = (result + tabstop) / tabstop * tabstop
		}
	}
	return result
}

// FindCaseInsensitive returns the index of the first case-insensitive
// occurrence of needle in haystack at or after start, or -1.
func FindCaseInsensitive(haystack, needle string, start int) int {
	if start >= len(haystack) {
		return -1
	}
	idx := strings.Index(strings.ToLower(haystack[start:]), strings.ToLower(needle))
	if idx < 0 {
		return -1
	}
	return start + idx
}

// LineIterator walks the lines of src the way docopt_fish.cpp's
// get_next_line does: each returned range includes the trailing newline
// (or runs to end-of-string for the last line), so lengths are always
// positive and offsets are stable.
type LineIterator struct {
	src string
	end int
	pos int
	ok  bool

	hasPeek   bool
	peekRange Range
	peekOK    bool
}

// NewLineIterator returns an iterator over the lines of src[:end].
// A negative end means the full string.
func NewLineIterator(src string, end int) *LineIterator {
	if end < 0 || end > len(src) {
		end = len(src)
	}
	return &LineIterator{src: src, end: end, ok: true}
}

// SkipTo moves the iterator's cursor forward to pos, which need not fall
// on a line boundary; the next line returned will run from pos to the
// following newline. It is a no-op if pos is behind the current cursor.
func (li *LineIterator) SkipTo(pos int) {
	if pos > li.pos {
		li.pos = pos
		li.hasPeek = false
	}
}

func (li *LineIterator) advance() (Range, bool) {
	if !li.ok || li.pos >= li.end {
		return Range{}, false
	}
	lineStart := li.pos
	newline := strings.IndexByte(li.src[lineStart:li.end], '\n')
	var lineEnd int
	if newline < 0 {
		lineEnd = li.end
	} else {
		lineEnd = lineStart + newline + 1
	}
	li.pos = lineEnd
	return Range{Start: lineStart, Length: lineEnd - lineStart}, true
}

// Next advances to the next line and returns its range. ok is false once
// the iterator is exhausted.
func (li *LineIterator) Next() (Range, bool) {
	if li.hasPeek {
		li.hasPeek = false
		return li.peekRange, li.peekOK
	}
	return li.advance()
}

// Peek returns the next line's range without consuming it.
func (li *LineIterator) Peek() (Range, bool) {
	if !li.hasPeek {
		li.peekRange, li.peekOK = li.advance()
		li.hasPeek = true
	}
	return li.peekRange, li.peekOK
}
