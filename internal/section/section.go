// Package section locates the "Usage:", "Options:" and "Conditions:"
// regions of a doc string, applying the same header/indentation rules
// docopt_fish.cpp uses so that arbitrarily indented free-form text still
// scans predictably.
package section

import (
	"math"
	"strings"

	"github.com/dzonerzy/go-usagedoc/internal/text"
)

// Extract returns one range per matched section named name (case
// insensitive), excluding the header text itself. When includeOtherTopLevel
// is true, non-header lines at header-level indent are absorbed into the
// current section instead of ending it (needed for Conditions: extraction,
// where a variable's condition list can continue as bare top-level lines).
func Extract(src string, name string, includeOtherTopLevel bool) []text.Range {
	var result []text.Range
	inSection := false
	currentHeaderIndent := math.MaxInt

	lines := text.NewLineIterator(src, -1)
	for {
		lineRange, ok := lines.Next()
		if !ok {
			break
		}
		trimmed := text.TrimWhitespace(lineRange, src)
		lineIndent := text.IndentOf(src, text.Range{Start: lineRange.Start, Length: trimmed.Start - lineRange.Start})

		colonPos := -1
		isHeader := false
		isOtherTopLevel := false
		if !trimmed.Empty() && lineIndent <= currentHeaderIndent {
			colonPos = findColon(trimmed, src)
			isHeader = colonPos >= 0
			isOtherTopLevel = colonPos < 0
		}

		switch {
		case isOtherTopLevel && !includeOtherTopLevel:
			inSection = false
		case isHeader:
			currentHeaderIndent = lineIndent
			namePos := text.FindCaseInsensitive(src, name, trimmed.Start)
			lineEnd := trimmed.End()
			inSection = namePos >= 0 && namePos < lineEnd && namePos < colonPos
			if inSection {
				result = append(result, text.Range{})
				newStart := namePos + len(name)
				lineRange = text.Range{Start: newStart, Length: lineRange.End() - newStart}
			}
		}

		if inSection {
			result[len(result)-1].Merge(lineRange)
		}
	}
	return result
}

func findColon(r text.Range, src string) int {
	idx := strings.IndexByte(r.Slice(src), ':')
	if idx < 0 {
		return -1
	}
	return r.Start + idx
}
