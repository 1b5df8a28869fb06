package specparse

import (
	"github.com/dzonerzy/go-usagedoc/internal/docmodel"
	"github.com/dzonerzy/go-usagedoc/internal/errs"
	"github.com/dzonerzy/go-usagedoc/internal/section"
	"github.com/dzonerzy/go-usagedoc/internal/text"
)

// lineIsOptionStart reports whether the line has at least one leading
// space then a dash, marking it as the start of a new option spec rather
// than a continuation of the previous one's description.
func lineIsOptionStart(src string, r text.Range) bool {
	remaining := r
	cur := &text.Cursor{Src: src, Remaining: remaining}
	space := cur.ScanWhile(text.IsSpace)
	dashes := cur.ScanWhile(func(b byte) bool { return b == '-' })
	return space.Length > 0 && dashes.Length > 0
}

// lineIsConditionStart mirrors lineIsOptionStart for "<var> condition"
// lines in a Conditions: section.
func lineIsConditionStart(src string, r text.Range) bool {
	cur := &text.Cursor{Src: src, Remaining: r}
	space := cur.ScanWhile(text.IsSpace)
	openBracket := cur.ScanWhile(func(b byte) bool { return b == '<' })
	return space.Length > 0 && openBracket.Length > 0
}

// ParseOptionsSpec extracts and parses every option spec in the doc's
// Options: sections.
func ParseOptionsSpec(src string) ([]docmodel.Option, []errs.Error) {
	var result []docmodel.Option
	var errsOut []errs.Error

	for _, sectionRange := range section.Extract(src, "Options:", false) {
		sectionEnd := sectionRange.End()
		lines := text.NewLineIterator(src, sectionEnd)
		lines.SkipTo(sectionRange.Start)

		for {
			lineRange, ok := lines.Next()
			if !ok {
				break
			}
			trimmed := text.TrimWhitespace(lineRange, src)
			switch {
			case trimmed.Empty():
				continue
			case !lineIsOptionStart(src, lineRange):
				errsOut = append(errsOut, errs.Doc(lineRange.Start, errs.InvalidOptionName,
					"Invalid option name. Options must start with a leading space and a dash."))
			default:
				specRange := lineRange
				for {
					peeked, peekedOK := lines.Peek()
					if !peekedOK || lineIsOptionStart(src, peeked) {
						break
					}
					specRange.Merge(peeked)
					lines.Next()
				}
				specRange = trimLeadingSpace(src, specRange)
				opts, optErrs := ParseOneOptionSpec(src, specRange)
				result = append(result, opts...)
				errsOut = append(errsOut, optErrs...)
			}
		}
	}
	return result, errsOut
}

// ParseConditionsSpec extracts and parses every "<var>  condition text"
// entry in the doc's Conditions: sections. Non-header top-level lines are
// absorbed into the section, matching how a Conditions block can span a
// multi-line expanded variable list.
func ParseConditionsSpec(src string) (docmodel.ConditionMap, []errs.Error) {
	result := make(docmodel.ConditionMap)
	var errsOut []errs.Error

	for _, sectionRange := range section.Extract(src, "Conditions:", true) {
		sectionEnd := sectionRange.End()
		lines := text.NewLineIterator(src, sectionEnd)
		lines.SkipTo(sectionRange.Start)

		for {
			lineRange, ok := lines.Next()
			if !ok {
				break
			}
			trimmed := text.TrimWhitespace(lineRange, src)
			switch {
			case trimmed.Empty():
				continue
			case !lineIsConditionStart(src, lineRange):
				errsOut = append(errsOut, errs.Doc(lineRange.Start, errs.InvalidVariableName,
					"Invalid condition. Conditions must start with a variable like <var>."))
			default:
				specRange := lineRange
				for {
					peeked, peekedOK := lines.Peek()
					if !peekedOK || lineIsConditionStart(src, peeked) {
						break
					}
					specRange.Merge(peeked)
					lines.Next()
				}
				specRange = text.TrimWhitespace(specRange, src)

				sep := indexOf(src, "  ", specRange.Start)
				if sep < 0 || sep >= specRange.End() {
					continue
				}
				key := text.TrimWhitespace(text.Range{Start: specRange.Start, Length: sep - specRange.Start}, src)
				value := text.TrimWhitespace(text.Range{Start: sep, Length: specRange.End() - sep}, src)
				keyStr := key.Slice(src)
				if _, exists := result[keyStr]; exists {
					errsOut = append(errsOut, errs.Doc(key.Start, errs.OneVariableMultipleConditions, "Variable already has a condition"))
					continue
				}
				result[keyStr] = value
			}
		}
	}
	return result, errsOut
}

func trimLeadingSpace(src string, r text.Range) text.Range {
	cur := &text.Cursor{Src: src, Remaining: r}
	cur.ScanWhile(text.IsSpace)
	return cur.Remaining
}
