// Package specparse turns the text of one option specification, or one
// argv token that looks like an option, into docmodel.Option records.
// It is a direct port of docopt_fish.cpp's option_t::parse_from_string
// and parse_one_option_spec.
package specparse

import (
	"strings"

	"github.com/dzonerzy/go-usagedoc/internal/docmodel"
	"github.com/dzonerzy/go-usagedoc/internal/errs"
	"github.com/dzonerzy/go-usagedoc/internal/text"
)

// ParseOptionFromString parses one option (dashes, name, optional
// separator, optional <variable>) starting at remaining.Start, advancing
// remaining past what it consumed. Used both for one option out of a
// grouped spec line and for reinterpreting a bare argv token as an
// option (see internal/tokenize).
func ParseOptionFromString(src string, remaining *text.Range) (docmodel.Option, []errs.Error) {
	var out []errs.Error
	cur := &text.Cursor{Src: src, Remaining: *remaining}
	defer func() { *remaining = cur.Remaining }()

	start := cur.Remaining.Start
	dashes := cur.ScanWhile(func(b byte) bool { return b == '-' })
	if dashes.Length > 2 {
		out = append(out, errs.Doc(start, errs.ExcessiveDashes, "Too many dashes"))
	}

	nameRange := cur.ScanWhile(text.ValidInParameter)

	spaceSeparator := cur.ScanWhile(text.IsSpace)

	equalsRange := cur.ScanWhile(func(b byte) bool { return b == '=' })
	if equalsRange.Length > 1 {
		out = append(out, errs.Doc(equalsRange.Start, errs.ExcessiveEqualSigns, "Too many equal signs"))
	}

	cur.ScanWhile(text.IsSpace)

	var variableRange text.Range
	openSign := cur.ScanChar('<')
	if !openSign.Empty() {
		variableNameRange := cur.ScanWhile(text.ValidInBracketedWord)
		closeSign := cur.ScanChar('>')
		switch {
		case variableNameRange.Empty():
			out = append(out, errs.Doc(variableNameRange.Start, errs.InvalidVariableName, "Missing variable name"))
		case closeSign.Empty():
			out = append(out, errs.Doc(openSign.Start, errs.InvalidVariableName, "Missing '>' to match this '<'"))
		default:
			variableRange.Merge(openSign)
			variableRange.Merge(variableNameRange)
			variableRange.Merge(closeSign)
		}

		if !closeSign.Empty() && !cur.Empty() {
			if b, ok := cur.Peek(); ok && text.ValidInParameter(b) {
				out = append(out, errs.Doc(cur.Remaining.Start, errs.InvalidVariableName, "Extra stuff after closing '>'"))
			}
		}
	}

	if variableRange.Empty() && !equalsRange.Empty() {
		out = append(out, errs.Doc(equalsRange.Start, errs.InvalidVariableName, "Missing variable for this assignment"))
	}

	var sep docmodel.Separator
	switch {
	case variableRange.Empty():
		sep = docmodel.SepSpace
	case !equalsRange.Empty():
		sep = docmodel.SepEquals
	case !spaceSeparator.Empty():
		sep = docmodel.SepSpace
	default:
		sep = docmodel.SepNone
	}

	if sep == docmodel.SepNone && (dashes.Length > 1 || nameRange.Length > 1) {
		out = append(out, errs.Doc(nameRange.Start, errs.BadOptionSeparator, "Long options must use a space or equals separator"))
	}

	if nameRange.Empty() {
		out = append(out, errs.Doc(nameRange.Start, errs.InvalidOptionName, "Missing option name"))
	}

	return docmodel.Option{
		Name:      nameRange,
		Value:     variableRange,
		DashCount: dashes.Length,
		Separator: sep,
	}, out
}

// ParseOneOptionSpec parses a full spec line/block (options portion plus
// a description and optional [default: ...]) into one or more aliased
// Option records, e.g. "-m, --message <contents>  set the message
// [default: none]".
func ParseOneOptionSpec(src string, r text.Range) ([]docmodel.Option, []errs.Error) {
	var errsOut []errs.Error
	end := r.End()

	optionsEnd := indexOf(src, "  ", r.Start)
	if optionsEnd < 0 || optionsEnd > end {
		optionsEnd = end
	}

	descriptionRange := text.TrimWhitespace(text.Range{Start: optionsEnd, Length: end - optionsEnd}, src)

	var defaultRange text.Range
	if !descriptionRange.Empty() {
		const prefix = "[default:"
		prefixLoc := text.FindCaseInsensitive(src, prefix, descriptionRange.Start)
		if prefixLoc >= 0 && prefixLoc < descriptionRange.End() {
			valueStart := prefixLoc + len(prefix)
			for valueStart < descriptionRange.End() && text.IsSpace(src[valueStart]) {
				valueStart++
			}
			valueEnd := indexOf(src, "]", valueStart)
			if valueEnd < 0 || valueEnd >= descriptionRange.End() {
				errsOut = append(errsOut, errs.Doc(prefixLoc, errs.MissingCloseBracketInDefault, "Missing ']' to match opening '['"))
			} else {
				defaultRange = text.Range{Start: valueStart, Length: valueEnd - valueStart}
			}
		}
	}

	var result []docmodel.Option
	remaining := text.Range{Start: r.Start, Length: optionsEnd - r.Start}
	cur := &text.Cursor{Src: src, Remaining: remaining}
	cur.ScanWhile(text.IsSpace)

	var nameOfLastLongOption text.Range
	var lastValueRange text.Range
	for !cur.Empty() {
		b, _ := cur.Peek()
		if b != '-' {
			errsOut = append(errsOut, errs.Doc(cur.Remaining.Start, errs.InvalidOptionName, "Not an option"))
			break
		}

		opt, optErrs := ParseOptionFromString(src, &cur.Remaining)
		errsOut = append(errsOut, optErrs...)
		if opt.Name.Empty() {
			break
		}
		opt.Description = descriptionRange
		opt.DefaultValue = defaultRange
		result = append(result, opt)

		if opt.Form() == docmodel.DoubleLong {
			nameOfLastLongOption = opt.Name
		}
		if !opt.Value.Empty() {
			lastValueRange = opt.Value
		}

		cur.ScanWhile(text.IsSpace)
		cur.ScanWhile(func(b byte) bool { return b == ',' })
		cur.ScanWhile(text.IsSpace)
	}

	if !nameOfLastLongOption.Empty() {
		for i := range result {
			result[i].CorrespondingLongName = nameOfLastLongOption
		}
	}
	for i := range result {
		if result[i].Value.Empty() {
			result[i].Value = lastValueRange
		}
	}

	return result, errsOut
}

func indexOf(src, needle string, start int) int {
	if start >= len(src) {
		return -1
	}
	rel := strings.Index(src[start:], needle)
	if rel < 0 {
		return -1
	}
	return start + rel
}
