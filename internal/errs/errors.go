// Package errs is the shared error-code catalog every doc/argv parsing
// stage reports through. It mirrors snap/errors.go's enum-plus-struct
// shape (an ErrorType plus a message) rather than that file's fluent
// CLIError builder, since these are data returned to a caller, not
// user-facing formatted output.
package errs

// Code identifies one of the doc- or argv-parsing error conditions from
// spec.md §6.
type Code string

const (
	ExcessiveDashes               Code = "excessive_dashes"
	ExcessiveEqualSigns           Code = "excessive_equal_signs"
	BadOptionSeparator            Code = "bad_option_separator"
	InvalidOptionName             Code = "invalid_option_name"
	InvalidVariableName           Code = "invalid_variable_name"
	MissingCloseBracketInDefault  Code = "missing_close_bracket_in_default"
	OptionDuplicatedInOptions     Code = "option_duplicated_in_options_section"
	OneVariableMultipleConditions Code = "one_variable_multiple_conditions"
	MissingUsageSection           Code = "missing_usage_section"
	ExcessiveUsageSections        Code = "excessive_usage_sections"
	UnknownOption                 Code = "unknown_option"
	OptionHasMissingArgument      Code = "option_has_missing_argument"
	OptionUnexpectedArgument      Code = "option_unexpected_argument"
	AmbiguousPrefixMatch          Code = "ambiguous_prefix_match"
	WrongSeparator                Code = "wrong_separator"
	InternalError                 Code = "internal_error"
)

// NoPos marks an unset byte offset or argv position.
const NoPos = -1

// Error is a single doc-compile or argv-parse diagnostic. DocOffset is
// set for doc errors; ArgIndex/PosInArg are set for argv errors. Exactly
// one of the two forms applies to any given Error.
type Error struct {
	Code      Code
	Message   string
	DocOffset int // byte offset into the doc source, or NoPos
	ArgIndex  int // index into argv, or NoPos
	PosInArg  int // byte offset within argv[ArgIndex], or NoPos
}

// Doc constructs a doc-compile error at the given byte offset.
func Doc(offset int, code Code, message string) Error {
	return Error{Code: code, Message: message, DocOffset: offset, ArgIndex: NoPos, PosInArg: NoPos}
}

// Argv constructs an argv-parse error referencing argIndex, optionally
// with a position within that argument.
func Argv(argIndex int, code Code, message string, posInArg ...int) Error {
	pos := 0
	if len(posInArg) > 0 {
		pos = posInArg[0]
	}
	return Error{Code: code, Message: message, DocOffset: NoPos, ArgIndex: argIndex, PosInArg: pos}
}

func (e Error) Error() string { return e.Message }

// Fatal reports whether code prevents a doc from compiling successfully.
func Fatal(code Code) bool {
	switch code {
	case MissingUsageSection, ExcessiveUsageSections:
		return true
	default:
		return false
	}
}
