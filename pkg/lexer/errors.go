package lexer

import (
	"fmt"
	"strconv"
)

// ErrorKind identifies which lexical rule an input violated.
type ErrorKind uint8

const (
	UnexpectedCharacter ErrorKind = iota + 1
	UnknownEscapeCharacter
	InvalidUnicodeEscapeDigit
	SurrogateMissingHighHalf
	HighSurrogateNotFollowedByLow
	NotALowSurrogate
	IncompleteUnicodeEscape
	UnpairedHighSurrogate
	DigitRequiredAfterSign
	LeadingZeroNotAllowed
	DigitRequiredAfterDecimalPoint
	DigitRequiredAfterExponentMarker
	MalformedNumberAtEndOfInput
	IncompleteKeyword
	UnknownCharacterInKeyword
	UnterminatedString
)

var errorMessages = [...]string{
	UnexpectedCharacter:              "unexpected character",
	UnknownEscapeCharacter:           "unknown escape character",
	InvalidUnicodeEscapeDigit:        "invalid unicode escape character",
	SurrogateMissingHighHalf:         "surrogate missing its high half",
	HighSurrogateNotFollowedByLow:    "high surrogate must be followed by a low surrogate",
	NotALowSurrogate:                 "not a low surrogate",
	IncompleteUnicodeEscape:          "incomplete unicode escape",
	UnpairedHighSurrogate:            "unpaired surrogate",
	DigitRequiredAfterSign:           "digit must follow minus sign",
	LeadingZeroNotAllowed:            "leading zeros are not allowed",
	DigitRequiredAfterDecimalPoint:   "digit must follow decimal point",
	DigitRequiredAfterExponentMarker: "digit must follow exponent marker",
	MalformedNumberAtEndOfInput:      "malformed number at end of input",
	IncompleteKeyword:                "incomplete keyword",
	UnknownCharacterInKeyword:        "unknown character in keyword",
	UnterminatedString:               "unterminated string",
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(errorMessages) {
		return errorMessages[k]
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// Error is returned for every lexical failure. Offset is the byte offset of
// the offending character, or the input length for end of input failures,
// where Char is zero. Buffer holds the literal text accumulated so far.
type Error struct {
	Kind      ErrorKind
	Offset    int
	Char      byte
	Buffer    string
	CodePoint rune
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("jsonlex: %s at offset %d", e.Kind, e.Offset)
	if e.Char != 0 {
		msg += fmt.Sprintf(": char %q", e.Char)
	}
	if e.CodePoint != 0 {
		msg += fmt.Sprintf(" (code point %#x)", e.CodePoint)
	}
	if e.Buffer != "" {
		msg += fmt.Sprintf(" (buffer %q)", e.Buffer)
	}
	return msg
}

// Is reports whether target is an *Error of the same kind, so the sentinels
// below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is matching.
var (
	ErrUnexpectedCharacter      = &Error{Kind: UnexpectedCharacter}
	ErrUnknownEscape            = &Error{Kind: UnknownEscapeCharacter}
	ErrInvalidUnicodeEscape     = &Error{Kind: InvalidUnicodeEscapeDigit}
	ErrMissingHighSurrogate     = &Error{Kind: SurrogateMissingHighHalf}
	ErrHighSurrogateNotFollowed = &Error{Kind: HighSurrogateNotFollowedByLow}
	ErrNotLowSurrogate          = &Error{Kind: NotALowSurrogate}
	ErrIncompleteUnicodeEscape  = &Error{Kind: IncompleteUnicodeEscape}
	ErrUnpairedSurrogate        = &Error{Kind: UnpairedHighSurrogate}
	ErrDigitAfterSign           = &Error{Kind: DigitRequiredAfterSign}
	ErrLeadingZero              = &Error{Kind: LeadingZeroNotAllowed}
	ErrDigitAfterPoint          = &Error{Kind: DigitRequiredAfterDecimalPoint}
	ErrDigitAfterExponent       = &Error{Kind: DigitRequiredAfterExponentMarker}
	ErrMalformedNumber          = &Error{Kind: MalformedNumberAtEndOfInput}
	ErrIncompleteKeyword        = &Error{Kind: IncompleteKeyword}
	ErrUnknownKeywordChar       = &Error{Kind: UnknownCharacterInKeyword}
	ErrUnterminatedString       = &Error{Kind: UnterminatedString}
)
