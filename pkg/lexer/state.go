package lexer

import "strconv"

// State is a state of the lexer's finite-state machine.
type State uint8

const (
	StateInit State = iota

	// String body and escapes.
	StateString
	StateEscape
	StateUnicodeEscape
	StateAfterHighSurrogate
	StateBeforeLowSurrogate
	StateLowSurrogate

	// Number grammar.
	StateSign
	StateLeadingZero
	StateIntDigits
	StateAfterInt
	StatePoint
	StateFracDigits
	StateAfterFrac
	StateExponent
	StateExponentSign
	StateExponentDigits

	// Keywords.
	StateTrue
	StateFalse
	StateNull
)

var stateNames = [...]string{
	StateInit:               "Init",
	StateString:             "String",
	StateEscape:             "Escape",
	StateUnicodeEscape:      "UnicodeEscape",
	StateAfterHighSurrogate: "AfterHighSurrogate",
	StateBeforeLowSurrogate: "BeforeLowSurrogate",
	StateLowSurrogate:       "LowSurrogate",
	StateSign:               "Sign",
	StateLeadingZero:        "LeadingZero",
	StateIntDigits:          "IntDigits",
	StateAfterInt:           "AfterInt",
	StatePoint:              "Point",
	StateFracDigits:         "FracDigits",
	StateAfterFrac:          "AfterFrac",
	StateExponent:           "Exponent",
	StateExponentSign:       "ExponentSign",
	StateExponentDigits:     "ExponentDigits",
	StateTrue:               "True",
	StateFalse:              "False",
	StateNull:               "Null",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// numberComplete reports whether a number ending in state s is grammatical.
func (s State) numberComplete() bool {
	switch s {
	case StateLeadingZero, StateIntDigits, StateAfterInt,
		StateFracDigits, StateAfterFrac, StateExponentDigits:
		return true
	}
	return false
}

func (s State) isNumber() bool {
	return s >= StateSign && s <= StateExponentDigits
}

func (s State) isKeyword() bool {
	return s >= StateTrue && s <= StateNull
}

// keyword returns the literal a keyword state is matching.
func (s State) keyword() string {
	switch s {
	case StateTrue:
		return "true"
	case StateFalse:
		return "false"
	case StateNull:
		return "null"
	}
	return ""
}
