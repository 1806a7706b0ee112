package lexer

// step feeds one byte to the state machine. It returns the token completed by
// this byte, if any, and whether the byte was consumed. An unconsumed byte
// must be offered again to the new state (pushback).
func (l *Lexer) step(c byte) (tok Token, emitted, consume bool, err *Error) {
	switch l.state {
	case StateInit:
		return l.stepInit(c)

	case StateString:
		switch c {
		case '"':
			tok = String(string(l.buf))
			l.buf = l.buf[:0]
			l.state = StateInit
			return tok, true, true, nil
		case '\\':
			l.state = StateEscape
		default:
			l.buf = append(l.buf, c)
		}
		return Token{}, false, true, nil

	case StateEscape:
		return Token{}, false, true, l.stepEscape(c)

	case StateUnicodeEscape, StateLowSurrogate:
		return Token{}, false, true, l.stepHex(c)

	case StateAfterHighSurrogate:
		switch c {
		case '\\':
			l.state = StateBeforeLowSurrogate
			return Token{}, false, true, nil
		case '"':
			return Token{}, false, true, l.fail(UnpairedHighSurrogate, c)
		}
		return Token{}, false, true, l.fail(HighSurrogateNotFollowedByLow, c)

	case StateBeforeLowSurrogate:
		if c != 'u' {
			return Token{}, false, true, l.fail(HighSurrogateNotFollowedByLow, c)
		}
		l.state = StateLowSurrogate
		return Token{}, false, true, nil

	case StateTrue, StateFalse, StateNull:
		return l.stepKeyword(c)
	}
	return l.stepNumber(c)
}

func (l *Lexer) stepInit(c byte) (Token, bool, bool, *Error) {
	switch c {
	case '{':
		return ObjectStart, true, true, nil
	case '}':
		return ObjectEnd, true, true, nil
	case '[':
		return ArrayStart, true, true, nil
	case ']':
		return ArrayEnd, true, true, nil
	case ':':
		return Colon, true, true, nil
	case ',':
		return Comma, true, true, nil
	case '"':
		l.buf = l.buf[:0]
		l.state = StateString
	case '-':
		l.buf = append(l.buf, c)
		l.state = StateSign
	case '0':
		l.buf = append(l.buf, c)
		l.state = StateLeadingZero
	case 't':
		l.buf = append(l.buf, c)
		l.state = StateTrue
	case 'f':
		l.buf = append(l.buf, c)
		l.state = StateFalse
	case 'n':
		l.buf = append(l.buf, c)
		l.state = StateNull
	default:
		switch {
		case isDigit(c):
			l.buf = append(l.buf, c)
			l.state = StateIntDigits
		case isBlank(c):
		default:
			return Token{}, false, true, l.fail(UnexpectedCharacter, c)
		}
	}
	return Token{}, false, true, nil
}

func (l *Lexer) stepEscape(c byte) *Error {
	switch c {
	case '"', '\\', '/':
		l.buf = append(l.buf, c)
	case 'b':
		l.buf = append(l.buf, '\b')
	case 'f':
		l.buf = append(l.buf, '\f')
	case 'n':
		l.buf = append(l.buf, '\n')
	case 'r':
		l.buf = append(l.buf, '\r')
	case 't':
		l.buf = append(l.buf, '\t')
	case 'u':
		l.nhex = 0
		l.state = StateUnicodeEscape
		return nil
	default:
		return l.fail(UnknownEscapeCharacter, c)
	}
	l.state = StateString
	return nil
}

// stepHex collects the four digits of a \uXXXX escape. In StateLowSurrogate
// the escape must complete the pending high surrogate.
func (l *Lexer) stepHex(c byte) *Error {
	if !isHexDigit(c) {
		return l.fail(InvalidUnicodeEscapeDigit, c)
	}
	l.hex[l.nhex] = c
	l.nhex++
	if l.nhex < len(l.hex) {
		return nil
	}
	l.nhex = 0
	r := decodeHex4(l.hex)

	if l.state == StateLowSurrogate {
		if !isLowSurrogate(r) {
			err := l.fail(NotALowSurrogate, c)
			err.CodePoint = r
			return err
		}
		l.buf = appendCodePoint(l.buf, mergeSurrogate(l.high, r))
		l.high = 0
		l.state = StateString
		return nil
	}

	switch {
	case isHighSurrogate(r):
		l.high = r
		l.state = StateAfterHighSurrogate
	case isLowSurrogate(r):
		err := l.fail(SurrogateMissingHighHalf, c)
		err.CodePoint = r
		return err
	default:
		l.buf = appendCodePoint(l.buf, r)
		l.state = StateString
	}
	return nil
}

func (l *Lexer) stepKeyword(c byte) (Token, bool, bool, *Error) {
	kw := l.state.keyword()
	l.buf = append(l.buf, c)
	n := len(l.buf)
	if n > len(kw) || string(l.buf) != kw[:n] {
		return Token{}, false, true, l.fail(UnknownCharacterInKeyword, c)
	}
	if n < len(kw) {
		return Token{}, false, true, nil
	}

	var tok Token
	switch l.state {
	case StateTrue:
		tok = Boolean(true)
	case StateFalse:
		tok = Boolean(false)
	default:
		tok = Null
	}
	l.buf = l.buf[:0]
	l.state = StateInit
	return tok, true, true, nil
}

// stepNumber drives the number grammar. Terminating bytes are never consumed
// here; they are handed back to StateInit.
func (l *Lexer) stepNumber(c byte) (Token, bool, bool, *Error) {
	switch l.state {
	case StateSign:
		switch {
		case c == '0':
			l.state = StateLeadingZero
		case isDigit(c):
			l.state = StateIntDigits
		default:
			return Token{}, false, true, l.fail(DigitRequiredAfterSign, c)
		}

	case StateLeadingZero:
		if isDigit(c) {
			return Token{}, false, true, l.fail(LeadingZeroNotAllowed, c)
		}
		l.state = StateAfterInt
		return Token{}, false, false, nil

	case StateIntDigits:
		if !isDigit(c) {
			l.state = StateAfterInt
			return Token{}, false, false, nil
		}

	case StateAfterInt:
		switch c {
		case '.':
			l.state = StatePoint
		case 'e', 'E':
			l.state = StateExponent
		default:
			return l.endNumber(), true, false, nil
		}

	case StatePoint:
		if !isDigit(c) {
			return Token{}, false, true, l.fail(DigitRequiredAfterDecimalPoint, c)
		}
		l.state = StateFracDigits

	case StateFracDigits:
		if !isDigit(c) {
			l.state = StateAfterFrac
			return Token{}, false, false, nil
		}

	case StateAfterFrac:
		if c != 'e' && c != 'E' {
			return l.endNumber(), true, false, nil
		}
		l.state = StateExponent

	case StateExponent:
		switch {
		case c == '+' || c == '-':
			l.state = StateExponentSign
		case isDigit(c):
			l.state = StateExponentDigits
		default:
			return Token{}, false, true, l.fail(DigitRequiredAfterExponentMarker, c)
		}

	case StateExponentSign:
		if !isDigit(c) {
			return Token{}, false, true, l.fail(DigitRequiredAfterExponentMarker, c)
		}
		l.state = StateExponentDigits

	case StateExponentDigits:
		if !isDigit(c) {
			return l.endNumber(), true, false, nil
		}
	}

	l.buf = append(l.buf, c)
	return Token{}, false, true, nil
}

func (l *Lexer) endNumber() Token {
	tok := Number(string(l.buf))
	l.buf = l.buf[:0]
	l.state = StateInit
	return tok
}

// fail builds an error for the offending byte. The driver fills in Offset.
func (l *Lexer) fail(kind ErrorKind, c byte) *Error {
	return &Error{Kind: kind, Char: c, Buffer: string(l.buf)}
}
